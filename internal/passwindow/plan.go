/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package passwindow

import (
	"fmt"
	"time"

	"github.com/friendsincode/contactctl/internal/models"
)

// PlannedContact pairs a pass with the contact window carved out of it.
type PlannedContact struct {
	Pass   models.Pass
	Window models.TimeRange
}

// BuildPlan computes the contact window for each chosen pass. With wholePass
// set, each contact rides the full pass; otherwise the requested duration is
// centered within the pass. The remote pass record carries no peak-elevation
// timestamp, so centering targets the pass midpoint.
func BuildPlan(passes []models.Pass, wholePass bool, want time.Duration) ([]PlannedContact, error) {
	plan := make([]PlannedContact, 0, len(passes))
	for _, p := range passes {
		window := p.Window()
		if !wholePass {
			adjusted, err := Adjust(window, window.Midpoint(), want)
			if err != nil {
				return nil, fmt.Errorf("pass at %s: %w", p.StartTime.Format(time.RFC3339), err)
			}
			window = adjusted
		}
		plan = append(plan, PlannedContact{Pass: p, Window: window})
	}
	return plan, nil
}
