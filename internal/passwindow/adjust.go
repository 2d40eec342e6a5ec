/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package passwindow implements the pass-window arithmetic used when a
// contact should be shorter than the pass it rides on. Everything here is
// pure: no clock, no session state, no remote calls.
package passwindow

import (
	"errors"
	"time"

	"github.com/friendsincode/contactctl/internal/models"
)

// ErrInvalidWindow reports a pass window whose start does not precede its
// end. That is a data error from the caller, not something an operator can
// fix at a prompt.
var ErrInvalidWindow = errors.New("passwindow: pass start must precede pass end")

// Adjust computes the contact window for a pass.
//
// When want is at least the full pass length the pass window is returned
// unchanged. Otherwise the result has length exactly want, is centered on
// peak, and is shifted (never shrunk) back inside the pass when the centered
// interval sticks out on one side. Centering on one bound can never violate
// the other because want is shorter than the pass.
//
// A peak outside the pass window is treated as the pass midpoint, which is
// also what callers without peak timing information should pass in.
func Adjust(pass models.TimeRange, peak time.Time, want time.Duration) (models.TimeRange, error) {
	if !pass.Start.Before(pass.End) {
		return models.TimeRange{}, ErrInvalidWindow
	}

	if want >= pass.Duration() {
		return pass, nil
	}

	if !pass.Contains(peak) {
		peak = pass.Midpoint()
	}

	start := peak.Add(-want / 2)
	end := start.Add(want)

	if start.Before(pass.Start) {
		start = pass.Start
		end = start.Add(want)
	} else if end.After(pass.End) {
		end = pass.End
		start = end.Add(-want)
	}

	return models.TimeRange{Start: start, End: end}, nil
}
