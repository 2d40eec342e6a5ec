/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package passwindow

import (
	"sort"
	"time"

	"github.com/friendsincode/contactctl/internal/models"
)

// FilterByElevation keeps the passes whose maximum elevation reaches at
// least min degrees, preserving input order.
func FilterByElevation(passes []models.Pass, min float64) []models.Pass {
	out := make([]models.Pass, 0, len(passes))
	for _, p := range passes {
		if p.MaxElevation >= min {
			out = append(out, p)
		}
	}
	return out
}

// FilterByDuration keeps the passes long enough to host a contact of the
// requested length, preserving input order.
func FilterByDuration(passes []models.Pass, want time.Duration) []models.Pass {
	out := make([]models.Pass, 0, len(passes))
	for _, p := range passes {
		if p.Duration() > want {
			out = append(out, p)
		}
	}
	return out
}

// LongestPass returns the longest pass duration in the slice, or zero for an
// empty slice. Used to tell the operator what the window could have offered.
func LongestPass(passes []models.Pass) time.Duration {
	var longest time.Duration
	for _, p := range passes {
		if d := p.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

// SortByStart orders passes chronologically in place.
func SortByStart(passes []models.Pass) {
	sort.SliceStable(passes, func(i, j int) bool {
		return passes[i].StartTime.Before(passes[j].StartTime)
	})
}
