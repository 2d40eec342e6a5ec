/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package version

import "testing"

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"0.3.0", "0.3.0", 0},
		{"0.3.0", "0.3.1", -1},
		{"1.0.0", "0.9.9", 1},
		{"v1.2.0", "1.2.0", 0},
		{"1.2", "1.2.0", 0},
	}
	for _, c := range cases {
		if got := compareVersions(c.a, c.b); got != c.want {
			t.Fatalf("compareVersions(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestTruncateNotes(t *testing.T) {
	if got := truncateNotes("first line\nsecond line", 200); got != "first line" {
		t.Fatalf("want first line only, got %q", got)
	}
	long := truncateNotes("aaaaaaaaaaaaaaaaaaaa", 10)
	if len(long) != 10 {
		t.Fatalf("want length 10, got %d (%q)", len(long), long)
	}
}
