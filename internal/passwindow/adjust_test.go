package passwindow

import (
	"errors"
	"testing"
	"time"

	"github.com/friendsincode/contactctl/internal/models"
)

var epoch = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func at(sec int) time.Time { return epoch.Add(time.Duration(sec) * time.Second) }

func window(startSec, endSec int) models.TimeRange {
	return models.TimeRange{Start: at(startSec), End: at(endSec)}
}

func TestAdjust_RequestedCoversWholePass(t *testing.T) {
	pass := window(1000, 1400)

	for _, want := range []time.Duration{400 * time.Second, 500 * time.Second} {
		got, err := Adjust(pass, at(1200), want)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Start.Equal(pass.Start) || !got.End.Equal(pass.End) {
			t.Fatalf("want full pass %v..%v, got %v..%v", pass.Start, pass.End, got.Start, got.End)
		}
	}
}

func TestAdjust_CenteredOnPeakWhenItFits(t *testing.T) {
	// Pass [1000,1400], peak 1300, 200s contact: centered window [1200,1400]
	// fits without clamping.
	got, err := Adjust(window(1000, 1400), at(1300), 200*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Start.Equal(at(1200)) || !got.End.Equal(at(1400)) {
		t.Fatalf("want [1200,1400], got [%v,%v]", got.Start, got.End)
	}
	if !got.Midpoint().Equal(at(1300)) {
		t.Fatalf("midpoint should sit on the peak, got %v", got.Midpoint())
	}
}

func TestAdjust_ClampsToPassEnd(t *testing.T) {
	// Peak near the end: centered [1340,1440] leaks past 1400, shift back to
	// [1300,1400].
	got, err := Adjust(window(1000, 1400), at(1390), 100*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Start.Equal(at(1300)) || !got.End.Equal(at(1400)) {
		t.Fatalf("want [1300,1400], got [%v,%v]", got.Start, got.End)
	}
}

func TestAdjust_ClampsToPassStart(t *testing.T) {
	got, err := Adjust(window(1000, 1400), at(1010), 100*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Start.Equal(at(1000)) || !got.End.Equal(at(1100)) {
		t.Fatalf("want [1000,1100], got [%v,%v]", got.Start, got.End)
	}
}

func TestAdjust_LengthAndBoundsInvariants(t *testing.T) {
	pass := window(1000, 1400)

	for peakSec := 1000; peakSec <= 1400; peakSec += 25 {
		for _, want := range []time.Duration{60 * time.Second, 200 * time.Second, 399 * time.Second, 400 * time.Second, 600 * time.Second} {
			got, err := Adjust(pass, at(peakSec), want)
			if err != nil {
				t.Fatalf("peak=%d want=%s: %v", peakSec, want, err)
			}

			expectLen := want
			if want >= pass.Duration() {
				expectLen = pass.Duration()
			}
			if got.Duration() != expectLen {
				t.Fatalf("peak=%d want=%s: length %s, expected %s", peakSec, want, got.Duration(), expectLen)
			}
			if got.Start.Before(pass.Start) || got.End.After(pass.End) {
				t.Fatalf("peak=%d want=%s: window [%v,%v] escapes the pass", peakSec, want, got.Start, got.End)
			}
		}
	}
}

func TestAdjust_PeakOutsidePassFallsBackToMidpoint(t *testing.T) {
	got, err := Adjust(window(1000, 1400), at(2000), 100*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Midpoint().Equal(at(1200)) {
		t.Fatalf("expected centering on pass midpoint 1200, got midpoint %v", got.Midpoint())
	}
}

func TestAdjust_MalformedWindow(t *testing.T) {
	_, err := Adjust(window(1400, 1000), at(1200), 100*time.Second)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("want ErrInvalidWindow, got %v", err)
	}

	_, err = Adjust(window(1000, 1000), at(1000), 100*time.Second)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("zero-length pass: want ErrInvalidWindow, got %v", err)
	}
}
