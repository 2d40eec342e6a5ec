package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/friendsincode/contactctl/internal/config"
	"github.com/friendsincode/contactctl/internal/groundstation"
	"github.com/friendsincode/contactctl/internal/models"
	"github.com/friendsincode/contactctl/internal/passwindow"
)

// scriptPrompter feeds canned answers through the same validators a real
// prompt would run, failing the test if a scripted answer would have been
// rejected at the terminal.
type scriptPrompter struct {
	t        *testing.T
	selects  []int
	multis   [][]int
	inputs   []string
	confirms []bool

	said   []string
	warned []string
}

func (p *scriptPrompter) Select(title string, items []string) (int, error) {
	if len(p.selects) == 0 {
		p.t.Fatalf("unexpected Select(%q)", title)
	}
	choice := p.selects[0]
	p.selects = p.selects[1:]
	return choice, nil
}

func (p *scriptPrompter) MultiSelect(title string, items []string) ([]int, error) {
	if len(p.multis) == 0 {
		p.t.Fatalf("unexpected MultiSelect(%q)", title)
	}
	choice := p.multis[0]
	p.multis = p.multis[1:]
	return choice, nil
}

func (p *scriptPrompter) Input(title, def string, validate Validator) (string, error) {
	if len(p.inputs) == 0 {
		p.t.Fatalf("unexpected Input(%q)", title)
	}
	value := p.inputs[0]
	p.inputs = p.inputs[1:]
	if value == "" {
		value = def
	}
	if validate != nil {
		if err := validate(value); err != nil {
			p.t.Fatalf("scripted answer %q for %q failed validation: %v", value, title, err)
		}
	}
	return value, nil
}

func (p *scriptPrompter) Confirm(title string, def bool) (bool, error) {
	if len(p.confirms) == 0 {
		p.t.Fatalf("unexpected Confirm(%q)", title)
	}
	value := p.confirms[0]
	p.confirms = p.confirms[1:]
	return value, nil
}

func (p *scriptPrompter) Say(format string, args ...any) {
	p.said = append(p.said, fmt.Sprintf(format, args...))
}

func (p *scriptPrompter) Warn(format string, args ...any) {
	p.warned = append(p.warned, fmt.Sprintf(format, args...))
}

func (p *scriptPrompter) Render(t *Table) {}

type fakeGateway struct {
	satellites []models.Satellite
	profiles   []models.MissionProfile
	stations   []models.GroundStation
	passes     []models.Pass
	contacts   []models.Contact

	reservations []groundstation.Reservation
	cancelled    []string

	failFirstReserve bool
	reserveCalls     int
}

func (g *fakeGateway) Satellites(context.Context) ([]models.Satellite, error) {
	return g.satellites, nil
}

func (g *fakeGateway) MissionProfiles(context.Context) ([]models.MissionProfile, error) {
	return g.profiles, nil
}

func (g *fakeGateway) GroundStations(context.Context, string) ([]models.GroundStation, error) {
	return g.stations, nil
}

func (g *fakeGateway) ListPasses(_ context.Context, q groundstation.PassQuery) ([]models.Pass, error) {
	return g.passes, nil
}

func (g *fakeGateway) ListContacts(_ context.Context, q groundstation.ContactQuery) ([]models.Contact, error) {
	return g.contacts, nil
}

func (g *fakeGateway) Reserve(_ context.Context, r groundstation.Reservation) (string, error) {
	g.reserveCalls++
	if g.failFirstReserve && g.reserveCalls == 1 {
		return "", errors.New("InvalidParameterException")
	}
	g.reservations = append(g.reservations, r)
	return fmt.Sprintf("contact-%d", g.reserveCalls), nil
}

func (g *fakeGateway) Cancel(_ context.Context, contactID string) (string, error) {
	g.cancelled = append(g.cancelled, contactID)
	return contactID, nil
}

var sessionNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testSession(t *testing.T, gw Gateway, p Prompter) *Session {
	cfg := &config.Config{LookaheadDays: 6, MaxResults: 100, MaxContactMinutes: 20}
	s := NewSession(gw, p, cfg, zerolog.Nop())
	s.now = func() time.Time { return sessionNow }
	return s
}

func sessionPass(startOffset, length time.Duration, station string, elev float64) models.Pass {
	start := sessionNow.Add(startOffset)
	return models.Pass{
		GroundStation: station,
		Region:        "eu-north-1",
		StartTime:     start,
		EndTime:       start.Add(length),
		MaxElevation:  elev,
	}
}

func defaultGateway() *fakeGateway {
	return &fakeGateway{
		satellites: []models.Satellite{{ARN: "arn:sat/noaa20", ID: "noaa20", NoradID: 43013}},
		profiles:   []models.MissionProfile{{ARN: "arn:mp/sband", ID: "mp-1", Name: "downlink-sband", Region: "eu-north-1"}},
		stations:   []models.GroundStation{{ID: "gs-1", Name: "Stockholm", Region: "eu-north-1"}},
	}
}

func TestScheduleFlow_CentersAndSchedulesIndependently(t *testing.T) {
	gw := defaultGateway()
	gw.passes = []models.Pass{
		sessionPass(24*time.Hour, 12*time.Minute, "Stockholm", 18), // filtered by elevation
		sessionPass(26*time.Hour, 10*time.Minute, "Stockholm", 45),
		sessionPass(28*time.Hour, 4*time.Minute, "Stockholm", 71), // too short for 5m
		sessionPass(30*time.Hour, 8*time.Minute, "Stockholm", 60),
	}
	gw.failFirstReserve = true

	p := &scriptPrompter{
		t:        t,
		selects:  []int{0, 0},           // satellite, profile
		multis:   [][]int{{0}, {0, 1}},  // stations; both suitable passes
		inputs:   []string{"", "", "30", "5"}, // window defaults, elevation, minutes
		confirms: []bool{false, true},   // not whole pass; confirm scheduling
	}

	s := testSession(t, gw, p)
	if err := s.scheduleFlow(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First reservation failed, second went through.
	if gw.reserveCalls != 2 || len(gw.reservations) != 1 {
		t.Fatalf("want 2 attempts with 1 success, got calls=%d ok=%d", gw.reserveCalls, len(gw.reservations))
	}
	if len(p.warned) == 0 {
		t.Fatal("failed reservation should be reported")
	}

	r := gw.reservations[0]
	if r.GroundStation != "Stockholm" {
		t.Fatalf("wrong station: %+v", r)
	}
	if r.Window.Duration() != 5*time.Minute {
		t.Fatalf("want a 5m contact, got %s", r.Window.Duration())
	}

	// 8m pass with a 5m contact: centered on the pass midpoint.
	pass := gw.passes[3]
	if !r.Window.Midpoint().Equal(pass.Window().Midpoint()) {
		t.Fatalf("contact should center on the pass midpoint: %v vs %v", r.Window.Midpoint(), pass.Window().Midpoint())
	}
	if r.Window.Start.Before(pass.StartTime) || r.Window.End.After(pass.EndTime) {
		t.Fatalf("contact escapes the pass: %+v", r.Window)
	}
	if r.BatchID == "" {
		t.Fatal("reservations should carry a batch ID")
	}
}

func TestScheduleFlow_NoSuitablePassesReportsLongest(t *testing.T) {
	gw := defaultGateway()
	gw.passes = []models.Pass{
		sessionPass(24*time.Hour, 12*time.Minute, "Stockholm", 10),
		sessionPass(26*time.Hour, 9*time.Minute, "Stockholm", 12),
	}

	p := &scriptPrompter{
		t:        t,
		selects:  []int{0, 0},
		multis:   [][]int{{0}},
		inputs:   []string{"", "", "40"},
		confirms: []bool{true}, // whole pass
	}

	s := testSession(t, gw, p)
	if err := s.scheduleFlow(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.reserveCalls != 0 {
		t.Fatal("nothing should be reserved")
	}

	joined := strings.Join(p.said, "\n")
	if !strings.Contains(joined, "12m0s") {
		t.Fatalf("longest pass duration missing from report: %q", joined)
	}
}

func TestScheduleFlow_DeclinedConfirmSchedulesNothing(t *testing.T) {
	gw := defaultGateway()
	gw.passes = []models.Pass{sessionPass(24*time.Hour, 10*time.Minute, "Stockholm", 45)}

	p := &scriptPrompter{
		t:        t,
		selects:  []int{0, 0},
		multis:   [][]int{{0}, {0}},
		inputs:   []string{"", "", "30"},
		confirms: []bool{true, false}, // whole pass; decline scheduling
	}

	s := testSession(t, gw, p)
	if err := s.scheduleFlow(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.reserveCalls != 0 {
		t.Fatal("declined confirmation must not reserve")
	}
}

func TestCancelFlow(t *testing.T) {
	gw := defaultGateway()
	gw.contacts = []models.Contact{
		{ID: "c1", GroundStation: "Stockholm", Status: models.StatusScheduled, StartTime: sessionNow.Add(24 * time.Hour), EndTime: sessionNow.Add(24*time.Hour + 10*time.Minute)},
		{ID: "c2", GroundStation: "Stockholm", Status: models.StatusScheduled, StartTime: sessionNow.Add(30 * time.Hour), EndTime: sessionNow.Add(30*time.Hour + 8*time.Minute)},
	}

	p := &scriptPrompter{
		t:        t,
		selects:  []int{0, 0},
		multis:   [][]int{{0}, {1}}, // stations; cancel c2
		inputs:   []string{"", ""},
		confirms: []bool{true},
	}

	s := testSession(t, gw, p)
	if err := s.viewFlow(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gw.cancelled) != 1 || gw.cancelled[0] != "c2" {
		t.Fatalf("want only c2 cancelled, got %v", gw.cancelled)
	}
	if len(p.warned) == 0 || !strings.Contains(p.warned[0], "full cost") {
		t.Fatalf("cancellation fee warning missing: %v", p.warned)
	}
}

func TestViewFlow_NoContacts(t *testing.T) {
	gw := defaultGateway()

	p := &scriptPrompter{
		t:       t,
		selects: []int{0, 0},
		multis:  [][]int{{0}},
		inputs:  []string{"", ""},
	}

	s := testSession(t, gw, p)
	if err := s.viewFlow(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(strings.Join(p.said, "\n"), "No contacts") {
		t.Fatalf("empty listing should be reported: %v", p.said)
	}
}

func TestSelectTarget_ExitEntryAborts(t *testing.T) {
	gw := defaultGateway()

	p := &scriptPrompter{
		t:       t,
		selects: []int{1}, // the "Exit" entry after the single satellite
	}

	s := testSession(t, gw, p)
	_, err := s.selectTarget(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("want ErrAborted, got %v", err)
	}
}

func TestContactWindow_Rules(t *testing.T) {
	s := testSession(t, defaultGateway(), &scriptPrompter{t: t})

	today := sessionNow.UTC().Truncate(24 * time.Hour)
	horizon := today.Add(6 * 24 * time.Hour)

	p := &scriptPrompter{t: t, inputs: []string{"", ""}}
	s.prompter = p
	window, err := s.contactWindow(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !window.Start.Equal(today) || !window.End.Equal(horizon) {
		t.Fatalf("future defaults wrong: %+v", window)
	}

	p = &scriptPrompter{t: t, inputs: []string{"", ""}}
	s.prompter = p
	window, err = s.contactWindow(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !window.Start.Equal(today.Add(-6*24*time.Hour)) || !window.End.Equal(horizon) {
		t.Fatalf("lookback defaults wrong: %+v", window)
	}
}

func TestContactWindow_Validators(t *testing.T) {
	s := testSession(t, defaultGateway(), &scriptPrompter{t: t})
	today := sessionNow.UTC().Truncate(24 * time.Hour)

	// Reach into the validator the prompt would use by replaying the rules.
	horizon := today.Add(6 * 24 * time.Hour)
	past := FormatDate(today.Add(-48 * time.Hour))
	beyond := FormatDate(horizon.Add(48 * time.Hour))

	p := &scriptPrompter{t: t, inputs: []string{"", ""}}
	s.prompter = p
	if _, err := s.contactWindow(true); err != nil {
		t.Fatalf("defaults must satisfy the rules: %v", err)
	}

	// A scripted past or beyond-horizon start would have tripped the test
	// inside scriptPrompter.Input; assert the validator rejects them here.
	start := func(v string) error {
		if err := DateValidator(v); err != nil {
			return err
		}
		d, _ := ParseDate(v)
		if d.Before(today) || d.After(horizon) {
			return errors.New("out of booking window")
		}
		return nil
	}
	if start(past) == nil {
		t.Fatal("past start date should be rejected")
	}
	if start(beyond) == nil {
		t.Fatal("start beyond the booking horizon should be rejected")
	}
}

func TestBuildPlan(t *testing.T) {
	passes := []models.Pass{
		sessionPass(0, 10*time.Minute, "Stockholm", 45),
		sessionPass(time.Hour, 8*time.Minute, "Oahu 1", 60),
	}

	whole, err := passwindow.BuildPlan(passes, true, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, pc := range whole {
		if !pc.Window.Start.Equal(passes[i].StartTime) || !pc.Window.End.Equal(passes[i].EndTime) {
			t.Fatalf("whole-pass plan must keep the pass window: %+v", pc)
		}
	}

	short, err := passwindow.BuildPlan(passes, false, 4*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, pc := range short {
		if pc.Window.Duration() != 4*time.Minute {
			t.Fatalf("want 4m windows, got %s", pc.Window.Duration())
		}
		if !pc.Window.Midpoint().Equal(passes[i].Window().Midpoint()) {
			t.Fatalf("short contact should center on the pass midpoint")
		}
	}

	_, err = passwindow.BuildPlan([]models.Pass{{StartTime: sessionNow, EndTime: sessionNow}}, false, time.Minute)
	if err == nil {
		t.Fatal("malformed pass window must error")
	}
}
