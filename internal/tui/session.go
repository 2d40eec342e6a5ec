/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/friendsincode/contactctl/internal/config"
	"github.com/friendsincode/contactctl/internal/groundstation"
	"github.com/friendsincode/contactctl/internal/models"
)

// Gateway is the slice of the scheduling client the session needs.
// *groundstation.Client satisfies it; tests use a fake.
type Gateway interface {
	Satellites(ctx context.Context) ([]models.Satellite, error)
	MissionProfiles(ctx context.Context) ([]models.MissionProfile, error)
	GroundStations(ctx context.Context, satelliteID string) ([]models.GroundStation, error)
	ListPasses(ctx context.Context, q groundstation.PassQuery) ([]models.Pass, error)
	ListContacts(ctx context.Context, q groundstation.ContactQuery) ([]models.Contact, error)
	Reserve(ctx context.Context, r groundstation.Reservation) (string, error)
	Cancel(ctx context.Context, contactID string) (string, error)
}

// Session drives the interactive menu loop. One remote call at a time,
// blocking; all lifecycle state stays with the remote service.
type Session struct {
	gw       Gateway
	prompter Prompter
	cfg      *config.Config
	logger   zerolog.Logger

	// now is swappable for tests of the booking-window rules.
	now func() time.Time
}

// NewSession wires a session from its collaborators.
func NewSession(gw Gateway, prompter Prompter, cfg *config.Config, logger zerolog.Logger) *Session {
	return &Session{
		gw:       gw,
		prompter: prompter,
		cfg:      cfg,
		logger:   logger.With().Str("component", "session").Logger(),
		now:      time.Now,
	}
}

// Run loops on the action menu until the operator quits.
func (s *Session) Run(ctx context.Context) error {
	actions := []string{"Schedule contacts", "View contacts", "Cancel contacts", "Quit"}

	for {
		choice, err := s.prompter.Select("What would you like to do?", actions)
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}

		switch choice {
		case 0:
			err = s.scheduleFlow(ctx)
		case 1:
			err = s.viewFlow(ctx, false)
		case 2:
			err = s.viewFlow(ctx, true)
		default:
			return nil
		}

		if err != nil {
			if errors.Is(err, ErrAborted) {
				continue
			}
			// Remote errors surface as-is and drop back to the menu;
			// nothing here is retried.
			s.prompter.Warn("error: %v", err)
			s.logger.Error().Err(err).Msg("flow failed")
		}
	}
}

// target is the satellite/profile/station scope every flow starts with.
type target struct {
	satellite models.Satellite
	profile   models.MissionProfile
	stations  []string
}

func (s *Session) selectTarget(ctx context.Context) (target, error) {
	var t target

	sats, err := s.gw.Satellites(ctx)
	if err != nil {
		return t, err
	}
	if len(sats) == 0 {
		s.prompter.Say("No onboarded satellites in the region.")
		return t, ErrAborted
	}

	items := make([]string, 0, len(sats)+1)
	for _, sat := range sats {
		items = append(items, strconv.Itoa(sat.NoradID))
	}
	items = append(items, "Exit")

	choice, err := s.prompter.Select("Which satellite would you like to use?", items)
	if err != nil {
		return t, err
	}
	if choice < 0 || choice >= len(sats) {
		return t, ErrAborted
	}
	t.satellite = sats[choice]

	profiles, err := s.gw.MissionProfiles(ctx)
	if err != nil {
		return t, err
	}
	if len(profiles) == 0 {
		s.prompter.Say("No available mission profiles in this region.")
		return t, ErrAborted
	}

	items = items[:0]
	for _, p := range profiles {
		items = append(items, fmt.Sprintf("%-30s  --  %s", p.Name, p.Region))
	}
	items = append(items, "Exit")

	choice, err = s.prompter.Select("Which mission profile would you like to use?", items)
	if err != nil {
		return t, err
	}
	if choice < 0 || choice >= len(profiles) {
		return t, ErrAborted
	}
	t.profile = profiles[choice]

	stations, err := s.gw.GroundStations(ctx, t.satellite.ID)
	if err != nil {
		return t, err
	}
	if len(stations) == 0 {
		s.prompter.Say("No onboarded ground stations for this satellite.")
		return t, ErrAborted
	}

	names := make([]string, 0, len(stations))
	for _, g := range stations {
		names = append(names, g.Name)
	}

	picked, err := s.prompter.MultiSelect("Select the ground stations you'd like to use. Confirm with none checked to exit.", names)
	if err != nil {
		return t, err
	}
	if len(picked) == 0 {
		s.prompter.Say("No ground station selected. Exiting to main menu.")
		return t, ErrAborted
	}
	for _, i := range picked {
		t.stations = append(t.stations, names[i])
	}

	return t, nil
}

// contactWindow prompts for the search window. In future-only mode the
// window must fall within the next LookaheadDays days, since on-demand
// contacts can only be booked that far ahead; otherwise it may reach the
// same distance into the past.
func (s *Session) contactWindow(futureOnly bool) (models.TimeRange, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	horizon := today.Add(s.cfg.Lookahead())

	defStart := today
	if !futureOnly {
		defStart = today.Add(-s.cfg.Lookahead())
	}

	startValidate := func(v string) error {
		if err := DateValidator(v); err != nil {
			return err
		}
		d, _ := ParseDate(v)
		if futureOnly && d.Before(today) {
			return fmt.Errorf("the start date cannot be in the past")
		}
		if futureOnly && d.After(horizon) {
			return fmt.Errorf("on-demand contacts can only be booked %d days in advance", s.cfg.LookaheadDays)
		}
		return nil
	}

	startStr, err := s.prompter.Input("Enter the contact window start [YYYY-MM-DD].", FormatDate(defStart), startValidate)
	if err != nil {
		return models.TimeRange{}, err
	}
	start, _ := ParseDate(startStr)

	endValidate := func(v string) error {
		if err := DateValidator(v); err != nil {
			return err
		}
		d, _ := ParseDate(v)
		if !d.After(start) {
			return fmt.Errorf("the end date has to be after the start date")
		}
		if futureOnly && d.After(horizon) {
			return fmt.Errorf("on-demand contacts can only be booked %d days in advance", s.cfg.LookaheadDays)
		}
		return nil
	}

	endStr, err := s.prompter.Input("Enter the contact window end   [YYYY-MM-DD].", FormatDate(horizon), endValidate)
	if err != nil {
		return models.TimeRange{}, err
	}
	end, _ := ParseDate(endStr)

	return models.NewTimeRange(start, end)
}
