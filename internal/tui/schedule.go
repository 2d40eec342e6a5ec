/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/friendsincode/contactctl/internal/groundstation"
	"github.com/friendsincode/contactctl/internal/models"
	"github.com/friendsincode/contactctl/internal/passwindow"
)

func (s *Session) scheduleFlow(ctx context.Context) error {
	t, err := s.selectTarget(ctx)
	if err != nil {
		return err
	}

	window, err := s.contactWindow(true)
	if err != nil {
		return err
	}

	elevDef := ""
	if s.cfg.MinElevation > 0 {
		elevDef = strconv.FormatFloat(s.cfg.MinElevation, 'f', -1, 64)
	}
	elevStr, err := s.prompter.Input("Enter the minimum elevation requirement in degrees", elevDef, ElevationValidator)
	if err != nil {
		return err
	}
	minElevation, _ := strconv.ParseFloat(elevStr, 64)

	wholePass, err := s.prompter.Confirm("Would you like to use the whole pass for the contact?", true)
	if err != nil {
		return err
	}

	var want time.Duration
	if !wholePass {
		s.prompter.Say("Contacts shorter than the complete pass are scheduled in the middle of the pass window to maximize elevation.")
		minsStr, err := s.prompter.Input("Enter the required contact duration in minutes", "", DurationValidator(s.cfg.MaxContactMinutes))
		if err != nil {
			return err
		}
		mins, _ := strconv.Atoi(minsStr)
		want = time.Duration(mins) * time.Minute
	}

	s.prompter.Say("Fetching available passes...")
	passes, err := s.gw.ListPasses(ctx, groundstation.PassQuery{
		SatelliteARN:      t.satellite.ARN,
		MissionProfileARN: t.profile.ARN,
		Stations:          t.stations,
		Window:            window,
	})
	if err != nil {
		return err
	}

	suitable := passwindow.FilterByElevation(passes, minElevation)
	if !wholePass {
		suitable = passwindow.FilterByDuration(suitable, want)
	}

	if len(suitable) == 0 {
		s.prompter.Say("No available passes meet the %g degree elevation%s requirement.", minElevation, durationClause(wholePass, want))
		if longest := passwindow.LongestPass(passes); longest > 0 {
			s.prompter.Say("The longest pass in this window lasts %s.", longest)
		}
		return nil
	}

	s.prompter.Say("There are %d passes that meet the %g degree elevation%s requirement.", len(suitable), minElevation, durationClause(wholePass, want))

	picked, err := s.prompter.MultiSelect("Select the passes you'd like to use. Confirm with none checked to exit.", passLabels(suitable))
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		s.prompter.Say("No passes selected. Exiting to main menu.")
		return nil
	}

	chosen := make([]models.Pass, 0, len(picked))
	for _, i := range picked {
		chosen = append(chosen, suitable[i])
	}

	plan, err := passwindow.BuildPlan(chosen, wholePass, want)
	if err != nil {
		return err
	}

	s.prompter.Render(planTable(plan))

	ok, err := s.prompter.Confirm("Are you sure you want to schedule these contacts?", true)
	if err != nil {
		return err
	}
	if !ok {
		s.prompter.Say("No contacts scheduled. Exiting to main menu.")
		return nil
	}

	// One request per contact; a failure never rolls back or blocks the rest.
	batchID := groundstation.NewBatchID()
	scheduled := 0
	for _, pc := range plan {
		id, err := s.gw.Reserve(ctx, groundstation.Reservation{
			SatelliteARN:      t.satellite.ARN,
			MissionProfileARN: t.profile.ARN,
			GroundStation:     pc.Pass.GroundStation,
			Window:            pc.Window,
			BatchID:           batchID,
		})
		if err != nil {
			s.prompter.Warn("failed to schedule contact at %s: %v", pc.Pass.GroundStation, err)
			continue
		}
		scheduled++
		s.prompter.Say("Scheduled contact ID: %s", id)
	}

	s.prompter.Say("%d of %d contacts scheduled.", scheduled, len(plan))
	return nil
}

func durationClause(wholePass bool, want time.Duration) string {
	if wholePass {
		return ""
	}
	return fmt.Sprintf(" and %s duration", want)
}

func passLabels(passes []models.Pass) []string {
	labels := make([]string, 0, len(passes))
	for _, p := range passes {
		start := p.StartTime.UTC()
		labels = append(labels, fmt.Sprintf("%s  %s - %s  %-8s  %-14s  %-12s  %.1f deg",
			start.Format("2006-01-02"),
			start.Format("15:04:05"),
			p.EndTime.UTC().Format("15:04:05"),
			p.Duration(),
			p.GroundStation,
			p.Region,
			p.MaxElevation,
		))
	}
	return labels
}

func planTable(plan []passwindow.PlannedContact) *Table {
	t := NewTable("Selected contacts", "Date", "Start", "End", "Duration", "Ground station", "Region", "Max elevation")
	for _, pc := range plan {
		t.AddRow(
			FormatDate(pc.Window.Start),
			pc.Window.Start.UTC().Format("15:04:05"),
			pc.Window.End.UTC().Format("15:04:05"),
			pc.Window.Duration().String(),
			pc.Pass.GroundStation,
			pc.Pass.Region,
			fmt.Sprintf("%.1f", pc.Pass.MaxElevation),
		)
	}
	return t
}
