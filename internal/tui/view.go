/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package tui

import (
	"context"
	"fmt"

	"github.com/friendsincode/contactctl/internal/groundstation"
	"github.com/friendsincode/contactctl/internal/models"
)

// viewFlow lists existing contacts; with cancel set it restricts the listing
// to SCHEDULED contacts and offers to cancel a selection of them.
func (s *Session) viewFlow(ctx context.Context, cancel bool) error {
	t, err := s.selectTarget(ctx)
	if err != nil {
		return err
	}

	window, err := s.contactWindow(false)
	if err != nil {
		return err
	}

	statuses := models.LifecycleStatuses
	if cancel {
		statuses = []models.ContactStatus{models.StatusScheduled}
	}

	s.prompter.Say("Fetching contacts...")
	contacts, err := s.gw.ListContacts(ctx, groundstation.ContactQuery{
		SatelliteARN:      t.satellite.ARN,
		MissionProfileARN: t.profile.ARN,
		Stations:          t.stations,
		Window:            window,
		Statuses:          statuses,
	})
	if err != nil {
		return err
	}

	if len(contacts) == 0 {
		s.prompter.Say("No contacts with the specified parameters.")
		return nil
	}

	s.prompter.Render(contactTable("Contacts", contacts))

	if !cancel {
		return nil
	}

	picked, err := s.prompter.MultiSelect("Select the contacts you'd like to cancel. Confirm with none checked to exit.", contactLabels(contacts))
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		s.prompter.Say("No contacts selected. Exiting to main menu.")
		return nil
	}

	chosen := make([]models.Contact, 0, len(picked))
	for _, i := range picked {
		chosen = append(chosen, contacts[i])
	}

	s.prompter.Render(contactTable("Contacts to cancel", chosen))
	s.prompter.Warn("Cancelling on-demand contacts incurs their full cost.")

	ok, err := s.prompter.Confirm("Are you sure you want to cancel these contacts?", true)
	if err != nil {
		return err
	}
	if !ok {
		s.prompter.Say("No contacts cancelled. Exiting to main menu.")
		return nil
	}

	// One request per contact; failures are reported and skipped.
	cancelled := 0
	for _, c := range chosen {
		id, err := s.gw.Cancel(ctx, c.ID)
		if err != nil {
			s.prompter.Warn("failed to cancel contact %s: %v", c.ID, err)
			continue
		}
		cancelled++
		s.prompter.Say("Successfully cancelled contact with ID: %s", id)
	}

	s.prompter.Say("%d of %d contacts cancelled.", cancelled, len(chosen))
	return nil
}

func contactLabels(contacts []models.Contact) []string {
	labels := make([]string, 0, len(contacts))
	for _, c := range contacts {
		labels = append(labels, fmt.Sprintf("%s  %s - %s  %-14s  %-16s  %s",
			FormatDate(c.StartTime),
			c.StartTime.UTC().Format("15:04:05"),
			c.EndTime.UTC().Format("15:04:05"),
			c.GroundStation,
			c.Status,
			c.ID,
		))
	}
	return labels
}

func contactTable(title string, contacts []models.Contact) *Table {
	t := NewTable(title, "Date", "Start", "End", "Duration", "Ground station", "Profile", "Region", "Max elev", "Status", "Contact ID")
	for _, c := range contacts {
		t.AddRow(
			FormatDate(c.StartTime),
			c.StartTime.UTC().Format("15:04:05"),
			c.EndTime.UTC().Format("15:04:05"),
			c.Duration().String(),
			c.GroundStation,
			c.MissionProfileName,
			c.Region,
			fmt.Sprintf("%.1f", c.MaxElevation),
			string(c.Status),
			c.ID,
		)
	}
	return t
}
