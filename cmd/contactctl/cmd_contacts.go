/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/friendsincode/contactctl/internal/groundstation"
	"github.com/friendsincode/contactctl/internal/models"
	"github.com/friendsincode/contactctl/internal/tui"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List existing contacts",
	Long: `List the contacts of a satellite and mission profile within a date window,
optionally restricted to specific lifecycle statuses.`,
	RunE: runContacts,
}

var (
	contactsNoradID  int
	contactsProfile  string
	contactsStations []string
	contactsStart    string
	contactsEnd      string
	contactsStatuses []string
)

func init() {
	rootCmd.AddCommand(contactsCmd)

	contactsCmd.Flags().IntVar(&contactsNoradID, "norad-id", 0, "NORAD catalog number of the satellite (required)")
	contactsCmd.Flags().StringVar(&contactsProfile, "profile", "", "Mission profile name (required)")
	contactsCmd.Flags().StringSliceVar(&contactsStations, "stations", nil, "Ground station names (required)")
	contactsCmd.Flags().StringVar(&contactsStart, "start", "", "Window start date, YYYY-MM-DD (default today - lookahead)")
	contactsCmd.Flags().StringVar(&contactsEnd, "end", "", "Window end date, YYYY-MM-DD (default today + lookahead)")
	contactsCmd.Flags().StringSliceVar(&contactsStatuses, "status", nil, "Contact statuses to include (default all)")
	contactsCmd.MarkFlagRequired("norad-id")
	contactsCmd.MarkFlagRequired("profile")
	contactsCmd.MarkFlagRequired("stations")
}

func runContacts(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	statuses, err := parseStatuses(contactsStatuses)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	sat, profile, err := resolveTarget(ctx, client, contactsNoradID, contactsProfile)
	if err != nil {
		return err
	}

	window, err := flagWindow(contactsStart, contactsEnd, false)
	if err != nil {
		return err
	}

	contacts, err := client.ListContacts(ctx, groundstation.ContactQuery{
		SatelliteARN:      sat.ARN,
		MissionProfileARN: profile.ARN,
		Stations:          contactsStations,
		Window:            window,
		Statuses:          statuses,
	})
	if err != nil {
		return err
	}

	if len(contacts) == 0 {
		fmt.Println("No contacts with the specified parameters.")
		return nil
	}

	renderContacts("Contacts", contacts)
	return nil
}

// parseStatuses validates the --status values against the contact lifecycle.
// An empty list means every lifecycle status.
func parseStatuses(values []string) ([]models.ContactStatus, error) {
	if len(values) == 0 {
		return models.LifecycleStatuses, nil
	}
	statuses := make([]models.ContactStatus, 0, len(values))
	for _, v := range values {
		status := models.ContactStatus(strings.ToUpper(v))
		known := false
		for _, s := range models.LifecycleStatuses {
			if status == s {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown contact status %q", v)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func renderContacts(title string, contacts []models.Contact) {
	t := tui.NewTable(title, "Date", "Start", "End", "Duration", "Ground station", "Profile", "Region", "Max elev", "Status", "Contact ID")
	for _, c := range contacts {
		t.AddRow(
			tui.FormatDate(c.StartTime),
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
	fmt.Print(t.View(tui.DefaultStyles()))
}
