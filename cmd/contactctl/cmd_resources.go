/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/friendsincode/contactctl/internal/tui"
)

var satellitesCmd = &cobra.Command{
	Use:   "satellites",
	Short: "List the onboarded satellites",
	RunE:  runSatellites,
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the mission profiles of the configured region",
	RunE:  runProfiles,
}

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List the ground stations onboarded for a satellite",
	RunE:  runStations,
}

var stationsNoradID int

func init() {
	rootCmd.AddCommand(satellitesCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(stationsCmd)

	stationsCmd.Flags().IntVar(&stationsNoradID, "norad-id", 0, "NORAD catalog number of the satellite (required)")
	stationsCmd.MarkFlagRequired("norad-id")
}

func runSatellites(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	satellites, err := client.Satellites(cmd.Context())
	if err != nil {
		return err
	}
	if len(satellites) == 0 {
		fmt.Println("No satellites onboarded.")
		return nil
	}

	t := tui.NewTable("Satellites", "NORAD ID", "Satellite ID", "ARN")
	for _, s := range satellites {
		t.AddRow(strconv.Itoa(s.NoradID), s.ID, s.ARN)
	}
	fmt.Print(t.View(tui.DefaultStyles()))
	return nil
}

func runProfiles(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	profiles, err := client.MissionProfiles(cmd.Context())
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Println("No mission profiles in this region.")
		return nil
	}

	t := tui.NewTable("Mission profiles", "Name", "Region", "Profile ID")
	for _, p := range profiles {
		t.AddRow(p.Name, p.Region, p.ID)
	}
	fmt.Print(t.View(tui.DefaultStyles()))
	return nil
}

func runStations(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	sat, err := client.SatelliteByNoradID(cmd.Context(), stationsNoradID)
	if err != nil {
		return err
	}
	stations, err := client.GroundStations(cmd.Context(), sat.ID)
	if err != nil {
		return err
	}
	if len(stations) == 0 {
		fmt.Println("No ground stations onboarded for this satellite.")
		return nil
	}

	t := tui.NewTable(fmt.Sprintf("Ground stations for NORAD %d", stationsNoradID), "Name", "Region", "Station ID")
	for _, g := range stations {
		t.AddRow(g.Name, g.Region, g.ID)
	}
	fmt.Print(t.View(tui.DefaultStyles()))
	return nil
}
