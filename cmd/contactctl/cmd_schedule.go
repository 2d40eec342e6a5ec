/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/friendsincode/contactctl/internal/groundstation"
	"github.com/friendsincode/contactctl/internal/models"
	"github.com/friendsincode/contactctl/internal/passwindow"
	"github.com/friendsincode/contactctl/internal/tui"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule contacts over the best passes in a window",
	Long: `List the available passes for a satellite and mission profile, filter them
by minimum elevation (and duration, unless --whole-pass), and reserve a
contact on each. Contacts shorter than their pass are scheduled in the
middle of the pass window to maximize elevation.`,
	RunE: runSchedule,
}

var (
	scheduleNoradID      int
	scheduleProfile      string
	scheduleStations     []string
	scheduleStart        string
	scheduleEnd          string
	scheduleMinElevation float64
	scheduleMinutes      int
	scheduleWholePass    bool
	scheduleYes          bool
)

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().IntVar(&scheduleNoradID, "norad-id", 0, "NORAD catalog number of the satellite (required)")
	scheduleCmd.Flags().StringVar(&scheduleProfile, "profile", "", "Mission profile name (required)")
	scheduleCmd.Flags().StringSliceVar(&scheduleStations, "stations", nil, "Ground station names (required)")
	scheduleCmd.Flags().StringVar(&scheduleStart, "start", "", "Window start date, YYYY-MM-DD (default today)")
	scheduleCmd.Flags().StringVar(&scheduleEnd, "end", "", "Window end date, YYYY-MM-DD (default start + lookahead)")
	scheduleCmd.Flags().Float64Var(&scheduleMinElevation, "min-elevation", 0, "Minimum maximum-elevation in degrees [1-90]")
	scheduleCmd.Flags().IntVar(&scheduleMinutes, "duration", 0, "Contact duration in minutes; omit with --whole-pass")
	scheduleCmd.Flags().BoolVar(&scheduleWholePass, "whole-pass", false, "Use the whole pass for each contact")
	scheduleCmd.Flags().BoolVar(&scheduleYes, "yes", false, "Reserve without asking for confirmation")
	scheduleCmd.MarkFlagRequired("norad-id")
	scheduleCmd.MarkFlagRequired("profile")
	scheduleCmd.MarkFlagRequired("stations")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if !scheduleWholePass && scheduleMinutes == 0 {
		return fmt.Errorf("either --duration or --whole-pass is required")
	}
	if !scheduleWholePass && (scheduleMinutes < 1 || scheduleMinutes > cfg.MaxContactMinutes) {
		return fmt.Errorf("--duration must be between 1 and %d minutes", cfg.MaxContactMinutes)
	}
	if scheduleMinElevation < 0 || scheduleMinElevation > 90 {
		return fmt.Errorf("--min-elevation must be within [0,90]")
	}

	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	sat, profile, err := resolveTarget(ctx, client, scheduleNoradID, scheduleProfile)
	if err != nil {
		return err
	}

	window, err := flagWindow(scheduleStart, scheduleEnd, true)
	if err != nil {
		return err
	}

	passes, err := client.ListPasses(ctx, groundstation.PassQuery{
		SatelliteARN:      sat.ARN,
		MissionProfileARN: profile.ARN,
		Stations:          scheduleStations,
		Window:            window,
	})
	if err != nil {
		return err
	}

	want := time.Duration(scheduleMinutes) * time.Minute
	suitable := passwindow.FilterByElevation(passes, scheduleMinElevation)
	if !scheduleWholePass {
		suitable = passwindow.FilterByDuration(suitable, want)
	}
	if len(suitable) == 0 {
		fmt.Println("No available passes meet the requirements.")
		if longest := passwindow.LongestPass(passes); longest > 0 {
			fmt.Printf("The longest pass in this window lasts %s.\n", longest)
		}
		return nil
	}

	plan, err := passwindow.BuildPlan(suitable, scheduleWholePass, want)
	if err != nil {
		return err
	}

	renderPlan(plan)

	if !scheduleYes {
		ok, err := tui.NewTerminalPrompter().Confirm(fmt.Sprintf("Schedule these %d contacts?", len(plan)), true)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("No contacts scheduled.")
			return nil
		}
	}

	batchID := groundstation.NewBatchID()
	scheduled := 0
	for _, pc := range plan {
		id, err := client.Reserve(ctx, groundstation.Reservation{
			SatelliteARN:      sat.ARN,
			MissionProfileARN: profile.ARN,
			GroundStation:     pc.Pass.GroundStation,
			Window:            pc.Window,
			BatchID:           batchID,
		})
		if err != nil {
			fmt.Printf("failed to schedule contact at %s: %v\n", pc.Pass.GroundStation, err)
			continue
		}
		scheduled++
		fmt.Printf("Scheduled contact ID: %s\n", id)
	}
	fmt.Printf("%d of %d contacts scheduled.\n", scheduled, len(plan))
	return nil
}

// resolveTarget turns the operator-facing identifiers into ARNs.
func resolveTarget(ctx context.Context, client *groundstation.Client, noradID int, profileName string) (models.Satellite, models.MissionProfile, error) {
	sat, err := client.SatelliteByNoradID(ctx, noradID)
	if err != nil {
		return models.Satellite{}, models.MissionProfile{}, err
	}
	profile, err := client.MissionProfileByName(ctx, profileName)
	if err != nil {
		return models.Satellite{}, models.MissionProfile{}, err
	}
	return sat, profile, nil
}

// flagWindow builds the search window from --start/--end, applying the same
// booking rules the interactive prompts enforce.
func flagWindow(startStr, endStr string, futureOnly bool) (models.TimeRange, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	horizon := today.Add(cfg.Lookahead())

	start := today
	if !futureOnly {
		start = today.Add(-cfg.Lookahead())
	}
	if startStr != "" {
		var err error
		start, err = tui.ParseDate(startStr)
		if err != nil {
			return models.TimeRange{}, fmt.Errorf("--start: %w", err)
		}
	}

	end := horizon
	if endStr != "" {
		var err error
		end, err = tui.ParseDate(endStr)
		if err != nil {
			return models.TimeRange{}, fmt.Errorf("--end: %w", err)
		}
	}

	if futureOnly {
		if start.Before(today) {
			return models.TimeRange{}, fmt.Errorf("the start date cannot be in the past")
		}
		if end.After(horizon) {
			return models.TimeRange{}, fmt.Errorf("on-demand contacts can only be booked %d days in advance", cfg.LookaheadDays)
		}
	}

	return models.NewTimeRange(start, end)
}

func renderPlan(plan []passwindow.PlannedContact) {
	t := tui.NewTable("Contacts to schedule", "Date", "Start", "End", "Duration", "Ground station", "Region", "Max elevation")
	for _, pc := range plan {
		t.AddRow(
			tui.FormatDate(pc.Window.Start),
			pc.Window.Start.UTC().Format("15:04:05"),
			pc.Window.End.UTC().Format("15:04:05"),
			pc.Window.Duration().String(),
			pc.Pass.GroundStation,
			pc.Pass.Region,
			fmt.Sprintf("%.1f", pc.Pass.MaxElevation),
		)
	}
	fmt.Print(t.View(tui.DefaultStyles()))
}
