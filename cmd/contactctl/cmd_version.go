/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friendsincode/contactctl/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the contactctl version",
	RunE:  runVersion,
}

var versionCheck bool

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("contactctl %s\n", version.Version)

	if !versionCheck {
		return nil
	}

	info, err := version.CheckLatest(cmd.Context())
	if err != nil {
		return fmt.Errorf("release check failed: %w", err)
	}
	if info.UpdateAvailable {
		fmt.Printf("A newer release is available: %s (%s)\n", info.LatestVersion, info.ReleaseURL)
		if info.ReleaseNotes != "" {
			fmt.Printf("  %s\n", info.ReleaseNotes)
		}
	} else {
		fmt.Println("You are on the latest release.")
	}
	return nil
}
