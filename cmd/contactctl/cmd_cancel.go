/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friendsincode/contactctl/internal/tui"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel scheduled contacts by ID",
	Long: `Cancel one or more scheduled contacts. Each contact is cancelled with its
own request; a failure does not stop the remaining cancellations.

Cancelling on-demand contacts incurs their full cost.`,
	RunE: runCancel,
}

var (
	cancelContactIDs []string
	cancelYes        bool
)

func init() {
	rootCmd.AddCommand(cancelCmd)

	cancelCmd.Flags().StringSliceVar(&cancelContactIDs, "contact-id", nil, "Contact IDs to cancel (required)")
	cancelCmd.Flags().BoolVar(&cancelYes, "yes", false, "Cancel without asking for confirmation")
	cancelCmd.MarkFlagRequired("contact-id")
}

func runCancel(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	if !cancelYes {
		fmt.Println("Cancelling on-demand contacts incurs their full cost.")
		ok, err := tui.NewTerminalPrompter().Confirm(fmt.Sprintf("Are you sure you want to cancel these %d contacts?", len(cancelContactIDs)), true)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("No contacts cancelled.")
			return nil
		}
	}

	cancelled := 0
	for _, contactID := range cancelContactIDs {
		id, err := client.Cancel(ctx, contactID)
		if err != nil {
			fmt.Printf("failed to cancel contact %s: %v\n", contactID, err)
			continue
		}
		cancelled++
		fmt.Printf("Successfully cancelled contact with ID: %s\n", id)
	}
	fmt.Printf("%d of %d contacts cancelled.\n", cancelled, len(cancelContactIDs))
	return nil
}
