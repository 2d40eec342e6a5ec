/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/friendsincode/contactctl/internal/config"
	"github.com/friendsincode/contactctl/internal/groundstation"
	"github.com/friendsincode/contactctl/internal/logging"
	"github.com/friendsincode/contactctl/internal/tui"
)

var (
	logger zerolog.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "contactctl",
	Short: "Schedule, view, and cancel satellite ground station contacts",
	Long: `contactctl talks to the AWS Ground Station scheduling API using the
credentials and region from your standard AWS configuration (~/.aws).

Run it without a subcommand for the interactive prompt session, or use the
subcommands for scripted, non-interactive operation.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it)
func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = logging.Setup(cfg.Environment)
	return nil
}

// newClient builds the scheduling gateway on the default AWS config chain.
func newClient(ctx context.Context) (*groundstation.Client, error) {
	return groundstation.New(ctx, cfg, logger)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Keep log lines off the prompt screen.
	interactiveLogger, closeLog, err := logging.SetupInteractive(cfg.Environment, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = interactiveLogger

	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	session := tui.NewSession(client, tui.NewTerminalPrompter(), cfg, logger)
	return session.Run(cmd.Context())
}
