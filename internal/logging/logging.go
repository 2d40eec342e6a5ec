/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog for the process.
func Setup(environment string) zerolog.Logger {
	return setup(environment, zerolog.ConsoleWriter{Out: os.Stderr})
}

// SetupInteractive routes logs away from the terminal so prompt screens are
// not interleaved with log lines. When path is empty, logs are dropped.
func SetupInteractive(environment, path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return setup(environment, io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return setup(environment, f), func() { _ = f.Close() }, nil
}

func setup(environment string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).With().Timestamp().Logger().Level(level)
	log.Logger = logger
	return logger
}
