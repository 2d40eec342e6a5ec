/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirroring the remote service's on-demand booking rules.
const (
	defaultLookaheadDays  = 6
	defaultMaxResults     = 100
	defaultMinElevation   = 0
	defaultMaxContactMins = 20
)

// Config covers process level configuration. Values come from CONTACTCTL_*
// environment variables, overlaid on an optional YAML file; env wins.
// AWS credentials and region resolution stay with the SDK's default chain
// (~/.aws); Region here only overrides the chain when set.
type Config struct {
	Environment string `yaml:"environment"`

	// Region overrides the AWS config chain region when non-empty.
	Region string `yaml:"region"`

	// LookaheadDays bounds how far ahead on-demand contacts may be booked,
	// and how far back the view/cancel window reaches.
	LookaheadDays int `yaml:"lookahead_days"`

	// MaxResults caps each ListContacts page.
	MaxResults int `yaml:"max_results"`

	// MinElevation is the default minimum-elevation prompt answer, degrees.
	MinElevation float64 `yaml:"min_elevation"`

	// MaxContactMinutes bounds the duration prompt.
	MaxContactMinutes int `yaml:"max_contact_minutes"`

	// LogFile receives zerolog output during interactive sessions so the
	// prompt screen stays clean. Empty means interactive logs are dropped.
	LogFile string `yaml:"log_file"`
}

// Path returns the overlay file location, honoring CONTACTCTL_CONFIG.
func Path() string {
	if p := os.Getenv("CONTACTCTL_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "contactctl", "config.yaml")
}

// Load reads the overlay file (if present), applies environment variables on
// top, fills defaults, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		LookaheadDays:     defaultLookaheadDays,
		MaxResults:        defaultMaxResults,
		MinElevation:      defaultMinElevation,
		MaxContactMinutes: defaultMaxContactMins,
	}

	if path := Path(); path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	cfg.Environment = getEnv("CONTACTCTL_ENV", orDefault(cfg.Environment, "production"))
	cfg.Region = getEnv("CONTACTCTL_REGION", cfg.Region)
	cfg.LookaheadDays = getEnvInt("CONTACTCTL_LOOKAHEAD_DAYS", cfg.LookaheadDays)
	cfg.MaxResults = getEnvInt("CONTACTCTL_MAX_RESULTS", cfg.MaxResults)
	cfg.MinElevation = getEnvFloat("CONTACTCTL_MIN_ELEVATION", cfg.MinElevation)
	cfg.MaxContactMinutes = getEnvInt("CONTACTCTL_MAX_CONTACT_MINUTES", cfg.MaxContactMinutes)
	cfg.LogFile = getEnv("CONTACTCTL_LOG_FILE", cfg.LogFile)

	if cfg.LookaheadDays < 1 {
		return nil, fmt.Errorf("lookahead days must be at least 1, got %d", cfg.LookaheadDays)
	}
	if cfg.MaxResults < 1 {
		return nil, fmt.Errorf("max results must be at least 1, got %d", cfg.MaxResults)
	}
	if cfg.MinElevation < 0 || cfg.MinElevation > 90 {
		return nil, fmt.Errorf("minimum elevation must be within [0,90], got %g", cfg.MinElevation)
	}
	if cfg.MaxContactMinutes < 1 {
		return nil, fmt.Errorf("max contact minutes must be at least 1, got %d", cfg.MaxContactMinutes)
	}

	return cfg, nil
}

// Lookahead returns the booking window length as a duration.
func (c *Config) Lookahead() time.Duration {
	return time.Duration(c.LookaheadDays) * 24 * time.Hour
}

func orDefault(val, def string) string {
	if val != "" {
		return val
	}
	return def
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return parsed
		}
	}
	return def
}
