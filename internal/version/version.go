/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package version provides version information and a release check.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Version is the current version of contactctl.
// This is set at build time via ldflags:
//
//	-X github.com/friendsincode/contactctl/internal/version.Version=X.Y.Z
var Version = "0.3.0"

// GitHubRepo is the repository to check for updates
const GitHubRepo = "friendsincode/contactctl"

// UpdateInfo contains information about available updates.
type UpdateInfo struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
	ReleaseNotes    string
	CheckedAt       time.Time
}

// GitHubRelease represents a GitHub release API response.
type GitHubRelease struct {
	TagName     string `json:"tag_name"`
	HTMLURL     string `json:"html_url"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
}

// CheckLatest fetches the latest release from GitHub and compares it to the
// running version. A short-lived CLI checks once, on demand.
func CheckLatest(ctx context.Context) (*UpdateInfo, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", GitHubRepo)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "contactctl/"+Version)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from GitHub", resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	return &UpdateInfo{
		CurrentVersion:  Version,
		LatestVersion:   latest,
		UpdateAvailable: compareVersions(Version, latest) < 0,
		ReleaseURL:      release.HTMLURL,
		ReleaseNotes:    truncateNotes(release.Body, 200),
		CheckedAt:       time.Now(),
	}, nil
}

// compareVersions compares two semver versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func compareVersions(a, b string) int {
	aParts := parseVersion(a)
	bParts := parseVersion(b)

	for i := 0; i < 3; i++ {
		if aParts[i] < bParts[i] {
			return -1
		}
		if aParts[i] > bParts[i] {
			return 1
		}
	}
	return 0
}

// parseVersion parses a semver string into major, minor, patch.
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	parts := strings.Split(v, ".")

	var result [3]int
	for i := 0; i < len(parts) && i < 3; i++ {
		fmt.Sscanf(parts[i], "%d", &result[i])
	}
	return result
}

// truncateNotes truncates release notes to a maximum length.
func truncateNotes(s string, maxLen int) string {
	// Take only the first line or first N characters
	lines := strings.SplitN(s, "\n", 2)
	s = strings.TrimSpace(lines[0])
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
