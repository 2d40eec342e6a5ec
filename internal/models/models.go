/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package models holds the value types shared between the Ground Station
// gateway, the pass-window math, and the front ends.
package models

import (
	"fmt"
	"time"
)

// ContactStatus enumerates the contact lifecycle states owned by the remote
// service. This tool only reads them and requests transitions.
type ContactStatus string

const (
	StatusAvailable        ContactStatus = "AVAILABLE"
	StatusScheduled        ContactStatus = "SCHEDULED"
	StatusScheduling       ContactStatus = "SCHEDULING"
	StatusFailedToSchedule ContactStatus = "FAILED_TO_SCHEDULE"
	StatusCancelled        ContactStatus = "CANCELLED"
	StatusCancelling       ContactStatus = "CANCELLING"
	StatusAWSCancelled     ContactStatus = "AWS_CANCELLED"
	StatusAWSFailed        ContactStatus = "AWS_FAILED"
	StatusCompleted        ContactStatus = "COMPLETED"
	StatusFailed           ContactStatus = "FAILED"
)

// LifecycleStatuses covers every state a contact can be viewed in.
var LifecycleStatuses = []ContactStatus{
	StatusScheduled,
	StatusScheduling,
	StatusFailedToSchedule,
	StatusCancelled,
	StatusCancelling,
	StatusAWSCancelled,
	StatusAWSFailed,
	StatusCompleted,
	StatusFailed,
}

// TimeRange is a half-open-in-spirit [Start, End] interval with Start < End.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange validates ordering before constructing a range.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, fmt.Errorf("range end %s must be after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return TimeRange{Start: start, End: end}, nil
}

// Duration returns the length of the range.
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Midpoint returns the instant halfway between Start and End.
func (r TimeRange) Midpoint() time.Time {
	return r.Start.Add(r.Duration() / 2)
}

// Contains reports whether t lies within the range, bounds included.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Satellite is an onboarded satellite as reported by the remote service.
type Satellite struct {
	ARN     string
	ID      string
	NoradID int
}

// MissionProfile pairs a profile name with its ARN and home region.
type MissionProfile struct {
	ARN    string
	ID     string
	Name   string
	Region string
}

// GroundStation identifies an antenna site onboarded for a satellite.
type GroundStation struct {
	ID     string
	Name   string
	Region string
}

// Pass is a remote-reported visibility window: the satellite is above the
// horizon at the named ground station between StartTime and EndTime, peaking
// at MaxElevation degrees.
type Pass struct {
	SatelliteARN      string
	MissionProfileARN string
	GroundStation     string
	Region            string
	StartTime         time.Time
	EndTime           time.Time
	MaxElevation      float64
}

// Window returns the pass interval as a TimeRange.
func (p Pass) Window() TimeRange {
	return TimeRange{Start: p.StartTime, End: p.EndTime}
}

// Duration returns the full pass length.
func (p Pass) Duration() time.Duration {
	return p.EndTime.Sub(p.StartTime)
}

// Contact is a scheduled (or formerly scheduled) communication session owned
// by the remote service.
type Contact struct {
	ID                 string
	SatelliteARN       string
	MissionProfileARN  string
	MissionProfileName string
	GroundStation      string
	Region             string
	Status             ContactStatus
	StartTime          time.Time
	EndTime            time.Time
	MaxElevation       float64
	ErrorMessage       string
}

// Duration returns the contact length.
func (c Contact) Duration() time.Duration {
	return c.EndTime.Sub(c.StartTime)
}
