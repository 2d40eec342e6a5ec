/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package groundstation

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/groundstation"
	gstypes "github.com/aws/aws-sdk-go-v2/service/groundstation/types"
	"github.com/google/uuid"

	"github.com/friendsincode/contactctl/internal/models"
	"github.com/friendsincode/contactctl/internal/passwindow"
)

// PassQuery scopes a listing of available passes.
type PassQuery struct {
	SatelliteARN      string
	MissionProfileARN string
	Stations          []string
	Window            models.TimeRange
}

// ContactQuery scopes a listing of existing contacts.
type ContactQuery struct {
	SatelliteARN      string
	MissionProfileARN string
	Stations          []string
	Window            models.TimeRange
	Statuses          []models.ContactStatus
}

// Reservation describes one contact to reserve.
type Reservation struct {
	SatelliteARN      string
	MissionProfileARN string
	GroundStation     string
	Window            models.TimeRange

	// BatchID groups the reservations of one schedule run; applied as the
	// BatchTag tag. NewBatchID supplies one.
	BatchID string
}

// NewBatchID returns a fresh schedule-run identifier.
func NewBatchID() string {
	return uuid.NewString()
}

// ListPasses returns the AVAILABLE passes for the query, one remote call
// per station, merged and sorted by start time.
func (c *Client) ListPasses(ctx context.Context, q PassQuery) ([]models.Pass, error) {
	var passes []models.Pass
	for _, station := range q.Stations {
		list, err := c.listContactData(ctx, station, q.SatelliteARN, q.MissionProfileARN, q.Window, []gstypes.ContactStatus{gstypes.ContactStatusAvailable})
		if err != nil {
			return nil, err
		}
		for _, cd := range list {
			passes = append(passes, models.Pass{
				SatelliteARN:      aws.ToString(cd.SatelliteArn),
				MissionProfileARN: aws.ToString(cd.MissionProfileArn),
				GroundStation:     aws.ToString(cd.GroundStation),
				Region:            aws.ToString(cd.Region),
				StartTime:         aws.ToTime(cd.StartTime),
				EndTime:           aws.ToTime(cd.EndTime),
				MaxElevation:      elevationDegrees(cd.MaximumElevation),
			})
		}
	}
	passwindow.SortByStart(passes)
	return passes, nil
}

// ListContacts returns existing contacts in the requested states, merged
// across stations and sorted by start time. Mission profile names are
// resolved for display.
func (c *Client) ListContacts(ctx context.Context, q ContactQuery) ([]models.Contact, error) {
	statuses := make([]gstypes.ContactStatus, 0, len(q.Statuses))
	for _, s := range q.Statuses {
		statuses = append(statuses, gstypes.ContactStatus(s))
	}

	var contacts []models.Contact
	for _, station := range q.Stations {
		list, err := c.listContactData(ctx, station, q.SatelliteARN, q.MissionProfileARN, q.Window, statuses)
		if err != nil {
			return nil, err
		}
		for _, cd := range list {
			profileARN := aws.ToString(cd.MissionProfileArn)
			contacts = append(contacts, models.Contact{
				ID:                 aws.ToString(cd.ContactId),
				SatelliteARN:       aws.ToString(cd.SatelliteArn),
				MissionProfileARN:  profileARN,
				MissionProfileName: c.MissionProfileName(ctx, profileARN),
				GroundStation:      aws.ToString(cd.GroundStation),
				Region:             aws.ToString(cd.Region),
				Status:             models.ContactStatus(cd.ContactStatus),
				StartTime:          aws.ToTime(cd.StartTime),
				EndTime:            aws.ToTime(cd.EndTime),
				MaxElevation:       elevationDegrees(cd.MaximumElevation),
				ErrorMessage:       aws.ToString(cd.ErrorMessage),
			})
		}
	}

	sortContactsByStart(contacts)
	return contacts, nil
}

func (c *Client) listContactData(ctx context.Context, station, satelliteARN, profileARN string, window models.TimeRange, statuses []gstypes.ContactStatus) ([]gstypes.ContactData, error) {
	var out []gstypes.ContactData
	var token *string
	for {
		resp, err := c.api.ListContacts(ctx, &groundstation.ListContactsInput{
			StartTime:         aws.Time(window.Start),
			EndTime:           aws.Time(window.End),
			GroundStation:     aws.String(station),
			SatelliteArn:      aws.String(satelliteARN),
			MissionProfileArn: aws.String(profileARN),
			StatusList:        statuses,
			MaxResults:        aws.Int32(c.maxResults),
			NextToken:         token,
		})
		if err != nil {
			return nil, fmt.Errorf("list contacts at %s: %w", station, err)
		}
		out = append(out, resp.ContactList...)
		if resp.NextToken == nil {
			return out, nil
		}
		token = resp.NextToken
	}
}

// Reserve books one contact and returns its remote identifier.
func (c *Client) Reserve(ctx context.Context, r Reservation) (string, error) {
	in := &groundstation.ReserveContactInput{
		SatelliteArn:      aws.String(r.SatelliteARN),
		MissionProfileArn: aws.String(r.MissionProfileARN),
		GroundStation:     aws.String(r.GroundStation),
		StartTime:         aws.Time(r.Window.Start),
		EndTime:           aws.Time(r.Window.End),
	}
	if r.BatchID != "" {
		in.Tags = map[string]string{BatchTag: r.BatchID}
	}

	resp, err := c.api.ReserveContact(ctx, in)
	if err != nil {
		return "", fmt.Errorf("reserve contact at %s: %w", r.GroundStation, err)
	}

	id := aws.ToString(resp.ContactId)
	c.logger.Info().
		Str("contact_id", id).
		Str("ground_station", r.GroundStation).
		Time("start", r.Window.Start).
		Time("end", r.Window.End).
		Msg("contact reserved")
	return id, nil
}

// Cancel requests cancellation of a scheduled contact. Whether the request
// is honored (and billed) is entirely the remote service's call.
func (c *Client) Cancel(ctx context.Context, contactID string) (string, error) {
	resp, err := c.api.CancelContact(ctx, &groundstation.CancelContactInput{
		ContactId: aws.String(contactID),
	})
	if err != nil {
		return "", fmt.Errorf("cancel contact %s: %w", contactID, err)
	}

	id := aws.ToString(resp.ContactId)
	c.logger.Info().Str("contact_id", id).Msg("contact cancelled")
	return id, nil
}

func sortContactsByStart(contacts []models.Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].StartTime.Before(contacts[j].StartTime)
	})
}
