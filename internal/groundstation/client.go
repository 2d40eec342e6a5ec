/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package groundstation wraps the vendor scheduling API. It owns no
// lifecycle state: every status transition, conflict check, and billing
// consequence belongs to the remote service. Remote errors pass through
// wrapped, with no retry or backoff.
package groundstation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/groundstation"
	gstypes "github.com/aws/aws-sdk-go-v2/service/groundstation/types"
	"github.com/rs/zerolog"

	"github.com/friendsincode/contactctl/internal/config"
	"github.com/friendsincode/contactctl/internal/models"
)

var (
	ErrSatelliteNotFound      = errors.New("groundstation: no onboarded satellite with that NORAD ID")
	ErrMissionProfileNotFound = errors.New("groundstation: no mission profile with that name")
)

// BatchTag is the reservation tag key carrying the schedule-run ID, so a
// multi-contact run can be traced in the vendor console.
const BatchTag = "contactctl:batch"

// API is the subset of the vendor SDK client this tool consumes.
type API interface {
	ListSatellites(ctx context.Context, in *groundstation.ListSatellitesInput, optFns ...func(*groundstation.Options)) (*groundstation.ListSatellitesOutput, error)
	ListMissionProfiles(ctx context.Context, in *groundstation.ListMissionProfilesInput, optFns ...func(*groundstation.Options)) (*groundstation.ListMissionProfilesOutput, error)
	GetMissionProfile(ctx context.Context, in *groundstation.GetMissionProfileInput, optFns ...func(*groundstation.Options)) (*groundstation.GetMissionProfileOutput, error)
	ListGroundStations(ctx context.Context, in *groundstation.ListGroundStationsInput, optFns ...func(*groundstation.Options)) (*groundstation.ListGroundStationsOutput, error)
	ListContacts(ctx context.Context, in *groundstation.ListContactsInput, optFns ...func(*groundstation.Options)) (*groundstation.ListContactsOutput, error)
	ReserveContact(ctx context.Context, in *groundstation.ReserveContactInput, optFns ...func(*groundstation.Options)) (*groundstation.ReserveContactOutput, error)
	CancelContact(ctx context.Context, in *groundstation.CancelContactInput, optFns ...func(*groundstation.Options)) (*groundstation.CancelContactOutput, error)
}

// Client is the scheduling gateway.
type Client struct {
	api        API
	logger     zerolog.Logger
	maxResults int32

	// profileNames memoizes ARN -> name lookups within one session; contact
	// listings resolve the same profile repeatedly.
	profileNames map[string]string
}

// New builds a Client on the SDK's default credential/region chain
// (~/.aws and the usual environment variables). cfg.Region, when set,
// overrides the chain's region.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewWithAPI(groundstation.NewFromConfig(awsCfg), cfg, logger), nil
}

// NewWithAPI wires an explicit API implementation; tests use a fake.
func NewWithAPI(api API, cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		api:          api,
		logger:       logger.With().Str("component", "groundstation").Logger(),
		maxResults:   int32(cfg.MaxResults),
		profileNames: make(map[string]string),
	}
}

// Satellites lists every onboarded satellite in the region.
func (c *Client) Satellites(ctx context.Context) ([]models.Satellite, error) {
	var out []models.Satellite
	var token *string
	for {
		resp, err := c.api.ListSatellites(ctx, &groundstation.ListSatellitesInput{
			MaxResults: aws.Int32(c.maxResults),
			NextToken:  token,
		})
		if err != nil {
			return nil, fmt.Errorf("list satellites: %w", err)
		}
		for _, s := range resp.Satellites {
			out = append(out, models.Satellite{
				ARN:     aws.ToString(s.SatelliteArn),
				ID:      aws.ToString(s.SatelliteId),
				NoradID: int(s.NoradSatelliteID),
			})
		}
		if resp.NextToken == nil {
			return out, nil
		}
		token = resp.NextToken
	}
}

// SatelliteByNoradID resolves a satellite by its NORAD catalog number.
func (c *Client) SatelliteByNoradID(ctx context.Context, noradID int) (models.Satellite, error) {
	sats, err := c.Satellites(ctx)
	if err != nil {
		return models.Satellite{}, err
	}
	for _, s := range sats {
		if s.NoradID == noradID {
			return s, nil
		}
	}
	return models.Satellite{}, fmt.Errorf("%w: %d", ErrSatelliteNotFound, noradID)
}

// MissionProfiles lists the mission profiles available in the region.
func (c *Client) MissionProfiles(ctx context.Context) ([]models.MissionProfile, error) {
	var out []models.MissionProfile
	var token *string
	for {
		resp, err := c.api.ListMissionProfiles(ctx, &groundstation.ListMissionProfilesInput{
			MaxResults: aws.Int32(c.maxResults),
			NextToken:  token,
		})
		if err != nil {
			return nil, fmt.Errorf("list mission profiles: %w", err)
		}
		for _, p := range resp.MissionProfileList {
			out = append(out, models.MissionProfile{
				ARN:    aws.ToString(p.MissionProfileArn),
				ID:     aws.ToString(p.MissionProfileId),
				Name:   aws.ToString(p.Name),
				Region: aws.ToString(p.Region),
			})
		}
		if resp.NextToken == nil {
			return out, nil
		}
		token = resp.NextToken
	}
}

// MissionProfileByName resolves a mission profile by its display name.
func (c *Client) MissionProfileByName(ctx context.Context, name string) (models.MissionProfile, error) {
	profiles, err := c.MissionProfiles(ctx)
	if err != nil {
		return models.MissionProfile{}, err
	}
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return models.MissionProfile{}, fmt.Errorf("%w: %q", ErrMissionProfileNotFound, name)
}

// MissionProfileName resolves a profile ARN to its display name, memoized
// for the session. Unresolvable ARNs degrade to the raw ID rather than
// failing a whole listing.
func (c *Client) MissionProfileName(ctx context.Context, arn string) string {
	if arn == "" {
		return ""
	}
	if name, ok := c.profileNames[arn]; ok {
		return name
	}

	id := profileIDFromARN(arn)
	resp, err := c.api.GetMissionProfile(ctx, &groundstation.GetMissionProfileInput{
		MissionProfileId: aws.String(id),
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("arn", arn).Msg("mission profile name lookup failed")
		return id
	}

	name := aws.ToString(resp.Name)
	c.profileNames[arn] = name
	return name
}

// profileIDFromARN extracts the profile ID from
// arn:aws:groundstation:region:account:mission-profile/<id>.
func profileIDFromARN(arn string) string {
	if i := strings.IndexByte(arn, '/'); i >= 0 {
		return arn[i+1:]
	}
	return arn
}

// GroundStations lists the antenna sites onboarded for a satellite.
func (c *Client) GroundStations(ctx context.Context, satelliteID string) ([]models.GroundStation, error) {
	var out []models.GroundStation
	var token *string
	for {
		resp, err := c.api.ListGroundStations(ctx, &groundstation.ListGroundStationsInput{
			SatelliteId: aws.String(satelliteID),
			MaxResults:  aws.Int32(c.maxResults),
			NextToken:   token,
		})
		if err != nil {
			return nil, fmt.Errorf("list ground stations: %w", err)
		}
		for _, g := range resp.GroundStationList {
			out = append(out, models.GroundStation{
				ID:     aws.ToString(g.GroundStationId),
				Name:   aws.ToString(g.GroundStationName),
				Region: aws.ToString(g.Region),
			})
		}
		if resp.NextToken == nil {
			return out, nil
		}
		token = resp.NextToken
	}
}

// elevationDegrees normalizes the reported maximum elevation to degrees.
func elevationDegrees(e *gstypes.Elevation) float64 {
	if e == nil {
		return 0
	}
	val := aws.ToFloat64(e.Value)
	if e.Unit == gstypes.AngleUnitsRadian {
		return val * 180 / math.Pi
	}
	return val
}
