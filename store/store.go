// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/ducklytics/event-checkin/models"
)

// ErrNotFound is returned for unknown rows and for rows the caller is not
// allowed to see (cross-event or cross-user lookups fail as not-found, not
// as an authorization error).
var ErrNotFound = errors.New("not found")

// CheckInUpdate carries everything the single check-in UPDATE sets.
// OwnerUserID scopes the statement to events the staff user owns.
type CheckInUpdate struct {
	ParticipantID string
	OwnerUserID   string
	Signature     string
	SignatureKind string
	Photo         string
	PhotoKind     string
	CheckinBy     string
	Note          string
}

// Store is the persistence surface handlers depend on. The SQL
// implementation runs against PostgreSQL in production and in-memory SQLite
// in tests; nothing else holds state between requests.
type Store interface {
	GetUserByUsername(ctx context.Context, userName string) (*models.User, error)

	GetUserEvents(ctx context.Context, userID string) ([]models.Event, error)
	CreateEvent(ctx context.Context, userID, eventName, eventStartDate string) (*models.Event, error)
	GetEvent(ctx context.Context, userID, eventID string) (*models.Event, error)

	SearchParticipants(ctx context.Context, eventID, query string) ([]models.SearchResult, error)
	GetParticipant(ctx context.Context, eventID, id string) (*models.Participant, error)
	GetParticipantByBib(ctx context.Context, eventID, bibNo string) (*models.Participant, error)
	BulkInsertParticipants(ctx context.Context, eventID string, records []models.ParticipantRecord) models.ImportResult

	CheckIn(ctx context.Context, upd CheckInUpdate) (bool, error)

	EventStats(ctx context.Context, eventID string) (models.Stats, error)
	RecentCheckIns(ctx context.Context, eventID string, limit int) ([]models.Participant, error)
}
