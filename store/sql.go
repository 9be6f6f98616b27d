// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/ducklytics/event-checkin/auth"
	"github.com/ducklytics/event-checkin/models"
)

// timeLayout is fixed-width UTC millisecond precision, so stored timestamps
// sort lexicographically (checkin_at ordering relies on this).
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func now() string {
	return time.Now().UTC().Format(timeLayout)
}

// SQL implements Store over a sqlx database handle. Queries use ?
// placeholders and are rebound per driver.
type SQL struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) GetUserByUsername(ctx context.Context, userName string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, s.db.Rebind(`
		SELECT id, user_name, password_hash, created_at, updated_at
		FROM users
		WHERE user_name = ?
	`), userName)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

func (s *SQL) GetUserEvents(ctx context.Context, userID string) ([]models.Event, error) {
	events := []models.Event{}
	err := s.db.SelectContext(ctx, &events, s.db.Rebind(`
		SELECT e.id, e.user_id, e.event_name, e.event_start_date,
		       e.created_at, e.updated_at,
		       COUNT(p.id) AS participant_count
		FROM events e
		LEFT JOIN participants p ON p.event_id = e.id
		WHERE e.user_id = ?
		GROUP BY e.id, e.user_id, e.event_name, e.event_start_date, e.created_at, e.updated_at
		ORDER BY e.event_start_date DESC
	`), userID)

	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	return events, nil
}

func (s *SQL) CreateEvent(ctx context.Context, userID, eventName, eventStartDate string) (*models.Event, error) {
	id, err := auth.GenerateID(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate event ID: %w", err)
	}

	ts := now()
	_, err = s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO events (id, user_id, event_name, event_start_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), id, userID, eventName, eventStartDate, ts, ts)

	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	return &models.Event{
		ID:             id,
		UserID:         userID,
		EventName:      eventName,
		EventStartDate: eventStartDate,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}, nil
}

func (s *SQL) GetEvent(ctx context.Context, userID, eventID string) (*models.Event, error) {
	var event models.Event
	err := s.db.GetContext(ctx, &event, s.db.Rebind(`
		SELECT e.id, e.user_id, e.event_name, e.event_start_date,
		       e.created_at, e.updated_at,
		       (SELECT COUNT(*) FROM participants p WHERE p.event_id = e.id) AS participant_count
		FROM events e
		WHERE e.id = ? AND e.user_id = ?
	`), eventID, userID)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}

	return &event, nil
}

func (s *SQL) SearchParticipants(ctx context.Context, eventID, query string) ([]models.SearchResult, error) {
	q := `
		SELECT id, bib_no, first_name, last_name, full_name, name_on_bib,
		       id_card_passport, phone, email, checkin_at, checkin_by
		FROM participants
		WHERE event_id = ?
	`
	args := []any{eventID}

	if query != "" {
		term := "%" + strings.ToLower(query) + "%"
		q += `
		  AND (LOWER(bib_no) LIKE ?
		    OR LOWER(first_name) LIKE ?
		    OR LOWER(last_name) LIKE ?
		    OR LOWER(phone) LIKE ?
		    OR LOWER(email) LIKE ?
		    OR LOWER(id_card_passport) LIKE ?)
		`
		args = append(args, term, term, term, term, term, term)
	}

	q += `
		ORDER BY last_name, first_name
		LIMIT ?
	`
	args = append(args, models.SearchPageSize)

	results := []models.SearchResult{}
	if err := s.db.SelectContext(ctx, &results, s.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("failed to search participants: %w", err)
	}

	return results, nil
}

func (s *SQL) GetParticipant(ctx context.Context, eventID, id string) (*models.Participant, error) {
	var p models.Participant
	err := s.db.GetContext(ctx, &p, s.db.Rebind(`
		SELECT * FROM participants WHERE id = ? AND event_id = ?
	`), id, eventID)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query participant: %w", err)
	}

	return &p, nil
}

func (s *SQL) GetParticipantByBib(ctx context.Context, eventID, bibNo string) (*models.Participant, error) {
	var p models.Participant
	err := s.db.GetContext(ctx, &p, s.db.Rebind(`
		SELECT * FROM participants WHERE event_id = ? AND bib_no = ? LIMIT 1
	`), eventID, bibNo)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query participant: %w", err)
	}

	return &p, nil
}

// participantRow is a ParticipantRecord plus the columns the importer fills
// in itself.
type participantRow struct {
	ID      string `db:"id"`
	EventID string `db:"event_id"`
	models.ParticipantRecord
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

const insertParticipant = `
	INSERT INTO participants (
		id, event_id, participant_id, start_time, bib_no, id_card_passport,
		last_name, first_name, tshirt_size, birthday_year, nationality,
		phone, email, emergency_contact_name, emergency_contact_phone,
		blood_type, medical_information, medicines_using, parent_full_name,
		parent_date_of_birth, parent_email, parent_id_card_passport,
		parent_relationship, full_name, name_on_bib, created_at, updated_at
	) VALUES (
		:id, :event_id, :participant_id, :start_time, :bib_no, :id_card_passport,
		:last_name, :first_name, :tshirt_size, :birthday_year, :nationality,
		:phone, :email, :emergency_contact_name, :emergency_contact_phone,
		:blood_type, :medical_information, :medicines_using, :parent_full_name,
		:parent_date_of_birth, :parent_email, :parent_id_card_passport,
		:parent_relationship, :full_name, :name_on_bib, :created_at, :updated_at
	)
`

// BulkInsertParticipants inserts roster records one by one. Row failures
// are collected rather than aborting the batch; structure-level validation
// happened in the roster parser before anything reaches this method.
func (s *SQL) BulkInsertParticipants(ctx context.Context, eventID string, records []models.ParticipantRecord) models.ImportResult {
	result := models.ImportResult{}

	for i, rec := range records {
		id, err := auth.GenerateID(16)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		ts := now()
		row := participantRow{
			ID:                id,
			EventID:           eventID,
			ParticipantRecord: rec,
			CreatedAt:         ts,
			UpdatedAt:         ts,
		}

		if _, err := s.db.NamedExecContext(ctx, insertParticipant, row); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Inserted++
	}

	result.Success = len(result.Errors) == 0
	return result
}

// CheckIn binds the captured images and staff identity to the participant
// in a single UPDATE, scoped to events the staff user owns. Calling it
// again simply overwrites: last write wins.
func (s *SQL) CheckIn(ctx context.Context, upd CheckInUpdate) (bool, error) {
	ts := now()
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE participants
		SET signature = ?,
		    signature_kind = ?,
		    uploaded_image = ?,
		    uploaded_image_kind = ?,
		    checkin_at = ?,
		    checkin_by = ?,
		    note = ?,
		    updated_at = ?
		WHERE id = ?
		  AND event_id IN (SELECT id FROM events WHERE user_id = ?)
	`), upd.Signature, upd.SignatureKind, upd.Photo, upd.PhotoKind,
		ts, upd.CheckinBy, upd.Note, ts,
		upd.ParticipantID, upd.OwnerUserID)

	if err != nil {
		return false, fmt.Errorf("failed to update participant: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected == 1, nil
}

// EventStats runs the two counting queries concurrently; remaining is
// computed, not queried.
func (s *SQL) EventStats(ctx context.Context, eventID string) (models.Stats, error) {
	var total, checkedIn int

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.GetContext(ctx, &total, s.db.Rebind(`
			SELECT COUNT(*) FROM participants WHERE event_id = ?
		`), eventID)
	})
	g.Go(func() error {
		return s.db.GetContext(ctx, &checkedIn, s.db.Rebind(`
			SELECT COUNT(*) FROM participants WHERE event_id = ? AND checkin_at IS NOT NULL
		`), eventID)
	})

	if err := g.Wait(); err != nil {
		return models.Stats{}, fmt.Errorf("failed to count participants: %w", err)
	}

	return models.Stats{
		Total:     total,
		CheckedIn: checkedIn,
		Remaining: total - checkedIn,
	}, nil
}

func (s *SQL) RecentCheckIns(ctx context.Context, eventID string, limit int) ([]models.Participant, error) {
	if limit <= 0 {
		limit = models.DefaultRecentLimit
	}

	participants := []models.Participant{}
	err := s.db.SelectContext(ctx, &participants, s.db.Rebind(`
		SELECT * FROM participants
		WHERE event_id = ? AND checkin_at IS NOT NULL
		ORDER BY checkin_at DESC
		LIMIT ?
	`), eventID, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to query recent check-ins: %w", err)
	}

	return participants, nil
}
