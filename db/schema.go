// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL is kept to the dialect subset both PostgreSQL and SQLite accept:
// TEXT primary keys generated in Go, timestamps stored as RFC 3339 TEXT.
const schema = `
-- Staff accounts
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    user_name TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

-- Events, one owner each
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    event_name TEXT NOT NULL,
    event_start_date TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_user_id ON events(user_id);

-- Participants, imported in bulk from rosters
CREATE TABLE IF NOT EXISTS participants (
    id TEXT PRIMARY KEY,
    event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    participant_id TEXT NOT NULL DEFAULT '',
    start_time TEXT NOT NULL DEFAULT '',
    bib_no TEXT NOT NULL DEFAULT '',
    id_card_passport TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    first_name TEXT NOT NULL DEFAULT '',
    tshirt_size TEXT NOT NULL DEFAULT '',
    birthday_year TEXT NOT NULL DEFAULT '',
    nationality TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    emergency_contact_name TEXT NOT NULL DEFAULT '',
    emergency_contact_phone TEXT NOT NULL DEFAULT '',
    blood_type TEXT NOT NULL DEFAULT '',
    medical_information TEXT NOT NULL DEFAULT '',
    medicines_using TEXT NOT NULL DEFAULT '',
    parent_full_name TEXT NOT NULL DEFAULT '',
    parent_date_of_birth TEXT NOT NULL DEFAULT '',
    parent_email TEXT NOT NULL DEFAULT '',
    parent_id_card_passport TEXT NOT NULL DEFAULT '',
    parent_relationship TEXT NOT NULL DEFAULT '',
    full_name TEXT NOT NULL DEFAULT '',
    name_on_bib TEXT NOT NULL DEFAULT '',
    signature TEXT NOT NULL DEFAULT '',
    signature_kind TEXT NOT NULL DEFAULT '',
    uploaded_image TEXT NOT NULL DEFAULT '',
    uploaded_image_kind TEXT NOT NULL DEFAULT '',
    checkin_at TEXT,
    checkin_by TEXT,
    note TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_participants_event_id ON participants(event_id);
CREATE INDEX IF NOT EXISTS idx_participants_bib ON participants(event_id, bib_no);
CREATE INDEX IF NOT EXISTS idx_participants_checkin_at ON participants(checkin_at);
`
