// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ducklytics/event-checkin/auth"
	"github.com/ducklytics/event-checkin/cliparse"
	"github.com/ducklytics/event-checkin/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8787,
		DatabaseURL:    ":memory:",
		DatabaseDriver: "sqlite",
		TokenSecret:    "test-token-secret",
		StorageTimeout: time.Second,
	}
}

// CreateTestUser inserts a staff account and returns its ID
func CreateTestUser(t *testing.T, conn *sqlx.DB, userName, password string) string {
	t.Helper()

	id, _ := auth.GenerateID(16)
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	ts := time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	_, err = conn.Exec(conn.Rebind(`
		INSERT INTO users (id, user_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`), id, userName, hash, ts, ts)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestEvent inserts an event owned by userID and returns its ID
func CreateTestEvent(t *testing.T, conn *sqlx.DB, userID, eventName string) string {
	t.Helper()

	id, _ := auth.GenerateID(16)
	ts := time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	_, err := conn.Exec(conn.Rebind(`
		INSERT INTO events (id, user_id, event_name, event_start_date, created_at, updated_at)
		VALUES (?, ?, ?, '2026-03-01', ?, ?)
	`), id, userID, eventName, ts, ts)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return id
}

// CreateTestParticipant inserts a minimal roster row and returns its ID
func CreateTestParticipant(t *testing.T, conn *sqlx.DB, eventID, bibNo, firstName, lastName string) string {
	t.Helper()

	id, _ := auth.GenerateID(16)
	ts := time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	_, err := conn.Exec(conn.Rebind(`
		INSERT INTO participants (id, event_id, bib_no, first_name, last_name, full_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), id, eventID, bibNo, firstName, lastName, firstName+" "+lastName, ts, ts)
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}

	return id
}

// CheckInTestParticipant marks a participant as checked in at the given
// RFC 3339 timestamp
func CheckInTestParticipant(t *testing.T, conn *sqlx.DB, participantID, checkinAt string) {
	t.Helper()

	_, err := conn.Exec(conn.Rebind(`
		UPDATE participants
		SET checkin_at = ?, checkin_by = 'staff', updated_at = ?
		WHERE id = ?
	`), checkinAt, checkinAt, participantID)
	if err != nil {
		t.Fatalf("Failed to check in test participant: %v", err)
	}
}

// AuthHeader returns the headers map for an authenticated request
func AuthHeader(t *testing.T, cfg cliparse.Config, userID, userName string) map[string]string {
	t.Helper()

	token, err := auth.SignToken(userID, userName, cfg.TokenSecret)
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}

	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeMultipartRequest creates a multipart/form-data test request with the
// given form fields and an optional file part named "participants_file"
func MakeMultipartRequest(t *testing.T, path string, fields map[string]string, filename string, fileData []byte, headers map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write form field: %v", err)
		}
	}

	if filename != "" {
		part, err := w.CreateFormFile("participants_file", filename)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := part.Write(fileData); err != nil {
			t.Fatalf("Failed to write form file: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
