// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ducklytics/event-checkin/blob"
	"github.com/ducklytics/event-checkin/models"
	"github.com/ducklytics/event-checkin/roster"
	"github.com/ducklytics/event-checkin/store"
	"github.com/ducklytics/event-checkin/testutil"
)

func TestRouterDispatch(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(store.New(conn), blob.NewMemStore(), cfg)

	userID := testutil.CreateTestUser(t, conn, "alice", "password123")
	eventID := testutil.CreateTestEvent(t, conn, userID, "City Marathon")
	pID := testutil.CreateTestParticipant(t, conn, eventID, "101", "Maria", "Santos")
	headers := testutil.AuthHeader(t, cfg, userID, "alice")

	tests := []struct {
		name       string
		method     string
		path       string
		auth       bool
		wantStatus int
	}{
		{"health is public", http.MethodGet, "/health", false, http.StatusOK},
		{"root banner", http.MethodGet, "/", false, http.StatusOK},
		{"login does not require a token", http.MethodPost, "/api/auth/login", false, http.StatusBadRequest},
		{"events require a token", http.MethodGet, "/api/events", false, http.StatusUnauthorized},
		{"events with token", http.MethodGet, "/api/events", true, http.StatusOK},
		{"event detail", http.MethodGet, "/api/events/" + eventID, true, http.StatusOK},
		{"search does not collide with the id route", http.MethodGet, "/api/participants/search?event_id=" + eventID, true, http.StatusOK},
		{"participant by id", http.MethodGet, "/api/participants/" + pID + "?event_id=" + eventID, true, http.StatusOK},
		{"participant by bib", http.MethodGet, "/api/participants/bib/101?event_id=" + eventID, true, http.StatusOK},
		{"stats", http.MethodGet, "/api/stats?event_id=" + eventID, true, http.StatusOK},
		{"recent check-ins", http.MethodGet, "/api/recent-checkins?event_id=" + eventID, true, http.StatusOK},
		{"unknown api path is a json 404", http.MethodGet, "/api/nope", true, http.StatusNotFound},
		{"unknown nested api path", http.MethodDelete, "/api/events/" + eventID + "/extra", true, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h map[string]string
			if tt.auth {
				h = headers
			}
			req := testutil.MakeRequest(tt.method, tt.path, nil, h)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestRouterUnknownAPIPathIsJSON(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(store.New(conn), blob.NewMemStore(), cfg)

	req := testutil.MakeRequest(http.MethodGet, "/api/does-not-exist", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Not found" {
		t.Errorf("error = %q, want Not found", resp.Error)
	}
}

// TestCheckInFlow drives the whole station workflow through the router:
// login, create an event with a roster, search, check in, then read the
// stats and the recent list.
func TestCheckInFlow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	objects := blob.NewMemStore()
	mux := NewRouter(store.New(conn), objects, cfg)

	testutil.CreateTestUser(t, conn, "alice", "password123")

	// Login
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/login",
		models.LoginRequest{UserName: "alice", Password: "password123"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)
	if !login.Success || login.Token == "" {
		t.Fatalf("login = %+v", login)
	}
	headers := map[string]string{"Authorization": "Bearer " + login.Token}

	// Create an event with a two-row roster
	var csv strings.Builder
	csv.WriteString(strings.Join(roster.RequiredColumns, ",") + "\n")
	for _, row := range [][3]string{{"Maria", "Santos", "101"}, {"Ken", "Watanabe", "102"}} {
		cells := make([]string, len(roster.RequiredColumns))
		for i, col := range roster.RequiredColumns {
			switch col {
			case "first_name":
				cells[i] = row[0]
			case "last_name":
				cells[i] = row[1]
			case "bib_no":
				cells[i] = row[2]
			}
		}
		csv.WriteString(strings.Join(cells, ",") + "\n")
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeMultipartRequest(t, "/api/events", map[string]string{
		"event_name":       "City Marathon",
		"event_start_date": "2026-04-12",
	}, "roster.csv", []byte(csv.String()), headers))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreateEventResponse
	testutil.AssertJSON(t, w, &created)
	if created.Inserted != 2 {
		t.Fatalf("create event = %+v, want 2 participants", created)
	}

	// Find Maria
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest(http.MethodGet,
		"/api/participants/search?event_id="+created.EventID+"&q=maria", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var found []models.SearchResult
	testutil.AssertJSON(t, w, &found)
	if len(found) != 1 || found[0].BibNo != "101" {
		t.Fatalf("search = %+v, want Maria with bib 101", found)
	}

	// Check her in with signature and photo
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/checkin", models.CheckInRequest{
		ParticipantID: found[0].ID,
		Signature:     base64.StdEncoding.EncodeToString([]byte("sig")),
		Photo:         base64.StdEncoding.EncodeToString([]byte("photo")),
	}, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var checkin models.CheckInResponse
	testutil.AssertJSON(t, w, &checkin)
	if !checkin.Success {
		t.Fatal("check-in failed")
	}
	if objects.Len() != 2 {
		t.Errorf("object store holds %d images, want 2", objects.Len())
	}

	// Stats reflect one of two checked in
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest(http.MethodGet,
		"/api/stats?event_id="+created.EventID, nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var stats models.Stats
	testutil.AssertJSON(t, w, &stats)
	if (stats != models.Stats{Total: 2, CheckedIn: 1, Remaining: 1}) {
		t.Errorf("stats = %+v, want 2/1/1", stats)
	}

	// And she tops the recent list
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest(http.MethodGet,
		"/api/recent-checkins?event_id="+created.EventID, nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var recent []models.Participant
	testutil.AssertJSON(t, w, &recent)
	if len(recent) != 1 || recent[0].BibNo != "101" {
		t.Errorf("recent = %d rows, want just Maria", len(recent))
	}
}
