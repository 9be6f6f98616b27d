// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ducklytics/event-checkin/middleware"
	"github.com/ducklytics/event-checkin/models"
	"github.com/ducklytics/event-checkin/store"
	"github.com/ducklytics/event-checkin/testutil"
)

func TestSearchParticipantsHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewParticipantsHandler(store.New(conn), cfg)

	userID := testutil.CreateTestUser(t, conn, "alice", "password123")
	otherID := testutil.CreateTestUser(t, conn, "bob", "password123")
	eventID := testutil.CreateTestEvent(t, conn, userID, "City Marathon")
	testutil.CreateTestParticipant(t, conn, eventID, "101", "Maria", "Santos")
	testutil.CreateTestParticipant(t, conn, eventID, "102", "Ken", "Watanabe")

	protected := middleware.RequireAuth(cfg.TokenSecret, handler.Search)
	search := func(asUserID, asUserName, query string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest(http.MethodGet, "/api/participants/search?"+query, nil,
			testutil.AuthHeader(t, cfg, asUserID, asUserName))
		w := httptest.NewRecorder()
		protected(w, req)
		return w
	}

	// Match by name
	w := search(userID, "alice", "event_id="+eventID+"&q=santos")
	testutil.AssertStatus(t, w, http.StatusOK)
	var results []models.SearchResult
	testutil.AssertJSON(t, w, &results)
	if len(results) != 1 || results[0].BibNo != "101" {
		t.Errorf("search results = %+v, want just bib 101", results)
	}

	// Empty query returns the roster page
	w = search(userID, "alice", "event_id="+eventID)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &results)
	if len(results) != 2 {
		t.Errorf("empty query returned %d results, want 2", len(results))
	}

	// Missing event_id is a bad request
	testutil.AssertStatus(t, search(userID, "alice", "q=santos"), http.StatusBadRequest)

	// Someone else's event reads as not found
	testutil.AssertStatus(t, search(otherID, "bob", "event_id="+eventID+"&q=santos"), http.StatusNotFound)
}

func TestGetParticipantHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewParticipantsHandler(store.New(conn), cfg)

	userID := testutil.CreateTestUser(t, conn, "alice", "password123")
	eventID := testutil.CreateTestEvent(t, conn, userID, "City Marathon")
	otherEventID := testutil.CreateTestEvent(t, conn, userID, "Spring 10K")
	pID := testutil.CreateTestParticipant(t, conn, eventID, "101", "Maria", "Santos")

	protected := middleware.RequireAuth(cfg.TokenSecret, handler.Get)
	get := func(eventID, id string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest(http.MethodGet, "/api/participants/"+id+"?event_id="+eventID, nil,
			testutil.AuthHeader(t, cfg, userID, "alice"))
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		protected(w, req)
		return w
	}

	w := get(eventID, pID)
	testutil.AssertStatus(t, w, http.StatusOK)
	var p models.Participant
	testutil.AssertJSON(t, w, &p)
	if p.ID != pID || p.FullName != "Maria Santos" {
		t.Errorf("participant = %+v, want Maria Santos", p)
	}
	if p.CheckinAt != nil {
		t.Error("fresh participant reads as checked in")
	}

	// Unknown ID, and the right ID through the wrong event
	testutil.AssertStatus(t, get(eventID, "missing"), http.StatusNotFound)
	testutil.AssertStatus(t, get(otherEventID, pID), http.StatusNotFound)
}

func TestGetParticipantByBibHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewParticipantsHandler(store.New(conn), cfg)

	userID := testutil.CreateTestUser(t, conn, "alice", "password123")
	eventID := testutil.CreateTestEvent(t, conn, userID, "City Marathon")
	testutil.CreateTestParticipant(t, conn, eventID, "101", "Maria", "Santos")

	protected := middleware.RequireAuth(cfg.TokenSecret, handler.GetByBib)
	get := func(bibNo string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest(http.MethodGet, "/api/participants/bib/"+bibNo+"?event_id="+eventID, nil,
			testutil.AuthHeader(t, cfg, userID, "alice"))
		req.SetPathValue("bibNo", bibNo)
		w := httptest.NewRecorder()
		protected(w, req)
		return w
	}

	w := get("101")
	testutil.AssertStatus(t, w, http.StatusOK)
	var p models.Participant
	testutil.AssertJSON(t, w, &p)
	if p.LastName != "Santos" {
		t.Errorf("participant = %+v, want Santos", p)
	}

	testutil.AssertStatus(t, get("999"), http.StatusNotFound)
}
