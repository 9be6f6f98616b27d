// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ducklytics/event-checkin/cliparse"
	"github.com/ducklytics/event-checkin/middleware"
	"github.com/ducklytics/event-checkin/store"
)

type ParticipantsHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewParticipantsHandler(st store.Store, cfg cliparse.Config) *ParticipantsHandler {
	return &ParticipantsHandler{store: st, cfg: cfg}
}

// requireEvent resolves the event_id query param against the authenticated
// user's events. Writes the error response and returns "" when the request
// cannot proceed.
func (h *ParticipantsHandler) requireEvent(w http.ResponseWriter, r *http.Request) string {
	claims := middleware.ClaimsFrom(r)

	eventID := r.URL.Query().Get("event_id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event_id is required")
		return ""
	}

	_, err := h.store.GetEvent(r.Context(), claims.UserID, eventID)
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return ""
	}
	if err != nil {
		slog.Error("failed to query event", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return ""
	}

	return eventID
}

// Search handles GET /api/participants/search?event_id=...&q=...
// Case-insensitive substring match over bib, names, phone, email and ID
// document; an empty query returns the first page of all participants.
func (h *ParticipantsHandler) Search(w http.ResponseWriter, r *http.Request) {
	eventID := h.requireEvent(w, r)
	if eventID == "" {
		return
	}

	results, err := h.store.SearchParticipants(r.Context(), eventID, r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("failed to search participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// Get handles GET /api/participants/{id}?event_id=...
// A participant belonging to a different event is reported as not found.
func (h *ParticipantsHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID := h.requireEvent(w, r)
	if eventID == "" {
		return
	}

	participant, err := h.store.GetParticipant(r.Context(), eventID, r.PathValue("id"))
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant not found")
		return
	}
	if err != nil {
		slog.Error("failed to query participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, participant)
}

// GetByBib handles GET /api/participants/bib/{bibNo}?event_id=...
func (h *ParticipantsHandler) GetByBib(w http.ResponseWriter, r *http.Request) {
	eventID := h.requireEvent(w, r)
	if eventID == "" {
		return
	}

	participant, err := h.store.GetParticipantByBib(r.Context(), eventID, r.PathValue("bibNo"))
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant not found")
		return
	}
	if err != nil {
		slog.Error("failed to query participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, participant)
}
