// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/ducklytics/event-checkin/cliparse"
	"github.com/ducklytics/event-checkin/middleware"
	"github.com/ducklytics/event-checkin/models"
	"github.com/ducklytics/event-checkin/roster"
	"github.com/ducklytics/event-checkin/store"
)

// maxRosterBytes bounds the multipart form held in memory during an import.
const maxRosterBytes = 32 << 20

type EventsHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewEventsHandler(st store.Store, cfg cliparse.Config) *EventsHandler {
	return &EventsHandler{store: st, cfg: cfg}
}

// List handles GET /api/events
// Returns the authenticated user's events with computed participant counts,
// newest start date first.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r)

	events, err := h.store.GetUserEvents(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("failed to query events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// Get handles GET /api/events/{id}
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r)
	eventID := r.PathValue("id")

	event, err := h.store.GetEvent(r.Context(), claims.UserID, eventID)
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to query event", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, event)
}

// Create handles POST /api/events
// Multipart form: event_name, event_start_date, participants_file (optional
// CSV/XLSX roster). The roster is parsed and validated before the event row
// is inserted, so a structurally invalid file creates nothing at all.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r)

	if err := r.ParseMultipartForm(maxRosterBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	eventName := r.FormValue("event_name")
	startDate := r.FormValue("event_start_date")
	if eventName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event_name is required")
		return
	}
	if startDate == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event_start_date is required")
		return
	}

	var records []models.ParticipantRecord
	file, header, err := r.FormFile("participants_file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid participants file")
		return
	}
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid participants file")
			return
		}

		records, err = roster.Parse(header.Filename, data)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	event, err := h.store.CreateEvent(r.Context(), claims.UserID, eventName, startDate)
	if err != nil {
		slog.Error("failed to insert event", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	var result models.ImportResult
	if len(records) > 0 {
		result = h.store.BulkInsertParticipants(r.Context(), event.ID, records)
		for _, rowErr := range result.Errors {
			slog.Warn("roster row insert failed", "event_id", event.ID, "error", rowErr)
		}
	}

	slog.Info("event created",
		"event_id", event.ID,
		"user_id", claims.UserID,
		"participants", result.Inserted,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateEventResponse{
		Success:  true,
		EventID:  event.ID,
		Inserted: result.Inserted,
		Errors:   result.Errors,
	})
}
