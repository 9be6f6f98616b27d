// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ducklytics/event-checkin/cliparse"
	"github.com/ducklytics/event-checkin/middleware"
	"github.com/ducklytics/event-checkin/models"
	"github.com/ducklytics/event-checkin/store"
)

type StatsHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewStatsHandler(st store.Store, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{store: st, cfg: cfg}
}

// requireEvent mirrors ParticipantsHandler.requireEvent for the stats routes.
func (h *StatsHandler) requireEvent(w http.ResponseWriter, r *http.Request) string {
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

// Stats handles GET /api/stats?event_id=...
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	eventID := h.requireEvent(w, r)
	if eventID == "" {
		return
	}

	stats, err := h.store.EventStats(r.Context(), eventID)
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// RecentCheckIns handles GET /api/recent-checkins?event_id=...&limit=...
func (h *StatsHandler) RecentCheckIns(w http.ResponseWriter, r *http.Request) {
	eventID := h.requireEvent(w, r)
	if eventID == "" {
		return
	}

	limit := models.DefaultRecentLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	recent, err := h.store.RecentCheckIns(r.Context(), eventID, limit)
	if err != nil {
		slog.Error("failed to query recent check-ins", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, recent)
}
