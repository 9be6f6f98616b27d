// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/ducklytics/event-checkin/blob"
	"github.com/ducklytics/event-checkin/cliparse"
	"github.com/ducklytics/event-checkin/handlers"
	"github.com/ducklytics/event-checkin/middleware"
	"github.com/ducklytics/event-checkin/store"
)

// NewRouter builds the route table. Method+pattern registration means
// /api/participants/search can never be swallowed by /api/participants/{id}.
func NewRouter(st store.Store, objects blob.ObjectStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, cfg)
	eventsHandler := handlers.NewEventsHandler(st, cfg)
	participantsHandler := handlers.NewParticipantsHandler(st, cfg)
	checkinHandler := handlers.NewCheckinHandler(st, objects, cfg)
	statsHandler := handlers.NewStatsHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication (public)
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.Login))

	// Everything below requires a valid bearer token
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(cfg.TokenSecret, h))
	}

	// Events
	mux.HandleFunc("GET /api/events", protected(eventsHandler.List))
	mux.HandleFunc("POST /api/events", protected(eventsHandler.Create))
	mux.HandleFunc("GET /api/events/{id}", protected(eventsHandler.Get))

	// Participants
	mux.HandleFunc("GET /api/participants/search", protected(participantsHandler.Search))
	mux.HandleFunc("GET /api/participants/bib/{bibNo}", protected(participantsHandler.GetByBib))
	mux.HandleFunc("GET /api/participants/{id}", protected(participantsHandler.Get))

	// Check-in
	mux.HandleFunc("POST /api/checkin", protected(checkinHandler.CheckIn))

	// Statistics
	mux.HandleFunc("GET /api/stats", protected(statsHandler.Stats))
	mux.HandleFunc("GET /api/recent-checkins", protected(statsHandler.RecentCheckIns))

	// Unknown API routes get a JSON 404
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	})

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("event-checkin API v1"))
	})

	return mux
}
