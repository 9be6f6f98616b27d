// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ducklytics/event-checkin/auth"
	"github.com/ducklytics/event-checkin/cliparse"
	"github.com/ducklytics/event-checkin/middleware"
	"github.com/ducklytics/event-checkin/models"
	"github.com/ducklytics/event-checkin/store"
)

type AuthHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewAuthHandler(st store.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: st, cfg: cfg}
}

// Login handles POST /api/auth/login
// The response never distinguishes an unknown user from a wrong password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserName == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_name and password are required")
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.UserName)
	if err == store.ErrNotFound {
		loginFailed(w)
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		loginFailed(w)
		return
	}

	token, err := auth.SignToken(user.ID, user.UserName, h.cfg.TokenSecret)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "user_name", user.UserName)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Token:   token,
		User:    user,
	})
}

// loginFailed fails closed with a single generic message for both unknown
// users and bad passwords.
func loginFailed(w http.ResponseWriter) {
	middleware.JSONResponse(w, http.StatusUnauthorized, models.LoginResponse{
		Success: false,
		Error:   "Invalid username or password",
	})
}
