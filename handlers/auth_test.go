// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ducklytics/event-checkin/auth"
	"github.com/ducklytics/event-checkin/models"
	"github.com/ducklytics/event-checkin/store"
	"github.com/ducklytics/event-checkin/testutil"
)

func TestLogin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(store.New(conn), cfg)

	userID := testutil.CreateTestUser(t, conn, "alice", "password123")

	req := testutil.MakeRequest(http.MethodPost, "/api/auth/login",
		models.LoginRequest{UserName: "alice", Password: "password123"}, nil)
	w := httptest.NewRecorder()
	handler.Login(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LoginResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || resp.Token == "" {
		t.Fatalf("Login response = %+v, want success with token", resp)
	}
	if resp.User == nil || resp.User.ID != userID {
		t.Errorf("Login user = %+v, want id %s", resp.User, userID)
	}

	// The issued token verifies against the configured secret
	claims, err := auth.VerifyToken(resp.Token, cfg.TokenSecret)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != userID || claims.UserName != "alice" {
		t.Errorf("token claims = %+v, want %s/alice", claims, userID)
	}

	// The password hash must never appear in the response body
	if strings.Contains(w.Body.String(), "password_hash") {
		t.Error("Login response leaks the password hash")
	}
}

func TestLoginRejected(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewAuthHandler(store.New(conn), testutil.GetTestConfig())

	testutil.CreateTestUser(t, conn, "alice", "password123")

	tests := []struct {
		name     string
		userName string
		password string
	}{
		{"wrong password", "alice", "wrong"},
		{"unknown user", "mallory", "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(http.MethodPost, "/api/auth/login",
				models.LoginRequest{UserName: tt.userName, Password: tt.password}, nil)
			w := httptest.NewRecorder()
			handler.Login(w, req)

			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			var resp models.LoginResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Success || resp.Token != "" {
				t.Errorf("Login response = %+v, want failure without token", resp)
			}
			// Unknown user and wrong password are indistinguishable
			if resp.Error != "Invalid username or password" {
				t.Errorf("Login error = %q, want the generic message", resp.Error)
			}
		})
	}
}

func TestLoginBadRequest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewAuthHandler(store.New(conn), testutil.GetTestConfig())

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing password", models.LoginRequest{UserName: "alice"}},
		{"missing user name", models.LoginRequest{Password: "password123"}},
		{"empty body", models.LoginRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(http.MethodPost, "/api/auth/login", tt.body, nil)
			w := httptest.NewRecorder()
			handler.Login(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	// Malformed JSON
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
