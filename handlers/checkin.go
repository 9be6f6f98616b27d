// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ducklytics/event-checkin/blob"
	"github.com/ducklytics/event-checkin/cliparse"
	"github.com/ducklytics/event-checkin/middleware"
	"github.com/ducklytics/event-checkin/models"
	"github.com/ducklytics/event-checkin/store"
)

type CheckinHandler struct {
	store   store.Store
	objects blob.ObjectStore
	cfg     cliparse.Config
}

func NewCheckinHandler(st store.Store, objects blob.ObjectStore, cfg cliparse.Config) *CheckinHandler {
	return &CheckinHandler{store: st, objects: objects, cfg: cfg}
}

// CheckIn handles POST /api/checkin
// Uploads the signature and photo (independently, each falling back to
// inline persistence when the object store fails), then marks the
// participant checked in with one UPDATE. The response is always 200 with
// {success}; a second check-in for the same participant overwrites the
// first, last write wins.
func (h *CheckinHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r)

	var req models.CheckInRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ParticipantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	checkinBy := req.CheckinBy
	if checkinBy == "" {
		checkinBy = claims.UserName
	}

	signature, signatureKind := h.uploadOrInline(r.Context(), req.Signature,
		fmt.Sprintf("signature-%s.png", req.ParticipantID))
	photo, photoKind := h.uploadOrInline(r.Context(), req.Photo,
		fmt.Sprintf("photo-%s.jpg", req.ParticipantID))

	ok, err := h.store.CheckIn(r.Context(), store.CheckInUpdate{
		ParticipantID: req.ParticipantID,
		OwnerUserID:   claims.UserID,
		Signature:     signature,
		SignatureKind: signatureKind,
		Photo:         photo,
		PhotoKind:     photoKind,
		CheckinBy:     checkinBy,
		Note:          req.Note,
	})
	if err != nil {
		// Never propagated outward: the client sees success=false.
		slog.Error("check-in failed", "participant_id", req.ParticipantID, "error", err)
		middleware.JSONResponse(w, http.StatusOK, models.CheckInResponse{Success: false})
		return
	}

	if ok {
		slog.Info("participant checked in",
			"participant_id", req.ParticipantID,
			"checkin_by", checkinBy,
		)
	}

	middleware.JSONResponse(w, http.StatusOK, models.CheckInResponse{Success: ok})
}

// uploadOrInline writes an image to the object store under the configured
// deadline. On any failure the raw base64 value is returned for inline
// persistence instead.
func (h *CheckinHandler) uploadOrInline(ctx context.Context, data, filename string) (value, kind string) {
	ctx, cancel := context.WithTimeout(ctx, h.cfg.StorageTimeout)
	defer cancel()

	key, err := blob.UploadImage(ctx, h.objects, data, filename)
	if err != nil {
		slog.Warn("image upload failed, storing inline", "filename", filename, "error", err)
		return data, models.ImageKindInline
	}

	return key, models.ImageKindStored
}
