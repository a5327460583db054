// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/unitracker/location"
	"github.com/danielhkuo/unitracker/middleware"
	"github.com/danielhkuo/unitracker/models"
	"github.com/danielhkuo/unitracker/pins"
	"github.com/danielhkuo/unitracker/session"
)

type SessionHandler struct {
	controller *session.Controller
}

func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{controller: controller}
}

// Get handles GET /session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.controller.Snapshot())
}

// ToggleAddMode handles POST /session/add-mode
func (h *SessionHandler) ToggleAddMode(w http.ResponseWriter, r *http.Request) {
	state := h.controller.ToggleAddMode()
	middleware.JSONResponse(w, http.StatusOK, models.ToggleAddModeResponse{State: state})
}

// MapClick handles POST /session/map-click
// Clicks only count while add mode is armed; otherwise they are ignored.
func (h *SessionHandler) MapClick(w http.ResponseWriter, r *http.Request) {
	var req models.MapClickRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.controller.MapClick(models.Coordinate{Lat: req.Lat, Lng: req.Lng})

	middleware.JSONResponse(w, http.StatusOK, h.controller.Snapshot())
}

// QuickCapture handles POST /session/quick-capture
func (h *SessionHandler) QuickCapture(w http.ResponseWriter, r *http.Request) {
	capture, err := h.controller.QuickCapture()
	if errors.Is(err, location.ErrNoFix) {
		middleware.ErrorResponse(w, http.StatusConflict, "No GPS signal yet")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuickCaptureResponse{
		State:   models.StatePendingEntry,
		Capture: capture,
	})
}

// Commit handles POST /session/commit
// A blank title keeps the entry open (form contents preserved) and
// answers 422.
func (h *SessionHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req models.CommitPinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pin, err := h.controller.Commit(req.Title, req.Description)
	if errors.Is(err, session.ErrNoPendingEntry) {
		middleware.ErrorResponse(w, http.StatusConflict, "No pin entry in progress")
		return
	}
	if errors.Is(err, pins.ErrEmptyTitle) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.NewPinResponse(pin))
}

// Cancel handles POST /session/cancel
func (h *SessionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Cancel(); errors.Is(err, session.ErrNoPendingEntry) {
		middleware.ErrorResponse(w, http.StatusConflict, "No pin entry in progress")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.controller.Snapshot())
}
