// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/unitracker/location"
	"github.com/danielhkuo/unitracker/middleware"
	"github.com/danielhkuo/unitracker/models"
	"github.com/danielhkuo/unitracker/viewport"
)

type LocationHandler struct {
	provider      *location.Provider
	view          *viewport.Viewport
	locateTimeout time.Duration
}

func NewLocationHandler(provider *location.Provider, view *viewport.Viewport, locateTimeout time.Duration) *LocationHandler {
	return &LocationHandler{provider: provider, view: view, locateTimeout: locateTimeout}
}

// ReportFix handles POST /location/fix
// The device reports a fresh coordinate; it becomes the live coordinate
// and fans out to all location consumers.
func (h *LocationHandler) ReportFix(w http.ResponseWriter, r *http.Request) {
	var req models.LocationFixRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	coord := models.Coordinate{Lat: req.Lat, Lng: req.Lng}
	h.provider.Report(coord)

	middleware.JSONResponse(w, http.StatusOK, models.CurrentLocationResponse{Coordinate: coord})
}

// ReportFailure handles POST /location/failure
// The device reports a geolocation failure: permission_denied,
// position_unavailable, or timeout.
func (h *LocationHandler) ReportFailure(w http.ResponseWriter, r *http.Request) {
	var req models.LocationFailureRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.provider.ReportFailure(req.Reason); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown failure reason")
		return
	}

	slog.Info("geolocation failure reported", "reason", req.Reason)
	w.WriteHeader(http.StatusNoContent)
}

// Current handles GET /location/current
func (h *LocationHandler) Current(w http.ResponseWriter, r *http.Request) {
	coord, ok := h.provider.Current()
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No position fix received yet")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CurrentLocationResponse{Coordinate: coord})
}

// Locate handles POST /location/locate
// One-shot fetch: blocks until the device's next report or the configured
// timeout, then recenters the viewport on success.
func (h *LocationHandler) Locate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.locateTimeout)
	defer cancel()

	coord, err := h.provider.RequestOnce(ctx)
	switch {
	case errors.Is(err, location.ErrPermissionDenied):
		middleware.ErrorResponse(w, http.StatusForbidden, "Location permission denied")
		return
	case errors.Is(err, location.ErrPositionUnavailable):
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Position unavailable")
		return
	case errors.Is(err, location.ErrTimeout):
		middleware.ErrorResponse(w, http.StatusGatewayTimeout, "Location request timed out")
		return
	case err != nil:
		slog.Error("locate failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Locate failed")
		return
	}

	h.view.FollowLive(coord)

	middleware.JSONResponse(w, http.StatusOK, models.CurrentLocationResponse{Coordinate: coord})
}
