// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/unitracker/middleware"
	"github.com/danielhkuo/unitracker/models"
	"github.com/danielhkuo/unitracker/pins"
	"github.com/danielhkuo/unitracker/session"
)

type PinHandler struct {
	registry   *pins.Registry
	controller *session.Controller
}

func NewPinHandler(registry *pins.Registry, controller *session.Controller) *PinHandler {
	return &PinHandler{registry: registry, controller: controller}
}

// List handles GET /pins
func (h *PinHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.registry.List()

	resp := models.ListPinsResponse{
		Pins:  make([]models.PinResponse, 0, len(all)),
		Count: len(all),
	}
	for _, p := range all {
		resp.Pins = append(resp.Pins, models.NewPinResponse(p))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Create handles POST /pins
// Direct registry-level creation, bypassing the add-pin flow.
func (h *PinHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pin, err := h.registry.Add(req.Lat, req.Lng, req.Title, req.Description)
	if errors.Is(err, pins.ErrEmptyTitle) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "title is required")
		return
	}
	if err != nil {
		slog.Error("failed to add pin", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add pin")
		return
	}

	slog.Info("pin created", "pin_id", pin.ID, "title", pin.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.NewPinResponse(pin))
}

// Delete handles DELETE /pins/{id}
// Deleting an unknown id is a no-op, not an error.
func (h *PinHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pin id is required")
		return
	}

	if h.registry.Remove(id) {
		slog.Info("pin deleted", "pin_id", id)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Select handles POST /pins/{id}/select
// Recenters the viewport on the pin; the pin itself is untouched.
func (h *PinHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pin id is required")
		return
	}

	pin, ok := h.registry.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Pin not found")
		return
	}

	h.controller.SelectPin(pin)

	middleware.JSONResponse(w, http.StatusOK, h.controller.Snapshot())
}
