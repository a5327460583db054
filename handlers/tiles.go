// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/unitracker/middleware"
	"github.com/danielhkuo/unitracker/tiles"
)

type TileHandler struct {
	cache *tiles.Cache
}

func NewTileHandler(cache *tiles.Cache) *TileHandler {
	return &TileHandler{cache: cache}
}

// Get handles GET /tiles/{z}/{x}/{y}
// Serves a cached tile when available, otherwise fetches and caches it.
func (h *TileHandler) Get(w http.ResponseWriter, r *http.Request) {
	z, errZ := strconv.Atoi(r.PathValue("z"))
	x, errX := strconv.Atoi(r.PathValue("x"))
	y, errY := strconv.Atoi(r.PathValue("y"))
	if errZ != nil || errX != nil || errY != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "tile coordinates must be integers")
		return
	}
	if z < 0 || x < 0 || y < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "tile coordinates must be non-negative")
		return
	}

	body, contentType, err := h.cache.Get(r.Context(), z, x, y)
	if errors.Is(err, tiles.ErrUpstream) {
		middleware.ErrorResponse(w, http.StatusBadGateway, "Tile origin error")
		return
	}
	if err != nil {
		slog.Error("tile fetch failed", "z", z, "x", x, "y", y, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to fetch tile")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
