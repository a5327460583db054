// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging wraps a handler and logs start/completion with method, path
and duration via slog:

	mux.HandleFunc("GET /pins", middleware.WithLogging(h.List))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "lat and lng are required")
	middleware.ParseJSONBody(r, &req)

ErrorResponse writes the standard models.ErrorResponse shape.

# CORS

CORS wraps the whole mux and reflects the request origin, so the browser
frontend can run on a different port during development.
*/
package middleware
