// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the UniTracker API server.

UniTracker is a location-pinning map backend: the browser frontend renders
the map and reports device geolocation, while this server owns the pin
list, the add-pin interaction state, the viewport target, and an offline
tile cache.

# Starting the Server

	go run main.go

Or with flags:

	go run main.go -p 4117 -f pins.json -tile-url "https://tile.openstreetmap.org/{z}/{x}/{y}.png"

# Configuration

All settings are optional and fall back to environment variables and then
defaults:

  - PORT (-p): server port (default: 4117)
  - PIN_DATA_FILE (-f): pin data file (default: pins.json)
  - TILE_CACHE_PATH (-tile-cache): tile cache database (default: tiles.db)
  - TILE_URL_TEMPLATE (-tile-url): tile origin template
  - TILE_TIMEOUT_MS, LOCATE_TIMEOUT_MS: timeouts

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (pins, session, location, tiles)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - pins: the authoritative in-memory pin registry
  - store: the durable JSON slot the registry mirrors into
  - session: the add-pin interaction state machine
  - location: device geolocation fan-out (one-shot, watch, latched)
  - viewport: the map center/zoom target
  - notify: the transient notice feed
  - tiles: cache-or-network tile proxy over sqlite
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
