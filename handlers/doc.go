// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the UniTracker API.

# Handler Types

Each handler is a struct with its dependencies injected via a constructor:

  - PinHandler: pin list, creation, deletion, sidebar selection
  - SessionHandler: the add-pin interaction flow
  - LocationHandler: device fix/failure reporting and one-shot locate
  - NotificationHandler: draining the notice feed
  - TileHandler: the caching tile proxy

# Pin Flow

The sanctioned way to create a pin is through the session flow:

	POST /session/add-mode       → arm pin-drop mode
	POST /session/map-click      → capture the clicked coordinate
	POST /session/commit         → validate title, create the pin
	POST /session/cancel         → discard the open entry

Quick capture (POST /session/quick-capture) skips the map click and uses
the latched live coordinate; with no fix yet it answers 409 and nothing
changes.

POST /pins exists as the direct registry-level entry point; DELETE answers
204 whether or not the id existed.

# Location Flow

The device pushes fixes and failures:

	POST /location/fix           → becomes the live coordinate
	POST /location/failure       → {permission_denied|position_unavailable|timeout}
	GET  /location/current       → latched coordinate, 404 before first fix
	POST /location/locate        → one-shot: next fix or 504 on timeout

# Error Shape

All errors use models.ErrorResponse. A blank pin title is 422 and keeps
the pending entry (form contents preserved); conflict-class refusals
(no entry open, no GPS signal) are 409.
*/
package handlers
