// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Pin: a saved point of interest (id, lat/lng, title, description, timestamp)
  - Coordinate: a bare lat/lng pair
  - PendingEntry: an unconfirmed coordinate awaiting title/description
  - ViewportState: the map viewport's center/zoom target
  - Notice: a transient user-facing message

Pins are immutable after creation; there is no edit operation. Timestamps
are Unix milliseconds and matter only for display.

# Request Types

Types for parsing incoming JSON:

  - CreatePinRequest: lat, lng, title, description
  - MapClickRequest: lat, lng
  - CommitPinRequest: title, description
  - LocationFixRequest: lat, lng
  - LocationFailureRequest: reason

# Response Types

Types for JSON responses:

  - PinResponse: pin fields plus a humanized created_ago string
  - ListPinsResponse: pins, count
  - SessionResponse: state, pending entry, viewport
  - CurrentLocationResponse: latched live coordinate
  - NotificationsResponse: drained notices
  - ErrorResponse: error, message

# Constants

Interaction states:

	StateIdle         = "idle"
	StateAddModeArmed = "add_mode_armed"
	StatePendingEntry = "pending_entry"

Geolocation failure reasons:

	FailurePermissionDenied    = "permission_denied"
	FailurePositionUnavailable = "position_unavailable"
	FailureTimeout             = "timeout"
*/
package models
