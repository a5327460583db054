// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Interaction states
const (
	StateIdle         = "idle"
	StateAddModeArmed = "add_mode_armed"
	StatePendingEntry = "pending_entry"
)

// Geolocation failure reasons
const (
	FailurePermissionDenied    = "permission_denied"
	FailurePositionUnavailable = "position_unavailable"
	FailureTimeout             = "timeout"
)

// Domain types

// Coordinate is a geographic point. Latitude/longitude are not range-checked
// anywhere; out-of-range values pass through untouched.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pin is a saved point of interest. Fields are immutable once created;
// Timestamp is Unix milliseconds, used for display only.
type Pin struct {
	ID          string  `json:"id"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Timestamp   int64   `json:"timestamp"`
}

// Coordinate returns the pin's position as a Coordinate.
func (p Pin) Coordinate() Coordinate {
	return Coordinate{Lat: p.Lat, Lng: p.Lng}
}

// PendingEntry is an unconfirmed coordinate with whatever the user has typed
// so far. It lives only inside the interaction controller and is never
// persisted.
type PendingEntry struct {
	Coordinate  Coordinate `json:"coordinate"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
}

// ViewportState is the map viewport's current target.
type ViewportState struct {
	Center   Coordinate `json:"center"`
	Zoom     int        `json:"zoom"`
	Animated bool       `json:"animated"`
}

// Notice is a transient user-facing message (a toast, server-side).
type Notice struct {
	Message string    `json:"message"`
	IsError bool      `json:"is_error"`
	At      time.Time `json:"at"`
}

// Request types

type CreatePinRequest struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

type MapClickRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CommitPinRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type LocationFixRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocationFailureRequest struct {
	Reason string `json:"reason"`
}

// Response types

type PinResponse struct {
	Pin
	CreatedAgo string `json:"created_ago"`
}

// NewPinResponse wraps a pin with a humanized relative age for the sidebar.
func NewPinResponse(p Pin) PinResponse {
	return PinResponse{
		Pin:        p,
		CreatedAgo: humanize.Time(time.UnixMilli(p.Timestamp)),
	}
}

type ListPinsResponse struct {
	Pins  []PinResponse `json:"pins"`
	Count int           `json:"count"`
}

type SessionResponse struct {
	State    string        `json:"state"`
	Pending  *PendingEntry `json:"pending,omitempty"`
	Viewport ViewportState `json:"viewport"`
}

type ToggleAddModeResponse struct {
	State string `json:"state"`
}

type QuickCaptureResponse struct {
	State   string     `json:"state"`
	Capture Coordinate `json:"capture"`
}

type CurrentLocationResponse struct {
	Coordinate Coordinate `json:"coordinate"`
}

type NotificationsResponse struct {
	Notices []Notice `json:"notices"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
