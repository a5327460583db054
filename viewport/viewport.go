// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package viewport

import (
	"sync"

	"github.com/danielhkuo/unitracker/models"
)

// Initial view and the zoom used when focusing a single point.
const (
	DefaultLat  = 51.505
	DefaultLng  = -0.09
	DefaultZoom = 13
	FocusZoom   = 16
)

// Viewport holds the map's center/zoom target. It is purely derived state:
// it reacts to live-coordinate updates and pin selection and mutates
// nothing else.
type Viewport struct {
	mu       sync.Mutex
	center   models.Coordinate
	zoom     int
	animated bool
}

func New() *Viewport {
	return &Viewport{
		center: models.Coordinate{Lat: DefaultLat, Lng: DefaultLng},
		zoom:   DefaultZoom,
	}
}

// FollowLive recenters on a fresh device fix, keeping the current zoom.
// The transition is flagged animated for a smooth pan.
func (v *Viewport) FollowLive(c models.Coordinate) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.center = c
	v.animated = true
}

// FocusPin recenters on a selected pin at focus zoom.
func (v *Viewport) FocusPin(p models.Pin) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.center = p.Coordinate()
	v.zoom = FocusZoom
	v.animated = true
}

// Snapshot returns the current target for rendering.
func (v *Viewport) Snapshot() models.ViewportState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return models.ViewportState{
		Center:   v.center,
		Zoom:     v.zoom,
		Animated: v.animated,
	}
}
