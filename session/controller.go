// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"sync"

	"github.com/danielhkuo/unitracker/location"
	"github.com/danielhkuo/unitracker/models"
	"github.com/danielhkuo/unitracker/notify"
	"github.com/danielhkuo/unitracker/pins"
	"github.com/danielhkuo/unitracker/viewport"
)

// ErrNoPendingEntry is returned by Commit and Cancel when no entry is open.
var ErrNoPendingEntry = errors.New("no pending pin entry")

// Controller is the interaction state machine: the only place the add-pin
// business rules live. Map clicks, quick captures, form commits and sidebar
// selection all pass through here; everything else just renders the
// resulting state.
//
// States: idle, add_mode_armed, pending_entry. The sidebar ("browsing") is
// orthogonal presentation state and never appears here.
type Controller struct {
	mu       sync.Mutex
	state    string
	pending  *models.PendingEntry
	registry *pins.Registry
	provider *location.Provider
	view     *viewport.Viewport
	notifier notify.Notifier
}

func New(registry *pins.Registry, provider *location.Provider, view *viewport.Viewport, notifier notify.Notifier) *Controller {
	return &Controller{
		state:    models.StateIdle,
		registry: registry,
		provider: provider,
		view:     view,
		notifier: notifier,
	}
}

// ToggleAddMode arms pin-drop mode from idle, and disarms it from anywhere
// else, discarding any pending location. Returns the resulting state.
func (c *Controller) ToggleAddMode() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.StateIdle {
		c.state = models.StateAddModeArmed
	} else {
		c.state = models.StateIdle
		c.pending = nil
	}
	return c.state
}

// MapClick captures a clicked coordinate into a pending entry. Clicks are
// honored only while armed; otherwise they are ignored and MapClick
// reports false.
func (c *Controller) MapClick(coord models.Coordinate) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.StateAddModeArmed {
		return false
	}
	c.state = models.StatePendingEntry
	c.pending = &models.PendingEntry{Coordinate: coord}
	return true
}

// QuickCapture turns the current live coordinate into a pending entry
// without a map click. With no fix yet the action is refused with a
// "no signal" notice and no state change.
func (c *Controller) QuickCapture() (models.Coordinate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.StatePendingEntry {
		// An entry is already open; the form stays as-is.
		return c.pending.Coordinate, nil
	}

	live, ok := c.provider.Current()
	if !ok {
		c.notifier.Notify("No GPS signal yet", true)
		return models.Coordinate{}, location.ErrNoFix
	}

	c.state = models.StatePendingEntry
	c.pending = &models.PendingEntry{Coordinate: live}
	return live, nil
}

// Commit completes the open entry. On validation failure the entry stays
// open with the typed contents preserved; on success the pin is added and
// the machine returns to idle.
func (c *Controller) Commit(title, description string) (models.Pin, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.StatePendingEntry {
		return models.Pin{}, ErrNoPendingEntry
	}

	coord := c.pending.Coordinate
	pin, err := c.registry.Add(coord.Lat, coord.Lng, title, description)
	if err != nil {
		// Recoverable: keep the pending location and whatever was typed.
		c.pending.Title = title
		c.pending.Description = description
		c.notifier.Notify("Pin needs a title", true)
		return models.Pin{}, err
	}

	c.state = models.StateIdle
	c.pending = nil
	c.notifier.Notify("Pin saved: "+pin.Title, false)
	return pin, nil
}

// Cancel discards the open entry and returns to idle.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.StatePendingEntry {
		return ErrNoPendingEntry
	}
	c.state = models.StateIdle
	c.pending = nil
	return nil
}

// SelectPin recenters the viewport on a pin chosen from the sidebar. Valid
// from any state; any add flow in progress is abandoned.
func (c *Controller) SelectPin(p models.Pin) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view.FocusPin(p)
	c.state = models.StateIdle
	c.pending = nil
}

// Snapshot returns the controller and viewport state for rendering.
func (c *Controller) Snapshot() models.SessionResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp := models.SessionResponse{
		State:    c.state,
		Viewport: c.view.Snapshot(),
	}
	if c.pending != nil {
		pending := *c.pending
		resp.Pending = &pending
	}
	return resp
}
