// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/unitracker/location"
	"github.com/danielhkuo/unitracker/models"
	"github.com/danielhkuo/unitracker/notify"
	"github.com/danielhkuo/unitracker/pins"
	"github.com/danielhkuo/unitracker/store"
	"github.com/danielhkuo/unitracker/viewport"
)

type testCore struct {
	controller *Controller
	registry   *pins.Registry
	provider   *location.Provider
	view       *viewport.Viewport
	feed       *notify.Feed
}

func newTestCore(t *testing.T) testCore {
	t.Helper()

	st := store.New(filepath.Join(t.TempDir(), "pins.json"))
	feed := notify.NewFeed()
	registry := pins.NewRegistry(st, st.Load(), feed)
	provider := location.NewProvider()
	view := viewport.New()

	return testCore{
		controller: New(registry, provider, view, feed),
		registry:   registry,
		provider:   provider,
		view:       view,
		feed:       feed,
	}
}

func (c testCore) state() string {
	return c.controller.Snapshot().State
}

func TestInitialState(t *testing.T) {
	c := newTestCore(t)

	snap := c.controller.Snapshot()
	if snap.State != models.StateIdle {
		t.Errorf("Expected idle, got %s", snap.State)
	}
	if snap.Pending != nil {
		t.Error("Expected no pending entry initially")
	}
}

func TestToggleAddMode(t *testing.T) {
	c := newTestCore(t)

	if s := c.controller.ToggleAddMode(); s != models.StateAddModeArmed {
		t.Errorf("Expected add_mode_armed after first toggle, got %s", s)
	}
	if s := c.controller.ToggleAddMode(); s != models.StateIdle {
		t.Errorf("Expected idle after second toggle, got %s", s)
	}
}

func TestToggleOffClearsPendingLocation(t *testing.T) {
	c := newTestCore(t)

	c.controller.ToggleAddMode()
	c.controller.MapClick(models.Coordinate{Lat: 51.5, Lng: -0.09})

	if s := c.controller.ToggleAddMode(); s != models.StateIdle {
		t.Errorf("Expected idle, got %s", s)
	}
	if c.controller.Snapshot().Pending != nil {
		t.Error("Expected pending location cleared by toggling off")
	}
}

// The full click-to-commit flow: arm, click, cancel leaves no pin; arm,
// click, commit creates exactly one at the clicked spot.
func TestMapClickFlow(t *testing.T) {
	c := newTestCore(t)
	coord := models.Coordinate{Lat: 51.5, Lng: -0.09}

	c.controller.ToggleAddMode()
	if !c.controller.MapClick(coord) {
		t.Fatal("Expected armed map click to be honored")
	}

	snap := c.controller.Snapshot()
	if snap.State != models.StatePendingEntry {
		t.Fatalf("Expected pending_entry, got %s", snap.State)
	}
	if snap.Pending == nil || snap.Pending.Coordinate != coord {
		t.Fatalf("Expected pending coordinate %+v, got %+v", coord, snap.Pending)
	}

	// Cancel: back to idle, nothing added
	if err := c.controller.Cancel(); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if c.state() != models.StateIdle {
		t.Errorf("Expected idle after cancel, got %s", c.state())
	}
	if len(c.registry.List()) != 0 {
		t.Error("Expected no pin after cancel")
	}

	// Same flow with a commit instead
	c.controller.ToggleAddMode()
	c.controller.MapClick(coord)
	pin, err := c.controller.Commit("Cafe", "")
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if c.state() != models.StateIdle {
		t.Errorf("Expected idle after commit, got %s", c.state())
	}

	list := c.registry.List()
	if len(list) != 1 {
		t.Fatalf("Expected exactly one pin, got %d", len(list))
	}
	if list[0].Lat != coord.Lat || list[0].Lng != coord.Lng {
		t.Errorf("Expected pin at %+v, got (%v, %v)", coord, list[0].Lat, list[0].Lng)
	}
	if pin.Title != "Cafe" || pin.Description != "" {
		t.Errorf("Unexpected pin contents: %+v", pin)
	}
}

func TestMapClickIgnoredWhenNotArmed(t *testing.T) {
	c := newTestCore(t)

	if c.controller.MapClick(models.Coordinate{Lat: 1, Lng: 2}) {
		t.Error("Expected idle map click to be ignored")
	}
	if c.state() != models.StateIdle {
		t.Errorf("Expected state unchanged, got %s", c.state())
	}
}

func TestQuickCaptureWithoutSignal(t *testing.T) {
	c := newTestCore(t)

	_, err := c.controller.QuickCapture()
	if !errors.Is(err, location.ErrNoFix) {
		t.Errorf("Expected ErrNoFix, got %v", err)
	}
	if c.state() != models.StateIdle {
		t.Errorf("Expected no state change, got %s", c.state())
	}
	if len(c.registry.List()) != 0 {
		t.Error("Expected pin list unchanged")
	}

	notices := c.feed.Drain()
	if len(notices) != 1 || !notices[0].IsError {
		t.Errorf("Expected one error notice, got %+v", notices)
	}
}

func TestQuickCaptureWithSignal(t *testing.T) {
	c := newTestCore(t)
	live := models.Coordinate{Lat: 43.65, Lng: -79.38}
	c.provider.Report(live)

	capture, err := c.controller.QuickCapture()
	if err != nil {
		t.Fatalf("QuickCapture failed: %v", err)
	}
	if capture != live {
		t.Errorf("Expected captured coordinate %+v, got %+v", live, capture)
	}

	snap := c.controller.Snapshot()
	if snap.State != models.StatePendingEntry {
		t.Errorf("Expected pending_entry, got %s", snap.State)
	}
	if snap.Pending.Coordinate != live {
		t.Errorf("Expected pending at live coordinate, got %+v", snap.Pending.Coordinate)
	}
}

func TestQuickCaptureFromArmedState(t *testing.T) {
	c := newTestCore(t)
	c.provider.Report(models.Coordinate{Lat: 1, Lng: 2})

	c.controller.ToggleAddMode()
	if _, err := c.controller.QuickCapture(); err != nil {
		t.Fatalf("QuickCapture from armed state failed: %v", err)
	}
	if c.state() != models.StatePendingEntry {
		t.Errorf("Expected pending_entry, got %s", c.state())
	}
}

func TestQuickCaptureWhileEntryOpen(t *testing.T) {
	c := newTestCore(t)
	c.provider.Report(models.Coordinate{Lat: 1, Lng: 2})

	first, _ := c.controller.QuickCapture()
	c.provider.Report(models.Coordinate{Lat: 9, Lng: 9})

	again, err := c.controller.QuickCapture()
	if err != nil {
		t.Fatalf("QuickCapture failed: %v", err)
	}
	if again != first {
		t.Errorf("Expected the open entry to be kept, got %+v", again)
	}
}

func TestCommitValidationPreservesEntry(t *testing.T) {
	c := newTestCore(t)
	coord := models.Coordinate{Lat: 51.5, Lng: -0.09}

	c.controller.ToggleAddMode()
	c.controller.MapClick(coord)

	_, err := c.controller.Commit("   ", "a note I already typed")
	if !errors.Is(err, pins.ErrEmptyTitle) {
		t.Fatalf("Expected ErrEmptyTitle, got %v", err)
	}

	snap := c.controller.Snapshot()
	if snap.State != models.StatePendingEntry {
		t.Errorf("Expected entry still open, got %s", snap.State)
	}
	if snap.Pending == nil || snap.Pending.Coordinate != coord {
		t.Fatal("Expected pending location preserved")
	}
	if snap.Pending.Description != "a note I already typed" {
		t.Errorf("Expected typed description preserved, got %q", snap.Pending.Description)
	}
	if len(c.registry.List()) != 0 {
		t.Error("Expected no pin created by failed commit")
	}

	// A corrected retry succeeds from where the user left off
	if _, err := c.controller.Commit("Fixed", snap.Pending.Description); err != nil {
		t.Fatalf("Retry commit failed: %v", err)
	}
	if len(c.registry.List()) != 1 {
		t.Error("Expected exactly one pin after retry")
	}
}

func TestCommitWithoutEntry(t *testing.T) {
	c := newTestCore(t)

	if _, err := c.controller.Commit("Title", ""); !errors.Is(err, ErrNoPendingEntry) {
		t.Errorf("Expected ErrNoPendingEntry, got %v", err)
	}
}

func TestCancelWithoutEntry(t *testing.T) {
	c := newTestCore(t)

	if err := c.controller.Cancel(); !errors.Is(err, ErrNoPendingEntry) {
		t.Errorf("Expected ErrNoPendingEntry, got %v", err)
	}
}

func TestSelectPinRecentersViewport(t *testing.T) {
	c := newTestCore(t)

	pin, _ := c.registry.Add(35.68, 139.69, "Tokyo", "")

	// Selection works from any state, here mid-add-flow
	c.controller.ToggleAddMode()
	c.controller.MapClick(models.Coordinate{Lat: 1, Lng: 2})
	c.controller.SelectPin(pin)

	snap := c.controller.Snapshot()
	if snap.State != models.StateIdle {
		t.Errorf("Expected idle after selection, got %s", snap.State)
	}
	if snap.Pending != nil {
		t.Error("Expected pending entry abandoned by selection")
	}
	if snap.Viewport.Center != pin.Coordinate() {
		t.Errorf("Expected viewport centered on pin, got %+v", snap.Viewport.Center)
	}
	if snap.Viewport.Zoom != viewport.FocusZoom {
		t.Errorf("Expected focus zoom %d, got %d", viewport.FocusZoom, snap.Viewport.Zoom)
	}

	// The pin itself is untouched
	if len(c.registry.List()) != 1 {
		t.Error("Expected selection to leave the pin list alone")
	}
}
