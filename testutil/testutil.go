// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/unitracker/location"
	"github.com/danielhkuo/unitracker/models"
	"github.com/danielhkuo/unitracker/notify"
	"github.com/danielhkuo/unitracker/pins"
	"github.com/danielhkuo/unitracker/session"
	"github.com/danielhkuo/unitracker/store"
	"github.com/danielhkuo/unitracker/viewport"
)

// NewTestStore creates a store backed by a fresh temp-dir file
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "pins.json"))
}

// NewTestRegistry creates an empty registry over a temp-dir store
func NewTestRegistry(t *testing.T) (*pins.Registry, *notify.Feed) {
	t.Helper()
	feed := notify.NewFeed()
	st := NewTestStore(t)
	return pins.NewRegistry(st, st.Load(), feed), feed
}

// Core bundles a fully wired interaction core for handler tests
type Core struct {
	Registry   *pins.Registry
	Controller *session.Controller
	Provider   *location.Provider
	View       *viewport.Viewport
	Feed       *notify.Feed
}

// NewTestCore wires registry, provider, viewport and controller over
// temp-dir storage
func NewTestCore(t *testing.T) Core {
	t.Helper()

	registry, feed := NewTestRegistry(t)
	provider := location.NewProvider()
	view := viewport.New()
	controller := session.New(registry, provider, view, feed)

	return Core{
		Registry:   registry,
		Controller: controller,
		Provider:   provider,
		View:       view,
		Feed:       feed,
	}
}

// AddTestPin adds a pin directly through the registry and returns it
func AddTestPin(t *testing.T, registry *pins.Registry, title string, coord models.Coordinate) models.Pin {
	t.Helper()

	pin, err := registry.Add(coord.Lat, coord.Lng, title, "")
	if err != nil {
		t.Fatalf("Failed to add test pin: %v", err)
	}
	return pin
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
