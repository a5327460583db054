// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/unitracker/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "pins.json"))
}

func TestRoundTrip(t *testing.T) {
	st := newTestStore(t)

	pins := []models.Pin{
		{ID: "a1", Lat: 51.5, Lng: -0.09, Title: "Library", Description: "", Timestamp: 1700000000000},
		{ID: "b2", Lat: 40.7, Lng: -74.0, Title: "Ferry", Description: "weekend only", Timestamp: 1700000001000},
		{ID: "c3", Lat: -33.86, Lng: 151.2, Title: "Opera House", Description: "", Timestamp: 1700000002000},
	}

	if err := st.Save(pins); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := st.Load()
	if len(loaded) != len(pins) {
		t.Fatalf("Expected %d pins, got %d", len(pins), len(loaded))
	}
	for i := range pins {
		if loaded[i] != pins[i] {
			t.Errorf("Pin %d mismatch: expected %+v, got %+v", i, pins[i], loaded[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	st := newTestStore(t)

	loaded := st.Load()
	if len(loaded) != 0 {
		t.Errorf("Expected empty list for missing file, got %d pins", len(loaded))
	}
}

func TestLoadMalformedData(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", "this is not json{{"},
		{"non-list JSON", `{"id":"a1","title":"Library"}`},
		{"number", "42"},
		{"list of strings", `["a","b"]`},
		{"record missing id", `[{"lat":1,"lng":2,"title":"ok","timestamp":1}]`},
		{"record with blank title", `[{"id":"a1","lat":1,"lng":2,"title":"   ","timestamp":1}]`},
		{"one bad record among good", `[{"id":"a1","lat":1,"lng":2,"title":"ok","timestamp":1},{"id":"","lat":0,"lng":0,"title":"x","timestamp":2}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pins.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("Failed to write fixture: %v", err)
			}

			loaded := New(path).Load()
			if len(loaded) != 0 {
				t.Errorf("Expected malformed data to yield empty list, got %d pins", len(loaded))
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	st := newTestStore(t)

	first := []models.Pin{{ID: "a1", Title: "First", Timestamp: 1}}
	second := []models.Pin{{ID: "b2", Title: "Second", Timestamp: 2}}

	if err := st.Save(first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := st.Save(second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := st.Load()
	if len(loaded) != 1 || loaded[0].ID != "b2" {
		t.Errorf("Expected only the second list to survive, got %+v", loaded)
	}
}

func TestSaveEmptyList(t *testing.T) {
	st := newTestStore(t)

	if err := st.Save([]models.Pin{{ID: "a1", Title: "One", Timestamp: 1}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := st.Save([]models.Pin{}); err != nil {
		t.Fatalf("Save of empty list failed: %v", err)
	}

	if loaded := st.Load(); len(loaded) != 0 {
		t.Errorf("Expected empty list after saving empty, got %d pins", len(loaded))
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "pins.json")
	st := New(path)

	if err := st.Save([]models.Pin{{ID: "a1", Title: "One", Timestamp: 1}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if loaded := st.Load(); len(loaded) != 1 {
		t.Errorf("Expected 1 pin, got %d", len(loaded))
	}
}
