// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/unitracker/models"
)

// Store persists the full pin list as a JSON array in a single file.
// Every Save rewrites the whole file; there are no incremental writes.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the stored pin list. Missing or malformed data is never an
// error: anything that fails structural validation is discarded wholesale
// and logged, and Load returns an empty list.
func (s *Store) Load() []models.Pin {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read pin data, starting empty", "path", s.path, "error", err)
		}
		return []models.Pin{}
	}

	var pins []models.Pin
	if err := json.Unmarshal(data, &pins); err != nil {
		slog.Warn("discarding malformed pin data", "path", s.path, "error", err)
		return []models.Pin{}
	}

	// Structural validation: the whole list is rejected if any record is
	// invalid, never partially accepted.
	for i, p := range pins {
		if p.ID == "" || strings.TrimSpace(p.Title) == "" {
			slog.Warn("discarding pin data failing validation", "path", s.path, "index", i)
			return []models.Pin{}
		}
	}

	return pins
}

// Save overwrites the stored representation with the given list. A failure
// is returned for reporting but is non-fatal: the in-memory registry stays
// authoritative regardless.
func (s *Store) Save(pins []models.Pin) error {
	data, err := json.Marshal(pins)
	if err != nil {
		return fmt.Errorf("failed to encode pins: %w", err)
	}

	// Write-then-rename so a crash mid-write can't leave a truncated file.
	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write pins: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace pin data: %w", err)
	}

	return nil
}
