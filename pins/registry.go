// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pins

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/unitracker/models"
	"github.com/danielhkuo/unitracker/notify"
)

// ErrEmptyTitle is returned by Add when the title is empty after trimming.
var ErrEmptyTitle = errors.New("pin title is required")

// Saver is the persistence slot the registry mirrors itself into.
type Saver interface {
	Save(pins []models.Pin) error
}

// Registry owns the canonical in-memory pin list. It is mutated only by
// explicit calls and mirrors every mutation into the Saver. A persistence
// failure is reported and logged but never rolls back in-memory state.
type Registry struct {
	mu       sync.Mutex
	pins     []models.Pin
	store    Saver
	notifier notify.Notifier
}

// NewRegistry builds a registry over a persistence slot, seeded with the
// previously stored pins. notifier may be nil.
func NewRegistry(store Saver, initial []models.Pin, notifier notify.Notifier) *Registry {
	r := &Registry{store: store, notifier: notifier}
	r.pins = append(r.pins, initial...)
	return r
}

// Add validates the candidate, assigns id and timestamp, appends it and
// persists the updated list. The returned pin is the stored record.
func (r *Registry) Add(lat, lng float64, title, description string) (models.Pin, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Pin{}, ErrEmptyTitle
	}

	pin := models.Pin{
		ID:          uuid.NewString(),
		Lat:         lat,
		Lng:         lng,
		Title:       title,
		Description: description,
		Timestamp:   time.Now().UnixMilli(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pins = append(r.pins, pin)
	r.persist()

	return pin, nil
}

// Remove deletes the pin with the given id. Removing an unknown id is a
// no-op, not an error; the return reports whether anything was deleted.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.pins {
		if p.ID == id {
			r.pins = append(r.pins[:i], r.pins[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}

// Get returns the pin with the given id, if present.
func (r *Registry) Get(id string) (models.Pin, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.pins {
		if p.ID == id {
			return p, true
		}
	}
	return models.Pin{}, false
}

// List returns a read-only snapshot in insertion order.
func (r *Registry) List() []models.Pin {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Pin, len(r.pins))
	copy(out, r.pins)
	return out
}

// persist mirrors the current list into the store. Callers hold r.mu.
// Failures are reported, not returned: in-memory state stays authoritative
// and the accepted consequence is data loss on reload.
func (r *Registry) persist() {
	if err := r.store.Save(r.pins); err != nil {
		slog.Error("failed to persist pins", "error", err, "count", len(r.pins))
		if r.notifier != nil {
			r.notifier.Notify("Could not save pins to disk", true)
		}
	}
}
