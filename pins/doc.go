// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pins holds the authoritative in-memory pin list.

# Registry

The registry is the only writer of pin state. Mutations are synchronous:
the in-memory list is updated before the call returns, then mirrored into
the persistence slot with the full updated list.

	registry := pins.NewRegistry(st, st.Load(), feed)

	pin, err := registry.Add(51.5, -0.09, "Library", "")   // assigns id + timestamp
	removed := registry.Remove(pin.ID)                     // idempotent
	snapshot := registry.List()                            // insertion order

# Validation

Add rejects a title that is empty after trimming whitespace with
ErrEmptyTitle and leaves the list unchanged. Latitude/longitude are not
range-checked. Descriptions may be empty.

# Persistence

Saves are fire-and-forget from the caller's perspective: a failed save is
logged and surfaced as a notice, and the in-memory list remains the source
of truth for the session.
*/
package pins
