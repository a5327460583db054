// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the pin list to a single durable slot on disk.

# Layout

One file holding a JSON array of pin records, exactly the wire shape of
models.Pin. No version tag, no metadata, no delta writes: every Save
replaces the whole file (write-then-rename).

# Failure Model

	pins := st.Load()          // never fails; malformed data → empty list, logged
	err := st.Save(pins)       // reported, non-fatal; callers keep their in-memory state

A stored value that fails structural validation on Load (not JSON, not a
list, or any record with a missing id or blank title) is discarded
wholesale and treated as empty history. Partial acceptance never happens.
*/
package store
