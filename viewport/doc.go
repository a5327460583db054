// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package viewport tracks the map's center/zoom target. It only ever
// reacts: live fixes and pin selection recenter it, and the frontend reads
// snapshots to render the pan.
package viewport
