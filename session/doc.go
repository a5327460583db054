// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the interaction state machine coordinating pin
creation.

# States

	idle  ──toggle──▶  add_mode_armed  ──map click──▶  pending_entry
	  ▲                     │                              │
	  └─────toggle──────────┘          cancel / commit ────┘

Quick capture jumps straight from idle or armed to pending_entry using the
latched live coordinate; with no fix yet it is refused ("no signal") with
no state change. Selecting a pin from the sidebar recenters the viewport
and lands in idle from anywhere.

# Failure Semantics

A commit with a blank title is recoverable: the entry stays open and the
typed contents are preserved. A geolocation failure during quick capture
never opens an entry. Every refusal surfaces a notice; nothing here is
fatal.
*/
package session
