// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package notify carries transient user-facing messages from the core to
// the presentation layer. Feed is the default sink: a bounded in-memory
// queue the frontend drains via GET /notifications.
package notify
