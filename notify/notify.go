// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"sync"
	"time"

	"github.com/danielhkuo/unitracker/models"
)

// maxPending bounds the feed; the oldest notice is dropped past this.
const maxPending = 32

// Notifier is the sink the core reports transient messages through.
// The frontend renders these as toasts.
type Notifier interface {
	Notify(message string, isError bool)
}

// Feed is an in-memory Notifier the frontend drains over HTTP.
type Feed struct {
	mu      sync.Mutex
	notices []models.Notice
}

func NewFeed() *Feed {
	return &Feed{}
}

func (f *Feed) Notify(message string, isError bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.notices = append(f.notices, models.Notice{
		Message: message,
		IsError: isError,
		At:      time.Now(),
	})
	if len(f.notices) > maxPending {
		f.notices = f.notices[len(f.notices)-maxPending:]
	}
}

// Drain returns all pending notices and clears the feed.
func (f *Feed) Drain() []models.Notice {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := f.notices
	f.notices = nil
	if out == nil {
		out = []models.Notice{}
	}
	return out
}
