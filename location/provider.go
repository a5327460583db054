// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package location

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/danielhkuo/unitracker/models"
)

// Geolocation failures, one sentinel per platform failure reason.
var (
	ErrPermissionDenied    = errors.New("geolocation permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("geolocation request timed out")
	ErrNoFix               = errors.New("no position fix received yet")
)

// FailureFromReason maps a reported reason string to its sentinel.
func FailureFromReason(reason string) (error, bool) {
	switch reason {
	case models.FailurePermissionDenied:
		return ErrPermissionDenied, true
	case models.FailurePositionUnavailable:
		return ErrPositionUnavailable, true
	case models.FailureTimeout:
		return ErrTimeout, true
	}
	return nil, false
}

type result struct {
	coord models.Coordinate
	err   error
}

// Provider multiplexes device position reports to consumers. Fixes arrive
// via Report (fed by the reporting boundary); consumers either wait for the
// next fix (RequestOnce), subscribe to the stream (Watch), or read the
// latched most-recent coordinate (Current).
//
// There is no retry logic: a failure is surfaced once and it is the
// caller's decision whether to ask again.
type Provider struct {
	mu      sync.Mutex
	current *models.Coordinate
	waiters map[chan result]struct{}
	subs    map[*Subscription]struct{}
}

func NewProvider() *Provider {
	return &Provider{
		waiters: make(map[chan result]struct{}),
		subs:    make(map[*Subscription]struct{}),
	}
}

// Report records a new device fix: latches it as the live coordinate,
// resolves pending one-shot requests, and fans it out to watchers.
func (p *Provider) Report(c models.Coordinate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	latched := c
	p.current = &latched

	for w := range p.waiters {
		w <- result{coord: c}
		delete(p.waiters, w)
	}

	for s := range p.subs {
		select {
		case s.ch <- c:
		default:
			// Watcher is behind; coordinate updates are idempotent, so
			// dropping one is harmless.
			slog.Debug("dropping coordinate for slow watcher")
		}
	}
}

// ReportFailure resolves pending one-shot requests with the failure for the
// given reason. The latched coordinate and watchers are untouched.
func (p *Provider) ReportFailure(reason string) error {
	failure, ok := FailureFromReason(reason)
	if !ok {
		return errors.New("unknown failure reason: " + reason)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for w := range p.waiters {
		w <- result{err: failure}
		delete(p.waiters, w)
	}
	return nil
}

// RequestOnce blocks until the next fix or failure report, or until ctx
// expires. Context expiry is surfaced as ErrTimeout, matching the
// platform-provided geolocation timeout.
func (p *Provider) RequestOnce(ctx context.Context) (models.Coordinate, error) {
	w := make(chan result, 1)

	p.mu.Lock()
	p.waiters[w] = struct{}{}
	p.mu.Unlock()

	select {
	case res := <-w:
		return res.coord, res.err
	case <-ctx.Done():
		p.mu.Lock()
		delete(p.waiters, w)
		p.mu.Unlock()
		return models.Coordinate{}, ErrTimeout
	}
}

// Watch begins continuous updates. The subscription's channel emits at the
// provider's cadence until Cancel is called; Cancel must be called exactly
// once when the consumer is torn down.
func (p *Provider) Watch() *Subscription {
	s := &Subscription{
		ch:       make(chan models.Coordinate, 8),
		provider: p,
	}
	s.C = s.ch

	p.mu.Lock()
	p.subs[s] = struct{}{}
	p.mu.Unlock()

	return s
}

// Current returns the latched most-recent coordinate, if any fix has been
// received.
func (p *Provider) Current() (models.Coordinate, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return models.Coordinate{}, false
	}
	return *p.current, true
}

// Subscription is a cancelable stream of coordinates from Watch.
type Subscription struct {
	// C emits coordinate updates until the subscription is canceled.
	C <-chan models.Coordinate

	ch       chan models.Coordinate
	provider *Provider
	cancel   sync.Once
}

// Cancel stops emission and closes C. Safe to call more than once, but a
// leaked subscription keeps consuming until the provider is dropped.
func (s *Subscription) Cancel() {
	s.cancel.Do(func() {
		s.provider.mu.Lock()
		delete(s.provider.subs, s)
		s.provider.mu.Unlock()
		close(s.ch)
	})
}
