// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package schedule paces redraws. Renderers and editors request frames;
// the host loop waits for a request and draws.
package schedule

import (
	"context"
	"sync/atomic"
	"time"
)

// Scheduler collects frame requests. Requests made before the host loop
// picks one up are coalesced into a single frame. It implements
// gridview.Scheduler and is safe for concurrent use.
type Scheduler struct {
	frames   chan struct{}
	requests atomic.Uint64
}

// New creates a scheduler with no pending request.
func New() *Scheduler {
	return &Scheduler{frames: make(chan struct{}, 1)}
}

// QueueNextFrame requests a frame. It never blocks.
func (s *Scheduler) QueueNextFrame() {
	s.requests.Add(1)
	select {
	case s.frames <- struct{}{}:
	default:
	}
}

// Frames delivers one value per coalesced request.
func (s *Scheduler) Frames() <-chan struct{} {
	return s.frames
}

// Requests returns the number of QueueNextFrame calls so far.
func (s *Scheduler) Requests() uint64 {
	return s.requests.Load()
}

// Run calls draw for every requested frame, at most once per interval,
// until ctx is done or draw fails. draw receives the time since the
// previous frame; the first frame gets interval.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, draw func(dt time.Duration) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now().Add(-interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.frames:
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now
		if err := draw(dt); err != nil {
			return err
		}
	}
}
