// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-request-inbox/internal/stream"

// StateFeed hands connection states from the supervisor to the view.
// Only the latest state is kept, so Observe never blocks the supervisor.
type StateFeed struct {
	ch chan stream.State
}

// NewStateFeed creates an empty feed.
func NewStateFeed() *StateFeed {
	return &StateFeed{ch: make(chan stream.State, 1)}
}

// Observe records s. It matches [stream.Observer].
func (f *StateFeed) Observe(s stream.State) {
	for {
		select {
		case f.ch <- s:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

// C returns the channel the view reads states from.
func (f *StateFeed) C() <-chan stream.State {
	return f.ch
}
