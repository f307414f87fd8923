// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

// State is the connection state owned by the [Supervisor].
type State int

const (
	// StateDisconnected is the initial state and the terminal state after
	// [Supervisor.Stop].
	StateDisconnected State = iota
	// StateConnecting means a subscription is being opened.
	StateConnecting
	// StateOpen means the server accepted the subscription and frames flow.
	StateOpen
	// StateErrored means the last attempt failed and a retry is scheduled.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}
