package tui

import (
	"github.com/MKhiriev/go-request-inbox/internal/inbox"
	"github.com/MKhiriev/go-request-inbox/internal/stream"
)

// snapshotMsg carries the latest inbox state.
type snapshotMsg struct {
	snapshot inbox.Snapshot
}

// snapshotsClosedMsg means the inbox stopped publishing.
type snapshotsClosedMsg struct{}

type connectionStateMsg struct {
	state stream.State
}

type actionDoneMsg struct {
	done string
	err  error
}

type copiedMsg struct {
	err error
}

type selectionFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
