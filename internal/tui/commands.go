package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-request-inbox/internal/inbox"
	"github.com/MKhiriev/go-request-inbox/internal/stream"
	"github.com/MKhiriev/go-request-inbox/models"
	tea "github.com/charmbracelet/bubbletea"
)

type serverVersionMsg struct {
	version string
}

func waitForSnapshot(updates <-chan inbox.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return snapshotsClosedMsg{}
		}
		return snapshotMsg{snapshot: snap}
	}
}

func waitForState(states <-chan stream.State) tea.Cmd {
	if states == nil {
		return nil
	}
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return nil
		}
		return connectionStateMsg{state: state}
	}
}

func (m inboxModel) cmdServerVersion() tea.Cmd {
	svc, ctx := m.service, m.ctx
	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		if err != nil {
			return serverVersionMsg{}
		}
		return serverVersionMsg{version: version}
	}
}

func (m inboxModel) cmdUpdateStatus(id string, status models.RequestStatus) tea.Cmd {
	svc, ctx := m.service, m.ctx
	return func() tea.Msg {
		r, err := svc.UpdateStatus(ctx, id, status)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{done: fmt.Sprintf("request #%d is now %s", r.SequenceNumber, r.Status)}
	}
}

func (m inboxModel) cmdConvert(id string) tea.Cmd {
	svc, ctx := m.service, m.ctx
	return func() tea.Msg {
		r, err := svc.Convert(ctx, id)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{done: fmt.Sprintf("request #%d converted", r.SequenceNumber)}
	}
}

func (m inboxModel) cmdDelete(id string) tea.Cmd {
	svc, ctx := m.service, m.ctx
	return func() tea.Msg {
		if err := svc.Delete(ctx, id); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{done: "request deleted"}
	}
}

func (m inboxModel) cmdInbox(fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		if err := fn(ctx); err != nil {
			return selectionFailedMsg{err: err}
		}
		return nil
	}
}

func (m inboxModel) cmdCopy(phone string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if phone == "" {
			return copiedMsg{err: ErrNoPhone}
		}
		return copiedMsg{err: copyText(phone)}
	}
}
