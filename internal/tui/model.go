// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-request-inbox/internal/inbox"
	"github.com/MKhiriev/go-request-inbox/internal/service"
	"github.com/MKhiriev/go-request-inbox/internal/stream"
	"github.com/MKhiriev/go-request-inbox/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusLineTTL = 3 * time.Second

// inboxState is the part of [*inbox.Inbox] the view drives.
type inboxState interface {
	Updates() <-chan inbox.Snapshot
	Snapshot() inbox.Snapshot
	Select(ctx context.Context, id string) error
	ClearSelection(ctx context.Context) error
	OpenNotification(ctx context.Context) error
	DismissNotification(ctx context.Context) error
}

type statusTab struct {
	label  string
	status *models.RequestStatus
}

func statusTabs() []statusTab {
	tabs := []statusTab{{label: "All"}}
	labels := map[models.RequestStatus]string{
		models.StatusPending:   "Pending",
		models.StatusInContact: "In contact",
		models.StatusConverted: "Converted",
		models.StatusDiscarded: "Discarded",
	}
	for _, s := range models.AllStatuses {
		status := s
		tabs = append(tabs, statusTab{label: labels[s], status: &status})
	}
	return tabs
}

type inboxModel struct {
	ctx       context.Context
	service   service.ClientInboxService
	inbox     inboxState
	states    <-chan stream.State
	copyText  func(string) error
	buildInfo models.AppBuildInfo

	snap          inbox.Snapshot
	conn          stream.State
	serverVersion string

	tabs      []statusTab
	tab       int
	search    textinput.Model
	searching bool
	cursor    int

	spinner spinner.Model
	busy    bool
	status  string

	errOverlay    *errorOverlayModel
	confirm       *confirmModel
	pendingDelete string
	showInfo      bool

	width int
}

func newInboxModel(ctx context.Context, svc service.ClientInboxService, ib inboxState, states <-chan stream.State, buildInfo models.AppBuildInfo) inboxModel {
	search := textinput.New()
	search.Placeholder = "name, phone, email or address"
	search.Prompt = "/ "
	search.CharLimit = 128

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return inboxModel{
		ctx:       ctx,
		service:   svc,
		inbox:     ib,
		states:    states,
		copyText:  clipboard.WriteAll,
		buildInfo: buildInfo,
		snap:      ib.Snapshot(),
		conn:      stream.StateDisconnected,
		tabs:      statusTabs(),
		search:    search,
		spinner:   s,
	}
}

func (m inboxModel) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(m.inbox.Updates()),
		waitForState(m.states),
		m.spinner.Tick,
		m.cmdServerVersion(),
	)
}

func (m inboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case snapshotMsg:
		m.snap = msg.snapshot
		m.followSelection()
		return m, waitForSnapshot(m.inbox.Updates())

	case snapshotsClosedMsg:
		return m, nil

	case connectionStateMsg:
		m.conn = msg.state
		return m, waitForState(m.states)

	case serverVersionMsg:
		m.serverVersion = msg.version
		return m, nil

	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: service.UserMessage(msg.err)}
			return m, nil
		}
		return m, m.setStatus(msg.done)

	case selectionFailedMsg:
		m.status = "inbox unavailable: " + msg.err.Error()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: msg.err.Error()}
			return m, nil
		}
		return m, m.setStatus("phone copied")

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.searching {
		return m.updateSearch(msg)
	}
	return m, nil
}

func (m inboxModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.errOverlay != nil:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil

	case m.confirm != nil:
		return m.handleConfirmKey(msg)

	case m.showInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showInfo = false
		}
		return m, nil

	case m.searching:
		if key.Matches(msg, keys.esc) {
			m.search.SetValue("")
		}
		if key.Matches(msg, keys.esc, keys.enter) {
			m.searching = false
			m.search.Blur()
			m.clampCursor()
			return m, nil
		}
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.nextTab):
		m.tab = (m.tab + 1) % len(m.tabs)
		m.cursor = 0
	case key.Matches(msg, keys.prevTab):
		m.tab = (m.tab + len(m.tabs) - 1) % len(m.tabs)
		m.cursor = 0
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.info):
		m.showInfo = true
	case key.Matches(msg, keys.enter):
		if m.snap.Notification != nil {
			return m, m.cmdInbox(m.inbox.OpenNotification)
		}
		if r, ok := m.cursorRequest(); ok {
			id := r.ID
			return m, m.cmdInbox(func(ctx context.Context) error { return m.inbox.Select(ctx, id) })
		}
	case key.Matches(msg, keys.esc):
		if m.snap.Notification != nil {
			return m, m.cmdInbox(m.inbox.DismissNotification)
		}
		if !m.snap.Selection.Empty() {
			return m, m.cmdInbox(m.inbox.ClearSelection)
		}
	case key.Matches(msg, keys.pending):
		return m.updateStatus(models.StatusPending)
	case key.Matches(msg, keys.inContact):
		return m.updateStatus(models.StatusInContact)
	case key.Matches(msg, keys.discard):
		return m.updateStatus(models.StatusDiscarded)
	case key.Matches(msg, keys.convert):
		r, ok := m.target()
		if !ok || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdConvert(r.ID)
	case key.Matches(msg, keys.delete):
		r, ok := m.target()
		if !ok || m.busy {
			return m, nil
		}
		m.pendingDelete = r.ID
		m.confirm = &confirmModel{question: fmt.Sprintf("Delete request #%d from %s?", r.SequenceNumber, orDash(r.Payload.Name))}
	case key.Matches(msg, keys.copyPhone):
		r, ok := m.target()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopy(r.Payload.Phone)
	}

	return m, nil
}

func (m inboxModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.pendingDelete
		m.confirm = nil
		m.pendingDelete = ""
		m.busy = true
		return m, m.cmdDelete(id)
	case key.Matches(msg, keys.no):
		m.confirm = nil
		m.pendingDelete = ""
	}
	return m, nil
}

func (m inboxModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.clampCursor()
	return m, cmd
}

func (m inboxModel) updateStatus(status models.RequestStatus) (tea.Model, tea.Cmd) {
	r, ok := m.target()
	if !ok || m.busy || r.Status == status {
		return m, nil
	}
	m.busy = true
	return m, m.cmdUpdateStatus(r.ID, status)
}

func (m inboxModel) filter() inbox.Filter {
	return inbox.Filter{
		Status: m.tabs[m.tab].status,
		Query:  m.search.Value(),
	}
}

func (m inboxModel) visible() []models.Request {
	return inbox.View(m.snap.Requests, m.filter())
}

func (m inboxModel) cursorRequest() (models.Request, bool) {
	rows := m.visible()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return models.Request{}, false
	}
	return rows[m.cursor], true
}

// target is the request actions apply to: the selection, else the cursor row.
func (m inboxModel) target() (models.Request, bool) {
	if r, ok := m.snap.Selection.Request(); ok {
		return r, true
	}
	return m.cursorRequest()
}

// followSelection keeps the cursor on the selected request across
// snapshots and clamps it to the visible rows.
func (m *inboxModel) followSelection() {
	if id := m.snap.Selection.ID(); id != "" {
		for i, r := range m.visible() {
			if r.ID == id {
				m.cursor = i
				return
			}
		}
	}
	m.clampCursor()
}

func (m *inboxModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *inboxModel) setStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(statusLineTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
