package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-request-inbox/internal/stream"
	"github.com/MKhiriev/go-request-inbox/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	nameColumnWidth  = 24
	phoneColumnWidth = 16
)

func (m inboxModel) View() string {
	if m.errOverlay != nil {
		return appStyle.Render(m.errOverlay.View())
	}
	if m.confirm != nil {
		return appStyle.Render(m.confirm.View())
	}
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("   ")
	b.WriteString(connectionBadge(m.conn))
	if m.busy {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	if n := m.snap.Notification; n != nil {
		b.WriteString(noticeStyle.Render(fmt.Sprintf("New request from %s (enter: open, esc: dismiss)", orDash(n.Name))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderRows())

	if r, ok := m.snap.Selection.Request(); ok {
		b.WriteString("\n")
		b.WriteString(renderDetail(r))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "↑/↓ move  tab status  / search  enter select  p pending  c contact  v convert  x discard  D delete  y copy phone  i about"
	return appStyle.Render(renderPage("REQUEST INBOX", b.String(), hotKeys))
}

func (m inboxModel) renderTabs() string {
	counts := make(map[models.RequestStatus]int, len(models.AllStatuses))
	for _, r := range m.snap.Requests {
		counts[r.Status]++
	}

	parts := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		n := len(m.snap.Requests)
		if t.status != nil {
			n = counts[*t.status]
		}
		label := fmt.Sprintf("%s (%d)", t.label, n)
		if i == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m inboxModel) renderRows() string {
	rows := m.visible()
	if len(rows) == 0 {
		if len(m.snap.Requests) == 0 {
			return helpStyle.Render("No requests yet.")
		}
		return helpStyle.Render("Nothing matches the current filter.")
	}

	selectedID := m.snap.Selection.ID()
	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		marker := " "
		if r.ID == selectedID {
			marker = "*"
		}
		line := fmt.Sprintf("%s%s #%-5d %-*s %-*s %s",
			prefix, marker, r.SequenceNumber,
			nameColumnWidth, fitText(orDash(r.Payload.Name), nameColumnWidth),
			phoneColumnWidth, fitText(orDash(r.Payload.Phone), phoneColumnWidth),
			r.Status,
		)
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderDetail(r models.Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Request #%d (%s)\n", r.SequenceNumber, r.Status)
	fmt.Fprintf(&b, "Name:     %s\n", orDash(r.Payload.Name))
	fmt.Fprintf(&b, "Phone:    %s\n", orDash(r.Payload.Phone))
	fmt.Fprintf(&b, "Email:    %s\n", orDash(r.Payload.Email))
	fmt.Fprintf(&b, "Address:  %s\n", orDash(strings.TrimSpace(r.Payload.Address+" "+r.Payload.City)))
	fmt.Fprintf(&b, "Services: %s\n", orDash(strings.Join(r.Payload.Services, ", ")))
	fmt.Fprintf(&b, "Soil:     %s\n", orDash(r.Payload.SoilType))
	fmt.Fprintf(&b, "Notes:    %s\n", orDash(r.Payload.Notes))
	if r.Status == models.StatusConverted {
		fmt.Fprintf(&b, "Client:   %s\n", valueOrDash(r.LinkedClientID))
		fmt.Fprintf(&b, "Budget:   %s\n", valueOrDash(r.LinkedBudgetID))
	}
	fmt.Fprintf(&b, "Received: %s", r.CreatedAt.Local().Format("2006-01-02 15:04"))

	return detailBoxStyle.Render(b.String())
}

func connectionBadge(s stream.State) string {
	var style lipgloss.Style
	label := s.String()
	switch s {
	case stream.StateOpen:
		style, label = liveBadgeStyle, "● live"
	case stream.StateConnecting:
		style, label = connectingBadgeStyle, "○ connecting"
	case stream.StateErrored:
		style, label = offlineBadgeStyle, "○ reconnecting"
	default:
		style, label = offlineBadgeStyle, "○ offline"
	}
	return style.Render(label)
}
