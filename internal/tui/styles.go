package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true)
	selectedRowStyle = lipgloss.NewStyle().Bold(true)
	detailBoxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	noticeStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))

	liveBadgeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	connectingBadgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	offlineBadgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
