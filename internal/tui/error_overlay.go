package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Action failed") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(content)
}

type confirmModel struct {
	question string
}

func (m confirmModel) View() string {
	content := m.question + "\n\n" + helpStyle.Render("y confirm  n cancel")
	return overlayBoxStyle.Render(content)
}
