package tui

type confirmModel struct {
	id string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.id + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
