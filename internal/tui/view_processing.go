package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderProcessing() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Procesando")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	line := a.state.spin.View() + " " + styleSubtitle.Render(a.state.processing)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, line))
	b.WriteString("\n\n")

	hint := styleStatusBar.Render("La respuesta del modelo puede tardar un momento")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, hint))

	return a.centerVertically(b.String())
}
