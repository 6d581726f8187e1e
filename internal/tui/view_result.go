package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Documento listo")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	boxWidth := min(70, a.width-4)

	if a.state.artifact != nil {
		var info []string
		info = append(info, fmt.Sprintf("Archivo:  %s", a.state.artifact.Filename))
		info = append(info, fmt.Sprintf("Tamaño:   %d bytes", len(a.state.artifact.Data)))

		if len(a.state.artifact.Warnings) > 0 {
			info = append(info, "")
			info = append(info, styleError.Render(fmt.Sprintf("Avisos (%d):", len(a.state.artifact.Warnings))))
			for _, w := range a.state.artifact.Warnings {
				info = append(info, styleSubtitle.Render("  • "+truncate(w, boxWidth-6)))
			}
		}

		infoBox := styleBox.Copy().
			Width(boxWidth).
			Render(strings.Join(info, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, infoBox))
		b.WriteString("\n\n")
	}

	switch {
	case a.state.saveErr != nil:
		line := styleError.Render("Error al guardar: " + truncate(a.state.saveErr.Error(), 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, line))
		b.WriteString("\n\n")
	case a.state.savedPath != "":
		line := styleSuccess.Render("Guardado en " + a.state.savedPath)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, line))
		b.WriteString("\n\n")
	}

	statusBar := styleStatusBar.Render("[s] Guardar  [n] Otro documento  [Esc] Menú")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
