package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Ayuda")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	sections := []string{
		"  Generar documento   Redacta un documento legal .docx a",
		"                      partir de tus instrucciones. El pagaré",
		"                      incluye tabla de amortización.",
		"",
		"  Chatear             Abre un .docx, .md o .txt y haz",
		"                      preguntas sobre su contenido.",
		"",
		"  Cuentas             Administra las cuentas del despacho",
		"                      (requiere servicio de identidad).",
	}

	sectionsBox := styleBox.Copy().
		Width(58).
		Render(strings.Join(sections, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, sectionsBox))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  Esc            Volver",
		"  Tab            Cambiar campo",
		"  ←/→            Cambiar opción",
		"  Enter          Confirmar",
		"  Ctrl+C         Salir",
	}

	shortcutsTitle := styleSubtitle.Render("Atajos de teclado")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Copy().
		Width(58).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Volver")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
