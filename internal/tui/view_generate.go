package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Valdivia94x/app-legal-olea/internal/config"
)

func (a *App) renderGenerate() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Generar documento")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	boxWidth := min(70, a.width-4)

	// Document type selector
	b.WriteString(a.centered(a.selectorLine(
		"Tipo", a.state.genDocType.String(), a.state.genFocus == genFocusDocType)))
	b.WriteString("\n")

	// Model selector
	model := config.Models[a.state.genModel]
	b.WriteString(a.centered(a.selectorLine(
		"Modelo", fmt.Sprintf("%s (%s)", model.Name, model.Description),
		a.state.genFocus == genFocusModel)))
	b.WriteString("\n\n")

	// Instruction textarea
	instrBorder := colorMuted
	if a.state.genFocus == genFocusInstruction {
		instrBorder = colorSecondary
	}
	instrBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(instrBorder).
		Render(a.state.instructionInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instrBox))
	b.WriteString("\n")

	// Optional tone document
	toneBorder := colorMuted
	if a.state.genFocus == genFocusTone {
		toneBorder = colorSecondary
	}
	toneBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(toneBorder).
		Render(a.state.tonePathInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, toneBox))
	b.WriteString("\n\n")

	// Submit button
	btnStyle := lipgloss.NewStyle().Foreground(colorMuted)
	if a.state.genFocus == genFocusSubmit {
		btnStyle = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
	}
	b.WriteString(a.centered(btnStyle.Render("[ Generar ]")))
	b.WriteString("\n\n")

	if a.state.genErr != nil {
		errLine := styleError.Render(wrapText(a.state.genErr.Error(), boxWidth))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n\n")
	}

	statusBar := styleStatusBar.Render("[Tab] Siguiente campo  [←/→] Cambiar opción  [Enter] Generar  [Esc] Volver")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}

func (a *App) selectorLine(label, value string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(colorMuted)
	marker := "  "
	if focused {
		style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
		marker = "> "
	}
	return style.Render(fmt.Sprintf("%s%-8s ◂ %s ▸", marker, label+":", value))
}
