package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
  ██████╗ ██╗     ███████╗ █████╗
 ██╔═══██╗██║     ██╔════╝██╔══██╗
 ██║   ██║██║     █████╗  ███████║
 ██║   ██║██║     ██╔══╝  ██╔══██║
 ╚██████╔╝███████╗███████╗██║  ██║
  ╚═════╝ ╚══════╝╚══════╝╚═╝  ╚═╝
`

func (a *App) renderHome() string {
	var b strings.Builder

	// Header
	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n")

	subtitle := styleSubtitle.Render("Asistente legal de redacción")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	// Provider status
	var status string
	switch {
	case a.state.providerError != nil:
		status = styleError.Render("⚠ " + truncate(a.state.providerError.Error(), 60))
	case a.state.providerReady:
		status = styleSuccess.Render("● Conectado · " + a.state.config.Model)
	default:
		status = styleSubtitle.Render("○ Conectando con el proveedor...")
	}
	if a.state.session != nil {
		status += styleStatusBar.Render("  |  " + a.state.session.Email)
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
	b.WriteString("\n\n")

	// Menu
	items := a.menuItems()
	var menuLines []string
	for i, item := range items {
		if i == a.state.menuCursor {
			line := lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Render(fmt.Sprintf("> %s", item))
			menuLines = append(menuLines, line)
		} else {
			line := lipgloss.NewStyle().
				Foreground(colorMuted).
				Render(fmt.Sprintf("  %s", item))
			menuLines = append(menuLines, line)
		}
	}

	menuBox := styleBox.Copy().
		Width(40).
		Render(strings.Join(menuLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, menuBox))
	b.WriteString("\n\n")

	// Status bar
	statusBar := styleStatusBar.Render("[↑/↓] Navegar  [Enter] Abrir  [?] Ayuda  [Ctrl+C] Salir")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
