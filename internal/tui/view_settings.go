package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Valdivia94x/app-legal-olea/internal/config"
)

func (a *App) renderSettings() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Ajustes")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	cfg := a.state.config
	model := config.GetModel(cfg.Model)
	modelName := cfg.Model
	if model != nil {
		modelName = fmt.Sprintf("%s (%s)", model.Name, model.Description)
	}

	masked := "(sin configurar)"
	if cfg.APIKey != "" {
		masked = "••••" + cfg.APIKey[max(0, len(cfg.APIKey)-4):]
	}

	identityURL := cfg.Identity.BaseURL
	if identityURL == "" {
		identityURL = "(desactivado)"
	}

	templates := cfg.TemplatePaths()

	lines := []string{
		fmt.Sprintf("Modelo:        ◂ %s ▸", modelName),
		fmt.Sprintf("API key:       %s", masked),
		fmt.Sprintf("Identidad:     %s", truncate(identityURL, 45)),
		fmt.Sprintf("Plantillas:    %s", truncate(templates["general"], 45)),
		fmt.Sprintf("               %s", truncate(templates["promissory_note"], 45)),
		fmt.Sprintf("Reintentos:    %d", cfg.MaxAttempts),
	}

	box := styleBox.Copy().
		Width(min(64, a.width-4)).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	path := styleSubtitle.Render("Archivo: " + configPathHint())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, path))
	b.WriteString("\n\n")

	statusBar := styleStatusBar.Render("[←/→] Cambiar modelo  [s] Guardar  [Esc] Volver")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}

func configPathHint() string {
	path, err := config.ConfigPath()
	if err != nil {
		return "~/.config/olea/config.yaml"
	}
	return path
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
