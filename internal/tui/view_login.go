package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderLogin() string {
	var b strings.Builder

	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	title := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render("Inicia sesión")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	emailBorder := colorMuted
	passBorder := colorMuted
	if a.state.loginFocus == 0 {
		emailBorder = colorSecondary
	} else {
		passBorder = colorSecondary
	}

	emailBox := styleBox.Copy().
		Width(50).
		BorderForeground(emailBorder).
		Render(a.state.emailInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, emailBox))
	b.WriteString("\n")

	passBox := styleBox.Copy().
		Width(50).
		BorderForeground(passBorder).
		Render(a.state.passwordInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, passBox))
	b.WriteString("\n\n")

	if a.state.loginBusy {
		busy := styleSubtitle.Render("Verificando credenciales...")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, busy))
		b.WriteString("\n\n")
	} else if a.state.loginErr != nil {
		errLine := styleError.Render(truncate(a.state.loginErr.Error(), 70))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n\n")
	}

	instructions := styleStatusBar.Render("[Tab] Cambiar campo  [Enter] Entrar  [Ctrl+C] Salir")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
