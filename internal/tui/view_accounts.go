package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderAccounts() string {
	if a.state.acctCreating {
		return a.renderAccountCreate()
	}

	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Cuentas")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	boxWidth := min(64, a.width-4)

	var lines []string
	switch {
	case a.state.acctBusy:
		lines = append(lines, styleSubtitle.Render("Cargando..."))
	case len(a.state.accounts) == 0:
		lines = append(lines, styleSubtitle.Render("No hay cuentas registradas"))
	default:
		for i, acct := range a.state.accounts {
			label := fmt.Sprintf("%-34s %s", truncate(acct.Email, 32), acct.CreatedAt.Format("2006-01-02"))
			if i == a.state.acctCursor {
				lines = append(lines, lipgloss.NewStyle().
					Foreground(colorSecondary).Bold(true).Render("> "+label))
			} else {
				lines = append(lines, lipgloss.NewStyle().
					Foreground(colorMuted).Render("  "+label))
			}
		}
	}

	listBox := styleBox.Copy().
		Width(boxWidth).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	if a.state.acctErr != nil {
		errLine := styleError.Render(truncate(a.state.acctErr.Error(), 70))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n\n")
	}

	statusBar := styleStatusBar.Render("[n] Nueva  [d] Eliminar  [r] Recargar  [Esc] Volver")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}

func (a *App) renderAccountCreate() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Nueva cuenta")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	emailBorder := colorMuted
	passBorder := colorMuted
	if a.state.acctFocus == 0 {
		emailBorder = colorSecondary
	} else {
		passBorder = colorSecondary
	}

	emailBox := styleBox.Copy().
		Width(50).
		BorderForeground(emailBorder).
		Render(a.state.acctEmailInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, emailBox))
	b.WriteString("\n")

	passBox := styleBox.Copy().
		Width(50).
		BorderForeground(passBorder).
		Render(a.state.acctPassInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, passBox))
	b.WriteString("\n\n")

	if a.state.acctBusy {
		busy := styleSubtitle.Render("Creando cuenta...")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, busy))
		b.WriteString("\n\n")
	} else if a.state.acctErr != nil {
		errLine := styleError.Render(truncate(a.state.acctErr.Error(), 70))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n\n")
	}

	statusBar := styleStatusBar.Render("[Tab] Cambiar campo  [Enter] Crear  [Esc] Cancelar")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
