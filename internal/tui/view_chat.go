package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderChat() string {
	if a.state.chatSession == nil {
		return a.renderChatOpen()
	}
	return a.renderChatConversation()
}

func (a *App) renderChatOpen() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Chatear con un documento")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	pathBox := styleBox.Copy().
		Width(min(66, a.width-4)).
		BorderForeground(colorSecondary).
		Render(a.state.chatPathInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, pathBox))
	b.WriteString("\n\n")

	if a.state.chatErr != nil {
		errLine := styleError.Render(truncate(a.state.chatErr.Error(), 70))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n\n")
	}

	statusBar := styleStatusBar.Render("[Enter] Abrir  [Esc] Volver")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}

func (a *App) renderChatConversation() string {
	boxWidth := min(70, a.width-4)
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Chat · " + truncate(a.state.chatSession.Title(), 40))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// History
	for _, msg := range a.state.chatSession.History() {
		content := wrapText(msg.Content, boxWidth-4)
		var style lipgloss.Style
		prefix := "  "
		if msg.Role == "user" {
			style = lipgloss.NewStyle().Foreground(colorSecondary)
			prefix = "> "
		} else {
			style = lipgloss.NewStyle().Foreground(colorWhite)
		}
		for _, line := range strings.Split(content, "\n") {
			b.WriteString(indent + style.Render(prefix+line) + "\n")
			prefix = "  "
		}
		b.WriteString("\n")
	}

	// Streaming partial answer
	if a.state.chatStreaming {
		partial := a.state.chatPartial
		if partial == "" {
			partial = "..."
		}
		for _, line := range strings.Split(wrapText(partial, boxWidth-4), "\n") {
			b.WriteString(indent + lipgloss.NewStyle().Foreground(colorWhite).Render("  "+line) + "\n")
		}
		b.WriteString("\n")
	}

	if a.state.chatErr != nil {
		b.WriteString(indent + styleError.Render(truncate(a.state.chatErr.Error(), boxWidth)) + "\n\n")
	}

	// Input
	if !a.state.chatStreaming {
		inputBox := styleBox.Copy().
			Width(boxWidth).
			BorderForeground(colorSecondary).
			Render(a.state.chatInput.View())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
		b.WriteString("\n")
	}

	statusBar := styleStatusBar.Render("[Enter] Preguntar  [Esc] Cerrar chat")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return b.String()
}
