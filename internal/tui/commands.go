package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Valdivia94x/app-legal-olea/internal/chat"
	"github.com/Valdivia94x/app-legal-olea/internal/config"
	"github.com/Valdivia94x/app-legal-olea/internal/docgen"
	"github.com/Valdivia94x/app-legal-olea/internal/docio"
	"github.com/Valdivia94x/app-legal-olea/internal/identity"
	"github.com/Valdivia94x/app-legal-olea/internal/llm"
)

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{ provider llm.Provider }
type providerErrorMsg struct{ error }

type signInDoneMsg struct{ session *identity.Session }
type signInErrMsg struct{ error }

type generateDoneMsg struct{ artifact *docgen.Artifact }
type generateErrMsg struct{ error }

type artifactSavedMsg struct{ path string }
type artifactSaveErrMsg struct{ error }

type chatReadyMsg struct{ session *chat.Session }
type chatErrMsg struct{ error }
type chatStreamStartedMsg struct{ events <-chan llm.StreamEvent }
type chatChunkMsg struct{ event llm.StreamEvent }
type chatDoneMsg struct{}

type accountsMsg struct{ accounts []identity.Account }
type accountErrMsg struct{ error }
type accountChangedMsg struct{}

func (a *App) testProvider() tea.Cmd {
	return func() tea.Msg {
		provider, err := llm.NewProvider(a.state.config)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{provider}
	}
}

func (a *App) signIn() tea.Cmd {
	email := strings.TrimSpace(a.state.emailInput.Value())
	password := a.state.passwordInput.Value()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		session, err := a.state.identity.SignIn(ctx, email, password)
		if err != nil {
			return signInErrMsg{err}
		}
		return signInDoneMsg{session}
	}
}

// loadToneText reads the optional tone-reference document. An empty path
// means none was supplied.
func loadToneText(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return docio.ExtractText(data, mediaTypeFor(path))
}

func mediaTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return docio.MediaDocx
	case ".md":
		return docio.MediaMarkdown
	default:
		return docio.MediaPlain
	}
}

func (a *App) generate() tea.Cmd {
	instruction := strings.TrimSpace(a.state.instructionInput.Value())
	tonePath := a.state.tonePathInput.Value()
	model := config.Models[a.state.genModel].ID
	kind := a.state.genDocType
	svc := a.state.service

	return func() tea.Msg {
		toneText, err := loadToneText(tonePath)
		if err != nil {
			return generateErrMsg{err}
		}

		req := docgen.Request{
			Instruction: instruction,
			ToneText:    toneText,
			Model:       model,
		}

		var artifact *docgen.Artifact
		if kind == docPromissoryNote {
			req.Mode = docgen.ModeChatJSON
			artifact, err = svc.GeneratePromissoryNote(context.Background(), req)
		} else {
			artifact, err = svc.GenerateGeneral(context.Background(), req)
		}
		if err != nil {
			return generateErrMsg{err}
		}
		return generateDoneMsg{artifact}
	}
}

func (a *App) saveArtifact() tea.Cmd {
	artifact := a.state.artifact

	return func() tea.Msg {
		if artifact == nil {
			return artifactSaveErrMsg{os.ErrNotExist}
		}
		path, err := filepath.Abs(artifact.Filename)
		if err != nil {
			return artifactSaveErrMsg{err}
		}
		if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
			return artifactSaveErrMsg{err}
		}
		return artifactSavedMsg{path}
	}
}

func (a *App) openChatDocument() tea.Cmd {
	path := strings.TrimSpace(a.state.chatPathInput.Value())
	provider := a.state.provider
	model := a.state.config.Model

	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return chatErrMsg{err}
		}
		text, err := docio.ExtractText(data, mediaTypeFor(path))
		if err != nil {
			return chatErrMsg{err}
		}
		return chatReadyMsg{chat.NewSession(provider, model, filepath.Base(path), text)}
	}
}

func (a *App) askChat(question string) tea.Cmd {
	session := a.state.chatSession

	return func() tea.Msg {
		events, err := session.Ask(context.Background(), question)
		if err != nil {
			return chatErrMsg{err}
		}
		return chatStreamStartedMsg{events}
	}
}

// waitForChunk pulls the next stream event; Update re-issues it until the
// stream closes.
func waitForChunk(events <-chan llm.StreamEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return chatDoneMsg{}
		}
		return chatChunkMsg{ev}
	}
}

func (a *App) fetchAccounts() tea.Cmd {
	client := a.state.identity

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		accounts, err := client.ListAccounts(ctx)
		if err != nil {
			return accountErrMsg{err}
		}
		return accountsMsg{accounts}
	}
}

func (a *App) createAccount() tea.Cmd {
	client := a.state.identity
	email := strings.TrimSpace(a.state.acctEmailInput.Value())
	password := a.state.acctPassInput.Value()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := client.CreateAccount(ctx, email, password); err != nil {
			return accountErrMsg{err}
		}
		return accountChangedMsg{}
	}
}

func (a *App) deleteAccount(id string) tea.Cmd {
	client := a.state.identity

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := client.DeleteAccount(ctx, id); err != nil {
			return accountErrMsg{err}
		}
		return accountChangedMsg{}
	}
}

func (a *App) finishSetup() tea.Cmd {
	return func() tea.Msg {
		if err := a.state.config.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}
