package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Valdivia94x/app-legal-olea/internal/config"
	"github.com/Valdivia94x/app-legal-olea/internal/docgen"
	"github.com/Valdivia94x/app-legal-olea/internal/identity"
)

type view int

const (
	viewSetup view = iota
	viewLogin
	viewHome
	viewGenerate
	viewProcessing
	viewResult
	viewChat
	viewAccounts
	viewSettings
	viewHelp
)

var (
	errEmptyInstruction = errors.New("escribe las instrucciones del documento")
	errProviderNotReady = errors.New("el proveedor de IA no está listo; revisa la configuración")
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	log      *zap.SugaredLogger
	quitting bool
}

func NewApp(log *zap.SugaredLogger) *App {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	s := newState()

	cfg, _ := config.Load()
	if cfg == nil {
		s.needsSetup = true
		s.config = config.DefaultConfig()
	} else {
		s.config = cfg
	}
	s.identity = identity.NewClient(s.config.Identity.BaseURL, s.config.Identity.APIKey)

	a := &App{
		view:  viewHome,
		state: s,
		log:   log,
	}
	if s.needsSetup {
		a.view = viewSetup
	} else if s.config.Identity.BaseURL != "" {
		a.view = viewLogin
	}
	return a
}

func (a *App) hasIdentity() bool {
	return a.state.config.Identity.BaseURL != ""
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.WindowSize(), textinput.Blink}

	switch a.view {
	case viewSetup:
		a.state.apiKeyInput.Focus()
	case viewLogin:
		a.state.emailInput.Focus()
		cmds = append(cmds, a.testProvider())
	default:
		cmds = append(cmds, a.testProvider())
	}

	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A non-nil command means the key was consumed by a view handler;
		// it must not also reach the focused text component.
		if cmd := a.handleKey(msg); cmd != nil {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.state.spin, cmd = a.state.spin.Update(msg)
		if a.view == viewProcessing {
			cmds = append(cmds, cmd)
		}

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.state.identity = identity.NewClient(a.state.config.Identity.BaseURL, a.state.config.Identity.APIKey)
		if a.hasIdentity() {
			a.view = viewLogin
			a.state.emailInput.Focus()
		} else {
			a.view = viewHome
		}
		return a, a.testProvider()

	case setupErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.provider = msg.provider
		a.state.service = docgen.NewService(
			a.state.provider,
			a.state.config.TemplatePaths(),
			a.state.config.MaxAttempts,
			a.log,
		)
		return a, nil

	case providerErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case signInDoneMsg:
		a.state.loginBusy = false
		a.state.loginErr = nil
		a.state.session = msg.session
		a.log.Infow("signed in", "account", msg.session.AccountID)
		a.view = viewHome
		return a, nil

	case signInErrMsg:
		a.state.loginBusy = false
		a.state.loginErr = msg.error
		return a, nil

	case generateDoneMsg:
		a.state.artifact = msg.artifact
		a.state.savedPath = ""
		a.state.saveErr = nil
		a.view = viewResult
		return a, nil

	case generateErrMsg:
		a.state.genErr = msg.error
		a.view = viewGenerate
		return a, nil

	case artifactSavedMsg:
		a.state.savedPath = msg.path
		return a, nil

	case artifactSaveErrMsg:
		a.state.saveErr = msg.error
		return a, nil

	case chatReadyMsg:
		a.state.chatSession = msg.session
		a.state.chatErr = nil
		a.state.chatInput.Focus()
		a.state.chatPathInput.Blur()
		return a, textinput.Blink

	case chatErrMsg:
		a.state.chatErr = msg.error
		a.state.chatStreaming = false
		return a, nil

	case chatStreamStartedMsg:
		a.state.chatStream = msg.events
		a.state.chatStreaming = true
		a.state.chatPartial = ""
		return a, waitForChunk(msg.events)

	case chatChunkMsg:
		if msg.event.Error != nil {
			a.state.chatErr = msg.event.Error
			a.state.chatStreaming = false
			return a, nil
		}
		a.state.chatPartial += msg.event.Chunk
		if msg.event.Done {
			return a, func() tea.Msg { return chatDoneMsg{} }
		}
		return a, waitForChunk(a.state.chatStream)

	case chatDoneMsg:
		if a.state.chatSession != nil && a.state.chatPartial != "" {
			a.state.chatSession.RecordAnswer(a.state.chatPartial)
		}
		a.state.chatStreaming = false
		a.state.chatPartial = ""
		return a, nil

	case accountsMsg:
		a.state.accounts = msg.accounts
		a.state.acctBusy = false
		a.state.acctErr = nil
		if a.state.acctCursor >= len(msg.accounts) {
			a.state.acctCursor = 0
		}
		return a, nil

	case accountErrMsg:
		a.state.acctBusy = false
		a.state.acctErr = msg.error
		return a, nil

	case accountChangedMsg:
		a.state.acctCreating = false
		a.state.acctEmailInput.Reset()
		a.state.acctPassInput.Reset()
		return a, a.fetchAccounts()
	}

	cmds = append(cmds, a.updateInputs(msg)...)
	return a, tea.Batch(cmds...)
}

// updateInputs routes non-key messages (and typed characters) to whichever
// text component currently has focus.
func (a *App) updateInputs(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch a.view {
	case viewSetup:
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	case viewLogin:
		if a.state.loginFocus == 0 {
			a.state.emailInput, cmd = a.state.emailInput.Update(msg)
		} else {
			a.state.passwordInput, cmd = a.state.passwordInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	case viewGenerate:
		switch a.state.genFocus {
		case genFocusInstruction:
			a.state.instructionInput, cmd = a.state.instructionInput.Update(msg)
		case genFocusTone:
			a.state.tonePathInput, cmd = a.state.tonePathInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	case viewChat:
		if a.state.chatSession == nil {
			a.state.chatPathInput, cmd = a.state.chatPathInput.Update(msg)
		} else if !a.state.chatStreaming {
			a.state.chatInput, cmd = a.state.chatInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	case viewAccounts:
		if a.state.acctCreating {
			if a.state.acctFocus == 0 {
				a.state.acctEmailInput, cmd = a.state.acctEmailInput.Update(msg)
			} else {
				a.state.acctPassInput, cmd = a.state.acctPassInput.Update(msg)
			}
			cmds = append(cmds, cmd)
		}
	}

	return cmds
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewLogin:
		return a.handleLoginKey(msg)
	case viewHome:
		return a.handleHomeKey(msg)
	case viewGenerate:
		return a.handleGenerateKey(msg)
	case viewResult:
		return a.handleResultKey(msg)
	case viewChat:
		return a.handleChatKey(msg)
	case viewAccounts:
		return a.handleAccountsKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Back) {
			a.view = viewHome
		}
	case viewProcessing:
		// Generation is synchronous per invocation; nothing to cancel
		// cleanly, so keys are ignored until it finishes.
	}

	return nil
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Enter) {
		a.state.config.APIKey = a.state.apiKeyInput.Value()
		return a.finishSetup()
	}
	return nil
}

func (a *App) handleLoginKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Tab):
		a.state.loginFocus = (a.state.loginFocus + 1) % 2
		if a.state.loginFocus == 0 {
			a.state.emailInput.Focus()
			a.state.passwordInput.Blur()
		} else {
			a.state.emailInput.Blur()
			a.state.passwordInput.Focus()
		}
		return textinput.Blink

	case key.Matches(msg, keys.Enter):
		if a.state.loginBusy {
			return nil
		}
		a.state.loginBusy = true
		a.state.loginErr = nil
		return a.signIn()
	}
	return nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	items := a.menuItems()

	switch {
	case key.Matches(msg, keys.Up):
		if a.state.menuCursor > 0 {
			a.state.menuCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.state.menuCursor < len(items)-1 {
			a.state.menuCursor++
		}
	case key.Matches(msg, keys.Help):
		a.view = viewHelp
	case key.Matches(msg, keys.Enter):
		return a.openMenuItem(items[a.state.menuCursor])
	}
	return nil
}

func (a *App) handleGenerateKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch {
	case key.Matches(msg, keys.Back):
		s.instructionInput.Blur()
		s.tonePathInput.Blur()
		a.view = viewHome
		return nil

	case key.Matches(msg, keys.Tab):
		s.genFocus = (s.genFocus + 1) % genFocusCount
		s.instructionInput.Blur()
		s.tonePathInput.Blur()
		switch s.genFocus {
		case genFocusInstruction:
			s.instructionInput.Focus()
		case genFocusTone:
			s.tonePathInput.Focus()
		}
		return textinput.Blink

	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		switch s.genFocus {
		case genFocusDocType:
			if s.genDocType == docGeneral {
				s.genDocType = docPromissoryNote
			} else {
				s.genDocType = docGeneral
			}
			return nil
		case genFocusModel:
			s.genModel = (s.genModel + 1) % len(config.Models)
			return nil
		}

	case key.Matches(msg, keys.Enter):
		if s.genFocus != genFocusSubmit && s.genFocus != genFocusDocType && s.genFocus != genFocusModel {
			break
		}
		if strings.TrimSpace(s.instructionInput.Value()) == "" {
			s.genErr = errEmptyInstruction
			return nil
		}
		if s.service == nil {
			s.genErr = errProviderNotReady
			return nil
		}
		s.genErr = nil
		s.processing = "Generando " + strings.ToLower(s.genDocType.String()) + "..."
		a.view = viewProcessing
		return tea.Batch(s.spin.Tick, a.generate())
	}
	return nil
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "s":
		return a.saveArtifact()
	case "n":
		a.view = viewGenerate
		a.state.genErr = nil
		a.state.instructionInput.Focus()
		return textinput.Blink
	case "esc":
		a.view = viewHome
	}
	return nil
}

func (a *App) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		if !a.state.chatStreaming {
			a.state.chatSession = nil
			a.state.chatErr = nil
			a.view = viewHome
		}
		return nil

	case key.Matches(msg, keys.Enter):
		if a.state.chatSession == nil {
			return a.openChatDocument()
		}
		if a.state.chatStreaming {
			return nil
		}
		question := a.state.chatInput.Value()
		if question == "" {
			return nil
		}
		a.state.chatInput.Reset()
		return a.askChat(question)
	}
	return nil
}

func (a *App) handleAccountsKey(msg tea.KeyMsg) tea.Cmd {
	if a.state.acctCreating {
		switch {
		case key.Matches(msg, keys.Back):
			a.state.acctCreating = false
		case key.Matches(msg, keys.Tab):
			a.state.acctFocus = (a.state.acctFocus + 1) % 2
			if a.state.acctFocus == 0 {
				a.state.acctEmailInput.Focus()
				a.state.acctPassInput.Blur()
			} else {
				a.state.acctEmailInput.Blur()
				a.state.acctPassInput.Focus()
			}
			return textinput.Blink
		case key.Matches(msg, keys.Enter):
			if a.state.acctBusy {
				return nil
			}
			a.state.acctBusy = true
			return a.createAccount()
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewHome
	case key.Matches(msg, keys.Up):
		if a.state.acctCursor > 0 {
			a.state.acctCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.state.acctCursor < len(a.state.accounts)-1 {
			a.state.acctCursor++
		}
	default:
		switch msg.String() {
		case "n":
			a.state.acctCreating = true
			a.state.acctFocus = 0
			a.state.acctEmailInput.Focus()
			a.state.acctPassInput.Blur()
			return textinput.Blink
		case "d":
			if len(a.state.accounts) > 0 {
				a.state.acctBusy = true
				return a.deleteAccount(a.state.accounts[a.state.acctCursor].ID)
			}
		case "r":
			a.state.acctBusy = true
			return a.fetchAccounts()
		}
	}
	return nil
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewHome
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		a.cycleDefaultModel()
	default:
		if msg.String() == "s" {
			cfg := a.state.config
			return func() tea.Msg {
				if err := cfg.Save(); err != nil {
					return setupErrorMsg{err}
				}
				return setupCompleteMsg{}
			}
		}
	}
	return nil
}

func (a *App) cycleDefaultModel() {
	for i, m := range config.Models {
		if m.ID == a.state.config.Model {
			a.state.config.Model = config.Models[(i+1)%len(config.Models)].ID
			return
		}
	}
	a.state.config.Model = config.Models[0].ID
}

type menuItem int

const (
	menuGenerate menuItem = iota
	menuChat
	menuAccounts
	menuSettings
	menuHelp
	menuQuit
)

func (m menuItem) String() string {
	switch m {
	case menuGenerate:
		return "Generar documento"
	case menuChat:
		return "Chatear con un documento"
	case menuAccounts:
		return "Cuentas"
	case menuSettings:
		return "Ajustes"
	case menuHelp:
		return "Ayuda"
	default:
		return "Salir"
	}
}

func (a *App) menuItems() []menuItem {
	items := []menuItem{menuGenerate, menuChat}
	if a.hasIdentity() {
		items = append(items, menuAccounts)
	}
	return append(items, menuSettings, menuHelp, menuQuit)
}

func (a *App) openMenuItem(item menuItem) tea.Cmd {
	switch item {
	case menuGenerate:
		a.view = viewGenerate
		a.state.genErr = nil
		a.state.genFocus = genFocusInstruction
		a.state.instructionInput.Focus()
		a.state.tonePathInput.Blur()
		return textinput.Blink
	case menuChat:
		a.view = viewChat
		a.state.chatErr = nil
		a.state.chatPathInput.Focus()
		return textinput.Blink
	case menuAccounts:
		a.view = viewAccounts
		a.state.acctBusy = true
		return a.fetchAccounts()
	case menuSettings:
		a.view = viewSettings
	case menuHelp:
		a.view = viewHelp
	case menuQuit:
		a.quitting = true
		return tea.Quit
	}
	return nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewLogin:
		return a.renderLogin()
	case viewHome:
		return a.renderHome()
	case viewGenerate:
		return a.renderGenerate()
	case viewProcessing:
		return a.renderProcessing()
	case viewResult:
		return a.renderResult()
	case viewChat:
		return a.renderChat()
	case viewAccounts:
		return a.renderAccounts()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderHome()
	}
}
