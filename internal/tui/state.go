package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Valdivia94x/app-legal-olea/internal/chat"
	"github.com/Valdivia94x/app-legal-olea/internal/config"
	"github.com/Valdivia94x/app-legal-olea/internal/docgen"
	"github.com/Valdivia94x/app-legal-olea/internal/identity"
	"github.com/Valdivia94x/app-legal-olea/internal/llm"
)

type docType int

const (
	docGeneral docType = iota
	docPromissoryNote
)

func (d docType) String() string {
	if d == docPromissoryNote {
		return "Pagaré (con tabla)"
	}
	return "Documento general"
}

const (
	genFocusDocType = iota
	genFocusModel
	genFocusInstruction
	genFocusTone
	genFocusSubmit
	genFocusCount
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Collaborators
	provider      llm.Provider
	providerReady bool
	providerError error
	service       *docgen.Service
	identity      *identity.Client

	// Auth (request-scoped, passed around explicitly)
	session *identity.Session

	// Setup
	apiKeyInput textinput.Model

	// Login
	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int
	loginBusy     bool
	loginErr      error

	// Home menu
	menuCursor int

	// Generate form
	genDocType       docType
	genModel         int
	genFocus         int
	instructionInput textarea.Model
	tonePathInput    textinput.Model
	genErr           error

	// Processing
	spin       spinner.Model
	processing string

	// Result
	artifact  *docgen.Artifact
	savedPath string
	saveErr   error

	// Chat
	chatPathInput textinput.Model
	chatInput     textinput.Model
	chatSession   *chat.Session
	chatStream    <-chan llm.StreamEvent
	chatStreaming bool
	chatPartial   string
	chatErr       error

	// Accounts
	accounts       []identity.Account
	acctCursor     int
	acctCreating   bool
	acctEmailInput textinput.Model
	acctPassInput  textinput.Model
	acctFocus      int
	acctBusy       bool
	acctErr        error
}

func newState() *state {
	apiKey := textinput.New()
	apiKey.Placeholder = "Pega tu API key aquí..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	email := textinput.New()
	email.Placeholder = "correo@despacho.mx"
	email.CharLimit = 120
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "contraseña"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120
	password.Width = 40

	instruction := textarea.New()
	instruction.Placeholder = "Ej: Genera un contrato de arrendamiento simple. Arrendador: Juan Pérez. Arrendatario: María López..."
	instruction.CharLimit = 4000
	instruction.SetWidth(64)
	instruction.SetHeight(6)

	tonePath := textinput.New()
	tonePath.Placeholder = "(Opcional) ruta a un .docx de ejemplo para imitar el tono"
	tonePath.CharLimit = 500
	tonePath.Width = 64

	chatPath := textinput.New()
	chatPath.Placeholder = "Ruta al documento (.docx, .md, .txt)"
	chatPath.CharLimit = 500
	chatPath.Width = 60

	chatInput := textinput.New()
	chatInput.Placeholder = "Pregunta algo sobre el documento..."
	chatInput.CharLimit = 1000
	chatInput.Width = 60

	acctEmail := textinput.New()
	acctEmail.Placeholder = "correo de la nueva cuenta"
	acctEmail.CharLimit = 120
	acctEmail.Width = 40

	acctPass := textinput.New()
	acctPass.Placeholder = "contraseña de la nueva cuenta"
	acctPass.EchoMode = textinput.EchoPassword
	acctPass.CharLimit = 120
	acctPass.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &state{
		apiKeyInput:      apiKey,
		emailInput:       email,
		passwordInput:    password,
		instructionInput: instruction,
		tonePathInput:    tonePath,
		chatPathInput:    chatPath,
		chatInput:        chatInput,
		acctEmailInput:   acctEmail,
		acctPassInput:    acctPass,
		spin:             sp,
	}
}
