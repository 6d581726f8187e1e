package docgen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	docx "github.com/fumiama/go-docx"

	"github.com/Valdivia94x/app-legal-olea/internal/llm"
)

type stubProvider struct {
	content string
	err     error

	lastChat *llm.ChatRequest
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Content: s.content}, nil
}

func (s *stubProvider) CompleteChat(ctx context.Context, req *llm.ChatRequest) (*llm.CompletionResponse, error) {
	s.lastChat = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Content: s.content}, nil
}

func (s *stubProvider) Stream(ctx context.Context, req *llm.CompletionRequest) (<-chan llm.StreamEvent, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProvider) Ping(ctx context.Context) error { return nil }

// writeTemplate creates a minimal real .docx to stand in for the styled
// template file.
func writeTemplate(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "template.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	doc := docx.New().WithDefaultTheme()
	if _, err := doc.WriteTo(f); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestService(t *testing.T, p llm.Provider) *Service {
	t.Helper()
	tmpl := writeTemplate(t)
	return NewService(p, map[string]string{
		"general":         tmpl,
		"promissory_note": tmpl,
	}, 1, nil)
}

func TestGenerateGeneral(t *testing.T) {
	stub := &stubProvider{
		content: `Claro, aquí está: [{"style":"Titulo_1","text":"CONTRATO"},{"style":"Heading9","text":"X"}] saludos`,
	}
	svc := newTestService(t, stub)

	artifact, err := svc.GenerateGeneral(context.Background(), Request{
		Instruction: "contrato de arrendamiento",
		Model:       "gpt-5",
	})
	if err != nil {
		t.Fatalf("GenerateGeneral() error = %v", err)
	}
	if len(artifact.Data) == 0 {
		t.Error("artifact is empty")
	}
	if artifact.MIME != ArtifactMIME {
		t.Errorf("mime = %q", artifact.MIME)
	}
	if artifact.Filename != "DOCUMENTO_GENERADO.docx" {
		t.Errorf("filename = %q", artifact.Filename)
	}
	if len(artifact.Warnings) != 1 {
		t.Errorf("warnings = %v, want the one style repair", artifact.Warnings)
	}
}

func TestGenerateGeneralExtractionFailure(t *testing.T) {
	stub := &stubProvider{content: "no puedo generar ese documento"}
	svc := newTestService(t, stub)

	_, err := svc.GenerateGeneral(context.Background(), Request{Instruction: "x"})
	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("error = %v, want *ExtractionError", err)
	}
	if extErr.Raw == "" {
		t.Error("raw output not surfaced for diagnosis")
	}
}

func TestGenerateGeneralRemoteFailure(t *testing.T) {
	stub := &stubProvider{err: errors.New("quota exceeded")}
	svc := newTestService(t, stub)

	_, err := svc.GenerateGeneral(context.Background(), Request{Instruction: "x"})
	var remoteErr *RemoteCallError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("error = %v, want *RemoteCallError", err)
	}
}

func TestGeneratePromissoryNote(t *testing.T) {
	stub := &stubProvider{
		content: `{"prosa":[{"style":"Titulo_1","text":"PAGARÉ"}],
			"tabla_amortizacion":[
				{"Pago No.":1,"Interés":100,"IVA Interés":16,"Capital":900,"Pago Total":1016,"Saldo Insoluto":9100},
				{"Pago No.":2,"Interés":"bad"}
			]}`,
	}
	svc := newTestService(t, stub)

	artifact, err := svc.GeneratePromissoryNote(context.Background(), Request{
		Instruction: "pagaré por 10,000 MXN a 10 meses",
		Model:       "gpt-5",
		Mode:        ModeChatJSON,
	})
	if err != nil {
		t.Fatalf("GeneratePromissoryNote() error = %v", err)
	}
	if len(artifact.Data) == 0 {
		t.Error("artifact is empty")
	}
	// One malformed row: reported, not fatal.
	if len(artifact.Warnings) != 1 {
		t.Errorf("warnings = %v, want one row report", artifact.Warnings)
	}
	if stub.lastChat == nil || !stub.lastChat.ForceJSON {
		t.Error("chat mode did not request a JSON object response")
	}
}

func TestGenerateTemplateNotFound(t *testing.T) {
	stub := &stubProvider{content: `[{"style":"Titulo_1","text":"A"}]`}
	svc := NewService(stub, map[string]string{
		"general": filepath.Join(t.TempDir(), "missing.docx"),
	}, 1, nil)

	_, err := svc.GenerateGeneral(context.Background(), Request{Instruction: "x"})
	var tmplErr *TemplateNotFoundError
	if !errors.As(err, &tmplErr) {
		t.Fatalf("error = %v, want *TemplateNotFoundError", err)
	}
}
