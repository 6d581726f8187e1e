package docgen

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/Valdivia94x/app-legal-olea/internal/llm"
)

// ArtifactMIME is the media type of every rendered artifact.
const ArtifactMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const maxOutputTokens = 20000

// Request carries everything one generation invocation needs. Invocations
// share no state; two concurrent requests touch nothing in common.
type Request struct {
	Instruction string
	ToneText    string
	Model       string
	Mode        CompletionMode
}

// Artifact is the rendered document plus anything non-fatal that happened
// on the way.
type Artifact struct {
	Data     []byte
	Filename string
	MIME     string
	Warnings []string
}

// Service exposes the two generation entry points.
type Service struct {
	provider  llm.Provider
	templates map[string]string
	attempts  int
	log       *zap.SugaredLogger
}

// NewService wires a provider and the template name -> path mapping.
// attempts bounds the completion call (1 = no retry).
func NewService(provider llm.Provider, templates map[string]string, attempts int, log *zap.SugaredLogger) *Service {
	if attempts < 1 {
		attempts = 1
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		provider:  provider,
		templates: templates,
		attempts:  attempts,
		log:       log,
	}
}

// GenerateGeneral runs the full pipeline for a general document:
// prompt -> remote call -> extract -> validate -> assemble.
func (s *Service) GenerateGeneral(ctx context.Context, req Request) (*Artifact, error) {
	prompts := BuildGeneralPrompt(req.Instruction, req.ToneText, req.Mode)

	raw, err := s.complete(ctx, prompts, req.Model)
	if err != nil {
		return nil, &RemoteCallError{Err: err}
	}

	extracted, err := ExtractPayload(raw, prompts.Kind)
	if err != nil {
		return nil, err
	}

	payload, warnings, err := ParseGeneralPayload(extracted)
	if err != nil {
		return nil, err
	}

	plan := planGeneral(payload)
	return s.render(ctx, "general", plan, warnings, "DOCUMENTO_GENERADO.docx")
}

// GeneratePromissoryNote is GenerateGeneral plus table synthesis from the
// amortization schedule.
func (s *Service) GeneratePromissoryNote(ctx context.Context, req Request) (*Artifact, error) {
	prompts := BuildNotePrompt(req.Instruction, req.ToneText, req.Mode)

	raw, err := s.complete(ctx, prompts, req.Model)
	if err != nil {
		return nil, &RemoteCallError{Err: err}
	}

	extracted, err := ExtractPayload(raw, prompts.Kind)
	if err != nil {
		return nil, err
	}

	payload, warnings, err := ParseNotePayload(extracted)
	if err != nil {
		return nil, err
	}

	plan := planNote(payload)
	return s.render(ctx, "promissory_note", plan, warnings, "PAGARE_GENERADO.docx")
}

func (s *Service) render(ctx context.Context, templateName string, plan *renderPlan, warnings []string, filename string) (*Artifact, error) {
	warnings = append(warnings, plan.warnings...)
	for _, w := range warnings {
		s.log.Warnw("generation warning", "template", templateName, "warning", w)
	}

	path, ok := s.templates[templateName]
	if !ok {
		return nil, &TemplateNotFoundError{Name: templateName}
	}

	buf, err := assemble(templateName, path, plan)
	if err != nil {
		return nil, err
	}

	s.log.Infow("document assembled",
		"template", templateName,
		"paragraphs", len(plan.paragraphs),
		"table_rows", len(plan.table),
		"bytes", buf.Len(),
	)

	return &Artifact{
		Data:     buf.Bytes(),
		Filename: filename,
		MIME:     ArtifactMIME,
		Warnings: warnings,
	}, nil
}

// complete performs the remote call, with bounded exponential backoff when
// the service is configured with more than one attempt. The contract stays
// opaque-and-blocking; retry only widens tolerance for transient transport
// failures.
func (s *Service) complete(ctx context.Context, prompts *PromptSet, model string) (string, error) {
	call := func() (string, error) {
		start := time.Now()
		var content string
		var err error

		switch prompts.Mode {
		case ModeChatJSON:
			var resp *llm.CompletionResponse
			resp, err = s.provider.CompleteChat(ctx, &llm.ChatRequest{
				Model:     model,
				System:    prompts.System,
				User:      prompts.User,
				MaxTokens: maxOutputTokens,
				ForceJSON: true,
			})
			if resp != nil {
				content = resp.Content
			}
		default:
			var resp *llm.CompletionResponse
			resp, err = s.provider.Complete(ctx, &llm.CompletionRequest{
				Model:     model,
				Messages:  []llm.Message{{Role: "user", Content: prompts.Freeform}},
				MaxTokens: maxOutputTokens,
			})
			if resp != nil {
				content = resp.Content
			}
		}

		if err != nil {
			s.log.Warnw("completion call failed", "model", model, "err", err)
			return "", err
		}

		s.log.Infow("completion received", "model", model, "elapsed", time.Since(start))
		return content, nil
	}

	if s.attempts <= 1 {
		return call()
	}

	var content string
	op := func() error {
		var err error
		content, err = call()
		return err
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(s.attempts-1)),
		ctx,
	)
	if err := backoff.Retry(op, b); err != nil {
		return "", err
	}
	return content, nil
}
