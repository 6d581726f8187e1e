package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/Valdivia94x/app-legal-olea/internal/llm"
)

type fakeProvider struct {
	chunks   []string
	lastReq  *llm.CompletionRequest
	streamed int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Content: strings.Join(f.chunks, "")}, nil
}

func (f *fakeProvider) CompleteChat(ctx context.Context, req *llm.ChatRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Content: strings.Join(f.chunks, "")}, nil
}

func (f *fakeProvider) Stream(ctx context.Context, req *llm.CompletionRequest) (<-chan llm.StreamEvent, error) {
	f.lastReq = req
	f.streamed++
	events := make(chan llm.StreamEvent)
	go func() {
		defer close(events)
		for _, c := range f.chunks {
			events <- llm.StreamEvent{Chunk: c}
		}
		events <- llm.StreamEvent{Done: true}
	}()
	return events, nil
}

func (f *fakeProvider) Ping(ctx context.Context) error { return nil }

func TestSessionAsk(t *testing.T) {
	p := &fakeProvider{chunks: []string{"La cláusula ", "tercera."}}
	s := NewSession(p, "gpt-5", "Contrato.docx", "CLÁUSULA TERCERA: el arrendatario pagará...")

	events, err := s.Ask(context.Background(), "¿qué dice sobre el pago?")
	if err != nil {
		t.Fatal(err)
	}

	var answer strings.Builder
	for ev := range events {
		answer.WriteString(ev.Chunk)
	}
	s.RecordAnswer(answer.String())

	if got := answer.String(); got != "La cláusula tercera." {
		t.Errorf("answer = %q", got)
	}

	// System prompt carries the document, then the user turn.
	if len(p.lastReq.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(p.lastReq.Messages))
	}
	if p.lastReq.Messages[0].Role != "system" ||
		!strings.Contains(p.lastReq.Messages[0].Content, "CLÁUSULA TERCERA") {
		t.Error("system prompt missing document text")
	}

	if len(s.History()) != 2 {
		t.Fatalf("history = %d turns, want 2", len(s.History()))
	}

	// A follow-up carries the prior turns.
	events, err = s.Ask(context.Background(), "¿y la fecha?")
	if err != nil {
		t.Fatal(err)
	}
	for range events {
	}
	if len(p.lastReq.Messages) != 4 {
		t.Errorf("follow-up messages = %d, want 4", len(p.lastReq.Messages))
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	p := &fakeProvider{}
	a := NewSession(p, "gpt-5", "", "")
	b := NewSession(p, "gpt-5", "", "")
	if a.ID == b.ID {
		t.Error("session IDs must be unique")
	}
}
