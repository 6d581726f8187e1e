package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/Valdivia94x/app-legal-olea/internal/llm"
	"github.com/Valdivia94x/app-legal-olea/internal/prompts"
)

// Message is one turn of the conversation.
type Message struct {
	Role    string
	Content string
}

// Session is a conversation with an uploaded document as context. Each
// session owns its own history; nothing is shared between sessions.
type Session struct {
	ID       string
	provider llm.Provider
	model    string

	docTitle string
	docText  string
	history  []Message
}

func NewSession(provider llm.Provider, model, docTitle, docText string) *Session {
	return &Session{
		ID:       uuid.NewString(),
		provider: provider,
		model:    model,
		docTitle: docTitle,
		docText:  docText,
	}
}

// History returns the conversation so far.
func (s *Session) History() []Message {
	return s.history
}

// Title returns the name of the document under discussion.
func (s *Session) Title() string {
	return s.docTitle
}

// Ask streams an answer to a question about the document. The question is
// recorded immediately; the caller records the finished answer once the
// stream completes.
func (s *Session) Ask(ctx context.Context, question string) (<-chan llm.StreamEvent, error) {
	req := &llm.CompletionRequest{
		Model:       s.model,
		Messages:    s.buildMessages(question),
		MaxTokens:   2048,
		Temperature: 0.7,
	}

	events, err := s.provider.Stream(ctx, req)
	if err != nil {
		return nil, err
	}

	s.history = append(s.history, Message{Role: "user", Content: question})
	return events, nil
}

// RecordAnswer appends the assistant's completed reply to the history.
func (s *Session) RecordAnswer(answer string) {
	s.history = append(s.history, Message{Role: "assistant", Content: answer})
}

func (s *Session) buildMessages(question string) []llm.Message {
	msgs := []llm.Message{
		{Role: "system", Content: prompts.BuildChatPrompt(s.docTitle, s.docText)},
	}
	for _, m := range s.history {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}
	return append(msgs, llm.Message{Role: "user", Content: question})
}
