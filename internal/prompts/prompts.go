package prompts

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed chat.md
var ChatBase string

// BuildChatPrompt constructs the system prompt for chatting with an
// uploaded document. The document text rides in the system prompt so every
// turn sees it.
func BuildChatPrompt(docTitle, docText string) string {
	base := strings.TrimSpace(ChatBase)

	if strings.TrimSpace(docText) == "" {
		return base
	}

	title := docTitle
	if title == "" {
		title = "(sin título)"
	}

	return fmt.Sprintf("%s\n\n---\n\nDocumento: %s\n\n%s", base, title, docText)
}
