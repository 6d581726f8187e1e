package docgen

import "strings"

// PayloadKind selects the delimiter pair the extractor looks for.
type PayloadKind int

const (
	// PayloadList is a top-level JSON array ([ ... ]).
	PayloadList PayloadKind = iota
	// PayloadObject is a top-level JSON object ({ ... }).
	PayloadObject
)

func (k PayloadKind) String() string {
	if k == PayloadList {
		return "list"
	}
	return "object"
}

func (k PayloadKind) delimiters() (byte, byte) {
	if k == PayloadList {
		return '[', ']'
	}
	return '{', '}'
}

// ExtractPayload isolates the JSON payload substring from raw model output,
// tolerant of leading and trailing commentary. It slices from the first
// opening delimiter to the last closing one; stray delimiters inside quoted
// prose can fool it, which is accepted over balanced-bracket scanning.
func ExtractPayload(raw string, kind PayloadKind) (string, error) {
	cleaned := stripFences(raw)

	open, closing := kind.delimiters()
	start := strings.IndexByte(cleaned, open)
	end := strings.LastIndexByte(cleaned, closing)
	if start == -1 || end == -1 || end < start {
		return "", &ExtractionError{Kind: kind, Raw: raw}
	}

	return cleaned[start : end+1], nil
}

// stripFences removes markdown code fences some models wrap JSON in.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
