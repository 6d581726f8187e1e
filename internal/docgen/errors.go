package docgen

import "fmt"

// RemoteCallError wraps a failure of the completion collaborator. Fatal for
// the invocation; the underlying error is surfaced verbatim.
type RemoteCallError struct {
	Err error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("remote completion call failed: %v", e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

// ExtractionError means the raw model output contained no recognizable
// payload delimiters. Raw is kept for diagnosis.
type ExtractionError struct {
	Kind PayloadKind
	Raw  string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no %s payload found in model output", e.Kind)
}

// PayloadParseError means the extracted substring is not valid JSON of the
// expected shape. Fatal; the broken substring is kept for diagnosis.
type PayloadParseError struct {
	Raw string
	Err error
}

func (e *PayloadParseError) Error() string {
	return fmt.Sprintf("payload is not valid JSON: %v", e.Err)
}

func (e *PayloadParseError) Unwrap() error { return e.Err }

// TemplateNotFoundError is a configuration-level failure, distinct from
// payload errors.
type TemplateNotFoundError struct {
	Name string
	Path string
}

func (e *TemplateNotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("template %q not found at %s", e.Name, e.Path)
	}
	return fmt.Sprintf("unknown template %q", e.Name)
}
