package docgen

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContentBlock is one paragraph-equivalent unit of model output. Style is
// already normalized by the time a block leaves this package's parsers.
type ContentBlock struct {
	Style Style  `json:"style"`
	Text  string `json:"text"`
}

// GeneralDocumentPayload is an ordered sequence of content blocks.
type GeneralDocumentPayload struct {
	Blocks []ContentBlock
}

// PromissoryNotePayload carries prose plus the amortization schedule. Each
// schedule row is the row object's scalar values in document order; the
// model is trusted on column order, not on key names.
type PromissoryNotePayload struct {
	Prose    []ContentBlock
	Schedule [][]any
}

// ScheduleWidth is the fixed arity of an amortization row: payment number,
// interest, interest tax, principal, total payment, outstanding balance.
const ScheduleWidth = 6

type rawBlock struct {
	Style string `json:"style"`
	Text  string `json:"text"`
}

func normalizeBlocks(raw []rawBlock, warnings *[]string) []ContentBlock {
	blocks := make([]ContentBlock, 0, len(raw))
	for i, rb := range raw {
		style, repaired := NormalizeStyle(rb.Style)
		if repaired {
			*warnings = append(*warnings,
				fmt.Sprintf("block %d: unknown style %q replaced with %q", i, rb.Style, DefaultStyle))
		}
		blocks = append(blocks, ContentBlock{Style: style, Text: rb.Text})
	}
	return blocks
}

// ParseGeneralPayload parses and normalizes an extracted list payload.
// A structurally malformed payload is a hard failure; unknown styles are
// repaired in place and reported through warnings.
func ParseGeneralPayload(data string) (*GeneralDocumentPayload, []string, error) {
	var raw []rawBlock
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, nil, &PayloadParseError{Raw: data, Err: err}
	}

	var warnings []string
	return &GeneralDocumentPayload{Blocks: normalizeBlocks(raw, &warnings)}, warnings, nil
}

// ParseNotePayload parses and normalizes an extracted object payload. A
// missing or empty amortization_schedule means "no table to render" and is
// not an error.
func ParseNotePayload(data string) (*PromissoryNotePayload, []string, error) {
	var raw struct {
		Prose    []rawBlock        `json:"prosa"`
		Schedule []json.RawMessage `json:"tabla_amortizacion"`
	}
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, nil, &PayloadParseError{Raw: data, Err: err}
	}

	var warnings []string
	payload := &PromissoryNotePayload{
		Prose: normalizeBlocks(raw.Prose, &warnings),
	}

	for _, row := range raw.Schedule {
		payload.Schedule = append(payload.Schedule, decodeRowValues(row))
	}

	return payload, warnings, nil
}

// decodeRowValues pulls the scalar values of one schedule row in document
// order. encoding/json maps do not preserve key order, so the row is walked
// token by token. A row that is itself an array is taken as already
// positional. Anything unexpected yields whatever values were gathered;
// width and type problems are the formatter's per-row concern.
func decodeRowValues(row json.RawMessage) []any {
	dec := json.NewDecoder(bytes.NewReader(row))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// Bare scalar where a row was expected.
		return []any{tok}
	}

	var values []any
	switch delim {
	case '{':
		for dec.More() {
			if _, err := dec.Token(); err != nil { // key, name irrelevant
				return values
			}
			v, err := decodeScalar(dec)
			if err != nil {
				return values
			}
			values = append(values, v)
		}
	case '[':
		for dec.More() {
			v, err := decodeScalar(dec)
			if err != nil {
				return values
			}
			values = append(values, v)
		}
	}
	return values
}

// decodeScalar reads the next value; nested composites are consumed whole
// and returned as raw tokens so they fail numeric coercion later rather
// than derailing the walk.
func decodeScalar(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		depth := 1
		for depth > 0 {
			t, err := dec.Token()
			if err != nil {
				return nil, err
			}
			if dd, ok := t.(json.Delim); ok {
				switch dd {
				case '{', '[':
					depth++
				case '}', ']':
					depth--
				}
			}
		}
		return d, nil
	}
	return tok, nil
}
