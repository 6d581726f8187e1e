package docio

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// ErrUnsupportedMedia is the explicit no-text signal for media types this
// reader does not understand. Callers branch on it; it is never a crash.
var ErrUnsupportedMedia = errors.New("unsupported media type")

const (
	MediaDocx     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaPlain    = "text/plain"
	MediaMarkdown = "text/markdown"
)

// ExtractText returns the plain text of a binary blob with a declared media
// type. Unsupported types return ErrUnsupportedMedia rather than failing
// loudly.
func ExtractText(data []byte, mediaType string) (string, error) {
	// Parameters like "; charset=utf-8" are irrelevant here.
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	switch mediaType {
	case MediaDocx:
		return extractDocx(data)
	case MediaPlain, MediaMarkdown:
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, mediaType)
	}
}

// extractDocx collects paragraph text first, then table cell text, skipping
// blanks.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}

	var lines []string
	appendLine := func(s string) {
		if strings.TrimSpace(s) != "" {
			lines = append(lines, s)
		}
	}

	var tables []*docx.Table
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			appendLine(paragraphText(it))
		case *docx.Table:
			tables = append(tables, it)
		}
	}
	for _, tbl := range tables {
		for _, row := range tbl.TableRows {
			for _, cell := range row.TableCells {
				for _, p := range cell.Paragraphs {
					appendLine(paragraphText(p))
				}
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}

func paragraphText(p *docx.Paragraph) string {
	var b strings.Builder
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				b.WriteString(t.Text)
			}
		}
	}
	return b.String()
}
