package docio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	docx "github.com/fumiama/go-docx"
)

func TestExtractTextPlain(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		data      string
		want      string
	}{
		{"plain text", "text/plain", "hola mundo", "hola mundo"},
		{"plain with charset", "text/plain; charset=utf-8", "hola", "hola"},
		{"markdown", "text/markdown", "# Título\n\ncuerpo", "# Título\n\ncuerpo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText([]byte(tt.data), tt.mediaType)
			if err != nil {
				t.Fatalf("ExtractText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText([]byte{0x25, 0x50, 0x44, 0x46}, "application/pdf")
	if !errors.Is(err, ErrUnsupportedMedia) {
		t.Fatalf("error = %v, want ErrUnsupportedMedia", err)
	}
}

func TestExtractTextDocx(t *testing.T) {
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Primera cláusula")
	doc.AddParagraph().AddText("Segunda cláusula")

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractText(buf.Bytes(), MediaDocx)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	for _, want := range []string{"Primera cláusula", "Segunda cláusula"} {
		if !strings.Contains(got, want) {
			t.Errorf("extracted text %q missing %q", got, want)
		}
	}
}

func TestExtractTextDocxGarbage(t *testing.T) {
	_, err := ExtractText([]byte("definitely not a zip archive"), MediaDocx)
	if err == nil {
		t.Fatal("expected error for garbage docx input")
	}
	if errors.Is(err, ErrUnsupportedMedia) {
		t.Error("garbage input is a read failure, not an unsupported type")
	}
}
