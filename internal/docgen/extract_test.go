package docgen

import (
	"errors"
	"testing"
)

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    PayloadKind
		want    string
		wantErr bool
	}{
		{
			name: "clean list is unchanged",
			raw:  `[{"style":"Titulo_1","text":"A"}]`,
			kind: PayloadList,
			want: `[{"style":"Titulo_1","text":"A"}]`,
		},
		{
			name: "wrapping prose is stripped",
			raw:  `Here you go: [{"a":1}] thanks`,
			kind: PayloadList,
			want: `[{"a":1}]`,
		},
		{
			name: "object with apology prefix",
			raw:  "Sorry about that. {\"prosa\":[]} Let me know!",
			kind: PayloadObject,
			want: `{"prosa":[]}`,
		},
		{
			name: "markdown fences are stripped",
			raw:  "```json\n[{\"style\":\"Titulo_1\",\"text\":\"A\"}]\n```",
			kind: PayloadList,
			want: `[{"style":"Titulo_1","text":"A"}]`,
		},
		{
			name:    "no delimiters at all",
			raw:     "I could not produce the document you asked for.",
			kind:    PayloadList,
			wantErr: true,
		},
		{
			name:    "only an opening bracket",
			raw:     `here it comes: [ and then nothing`,
			kind:    PayloadList,
			wantErr: true,
		},
		{
			name:    "wrong delimiter kind",
			raw:     `{"prosa":[]}`,
			kind:    PayloadList,
			wantErr: false, // the inner [ ] of "prosa" still matches
			want:    `[]`,
		},
		{
			name:    "empty input",
			raw:     "",
			kind:    PayloadObject,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPayload(tt.raw, tt.kind)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractPayload() = %q, want error", got)
				}
				var extErr *ExtractionError
				if !errors.As(err, &extErr) {
					t.Fatalf("error type = %T, want *ExtractionError", err)
				}
				if extErr.Raw != tt.raw {
					t.Errorf("ExtractionError.Raw = %q, want original text", extErr.Raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractPayload() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractPayload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractPayloadIdempotent(t *testing.T) {
	clean := `[{"style":"Titulo_1","text":"A"}]`

	once, err := ExtractPayload(clean, PayloadList)
	if err != nil {
		t.Fatalf("first extraction failed: %v", err)
	}
	twice, err := ExtractPayload(once, PayloadList)
	if err != nil {
		t.Fatalf("second extraction failed: %v", err)
	}
	if once != clean || twice != clean {
		t.Errorf("extraction not idempotent: %q -> %q -> %q", clean, once, twice)
	}
}
