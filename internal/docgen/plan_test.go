package docgen

import (
	"encoding/json"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234.5, "1,234.50"},
		{0, "0.00"},
		{999999.999, "1,000,000.00"},
		{16, "16.00"},
		{91.5, "91.50"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatScheduleRow(t *testing.T) {
	tests := []struct {
		name    string
		values  []any
		want    [ScheduleWidth]string
		wantErr bool
	}{
		{
			name:   "numeric row",
			values: []any{json.Number("1"), json.Number("100"), json.Number("16"), json.Number("900"), json.Number("1016"), json.Number("9100.5")},
			want:   [ScheduleWidth]string{"1", "100.00", "16.00", "900.00", "1,016.00", "9,100.50"},
		},
		{
			name:   "numeric strings coerce",
			values: []any{"1", "100.0", "16.0", "900.0", "1016.0", "9100.0"},
			want:   [ScheduleWidth]string{"1", "100.00", "16.00", "900.00", "1,016.00", "9,100.00"},
		},
		{
			name:    "short row fails with marker",
			values:  []any{json.Number("1"), "bad"},
			want:    [ScheduleWidth]string{RowErrorMarker, "", "", "", "", ""},
			wantErr: true,
		},
		{
			name:    "non-numeric column fails with marker",
			values:  []any{json.Number("1"), "cien", json.Number("16"), json.Number("900"), json.Number("1016"), json.Number("9100")},
			want:    [ScheduleWidth]string{RowErrorMarker, "", "", "", "", ""},
			wantErr: true,
		},
		{
			name:    "empty row",
			values:  nil,
			want:    [ScheduleWidth]string{RowErrorMarker, "", "", "", "", ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := FormatScheduleRow(tt.values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if cells != tt.want {
				t.Errorf("cells = %v, want %v", cells, tt.want)
			}
		})
	}
}

func TestPlanNote(t *testing.T) {
	payload := &PromissoryNotePayload{
		Prose: []ContentBlock{
			{Style: StyleTitle, Text: "PAGARÉ"},
			{Style: StyleJustified, Text: "Debo y pagaré..."},
		},
		Schedule: [][]any{
			{json.Number("1"), json.Number("100"), json.Number("16"), json.Number("900"), json.Number("1016"), json.Number("9100")},
			{json.Number("2"), "bad"},
			{json.Number("3"), json.Number("91"), json.Number("14.56"), json.Number("909"), json.Number("1014.56"), json.Number("8191")},
		},
	}

	plan := planNote(payload)

	if len(plan.paragraphs) != 2 {
		t.Errorf("paragraphs = %d, want 2", len(plan.paragraphs))
	}
	// Header + 3 data rows; the bad row is isolated, not fatal.
	if len(plan.table) != 4 {
		t.Fatalf("table rows = %d, want 4", len(plan.table))
	}
	if plan.table[0] != ScheduleHeader {
		t.Errorf("header = %v, want %v", plan.table[0], ScheduleHeader)
	}
	if plan.table[2][0] != RowErrorMarker {
		t.Errorf("bad row cell 0 = %q, want %q", plan.table[2][0], RowErrorMarker)
	}
	if plan.table[3][5] != "8,191.00" {
		t.Errorf("row after failure = %v, want it rendered normally", plan.table[3])
	}
	if len(plan.warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one row report", plan.warnings)
	}
}

func TestPlanNoteEmptySchedule(t *testing.T) {
	plan := planNote(&PromissoryNotePayload{
		Prose: []ContentBlock{{Style: StyleJustified, Text: "solo prosa"}},
	})
	if len(plan.table) != 0 {
		t.Errorf("table = %v, want none", plan.table)
	}
	if len(plan.warnings) != 0 {
		t.Errorf("warnings = %v, want none", plan.warnings)
	}
}

func TestPlanGeneralPreservesOrder(t *testing.T) {
	blocks := []ContentBlock{
		{Style: StyleTitle, Text: "a"},
		{Style: StyleJustified, Text: "b"},
		{Style: StyleNumberedClauses, Text: "c"},
		{Style: StyleManualList, Text: "d"},
		{Style: StyleSignature, Text: "e"},
	}
	plan := planGeneral(&GeneralDocumentPayload{Blocks: blocks})

	if len(plan.paragraphs) != len(blocks) {
		t.Fatalf("paragraphs = %d, want %d", len(plan.paragraphs), len(blocks))
	}
	for i, p := range plan.paragraphs {
		if p != blocks[i] {
			t.Errorf("paragraph %d = %+v, want %+v", i, p, blocks[i])
		}
	}
}

func TestNormalizeStyle(t *testing.T) {
	tests := []struct {
		in           string
		want         Style
		wantRepaired bool
	}{
		{"Titulo_1", StyleTitle, false},
		{"Parrafo_Justificado", StyleJustified, false},
		{"Lista_Numerada", StyleNumberedClauses, false},
		{"Estilo_Firma", StyleSignature, false},
		{"Lista_Manual", StyleManualList, false},
		{"Heading9", StyleJustified, true},
		{"", StyleJustified, true},
		{"titulo_1", StyleJustified, true}, // case sensitive by contract
	}

	for _, tt := range tests {
		got, repaired := NormalizeStyle(tt.in)
		if got != tt.want || repaired != tt.wantRepaired {
			t.Errorf("NormalizeStyle(%q) = (%q, %v), want (%q, %v)",
				tt.in, got, repaired, tt.want, tt.wantRepaired)
		}
	}
}
