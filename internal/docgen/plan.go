package docgen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ScheduleHeader holds the canonical column labels of the amortization
// table, in positional order.
var ScheduleHeader = [ScheduleWidth]string{
	"Pago No.",
	"Interés",
	"IVA Interés",
	"Capital",
	"Pago Total",
	"Saldo Insoluto",
}

// RowErrorMarker is written to the first cell of a row whose values could
// not be coerced.
const RowErrorMarker = "ERROR"

// renderPlan is the deterministic intermediate between a validated payload
// and the docx writer: an ordered paragraph list and, optionally, a table
// grid whose first row is the bold header.
type renderPlan struct {
	paragraphs []ContentBlock
	table      [][ScheduleWidth]string
	warnings   []string
}

func planGeneral(p *GeneralDocumentPayload) *renderPlan {
	return &renderPlan{paragraphs: p.Blocks}
}

func planNote(p *PromissoryNotePayload) *renderPlan {
	plan := &renderPlan{paragraphs: p.Prose}

	if len(p.Schedule) == 0 {
		return plan
	}

	plan.table = append(plan.table, ScheduleHeader)
	for i, values := range p.Schedule {
		cells, err := FormatScheduleRow(values)
		if err != nil {
			plan.warnings = append(plan.warnings,
				fmt.Sprintf("schedule row %d: %v", i+1, err))
		}
		plan.table = append(plan.table, cells)
	}

	return plan
}

// FormatScheduleRow turns one row's positional values into display cells:
// column 0 as a plain integer-looking string, columns 1-5 as 2-decimal,
// thousands-grouped numbers. On any coercion failure the first cell is the
// error marker, the rest stay blank, and the failure is returned for
// reporting; it never aborts the table.
func FormatScheduleRow(values []any) ([ScheduleWidth]string, error) {
	var cells [ScheduleWidth]string

	fail := func(err error) ([ScheduleWidth]string, error) {
		cells = [ScheduleWidth]string{}
		cells[0] = RowErrorMarker
		return cells, err
	}

	if len(values) < ScheduleWidth {
		return fail(fmt.Errorf("expected %d values, got %d", ScheduleWidth, len(values)))
	}

	cells[0] = formatOrdinal(values[0])
	for i := 1; i < ScheduleWidth; i++ {
		f, err := coerceFloat(values[i])
		if err != nil {
			return fail(fmt.Errorf("column %d: %v", i, err))
		}
		cells[i] = FormatAmount(f)
	}

	return cells, nil
}

// FormatAmount renders a monetary value as a fixed 2-decimal,
// thousands-grouped string, locale independent: 1234.5 -> "1,234.50".
func FormatAmount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func formatOrdinal(v any) string {
	switch t := v.(type) {
	case json.Number:
		return t.String()
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}

func coerceFloat(v any) (float64, error) {
	switch t := v.(type) {
	case json.Number:
		return t.Float64()
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
