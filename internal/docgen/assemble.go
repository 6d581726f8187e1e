package docgen

import (
	"bytes"
	"fmt"
	"os"

	docx "github.com/fumiama/go-docx"
)

// scheduleTableWidth is the total table width in twips.
const scheduleTableWidth = 9000

// assemble renders a plan into the named template and serializes the result
// to an in-memory buffer. The template file is opened read-only and never
// mutated on disk. On any failure no buffer is returned; there is no
// half-built document.
func assemble(templateName, templatePath string, plan *renderPlan) (*bytes.Buffer, error) {
	f, err := os.Open(templatePath)
	if err != nil {
		return nil, &TemplateNotFoundError{Name: templateName, Path: templatePath}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &TemplateNotFoundError{Name: templateName, Path: templatePath}
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("template %q is not a readable document: %w", templateName, err)
	}

	for _, block := range plan.paragraphs {
		doc.AddParagraph().Style(string(block.Style)).AddText(block.Text)
	}

	if len(plan.table) > 0 {
		tbl := doc.AddTable(len(plan.table), ScheduleWidth, scheduleTableWidth, nil)
		for r, row := range plan.table {
			if r >= len(tbl.TableRows) {
				break
			}
			cells := tbl.TableRows[r].TableCells
			for c := 0; c < ScheduleWidth && c < len(cells); c++ {
				run := cells[c].AddParagraph().AddText(row[c])
				if r == 0 {
					run.Bold()
				}
			}
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}

	return &buf, nil
}
