package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// PDF renders plain resume text into a single-column A4 PDF. The first line
// is treated as the document title.
func PDF(text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("render pdf: empty text")
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.AddPage()

	lines := strings.Split(text, "\n")
	doc.SetFont("Helvetica", "B", 14)
	doc.MultiCell(0, 7, lines[0], "", "L", false)
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 11)
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			doc.Ln(4)
			continue
		}
		doc.MultiCell(0, 5.5, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
