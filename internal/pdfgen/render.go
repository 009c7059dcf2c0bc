// Package pdfgen renders plain report text into a printable PDF.
package pdfgen

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	marginMM   = 20.0
	maxWidthMM = 170.0
	fontSizePt = 11.0
	// 14pt leading, expressed in millimeters.
	leadingMM = 14.0 * 25.4 / 72.0
)

// Render word-wraps text to the printable width of an A4 page and returns
// the PDF bytes. Empty lines are kept so paragraph spacing survives.
func Render(text string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", "", fontSizePt)
	doc.AddPage()

	// Core fonts are cp1252; the reports are French.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	_, pageHeight := doc.GetPageSize()
	y := marginMM

	for _, raw := range strings.Split(text, "\n") {
		for _, line := range wrapLine(doc, tr(raw)) {
			if y > pageHeight-marginMM {
				doc.AddPage()
				y = marginMM
			}
			doc.Text(marginMM, y, line)
			y += leadingMM
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// wrapLine greedily packs words until the rendered width would exceed the
// printable width. A line that fits as-is comes back unchanged; an empty
// line comes back as a single empty entry.
func wrapLine(doc *fpdf.Fpdf, line string) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		test := strings.TrimSpace(current + " " + word)
		if doc.GetStringWidth(test) <= maxWidthMM {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
