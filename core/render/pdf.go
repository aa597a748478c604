// Package render — PDF renderer.
// Converts the page via the AsciiDoc engine and lays the result out as
// a styled PDF using gofpdf. Handles headings (variable font sizes),
// paragraphs, fenced blocks, and list items; images are not rendered.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gopherdocs/adocpipe/core"
	"github.com/gopherdocs/adocpipe/core/asciidoc"
)

// PDFRenderer renders a converted document as a PDF.
type PDFRenderer struct {
	engine *asciidoc.Engine
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{engine: asciidoc.New()}
}

// Render converts the fragment to AsciiDoc and typesets it into PDF
// bytes.
func (r *PDFRenderer) Render(fragment string, meta core.DocMetadata) ([]byte, error) {
	adoc, err := r.engine.Convert(fragment)
	if err != nil {
		return nil, fmt.Errorf("converting to AsciiDoc: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, meta.Title, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+meta.Source, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	inFence := false
	for _, line := range strings.Split(adoc, "\n") {
		trimmed := strings.TrimSpace(line)

		// ---- delimits code and literal blocks.
		if trimmed == "----" {
			inFence = !inFence
			pdf.Ln(2)
			continue
		}
		if inFence {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}

		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		// Block attribute lines like [source,go] or [NOTE] carry no
		// visible text of their own.
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			continue
		}

		// Headings: one = per level.
		if strings.HasPrefix(trimmed, "=") {
			level := 0
			for _, ch := range trimmed {
				if ch != '=' {
					break
				}
				level++
			}
			text := strings.TrimSpace(strings.TrimLeft(trimmed, "= "))
			renderHeading(pdf, text, level)
			continue
		}

		// List items: leading * or . markers of any depth.
		if marker := listMarker(trimmed); marker != "" {
			pdf.SetFont("Helvetica", "", 10)
			text := "• " + strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
			pdf.MultiCell(0, 5, cleanInline(text), "", "L", false)
			continue
		}

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, cleanInline(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes
// the text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, cleanInline(text), "", "L", false)
	pdf.Ln(2)
}

// listMarker returns the AsciiDoc list marker prefix of the line
// ("*", "**", ".", "..", ...) or "" when the line is not a list item.
func listMarker(line string) string {
	for _, symbol := range []byte{'*', '.'} {
		n := 0
		for n < len(line) && line[n] == symbol {
			n++
		}
		if n > 0 && n < len(line) && line[n] == ' ' {
			return line[:n]
		}
	}
	return ""
}

var (
	boldRe   = regexp.MustCompile(`\*([^*]+)\*`)
	italicRe = regexp.MustCompile(`(?:^|\s)_([^_]+)_(?:\s|$)`)
	codeRe   = regexp.MustCompile("`([^`]+)`")
	linkRe   = regexp.MustCompile(`(\S+)\[([^\]]*)\]`)
)

// cleanInline strips inline AsciiDoc formatting for PDF text runs.
func cleanInline(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, " $1 ")
	text = codeRe.ReplaceAllString(text, "$1")
	// Keep link labels, drop targets; bare targets stay as-is.
	text = linkRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := linkRe.FindStringSubmatch(m)
		if sub[2] == "" {
			return sub[1]
		}
		return sub[2]
	})
	return strings.TrimSpace(text)
}
