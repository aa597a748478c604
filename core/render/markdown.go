// Package render — Markdown renderer.
// Alternative output format for callers that want Markdown instead of
// AsciiDoc, converted with html-to-markdown.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gopherdocs/adocpipe/core"
)

// MarkdownRenderer converts an HTML fragment to Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the fragment to Markdown bytes.
func (r *MarkdownRenderer) Render(fragment string, meta core.DocMetadata) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return nil, fmt.Errorf("converting to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
