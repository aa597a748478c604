// Package render provides output renderers for the adocpipe pipeline.
// This file implements the AsciiDoc renderer, the primary output path:
// converter engine plus post-processing.
package render

import (
	"fmt"

	"github.com/gopherdocs/adocpipe/core"
	"github.com/gopherdocs/adocpipe/core/asciidoc"
	"github.com/gopherdocs/adocpipe/core/post"
)

// AsciiDocRenderer converts an HTML fragment to final AsciiDoc text.
type AsciiDocRenderer struct {
	engine *asciidoc.Engine
}

// NewAsciiDocRenderer creates an AsciiDocRenderer.
func NewAsciiDocRenderer() *AsciiDocRenderer {
	return &AsciiDocRenderer{engine: asciidoc.New()}
}

// Render converts the fragment and applies the pipeline fixups:
// blank-line collapsing, .html→.adoc link rewriting, and the document
// title line.
func (r *AsciiDocRenderer) Render(fragment string, meta core.DocMetadata) ([]byte, error) {
	doc, err := r.engine.Convert(fragment)
	if err != nil {
		return nil, fmt.Errorf("converting to AsciiDoc: %w", err)
	}
	return []byte(post.Process(doc, meta.Title)), nil
}

// Extension returns the file extension for AsciiDoc output.
func (r *AsciiDocRenderer) Extension() string {
	return ".adoc"
}
