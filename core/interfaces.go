// Package core defines the pipeline interfaces for adocpipe.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// DocMetadata holds metadata about a single converted document.
type DocMetadata struct {
	// Source is the file path or URL the document came from.
	Source      string
	Title       string
	ConvertedAt string // ISO8601
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor isolates the main content region from a full HTML page,
// stripping navigation, headers, footers and other boilerplate.
type Extractor interface {
	Extract(html string) (string, error)
}

// Converter turns an isolated HTML fragment into AsciiDoc text.
type Converter interface {
	Convert(fragment string) (string, error)
}

// Renderer converts an extracted HTML fragment (and metadata) into a
// final output format.
type Renderer interface {
	Render(fragment string, meta DocMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".adoc").
	Extension() string
}
