// Package extract isolates the main content region of a rendered
// documentation page. It removes chrome (navigation, headers, footers,
// scripts, self-anchor links) and returns the inner markup of the best
// content container, ready for the AsciiDoc converter.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are elements removed before the content container is
// selected. They carry page chrome, not document content.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header", "aside",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".toc", ".breadcrumbs",
	// Self-links that doc generators attach to headings.
	"a.anchor", "a.headerlink",
}

// containerSelectors are tried in priority order when no explicit
// selector is configured.
var containerSelectors = []string{"main", "article", "#content", "body"}

// HTMLExtractor strips chrome from a page and returns the main content
// fragment.
type HTMLExtractor struct {
	// Selector, when non-empty, is tried before the built-in
	// container candidates.
	Selector string
}

// New creates an HTMLExtractor. selector may be empty.
func New(selector string) *HTMLExtractor {
	return &HTMLExtractor{Selector: selector}
}

// Extract takes a full HTML page and returns the inner markup of its
// main content region.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	candidates := containerSelectors
	if e.Selector != "" {
		candidates = append([]string{e.Selector}, candidates...)
	}

	var content *goquery.Selection
	for _, sel := range candidates {
		if found := doc.Find(sel); found.Length() > 0 {
			content = found.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	fragment, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return fragment, nil
}

// Title returns the document title: the <title> text if present, else
// the first h1, else "".
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
