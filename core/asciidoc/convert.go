// Package asciidoc converts HTML fragments into AsciiDoc markup.
//
// The converter targets the element vocabulary emitted by documentation
// renderers: headings, paragraphs, emphasis, code, lists, tables,
// blockquotes, admonition blocks, rules, images, line breaks and links.
// Anything else is rendered transparently (children only, wrapper tag
// dropped), so conversion never fails on unexpected markup.
package asciidoc

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Engine converts HTML fragments to AsciiDoc. It holds no state between
// calls; each Convert uses its own renderer, so a single Engine is safe
// for concurrent use.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Convert parses an HTML fragment and renders it as AsciiDoc.
// The fragment does not need <html> or <body> wrappers.
func (e *Engine) Convert(fragment string) (string, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	r := &renderer{}
	return r.render(doc), nil
}

// Convert is a convenience wrapper around a throwaway Engine.
func Convert(fragment string) (string, error) {
	return New().Convert(fragment)
}

// renderer carries the traversal state for one Convert call.
type renderer struct {
	// depth is the current list nesting level, 0 outside any list.
	// Incremented on entry to a ul/ol and decremented on exit, so it
	// is always back to its previous value once a list subtree is done.
	depth int
}

func (r *renderer) render(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case html.TextNode:
		// Raw text passes through unchanged. AsciiDoc-significant
		// characters in source text are not escaped; see package doc.
		return n.Data
	case html.ElementNode:
		return r.element(n)
	default:
		return r.children(n)
	}
}

// children renders all child nodes in document order.
func (r *renderer) children(n *html.Node) string {
	var buf strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		buf.WriteString(r.render(c))
	}
	return buf.String()
}

// element dispatches on the lowercased tag name. Unlisted tags render
// transparently, so the dispatch is total.
func (r *renderer) element(n *html.Node) string {
	switch tag := strings.ToLower(n.Data); tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(tag[1] - '0')
		return strings.Repeat("=", level) + " " + strings.TrimSpace(childText(n)) + "\n\n"
	case "p":
		body := r.children(n)
		if strings.TrimSpace(body) == "" {
			return ""
		}
		return body + "\n\n"
	case "strong", "b":
		return "*" + r.children(n) + "*"
	case "em", "i":
		return "_" + r.children(n) + "_"
	case "code":
		if isChildOf(n, "pre") {
			// The enclosing pre handler owns fencing.
			return childText(n)
		}
		return "`" + childText(n) + "`"
	case "pre":
		return r.pre(n)
	case "a":
		return link(n)
	case "ul":
		return r.list(n, "*")
	case "ol":
		return r.list(n, ".")
	case "li":
		// Markers and indentation come from the enclosing list handler.
		return r.children(n)
	case "table":
		return r.table(n)
	case "blockquote":
		return r.blockquote(n)
	case "div":
		return r.div(n)
	case "br":
		return " +\n"
	case "hr":
		return "'''\n\n"
	case "img":
		return "image::" + attr(n, "src") + "[" + attr(n, "alt") + "]\n\n"
	default:
		return r.children(n)
	}
}

// pre emits a fenced block. A pre containing a code element becomes a
// source block with the extracted language; anything else is fenced as
// plain literal text.
func (r *renderer) pre(n *html.Node) string {
	if code := firstDescendant(n, "code"); code != nil {
		lang := codeLanguage(code)
		return "[source," + lang + "]\n----\n" + fenceBody(childText(code)) + "----\n\n"
	}
	return "----\n" + fenceBody(childText(n)) + "----\n\n"
}

// fenceBody normalizes fenced content to end with exactly one newline.
func fenceBody(text string) string {
	return strings.TrimRight(text, "\n") + "\n"
}

// link collapses <a> elements whose text repeats the target (or is
// empty) to the bare URL, and emits href[text] otherwise.
func link(n *html.Node) string {
	href := attr(n, "href")
	text := childText(n)
	if href == text || text == "" {
		return href
	}
	return href + "[" + text + "]"
}

// list renders a ul/ol. The marker is repeated once per nesting level,
// so nested items get a longer prefix. Only direct li children become
// items here; nested lists inside an item recurse on their own.
func (r *renderer) list(n *html.Node, marker string) string {
	var buf strings.Builder
	if r.depth > 0 {
		// A nested list starts on its own line, after the parent
		// item's text.
		buf.WriteByte('\n')
	}
	r.depth++
	prefix := strings.Repeat(marker, r.depth)
	for _, item := range elementChildren(n, "li") {
		buf.WriteString(prefix)
		buf.WriteByte(' ')
		buf.WriteString(strings.TrimSpace(r.render(item)))
		buf.WriteByte('\n')
	}
	r.depth--
	buf.WriteByte('\n')
	return buf.String()
}

// table emits one |-prefixed line per cell, rows in document order.
// Header cells get the bold |* prefix; there is no separate header-row
// separator in this format.
func (r *renderer) table(n *html.Node) string {
	var buf strings.Builder
	buf.WriteString("[cols=\"*\"]\n|===\n")
	for _, row := range descendants(n, "tr") {
		for c := row.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch strings.ToLower(c.Data) {
			case "th":
				buf.WriteString("|*" + strings.TrimSpace(childText(c)) + "\n")
			case "td":
				buf.WriteString("|" + strings.TrimSpace(childText(c)) + "\n")
			}
		}
	}
	buf.WriteString("|===\n\n")
	return buf.String()
}

// blockquote wraps the rendered content in a quote block, dropping
// blank lines.
func (r *renderer) blockquote(n *html.Node) string {
	var buf strings.Builder
	buf.WriteString("[quote]\n____\n")
	for _, line := range strings.Split(r.children(n), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString("____\n\n")
	return buf.String()
}

// div recognizes the wrapper classes documentation renderers emit for
// admonitions and listing/literal blocks; any other div is transparent.
func (r *renderer) div(n *html.Node) string {
	switch {
	case hasClass(n, "admonitionblock"):
		return r.admonition(n)
	case hasClass(n, "listingblock"), hasClass(n, "literalblock"):
		return r.listing(n)
	default:
		return r.children(n)
	}
}

// admonition converts an admonition wrapper into a [LABEL] example
// block. The label comes from the icon's title attribute (NOTE, TIP,
// IMPORTANT, WARNING, CAUTION in practice), defaulting to NOTE. A
// wrapper without a content sub-element produces no output.
func (r *renderer) admonition(n *html.Node) string {
	label := "NOTE"
	if icon := firstDescendantWithClass(n, "icon"); icon != nil {
		if title := titleAttr(icon); title != "" {
			label = strings.ToUpper(title)
		}
	}
	content := firstDescendantWithClass(n, "content")
	if content == nil {
		return ""
	}
	body := strings.TrimSpace(r.children(content))
	return "[" + label + "]\n====\n" + body + "\n====\n\n"
}

// listing fences the block's literal text, preferring a nested content
// sub-element over the wrapper's own text.
func (r *renderer) listing(n *html.Node) string {
	target := n
	if c := firstDescendantWithClass(n, "content"); c != nil {
		target = c
	}
	return "----\n" + fenceBody(strings.Trim(childText(target), "\n")) + "----\n\n"
}

// codeLanguage extracts the source language of a code element: a
// language-<word> class token first, then a data-lang attribute, then
// the "text" default.
func codeLanguage(n *html.Node) string {
	for _, token := range classTokens(n) {
		if lang, ok := strings.CutPrefix(token, "language-"); ok && lang != "" {
			return lang
		}
	}
	if lang := attr(n, "data-lang"); lang != "" {
		return lang
	}
	return "text"
}
