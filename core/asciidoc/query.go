package asciidoc

import (
	"strings"

	"golang.org/x/net/html"
)

// attr returns the value of the named attribute, or "" when absent.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// classTokens splits the class attribute into its tokens.
func classTokens(n *html.Node) []string {
	return strings.Fields(attr(n, "class"))
}

// hasClass reports whether the element carries the given class token.
func hasClass(n *html.Node, class string) bool {
	for _, token := range classTokens(n) {
		if token == class {
			return true
		}
	}
	return false
}

// isChildOf reports whether the node's parent is an element with the
// given (lowercase) tag name.
func isChildOf(n *html.Node, name string) bool {
	p := n.Parent
	return p != nil && p.Type == html.ElementNode && strings.ToLower(p.Data) == name
}

// childText concatenates the raw text of all descendant text nodes in
// document order, ignoring markup.
func childText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// elementChildren returns the direct child elements with the given
// (lowercase) tag name, in document order.
func elementChildren(n *html.Node, name string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.ToLower(c.Data) == name {
			out = append(out, c)
		}
	}
	return out
}

// descendants returns all descendant elements with the given
// (lowercase) tag name, in document order. The node itself is not
// considered.
func descendants(n *html.Node, name string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && strings.ToLower(c.Data) == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// firstDescendant returns the first descendant element with the given
// (lowercase) tag name, or nil.
func firstDescendant(n *html.Node, name string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.ToLower(c.Data) == name {
			return c
		}
		if found := firstDescendant(c, name); found != nil {
			return found
		}
	}
	return nil
}

// firstDescendantWithClass returns the first descendant element
// carrying the given class token, or nil.
func firstDescendantWithClass(n *html.Node, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && hasClass(c, class) {
			return c
		}
		if found := firstDescendantWithClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

// titleAttr returns the node's own title attribute, or the first
// non-empty title attribute found among its descendants.
func titleAttr(n *html.Node) string {
	if t := attr(n, "title"); t != "" {
		return t
	}
	var walk func(*html.Node) string
	walk = func(n *html.Node) string {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				if t := attr(c, "title"); t != "" {
					return t
				}
			}
			if t := walk(c); t != "" {
				return t
			}
		}
		return ""
	}
	return walk(n)
}
