// Package post applies the textual fixups that turn raw converter
// output into final AsciiDoc: blank-line collapsing, internal link
// extension rewriting, and document title enforcement. These run
// outside the converter so its per-tag output stays exact.
package post

import (
	"regexp"
	"strings"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// linkExtensions rewrites internal cross-references so converted
// documents point at each other's AsciiDoc sources.
var linkExtensions = strings.NewReplacer(
	".html[", ".adoc[",
	".html#", ".adoc#",
)

// Process applies all fixups in order.
func Process(doc, title string) string {
	doc = CollapseBlankLines(doc)
	doc = RewriteLinks(doc)
	return EnsureTitle(doc, title)
}

// CollapseBlankLines reduces runs of three or more newlines to exactly
// two, leaving at most one blank line between blocks.
func CollapseBlankLines(doc string) string {
	return blankRuns.ReplaceAllString(doc, "\n\n")
}

// RewriteLinks rewrites .html link targets to .adoc, both plain
// targets and targets carrying fragments.
func RewriteLinks(doc string) string {
	return linkExtensions.Replace(doc)
}

// EnsureTitle makes `= <title>` the first line of the document. An
// existing document title produced by an h1 is replaced; otherwise the
// title line is prepended. An empty title leaves the document alone.
func EnsureTitle(doc, title string) string {
	if title == "" {
		return doc
	}
	heading := "= " + title
	rest := strings.TrimLeft(doc, "\n")
	if strings.HasPrefix(rest, "= ") {
		if idx := strings.Index(rest, "\n"); idx != -1 {
			return heading + rest[idx:]
		}
		return heading + "\n"
	}
	return heading + "\n\n" + doc
}
