// Package output handles file naming and writing for adocpipe outputs.
// Single inputs get a flat name derived from the source; directory and
// site conversions mirror the source tree under the output directory,
// swapping the extension for the renderer's.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteFlat writes output for a single source under a flat filename.
// Example source: https://docs.example.com/intro → docs_example_com_intro.adoc
func (w *Writer) WriteFlat(source string, data []byte, ext string) (string, error) {
	name := filenameFromSource(source)
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteRelative writes output for directory mode, mirroring the input
// file's relative path with the output extension.
// Example: guides/intro.html → <out>/guides/intro.adoc
func (w *Writer) WriteRelative(relPath string, data []byte, ext string) (string, error) {
	base := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	fullPath := filepath.Join(w.OutputDir, base+ext)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// WriteTree writes output for site mode, mirroring the URL path
// structure. Example: https://site.com/docs/intro.html → <out>/docs/intro.adoc
func (w *Writer) WriteTree(rawURL string, data []byte, ext string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	urlPath := strings.TrimSuffix(parsed.Path, "/")
	if urlPath == "" || urlPath == "/" {
		urlPath = "/index"
	}
	urlPath = strings.TrimPrefix(urlPath, "/")
	// Drop the source extension so intro.html becomes intro.adoc.
	if e := filepath.Ext(urlPath); e != "" {
		urlPath = strings.TrimSuffix(urlPath, e)
	}

	return w.WriteRelative(urlPath+ext, data, ext)
}

// filenameFromSource converts a URL or path into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
func filenameFromSource(source string) string {
	parsed, err := url.Parse(source)
	if err != nil || parsed.Host == "" {
		base := filepath.Base(source)
		return sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		path = strings.TrimSuffix(path, filepath.Ext(path))
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
