// Package scan discovers HTML documents on the local filesystem.
// It walks a directory tree and returns the HTML files to convert,
// keeping input discovery separate from the conversion pipeline.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// htmlExtensions are the input file extensions the pipeline accepts.
var htmlExtensions = map[string]bool{
	".html":  true,
	".htm":   true,
	".xhtml": true,
}

// IsHTMLFile reports whether the path has an HTML file extension.
func IsHTMLFile(path string) bool {
	return htmlExtensions[strings.ToLower(filepath.Ext(path))]
}

// HTMLFiles walks root and returns the relative paths of all HTML
// files beneath it, sorted for a stable processing order.
func HTMLFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsHTMLFile(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}
