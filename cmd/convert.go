// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// read/fetch → extract → render → write.
//
// It handles flag validation, renderer selection, and the three input
// modes (single file, directory tree, site URL).
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gopherdocs/adocpipe/core"
	"github.com/gopherdocs/adocpipe/core/extract"
	"github.com/gopherdocs/adocpipe/core/fetch"
	"github.com/gopherdocs/adocpipe/core/output"
	"github.com/gopherdocs/adocpipe/core/render"
	"github.com/gopherdocs/adocpipe/core/scan"
	"github.com/gopherdocs/adocpipe/crawl"
)

// Flag variables.
var (
	flagAll      bool
	flagAdoc     bool
	flagMarkdown bool
	flagPDF      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <path|url>",
	Short: "Convert rendered HTML documentation to AsciiDoc",
	Long: `Convert reads rendered HTML documentation, isolates the main content of
each page, and converts it to AsciiDoc (or Markdown/PDF).

The argument may be a single HTML file, a directory tree of rendered pages,
or a documentation site URL. With --all, a URL is expanded to every page of
the site via sitemap.xml or link crawling.

Examples:
  adocpipe convert site/index.html
  adocpipe convert ./rendered-docs --output_dir ./src
  adocpipe convert https://docs.example.com --all
  adocpipe convert https://docs.example.com/intro.html --markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&flagAll, "all", false, "Convert all discovered site pages (URL input only)")

	// Output format flags (mutually exclusive, AsciiDoc is the default).
	convertCmd.Flags().BoolVar(&flagAdoc, "adoc", false, "Output AsciiDoc (default)")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	convertCmd.Flags().String("output_dir", "", "Output directory (default: current directory)")
	convertCmd.Flags().String("selector", "", "CSS selector of the main content container")
	convertCmd.Flags().Int("max_pages", crawl.DefaultMaxPages, "Page limit for --all crawling")

	viper.BindPFlag("output_dir", convertCmd.Flags().Lookup("output_dir"))
	viper.BindPFlag("selector", convertCmd.Flags().Lookup("selector"))
	viper.BindPFlag("max_pages", convertCmd.Flags().Lookup("max_pages"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	extractor := extract.New(viper.GetString("selector"))

	writer, err := output.New(viper.GetString("output_dir"))
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()

	if info, err := os.Stat(source); err == nil {
		if flagAll {
			return fmt.Errorf("--all applies to URL input only")
		}
		if info.IsDir() {
			return runDir(source, extractor, renderer, writer)
		}
		return runFile(source, extractor, renderer, writer)
	}

	parsed, err := url.Parse(source)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("input %s is neither an existing path nor a URL with a scheme", source)
	}

	fetcher := fetch.New()
	if flagAll {
		return runSite(ctx, source, fetcher, extractor, renderer, writer)
	}
	return runURL(ctx, source, fetcher, extractor, renderer, writer)
}

// runFile converts a single local HTML file.
func runFile(path string, extractor core.Extractor, renderer core.Renderer, writer *output.Writer) error {
	data, err := convertDocument(path, readFile(path), extractor, renderer)
	if err != nil {
		return err
	}

	outPath, err := writer.WriteFlat(path, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", outPath)
	return nil
}

// runDir converts every HTML file under root, mirroring the tree into
// the output directory. A failed document is reported and skipped so
// one bad page never aborts the batch.
func runDir(root string, extractor core.Extractor, renderer core.Renderer, writer *output.Writer) error {
	files, err := scan.HTMLFiles(root)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no HTML files under %s", root)
	}

	fmt.Fprintf(os.Stdout, "Found %d pages to process\n", len(files))

	var errCount int
	for i, rel := range files {
		fmt.Fprintf(os.Stdout, "[%d/%d] Processing %s\n", i+1, len(files), rel)

		path := filepath.Join(root, rel)
		data, err := convertDocument(path, readFile(path), extractor, renderer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		outPath, err := writer.WriteRelative(rel, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", outPath)
	}

	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "\n%d/%d pages failed\n", errCount, len(files))
	}
	return nil
}

// runURL converts a single fetched page.
func runURL(ctx context.Context, rawURL string, fetcher core.Fetcher, extractor core.Extractor, renderer core.Renderer, writer *output.Writer) error {
	result, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	data, err := convertDocument(rawURL, stringSource(result.HTML), extractor, renderer)
	if err != nil {
		return err
	}

	outPath, err := writer.WriteFlat(rawURL, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", outPath)
	return nil
}

// runSite discovers all site pages and converts each, mirroring URL
// paths into the output directory.
func runSite(ctx context.Context, rawURL string, fetcher core.Fetcher, extractor core.Extractor, renderer core.Renderer, writer *output.Writer) error {
	fmt.Fprintf(os.Stdout, "Discovering pages from %s...\n", rawURL)

	urls, err := crawl.Pages(ctx, rawURL, fetcher, viper.GetInt("max_pages"))
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Found %d pages to process\n", len(urls))

	var errCount int
	for i, pageURL := range urls {
		fmt.Fprintf(os.Stdout, "[%d/%d] Processing %s\n", i+1, len(urls), pageURL)

		result, err := fetcher.Fetch(ctx, pageURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		data, err := convertDocument(pageURL, stringSource(result.HTML), extractor, renderer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		outPath, err := writer.WriteTree(pageURL, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", outPath)
	}

	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "\n%d/%d pages failed\n", errCount, len(urls))
	}
	return nil
}

// htmlSource supplies a document's raw HTML; it lets the file and URL
// paths share convertDocument.
type htmlSource func() (string, error)

func readFile(path string) htmlSource {
	return func() (string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}
}

func stringSource(html string) htmlSource {
	return func() (string, error) { return html, nil }
}

// convertDocument runs one document through extract → render.
func convertDocument(source string, src htmlSource, extractor core.Extractor, renderer core.Renderer) ([]byte, error) {
	raw, err := src()
	if err != nil {
		return nil, err
	}

	fragment, err := extractor.Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	meta := core.DocMetadata{
		Source:      source,
		Title:       extract.Title(raw),
		ConvertedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := renderer.Render(fragment, meta)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// selectRenderer creates the appropriate Renderer based on flags.
// Exactly one format may be chosen; none means AsciiDoc.
func selectRenderer() (core.Renderer, error) {
	count := 0
	for _, f := range []bool{flagAdoc, flagMarkdown, flagPDF} {
		if f {
			count++
		}
	}
	if count > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", count)
	}

	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewAsciiDocRenderer(), nil
	}
}
