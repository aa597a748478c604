// Package crawl discovers the pages of a documentation site for
// whole-site conversion. It tries sitemap.xml first and falls back to
// breadth-first link crawling, keeping discovery separate from the
// conversion pipeline.
package crawl

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/gopherdocs/adocpipe/core"
)

// DefaultMaxPages bounds the BFS crawl when no limit is configured.
const DefaultMaxPages = 200

// sitemapEntry holds a URL from a sitemap.xml.
type sitemapEntry struct {
	Loc string `xml:"loc"`
}

// sitemapIndex is the root element of a sitemap.xml.
type sitemapIndex struct {
	URLs []sitemapEntry `xml:"url"`
}

// Pages finds the documentation pages to convert starting from
// baseURL. The baseURL itself is always included. maxPages bounds the
// link crawl; values <= 0 use DefaultMaxPages.
func Pages(ctx context.Context, baseURL string, fetcher core.Fetcher, maxPages int) ([]string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	domain := parsed.Host

	sitemap := fmt.Sprintf("%s://%s/sitemap.xml", parsed.Scheme, domain)
	if urls, err := fromSitemap(ctx, sitemap, domain); err == nil && len(urls) > 0 {
		return urls, nil
	}

	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return fromLinks(ctx, baseURL, domain, fetcher, maxPages)
}

// fromSitemap fetches and parses sitemap.xml for same-domain page URLs.
func fromSitemap(ctx context.Context, sitemapURL, domain string) ([]string, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sitemap returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var sitemap sitemapIndex
	if err := xml.Unmarshal(body, &sitemap); err != nil {
		return nil, err
	}

	var urls []string
	for _, u := range sitemap.URLs {
		if IsPageURL(u.Loc, domain) {
			urls = append(urls, NormalizeURL(u.Loc))
		}
	}
	return urls, nil
}

// fromLinks performs BFS crawling to find same-domain pages.
func fromLinks(ctx context.Context, startURL, domain string, fetcher core.Fetcher, maxPages int) ([]string, error) {
	queue := NewQueue()
	queue.Add(NormalizeURL(startURL))

	for queue.HasNext() && queue.Visited() < maxPages {
		currentURL := queue.Next()

		result, err := fetcher.Fetch(ctx, currentURL)
		if err != nil {
			continue // Skip failed pages, don't block the crawl.
		}

		links, err := extractLinks(result.HTML, currentURL)
		if err != nil {
			continue
		}

		for _, link := range links {
			if IsPageURL(link, domain) {
				queue.Add(NormalizeURL(link))
			}
		}
	}

	return queue.All(), nil
}

// extractLinks extracts all href values from <a> tags, resolving
// relative URLs against the page URL.
func extractLinks(html, pageURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, _ := url.Parse(pageURL)
	var links []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		if resolved := resolveURL(href, base); resolved != "" {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	// Skip mailto, javascript, in-page anchors, etc.
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
