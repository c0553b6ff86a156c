// Package tweets builds display titles for status links. When scraping is
// enabled it pulls the post text out of the page's meta tags; otherwise
// titles fall back to the account's display name.
package tweets

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultTimeout is longer than regular enrichment; status pages
	// redirect a lot before settling.
	DefaultTimeout = 10 * time.Second

	maxReadBytes = 64 * 1024
	maxTextLen   = 200
	maxTitleText = 60
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	statusPattern   = regexp.MustCompile(`/([^/]+)/status/`)
	trailingLinkRe  = regexp.MustCompile(`\s+https?://\S+$`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

type Scraper struct {
	client  *http.Client
	timeout time.Duration
}

func NewScraper(timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scraper{client: &http.Client{}, timeout: timeout}
}

// IsStatusLink reports whether rawURL points at a social status page.
func IsStatusLink(rawURL string) bool {
	return strings.Contains(rawURL, "twitter.com") || strings.Contains(rawURL, "x.com")
}

// Title builds a display title for a status link. With scraping enabled a
// successful fetch yields "DisplayName — post text..."; any failure
// degrades to the bare display name.
func (s *Scraper) Title(ctx context.Context, rawURL string, scrape bool) string {
	m := statusPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "Twitter Thread"
	}
	display := FormatUsername(m[1])

	if !scrape {
		return display
	}
	text := s.ScrapeText(ctx, rawURL)
	if text == "" {
		return display
	}

	if len([]rune(text)) > maxTitleText {
		cut := string([]rune(text)[:maxTitleText])
		// Break on a word boundary so the ellipsis doesn't split a word.
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
		text = cut + "..."
	}
	return display + " — " + text
}

// ScrapeText fetches a status page and extracts the post text, or ""
// when anything goes wrong.
func (s *Scraper) ScrapeText(ctx context.Context, rawURL string) string {
	if !IsStatusLink(rawURL) {
		return ""
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReadBytes))
	if err != nil {
		return ""
	}
	return ExtractText(body)
}

// ExtractText pulls post text from a status page document: description
// meta cards first, then embedded structured data.
func ExtractText(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	text, _ := doc.Find(`meta[property="og:description"]`).First().Attr("content")
	text = strings.TrimSpace(text)
	if text == "" {
		text, _ = doc.Find(`meta[name="twitter:description"]`).First().Attr("content")
		text = strings.TrimSpace(text)
	}
	if text == "" {
		doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, sel *goquery.Selection) bool {
			var data map[string]any
			if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
				return true
			}
			for _, key := range []string{"text", "description", "headline", "name"} {
				if v, ok := data[key].(string); ok && strings.TrimSpace(v) != "" {
					text = strings.TrimSpace(v)
					return false
				}
			}
			return true
		})
	}
	if text == "" {
		return ""
	}

	text = whitespaceRunRe.ReplaceAllString(text, " ")
	text = trailingLinkRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	if len([]rune(text)) > maxTextLen {
		text = string([]rune(text)[:maxTextLen-3]) + "..."
	}
	if len([]rune(text)) <= 10 {
		return ""
	}
	return text
}
