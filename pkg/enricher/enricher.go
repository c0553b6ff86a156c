// Package enricher fetches page metadata for eligible URLs. It is strictly
// best-effort: every failure mode degrades to a status the caller can
// ignore, and only a bounded prefix of each page is ever read.
package enricher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/opendisruption/weeklinks/models"
)

const (
	// maxReadBytes bounds how much of a response body is read. Meta tags
	// live in the head, so 16 KB is plenty.
	maxReadBytes = 16 * 1024

	DefaultTimeout  = 5 * time.Second
	slowHostTimeout = 8 * time.Second

	maxAttempts = 2
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// slowHosts are company blogs that routinely need more than the default
// timeout to start responding.
var slowHosts = []string{"openai.com", "anthropic.com", "google.com", "deepmind.google"}

type Enricher struct {
	client   *http.Client
	timeout  time.Duration
	detector lingua.LanguageDetector

	// retryPause separates timeout retries; tests shrink it.
	retryPause time.Duration
}

// New builds an enricher with the given per-request timeout.
func New(timeout time.Duration) *Enricher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English, lingua.Spanish, lingua.French, lingua.German,
			lingua.Chinese, lingua.Japanese,
		).
		Build()
	return &Enricher{
		client:     &http.Client{},
		timeout:    timeout,
		detector:   detector,
		retryPause: time.Second,
	}
}

// Fetch attempts to extract metadata for rawURL. It never returns an
// error; the Status field records what happened and Usable() tells the
// caller whether the title is worth substituting.
func (e *Enricher) Fetch(ctx context.Context, rawURL string) *models.ExtractedMetadata {
	meta := &models.ExtractedMetadata{Status: models.StatusUnknown}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return meta
	}
	meta.Domain = strings.ToLower(parsed.Host)

	timeout := e.timeout
	for _, host := range slowHosts {
		if strings.Contains(meta.Domain, host) && timeout < slowHostTimeout {
			timeout = slowHostTimeout
		}
	}

	// HEAD probe first so obviously dead pages never cost a GET.
	if status, err := e.head(ctx, rawURL, timeout); err != nil {
		meta.Status = classifyNetError(err)
		return meta
	} else if status != http.StatusOK {
		meta.Status = fmt.Sprintf("head_error_%d", status)
		return meta
	}

	body, status, err := e.get(ctx, rawURL, timeout)
	if err != nil {
		meta.Status = classifyNetError(err)
		return meta
	}
	if status != http.StatusOK {
		meta.Status = fmt.Sprintf("http_error_%d", status)
		return meta
	}

	e.extract(meta, parsed, body)
	meta.Status = models.StatusSuccess
	return meta
}

func (e *Enricher) head(ctx context.Context, rawURL string, timeout time.Duration) (int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, rawURL, nil)
	if err != nil {
		return 0, err
	}
	setHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// get fetches up to maxReadBytes of the page, retrying once on timeout.
func (e *Enricher) get(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, int, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(e.retryPause)
		}

		body, status, err := e.getOnce(ctx, rawURL, timeout)
		if err == nil {
			return body, status, nil
		}
		lastErr = err
		if !isTimeout(err) {
			break
		}
	}
	return nil, 0, lastErr
}

func (e *Enricher) getOnce(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	setHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReadBytes))
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

func setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
}

// extract pulls the title and supplementary fields out of a partial HTML
// document. Sources are tried in priority order; the page may be cut off
// mid-body so everything tolerates truncation.
func (e *Enricher) extract(meta *models.ExtractedMetadata, pageURL *url.URL, body []byte) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return
	}

	title := metaContent(doc, `meta[property="og:title"]`)
	if title == "" {
		title = metaContent(doc, `meta[name="twitter:title"]`)
	}
	if title == "" {
		title = jsonLDTitle(doc)
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	desc := metaContent(doc, `meta[name="description"]`)
	if desc == "" {
		desc = metaContent(doc, `meta[property="og:description"]`)
	}

	if title != "" {
		title = CleanTitle(title)
	}
	// A title that just repeats the site name is worse than a substantial
	// description.
	if isGenericTitle(title, meta.Domain) && len([]rune(desc)) > 20 {
		title = resolverBudget(desc)
	}

	meta.Title = title
	meta.Description = strings.TrimSpace(desc)

	// Article-level fields via readability; a truncated document still
	// carries its head metadata.
	parser := readability.NewParser()
	if article, err := parser.Parse(bytes.NewReader(body), pageURL); err == nil {
		if meta.Description == "" {
			meta.Description = strings.TrimSpace(article.Excerpt)
		}
		meta.SiteName = article.SiteName
		meta.Author = article.Byline
		meta.Image = article.Image
	}

	e.detectLanguage(meta)
}

// resolverBudget truncates a description used as a title to 80 runes.
func resolverBudget(desc string) string {
	runes := []rune(strings.TrimSpace(desc))
	if len(runes) > 80 {
		return string(runes[:80]) + "..."
	}
	return string(runes)
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// jsonLDTitle scans embedded structured data for a headline-like field.
func jsonLDTitle(doc *goquery.Document) string {
	var title string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		var data map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		for _, key := range []string{"headline", "name", "title"} {
			if v, ok := data[key].(string); ok && strings.TrimSpace(v) != "" {
				title = strings.TrimSpace(v)
				return false
			}
		}
		return true
	})
	return title
}

func (e *Enricher) detectLanguage(meta *models.ExtractedMetadata) {
	text := strings.TrimSpace(meta.Title + " " + meta.Description)
	if text == "" {
		return
	}
	lang, ok := e.detector.DetectLanguageOf(text)
	if !ok {
		return
	}
	meta.Language = strings.ToLower(lang.IsoCode639_1().String())
	meta.LanguageConfidence = e.detector.ComputeLanguageConfidence(text, lang)
}

func classifyNetError(err error) string {
	if isTimeout(err) {
		return models.StatusTimeout
	}
	return models.StatusConnectionError
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
