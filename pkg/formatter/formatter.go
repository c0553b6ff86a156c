// Package formatter turns an ordered URL batch into markdown link entries.
// Titles come from the pattern resolver, optionally upgraded by metadata
// enrichment; a failure on one URL never stops the batch.
package formatter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/opendisruption/weeklinks/pkg/enricher"
	"github.com/opendisruption/weeklinks/pkg/resolver"
	"github.com/opendisruption/weeklinks/pkg/tweets"
)

// Title provenance recorded on each entry.
const (
	SourceResolver = "resolver"
	SourceEnriched = "enriched"
	SourceTweet    = "tweet"
	SourceCache    = "cache"
)

// TitleCache lets repeat runs skip the network. Implementations may be
// nil-safe absent; the formatter treats a nil cache as disabled.
type TitleCache interface {
	Get(url string, maxAge time.Duration) (title, source string, ok bool)
	Put(url, title, source, status string) error
}

// Entry is one formatted link.
type Entry struct {
	URL    string
	Title  string
	Source string
}

type Formatter struct {
	resolver *resolver.Resolver
	policy   *enricher.Policy
	enricher *enricher.Enricher
	tweets   *tweets.Scraper
	cache    TitleCache
	logger   *slog.Logger

	enrich bool
	delay  time.Duration
	maxAge time.Duration
}

// Config wires a Formatter. Resolver and Logger are required; the rest is
// only needed when Enrich is set.
type Config struct {
	Resolver *resolver.Resolver
	Policy   *enricher.Policy
	Enricher *enricher.Enricher
	Tweets   *tweets.Scraper
	Cache    TitleCache
	Logger   *slog.Logger

	Enrich bool
	Delay  time.Duration
	MaxAge time.Duration
}

func New(cfg Config) *Formatter {
	return &Formatter{
		resolver: cfg.Resolver,
		policy:   cfg.Policy,
		enricher: cfg.Enricher,
		tweets:   cfg.Tweets,
		cache:    cfg.Cache,
		logger:   cfg.Logger,
		enrich:   cfg.Enrich,
		delay:    cfg.Delay,
		maxAge:   cfg.MaxAge,
	}
}

// Dedupe drops repeated URLs, keeping the first occurrence in place.
func Dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		unique = append(unique, u)
	}
	return unique
}

// FormatBatch resolves a title for each unique URL in order. Processing is
// sequential with a fixed politeness delay after each networked lookup.
func (f *Formatter) FormatBatch(ctx context.Context, urls []string) []Entry {
	unique := Dedupe(urls)
	entries := make([]Entry, 0, len(unique))

	for i, u := range unique {
		title, source, fetched := f.title(ctx, u)
		entries = append(entries, Entry{URL: u, Title: title, Source: source})
		f.logger.Info("resolved title", "url", u, "title", title, "source", source)

		// The sleep throttles every attempted fetch, not just the ones
		// that produced a title.
		if fetched && f.delay > 0 && i < len(unique)-1 {
			time.Sleep(f.delay)
		}
	}
	return entries
}

// title runs the resolution pipeline for one URL. The pattern resolver's
// answer is the floor; enrichment only ever improves on it. The third
// return reports whether a network fetch was attempted.
func (f *Formatter) title(ctx context.Context, rawURL string) (string, string, bool) {
	resolved, rule := f.resolver.ResolveDetail(rawURL)
	if !f.enrich {
		return resolved, SourceResolver, false
	}

	if f.cache != nil {
		if title, source, ok := f.cache.Get(rawURL, f.maxAge); ok {
			return title, source, false
		}
	}

	// Status links are deny-listed from generic enrichment but have their
	// own scraper.
	if tweets.IsStatusLink(rawURL) && f.tweets != nil {
		if title := f.tweets.Title(ctx, rawURL, true); strings.Contains(title, " — ") {
			f.put(rawURL, title, SourceTweet)
			return title, SourceTweet, true
		}
		return resolved, SourceResolver, true
	}

	// Hand-curated titles beat anything a page could say about itself.
	if rule == "curated" {
		return resolved, SourceResolver, false
	}

	if f.policy == nil || f.enricher == nil || !f.policy.ShouldEnrich(rawURL) {
		return resolved, SourceResolver, false
	}

	meta := f.enricher.Fetch(ctx, rawURL)
	if !meta.Usable() {
		f.logger.Warn("enrichment failed, using fallback", "url", rawURL, "status", meta.Status)
		return resolved, SourceResolver, true
	}
	f.logger.Info("page metadata",
		"url", rawURL,
		"site_name", meta.SiteName,
		"author", meta.Author,
		"image", meta.Image,
		"language", meta.Language,
		"language_confidence", meta.LanguageConfidence,
		"description", meta.Description)
	f.put(rawURL, meta.Title, SourceEnriched)
	return meta.Title, SourceEnriched, true
}

func (f *Formatter) put(url, title, source string) {
	if f.cache == nil {
		return
	}
	if err := f.cache.Put(url, title, source, "success"); err != nil {
		f.logger.Warn("failed to cache title", "url", url, "error", err)
	}
}

// Render produces the markdown bullet list for a batch.
func Render(entries []Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf(
			`- <a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`, e.URL, e.Title))
	}
	return strings.Join(lines, "\n")
}
