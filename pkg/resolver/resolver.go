// Package resolver turns raw URLs into human-readable display titles
// without touching the network. Resolution walks an ordered rule table:
// platform-specific token extraction, curated substring patterns, host
// label fallbacks, then a generic label derived from the cleaned host.
package resolver

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/opendisruption/weeklinks/models"
)

// MaxTitleLen is the display budget; longer titles are cut with an ellipsis.
const MaxTitleLen = 100

const genericLabel = "AI Resource"

type Resolver struct {
	rules []Rule
}

// New builds a resolver over the built-in tables.
func New() *Resolver {
	return NewWithRules(nil)
}

// NewWithRules builds a resolver with an optional overlay loaded from a
// rules file. Overlay entries are consulted before the built-in tables.
func NewWithRules(extra *models.RulesFile) *Resolver {
	var curated, domains []pattern
	if extra != nil {
		for _, c := range extra.Curated {
			curated = append(curated, pattern{match: c.Pattern, title: c.Title})
		}
		for _, d := range extra.Domains {
			domains = append(domains, pattern{match: d.Domain, title: d.Label})
		}
	}
	for _, c := range curatedPatterns {
		curated = append(curated, pattern{match: c.Pattern, title: c.Title})
	}
	for _, d := range domainFallbacks {
		domains = append(domains, pattern{match: d.Domain, title: d.Label})
	}

	rules := platformRules()
	rules = append(rules, curatedRule(curated), domainRule(domains))
	return &Resolver{rules: rules}
}

// Resolve returns a non-empty display title for rawURL. It never fails:
// anything unrecognized falls through to a generic domain-derived label.
func (r *Resolver) Resolve(rawURL string) string {
	title, _ := r.ResolveDetail(rawURL)
	return title
}

// ResolveDetail also reports which rule produced the title ("status-link",
// "arxiv-paper", "github-repo", "youtube-video", "curated",
// "domain-fallback", or "generic").
func (r *Resolver) ResolveDetail(rawURL string) (string, string) {
	host := hostOf(rawURL)
	for _, rule := range r.rules {
		if title, ok := rule.Apply(rawURL, host); ok {
			return Truncate(title, MaxTitleLen), rule.Name
		}
	}
	return Truncate(genericFallback(host), MaxTitleLen), "generic"
}

// hostOf extracts the lowercased host, or "" when the URL is unparsable.
func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Host)
}

// genericFallback derives a label from the cleaned host plus a category
// suffix chosen by TLD and keyword heuristics.
func genericFallback(host string) string {
	if host == "" {
		return genericLabel
	}

	clean := host
	clean = strings.ReplaceAll(clean, "www.", "")
	clean = strings.ReplaceAll(clean, ".com", "")
	clean = strings.ReplaceAll(clean, ".org", "")
	clean = strings.ReplaceAll(clean, ".edu", "")
	clean = strings.ReplaceAll(clean, ".ai", "")
	clean = titleCase(clean)

	switch {
	case strings.HasSuffix(host, ".ai"):
		return fmt.Sprintf("%s: AI Platform", clean)
	case strings.HasSuffix(host, ".edu"):
		return fmt.Sprintf("%s: Academic Research", clean)
	case strings.HasSuffix(host, ".org"):
		return fmt.Sprintf("%s: Research Organization", clean)
	case strings.Contains(host, "research") || strings.Contains(host, "lab"):
		return fmt.Sprintf("%s: Research Publication", clean)
	default:
		return fmt.Sprintf("%s: %s", clean, genericLabel)
	}
}

// titleCase uppercases the first letter of every alphabetic run, so
// "stable-diffusion-art" becomes "Stable-Diffusion-Art".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if isLetter && !prevLetter && r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
		prevLetter = isLetter
		b.WriteRune(r)
	}
	return b.String()
}

// Truncate cuts s to at most maxLen runes, ending in "..." when cut.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
