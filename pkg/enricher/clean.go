package enricher

import (
	"regexp"
	"strings"

	"github.com/opendisruption/weeklinks/pkg/resolver"
)

var (
	siteNameSuffix = regexp.MustCompile(`(?i)\s*[-|]\s*(Home|Welcome|Official).*$`)
	domainSuffix   = regexp.MustCompile(`(?i)\s*[-|]\s*.*\.(com|org|edu|ai).*$`)
	separators     = regexp.MustCompile(`\s*[-|]\s*`)
	whitespace     = regexp.MustCompile(`\s+`)
)

// CleanTitle normalizes a scraped page title: strips site-name and
// trailing-domain suffixes, unifies separators, collapses whitespace, and
// enforces the display budget.
func CleanTitle(title string) string {
	title = siteNameSuffix.ReplaceAllString(title, "")
	title = domainSuffix.ReplaceAllString(title, "")
	title = separators.ReplaceAllString(title, " — ")
	title = whitespace.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	return resolver.Truncate(title, resolver.MaxTitleLen)
}

// cleanedDomain reduces a host to its bare name for the "title is just the
// site name" check.
func cleanedDomain(domain string) string {
	clean := domain
	clean = strings.ReplaceAll(clean, "www.", "")
	clean = strings.ReplaceAll(clean, ".com", "")
	clean = strings.ReplaceAll(clean, ".org", "")
	clean = strings.ReplaceAll(clean, ".edu", "")
	clean = strings.ReplaceAll(clean, ".ai", "")
	return clean
}

// isGenericTitle reports whether a title says nothing beyond the host name.
func isGenericTitle(title, domain string) bool {
	if len([]rune(title)) < 10 {
		return true
	}
	return strings.EqualFold(title, cleanedDomain(domain))
}
