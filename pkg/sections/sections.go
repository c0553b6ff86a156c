// Package sections locates and rewrites the links section of a weekly
// markdown document without disturbing the rest of the file.
package sections

import (
	"errors"
	"regexp"
	"strings"
)

const LinksHeading = "## Links from Office Hours"

// newsHeadingText identifies the legacy section heading, which appears
// both bare ("## AI Industry News") and with a leading emoji in older
// weekly files.
const newsHeadingText = "AI Industry News"

func isLegacyHeading(line string) bool {
	return strings.HasPrefix(line, "## ") &&
		(strings.Contains(line, newsHeadingText) || strings.Contains(line, "📰"))
}

// Subtitle printed under the links heading on every rewrite.
const linksSubtitle = "*Presented in the order they were discussed during the episode*"

// ErrNoSection is returned when a document has no recognizable links
// section; callers must not mutate the document in that case.
var ErrNoSection = errors.New("no links section found")

var urlPattern = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]()]+`)

// ExtractURLs returns every URL found in free text, in order.
func ExtractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// ExtractSectionURLs returns the URLs between the links heading and the
// archive heading, in document order.
func ExtractSectionURLs(doc string) []string {
	var urls []string
	in := false
	for _, line := range strings.Split(doc, "\n") {
		switch {
		case strings.HasPrefix(line, LinksHeading) || isLegacyHeading(line):
			in = true
		case strings.HasPrefix(line, "## ") && in:
			return urls
		case in:
			urls = append(urls, ExtractURLs(line)...)
		}
	}
	return urls
}

// Replace swaps the links section body for the rendered link list. The
// region from the links (or legacy news) heading up to the next section
// heading is replaced; everything else passes through untouched. Returns
// ErrNoSection when neither heading exists.
func Replace(doc, rendered string) (string, error) {
	newSection := LinksHeading + "\n" + linksSubtitle + "\n\n" + rendered

	var out []string
	skipping := false
	replaced := false
	for _, line := range strings.Split(doc, "\n") {
		switch {
		case strings.HasPrefix(line, LinksHeading) || isLegacyHeading(line):
			skipping = true
			replaced = true
			out = append(out, newSection)
		case strings.HasPrefix(line, "## ") && skipping:
			skipping = false
			out = append(out, line)
		case skipping:
			// dropped: old section body
		default:
			out = append(out, line)
		}
	}

	if !replaced {
		return "", ErrNoSection
	}
	return strings.Join(out, "\n"), nil
}
