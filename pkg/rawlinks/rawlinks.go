// Package rawlinks parses the RAW_LINKS capture format: category headers,
// bare URLs, and double-quoted search topics jotted down during a show.
package rawlinks

import (
	"net/url"
	"strings"
)

// Categories recognized as section headers (case-insensitive, with a
// trailing colon).
var categories = map[string]bool{
	"HEADLINES": true,
	"GRAPHICS":  true,
	"LLMS":      true,
	"AGENTS":    true,
	"CODING":    true,
	"OTHER":     true,
	"LABOR":     true,
}

// Kind of a parsed item.
const (
	KindURL    = "url"
	KindSearch = "search"
)

// Item is one actionable line from a RAW_LINKS file.
type Item struct {
	URL      string
	Kind     string
	Category string
}

// Parse reads a RAW_LINKS document. Quoted lines become Google search
// URLs, URL lines are deduped in order, and filler lines ("xx", "---",
// blanks) are skipped. categoryFilter narrows output to one category
// when non-empty.
func Parse(content, categoryFilter string) (items []Item, searchTopics []string) {
	seen := make(map[string]bool)
	current := ""
	filter := strings.ToUpper(categoryFilter)

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		if strings.HasSuffix(line, ":") && categories[strings.ToUpper(strings.TrimSuffix(line, ":"))] {
			current = strings.ToUpper(strings.TrimSuffix(line, ":"))
			continue
		}
		if line == "" || strings.EqualFold(line, "xx") || line == "---" {
			continue
		}
		if filter != "" && current != filter {
			continue
		}

		if strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`) && len(line) > 2 {
			topic := strings.TrimSpace(line[1 : len(line)-1])
			if topic == "" {
				continue
			}
			searchTopics = append(searchTopics, topic)
			items = append(items, Item{
				URL:      "https://www.google.com/search?q=" + url.QueryEscape(topic),
				Kind:     KindSearch,
				Category: current,
			})
			continue
		}

		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			if seen[line] {
				continue
			}
			seen[line] = true
			items = append(items, Item{URL: line, Kind: KindURL, Category: current})
		}
	}
	return items, searchTopics
}

// URLs returns just the direct URLs from a parsed item list, search
// entries excluded.
func URLs(items []Item) []string {
	var urls []string
	for _, it := range items {
		if it.Kind == KindURL {
			urls = append(urls, it.URL)
		}
	}
	return urls
}
