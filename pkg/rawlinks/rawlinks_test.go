package rawlinks

import "testing"

const sample = `HEADLINES:
https://example.com/story-one
https://example.com/story-two
xx

LLMS:
https://example.com/story-one
"gemini 3 benchmarks"
---
https://arxiv.org/abs/2510.18212
`

func TestParse(t *testing.T) {
	items, topics := Parse(sample, "")

	if len(topics) != 1 || topics[0] != "gemini 3 benchmarks" {
		t.Errorf("topics = %v", topics)
	}

	urls := URLs(items)
	want := []string{
		"https://example.com/story-one",
		"https://example.com/story-two",
		"https://arxiv.org/abs/2510.18212",
	}
	if len(urls) != len(want) {
		t.Fatalf("urls = %v, want %v", urls, want)
	}
	for i := range urls {
		if urls[i] != want[i] {
			t.Errorf("url[%d] = %q, want %q", i, urls[i], want[i])
		}
	}

	// The quoted topic shows up as a search item with an escaped query.
	var search *Item
	for i := range items {
		if items[i].Kind == KindSearch {
			search = &items[i]
		}
	}
	if search == nil {
		t.Fatal("no search item parsed")
	}
	if search.URL != "https://www.google.com/search?q=gemini+3+benchmarks" {
		t.Errorf("search URL = %q", search.URL)
	}
	if search.Category != "LLMS" {
		t.Errorf("search category = %q", search.Category)
	}
}

func TestParseDuplicateURLsDropped(t *testing.T) {
	items, _ := Parse(sample, "")
	count := 0
	for _, it := range items {
		if it.URL == "https://example.com/story-one" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate URL kept %d times, want 1", count)
	}
}

func TestParseCategoryFilter(t *testing.T) {
	items, _ := Parse(sample, "headlines")
	urls := URLs(items)
	if len(urls) != 2 {
		t.Fatalf("filtered urls = %v, want 2 HEADLINES entries", urls)
	}
	for _, it := range items {
		if it.Category != "HEADLINES" {
			t.Errorf("item %q in category %q", it.URL, it.Category)
		}
	}
}

func TestParseIgnoresFiller(t *testing.T) {
	items, topics := Parse("xx\n---\n\nnot a url line\n", "")
	if len(items) != 0 || len(topics) != 0 {
		t.Errorf("filler produced items=%v topics=%v", items, topics)
	}
}
