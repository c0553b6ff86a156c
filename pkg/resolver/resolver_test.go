package resolver

import (
	"strings"
	"testing"

	"github.com/opendisruption/weeklinks/models"
)

func TestResolvePlatformShapes(t *testing.T) {
	r := New()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "github owner/repo",
			url:  "https://github.com/foo/bar",
			want: "GitHub: foo/bar",
		},
		{
			name: "github repo with deep path keeps owner/repo",
			url:  "https://github.com/foo/bar/tree/main/docs",
			want: "GitHub: foo/bar",
		},
		{
			name: "github without repo",
			url:  "https://github.com",
			want: "GitHub Repository",
		},
		{
			name: "arxiv abs paper",
			url:  "https://arxiv.org/abs/2510.18212",
			want: "arXiv: Research Paper 2510.18212",
		},
		{
			name: "arxiv pdf paper",
			url:  "https://arxiv.org/pdf/2409.01234",
			want: "arXiv: Research Paper 2409.01234",
		},
		{
			name: "arxiv without id",
			url:  "https://arxiv.org/list/cs.AI/recent",
			want: "arXiv: Research Paper",
		},
		{
			name: "status link with known industry account",
			url:  "https://x.com/karpathy/status/18446744073",
			want: "karpathy — AI Industry Insight",
		},
		{
			name: "status link with known product account",
			url:  "https://twitter.com/claudeai/status/123",
			want: "claudeai — AI Product Update",
		},
		{
			name: "status link with unknown account",
			url:  "https://x.com/somebody/status/456",
			want: "somebody — AI Discussion",
		},
		{
			name: "twitter link without status shape",
			url:  "https://twitter.com/home",
			want: "Twitter Thread — AI Discussion",
		},
		{
			name: "youtube watch link",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "YouTube: AI Video Content",
		},
		{
			name: "youtu.be short link",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "YouTube: AI Video Content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.url); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestResolveTables(t *testing.T) {
	r := New()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "curated pattern wins over domain fallback",
			url:  "https://www.anthropic.com/news/skills",
			want: "Anthropic: Agent Skills Announcement",
		},
		{
			name: "domain fallback when no curated pattern",
			url:  "https://www.anthropic.com/careers",
			want: "Anthropic",
		},
		{
			name: "curated substring anywhere in URL",
			url:  "https://publish.obsidian.md/vg-layoffs/Archive/2025/October",
			want: "Obsidian: Layoffs Archive 2025",
		},
		{
			name: "generic org suffix",
			url:  "https://example.org/page",
			want: "Example: Research Organization",
		},
		{
			name: "generic edu suffix",
			url:  "https://unknown-school.edu/dept",
			want: "Unknown-School: Academic Research",
		},
		{
			name: "generic ai suffix",
			url:  "https://shiny-new.ai/launch",
			want: "Shiny-New: AI Platform",
		},
		{
			name: "research keyword host",
			url:  "https://airesearchhub.net/papers",
			want: "Airesearchhub.Net: Research Publication",
		},
		{
			name: "plain commercial host",
			url:  "https://example.com/page",
			want: "Example: AI Resource",
		},
		{
			name: "empty host",
			url:  "not-a-url",
			want: "AI Resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.url); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := New()
	urls := []string{
		"https://github.com/foo/bar",
		"https://x.com/karpathy/status/1",
		"https://totally-unknown.io/thing",
	}
	for _, u := range urls {
		first := r.Resolve(u)
		second := r.Resolve(u)
		if first != second {
			t.Errorf("Resolve(%q) not stable: %q then %q", u, first, second)
		}
		if first == "" {
			t.Errorf("Resolve(%q) returned empty title", u)
		}
	}
}

func TestResolveTruncatesLongTitles(t *testing.T) {
	extra := &models.RulesFile{
		Curated: []models.CuratedPattern{
			{Pattern: "longtitle.test", Title: strings.Repeat("x", 150)},
		},
	}
	r := NewWithRules(extra)

	got := r.Resolve("https://longtitle.test/page")
	if len([]rune(got)) != MaxTitleLen {
		t.Errorf("truncated title length = %d, want %d", len([]rune(got)), MaxTitleLen)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated title %q missing ellipsis", got)
	}
}

func TestRulesFileOverlayWins(t *testing.T) {
	extra := &models.RulesFile{
		Curated: []models.CuratedPattern{
			{Pattern: "anthropic.com/news/skills", Title: "Custom Override"},
		},
		Domains: []models.DomainLabel{
			{Domain: "example.com", Label: "Example Site"},
		},
	}
	r := NewWithRules(extra)

	if got := r.Resolve("https://www.anthropic.com/news/skills"); got != "Custom Override" {
		t.Errorf("overlay curated pattern: got %q", got)
	}
	if got := r.Resolve("https://example.com/anything"); got != "Example Site" {
		t.Errorf("overlay domain label: got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	long := strings.Repeat("a", 101)
	got := Truncate(long, 100)
	if got != strings.Repeat("a", 97)+"..." {
		t.Errorf("Truncate long = %q", got)
	}
}
