package enricher

import (
	"strings"
	"testing"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "site name suffix stripped",
			title: "Great Article | Home of Example",
			want:  "Great Article",
		},
		{
			name:  "welcome suffix stripped",
			title: "Launch Post - Welcome to Our Blog",
			want:  "Launch Post",
		},
		{
			name:  "trailing domain stripped",
			title: "Research Update - example.com news",
			want:  "Research Update",
		},
		{
			name:  "separators unified to em dash",
			title: "Part One - Part Two",
			want:  "Part One — Part Two",
		},
		{
			name:  "whitespace collapsed",
			title: "Too   many\t spaces",
			want:  "Too many spaces",
		},
		{
			name:  "already clean",
			title: "Nothing To Do Here",
			want:  "Nothing To Do Here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.title); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestCleanTitleTruncates(t *testing.T) {
	got := CleanTitle(strings.Repeat("word ", 40))
	if len([]rune(got)) > 100 {
		t.Errorf("cleaned title too long: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long title not ellipsized: %q", got)
	}
}

func TestIsGenericTitle(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		domain string
		want   bool
	}{
		{"title equals cleaned domain", "example", "www.example.com", true},
		{"short title", "Hi there", "example.com", true},
		{"substantial title", "A Detailed Look at Something", "example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isGenericTitle(tt.title, tt.domain); got != tt.want {
				t.Errorf("isGenericTitle(%q, %q) = %v, want %v", tt.title, tt.domain, got, tt.want)
			}
		})
	}
}
