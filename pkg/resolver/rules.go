package resolver

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule pairs a match predicate with a title template. Rules are consulted
// top-to-bottom and the first one producing a title wins.
type Rule struct {
	Name  string
	Apply func(rawURL, host string) (string, bool)
}

var (
	statusPattern  = regexp.MustCompile(`/([^/]+)/status/`)
	arxivPattern   = regexp.MustCompile(`/(\d+\.\d+)`)
	githubPattern  = regexp.MustCompile(`github\.com/([^/]+/[^/]+)`)
	youtubePattern = regexp.MustCompile(`(?:v=|/)([a-zA-Z0-9_-]{11})`)
)

// platformRules handle URL shapes where a token in the path is more useful
// than anything a lookup table could say.
func platformRules() []Rule {
	return []Rule{
		{
			Name: "status-link",
			Apply: func(rawURL, host string) (string, bool) {
				if !strings.Contains(rawURL, "twitter.com") && !strings.Contains(rawURL, "x.com") {
					return "", false
				}
				if m := statusPattern.FindStringSubmatch(rawURL); m != nil {
					username := m[1]
					return fmt.Sprintf("%s — %s", username, statusCategoryFor(username)), true
				}
				return "Twitter Thread — AI Discussion", true
			},
		},
		{
			Name: "arxiv-paper",
			Apply: func(rawURL, host string) (string, bool) {
				if !strings.Contains(rawURL, "arxiv.org") {
					return "", false
				}
				if m := arxivPattern.FindStringSubmatch(rawURL); m != nil {
					return fmt.Sprintf("arXiv: Research Paper %s", m[1]), true
				}
				return "arXiv: Research Paper", true
			},
		},
		{
			Name: "github-repo",
			Apply: func(rawURL, host string) (string, bool) {
				if !strings.Contains(rawURL, "github.com") {
					return "", false
				}
				if m := githubPattern.FindStringSubmatch(rawURL); m != nil {
					return fmt.Sprintf("GitHub: %s", m[1]), true
				}
				return "GitHub Repository", true
			},
		},
		{
			Name: "youtube-video",
			Apply: func(rawURL, host string) (string, bool) {
				if !strings.Contains(rawURL, "youtube.com") && !strings.Contains(rawURL, "youtu.be") {
					return "", false
				}
				// The video id adds nothing human-readable, so the label is
				// fixed whether or not one is present.
				_ = youtubePattern.FindStringSubmatch(rawURL)
				return "YouTube: AI Video Content", true
			},
		},
	}
}

func curatedRule(patterns []pattern) Rule {
	return Rule{
		Name: "curated",
		Apply: func(rawURL, host string) (string, bool) {
			for _, p := range patterns {
				if strings.Contains(rawURL, p.match) {
					return p.title, true
				}
			}
			return "", false
		},
	}
}

func domainRule(labels []pattern) Rule {
	return Rule{
		Name: "domain-fallback",
		Apply: func(rawURL, host string) (string, bool) {
			for _, p := range labels {
				if strings.Contains(host, p.match) {
					return p.title, true
				}
			}
			return "", false
		},
	}
}

// pattern is the internal ordered-pair form both lookup tables reduce to.
type pattern struct {
	match string
	title string
}
