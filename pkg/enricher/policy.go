package enricher

import (
	"net/url"
	"strings"
)

// safeDomains are hosts expected to serve useful, stable metadata:
// academic publishers, research institutions, AI companies, and the tech
// press. Enrichment is limited to these plus the heuristic classes below.
var safeDomains = []string{
	// Academic & research
	"arxiv.org", "scholar.google.com", "paperswithcode.com",
	"neurips.cc", "icml.cc", "iclr.cc", "aaai.org", "acm.org", "ieee.org",
	"nature.com", "science.org", "cell.com", "springer.com", "elsevier.com",
	// Universities & research institutions
	"mit.edu", "stanford.edu", "berkeley.edu", "cmu.edu", "yale.edu",
	"harvard.edu", "princeton.edu", "caltech.edu", "oxford.edu",
	"cambridge.edu", "brookings.edu", "rand.org", "nber.org",
	// AI companies & labs
	"openai.com", "anthropic.com", "deepmind.google", "google.com",
	"blog.google", "cloud.google.com", "pair.withgoogle.com",
	"research.google", "ai.google", "huggingface.co", "stability.ai",
	"midjourney.com", "runwayml.com", "replicate.com", "together.ai",
	"cohere.ai", "mistral.ai", "perplexity.ai", "claude.ai", "chatgpt.com",
	// Tech platforms
	"github.com", "gitlab.com", "bitbucket.org", "stackoverflow.com",
	"stackexchange.com", "dev.to", "medium.com", "substack.com",
	// News & media, tech/AI focused
	"techcrunch.com", "theverge.com", "wired.com", "reuters.com",
	"bloomberg.com", "wsj.com", "nytimes.com", "washingtonpost.com",
	"fortune.com", "forbes.com", "venturebeat.com",
	"artificialintelligence-news.com", "zdnet.com", "cnet.com",
	"engadget.com", "arstechnica.com", "slashdot.org",
}

// avoidDomains are social and video platforms whose titles are unreliable
// or whose terms of service discourage scraping.
var avoidDomains = []string{
	"twitter.com", "x.com", "youtube.com", "youtu.be",
	"linkedin.com", "facebook.com", "instagram.com", "tiktok.com",
	"reddit.com",
}

// aiCompanyDomains catches AI vendors that may not be in the safe list yet.
var aiCompanyDomains = []string{
	"openai.com", "anthropic.com", "chatgpt.com", "deepmind.google",
	"huggingface.co", "stability.ai", "runwayml.com", "replicate.com",
	"together.ai", "cohere.ai", "mistral.ai", "perplexity.ai", "claude.ai",
	"deepseek.ai", "metaphysic.ai", "artificialanalysis.ai",
}

// Policy decides which URLs are eligible for a network fetch. The deny
// list always wins over the allow list.
type Policy struct {
	allow []string
	deny  []string
}

// NewPolicy builds the default policy, with optional extra allow and deny
// host substrings from the rules overlay file.
func NewPolicy(extraAllow, extraDeny []string) *Policy {
	p := &Policy{}
	p.deny = append(p.deny, extraDeny...)
	p.deny = append(p.deny, avoidDomains...)
	p.allow = append(p.allow, extraAllow...)
	p.allow = append(p.allow, safeDomains...)
	return p
}

// ShouldEnrich reports whether rawURL's host is eligible for metadata
// extraction.
func (p *Policy) ShouldEnrich(rawURL string) bool {
	domain := domainOf(rawURL)
	if domain == "" {
		return false
	}

	for _, avoid := range p.deny {
		if strings.Contains(domain, avoid) {
			return false
		}
	}

	for _, safe := range p.allow {
		if strings.Contains(domain, safe) {
			return true
		}
	}

	if strings.HasSuffix(domain, ".edu") || strings.HasSuffix(domain, ".org") {
		return true
	}
	if strings.HasSuffix(domain, ".ai") || strings.Contains(domain, "research") || strings.Contains(domain, "lab") {
		return true
	}

	for _, ai := range aiCompanyDomains {
		if strings.Contains(domain, ai) {
			return true
		}
	}

	return false
}

func domainOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Host)
}
