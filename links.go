package docchat

import (
	"net/url"
	"strings"
)

// LinkExtractor discovers outbound links from a page's original,
// unfiltered HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns resolved absolute URLs.
	// Relative URLs are resolved against baseURL; fragments are stripped.
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// LinkPolicy decides which discovered links belong to the documentation
// being crawled. Two extraction strategies in the wild disagree on whether
// URLs with query strings are followed, so that rule is a switch here
// rather than hard-wired.
type LinkPolicy struct {
	// AllowPaths are path substrings that identify documentation pages.
	// A link must match at least one, or live under the seed's own path.
	AllowPaths []string

	// DenySubstrings reject known non-content URLs (auth redirects etc.).
	DenySubstrings []string

	// SkipQueryStrings rejects URLs carrying a query component.
	SkipQueryStrings bool
}

// DefaultLinkPolicy returns the policy used for documentation crawls.
func DefaultLinkPolicy() LinkPolicy {
	return LinkPolicy{
		AllowPaths: []string{
			"/docs", "/documentation", "/guide", "/guides", "/learn",
			"/tutorial", "/tutorials", "/reference", "/api", "/manual",
			"/handbook",
		},
		DenySubstrings: []string{
			"login", "logout", "signin", "signup", "sign-in", "sign-up",
			"auth", "account",
		},
		SkipQueryStrings: true,
	}
}

// Allow reports whether link should be followed for a crawl seeded at seed.
// Both URLs must be absolute; the link must share the seed's host.
func (p LinkPolicy) Allow(link *url.URL, seed *url.URL) bool {
	if link.Host != seed.Host {
		return false
	}
	if p.SkipQueryStrings && link.RawQuery != "" {
		return false
	}

	lower := strings.ToLower(link.String())
	for _, deny := range p.DenySubstrings {
		if strings.Contains(lower, deny) {
			return false
		}
	}

	// Links under the seed's own path are always in scope.
	if seed.Path != "" && seed.Path != "/" && strings.HasPrefix(link.Path, seed.Path) {
		return true
	}

	for _, allow := range p.AllowPaths {
		if strings.Contains(link.Path, allow) {
			return true
		}
	}
	return false
}
