package docchat

import "context"

// Page represents a successfully fetched and extracted documentation page.
// Pages are immutable and discarded once chunked into the knowledge store.
type Page struct {
	URL     string
	Title   string
	Content string
}

// ProgressFunc is called as pages are collected during a load.
type ProgressFunc func(count, total int, title string)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch downloads the URL and returns the response body as HTML.
	// Non-HTML responses are an error.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// Crawler collects documentation pages for one load.
type Crawler interface {
	// Crawl walks same-domain pages breadth-first from seedURL,
	// returning at most maxPages pages.
	Crawl(ctx context.Context, seedURL string, maxPages int, progress ProgressFunc) ([]*Page, error)

	// FetchAll fetches a preset URL list without link discovery.
	FetchAll(ctx context.Context, urls []string, maxPages int, progress ProgressFunc) ([]*Page, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
