// Package crawl performs bounded breadth-first traversal of same-domain
// documentation pages, invoking content extraction per page and discovering
// further links as it goes.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docchat"
	"golang.org/x/sync/errgroup"
)

// Ensure Crawler implements docchat.Crawler at compile time.
var _ docchat.Crawler = (*Crawler)(nil)

// Crawler fetches and extracts documentation pages breadth-first.
type Crawler struct {
	Fetcher   docchat.Fetcher
	Extractor docchat.Extractor

	// Fallback, when set, is tried whenever Extractor yields content
	// shorter than MinContentChars.
	Fallback docchat.Extractor

	// Links discovers outbound links; nil disables discovery (FetchAll
	// still works).
	Links docchat.LinkExtractor

	// Limiter, when set, spaces out requests per domain.
	Limiter docchat.DomainLimiter

	// Policy decides which discovered links are followed.
	Policy docchat.LinkPolicy

	// Concurrency is the fetch batch size. Defaults to 5.
	Concurrency int

	// MinContentChars rejects pages with less extracted content.
	// Defaults to docchat.MinContentChars.
	MinContentChars int

	// RetryDelays configures fetch retry backoff. Defaults to
	// DefaultRetryDelays. Tests pass zero delays.
	RetryDelays []time.Duration

	// Logger, when set, records transient page failures. They are
	// skipped either way.
	Logger *slog.Logger
}

// fetchResult holds the outcome of one fetch within a batch.
type fetchResult struct {
	url  string
	html string
	err  error
}

// Crawl walks same-domain pages breadth-first from seedURL, returning at
// most maxPages extracted pages. Work proceeds in fetch batches of
// Concurrency URLs; every URL is claimed in the frontier's seen set before
// its fetch dispatches, so no URL is fetched twice even when batches race.
// A fetch or extraction failure skips that page without aborting the
// crawl. The caller treats an empty result as a load failure.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxPages int, progress docchat.ProgressFunc) ([]*docchat.Page, error) {
	seed, err := url.Parse(seedURL)
	if err != nil {
		return nil, docchat.Errorf(docchat.EINVALID, "invalid seed URL: %v", err)
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(seedURL)

	return c.collect(ctx, frontier, seed, maxPages, progress)
}

// FetchAll runs the same batch machinery over a preset URL list (the
// sitemap fast path) without link discovery.
func (c *Crawler) FetchAll(ctx context.Context, urls []string, maxPages int, progress docchat.ProgressFunc) ([]*docchat.Page, error) {
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	for _, u := range urls {
		frontier.Push(u)
	}

	return c.collect(ctx, frontier, nil, maxPages, progress)
}

// collect drains the frontier batch by batch until it empties or maxPages
// pages accumulate. When seed is non-nil, links discovered on each page
// are filtered by the policy and appended to the frontier tail.
func (c *Crawler) collect(ctx context.Context, frontier *Frontier, seed *url.URL, maxPages int, progress docchat.ProgressFunc) ([]*docchat.Page, error) {
	minChars := c.MinContentChars
	if minChars <= 0 {
		minChars = docchat.MinContentChars
	}

	var pages []*docchat.Page
	seenContent := make(map[uint64]struct{})

	for frontier.Len() > 0 && len(pages) < maxPages {
		if ctx.Err() != nil {
			return pages, ctx.Err()
		}

		// A partially filled final batch is truncated to the remaining
		// capacity before dispatch.
		batch := frontier.PopN(min(c.concurrency(), maxPages-len(pages)))
		results := c.fetchBatch(ctx, batch)

		for _, res := range results {
			if res.err != nil {
				if c.Logger != nil {
					c.Logger.Warn("page skipped", "url", res.url, "err", res.err)
				}
				continue
			}

			// Link discovery runs over the original, unfiltered document.
			if seed != nil && c.Links != nil {
				c.discoverLinks(frontier, seed, res)
			}

			extracted := c.extract(res.html, minChars)
			if extracted == nil || len(extracted.Content) < minChars {
				if c.Logger != nil {
					c.Logger.Debug("page too short", "url", res.url)
				}
				continue
			}

			// The same document often lives under several URLs
			// (trailing slash, index aliases); keep one copy.
			hash := xxhash.Sum64String(extracted.Content)
			if _, dup := seenContent[hash]; dup {
				continue
			}
			seenContent[hash] = struct{}{}

			if len(pages) >= maxPages {
				break
			}
			pages = append(pages, &docchat.Page{
				URL:     res.url,
				Title:   extracted.Title,
				Content: extracted.Content,
			})
			if progress != nil {
				progress(len(pages), maxPages, extracted.Title)
			}
		}
	}

	return pages, nil
}

// fetchBatch issues all fetches in the batch concurrently and waits for
// every one to settle. Results are returned in batch order, so page order
// is deterministic per batch.
func (c *Crawler) fetchBatch(ctx context.Context, batch []string) []fetchResult {
	results := make([]fetchResult, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	for i, pageURL := range batch {
		results[i] = fetchResult{url: pageURL}
		g.Go(func() error {
			if c.Limiter != nil {
				if u, err := url.Parse(pageURL); err == nil {
					if err := c.Limiter.Wait(gctx, u.Host); err != nil {
						results[i].err = err
						return nil
					}
				}
			}

			delays := c.RetryDelays
			if delays == nil {
				delays = DefaultRetryDelays()
			}
			html, err := FetchWithRetryDelays(gctx, pageURL, c.Fetcher.Fetch, delays)
			results[i].html = html
			results[i].err = err
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// discoverLinks filters a page's outbound links through the policy and
// queues survivors. The frontier drops anything already seen or queued.
func (c *Crawler) discoverLinks(frontier *Frontier, seed *url.URL, res fetchResult) {
	links, err := c.Links.ExtractLinks(res.html, res.url)
	if err != nil {
		return
	}
	for _, raw := range links {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		if !c.Policy.Allow(u, seed) {
			continue
		}
		frontier.Push(raw)
	}
}

// extract runs the primary extractor, falling back to the secondary one
// for pages the heuristics cannot handle.
func (c *Crawler) extract(html string, minChars int) *docchat.ExtractResult {
	extracted, err := c.Extractor.Extract(html)
	if err == nil && len(extracted.Content) >= minChars {
		return extracted
	}
	if c.Fallback == nil {
		return extracted
	}
	fallback, ferr := c.Fallback.Extract(html)
	if ferr != nil {
		return extracted
	}
	if extracted == nil || len(fallback.Content) > len(extracted.Content) {
		// Readability titles come back verbatim and can be empty; keep
		// the primary extractor's title rather than an empty one.
		if fallback.Title == "" {
			if extracted != nil && extracted.Title != "" {
				fallback.Title = extracted.Title
			} else {
				fallback.Title = "Untitled"
			}
		}
		return fallback
	}
	return extracted
}

func (c *Crawler) concurrency() int {
	if c.Concurrency <= 0 {
		return 5
	}
	return c.Concurrency
}
