package mock

import (
	"context"

	"github.com/fwojciec/docchat"
)

var _ docchat.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of docchat.Crawler.
type Crawler struct {
	CrawlFn    func(ctx context.Context, seedURL string, maxPages int, progress docchat.ProgressFunc) ([]*docchat.Page, error)
	FetchAllFn func(ctx context.Context, urls []string, maxPages int, progress docchat.ProgressFunc) ([]*docchat.Page, error)
}

func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxPages int, progress docchat.ProgressFunc) ([]*docchat.Page, error) {
	return c.CrawlFn(ctx, seedURL, maxPages, progress)
}

func (c *Crawler) FetchAll(ctx context.Context, urls []string, maxPages int, progress docchat.ProgressFunc) ([]*docchat.Page, error) {
	return c.FetchAllFn(ctx, urls, maxPages, progress)
}
