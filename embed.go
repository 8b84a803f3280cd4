package docchat

import "context"

// Embedder converts text into fixed-dimension dense vectors against an
// external embedding service. The vector dimension is determined by the
// service on the first successful call and is constant thereafter.
type Embedder interface {
	// EmbedOne embeds a single text.
	EmbedOne(ctx context.Context, text string) ([]float32, error)

	// EmbedMany embeds texts in fixed-size sequential batches. A batch
	// that fails after retries aborts the whole call. Within a successful
	// batch, an entry the service returned no vector for is nil; the
	// caller decides how much partial failure is tolerable.
	EmbedMany(ctx context.Context, texts []string) ([][]float32, error)
}

// SitemapService discovers documentation URLs from a site's sitemap.
type SitemapService interface {
	// DiscoverURLs finds URLs from robots.txt sitemap directives or
	// /sitemap.xml, resolving sitemap indexes recursively. Only URLs
	// under the base URL's path are returned. An empty result is not an
	// error; the caller falls back to recursive crawling.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
