//go:build integration

package http_test

import (
	"context"
	"testing"
	"time"

	docchathttp "github.com/fwojciec/docchat/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_Integration_HtmxDocs(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := docchathttp.NewSitemapService(nil)

	// htmx.org declares a sitemap in robots.txt
	urls, err := svc.DiscoverURLs(ctx, "https://htmx.org")
	require.NoError(t, err)

	assert.NotEmpty(t, urls, "expected at least some URLs from htmx.org sitemap")
	t.Logf("Found %d URLs from htmx.org sitemap", len(urls))
}
