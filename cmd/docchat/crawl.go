package main

import (
	"fmt"

	"github.com/fwojciec/docchat"
)

// Run executes the crawl command: collect pages without building a
// knowledge base, so a site can be inspected before chatting with it.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = deps.Config.MaxCrawlPages
	}

	pages, err := deps.Crawler.Crawl(deps.Ctx, c.URL, maxPages, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docchat.ErrorMessage(err))
		return err
	}
	if len(pages) == 0 {
		return docchat.Errorf(docchat.EUNAVAILABLE,
			"no documentation pages found at %q; try a different URL", c.URL)
	}

	for _, page := range pages {
		fmt.Fprintf(deps.Stdout, "%s\n  %s (%d chars)\n", page.URL, page.Title, len(page.Content))
		if c.Full {
			fmt.Fprintf(deps.Stdout, "  %s\n", page.Content)
		}
	}
	fmt.Fprintf(deps.Stdout, "%d pages\n", len(pages))
	return nil
}
