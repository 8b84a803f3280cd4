package crawl

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Frontier is a FIFO crawl queue with Bloom filter deduplication. A URL is
// marked seen the moment it is queued, so it can never be queued or fetched
// twice within one crawl. Frontiers are scoped to a single crawl invocation
// and mutated only by the coordinator dispatching batches, so no locking is
// needed.
type Frontier struct {
	seen  *bloom.BloomFilter
	queue []string
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(n, fpRate),
	}
}

// Push appends a URL to the frontier tail. Returns false if the URL has
// already been seen. Fragments are stripped first, so URLs differing only
// by fragment are duplicates.
func (f *Frontier) Push(url string) bool {
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}
	if f.seen.TestString(url) {
		return false
	}
	f.seen.AddString(url)
	f.queue = append(f.queue, url)
	return true
}

// PopN removes and returns up to n URLs from the frontier head.
func (f *Frontier) PopN(n int) []string {
	if n > len(f.queue) {
		n = len(f.queue)
	}
	if n <= 0 {
		return nil
	}
	batch := f.queue[:n:n]
	f.queue = f.queue[n:]
	return batch
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// Seen returns true if the URL has been queued at any point.
func (f *Frontier) Seen(url string) bool {
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}
	return f.seen.TestString(url)
}
