// Package mock provides function-field mock implementations of the
// docchat domain interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/docchat"
)

var _ docchat.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docchat.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ docchat.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of docchat.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
