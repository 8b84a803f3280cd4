package mock

import "github.com/fwojciec/docchat"

var _ docchat.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docchat.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docchat.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docchat.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ docchat.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docchat.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
