// Package readability wraps go-readability as a fallback content
// extractor for pages the selector-based heuristics cannot handle.
package readability

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docchat"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docchat.Extractor at compile time.
var _ docchat.Extractor = (*Extractor)(nil)

var whitespaceRunsRe = regexp.MustCompile(`\s+`)

// Extractor extracts main content from HTML using readability heuristics.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (*docchat.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docchat.Errorf(docchat.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(whitespaceRunsRe.ReplaceAllString(article.TextContent, " "))

	return &docchat.ExtractResult{
		Title:   article.Title,
		Content: content,
	}, nil
}
