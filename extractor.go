package docchat

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the first-level heading, falling back to the document
	// title, falling back to "Untitled".
	Title string

	// Content is whitespace-normalized plain text with navigation, UI
	// boilerplate, and code blocks suppressed.
	Content string
}

// Extractor extracts clean title and body text from HTML pages.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
