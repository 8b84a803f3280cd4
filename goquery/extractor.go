// Package goquery provides goquery-based implementations of content
// extraction and link discovery over documentation HTML.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docchat"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docchat.Extractor at compile time.
var _ docchat.Extractor = (*Extractor)(nil)

// contentRootSelectors are tried in order; the first non-empty match
// becomes the extraction root. The whole document is the last resort.
var contentRootSelectors = []string{
	".theme-doc-markdown", // Docusaurus doc body
	".markdown-body",
	"main article",
	"main",
	"article",
	"[role=main]",
}

// textTags are the semantic elements whose text is collected.
// div and section are generic containers: only their direct text nodes
// contribute, so wrapper markup never swallows its children's text.
// pre is excluded because code blocks never contribute.
const textTags = "h1, h2, h3, h4, h5, h6, p, li, td, th, blockquote, dt, dd, code, div, section"

// codeClassFragments identify code-highlighting conventions by class name.
var codeClassFragments = []string{
	"highlight",
	"language-",
	"lang-",
	"hljs",
	"prism",
	"shiki",
	"codeblock",
	"code-block",
}

// uiBoilerplate is text that only ever appears in page chrome.
var uiBoilerplate = map[string]struct{}{
	"Search":               {},
	"Search...":            {},
	"Search…":              {},
	"Copy":                 {},
	"Copied":               {},
	"Copy to clipboard":    {},
	"bash":                 {},
	"shell":                {},
	"console":              {},
	"javascript":           {},
	"typescript":           {},
	"python":               {},
	"On this page":         {},
	"Table of contents":    {},
	"Table of Contents":    {},
	"Skip to main content": {},
	"Previous":             {},
	"Next":                 {},
	"Edit this page":       {},
}

// CodePlaceholder replaces fenced code blocks in extracted content. Code is
// noise for the knowledge base, but its absence should be visible rather
// than silently erased.
const CodePlaceholder = "[code omitted]"

var (
	codeFenceRe      = regexp.MustCompile("(?s)```.*?```")
	lowerUpperRe     = regexp.MustCompile(`([a-z])([A-Z])`)
	sentenceUpperRe  = regexp.MustCompile(`([.!?])([A-Z])`)
	whitespaceRunsRe = regexp.MustCompile(`\s+`)
)

// minFragmentChars filters out stray labels and icons.
const minFragmentChars = 6

// Extractor extracts clean title and body text from documentation HTML,
// suppressing navigation, UI chrome, and code noise.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and cleaned body
// text. Callers should reject results shorter than docchat.MinContentChars.
func (e *Extractor) Extract(rawHTML string) (*docchat.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docchat.Errorf(docchat.EINVALID, "failed to parse HTML: %v", err)
	}

	root := selectContentRoot(doc)
	fragments := collectText(root)

	content := strings.Join(fragments, "\n")
	content = codeFenceRe.ReplaceAllString(content, CodePlaceholder)
	// Repair concatenation artifacts from markup stripping.
	content = lowerUpperRe.ReplaceAllString(content, "$1 $2")
	content = sentenceUpperRe.ReplaceAllString(content, "$1 $2")
	content = whitespaceRunsRe.ReplaceAllString(content, " ")
	content = strings.TrimSpace(content)

	return &docchat.ExtractResult{
		Title:   extractTitle(doc),
		Content: content,
	}, nil
}

// extractTitle returns the first h1, falling back to the title tag,
// falling back to "Untitled".
func extractTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return "Untitled"
}

// selectContentRoot returns the first non-empty content root candidate,
// or the whole document as last resort.
func selectContentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentRootSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && strings.TrimSpace(sel.Text()) != "" {
			return sel
		}
	}
	return doc.Selection
}

// collectText walks the semantic elements under root in document order and
// returns the surviving text fragments. Each element contributes at most
// once: an element whose ancestor has already contributed is skipped, as
// are elements inside page chrome, code blocks, very short labels, and
// known UI boilerplate.
func collectText(root *goquery.Selection) []string {
	contributed := make(map[*html.Node]struct{})
	var fragments []string

	root.Find(textTags).Each(func(_ int, sel *goquery.Selection) {
		node := sel.Get(0)
		if node == nil {
			return
		}
		if inPageChrome(sel) {
			return
		}
		if ancestorContributed(node, contributed) {
			return
		}
		if isCodeElement(sel, node) {
			return
		}

		text := elementText(sel, node)
		if len(text) < minFragmentChars {
			return
		}
		if _, ok := uiBoilerplate[text]; ok {
			return
		}

		// Generic containers contribute only their direct text nodes,
		// so their descendants still speak for themselves.
		if !isGenericContainer(node) {
			contributed[node] = struct{}{}
		}
		fragments = append(fragments, text)
	})

	return fragments
}

// elementText returns the trimmed text for an element. Generic containers
// contribute only their direct text nodes; their children speak for
// themselves.
func elementText(sel *goquery.Selection, node *html.Node) string {
	if isGenericContainer(node) {
		var sb strings.Builder
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				sb.WriteString(child.Data)
			}
		}
		return strings.TrimSpace(sb.String())
	}
	return strings.TrimSpace(sel.Text())
}

func isGenericContainer(node *html.Node) bool {
	return node.Data == "div" || node.Data == "section"
}

// inPageChrome reports whether the element lives inside navigation or
// other structural chrome.
func inPageChrome(sel *goquery.Selection) bool {
	return sel.Closest("nav, header, footer, aside, script, style, noscript").Length() > 0
}

// ancestorContributed reports whether any ancestor of node has already
// contributed text, preventing duplicate nested text.
func ancestorContributed(node *html.Node, contributed map[*html.Node]struct{}) bool {
	for p := node.Parent; p != nil; p = p.Parent {
		if _, ok := contributed[p]; ok {
			return true
		}
	}
	return false
}

// isCodeElement classifies code blocks by tag name, by class-name substring
// match against known code-highlighting conventions, or by a code-language
// data attribute.
func isCodeElement(sel *goquery.Selection, node *html.Node) bool {
	if node.Data == "pre" {
		return true
	}
	// Inline code is prose; code inside a pre is a block.
	if node.Data == "code" && sel.Closest("pre").Length() > 0 {
		return true
	}
	if class, ok := sel.Attr("class"); ok {
		lower := strings.ToLower(class)
		for _, fragment := range codeClassFragments {
			if strings.Contains(lower, fragment) {
				return true
			}
		}
	}
	if _, ok := sel.Attr("data-language"); ok {
		return true
	}
	if _, ok := sel.Attr("data-lang"); ok {
		return true
	}
	return false
}
