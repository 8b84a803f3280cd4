package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, html string) *docchat.ExtractResult {
	t.Helper()
	result, err := goquery.NewExtractor().Extract(html)
	require.NoError(t, err)
	return result
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("keeps paragraph text and excludes navigation", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<nav>Search...</nav>
			<p>Embeddings convert text into vectors.</p>
		</body></html>`

		result := extract(t, html)

		assert.Contains(t, result.Content, "Embeddings convert text into vectors.")
		assert.NotContains(t, result.Content, "Search")
	})

	t.Run("title prefers first h1", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Site | Docs</title></head><body>
			<h1>Getting Started</h1>
			<p>Welcome to the documentation pages.</p>
		</body></html>`

		assert.Equal(t, "Getting Started", extract(t, html).Title)
	})

	t.Run("title falls back to title tag", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Reference Manual</title></head><body>
			<p>Some body text that is long enough.</p>
		</body></html>`

		assert.Equal(t, "Reference Manual", extract(t, html).Title)
	})

	t.Run("title falls back to Untitled", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Some body text that is long enough.</p></body></html>`

		assert.Equal(t, "Untitled", extract(t, html).Title)
	})

	t.Run("prefers documentation body over surrounding page", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div><p>Unrelated landing page marketing copy.</p></div>
			<main><p>The API accepts JSON requests over HTTPS.</p></main>
		</body></html>`

		result := extract(t, html)

		assert.Contains(t, result.Content, "The API accepts JSON")
		assert.NotContains(t, result.Content, "marketing copy")
	})

	t.Run("nested elements contribute only once", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<li><p>Install the package before anything else.</p></li>
		</main></body></html>`

		result := extract(t, html)

		assert.Equal(t, 1, strings.Count(result.Content, "Install the package"))
	})

	t.Run("wrapper div keeps both direct text and child paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<div>Intro text lives directly in the wrapper div.
				<p>The paragraph explains the embedding workflow in detail.</p>
				<p>A second paragraph covers retrieval and ranking.</p>
			</div>
		</main></body></html>`

		result := extract(t, html)

		assert.Contains(t, result.Content, "Intro text lives directly")
		assert.Contains(t, result.Content, "embedding workflow")
		assert.Contains(t, result.Content, "retrieval and ranking")
		assert.Equal(t, 1, strings.Count(result.Content, "Intro text lives directly"))
	})

	t.Run("skips code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<p>Run the installer from your shell of choice.</p>
			<pre><code>npm install docchat</code></pre>
			<div class="highlight">const x = embedding(query)</div>
			<code data-language="go">func main() {}</code>
		</main></body></html>`

		result := extract(t, html)

		assert.Contains(t, result.Content, "Run the installer")
		assert.NotContains(t, result.Content, "npm install")
		assert.NotContains(t, result.Content, "const x")
		assert.NotContains(t, result.Content, "func main")
	})

	t.Run("keeps inline code", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<p>Call the <code>EmbedMany</code> method with your chunk texts.</p>
		</main></body></html>`

		assert.Contains(t, extract(t, html).Content, "EmbedMany")
	})

	t.Run("skips short labels and UI boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<p>OK</p>
			<p>On this page</p>
			<p>Copy to clipboard</p>
			<p>This sentence is real documentation content.</p>
		</main></body></html>`

		result := extract(t, html)

		assert.Equal(t, "This sentence is real documentation content.", result.Content)
	})

	t.Run("replaces fenced code with placeholder", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><main><p>Install it like this: ```npm install docchat``` and then continue.</p></main></body></html>"

		result := extract(t, html)

		assert.Contains(t, result.Content, goquery.CodePlaceholder)
		assert.NotContains(t, result.Content, "npm install")
	})

	t.Run("repairs concatenation artifacts", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<p><span>Getting</span><span>Started</span> is the first chapter.</p>
		</main></body></html>`

		assert.Contains(t, extract(t, html).Content, "Getting Started")
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<p>Spaced    out

			text   here today.</p>
		</main></body></html>`

		assert.Equal(t, "Spaced out text here today.", extract(t, html).Content)
	})

	t.Run("collects table cells and quotes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<table><tr><td>Timeout in seconds per request.</td></tr></table>
			<blockquote>Always bound your crawls.</blockquote>
		</main></body></html>`

		result := extract(t, html)

		assert.Contains(t, result.Content, "Timeout in seconds")
		assert.Contains(t, result.Content, "Always bound your crawls.")
	})
}
