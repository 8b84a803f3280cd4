package docchat

import "time"

// Configuration values are fixed per deployment, not per call. Credentials
// (GEMINI_API_KEY) are the only runtime input, read by the CLI.
const (
	// MinContentChars is the minimum extracted content length for a page
	// to be kept by the crawler.
	MinContentChars = 50

	// MinChunkChars is the minimum chunk length worth embedding.
	MinChunkChars = 10
)

// Config holds the fixed tuning knobs for a deployment.
type Config struct {
	// Crawl limits.
	MaxCrawlPages    int
	CrawlConcurrency int
	FetchTimeout     time.Duration

	// Chunking.
	MaxChunkChars   int
	MaxChunksPerDoc int

	// Embedding service.
	EmbedModel     string
	EmbedBatchSize int
	EmbedRetries   int
	EmbedTimeout   time.Duration

	// Retrieval.
	RetrievalTopK      int
	RetrievalThreshold float64

	// Conversation.
	MaxHistoryTurns int
}

// DefaultConfig returns the standard deployment configuration.
func DefaultConfig() Config {
	return Config{
		MaxCrawlPages:      25,
		CrawlConcurrency:   5,
		FetchTimeout:       10 * time.Second,
		MaxChunkChars:      1500,
		MaxChunksPerDoc:    100,
		EmbedModel:         "gemini-embedding-001",
		EmbedBatchSize:     32,
		EmbedRetries:       3,
		EmbedTimeout:       30 * time.Second,
		RetrievalTopK:      5,
		RetrievalThreshold: 0.3,
		MaxHistoryTurns:    10,
	}
}
