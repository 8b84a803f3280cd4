// Package gemini implements the embedding and answer generation
// collaborators using the Google Gemini API.
package gemini

import (
	"context"
	"time"

	"github.com/fwojciec/docchat"
	"google.golang.org/genai"
)

// Ensure Embedder implements docchat.Embedder at compile time.
var _ docchat.Embedder = (*Embedder)(nil)

// Embedder implements docchat.Embedder using the Gemini embedding API.
type Embedder struct {
	client    *genai.Client
	model     string
	batchSize int
	retries   int
	timeout   time.Duration
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client, cfg docchat.Config) *Embedder {
	return &Embedder{
		client:    client,
		model:     cfg.EmbedModel,
		batchSize: cfg.EmbedBatchSize,
		retries:   cfg.EmbedRetries,
		timeout:   cfg.EmbedTimeout,
	}
}

// EmbedOne embeds a single text.
func (e *Embedder) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, docchat.Errorf(docchat.EINVALID, "text required")
	}

	vectors, err := e.embedBatchWithRetry(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 || vectors[0] == nil {
		return nil, docchat.Errorf(docchat.EINTERNAL, "embedding service returned no vector")
	}
	return vectors[0], nil
}

// EmbedMany embeds texts in sequential fixed-size batches. A batch that
// still fails after retries aborts the whole call. An entry the service
// returned no vector for is nil in the result.
func (e *Embedder) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, 0, len(texts))
	for _, batch := range BatchTexts(texts, e.batchSize) {
		batchVectors, err := e.embedBatchWithRetry(ctx, batch)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, batchVectors...)
	}
	return vectors, nil
}

func (e *Embedder) embedBatchWithRetry(ctx context.Context, texts []string) ([][]float32, error) {
	var lastErr error
	delay := time.Second
	for attempt := 0; attempt <= e.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		vectors, err := e.embedBatch(ctx, texts)
		if err == nil {
			return vectors, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (e *Embedder) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = &genai.Content{
			Parts: []*genai.Part{{Text: text}},
		}
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, docchat.Errorf(docchat.EINTERNAL, "gemini returned nil result")
	}

	// Positional mapping: the i-th embedding belongs to the i-th text.
	// An entry missing from the response stays nil.
	vectors := make([][]float32, len(texts))
	for i, embedding := range result.Embeddings {
		if i >= len(vectors) || embedding == nil {
			continue
		}
		vectors[i] = embedding.Values
	}
	return vectors, nil
}

// BatchTexts splits texts into consecutive batches of at most size
// elements, preserving order. A size of zero or less means one batch.
func BatchTexts(texts []string, size int) [][]string {
	if len(texts) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]string{texts}
	}

	batches := make([][]string, 0, (len(texts)+size-1)/size)
	for start := 0; start < len(texts); start += size {
		end := start + size
		if end > len(texts) {
			end = len(texts)
		}
		batches = append(batches, texts[start:end])
	}
	return batches
}
