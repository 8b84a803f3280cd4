package mock

import (
	"context"

	"github.com/fwojciec/docchat"
)

var _ docchat.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of docchat.Embedder.
type Embedder struct {
	EmbedOneFn  func(ctx context.Context, text string) ([]float32, error)
	EmbedManyFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedOneFn(ctx, text)
}

func (e *Embedder) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedManyFn(ctx, texts)
}
