package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docchat"
)

// Ensure LoggingEmbedder implements docchat.Embedder.
var _ docchat.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with timing logs.
type LoggingEmbedder struct {
	next   docchat.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next docchat.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// EmbedOne delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) EmbedOne(ctx context.Context, text string) (vector []float32, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("embed one",
			"chars", len(text),
			"dim", len(vector),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedOne(ctx, text)
}

// EmbedMany delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) EmbedMany(ctx context.Context, texts []string) (vectors [][]float32, err error) {
	defer func(begin time.Time) {
		e.logger.Info("embed many",
			"texts", len(texts),
			"vectors", len(vectors),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedMany(ctx, texts)
}
