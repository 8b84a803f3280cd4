package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docchat"
)

// Ensure LoggingKnowledgeStore implements docchat.KnowledgeStore.
var _ docchat.KnowledgeStore = (*LoggingKnowledgeStore)(nil)

// LoggingKnowledgeStore wraps a KnowledgeStore with timing logs.
type LoggingKnowledgeStore struct {
	next   docchat.KnowledgeStore
	logger *slog.Logger
}

// NewLoggingKnowledgeStore creates a new LoggingKnowledgeStore.
func NewLoggingKnowledgeStore(next docchat.KnowledgeStore, logger *slog.Logger) *LoggingKnowledgeStore {
	return &LoggingKnowledgeStore{next: next, logger: logger}
}

// Replace delegates to the wrapped store and logs the swap.
func (s *LoggingKnowledgeStore) Replace(records []docchat.Record) {
	s.next.Replace(records)
	s.logger.Info("knowledge store replaced", "records", len(records))
}

// Search delegates to the wrapped store and logs the retrieval.
func (s *LoggingKnowledgeStore) Search(query []float32, topK int, threshold float64) []docchat.SearchResult {
	begin := time.Now()
	results := s.next.Search(query, topK, threshold)
	s.logger.Debug("retrieval",
		"results", len(results),
		"top_k", topK,
		"threshold", threshold,
		"duration", time.Since(begin),
	)
	return results
}

// Len delegates to the wrapped store.
func (s *LoggingKnowledgeStore) Len() int {
	return s.next.Len()
}
