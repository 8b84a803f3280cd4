package mock

import "github.com/fwojciec/docchat"

var _ docchat.KnowledgeStore = (*KnowledgeStore)(nil)

// KnowledgeStore is a mock implementation of docchat.KnowledgeStore.
type KnowledgeStore struct {
	ReplaceFn func(records []docchat.Record)
	SearchFn  func(query []float32, topK int, threshold float64) []docchat.SearchResult
	LenFn     func() int
}

func (s *KnowledgeStore) Replace(records []docchat.Record) {
	s.ReplaceFn(records)
}

func (s *KnowledgeStore) Search(query []float32, topK int, threshold float64) []docchat.SearchResult {
	return s.SearchFn(query, topK, threshold)
}

func (s *KnowledgeStore) Len() int {
	return s.LenFn()
}
