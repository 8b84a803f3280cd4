// Package memstore provides an in-memory implementation of
// docchat.KnowledgeStore. A knowledge base lives only as long as its
// session; nothing is persisted.
package memstore

import (
	"sort"
	"sync"

	"github.com/fwojciec/docchat"
)

// Ensure Store implements docchat.KnowledgeStore at compile time.
var _ docchat.KnowledgeStore = (*Store)(nil)

// Store holds the embedded chunks for one loaded documentation source.
// Replace swaps the whole record set under the write lock, so concurrent
// readers see either the old generation or the new one, never a mix.
type Store struct {
	mu      sync.RWMutex
	records []docchat.Record
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Replace atomically swaps in a new generation of records.
func (s *Store) Replace(records []docchat.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Search ranks every record by cosine similarity to the query vector and
// returns at most topK results scoring at least threshold, descending.
// The sort is stable: records with equal scores keep insertion order. A
// record whose similarity cannot be computed (dimension mismatch) scores 0
// rather than aborting the search.
func (s *Store) Search(query []float32, topK int, threshold float64) []docchat.SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scored := make([]docchat.SearchResult, 0, len(s.records))
	for _, record := range s.records {
		score, err := docchat.CosineSimilarity(query, record.Embedding)
		if err != nil {
			score = 0
		}
		scored = append(scored, docchat.SearchResult{Text: record.Text, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	results := make([]docchat.SearchResult, 0, topK)
	for _, r := range scored {
		if len(results) >= topK {
			break
		}
		if r.Score < threshold {
			break
		}
		results = append(results, r)
	}
	return results
}
