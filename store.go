package docchat

// Record is one embedded chunk held by a knowledge store.
type Record struct {
	Text      string
	Embedding []float32
}

// SearchResult is a record ranked against a query embedding.
type SearchResult struct {
	Text  string
	Score float64
}

// KnowledgeStore holds the embedded chunks for one loaded documentation
// source and answers nearest-neighbor queries. A store is owned by exactly
// one session: Replace swaps the full record set atomically, so readers
// never observe a partially populated store.
type KnowledgeStore interface {
	// Replace atomically swaps in a new generation of records.
	Replace(records []Record)

	// Search ranks every stored record by cosine similarity to the query
	// vector, descending, with insertion order breaking ties. Records
	// scoring below threshold are discarded and at most topK results are
	// returned. A record whose similarity cannot be computed scores 0.
	Search(query []float32, topK int, threshold float64) []SearchResult

	// Len returns the number of stored records.
	Len() int
}
