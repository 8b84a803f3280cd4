package docchat

// Turn is one completed question/answer exchange.
type Turn struct {
	Question string
	Answer   string
}

// History retains the most recent conversation turns, evicting the oldest
// once MaxTurns is exceeded. The zero value retains nothing; use
// NewHistory. History is not safe for concurrent use; the owning session
// serializes access.
type History struct {
	maxTurns int
	turns    []Turn
}

// NewHistory creates a History retaining at most maxTurns turns.
func NewHistory(maxTurns int) *History {
	return &History{maxTurns: maxTurns}
}

// Add appends a completed turn, evicting the oldest beyond capacity.
func (h *History) Add(turn Turn) {
	if h.maxTurns <= 0 {
		return
	}
	h.turns = append(h.turns, turn)
	if len(h.turns) > h.maxTurns {
		h.turns = h.turns[len(h.turns)-h.maxTurns:]
	}
}

// Turns returns the retained turns, oldest first. The returned slice is a
// copy.
func (h *History) Turns() []Turn {
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

// Len returns the number of retained turns.
func (h *History) Len() int {
	return len(h.turns)
}

// Reset discards all retained turns.
func (h *History) Reset() {
	h.turns = nil
}
