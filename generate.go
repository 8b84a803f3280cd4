package docchat

import (
	"context"
	"iter"
)

// AnswerRequest carries everything the generation collaborator needs:
// the ranked context passages, the user's question, and bounded recent
// conversation history. Prompt construction is the implementation's
// concern.
type AnswerRequest struct {
	Question string
	Context  []string
	History  []Turn
}

// Generator streams a generated answer as a consumer-driven pull sequence.
// The sequence is lazy, finite, and not restartable; iteration ends when
// the stream completes or yields an error.
type Generator interface {
	Answer(ctx context.Context, req AnswerRequest) iter.Seq2[string, error]
}
