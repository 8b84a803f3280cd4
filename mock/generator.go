package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/docchat"
)

var _ docchat.Generator = (*Generator)(nil)

// Generator is a mock implementation of docchat.Generator.
type Generator struct {
	AnswerFn func(ctx context.Context, req docchat.AnswerRequest) iter.Seq2[string, error]
}

func (g *Generator) Answer(ctx context.Context, req docchat.AnswerRequest) iter.Seq2[string, error] {
	return g.AnswerFn(ctx, req)
}
