package gemini

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/fwojciec/docchat"
	"google.golang.org/genai"
)

const answerModel = "gemini-2.5-flash"

// Ensure Generator implements docchat.Generator at compile time.
var _ docchat.Generator = (*Generator)(nil)

// Generator implements docchat.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Answer streams a generated answer grounded in the request's context
// passages. The returned sequence yields text fragments as the model
// produces them; a stream error ends the sequence after being yielded.
func (g *Generator) Answer(ctx context.Context, req docchat.AnswerRequest) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if req.Question == "" {
			yield("", docchat.Errorf(docchat.EINVALID, "question required"))
			return
		}

		prompt := BuildAnswerPrompt(req)
		config := BuildAnswerConfig()

		for resp, err := range g.client.Models.GenerateContentStream(ctx, answerModel,
			[]*genai.Content{{
				Parts: []*genai.Part{{Text: prompt}},
			}},
			config,
		) {
			if err != nil {
				yield("", err)
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			if !yield(text, nil) {
				return
			}
		}
	}
}

// BuildAnswerConfig returns the GenerateContentConfig for answer generation.
func BuildAnswerConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about software documentation. Answer based only on the documentation passages provided. If the passages do not contain the answer, say that the documentation does not cover it.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildAnswerPrompt builds the user prompt containing recent conversation
// history, the retrieved passages, and the question.
func BuildAnswerPrompt(req docchat.AnswerRequest) string {
	var sb strings.Builder
	if len(req.History) > 0 {
		sb.WriteString("<conversation>\n")
		for _, turn := range req.History {
			sb.WriteString("<turn>\n")
			fmt.Fprintf(&sb, "<question>%s</question>\n", turn.Question)
			fmt.Fprintf(&sb, "<answer>%s</answer>\n", turn.Answer)
			sb.WriteString("</turn>\n")
		}
		sb.WriteString("</conversation>\n\n")
	}

	sb.WriteString("<passages>\n")
	for i, passage := range req.Context {
		sb.WriteString("<passage>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<content>%s</content>\n", passage)
		sb.WriteString("</passage>\n")
	}
	sb.WriteString("</passages>\n\n")

	fmt.Fprintf(&sb, "Question: %s", req.Question)
	return sb.String()
}
