package docchat

import "strings"

// Chunk splits text into size-bounded, sentence-respecting chunks for
// embedding. Sentences are packed greedily: a sentence is appended to the
// running chunk while the result stays within maxChars, otherwise the
// running chunk is flushed. A single sentence longer than maxChars is
// packed word-by-word under the same rule; packing then continues from the
// last partial word-chunk. No chunk exceeds maxChars except a single word
// longer than the limit, which is left intact. Chunk order matches source
// order and empty input yields no chunks.
//
// Chunk is idempotent: re-chunking its own output with the same limit
// returns it unchanged.
func Chunk(text string, maxChars int) []string {
	if maxChars <= 0 {
		return nil
	}

	var chunks []string
	var current string

	flush := func() {
		if s := strings.TrimSpace(current); s != "" {
			chunks = append(chunks, s)
		}
		current = ""
	}

	for _, sentence := range splitSentences(text) {
		candidate := sentence
		if current != "" {
			candidate = current + " " + sentence
		}
		if len(candidate) <= maxChars {
			current = candidate
			continue
		}

		if len(sentence) > maxChars {
			flush()
			for _, word := range strings.Fields(sentence) {
				cand := word
				if current != "" {
					cand = current + " " + word
				}
				if len(cand) <= maxChars {
					current = cand
					continue
				}
				flush()
				current = word
			}
			continue
		}

		flush()
		current = sentence
	}

	flush()
	return chunks
}

// splitSentences splits on sentence terminators followed by whitespace.
// The terminator stays with its sentence. Trailing text without a
// terminator is treated as one final sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c == '.' || c == '!' || c == '?') && i+1 < len(text) && isSpace(text[i+1]) {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
