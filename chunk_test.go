package docchat_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docchat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields no chunks", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docchat.Chunk("", 100))
		assert.Empty(t, docchat.Chunk("   \n\t ", 100))
	})

	t.Run("short text yields a single chunk", func(t *testing.T) {
		t.Parallel()

		chunks := docchat.Chunk("Embeddings convert text into vectors.", 100)

		require.Len(t, chunks, 1)
		assert.Equal(t, "Embeddings convert text into vectors.", chunks[0])
	})

	t.Run("packs sentences greedily up to the limit", func(t *testing.T) {
		t.Parallel()

		// Three 60-char sentences with a 150-char limit: the first two
		// fit together (121 chars with the joining space), the third
		// starts a new chunk.
		s1 := strings.Repeat("a", 59) + "."
		s2 := strings.Repeat("b", 59) + "."
		s3 := strings.Repeat("c", 59) + "."

		chunks := docchat.Chunk(s1+" "+s2+" "+s3, 150)

		require.Len(t, chunks, 2)
		assert.Equal(t, s1+" "+s2, chunks[0])
		assert.Equal(t, s3, chunks[1])
	})

	t.Run("splits on all sentence terminators", func(t *testing.T) {
		t.Parallel()

		chunks := docchat.Chunk("First one. Second one! Third one? Fourth", 12)

		assert.Equal(t, []string{"First one.", "Second one!", "Third one?", "Fourth"}, chunks)
	})

	t.Run("trailing text without terminator is a final sentence", func(t *testing.T) {
		t.Parallel()

		chunks := docchat.Chunk("Done. and then some trailing words", 10)

		require.NotEmpty(t, chunks)
		assert.Equal(t, "Done.", chunks[0])
	})

	t.Run("oversized sentence is packed on word boundaries", func(t *testing.T) {
		t.Parallel()

		sentence := "alpha beta gamma delta epsilon zeta eta theta iota kappa."
		chunks := docchat.Chunk(sentence, 20)

		require.Greater(t, len(chunks), 1)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 20)
			// Words are never split mid-word.
			for _, w := range strings.Fields(c) {
				assert.Contains(t, sentence, w)
			}
		}
	})

	t.Run("packing continues from the last partial word-chunk", func(t *testing.T) {
		t.Parallel()

		// The oversized sentence leaves a partial chunk ("ccc.") that the
		// following short sentence joins.
		chunks := docchat.Chunk("aaaa bbbb ccc. Dd.", 10)

		assert.Equal(t, []string{"aaaa bbbb", "ccc. Dd."}, chunks)
	})

	t.Run("single word over the limit is left intact", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 40)
		chunks := docchat.Chunk(long+" short.", 20)

		require.Len(t, chunks, 2)
		assert.Equal(t, long, chunks[0])
		assert.Equal(t, "short.", chunks[1])
	})

	t.Run("no chunk exceeds the limit", func(t *testing.T) {
		t.Parallel()

		text := "The crawler walks pages breadth first. Each page is cleaned and split. " +
			"Chunks are embedded in batches! Queries rank records by cosine similarity? " +
			"The most similar passages feed the generation model."

		for _, c := range docchat.Chunk(text, 80) {
			assert.LessOrEqual(t, len(c), 80)
		}
	})

	t.Run("is idempotent on its own output", func(t *testing.T) {
		t.Parallel()

		text := "One sentence here. Another follows it! A third asks a question? " +
			"And a final fragment without terminator"

		first := docchat.Chunk(text, 50)
		require.NotEmpty(t, first)

		for _, c := range first {
			again := docchat.Chunk(c, 50)
			require.Len(t, again, 1)
			assert.Equal(t, c, again[0])
		}
	})

	t.Run("preserves source order", func(t *testing.T) {
		t.Parallel()

		chunks := docchat.Chunk("First. Second. Third. Fourth. Fifth.", 14)

		joined := strings.Join(chunks, " ")
		assert.Equal(t, "First. Second. Third. Fourth. Fifth.", joined)
	})
}
