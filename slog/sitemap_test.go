package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/mock"
	docslog "github.com/fwojciec/docchat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		svc := docslog.NewLoggingSitemapService(inner, logger)
		urls, err := svc.DiscoverURLs(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap discovery")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := docslog.NewLoggingSitemapService(inner, logger)
		_, err := svc.DiscoverURLs(context.Background(), "https://example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "sitemap discovery")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}

func TestLoggingEmbedder_EmbedMany(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Embedder{
		EmbedManyFn: func(ctx context.Context, texts []string) ([][]float32, error) {
			vectors := make([][]float32, len(texts))
			for i := range texts {
				vectors[i] = []float32{1, 0}
			}
			return vectors, nil
		},
	}

	e := docslog.NewLoggingEmbedder(inner, logger)
	vectors, err := e.EmbedMany(context.Background(), []string{"a", "b", "c"})

	require.NoError(t, err)
	assert.Len(t, vectors, 3)
	output := buf.String()
	assert.Contains(t, output, "embed many")
	assert.Contains(t, output, "texts=3")
	assert.Contains(t, output, "vectors=3")
}

func TestLoggingKnowledgeStore_Replace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var replaced []docchat.Record
	inner := &mock.KnowledgeStore{
		ReplaceFn: func(records []docchat.Record) {
			replaced = records
		},
	}

	s := docslog.NewLoggingKnowledgeStore(inner, logger)
	s.Replace([]docchat.Record{{Text: "a", Embedding: []float32{1}}})

	assert.Len(t, replaced, 1)
	assert.Contains(t, buf.String(), "knowledge store replaced")
	assert.Contains(t, buf.String(), "records=1")
}
