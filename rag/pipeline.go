// Package rag orchestrates the retrieval-augmented pipeline for one chat
// session: crawl, chunk, embed and populate during a load, then embed the
// question, rank stored chunks and stream a generated answer per query.
package rag

import (
	"context"
	"iter"
	"log/slog"
	"sync"

	"github.com/fwojciec/docchat"
	"github.com/google/uuid"
)

// State is the pipeline lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Pipeline owns one session's knowledge base and conversation. Queries are
// only answered in StateReady; a failed load returns the pipeline to
// StateIdle without keeping a partial knowledge base.
type Pipeline struct {
	Crawler   docchat.Crawler
	Embedder  docchat.Embedder
	Store     docchat.KnowledgeStore
	Generator docchat.Generator

	// Sitemap, when set, is tried before crawling: a sitemap that lists
	// URLs under the load URL skips link discovery entirely.
	Sitemap docchat.SitemapService

	Config docchat.Config

	// Logger, when set, records load progress and skipped chunks.
	Logger *slog.Logger

	mu      sync.Mutex
	state   State
	id      string
	history *docchat.History
}

// init sets up lazy session state. Callers must hold p.mu.
func (p *Pipeline) init() {
	if p.state == "" {
		p.state = StateIdle
	}
	if p.id == "" {
		p.id = uuid.NewString()
	}
	if p.history == nil {
		p.history = docchat.NewHistory(p.Config.MaxHistoryTurns)
	}
}

// State returns the current lifecycle state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.init()
	return p.state
}

// SessionID returns the stable identifier for this session.
func (p *Pipeline) SessionID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.init()
	return p.id
}

// History returns the retained conversation turns, oldest first.
func (p *Pipeline) History() []docchat.Turn {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.init()
	return p.history.Turns()
}

// Load builds a fresh knowledge base from the documentation site at url.
// The previous knowledge base and conversation are discarded logically on
// entry; the store itself is only replaced once the new base is fully
// populated. On failure the pipeline returns to StateIdle.
func (p *Pipeline) Load(ctx context.Context, url string, progress docchat.ProgressFunc) error {
	p.mu.Lock()
	p.init()
	if p.state == StateLoading {
		p.mu.Unlock()
		return docchat.Errorf(docchat.ECONFLICT, "a load is already in progress")
	}
	p.state = StateLoading
	p.history.Reset()
	p.mu.Unlock()

	pages, err := p.collectPages(ctx, url, progress)
	if err != nil {
		return p.failLoad(err)
	}
	if len(pages) == 0 {
		return p.failLoad(docchat.Errorf(docchat.EUNAVAILABLE,
			"no documentation pages found at %q; try a different URL", url))
	}

	texts := p.chunkPages(pages)
	if len(texts) == 0 {
		return p.failLoad(docchat.Errorf(docchat.EUNAVAILABLE,
			"no usable text found at %q; try a different URL", url))
	}

	vectors, err := p.Embedder.EmbedMany(ctx, texts)
	if err != nil {
		return p.failLoad(err)
	}

	// Zip texts with vectors positionally. A chunk the service returned
	// no vector for is dropped rather than stored with a nil embedding.
	records := make([]docchat.Record, 0, len(texts))
	for i, text := range texts {
		if i >= len(vectors) || len(vectors[i]) == 0 {
			continue
		}
		records = append(records, docchat.Record{Text: text, Embedding: vectors[i]})
	}

	// A majority of chunks failing to embed points at a systemic service
	// problem, not noise. Keep no partial knowledge base.
	dropped := len(texts) - len(records)
	if dropped*2 > len(texts) {
		return p.failLoad(docchat.Errorf(docchat.EINTERNAL,
			"embedding failed for %d of %d chunks", dropped, len(texts)))
	}

	p.Store.Replace(records)

	p.mu.Lock()
	p.state = StateReady
	p.mu.Unlock()

	if p.Logger != nil {
		p.Logger.Info("knowledge base loaded",
			"session", p.SessionID(),
			"url", url,
			"pages", len(pages),
			"records", len(records),
			"dropped", dropped,
		)
	}
	return nil
}

// Ask answers a question against the loaded knowledge base, streaming the
// generated answer. The completed turn enters the conversation history
// only if the stream finishes without error.
func (p *Pipeline) Ask(ctx context.Context, question string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		p.mu.Lock()
		p.init()
		ready := p.state == StateReady
		turns := p.history.Turns()
		p.mu.Unlock()

		if !ready {
			yield("", docchat.Errorf(docchat.ENOTREADY,
				"no documentation loaded yet; load a URL first"))
			return
		}
		if question == "" {
			yield("", docchat.Errorf(docchat.EINVALID, "question required"))
			return
		}

		queryVec, err := p.Embedder.EmbedOne(ctx, question)
		if err != nil {
			yield("", err)
			return
		}

		results := p.Store.Search(queryVec, p.Config.RetrievalTopK, p.Config.RetrievalThreshold)
		passages := make([]string, len(results))
		for i, r := range results {
			passages[i] = r.Text
		}
		if p.Logger != nil {
			p.Logger.Debug("retrieved context",
				"session", p.SessionID(),
				"passages", len(passages),
			)
		}

		var answer string
		for fragment, err := range p.Generator.Answer(ctx, docchat.AnswerRequest{
			Question: question,
			Context:  passages,
			History:  turns,
		}) {
			if err != nil {
				yield("", err)
				return
			}
			answer += fragment
			if !yield(fragment, nil) {
				return
			}
		}

		p.mu.Lock()
		p.history.Add(docchat.Turn{Question: question, Answer: answer})
		p.mu.Unlock()
	}
}

// collectPages tries the sitemap fast path first and falls back to a
// breadth-first crawl when the sitemap yields nothing.
func (p *Pipeline) collectPages(ctx context.Context, url string, progress docchat.ProgressFunc) ([]*docchat.Page, error) {
	if p.Sitemap != nil {
		urls, err := p.Sitemap.DiscoverURLs(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			if p.Logger != nil {
				p.Logger.Warn("sitemap discovery failed, falling back to crawl", "url", url, "err", err)
			}
		} else if len(urls) > 0 {
			pages, err := p.Crawler.FetchAll(ctx, urls, p.Config.MaxCrawlPages, progress)
			if err != nil {
				return nil, err
			}
			if len(pages) > 0 {
				return pages, nil
			}
		}
	}

	return p.Crawler.Crawl(ctx, url, p.Config.MaxCrawlPages, progress)
}

// chunkPages splits every page into bounded chunks, dropping chunks too
// short to be worth embedding and capping chunks per document.
func (p *Pipeline) chunkPages(pages []*docchat.Page) []string {
	var texts []string
	for _, page := range pages {
		kept := 0
		for _, chunk := range docchat.Chunk(page.Content, p.Config.MaxChunkChars) {
			if len(chunk) < docchat.MinChunkChars {
				continue
			}
			if p.Config.MaxChunksPerDoc > 0 && kept >= p.Config.MaxChunksPerDoc {
				if p.Logger != nil {
					p.Logger.Debug("chunk cap reached", "url", page.URL)
				}
				break
			}
			texts = append(texts, chunk)
			kept++
		}
	}
	return texts
}

// failLoad returns the pipeline to StateIdle and passes err through. The
// previous knowledge base is dropped rather than kept stale.
func (p *Pipeline) failLoad(err error) error {
	p.Store.Replace(nil)

	p.mu.Lock()
	p.state = StateIdle
	p.mu.Unlock()

	if p.Logger != nil {
		p.Logger.Error("load failed", "session", p.SessionID(), "err", err)
	}
	return err
}
