package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/crawl"
	"github.com/fwojciec/docchat/gemini"
	"github.com/fwojciec/docchat/goquery"
	docchathttp "github.com/fwojciec/docchat/http"
	"github.com/fwojciec/docchat/memstore"
	"github.com/fwojciec/docchat/rag"
	"github.com/fwojciec/docchat/readability"
	docchatslog "github.com/fwojciec/docchat/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config holds the deployment tuning knobs. Set before calling Run().
	Config docchat.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Config: docchat.DefaultConfig()}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := newLogger(stderr)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Config: m.Config,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docchat"),
		kong.Description("Chat with any documentation website."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docchat --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	fetcher := docchathttp.NewFetcher(docchathttp.WithTimeout(m.Config.FetchTimeout))
	deps.Sitemaps = docchatslog.NewLoggingSitemapService(docchathttp.NewSitemapService(nil), logger)
	deps.Crawler = &crawl.Crawler{
		Fetcher:     fetcher,
		Extractor:   goquery.NewExtractor(),
		Fallback:    readability.NewExtractor(),
		Links:       goquery.NewLinkExtractor(),
		Limiter:     crawl.NewDomainLimiter(1.0),
		Policy:      docchat.DefaultLinkPolicy(),
		Concurrency: m.Config.CrawlConcurrency,
		Logger:      logger,
	}

	if cmd == "chat" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Pipeline = &rag.Pipeline{
			Crawler:   deps.Crawler,
			Sitemap:   deps.Sitemaps,
			Embedder:  docchatslog.NewLoggingEmbedder(gemini.NewEmbedder(client, m.Config), logger),
			Store:     docchatslog.NewLoggingKnowledgeStore(memstore.NewStore(), logger),
			Generator: gemini.NewGenerator(client),
			Config:    m.Config,
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

// newLogger builds the process logger. DOCCHAT_DEBUG enables debug output.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("DOCCHAT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
