package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/rag"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Config docchat.Config
	Logger *slog.Logger

	Crawler  docchat.Crawler
	Sitemaps docchat.SitemapService
	Pipeline *rag.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Chat  ChatCmd  `cmd:"" help:"Load a documentation site and chat with it"`
	Crawl CrawlCmd `cmd:"" help:"Preview the pages a documentation crawl would collect"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	URL string `arg:"" help:"Documentation URL to load"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL      string `arg:"" help:"Documentation URL to crawl"`
	MaxPages int    `short:"n" help:"Page limit (defaults to the configured maximum)"`
	Full     bool   `help:"Show extracted page content"`
}
