// Package portfolio parses portfolio service flags and launches the service.
package portfolio

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/portfolio/internal/platform/cmd"
	"github.com/louisbranch/portfolio/internal/services/portfolio"
)

// Config holds the portfolio command configuration.
type Config struct {
	HTTPAddr      string        `env:"PORTFOLIO_HTTP_ADDR" envDefault:"localhost:8080"`
	FeedBaseURL   string        `env:"PORTFOLIO_FEED_BASE_URL"`
	FeedPath      string        `env:"PORTFOLIO_FEED_PATH" envDefault:"/data/projects.json"`
	DataDir       string        `env:"PORTFOLIO_DATA_DIR" envDefault:"data"`
	ViewCapacity  int           `env:"PORTFOLIO_VIEW_CAPACITY" envDefault:"1024"`
	ViewTTL       time.Duration `env:"PORTFOLIO_VIEW_TTL" envDefault:"30m"`
	HTMXScriptURL string        `env:"PORTFOLIO_HTMX_SCRIPT_URL"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.FeedBaseURL, "feed-base-url", cfg.FeedBaseURL, "Base URL the project feed path resolves against")
	fs.StringVar(&cfg.FeedPath, "feed-path", cfg.FeedPath, "Project feed path or absolute URL")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory served under /data/")
	fs.IntVar(&cfg.ViewCapacity, "view-capacity", cfg.ViewCapacity, "Maximum live page views kept in memory")
	fs.DurationVar(&cfg.ViewTTL, "view-ttl", cfg.ViewTTL, "Idle time before a page view expires")
	fs.StringVar(&cfg.HTMXScriptURL, "htmx-script-url", cfg.HTMXScriptURL, "HTMX script URL")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the portfolio HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePortfolio, func(ctx context.Context) error {
		server, err := portfolio.NewServer(ctx, portfolio.Config{
			HTTPAddr:      cfg.HTTPAddr,
			FeedBaseURL:   cfg.FeedBaseURL,
			FeedPath:      cfg.FeedPath,
			DataDir:       cfg.DataDir,
			ViewCapacity:  cfg.ViewCapacity,
			ViewTTL:       cfg.ViewTTL,
			HTMXScriptURL: cfg.HTMXScriptURL,
		})
		if err != nil {
			return fmt.Errorf("init portfolio server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve portfolio: %w", err)
		}
		return nil
	})
}
