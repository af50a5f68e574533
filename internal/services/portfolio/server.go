// Package portfolio hosts the project browser HTTP service.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/portfolio/internal/platform/timeouts"
	portfolioapp "github.com/louisbranch/portfolio/internal/services/portfolio/app"
	"github.com/louisbranch/portfolio/internal/services/portfolio/controller"
	"github.com/louisbranch/portfolio/internal/services/portfolio/feed"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/observability"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
	portfoliostatic "github.com/louisbranch/portfolio/internal/services/portfolio/static"
	"github.com/louisbranch/portfolio/internal/services/portfolio/viewstore"
)

// Config defines startup inputs for the portfolio service.
type Config struct {
	HTTPAddr string
	// FeedBaseURL resolves FeedPath; empty derives it from HTTPAddr so the
	// service loads the feed it serves under /data/.
	FeedBaseURL   string
	FeedPath      string
	DataDir       string
	ViewCapacity  int
	ViewTTL       time.Duration
	HTMXScriptURL string
	// HTTPClient fetches the feed; nil uses http.DefaultClient.
	HTTPClient *http.Client
	// Source replaces the HTTP feed loader when set.
	Source controller.Source
	Logger *log.Logger
}

// Server hosts the portfolio HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	source := cfg.Source
	if source == nil {
		loader, err := feed.NewLoader(cfg.HTTPClient, feedBaseURL(cfg))
		if err != nil {
			return nil, fmt.Errorf("build feed loader: %w", err)
		}
		source = loader
	}
	feedPath := strings.TrimSpace(cfg.FeedPath)
	if feedPath == "" {
		feedPath = routepath.DefaultFeed
	}
	dataDir := strings.TrimSpace(cfg.DataDir)
	if dataDir == "" {
		dataDir = "data"
	}

	deps := module.Dependencies{
		Source:        source,
		FeedPath:      feedPath,
		Views:         viewstore.New[*controller.Controller](cfg.ViewCapacity, cfg.ViewTTL),
		DataDir:       dataDir,
		HTMXScriptURL: strings.TrimSpace(cfg.HTMXScriptURL),
		Logger:        logger,
	}
	h, err := portfolioapp.Composer{}.Compose(portfolioapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(portfoliostatic.FS)))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

// feedBaseURL returns the configured base URL or a loopback URL for the
// service's own listener.
func feedBaseURL(cfg Config) string {
	if base := strings.TrimSpace(cfg.FeedBaseURL); base != "" {
		return base
	}
	addr := strings.TrimSpace(cfg.HTTPAddr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

// NewServer validates config and constructs a portfolio server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	cfg.HTTPAddr = httpAddr
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose portfolio handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("portfolio server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown portfolio http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve portfolio http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
