// Package feed fetches the project feed document.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/portfolio/internal/services/portfolio/project"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/portfolio/internal/services/portfolio/feed"

// LoadError reports a failed feed load. StatusCode is zero when no response
// was received.
type LoadError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *LoadError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("failed to load %s: %d: %v", e.Path, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("failed to load %s: %d", e.Path, e.StatusCode)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader fetches feed documents over HTTP. It never retries and imposes no
// timeout of its own; callers bound a load through its context.
type Loader struct {
	client  *http.Client
	baseURL *url.URL
}

// NewLoader builds a loader resolving relative paths against baseURL.
// A nil client uses http.DefaultClient.
func NewLoader(client *http.Client, baseURL string) (*Loader, error) {
	if client == nil {
		client = http.DefaultClient
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("feed base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse feed base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("feed base url %q must be absolute", baseURL)
	}
	return &Loader{client: client, baseURL: parsed}, nil
}

// Load fetches and decodes the document at path, bypassing HTTP caches.
func (l *Loader) Load(ctx context.Context, path string) (project.Document, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "feed.load", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("feed.path", path))

	doc, err := l.load(ctx, path)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) && loadErr.StatusCode != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", loadErr.StatusCode))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "feed load failed")
		return project.Document{}, err
	}
	span.SetAttributes(attribute.Int("feed.projects", len(doc.Projects)))
	return doc, nil
}

func (l *Loader) load(ctx context.Context, path string) (project.Document, error) {
	target, err := l.resolve(path)
	if err != nil {
		return project.Document{}, &LoadError{Path: path, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return project.Document{}, &LoadError{Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := l.client.Do(req)
	if err != nil {
		return project.Document{}, &LoadError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return project.Document{}, &LoadError{Path: path, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return project.Document{}, &LoadError{Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	doc, err := project.Decode(body)
	if err != nil {
		return project.Document{}, &LoadError{Path: path, StatusCode: resp.StatusCode, Err: err}
	}
	return doc, nil
}

func (l *Loader) resolve(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("feed path is required")
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse feed path: %w", err)
	}
	return l.baseURL.ResolveReference(ref).String(), nil
}
