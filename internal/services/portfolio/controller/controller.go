// Package controller owns the filter state of one projects page view and
// recomputes its output after every browser event.
package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/louisbranch/portfolio/internal/services/portfolio/filter"
	"github.com/louisbranch/portfolio/internal/services/portfolio/project"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/language"
)

const tracerName = "github.com/louisbranch/portfolio/internal/services/portfolio/controller"

// Source loads the project feed.
type Source interface {
	Load(ctx context.Context, path string) (project.Document, error)
}

// Status is the lifecycle position of a controller.
type Status int

const (
	StatusUninitialized Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// Option configures a controller.
type Option func(*Controller)

// WithLanguage sets the collation language of the pill vocabulary.
func WithLanguage(tag language.Tag) Option {
	return func(c *Controller) {
		c.tag = tag
	}
}

// Controller is safe for concurrent use; events for one view are applied
// one batch at a time.
type Controller struct {
	source Source
	path   string
	tag    language.Tag

	mu       sync.Mutex
	status   Status
	loadErr  error
	projects []project.Project
	vocab    filter.Vocabulary
	state    filter.State
}

// New returns an uninitialized controller that will load path from source.
func New(source Source, path string, opts ...Option) *Controller {
	c := &Controller{
		source: source,
		path:   path,
		tag:    language.AmericanEnglish,
		state:  filter.NewState(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Init performs the single load of the view. It moves the controller to
// Loaded or Failed; later calls return the first outcome without loading
// again.
func (c *Controller) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusUninitialized {
		return c.loadErr
	}
	if c.source == nil {
		c.fail(errors.New("project source is not configured"))
		return c.loadErr
	}
	doc, err := c.source.Load(ctx, c.path)
	if err != nil {
		c.fail(err)
		return err
	}
	c.projects = doc.Projects
	if c.projects == nil {
		c.projects = []project.Project{}
	}
	c.vocab = filter.DeriveVocabulary(c.projects, c.tag)
	c.state = filter.NewState()
	c.status = StatusLoaded
	return nil
}

func (c *Controller) fail(err error) {
	c.status = StatusFailed
	c.loadErr = err
	c.projects = nil
	c.vocab = filter.Vocabulary{}
}

// Status reports the lifecycle position.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Event is a browser interaction that mutates filter state.
type Event interface {
	apply(c *Controller)
}

// Search replaces the query. Surrounding whitespace is ignored.
type Search struct {
	Query string
}

func (e Search) apply(c *Controller) {
	c.state.Query = strings.TrimSpace(e.Query)
}

// Toggle flips a label in a facet's selection. Labels outside the view's
// vocabulary are ignored.
type Toggle struct {
	Facet filter.Facet
	Label string
}

func (e Toggle) apply(c *Controller) {
	if !c.vocab.Contains(e.Facet, e.Label) {
		return
	}
	c.state.Selected(e.Facet).Toggle(e.Label)
}

// Clear empties the query and both selections.
type Clear struct{}

func (Clear) apply(c *Controller) {
	c.state.Clear()
}

// Dispatch applies events in order and returns one recompute of the view.
// Events are ignored unless the controller is Loaded.
func (c *Controller) Dispatch(ctx context.Context, events ...Event) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusLoaded {
		for _, event := range events {
			if event != nil {
				event.apply(c)
			}
		}
	}
	return c.recompute(ctx)
}

// View recomputes the current output without changing state.
func (c *Controller) View(ctx context.Context) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recompute(ctx)
}

// Pill is one vocabulary label with its selection flag.
type Pill struct {
	Label  string
	Active bool
}

// View is the result of a recompute pass.
type View struct {
	Status   Status
	Query    string
	Projects []project.Project
	Total    int
	Roles    []Pill
	Skills   []Pill
	Err      error
}

// Failed reports whether the view shows a load failure.
func (v View) Failed() bool {
	return v.Status == StatusFailed
}

func (c *Controller) recompute(ctx context.Context) View {
	_, span := otel.Tracer(tracerName).Start(ctx, "controller.recompute")
	defer span.End()

	view := View{
		Status: c.status,
		Query:  c.state.Query,
		Err:    c.loadErr,
	}
	if c.status != StatusLoaded {
		span.SetAttributes(attribute.String("controller.status", c.status.String()))
		return view
	}
	view.Projects = filter.Apply(c.projects, c.state)
	view.Total = len(c.projects)
	view.Roles = pills(c.vocab.Roles, c.state.Roles)
	view.Skills = pills(c.vocab.Skills, c.state.Skills)
	span.SetAttributes(
		attribute.String("controller.status", c.status.String()),
		attribute.Int("controller.visible", len(view.Projects)),
		attribute.Int("controller.total", view.Total),
	)
	return view
}

func pills(labels []string, selected filter.Set) []Pill {
	out := make([]Pill, 0, len(labels))
	for _, label := range labels {
		out = append(out, Pill{Label: label, Active: selected.Has(label)})
	}
	return out
}
