// Package routepath holds the URL paths served by the portfolio service.
package routepath

import "net/url"

const (
	Root         = "/"
	Health       = "/up"
	Projects     = "/projects/"
	DataPrefix   = "/data/"
	StaticPrefix = "/static/"
	DefaultFeed  = DataPrefix + "projects.json"
	eventsSuffix = "/events"
)

// ProjectView is the page of one live view.
func ProjectView(viewID string) string {
	return Projects + url.PathEscape(viewID)
}

// ProjectViewEvents receives browser events for one live view.
func ProjectViewEvents(viewID string) string {
	return ProjectView(viewID) + eventsSuffix
}
