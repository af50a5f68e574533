// Package project defines the portfolio project record and the feed document
// that carries it.
package project

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// Project is one portfolio entry. Optional string fields are empty when the
// feed omits them; callers apply display defaults.
type Project struct {
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	Category   string   `json:"category,omitempty"`
	Status     string   `json:"status,omitempty"`
	Tagline    string   `json:"tagline,omitempty"`
	GitHub     string   `json:"github,omitempty"`
	Roles      []string `json:"roles,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Tools      []string `json:"tools,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// HasGitHub reports whether the project links a repository.
func (p Project) HasGitHub() bool {
	return p.GitHub != ""
}

// Document is the feed shape: {"projects": [...]}.
type Document struct {
	Projects []Project `json:"projects"`
}

// Decode parses a feed body. Line and block comments and trailing commas
// are tolerated so hand-maintained feeds can carry notes.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return Document{}, fmt.Errorf("decode project feed: %w", err)
	}
	if doc.Projects == nil {
		doc.Projects = []Project{}
	}
	return doc, nil
}
