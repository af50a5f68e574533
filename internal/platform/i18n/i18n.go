// Package i18n defines the languages the portfolio service can render.
package i18n

import (
	"strings"

	"github.com/louisbranch/portfolio/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	supportedTags = loadSupportedTags()
	matcher       = language.NewMatcher(supportedTags)
)

func loadSupportedTags() []language.Tag {
	tags := []language.Tag{language.MustParse(catalog.BaseLocale)}
	for _, locale := range catalog.Default().Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		if tag, err := language.Parse(locale); err == nil {
			tags = append(tags, tag)
		}
	}
	return tags
}

// SupportedTags returns the catalog locales, base locale first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the base catalog locale.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and reports whether it maps onto a supported locale.
// Base-language matches are accepted: "pt" resolves to pt-BR.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supportedTags[index], true
}

// MatchTags picks the best supported tag for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}
