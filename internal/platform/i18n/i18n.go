// Package i18n resolves the languages the catalog bundle can serve.
package i18n

import (
	"strings"

	"github.com/louisbranch/iconselect/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	supportedTags = buildSupportedTags()
	matcher       = language.NewMatcher(supportedTags)
)

// SupportedTags returns the language tags backed by the embedded catalogs,
// with the base locale first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the base locale tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and reports whether it names a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Und, false
	}
	return supportedTags[index], true
}

// MatchTags picks the best supported tag for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	_, index, _ := matcher.Match(tags...)
	return supportedTags[index]
}

// LocaleForTag returns the catalog locale identifier for a supported tag.
func LocaleForTag(tag language.Tag) string {
	return MatchTags([]language.Tag{tag}).String()
}

func buildSupportedTags() []language.Tag {
	tags := []language.Tag{language.MustParse(catalog.BaseLocale)}
	for _, locale := range catalog.Default().Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		tags = append(tags, language.MustParse(locale))
	}
	return tags
}
