package gallery

import (
	"net/http"
	"strings"

	platformi18n "github.com/louisbranch/iconselect/internal/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language on pages.
const LangParam = "lang"

// Localizer provides translated strings for views.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or the key if no localizer is available.
func T(loc Localizer, key string) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key)
}

// resolveTag picks the response language. allowQuery controls whether the
// lang query parameter is honored; icon routes forward every query key as an
// attribute and so rely on Accept-Language alone.
func resolveTag(r *http.Request, allowQuery bool) language.Tag {
	if r == nil {
		return platformi18n.DefaultTag()
	}
	if allowQuery {
		if tag, ok := platformi18n.ParseTag(r.URL.Query().Get(LangParam)); ok {
			return tag
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return platformi18n.MatchTags(tags)
		}
	}
	return platformi18n.DefaultTag()
}

func localizer(tag language.Tag) (*message.Printer, string) {
	return message.NewPrinter(tag), platformi18n.LocaleForTag(tag)
}
