// Package i18n renders localized, user-facing error messages from the
// "errors" namespace of the locale bundle.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/iconselect/internal/platform/i18n/catalog"
)

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// errorsNamespace is the bundle namespace holding error templates.
const errorsNamespace = "errors"

// Catalog holds the error message templates of one locale. Templates are
// parsed once, when the catalog is built.
type Catalog struct {
	locale    string
	messages  map[Code]string
	templates map[Code]*template.Template
}

// catalogs caches one Catalog per bundle and locale.
var catalogs sync.Map

type catalogKey struct {
	bundle *i18ncatalog.Bundle
	locale string
}

// GetCatalog returns the catalog for locale. Locales missing from the bundle,
// including the empty one, resolve to the base locale.
func GetCatalog(locale string) *Catalog {
	return catalogFromBundle(i18ncatalog.Default(), locale)
}

func catalogFromBundle(bundle *i18ncatalog.Bundle, locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = i18ncatalog.BaseLocale
	}
	if cached, ok := catalogs.Load(catalogKey{bundle, requested}); ok {
		return cached.(*Catalog)
	}

	resolved, messages := bundle.NamespaceMessagesWithFallback(requested, errorsNamespace)
	built, _ := catalogs.LoadOrStore(catalogKey{bundle, resolved}, newCatalog(resolved, messages))
	if resolved != requested {
		catalogs.Store(catalogKey{bundle, requested}, built)
	}
	return built.(*Catalog)
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the template for code with metadata. An unknown code
// renders as the code itself; a template that fails to parse or execute
// renders as its raw text. Missing metadata keys render as "<no value>".
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	raw, ok := c.messages[code]
	if !ok {
		return code
	}
	tmpl := c.templates[code]
	if tmpl == nil {
		return raw
	}
	if metadata == nil {
		metadata = map[string]string{}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return raw
	}
	return buf.String()
}

func newCatalog(locale string, messages map[string]string) *Catalog {
	c := &Catalog{
		locale:    locale,
		messages:  make(map[Code]string, len(messages)),
		templates: make(map[Code]*template.Template, len(messages)),
	}
	for code, raw := range messages {
		c.messages[code] = raw
		if tmpl, err := template.New(code).Parse(raw); err == nil {
			c.templates[code] = tmpl
		}
	}
	return c
}
