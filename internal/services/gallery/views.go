package gallery

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/iconselect/internal/platform/branding"
	"github.com/louisbranch/iconselect/internal/platform/icons"
)

// IconRow holds formatted icon catalog data for display.
type IconRow struct {
	ID          icons.ID
	Label       string
	Description string
	LucideName  string
	Icon        templ.Component
}

// NamespaceRow previews one registered namespace.
type NamespaceRow struct {
	Namespace icons.Namespace
	Sample    icons.Reference
	Icon      templ.Component
}

// GalleryView is everything the gallery page renders.
type GalleryView struct {
	Lang       string
	Loc        Localizer
	Rows       []IconRow
	Namespaces []NamespaceRow
}

// markup accumulates the first write error so views read top to bottom.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) component(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

// GalleryPage renders the full gallery document, sprite included.
func GalleryPage(view GalleryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{ctx: ctx, w: w}
		m.raw(`<!doctype html><html lang="`)
		m.text(view.Lang)
		m.raw(`"><head><meta charset="utf-8"><title>`)
		m.text(branding.Title(T(view.Loc, "gallery.title")))
		m.raw(`</title></head><body>`)
		m.raw(icons.LucideSprite())
		m.raw(`<main>`)
		m.component(GalleryTable(view))
		m.raw(`</main></body></html>`)
		return m.err
	})
}

// GalleryTable renders the catalog table and namespace list.
func GalleryTable(view GalleryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{ctx: ctx, w: w}
		m.raw(`<section id="icon-catalog"><h2>`)
		m.text(T(view.Loc, "gallery.heading.catalog"))
		m.raw(`</h2><table><thead><tr>`)
		for _, key := range []string{"gallery.column.icon", "gallery.column.id", "gallery.column.name", "gallery.column.lucide", "gallery.column.description"} {
			m.raw(`<th>`)
			m.text(T(view.Loc, key))
			m.raw(`</th>`)
		}
		m.raw(`</tr></thead><tbody>`)
		for _, row := range view.Rows {
			m.raw(`<tr data-icon-id="`)
			m.text(string(row.ID))
			m.raw(`"><td>`)
			m.component(row.Icon)
			m.raw(`</td><td><code>`)
			m.text(string(row.ID))
			m.raw(`</code></td><td>`)
			m.text(row.Label)
			m.raw(`</td><td>`)
			m.text(row.LucideName)
			m.raw(`</td><td>`)
			m.text(row.Description)
			m.raw(`</td></tr>`)
		}
		m.raw(`</tbody></table></section><section id="icon-namespaces"><h2>`)
		m.text(T(view.Loc, "gallery.heading.namespaces"))
		m.raw(`</h2><ul>`)
		for _, ns := range view.Namespaces {
			m.raw(`<li data-namespace="`)
			m.text(string(ns.Namespace))
			m.raw(`">`)
			m.component(ns.Icon)
			m.raw(`<code>`)
			m.text(string(ns.Namespace))
			m.raw(`</code>`)
			if ns.Icon != nil {
				m.raw(` <a href="`)
				m.text(IconPath(ns.Sample))
				m.raw(`">`)
				m.text(ns.Sample.String())
				m.raw(`</a>`)
			}
			m.raw(`</li>`)
		}
		m.raw(`</ul></section>`)
		return m.err
	})
}

// ErrorFragment renders a user-facing failure.
func ErrorFragment(pe publicError) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{ctx: ctx, w: w}
		m.raw(`<p role="alert" data-reason="`)
		m.text(pe.Reason)
		m.raw(`">`)
		m.text(pe.Message)
		m.raw(`</p>`)
		return m.err
	})
}
