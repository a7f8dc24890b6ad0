// Package gallery serves the icon registry over HTTP.
//
// The process builds its registry once at startup and never mutates it. The
// gallery page previews every core catalog icon and every registered
// namespace; the single-icon route renders one reference with query
// parameters forwarded as presentation attributes, so HTMX clients can swap
// icons in without knowing which family draws them.
package gallery
