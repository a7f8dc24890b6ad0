package gallery

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/iconselect/internal/platform/errors"
	platformi18n "github.com/louisbranch/iconselect/internal/platform/i18n"
	"github.com/louisbranch/iconselect/internal/platform/icons"
	"github.com/louisbranch/iconselect/internal/platform/icons/families"
	"github.com/louisbranch/iconselect/internal/platform/requestctx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/iconselect/internal/services/gallery"

// htmxRequestHeader is the header HTMX sets on partial requests.
const htmxRequestHeader = "HX-Request"

// classParam is the query key forwarded as the icon's class name.
const classParam = "class"

// attributeNamePattern accepts HTML attribute names a query may forward.
var attributeNamePattern = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)

// namespaceSamples names the icon previewed for each built-in namespace.
var namespaceSamples = map[icons.Namespace]string{
	icons.NamespaceCore:   string(icons.IDGeneric),
	icons.NamespaceLucide: icons.LucideNameOrDefault(icons.IDGeneric),
	icons.NamespaceBrand:  families.BrandMark,
}

// Handler serves gallery routes from a read-only registry.
type Handler struct {
	registry *icons.Registry
	tracer   trace.Tracer
}

// NewHandler builds a Handler. A nil provider uses the global one.
func NewHandler(registry *icons.Registry, provider trace.TracerProvider) *Handler {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &Handler{
		registry: registry,
		tracer:   provider.Tracer(tracerName),
	}
}

// RegisterRoutes wires gallery routes into the provided mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	if mux == nil || h == nil {
		return
	}
	mux.HandleFunc("GET "+Health, h.HandleHealth)
	mux.HandleFunc("GET "+Icons, h.HandleGallery)
	mux.HandleFunc("GET "+IconsTable, h.HandleGalleryTable)
	mux.HandleFunc("GET "+Sprite, h.HandleSprite)
	mux.HandleFunc("GET "+Icons+"/{namespace}/{name}", h.HandleIcon)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// HandleGallery renders the gallery page, or only its table for HTMX requests.
func (h *Handler) HandleGallery(w http.ResponseWriter, r *http.Request) {
	view, locale := h.galleryView(r)
	if isHTMXRequest(r) {
		h.writeComponent(w, r, GalleryTable(view), locale)
		return
	}
	h.writeComponent(w, r, GalleryPage(view), locale)
}

// HandleGalleryTable renders the catalog table fragment.
func (h *Handler) HandleGalleryTable(w http.ResponseWriter, r *http.Request) {
	view, locale := h.galleryView(r)
	h.writeComponent(w, r, GalleryTable(view), locale)
}

// HandleSprite serves the Lucide sprite sheet.
func (h *Handler) HandleSprite(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(icons.LucideSprite()))
}

// HandleIcon renders the icon named by the path. The class query parameter
// becomes the class name; every other parameter is forwarded as an attribute.
func (h *Handler) HandleIcon(w http.ResponseWriter, r *http.Request) {
	ref := icons.Reference{
		From: icons.Namespace(r.PathValue("namespace")),
		Name: r.PathValue("name"),
	}
	locale := platformi18n.LocaleForTag(resolveTag(r, false))

	className, attrs, err := attributesFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err, locale)
		return
	}

	ctx, span := h.tracer.Start(r.Context(), "icons.render", trace.WithAttributes(
		attribute.String("icon.namespace", string(ref.From)),
		attribute.String("icon.name", ref.Name),
		attribute.Int("icon.attributes", len(attrs)),
		attribute.String("request.id", requestctx.RequestIDFromContext(r.Context())),
	))
	defer span.End()

	var body bytes.Buffer
	component := h.registry.Icon(icons.SelectProps{Select: ref, ClassName: className, Attributes: attrs})
	if err := component.Render(ctx, &body); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, string(apperrors.CodeOf(err)))
		writeError(w, r, err, locale)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body.Bytes())
}

func (h *Handler) galleryView(r *http.Request) (GalleryView, string) {
	tag := resolveTag(r, true)
	printer, locale := localizer(tag)
	view := GalleryView{Lang: tag.String(), Loc: printer}

	hasCore := h.registry.Has(icons.NamespaceCore)
	for _, def := range icons.Catalog() {
		row := IconRow{
			ID:          def.ID,
			Label:       catalogLabel(printer, def),
			Description: def.Description,
			LucideName:  icons.LucideNameOrDefault(def.ID),
		}
		if hasCore {
			row.Icon = h.registry.Icon(icons.SelectProps{
				Select:    icons.Reference{From: icons.NamespaceCore, Name: string(def.ID)},
				ClassName: "icon-preview",
			})
		}
		view.Rows = append(view.Rows, row)
	}

	for _, namespace := range h.registry.Namespaces() {
		row := NamespaceRow{Namespace: namespace}
		if sample, ok := namespaceSamples[namespace]; ok {
			row.Sample = icons.Reference{From: namespace, Name: sample}
			row.Icon = h.registry.Icon(icons.SelectProps{Select: row.Sample, ClassName: "icon-preview"})
		}
		view.Namespaces = append(view.Namespaces, row)
	}
	return view, locale
}

// catalogLabel prefers the localized icon label over the catalog's English name.
func catalogLabel(loc Localizer, def icons.Definition) string {
	key := "icons." + string(def.ID)
	if label := T(loc, key); label != "" && label != key {
		return label
	}
	return def.Name
}

// writeComponent renders into a buffer first so a failing component never
// leaves a half-written response.
func (h *Handler) writeComponent(w http.ResponseWriter, r *http.Request, component templ.Component, locale string) {
	var body bytes.Buffer
	if err := component.Render(r.Context(), &body); err != nil {
		writeError(w, r, err, locale)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body.Bytes())
}

// attributesFromQuery splits query parameters into the class name and the
// forwarded attribute map. Event handler attributes and names that are not
// valid HTML attribute names are rejected.
func attributesFromQuery(query url.Values) (string, templ.Attributes, error) {
	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var className string
	var attrs templ.Attributes
	for _, key := range keys {
		values := query[key]
		if len(values) == 0 {
			continue
		}
		if key == classParam {
			className = values[0]
			continue
		}
		if !attributeNamePattern.MatchString(key) || strings.HasPrefix(strings.ToLower(key), "on") {
			return "", nil, apperrors.WithMetadata(
				apperrors.CodeIconAttributeInvalid,
				fmt.Sprintf("attribute %q cannot be forwarded", key),
				map[string]string{"Attribute": key},
			)
		}
		if attrs == nil {
			attrs = templ.Attributes{}
		}
		attrs[key] = values[0]
	}
	return className, attrs, nil
}

func isHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}
