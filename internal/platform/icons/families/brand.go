package families

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/iconselect/internal/platform/errors"
	"github.com/louisbranch/iconselect/internal/platform/icons"
)

// Brand mark names.
const (
	BrandMark     = "mark"
	BrandMarkMono = "mark-mono"
)

type brandGlyph struct {
	viewBox string
	body    string
}

var brandGlyphs = map[string]brandGlyph{
	BrandMark: {
		viewBox: "0 0 32 32",
		body: `<rect width="32" height="32" rx="8" fill="#4f46e5"></rect>` +
			`<path d="M10 9h12M16 9v14M10 23h12" stroke="#ffffff" stroke-width="3" stroke-linecap="round" fill="none"></path>`,
	},
	BrandMarkMono: {
		viewBox: "0 0 32 32",
		body: `<rect x="1.5" y="1.5" width="29" height="29" rx="7" stroke="currentColor" stroke-width="3" fill="none"></rect>` +
			`<path d="M10 9h12M16 9v14M10 23h12" stroke="currentColor" stroke-width="3" stroke-linecap="round" fill="none"></path>`,
	},
}

// BrandNames returns the shipped brand mark names in sorted order.
func BrandNames() []string {
	names := make([]string, 0, len(brandGlyphs))
	for name := range brandGlyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Brand renders one of the inline brand marks. Rendering an unknown name
// fails with ICON_NAME_UNKNOWN and writes nothing.
func Brand(props icons.Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		glyph, ok := brandGlyphs[props.Name]
		if !ok {
			return apperrors.WithMetadata(
				apperrors.CodeIconNameUnknown,
				fmt.Sprintf("brand icon %q does not exist", props.Name),
				map[string]string{"Namespace": string(icons.NamespaceBrand), "Name": props.Name},
			)
		}
		fixed := templ.OrderedAttributes{
			{Key: "xmlns", Value: svgNamespace},
			{Key: "viewBox", Value: glyph.viewBox},
			{Key: "role", Value: "img"},
		}
		if err := openSVG(ctx, w, fixed, props.ClassName, props.Attributes); err != nil {
			return err
		}
		_, err := io.WriteString(w, glyph.body+"</svg>")
		return err
	})
}
