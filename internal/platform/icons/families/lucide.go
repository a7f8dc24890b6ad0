package families

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/iconselect/internal/platform/icons"
)

var lucideFixedAttributes = templ.OrderedAttributes{
	{Key: "xmlns", Value: svgNamespace},
	{Key: "viewBox", Value: "0 0 24 24"},
	{Key: "aria-hidden", Value: "true"},
	{Key: "focusable", Value: "false"},
}

const svgNamespace = "http://www.w3.org/2000/svg"

// Lucide renders a reference to a symbol of the Lucide sprite. The sprite
// must be present on the page; names it lacks render an empty icon.
func Lucide(props icons.Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openSVG(ctx, w, lucideFixedAttributes, props.ClassName, props.Attributes); err != nil {
			return err
		}
		href := "#" + icons.LucideSymbolID(props.Name)
		_, err := io.WriteString(w, `<use href="`+templ.EscapeString(href)+`"></use></svg>`)
		return err
	})
}
