package families

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/iconselect/internal/platform/icons"
)

// Core renders a semantic catalog icon through its Lucide mapping. Unknown
// ids render the generic icon.
func Core(props icons.Props) templ.Component {
	return Lucide(icons.Props{
		Name:       icons.LucideNameOrDefault(icons.ID(props.Name)),
		ClassName:  props.ClassName,
		Attributes: props.Attributes,
	})
}
