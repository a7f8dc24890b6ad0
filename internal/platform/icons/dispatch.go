package icons

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// SelectProps is the dispatcher's call surface: the icon to select plus
// presentation attributes the dispatcher never inspects.
type SelectProps struct {
	Select     Reference
	ClassName  string
	Attributes templ.Attributes
}

// Resolve looks up the family for props.Select and returns the component its
// constructor builds for the selected name. The attribute map is handed over
// as-is and the result is returned unaltered.
func Resolve(registry *Registry, props SelectProps) (templ.Component, error) {
	constructor, err := registry.Lookup(props.Select.From)
	if err != nil {
		return nil, err
	}
	return constructor(Props{
		Name:       props.Select.Name,
		ClassName:  props.ClassName,
		Attributes: props.Attributes,
	}), nil
}

// Icon returns a component that resolves props on every render and surfaces
// resolution failures as the render error.
func (r *Registry) Icon(props SelectProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		component, err := Resolve(r, props)
		if err != nil {
			return err
		}
		if component == nil {
			return nil
		}
		return component.Render(ctx, w)
	})
}
