package icons

import (
	"fmt"
	"sort"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/iconselect/internal/platform/errors"
)

// Props is the argument set a Constructor receives. Name always carries the
// reference's icon name; ClassName and Attributes are forwarded from the
// caller verbatim.
type Props struct {
	Name       string
	ClassName  string
	Attributes templ.Attributes
}

// Constructor builds the component for one icon of a family.
type Constructor func(Props) templ.Component

// ErrUnknownNamespace matches, via errors.Is, every failure caused by a
// namespace missing from the registry.
var ErrUnknownNamespace = apperrors.New(apperrors.CodeIconNamespaceUnknown, "unknown icon namespace")

// Registry maps namespaces to constructors. It is immutable once built and
// safe for concurrent use.
type Registry struct {
	constructors map[Namespace]Constructor
}

// NewRegistry copies constructors into a new Registry. Blank namespaces and
// nil constructors are rejected.
func NewRegistry(constructors map[Namespace]Constructor) (*Registry, error) {
	copied := make(map[Namespace]Constructor, len(constructors))
	for namespace, constructor := range constructors {
		if strings.TrimSpace(string(namespace)) == "" {
			return nil, apperrors.WithMetadata(apperrors.CodeIconRegistryInvalid, "icon namespace is required", map[string]string{"Namespace": string(namespace)})
		}
		if constructor == nil {
			return nil, apperrors.WithMetadata(apperrors.CodeIconRegistryInvalid, fmt.Sprintf("icon namespace %q has no constructor", namespace), map[string]string{"Namespace": string(namespace)})
		}
		copied[namespace] = constructor
	}
	return &Registry{constructors: copied}, nil
}

// MustNewRegistry is NewRegistry for startup wiring; it panics on error.
func MustNewRegistry(constructors map[Namespace]Constructor) *Registry {
	registry, err := NewRegistry(constructors)
	if err != nil {
		panic(fmt.Sprintf("icons: %v", err))
	}
	return registry
}

// Lookup returns the constructor registered under namespace.
func (r *Registry) Lookup(namespace Namespace) (Constructor, error) {
	if r == nil {
		return nil, apperrors.New(apperrors.CodeIconRegistryMissing, "icon registry is nil")
	}
	constructor, ok := r.constructors[namespace]
	if !ok {
		return nil, apperrors.WithMetadata(
			apperrors.CodeIconNamespaceUnknown,
			fmt.Sprintf("icon namespace %q is not registered", namespace),
			map[string]string{"Namespace": string(namespace)},
		)
	}
	return constructor, nil
}

// Has reports whether namespace is registered.
func (r *Registry) Has(namespace Namespace) bool {
	if r == nil {
		return false
	}
	_, ok := r.constructors[namespace]
	return ok
}

// Namespaces returns the registered namespaces in sorted order.
func (r *Registry) Namespaces() []Namespace {
	if r == nil {
		return nil
	}
	out := make([]Namespace, 0, len(r.constructors))
	for namespace := range r.constructors {
		out = append(out, namespace)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
