package icons

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/iconselect/internal/platform/errors"
)

// Namespace identifies the icon family a name is looked up within.
type Namespace string

// Namespaces served by the built-in families.
const (
	NamespaceCore   Namespace = "core"
	NamespaceLucide Namespace = "lucide"
	NamespaceBrand  Namespace = "brand"
)

// referenceSeparator splits the textual "namespace:name" form.
const referenceSeparator = ":"

// Reference selects one icon: a family and a name meaningful to that family.
type Reference struct {
	From Namespace
	Name string
}

// String returns the textual "namespace:name" form.
func (r Reference) String() string {
	return string(r.From) + referenceSeparator + r.Name
}

// ParseReference parses the textual "namespace:name" form. Both parts are
// trimmed and must be non-empty; the name may itself contain separators.
func ParseReference(value string) (Reference, error) {
	namespace, name, found := strings.Cut(value, referenceSeparator)
	namespace = strings.TrimSpace(namespace)
	name = strings.TrimSpace(name)
	if !found || namespace == "" || name == "" {
		return Reference{}, apperrors.WithMetadata(
			apperrors.CodeIconReferenceInvalid,
			fmt.Sprintf("icon reference %q must look like namespace:name", value),
			map[string]string{"Reference": value},
		)
	}
	return Reference{From: Namespace(namespace), Name: name}, nil
}
