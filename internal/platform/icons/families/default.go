package families

import "github.com/louisbranch/iconselect/internal/platform/icons"

// Default returns the built-in families keyed by their namespaces, ready for
// icons.NewRegistry. Each call returns a fresh map.
func Default() map[icons.Namespace]icons.Constructor {
	return map[icons.Namespace]icons.Constructor{
		icons.NamespaceCore:   Core,
		icons.NamespaceLucide: Lucide,
		icons.NamespaceBrand:  Brand,
	}
}
