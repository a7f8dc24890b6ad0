package gallery

import (
	"net/url"

	"github.com/louisbranch/iconselect/internal/platform/icons"
)

const (
	Health = "/healthz"
)

const (
	Icons      = "/icons"
	IconsTable = "/icons/table"
	Sprite     = "/icons/sprite.svg"
)

// IconPath returns the single-icon route for ref.
func IconPath(ref icons.Reference) string {
	return Icons + "/" + url.PathEscape(string(ref.From)) + "/" + url.PathEscape(ref.Name)
}
