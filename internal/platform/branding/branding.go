// Package branding holds product naming shared by pages and brand marks.
package branding

// AppName is the product name shown in page titles.
const AppName = "Iconselect"

// Title joins a page title with the product name.
func Title(page string) string {
	if page == "" {
		return AppName
	}
	return page + " | " + AppName
}
