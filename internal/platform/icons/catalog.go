package icons

import "strings"

//go:generate go run ../../../cmd/icon-catalog -out ../../../docs/reference/icons.md

// ID is a stable semantic icon identifier, independent of any icon family.
type ID string

// Core icon identifiers.
const (
	IDGeneric            ID = "generic"
	IDHome               ID = "home"
	IDSearch             ID = "search"
	IDSettings           ID = "settings"
	IDProfile            ID = "profile"
	IDUsers              ID = "users"
	IDNotification       ID = "notification"
	IDNotificationUnread ID = "notification-unread"
	IDMail               ID = "mail"
	IDKey                ID = "key"
	IDLogOut             ID = "log-out"
	IDCalendar           ID = "calendar"
	IDChat               ID = "chat"
	IDNote               ID = "note"
	IDInfo               ID = "info"
	IDWarning            ID = "warning"
	IDError              ID = "error"
	IDSuccess            ID = "success"
	IDCopy               ID = "copy"
	IDCheck              ID = "check"
	IDDownload           ID = "download"
	IDFile               ID = "file"
	IDFolder             ID = "folder"
	IDExternalLink       ID = "external-link"
)

// Definition describes a core icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{
		ID:          IDGeneric,
		Name:        "Generic",
		Description: "Default icon for uncategorized entries.",
	},
	{
		ID:          IDHome,
		Name:        "Home",
		Description: "Landing pages and dashboards.",
	},
	{
		ID:          IDSearch,
		Name:        "Search",
		Description: "Search and lookup actions.",
	},
	{
		ID:          IDSettings,
		Name:        "Settings",
		Description: "Application settings and configuration.",
	},
	{
		ID:          IDProfile,
		Name:        "Profile",
		Description: "User profile pages.",
	},
	{
		ID:          IDUsers,
		Name:        "Users",
		Description: "User and member listings.",
	},
	{
		ID:          IDNotification,
		Name:        "Notification",
		Description: "Notification inbox.",
	},
	{
		ID:          IDNotificationUnread,
		Name:        "Unread notification",
		Description: "Notification inbox with unread items.",
	},
	{
		ID:          IDMail,
		Name:        "Mail",
		Description: "Invitations and email delivery.",
	},
	{
		ID:          IDKey,
		Name:        "Key",
		Description: "Secret or API key actions.",
	},
	{
		ID:          IDLogOut,
		Name:        "Log out",
		Description: "User logout actions.",
	},
	{
		ID:          IDCalendar,
		Name:        "Calendar",
		Description: "Scheduling and dated entries.",
	},
	{
		ID:          IDChat,
		Name:        "Chat",
		Description: "Conversations and messaging.",
	},
	{
		ID:          IDNote,
		Name:        "Note",
		Description: "Notes and annotations.",
	},
	{
		ID:          IDInfo,
		Name:        "Info",
		Description: "Informational notices.",
	},
	{
		ID:          IDWarning,
		Name:        "Warning",
		Description: "Warnings that need attention.",
	},
	{
		ID:          IDError,
		Name:        "Error",
		Description: "Failures and error states.",
	},
	{
		ID:          IDSuccess,
		Name:        "Success",
		Description: "Completed or successful actions.",
	},
	{
		ID:          IDCopy,
		Name:        "Copy",
		Description: "Copy to clipboard.",
	},
	{
		ID:          IDCheck,
		Name:        "Check",
		Description: "Confirmation of a completed copy or toggle.",
	},
	{
		ID:          IDDownload,
		Name:        "Download",
		Description: "Download or save actions.",
	},
	{
		ID:          IDFile,
		Name:        "File",
		Description: "Generic files.",
	},
	{
		ID:          IDFolder,
		Name:        "Folder",
		Description: "Folders and collections.",
	},
	{
		ID:          IDExternalLink,
		Name:        "External link",
		Description: "Links that leave the application.",
	},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `go generate ./internal/platform/icons`.\n\n")
	builder.WriteString("| Icon ID | Name | Lucide | Description |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| `")
		builder.WriteString(string(def.ID))
		builder.WriteString("` | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(LucideNameOrDefault(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
