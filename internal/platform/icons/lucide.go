package icons

import _ "embed"

const lucideSymbolPrefix = "lucide-"

//go:embed lucide-sprite.svg
var lucideSprite string

var lucideIconNames = map[ID]string{
	IDGeneric:            "sparkle",
	IDHome:               "house",
	IDSearch:             "search",
	IDSettings:           "settings",
	IDProfile:            "circle-user",
	IDUsers:              "users",
	IDNotification:       "bell",
	IDNotificationUnread: "bell-dot",
	IDMail:               "mail",
	IDKey:                "key",
	IDLogOut:             "log-out",
	IDCalendar:           "calendar",
	IDChat:               "message-circle",
	IDNote:               "scroll",
	IDInfo:               "info",
	IDWarning:            "triangle-alert",
	IDError:              "circle-x",
	IDSuccess:            "circle-check",
	IDCopy:               "copy",
	IDCheck:              "check",
	IDDownload:           "download",
	IDFile:               "file",
	IDFolder:             "folder",
	IDExternalLink:       "external-link",
}

// LucideName returns the Lucide icon name for a core icon identifier.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the icon ID is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return lucideIconNames[IDGeneric]
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for core Lucide icons.
func LucideSprite() string {
	return lucideSprite
}
