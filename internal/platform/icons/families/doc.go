// Package families provides the built-in icon families a host registers with
// an icons.Registry.
//
// Each family is an icons.Constructor. Families own their name validity: the
// Lucide and core families always render, the brand family rejects names it
// does not ship.
package families
