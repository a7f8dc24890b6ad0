// Package icons resolves symbolic icon references to renderable components.
//
// A Reference names an icon family (its Namespace) and an icon within that
// family. A Registry, built once by the hosting application, maps each
// namespace to the Constructor that renders icons of that family. Resolve
// looks the namespace up, fails with a typed error when it is absent, and
// otherwise hands the icon name and the caller's presentation attributes to
// the constructor untouched.
//
// The package also carries the core icon catalog: stable semantic icon ids
// with human-readable labels and their Lucide mapping, so services can
// communicate intent without dictating presentation.
package icons
