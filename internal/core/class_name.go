package core

import "strings"

// SanitizeClassName turns the dotted prefix of a translation key into a
// resolver-ready class name. Segments equal to their lowercase form are
// package segments; the first other segment is the root class and any
// later ones are nested classes, joined with $.
//
//	com.example.Foo.Nested -> com.example.Foo$Nested
//
// Purely numeric or symbolic segments count as package segments. A prefix
// with no class-like segment is returned unchanged.
func SanitizeClassName(prefix string) string {
	parts := strings.Split(prefix, ".")
	if len(parts) < 2 {
		return prefix
	}
	var packages []string
	var root string
	var nested []string
	for _, part := range parts {
		switch {
		case part == strings.ToLower(part):
			packages = append(packages, part)
		case root == "":
			root = part
		default:
			nested = append(nested, part)
		}
	}
	// No class-like segment: keep the prefix rather than appending ".null".
	if root == "" {
		return prefix
	}
	// Without package segments the name starts at the root class, with no
	// leading dot.
	name := root
	if len(packages) > 0 {
		name = strings.Join(packages, ".") + "." + root
	}
	if len(nested) == 0 {
		return name
	}
	return name + "$" + strings.Join(nested, "$")
}
