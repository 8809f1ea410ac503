package bindata

import (
	"fmt"
	"strings"
)

// fmtSprint is a thin indirection over fmt.Sprint kept in one place so the
// primitive/struct/array Inspect implementations all format scalars
// identically.
func fmtSprint(v interface{}) string {
	return fmt.Sprint(v)
}

// normalizeName canonicalizes a field name so lookups accept either a
// string or symbolic spelling (spec §4.5: "both string and symbolic name
// acceptable; normalized internally"). Go has no distinct symbol type, so
// this just trims a single leading colon a caller might pass in Ruby-DSL
// style (":field_name") for familiarity with the source ecosystem this
// spec was distilled from.
func normalizeName(name string) string {
	if len(name) > 0 && name[0] == ':' {
		return name[1:]
	}
	return name
}

// splitCyclePath splits a graph.Graph.DetectCycle path string ("a -> b
// -> a") back into its node names, used by NewStructClass to check
// whether a detected cycle is entirely among the struct's own fields.
func splitCyclePath(path string) []string {
	parts := strings.Split(path, " -> ")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
