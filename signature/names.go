package signature

import (
	"sort"
	"strings"
)

// SourceName converts an internal slashed class name ("java/util/List") to
// source form ("java.util.List").
func SourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// InternalName converts a source-form class name to its internal slashed
// form.
func InternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// ReferencedClassNames returns every class name referenced by node, in source
// form and sorted order.
func ReferencedClassNames(node ClassNameCollector) []string {
	set := make(map[string]struct{})
	node.CollectClassNames(set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
