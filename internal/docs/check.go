package docs

import (
	"sort"
	"strings"

	"github.com/vlad/docgen-go/internal/textalign"
)

// check compares the comma-joined name lists declared by prototypes with
// the documented names of the same kind and appends a todo notice for each
// direction of mismatch: names used but never documented, and names
// documented but nowhere used. Names inside a notice are sorted, so the
// output is deterministic regardless of insertion order.
func check(b *strings.Builder, used, documented []string, kind string) {
	undocumented := make(map[string]struct{})
	for _, entry := range used {
		for _, token := range textalign.Split(entry, ',') {
			undocumented[textalign.Strip(token)] = struct{}{}
		}
	}
	unused := make(map[string]struct{})
	for _, entry := range documented {
		for _, token := range textalign.Split(entry, ',') {
			name := textalign.Strip(token)
			if _, ok := undocumented[name]; ok {
				delete(undocumented, name)
			} else {
				unused[name] = struct{}{}
			}
		}
	}

	// NoReturn is a sentinel, not a name; it never needs documentation.
	// Empty tokens come from empty lists (constructor return values) and
	// are not names either.
	delete(undocumented, NoReturn)
	delete(undocumented, "")
	delete(unused, "")

	if names := sortedNames(undocumented); len(names) > 0 {
		writeTodo(b, "The "+kind+"(s) '"+strings.Join(names, ", ")+"' are used, but not documented.")
	}
	if names := sortedNames(unused); len(names) > 0 {
		writeTodo(b, "The "+kind+"(s) '"+strings.Join(names, ", ")+"' are documented, but nowhere used.")
	}
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeTodo appends a single unbounded-width todo directive line.
func writeTodo(b *strings.Builder, message string) {
	b.WriteString("\n" + textalign.Align(".. todo:: "+message, 0, textalign.Unbounded) + "\n")
}
