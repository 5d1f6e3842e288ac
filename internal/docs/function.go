package docs

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/vlad/docgen-go/internal/textalign"
)

// prototype is one documented way to call a function: a comma-separated
// parameter list and a comma-separated return-value list.
type prototype struct {
	variables string
	returns   string
}

// field documents one named parameter or return value.
type field struct {
	name        string
	typeLabel   string
	description string
}

// FunctionDoc documents one function, method or constructor. Configure it
// with AddPrototype, AddParameter and AddReturn during setup, then treat
// it as read-only: the first Doc call caches the rendered text.
type FunctionDoc struct {
	name        string
	description string
	member      bool
	short       bool
	width       int

	prototypes []prototype
	parameters []field
	returns    []field

	// kwlists holds the trimmed parameter-name tokens per prototype, in
	// prototype order.
	kwlists [][]string

	renderOnce sync.Once
	rendered   string
}

// NewFunction creates a FunctionDoc for the named function with the given
// short description.
func NewFunction(name, shortDescription string, opts ...Option) *FunctionDoc {
	c := newConfig(opts)
	return &FunctionDoc{
		name:        name,
		description: c.description(shortDescription),
		member:      c.member,
		short:       c.short,
		width:       c.width,
	}
}

// Name returns the name of the documented function.
func (f *FunctionDoc) Name() string { return f.name }

// AddPrototype appends one prototypical call. The return value defaults to
// NoReturn; pass an empty string to document a constructor, which renders
// without a return arrow and with the name in bold. Every function needs
// at least one prototype before rendering is meaningful.
func (f *FunctionDoc) AddPrototype(variables string, returnValue ...string) *FunctionDoc {
	ret := NoReturn
	if len(returnValue) > 0 {
		ret = returnValue[0]
	}

	tokens := textalign.Split(variables, ',')
	names := make([]string, len(tokens))
	for i, token := range tokens {
		names[i] = textalign.Strip(token)
	}
	f.kwlists = append(f.kwlists, names)

	f.prototypes = append(f.prototypes, prototype{variables: variables, returns: ret})
	return f
}

// AddParameter appends documentation for a parameter named in a prototype.
// Duplicates are legal; the consistency check reasons about name sets.
func (f *FunctionDoc) AddParameter(name, typeLabel, description string) *FunctionDoc {
	if f.short {
		return f
	}
	f.parameters = append(f.parameters, field{name: name, typeLabel: typeLabel, description: description})
	return f
}

// AddReturn appends documentation for a return value named in a prototype.
func (f *FunctionDoc) AddReturn(name, typeLabel, description string) *FunctionDoc {
	if f.short {
		return f
	}
	f.returns = append(f.returns, field{name: name, typeLabel: typeLabel, description: description})
	return f
}

// Kwlist returns the ordered parameter-name list of the prototype at the
// given index, for mapping call arguments by keyword. It returns a
// UsageError when no prototype exists at that index.
func (f *FunctionDoc) Kwlist(index int) ([]string, error) {
	if index < 0 || index >= len(f.kwlists) {
		return nil, usageErrorf("function %s has no prototype at index %d", f.name, index)
	}
	return f.kwlists[index], nil
}

// Doc renders the documentation block, caching the result on first call.
func (f *FunctionDoc) Doc() string {
	f.renderOnce.Do(func() {
		f.rendered = f.doc(f.width, 0)
	})
	return f.rendered
}

func (f *FunctionDoc) doc(width, indent int) string {
	if f.short {
		return f.description
	}

	// Member documentation is displayed one level deeper, so the text has
	// 4 fewer columns to work with.
	align := width
	if f.member {
		align -= 4
	}

	var b strings.Builder
	switch len(f.prototypes) {
	case 0:
		b.WriteString(textalign.Align(".. todo:: Please use ``FunctionDoc.AddPrototype`` to add at least one prototypical way to call this function", indent, textalign.Unbounded) + "\n")
	case 1:
		b.WriteString(textalign.Align(prototypeLine(f.name, f.prototypes[0]), indent, textalign.Unbounded) + "\n")
	default:
		for _, p := range f.prototypes {
			b.WriteString(textalign.Align("* "+prototypeLine(f.name, p), indent, textalign.Unbounded) + "\n")
		}
	}

	b.WriteString("\n" + textalign.Align(f.description, indent, align) + "\n")

	variables := make([]string, len(f.prototypes))
	returnValues := make([]string, len(f.prototypes))
	for i, p := range f.prototypes {
		variables[i] = p.variables
		returnValues[i] = p.returns
	}
	check(&b, variables, fieldNames(f.parameters), "parameter")
	check(&b, returnValues, fieldNames(f.returns), "return value")

	if len(f.parameters) > 0 {
		b.WriteString("\n" + textalign.Align("**Parameters:**", indent, align) + "\n\n")
		for _, p := range f.parameters {
			writeField(&b, p, indent, align)
		}
	}
	if len(f.returns) > 0 {
		b.WriteString("\n" + textalign.Align("**Returns:**", indent, align) + "\n\n")
		for _, r := range f.returns {
			writeField(&b, r, indent, align)
		}
	}

	return b.String()
}

// PrintUsage writes a short synopsis of the possible calls to w. This is a
// diagnostic side effect and is never cached. In short mode it writes
// nothing.
func (f *FunctionDoc) PrintUsage(w io.Writer) {
	if f.short {
		return
	}
	fmt.Fprintf(w, "\nUsage (for details, see help):\n")
	switch len(f.prototypes) {
	case 0:
		fmt.Fprintln(w, textalign.Align("Error: The usage of this function is unknown", 0, textalign.Unbounded))
	default:
		for _, p := range f.prototypes {
			fmt.Fprintln(w, textalign.Align(usageLine(f.name, p), 0, textalign.Unbounded))
		}
	}
	fmt.Fprintln(w)
}

// clone deep-copies the function documentation, including the kwlist
// cache, with a fresh render cache.
func (f *FunctionDoc) clone() *FunctionDoc {
	c := &FunctionDoc{
		name:        f.name,
		description: f.description,
		member:      f.member,
		short:       f.short,
		width:       f.width,
		prototypes:  slices.Clone(f.prototypes),
		parameters:  slices.Clone(f.parameters),
		returns:     slices.Clone(f.returns),
		kwlists:     make([][]string, len(f.kwlists)),
	}
	for i, kw := range f.kwlists {
		c.kwlists[i] = slices.Clone(kw)
	}
	return c
}

// prototypeLine formats one prototype for the summary section. The
// NoReturn sentinel suppresses the return arrow; an empty return value
// marks a constructor, which renders with the name in bold.
func prototypeLine(name string, p prototype) string {
	switch p.returns {
	case "":
		return "**" + name + "** (" + p.variables + ")"
	case NoReturn:
		return name + "(" + p.variables + ")"
	default:
		return name + "(" + p.variables + ") -> " + p.returns
	}
}

// usageLine formats one prototype for the plain usage synopsis.
func usageLine(name string, p prototype) string {
	if p.returns == "" || p.returns == NoReturn {
		return name + "(" + p.variables + ")"
	}
	return name + "(" + p.variables + ") -> " + p.returns
}

func fieldNames(fields []field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// writeField renders one documented parameter or return value: the name
// and type on their own line, then the indented description block.
func writeField(b *strings.Builder, f field, indent, width int) {
	if isDirective(f.typeLabel) {
		b.WriteString(textalign.Align("``"+f.name+"`` : "+f.typeLabel, indent, width) + "\n\n")
	} else {
		b.WriteString(textalign.Align("``"+f.name+"`` : *"+f.typeLabel+"*", indent, width) + "\n\n")
	}
	b.WriteString(textalign.Align(f.description, indent+4, width) + "\n\n")
}
