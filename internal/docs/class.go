package docs

import (
	"io"
	"strings"
	"sync"

	"github.com/vlad/docgen-go/internal/textalign"
)

// ClassDoc documents one class: its description, at most one constructor,
// and the member functions and variables worth highlighting in the class
// summary.
type ClassDoc struct {
	name        string
	description string
	short       bool
	width       int

	constructor          *FunctionDoc
	highlightedFunctions []*FunctionDoc
	highlightedVariables []*VariableDoc

	renderOnce sync.Once
	rendered   string
}

// NewClass creates a ClassDoc for the named class with the given short
// description.
func NewClass(name, shortDescription string, opts ...Option) *ClassDoc {
	c := newConfig(opts)
	return &ClassDoc{
		name:        name,
		description: c.description(shortDescription),
		short:       c.short,
		width:       c.width,
	}
}

// Name returns the name of the documented class.
func (c *ClassDoc) Name() string { return c.name }

// AddConstructor stores the constructor documentation. The class keeps its
// own copy with the member flag cleared (the constructor block is indented
// by the class render itself) and the function name rewritten to the class
// name. Adding a second constructor is a UsageError.
func (c *ClassDoc) AddConstructor(fn *FunctionDoc) error {
	if c.short {
		return nil
	}
	if c.constructor != nil {
		return usageErrorf("class %s can have only a single constructor documentation", c.name)
	}
	ctor := fn.clone()
	ctor.member = false
	ctor.name = c.name
	c.constructor = ctor
	return nil
}

// HighlightFunction adds a member function to the highlighted section.
func (c *ClassDoc) HighlightFunction(fn *FunctionDoc) *ClassDoc {
	if c.short {
		return c
	}
	c.highlightedFunctions = append(c.highlightedFunctions, fn.clone())
	return c
}

// HighlightVariable adds a member variable to the highlighted section.
func (c *ClassDoc) HighlightVariable(v *VariableDoc) *ClassDoc {
	if c.short {
		return c
	}
	c.highlightedVariables = append(c.highlightedVariables, v.clone())
	return c
}

// Kwlist returns the ordered parameter-name list for the given constructor
// prototype. It returns a UsageError when the class has no constructor
// documentation.
func (c *ClassDoc) Kwlist(index int) ([]string, error) {
	if c.constructor == nil {
		return nil, usageErrorf("class %s has no constructor documentation", c.name)
	}
	return c.constructor.Kwlist(index)
}

// PrintUsage writes the constructor usage synopsis to w, if a constructor
// is documented.
func (c *ClassDoc) PrintUsage(w io.Writer) {
	if c.constructor != nil {
		c.constructor.PrintUsage(w)
	}
}

// Doc renders the documentation block, caching the result on first call.
func (c *ClassDoc) Doc() string {
	c.renderOnce.Do(func() {
		c.rendered = c.doc(c.width)
	})
	return c.rendered
}

func (c *ClassDoc) doc(width int) string {
	if c.short {
		return c.description
	}

	var b strings.Builder
	b.WriteString(textalign.Align(c.description, 0, width) + "\n")

	if c.constructor != nil {
		b.WriteString("\n" + textalign.Align("**Constructor Documentation:**", 0, width) + "\n\n")
		b.WriteString(c.constructor.doc(width, 4) + "\n")
	}

	b.WriteString("\n" + textalign.Align("**Class Members:**", 0, width) + "\n\n")

	if len(c.highlightedFunctions) > 0 {
		b.WriteString("\n" + textalign.Align("**Highlighted Methods:**", 2, width) + "\n\n")
		for _, fn := range c.highlightedFunctions {
			b.WriteString(textalign.Align("* :func:`"+fn.name+"`", 2, width) + textalign.Align(firstLine(fn.description), 4, width) + "\n")
		}
	}
	if len(c.highlightedVariables) > 0 {
		b.WriteString("\n" + textalign.Align("**Highlighted Attributes:**", 2, width) + "\n\n")
		for _, v := range c.highlightedVariables {
			b.WriteString(textalign.Align("* :obj:`"+v.name+"`", 2, width) + textalign.Align(firstLine(v.description), 4, width) + "\n")
		}
	}

	return b.String()
}

// firstLine returns the first source line of a description, used as the
// one-line summary next to a highlighted member.
func firstLine(description string) string {
	return textalign.Split(description, '\n')[0]
}
