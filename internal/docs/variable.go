package docs

import (
	"sync"

	"github.com/vlad/docgen-go/internal/textalign"
)

// VariableDoc documents one variable, global or class member. The name
// must be non-empty.
type VariableDoc struct {
	name        string
	typeLabel   string
	description string
	short       bool
	width       int

	renderOnce sync.Once
	rendered   string
}

// NewVariable creates a VariableDoc for the named variable. The type label
// is free text, e.g. "float" or "array_like (float, 2D)".
func NewVariable(name, typeLabel, shortDescription string, opts ...Option) *VariableDoc {
	c := newConfig(opts)
	return &VariableDoc{
		name:        name,
		typeLabel:   typeLabel,
		description: c.description(shortDescription),
		short:       c.short,
		width:       c.width,
	}
}

// Name returns the name of the documented variable.
func (v *VariableDoc) Name() string { return v.name }

// Doc renders the documentation line, caching the result on first call.
// The type is emphasized unless it already is a cross-reference directive.
func (v *VariableDoc) Doc() string {
	v.renderOnce.Do(func() {
		if v.short {
			v.rendered = v.description
			return
		}
		if isDirective(v.typeLabel) {
			v.rendered = textalign.Align(v.typeLabel+"  <-- "+v.description, 0, v.width)
		} else {
			v.rendered = textalign.Align("*"+v.typeLabel+"*  <-- "+v.description, 0, v.width)
		}
	})
	return v.rendered
}

// clone copies the variable documentation with a fresh render cache.
func (v *VariableDoc) clone() *VariableDoc {
	return &VariableDoc{
		name:        v.name,
		typeLabel:   v.typeLabel,
		description: v.description,
		short:       v.short,
		width:       v.width,
	}
}
