// Package manifest loads declarative YAML descriptions of documentation
// entries and builds the corresponding docs builders from them.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vlad/docgen-go/internal/docs"
)

// Manifest is the YAML description of a documentation set.
type Manifest struct {
	Variables []Variable `yaml:"variables"`
	Functions []Function `yaml:"functions"`
	Classes   []Class    `yaml:"classes"`
}

// Variable describes one documented variable.
type Variable struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Short string `yaml:"short"`
	Long  string `yaml:"long,omitempty"`
}

// Prototype describes one way to call a function. A nil Returns field
// means "returns nothing"; an explicit empty string marks a constructor
// prototype.
type Prototype struct {
	Variables string  `yaml:"variables"`
	Returns   *string `yaml:"returns,omitempty"`
}

// Field describes one documented parameter or return value.
type Field struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// Function describes one documented function or method.
type Function struct {
	Name       string      `yaml:"name"`
	Short      string      `yaml:"short"`
	Long       string      `yaml:"long,omitempty"`
	Member     bool        `yaml:"member,omitempty"`
	Prototypes []Prototype `yaml:"prototypes"`
	Parameters []Field     `yaml:"parameters,omitempty"`
	Returns    []Field     `yaml:"returns,omitempty"`
}

// Class describes one documented class with an optional constructor and
// highlighted members.
type Class struct {
	Name               string     `yaml:"name"`
	Short              string     `yaml:"short"`
	Long               string     `yaml:"long,omitempty"`
	Constructor        *Function  `yaml:"constructor,omitempty"`
	HighlightFunctions []Function `yaml:"highlight_functions,omitempty"`
	HighlightVariables []Variable `yaml:"highlight_variables,omitempty"`
}

// Load reads and parses the manifest at the given path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes a manifest from YAML. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	for _, v := range m.Variables {
		if v.Name == "" {
			return fmt.Errorf("manifest variable without a name")
		}
	}
	for _, fn := range m.Functions {
		if fn.Name == "" {
			return fmt.Errorf("manifest function without a name")
		}
	}
	for _, cl := range m.Classes {
		if cl.Name == "" {
			return fmt.Errorf("manifest class without a name")
		}
	}
	return nil
}

// Set holds the built documentation entries of a manifest, in declaration
// order.
type Set struct {
	Variables []*docs.VariableDoc
	Functions []*docs.FunctionDoc
	Classes   []*docs.ClassDoc
}

// Build instantiates docs builders for every entry in the manifest. The
// given options (width, short mode) apply to every entry; per-entry
// settings from the manifest are layered on top.
func (m *Manifest) Build(opts ...docs.Option) (*Set, error) {
	set := &Set{}
	for _, v := range m.Variables {
		set.Variables = append(set.Variables, buildVariable(v, opts))
	}
	for _, fn := range m.Functions {
		set.Functions = append(set.Functions, buildFunction(fn, opts))
	}
	for _, cl := range m.Classes {
		class := docs.NewClass(cl.Name, cl.Short, classOptions(cl, opts)...)
		if cl.Constructor != nil {
			if err := class.AddConstructor(buildFunction(*cl.Constructor, opts)); err != nil {
				return nil, fmt.Errorf("failed to build class %s: %w", cl.Name, err)
			}
		}
		for _, fn := range cl.HighlightFunctions {
			class.HighlightFunction(buildFunction(fn, opts))
		}
		for _, v := range cl.HighlightVariables {
			class.HighlightVariable(buildVariable(v, opts))
		}
		set.Classes = append(set.Classes, class)
	}
	return set, nil
}

func buildVariable(v Variable, base []docs.Option) *docs.VariableDoc {
	opts := append([]docs.Option{}, base...)
	if v.Long != "" {
		opts = append(opts, docs.WithLongDescription(v.Long))
	}
	return docs.NewVariable(v.Name, v.Type, v.Short, opts...)
}

func buildFunction(fn Function, base []docs.Option) *docs.FunctionDoc {
	opts := append([]docs.Option{}, base...)
	if fn.Long != "" {
		opts = append(opts, docs.WithLongDescription(fn.Long))
	}
	if fn.Member {
		opts = append(opts, docs.AsMember())
	}
	f := docs.NewFunction(fn.Name, fn.Short, opts...)
	for _, p := range fn.Prototypes {
		if p.Returns == nil {
			f.AddPrototype(p.Variables)
		} else {
			f.AddPrototype(p.Variables, *p.Returns)
		}
	}
	for _, p := range fn.Parameters {
		f.AddParameter(p.Name, p.Type, p.Description)
	}
	for _, r := range fn.Returns {
		f.AddReturn(r.Name, r.Type, r.Description)
	}
	return f
}

func classOptions(cl Class, base []docs.Option) []docs.Option {
	opts := append([]docs.Option{}, base...)
	if cl.Long != "" {
		opts = append(opts, docs.WithLongDescription(cl.Long))
	}
	return opts
}

// Function returns the built function with the given name, or nil.
func (s *Set) Function(name string) *docs.FunctionDoc {
	for _, fn := range s.Functions {
		if fn.Name() == name {
			return fn
		}
	}
	return nil
}

// Class returns the built class with the given name, or nil.
func (s *Set) Class(name string) *docs.ClassDoc {
	for _, cl := range s.Classes {
		if cl.Name() == name {
			return cl
		}
	}
	return nil
}

// Variable returns the built variable with the given name, or nil.
func (s *Set) Variable(name string) *docs.VariableDoc {
	for _, v := range s.Variables {
		if v.Name() == name {
			return v
		}
	}
	return nil
}

// Render renders every entry of the set into one banner-separated block.
func (s *Set) Render() string {
	var b strings.Builder
	for _, v := range s.Variables {
		fmt.Fprintf(&b, "--- Variable: %s ---\n%s\n\n", v.Name(), v.Doc())
	}
	for _, fn := range s.Functions {
		fmt.Fprintf(&b, "--- Function: %s ---\n%s\n", fn.Name(), fn.Doc())
	}
	for _, cl := range s.Classes {
		fmt.Fprintf(&b, "--- Class: %s ---\n%s\n", cl.Name(), cl.Doc())
	}
	return b.String()
}
