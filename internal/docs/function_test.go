package docs_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlad/docgen-go/internal/docs"
)

func addDoc() *docs.FunctionDoc {
	return docs.NewFunction("add", "Adds two numbers").
		AddPrototype("x, y", "sum").
		AddParameter("x", "int", "first operand").
		AddParameter("y", "int", "second operand").
		AddReturn("sum", "int", "the sum")
}

func TestFunctionDocEndToEnd(t *testing.T) {
	doc := addDoc().Doc()

	assert.Contains(t, doc, "add(x, y) -> sum")
	assert.Contains(t, doc, "Adds two numbers")
	assert.Contains(t, doc, "**Parameters:**")
	assert.Contains(t, doc, "``x`` : *int*")
	assert.Contains(t, doc, "    first operand")
	assert.Contains(t, doc, "``y`` : *int*")
	assert.Contains(t, doc, "    second operand")
	assert.Contains(t, doc, "**Returns:**")
	assert.Contains(t, doc, "``sum`` : *int*")
	assert.Contains(t, doc, "    the sum")
	assert.NotContains(t, doc, ".. todo::")
}

func TestSingleProtoWithoutReturnOmitsArrow(t *testing.T) {
	f := docs.NewFunction("reset", "Resets the state").AddPrototype("self")
	doc := f.Doc()
	assert.Contains(t, doc, "reset(self)")
	assert.NotContains(t, doc, "->")
}

func TestConstructorPrototypeRendersBold(t *testing.T) {
	f := docs.NewFunction("Point", "Creates a point").AddPrototype("x, y", "")
	assert.Contains(t, f.Doc(), "**Point** (x, y)")
}

func TestMultiplePrototypesAreBulleted(t *testing.T) {
	f := docs.NewFunction("load", "Loads data").
		AddPrototype("path", "data").
		AddPrototype("path, limit", "data").
		AddPrototype("reader", "data").
		AddParameter("path", "str", "input path").
		AddParameter("limit", "int", "row limit").
		AddParameter("reader", "file-like", "open stream").
		AddReturn("data", "array_like", "loaded rows")
	doc := f.Doc()

	assert.Equal(t, 3, strings.Count(doc, "* load("))
	first := strings.Index(doc, "* load(path) -> data")
	second := strings.Index(doc, "* load(path, limit) -> data")
	third := strings.Index(doc, "* load(reader) -> data")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
	assert.Greater(t, third, second)
}

func TestMissingPrototypeBecomesTodo(t *testing.T) {
	f := docs.NewFunction("mystery", "Does something")
	assert.Contains(t, f.Doc(), ".. todo:: Please use ``FunctionDoc.AddPrototype``")
}

func TestUndocumentedParameterBecomesTodo(t *testing.T) {
	f := docs.NewFunction("scale", "Scales a value").AddPrototype("value, factor").
		AddParameter("value", "float", "value to scale")
	doc := f.Doc()
	assert.Contains(t, doc, ".. todo:: The parameter(s) 'factor' are used, but not documented.")
}

func TestKwlist(t *testing.T) {
	f := docs.NewFunction("f", "d").AddPrototype("a, b, c")
	names, err := f.Kwlist(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestKwlistStripsOptionalMarkers(t *testing.T) {
	f := docs.NewFunction("f", "d").AddPrototype("a, [b]")
	names, err := f.Kwlist(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestKwlistOutOfRangeIsUsageError(t *testing.T) {
	f := docs.NewFunction("f", "d").AddPrototype("a")
	_, err := f.Kwlist(1)
	var usageErr *docs.UsageError
	require.ErrorAs(t, err, &usageErr)
	_, err = f.Kwlist(-1)
	assert.ErrorAs(t, err, &usageErr)
}

func TestMemberFunctionUsesNarrowerWidth(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu"
	f := docs.NewFunction("m", text, docs.AsMember(), docs.WithWidth(40)).
		AddPrototype("self").
		AddParameter("self", "object", "the instance")
	for _, line := range strings.Split(f.Doc(), "\n") {
		if !strings.Contains(strings.TrimSpace(line), " ") {
			continue
		}
		assert.Less(t, len(line), 36, "member text must wrap at width-4, got %q", line)
	}
}

func TestDocIsMemoized(t *testing.T) {
	f := addDoc()
	first := f.Doc()
	assert.Equal(t, first, f.Doc())

	// Mutation after the first render is out of contract; the cache keeps
	// the output stable anyway.
	f.AddParameter("z", "int", "never rendered")
	assert.Equal(t, first, f.Doc())
}

func TestLongDescriptionJoinedByBlankLine(t *testing.T) {
	f := docs.NewFunction("f", "Short.", docs.WithLongDescription("Much longer text.")).
		AddPrototype("x").
		AddParameter("x", "int", "the input")
	assert.Contains(t, f.Doc(), "Short.\n\nMuch longer text.")
}

func TestDirectiveTypeLabelIsNotEmphasized(t *testing.T) {
	f := docs.NewFunction("f", "d").AddPrototype("x").
		AddParameter("x", ":py:class:`pkg.Thing`", "a thing")
	doc := f.Doc()
	assert.Contains(t, doc, "``x`` : :py:class:`pkg.Thing`")
	assert.NotContains(t, doc, "*:py:class:`pkg.Thing`*")
}

func TestShortModeRendersShortDescriptionOnly(t *testing.T) {
	f := docs.NewFunction("add", "Adds two numbers", docs.Short(), docs.WithLongDescription("ignored")).
		AddPrototype("x, y", "sum").
		AddParameter("x", "int", "first operand")
	assert.Equal(t, "Adds two numbers", f.Doc())
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	addDoc().PrintUsage(&buf)
	out := buf.String()
	assert.Contains(t, out, "Usage (for details, see help):")
	assert.Contains(t, out, "add(x, y) -> sum")
}

func TestPrintUsageWithoutPrototype(t *testing.T) {
	var buf bytes.Buffer
	docs.NewFunction("f", "d").PrintUsage(&buf)
	assert.Contains(t, buf.String(), "Error: The usage of this function is unknown")
}

func TestPrintUsageShortModeIsSilent(t *testing.T) {
	var buf bytes.Buffer
	docs.NewFunction("f", "d", docs.Short()).AddPrototype("x").PrintUsage(&buf)
	assert.Empty(t, buf.String())
}

func TestUsageErrorMessage(t *testing.T) {
	f := docs.NewFunction("f", "d")
	_, err := f.Kwlist(0)
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*docs.UsageError)))
	assert.Contains(t, err.Error(), "no prototype at index 0")
}
