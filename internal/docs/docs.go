// Package docs builds aligned, wrap-formatted reference documentation
// blocks for variables, functions and classes from declarative metadata.
// Missing or inconsistent documentation never fails a render; it is
// reported in-band as ".. todo::" notices embedded in the output.
package docs

import (
	"fmt"
	"strings"
)

// DefaultWidth is the render width used when no WithWidth option is given.
// Package-level documentation is indented by 8 columns on display, which
// is why the default is 72 rather than 80.
const DefaultWidth = 72

// NoReturn is the sentinel return value for a prototype that returns
// nothing. Pass an empty string instead to mark a constructor prototype.
const NoReturn = "None"

// UsageError reports structural misuse of a documentation builder, such as
// requesting a kwlist for a prototype that was never added. Documentation
// inconsistencies are not usage errors; they render as todo notices.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

// Option configures an entry at construction time. Entries are immutable
// after their setup phase, so all policy is fixed up front.
type Option func(*config)

type config struct {
	long   string
	member bool
	short  bool
	width  int
}

func newConfig(opts []Option) config {
	c := config{width: DefaultWidth}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLongDescription appends a long description to the entry, separated
// from the short description by a blank line. Ignored in short mode.
func WithLongDescription(long string) Option {
	return func(c *config) { c.long = long }
}

// AsMember marks a function as a class member. Member documentation is
// displayed one indent level deeper, so its render width shrinks by 4.
func AsMember() Option {
	return func(c *config) { c.member = true }
}

// Short puts the entry into short mode: rendering emits the raw short
// description only and all structural output and checking is skipped.
func Short() Option {
	return func(c *config) { c.short = true }
}

// WithWidth sets the render width of the entry.
func WithWidth(width int) Option {
	return func(c *config) { c.width = width }
}

// description joins the short and optional long description the way the
// rendered block expects them: one blank line apart.
func (c config) description(short string) string {
	if c.short || c.long == "" {
		return short
	}
	return short + "\n\n" + c.long
}

// isDirective reports whether a type label already is a cross-reference
// directive such as :py:class:`Name`. Directive labels are written as-is;
// anything else is wrapped in emphasis markers.
func isDirective(typeLabel string) bool {
	return strings.Contains(typeLabel, ":") && strings.Contains(typeLabel, "`")
}
