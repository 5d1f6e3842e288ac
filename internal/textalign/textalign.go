// Package textalign provides the text splitting and word-wrapping
// primitives used to lay out generated documentation blocks.
package textalign

import "strings"

// Unbounded disables wrapping when passed to Align as the width.
const Unbounded = int(^uint(0) >> 1)

// markerCutset is the set of characters stripped from name tokens. It
// covers the optional-argument notation "[a]", grouping "(a|b)" and plain
// spaces.
const markerCutset = " []()|"

// Strip trims leading and trailing marker characters from a name token.
func Strip(s string) string {
	return strings.Trim(s, markerCutset)
}

// Split splits s on the single separator byte sep. A leading run of
// separators is folded into the first token; every interior occurrence is
// a boundary, so adjacent interior separators produce empty tokens. The
// alignment loop depends on the leading-run fold to detect indented list
// markers, so do not replace this with strings.Split.
func Split(s string, sep byte) []string {
	first := 0
	for first < len(s) && s[first] == sep {
		first++
	}
	var tokens []string
	i := strings.IndexByte(s[first:], sep)
	if i >= 0 {
		i += first
	}
	j := 0
	for i >= 0 {
		tokens = append(tokens, s[j:i])
		j = i + 1
		if k := strings.IndexByte(s[j:], sep); k >= 0 {
			i = j + k
		} else {
			i = -1
		}
	}
	return append(tokens, s[j:])
}

// Align re-flows text into lines of at most width columns, each starting
// at the indent column. Every source line (split on newlines) is wrapped
// independently with a greedy fill: words are appended while the running
// length plus the next word stays below width.
//
// Continuation words of a line whose first word is a two-character section
// marker (two identical characters, e.g. ".."), a numbered item, or a "*"
// bullet are indented by the marker length plus one, producing a hanging
// indent. Extra leading spaces on a source line add to the continuation
// indent as well.
func Align(text string, indent, width int) string {
	lines := Split(text, '\n')

	var b strings.Builder
	currentIndent := indent
	firstLine := true
	for _, line := range lines {
		words := Split(line, ' ')
		length := 0
		newIndent := indent
		if line != "" {
			if w := strings.Trim(words[0], " "); isLineMarker(w) {
				newIndent += len(w) + 1
			}
			off := 0
			for off < len(line) && line[off] == ' ' {
				off++
			}
			if off != 0 && off < len(line) {
				newIndent += off
			}
		}
		atLineStart := false
		for _, word := range words {
			if b.Len() == 0 || length+len(word) >= width || !firstLine {
				if b.Len() != 0 {
					b.WriteByte('\n')
				}
				for j := 0; j < currentIndent; j++ {
					b.WriteByte(' ')
				}
				length = currentIndent
				firstLine = true
				atLineStart = true
			}
			currentIndent = newIndent
			if !atLineStart {
				b.WriteByte(' ')
			}
			b.WriteString(word)
			atLineStart = false
			length += len(word) + 1
		}
		currentIndent = indent
		firstLine = false
	}

	return b.String()
}

// isLineMarker reports whether the first word of a line starts a bulleted,
// numbered or directive item.
func isLineMarker(w string) bool {
	if len(w) == 2 && w[0] == w[1] && !isAlnum(w[0]) {
		return true
	}
	if len(w) >= 1 && w[0] >= '0' && w[0] <= '9' {
		return true
	}
	return w == "*"
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
