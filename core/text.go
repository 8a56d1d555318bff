package core

import (
	"strings"
	"unicode/utf8"
)

// Escaped is text that is safe to place inside SVG markup. Only Escape
// produces it, so card templates never see raw user input.
type Escaped string

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func Escape(s string) Escaped {
	return Escaped(markupEscaper.Replace(s))
}

// Wrap splits text into lines of at most maxWidth characters using greedy
// first-fit. A word longer than maxWidth is kept whole on its own line.
// Width is counted in runes, not bytes, so a Devanagari meaning gets as many
// letters per line as a Latin one; byte counting would wrap it about three
// times sooner.
func Wrap(text string, maxWidth int) []string {
	var lines []string
	var current strings.Builder
	currentLen := 0

	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)

		switch {
		case currentLen == 0:
			current.WriteString(word)
			currentLen = wordLen
		case currentLen+1+wordLen <= maxWidth:
			current.WriteByte(' ')
			current.WriteString(word)
			currentLen += 1 + wordLen
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentLen = wordLen
		}
	}

	if currentLen > 0 {
		lines = append(lines, current.String())
	}

	return lines
}
