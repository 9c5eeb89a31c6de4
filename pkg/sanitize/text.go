// Package sanitize reduces free text to the ASCII range understood by the
// fixed-font PDF and DOCX renderers.
package sanitize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// punctuation maps typographic look-alikes to ASCII. It must run before
// decomposition: NFKD leaves dashes and curly quotes intact, and the ASCII
// filter would then drop them outright.
//
//nolint:gochecknoglobals // Fixed substitution table
var punctuation = strings.NewReplacer(
	"\u2010", "-", // hyphen
	"\u2011", "-", // non-breaking hyphen
	"\u2012", "-", // figure dash
	"\u2013", "-", // en dash
	"\u2014", "-", // em dash
	"\u2015", "-", // horizontal bar
	"\u2212", "-", // minus sign
	"\u2018", "'",
	"\u2019", "'",
	"\u201c", `"`,
	"\u201d", `"`,
	"\u00a0", " ", // no-break space
	"\u2022", "*", // bullet
)

// Text returns s with typographic punctuation replaced and every rune
// outside 7-bit ASCII removed after compatibility decomposition.
func Text(s string) (clean string) {
	if s == "" {
		return clean
	}

	replaced := punctuation.Replace(s)
	decomposed := norm.NFKD.String(replaced)

	b := strings.Builder{}
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}

	clean = b.String()
	return clean
}

// Lines applies Text to every element and returns a new slice.
func Lines(items []string) (clean []string) {
	if items == nil {
		return clean
	}

	clean = make([]string, len(items))
	for i, item := range items {
		clean[i] = Text(item)
	}

	return clean
}
