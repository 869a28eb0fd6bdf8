// Package textwidth measures terminal display width of strings that may
// contain SGR escape sequences, wide East-Asian glyphs, and multi-rune
// grapheme clusters.
//
// The package keeps three notions of length distinct: rune count,
// display columns (what this package measures), and encoded byte length.
// All measurement is done in display columns.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const esc = '\x1b'

// Strip removes escape sequences from s.
//
// A sequence starts at ESC immediately followed by '[' and ends at the
// first ASCII letter after it. A bare ESC that does not open a sequence
// is dropped as well, which keeps Strip idempotent: the output never
// contains an ESC byte.
func Strip(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != esc {
			b.WriteRune(rs[i])
			continue
		}
		if i+1 < len(rs) && rs[i+1] == '[' {
			// Consume up to and including the terminating letter.
			i += 2
			for i < len(rs) && !isTerminator(rs[i]) {
				i++
			}
		}
	}
	return b.String()
}

// Width returns the number of terminal columns s occupies.
// Escape sequences contribute zero columns, control characters other
// than tab contribute zero, tab contributes one, and wide glyphs
// contribute two.
func Width(s string) int {
	return plainWidth(Strip(s))
}

// Height returns the number of lines in s, ignoring escape sequences.
// The empty string is one line tall.
func Height(s string) int {
	return strings.Count(Strip(s), "\n") + 1
}

// WidestLine returns the display width of the widest line in s.
func WidestLine(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := Width(line); w > widest {
			widest = w
		}
	}
	return widest
}

// plainWidth measures a string known to contain no escape sequences.
// Iterates grapheme clusters so ZWJ emoji sequences count once.
func plainWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		rs := g.Runes()
		if len(rs) == 1 {
			width += RuneWidth(rs[0])
			continue
		}
		width += g.Width()
	}
	return width
}

// RuneWidth returns the display width of a single rune: 0 for control
// characters (tab excepted, which is 1), 2 for wide glyphs, otherwise 1.
func RuneWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
		return 0
	}
	return runewidth.RuneWidth(r)
}

func isTerminator(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
