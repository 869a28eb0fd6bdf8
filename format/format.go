// Package format lays out text: case transforms, word wrap, truncation,
// horizontal and vertical alignment, and the box model, all measured in
// display columns.
package format

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/stylus/ansi"
	"github.com/dshills/stylus/profile"
	"github.com/dshills/stylus/style"
	"github.com/dshills/stylus/textwidth"
)

// DefaultEllipsis marks truncated text.
const DefaultEllipsis = "…"

// Options controls a single Render call. Unset fields fall back to the
// style's own layout hints.
type Options struct {
	Width    int
	Height   int
	Align    style.HorizontalAlignment
	VAlign   style.VerticalAlignment
	Wrap     bool
	Ellipsis string
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// Render formats text through the full pipeline: transform, width
// handling (wrap or truncate), per-line alignment, padding, vertical
// alignment, styling, margins. Each line is styled individually so a
// later recomposition cannot bleed codes across line boundaries.
func Render(text string, st style.Style, opts Options, caps profile.Capabilities) (string, error) {
	if opts.Width == 0 {
		opts.Width = st.Width
	}
	if opts.Height == 0 {
		opts.Height = st.Height
	}
	if opts.Align == style.AlignLeft {
		opts.Align = st.Align
	}
	if opts.VAlign == style.AlignTop {
		opts.VAlign = st.VAlign
	}
	if opts.Ellipsis == "" {
		opts.Ellipsis = DefaultEllipsis
	}

	text = ApplyTransform(text, st.Transform)

	lines := strings.Split(text, "\n")
	if opts.Width > 0 {
		sized := make([]string, 0, len(lines))
		for _, line := range lines {
			if textwidth.Width(line) <= opts.Width {
				sized = append(sized, line)
				continue
			}
			if opts.Wrap {
				sized = append(sized, strings.Split(Wrap(line, opts.Width), "\n")...)
			} else {
				sized = append(sized, Truncate(line, opts.Width, opts.Ellipsis))
			}
		}
		lines = sized
	}

	// Align every line to a common width so the block is rectangular.
	target := opts.Width
	if target == 0 {
		for _, line := range lines {
			if w := textwidth.Width(line); w > target {
				target = w
			}
		}
	}
	for i, line := range lines {
		lines[i] = Align(line, target, opts.Align)
	}

	lines = applyPadding(lines, st.Padding, target)

	if opts.Height > 0 {
		lines = padVertical(lines, opts.Height, opts.VAlign, target+st.Padding.Left+st.Padding.Right)
	}

	if st.HasVisual() {
		for i, line := range lines {
			res, err := ansi.Render(line, st, caps)
			if err != nil {
				return "", err
			}
			lines[i] = res.Content
		}
	}

	lines = applyMargin(lines, st.Margin)

	return strings.Join(lines, "\n"), nil
}

// ApplyTransform applies a case transform. Capitalize uppercases the
// first letter of each word and leaves the rest untouched.
func ApplyTransform(text string, t style.Transform) string {
	switch t {
	case style.TransformUpper:
		return strings.ToUpper(text)
	case style.TransformLower:
		return strings.ToLower(text)
	case style.TransformCapitalize:
		return titleCaser.String(text)
	default:
		return text
	}
}

// Wrap greedily word-wraps text to the given width. A word wider than
// the limit is hard-broken at grapheme boundaries so wide glyphs are
// never split mid-character. Width <= 0 returns text unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var lines []string
	current := ""
	for _, word := range words {
		if textwidth.Width(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			broken := hardBreak(word, width)
			lines = append(lines, broken[:len(broken)-1]...)
			current = broken[len(broken)-1]
			continue
		}

		switch {
		case current == "":
			current = word
		case textwidth.Width(current)+1+textwidth.Width(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// hardBreak splits a single word into width-sized pieces.
func hardBreak(word string, width int) []string {
	var pieces []string
	var current strings.Builder
	used := 0

	g := uniseg.NewGraphemes(word)
	for g.Next() {
		cluster := g.Str()
		w := textwidth.Width(cluster)
		if used > 0 && used+w > width {
			pieces = append(pieces, current.String())
			current.Reset()
			used = 0
		}
		current.WriteString(cluster)
		used += w
	}
	pieces = append(pieces, current.String())
	return pieces
}

// Truncate cuts a line to width, appending ellipsis. When the ellipsis
// itself does not fit, it is truncated to width instead. Lines already
// within width are returned unchanged.
func Truncate(line string, width int, ellipsis string) string {
	if width <= 0 {
		return ""
	}
	if textwidth.Width(line) <= width {
		return line
	}

	available := width - textwidth.Width(ellipsis)
	if available <= 0 {
		return clip(ellipsis, width)
	}
	return clip(line, available) + ellipsis
}

// clip keeps leading grapheme clusters while the running width stays
// within the limit.
func clip(s string, width int) string {
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := textwidth.Width(g.Str())
		if used+w > width {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String()
}

// Align pads a line to width. Left alignment appends spaces, right
// prepends, center splits with the extra odd column on the right.
// Lines at or beyond width are returned unchanged.
func Align(line string, width int, a style.HorizontalAlignment) string {
	pad := width - textwidth.Width(line)
	if pad <= 0 {
		return line
	}

	switch a {
	case style.AlignRight:
		return strings.Repeat(" ", pad) + line
	case style.AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + line + strings.Repeat(" ", pad-left)
	default:
		return line + strings.Repeat(" ", pad)
	}
}

// AlignVertical pads a block of lines to height with blank lines of the
// given width. Top pads after, bottom before, middle splits with the
// extra line at the bottom.
func AlignVertical(block string, height, width int, a style.VerticalAlignment) string {
	lines := padVertical(strings.Split(block, "\n"), height, a, width)
	return strings.Join(lines, "\n")
}

func padVertical(lines []string, height int, a style.VerticalAlignment, width int) []string {
	pad := height - len(lines)
	if pad <= 0 {
		return lines
	}

	blank := strings.Repeat(" ", width)
	fill := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = blank
		}
		return out
	}

	switch a {
	case style.AlignBottom:
		return append(fill(pad), lines...)
	case style.AlignMiddle:
		top := pad / 2
		out := append(fill(top), lines...)
		return append(out, fill(pad-top)...)
	default:
		return append(lines, fill(pad)...)
	}
}

// applyPadding surrounds lines with spaces and blank lines per the
// box-model padding. Padding sits inside the styled region.
func applyPadding(lines []string, p style.Sides, width int) []string {
	if p.IsZero() {
		return lines
	}

	left := strings.Repeat(" ", p.Left)
	right := strings.Repeat(" ", p.Right)
	for i, line := range lines {
		lines[i] = left + line + right
	}

	blank := strings.Repeat(" ", width+p.Left+p.Right)
	out := make([]string, 0, len(lines)+p.Top+p.Bottom)
	for i := 0; i < p.Top; i++ {
		out = append(out, blank)
	}
	out = append(out, lines...)
	for i := 0; i < p.Bottom; i++ {
		out = append(out, blank)
	}
	return out
}

// applyMargin surrounds already-styled lines with unstyled spacing.
func applyMargin(lines []string, m style.Sides) []string {
	if m.IsZero() {
		return lines
	}

	left := strings.Repeat(" ", m.Left)
	right := strings.Repeat(" ", m.Right)
	width := 0
	for _, line := range lines {
		if w := textwidth.Width(line); w > width {
			width = w
		}
	}
	for i, line := range lines {
		lines[i] = left + line + right
	}

	blank := strings.Repeat(" ", width+m.Left+m.Right)
	out := make([]string, 0, len(lines)+m.Top+m.Bottom)
	for i := 0; i < m.Top; i++ {
		out = append(out, blank)
	}
	out = append(out, lines...)
	for i := 0; i < m.Bottom; i++ {
		out = append(out, blank)
	}
	return out
}
