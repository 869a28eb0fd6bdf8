package compose

import (
	"fmt"
	"strings"

	"github.com/dshills/stylus/format"
	"github.com/dshills/stylus/profile"
	"github.com/dshills/stylus/style"
	"github.com/dshills/stylus/textwidth"
)

// HJoinOptions controls JoinHorizontal. Align places a short block's
// filler lines: top appends them, bottom prepends, middle splits with
// the extra line at the bottom.
type HJoinOptions struct {
	Separator string
	Spacing   int
	Align     style.VerticalAlignment
}

// VJoinOptions controls JoinVertical. Align positions each line within
// the common width. A non-empty Separator is inserted as its own line
// between blocks, followed by Spacing blank lines.
type VJoinOptions struct {
	Separator string
	Spacing   int
	Align     style.HorizontalAlignment
}

// JoinHorizontal places blocks side by side. Every block is padded to
// its own width on every line and to the common line count with blank
// filler lines, then rows concatenate across blocks with the separator
// and spacing between them. Zero blocks yield the empty string.
func JoinHorizontal(blocks []Block, opts HJoinOptions, caps profile.Capabilities) (string, error) {
	if len(blocks) == 0 {
		return "", nil
	}

	rendered := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	maxLines := 0

	for i, b := range blocks {
		content, err := b.render(caps, false)
		if err != nil {
			return "", fmtErr("join horizontal", err)
		}
		lines, width := blockLines(content, b.Width)
		for j, line := range lines {
			lines[j] = format.Align(line, width, style.AlignLeft)
		}
		rendered[i] = lines
		widths[i] = width
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}

	for i := range rendered {
		rendered[i] = fillToHeight(rendered[i], maxLines, widths[i], opts.Align)
		for _, line := range rendered[i] {
			if w := textwidth.Width(line); w != widths[i] {
				return "", fmt.Errorf("%w: block %d line measures %d, want %d",
					ErrComposition, i, w, widths[i])
			}
		}
	}

	gap := opts.Separator + strings.Repeat(" ", opts.Spacing)
	rows := make([]string, maxLines)
	for row := 0; row < maxLines; row++ {
		parts := make([]string, len(rendered))
		for i := range rendered {
			parts[i] = rendered[i][row]
		}
		rows[row] = strings.Join(parts, gap)
	}
	return strings.Join(rows, "\n"), nil
}

// fillToHeight pads a block's lines to the target count with blank
// lines at the block's own width.
func fillToHeight(lines []string, height, width int, a style.VerticalAlignment) []string {
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

// JoinVertical stacks blocks top to bottom, aligning every line of
// every block to the common maximum width. Zero blocks yield the empty
// string.
func JoinVertical(blocks []Block, opts VJoinOptions, caps profile.Capabilities) (string, error) {
	if len(blocks) == 0 {
		return "", nil
	}

	rendered := make([][]string, len(blocks))
	maxWidth := 0
	for i, b := range blocks {
		content, err := b.render(caps, false)
		if err != nil {
			return "", fmtErr("join vertical", err)
		}
		lines, width := blockLines(content, b.Width)
		rendered[i] = lines
		if width > maxWidth {
			maxWidth = width
		}
	}

	var out []string
	blank := strings.Repeat(" ", maxWidth)
	for i, lines := range rendered {
		if i > 0 {
			if opts.Separator != "" {
				out = append(out, format.Align(opts.Separator, maxWidth, opts.Align))
			}
			for s := 0; s < opts.Spacing; s++ {
				out = append(out, blank)
			}
		}
		for _, line := range lines {
			out = append(out, format.Align(line, maxWidth, opts.Align))
		}
	}
	return strings.Join(out, "\n"), nil
}
