// Package compose joins formatted text blocks into larger layouts:
// horizontal and vertical joins, grids, tables, and weighted flexible
// splits. All measurement is escape-aware display columns.
package compose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/stylus/format"
	"github.com/dshills/stylus/profile"
	"github.com/dshills/stylus/style"
	"github.com/dshills/stylus/textwidth"
)

// ErrInvalidGeometry reports impossible layout parameters, such as a
// non-positive grid column count.
var ErrInvalidGeometry = errors.New("invalid geometry")

// ErrComposition reports an internal invariant violation while merging
// blocks.
var ErrComposition = errors.New("composition failure")

// Block is one unit of composition: content plus optional styling and
// sizing. Weight only matters to Flexible; zero means 1.
type Block struct {
	Content string
	Style   *style.Style
	Width   int
	Height  int
	Weight  int
}

// render resolves a block to its final string form. Content wider than
// an explicit width wraps when wrap is set, otherwise truncates.
func (b Block) render(caps profile.Capabilities, wrap bool) (string, error) {
	if b.Style == nil && b.Width == 0 && b.Height == 0 {
		return b.Content, nil
	}
	st := style.New()
	if b.Style != nil {
		st = *b.Style
	}
	opts := format.Options{Width: b.Width, Height: b.Height, Wrap: wrap}
	return format.Render(b.Content, st, opts, caps)
}

// lines splits rendered content and reports the block's width: the
// explicit width if set, else the widest line.
func blockLines(rendered string, explicitWidth int) ([]string, int) {
	lines := strings.Split(rendered, "\n")
	width := explicitWidth
	for _, line := range lines {
		if w := textwidth.Width(line); w > width {
			width = w
		}
	}
	return lines, width
}

func fmtErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
