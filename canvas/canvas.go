// Package canvas composites positioned, z-ordered layers onto a
// fixed-size surface. Layers merge under a transparent-space rule: a
// literal space in an upper layer lets the content beneath show
// through, any other character overwrites.
package canvas

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/stylus/ansi"
	"github.com/dshills/stylus/color"
	"github.com/dshills/stylus/format"
	"github.com/dshills/stylus/profile"
	"github.com/dshills/stylus/style"
	"github.com/dshills/stylus/textwidth"
)

// ErrComposition reports an internal invariant violation while merging
// layers.
var ErrComposition = errors.New("composition failure")

// Layer is a positioned, stackable unit of content. Higher Z paints
// later; ties keep insertion order.
type Layer struct {
	ID      string
	Content string
	X, Y    int
	Z       int
	Style   *style.Style

	// Opacity approximates alpha in a character grid: 0 skips the
	// layer entirely, anything below 1 renders it faint.
	Opacity float64

	Visible bool
}

// NewLayer creates a visible, fully opaque layer at the given position
// and z-index.
func NewLayer(id, content string, x, y, z int) Layer {
	return Layer{ID: id, Content: content, X: x, Y: y, Z: z, Opacity: 1, Visible: true}
}

// Canvas is an immutable, fixed-size surface plus an ordered layer set.
// Rendering is a pure function of the layers; nothing is retained
// between calls.
type Canvas struct {
	width      int
	height     int
	background color.Color
	layers     []Layer
}

// New creates an empty canvas. Non-positive dimensions clamp to zero,
// which renders to the empty string.
func New(width, height int) Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Canvas{width: width, height: height}
}

// Size returns the canvas dimensions.
func (c Canvas) Size() (width, height int) {
	return c.width, c.height
}

// WithBackground returns a copy with a background fill color.
func (c Canvas) WithBackground(col color.Color) Canvas {
	c.background = col
	return c
}

// AddLayer returns a copy with the layer appended.
func (c Canvas) AddLayer(l Layer) Canvas {
	layers := make([]Layer, len(c.layers), len(c.layers)+1)
	copy(layers, c.layers)
	c.layers = append(layers, l)
	return c
}

// AddLayers returns a copy with all layers appended.
func (c Canvas) AddLayers(ls ...Layer) Canvas {
	out := c
	for _, l := range ls {
		out = out.AddLayer(l)
	}
	return out
}

// RemoveLayer returns a copy without the identified layer.
func (c Canvas) RemoveLayer(id string) Canvas {
	layers := make([]Layer, 0, len(c.layers))
	for _, l := range c.layers {
		if l.ID != id {
			layers = append(layers, l)
		}
	}
	c.layers = layers
	return c
}

// Layer returns the identified layer.
func (c Canvas) Layer(id string) (Layer, bool) {
	for _, l := range c.layers {
		if l.ID == id {
			return l, true
		}
	}
	return Layer{}, false
}

// cell is one surface position holding a full grapheme cluster. An
// empty cell marks the continuation of a wide glyph in the previous
// cell.
type cell struct {
	content string
	w       int
	st      style.Style
}

// Render composites all visible layers in ascending z-order and
// serializes the surface. The first failing layer aborts the render.
func (c Canvas) Render(caps profile.Capabilities) (string, error) {
	if c.width == 0 || c.height == 0 {
		return "", nil
	}

	base := cell{content: " ", w: 1}
	if c.background.IsSet() {
		base.st = style.New().WithBackground(c.background)
	}

	grid := make([][]cell, c.height)
	for y := range grid {
		grid[y] = make([]cell, c.width)
		for x := range grid[y] {
			grid[y][x] = base
		}
	}

	visible := make([]Layer, 0, len(c.layers))
	for _, l := range c.layers {
		if l.Visible && l.Opacity != 0 {
			visible = append(visible, l)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Z < visible[j].Z
	})

	for _, l := range visible {
		if err := c.composite(grid, l, caps); err != nil {
			return "", fmt.Errorf("layer %q: %w", l.ID, err)
		}
	}

	return serialize(grid, caps)
}

// composite writes one layer into the grid, clipping out-of-bounds
// cells silently and treating literal spaces as transparent.
func (c Canvas) composite(grid [][]cell, l Layer, caps profile.Capabilities) error {
	st := style.New()
	if l.Style != nil {
		st = *l.Style
	}
	if l.Opacity > 0 && l.Opacity < 1 {
		st = st.Faint()
	}
	// Reject bad styles up front so a later row cannot fail after
	// earlier rows were already painted.
	if _, err := ansi.GenerateCodes(st, caps); err != nil {
		return err
	}

	content := textwidth.Strip(format.ApplyTransform(l.Content, st.Transform))
	for dy, line := range strings.Split(content, "\n") {
		y := l.Y + dy
		if y < 0 || y >= c.height {
			continue
		}

		x := l.X
		g := uniseg.NewGraphemes(line)
		for g.Next() {
			cluster := g.Str()
			w := textwidth.Width(cluster)
			if w == 0 {
				continue
			}
			if cluster == " " {
				x++
				continue
			}
			if x < 0 || x+w > c.width {
				x += w
				continue
			}

			// Cutting through a wide glyph leaves its other half
			// orphaned; blank the remnant so the row keeps its width.
			if head := x - 1; isContinuation(grid[y][x]) && head >= 0 {
				grid[y][head] = cell{content: " ", w: 1, st: grid[y][head].st}
			}
			if tail := x + w; tail < c.width && grid[y][tail-1].w == 2 && isContinuation(grid[y][tail]) {
				grid[y][tail] = cell{content: " ", w: 1, st: grid[y][tail-1].st}
			}

			grid[y][x] = cell{content: cluster, w: w, st: st}
			for k := 1; k < w; k++ {
				grid[y][x+k] = cell{}
			}
			x += w
		}
	}
	return nil
}

func isContinuation(cl cell) bool {
	return cl.content == "" && cl.w == 0
}

// serialize walks the grid row by row, emitting SGR runs at style
// boundaries and a reset at the end of each styled row.
func serialize(grid [][]cell, caps profile.Capabilities) (string, error) {
	rows := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		active := style.New()
		styled := false

		for _, cl := range row {
			if isContinuation(cl) {
				continue
			}
			if cl.content == "" {
				return "", fmt.Errorf("%w: empty cell at row %d", ErrComposition, y)
			}

			if !cl.st.Equals(active) {
				if styled {
					b.WriteString(ansi.Reset)
					styled = false
				}
				codes, err := ansi.GenerateCodes(cl.st, caps)
				if err != nil {
					return "", err
				}
				if len(codes) > 0 {
					b.WriteString(strings.Join(codes, ""))
					styled = true
				}
				active = cl.st
			}
			b.WriteString(cl.content)
		}
		if styled {
			b.WriteString(ansi.Reset)
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n"), nil
}
