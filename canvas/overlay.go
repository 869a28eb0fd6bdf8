package canvas

import (
	"strings"

	"github.com/dshills/stylus/style"
	"github.com/dshills/stylus/textwidth"
)

// Z-index bands. Ordinary content lives below ModalZ; the backdrop
// slots directly beneath its modal.
const (
	ModalZ    = 1000
	BackdropZ = ModalZ - 1
)

// DefaultBackdropFill is the rune a modal backdrop is filled with. A
// space would be invisible under the transparent-space merge rule.
const DefaultBackdropFill = '░'

// NewOverlay creates a visible overlay layer at an absolute position.
func NewOverlay(id, content string, x, y, z int) Layer {
	return NewLayer(id, content, x, y, z)
}

// ModalOptions configures NewModal. Zero values pick the defaults.
type ModalOptions struct {
	// ID names the modal layer; the backdrop is ID + "-backdrop".
	ID string

	// Style applies to the modal content.
	Style *style.Style

	// BackdropFill overrides DefaultBackdropFill.
	BackdropFill rune

	// BackdropStyle applies to the backdrop; default is faint.
	BackdropStyle *style.Style

	// Z overrides ModalZ.
	Z int
}

// NewModal builds a centered modal layer and its backdrop. The modal
// is centered at floor((canvas-content)/2) on each axis, clamped to the
// origin, and sits one z-level above the backdrop, which fills the
// whole canvas.
func NewModal(canvasWidth, canvasHeight int, content string, opts ModalOptions) (modal, backdrop Layer) {
	id := opts.ID
	if id == "" {
		id = "modal"
	}
	z := opts.Z
	if z == 0 {
		z = ModalZ
	}
	fill := opts.BackdropFill
	if fill == 0 {
		fill = DefaultBackdropFill
	}
	backdropStyle := opts.BackdropStyle
	if backdropStyle == nil {
		faint := style.New().Faint()
		backdropStyle = &faint
	}

	contentWidth := textwidth.WidestLine(content)
	contentHeight := textwidth.Height(content)

	x := (canvasWidth - contentWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (canvasHeight - contentHeight) / 2
	if y < 0 {
		y = 0
	}

	modal = NewLayer(id, content, x, y, z)
	modal.Style = opts.Style

	fillLine := strings.Repeat(string(fill), max(canvasWidth, 0))
	fillLines := make([]string, max(canvasHeight, 0))
	for i := range fillLines {
		fillLines[i] = fillLine
	}
	backdrop = NewLayer(id+"-backdrop", strings.Join(fillLines, "\n"), 0, 0, z-1)
	backdrop.Style = backdropStyle

	return modal, backdrop
}
