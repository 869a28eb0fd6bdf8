package canvas

import (
	"strings"
	"testing"

	"github.com/dshills/stylus/color"
	"github.com/dshills/stylus/profile"
	"github.com/dshills/stylus/style"
	"github.com/dshills/stylus/textwidth"
)

func plainCaps() profile.Capabilities {
	return profile.Capabilities{
		Profile:             profile.NoColor,
		RespectCapabilities: true,
	}
}

func TestRenderEmpty(t *testing.T) {
	got, err := New(3, 2).Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "   \n   " {
		t.Errorf("empty canvas = %q", got)
	}
}

func TestRenderZeroSize(t *testing.T) {
	got, err := New(0, 0).Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "" {
		t.Errorf("zero canvas = %q, want empty", got)
	}
}

func TestTransparentSpace(t *testing.T) {
	c := New(3, 1).
		AddLayer(NewLayer("lower", "XYZ", 0, 0, 0)).
		AddLayer(NewLayer("upper", "A B", 0, 0, 1))

	got, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "AYB" {
		t.Errorf("composite = %q, want %q", got, "AYB")
	}
}

func TestZOrder(t *testing.T) {
	c := New(1, 1).
		AddLayer(NewLayer("top", "T", 0, 0, 5)).
		AddLayer(NewLayer("bottom", "B", 0, 0, 1))

	got, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "T" {
		t.Errorf("composite = %q, want T", got)
	}
}

func TestZOrderTiesKeepInsertionOrder(t *testing.T) {
	c := New(1, 1).
		AddLayer(NewLayer("first", "F", 0, 0, 3)).
		AddLayer(NewLayer("second", "S", 0, 0, 3))

	got, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "S" {
		t.Errorf("tied z-index = %q, want later layer on top", got)
	}
}

func TestInvisibleLayerSkipped(t *testing.T) {
	hidden := NewLayer("hidden", "H", 0, 0, 9)
	hidden.Visible = false

	c := New(1, 1).
		AddLayer(NewLayer("shown", "S", 0, 0, 0)).
		AddLayer(hidden)

	got, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "S" {
		t.Errorf("composite = %q, want S", got)
	}
}

func TestZeroOpacityLayerSkipped(t *testing.T) {
	ghost := NewLayer("ghost", "G", 0, 0, 9)
	ghost.Opacity = 0

	c := New(1, 1).
		AddLayer(NewLayer("shown", "S", 0, 0, 0)).
		AddLayer(ghost)

	got, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "S" {
		t.Errorf("composite = %q, want S", got)
	}
}

func TestFractionalOpacityRendersFaint(t *testing.T) {
	dim := NewLayer("dim", "x", 0, 0, 0)
	dim.Opacity = 0.5

	got, err := New(1, 1).AddLayer(dim).Render(profile.Default())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "\x1b[2mx\x1b[0m"
	if got != want {
		t.Errorf("translucent render = %q, want %q", got, want)
	}
}

func TestClipping(t *testing.T) {
	c := New(3, 2).
		AddLayer(NewLayer("off", "abcdef", -1, 0, 0)).
		AddLayer(NewLayer("below", "z", 0, 5, 0))

	got, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// x=-1 clips the leading cell, rows past the bottom vanish.
	if got != "bcd\n   " {
		t.Errorf("composite = %q, want %q", got, "bcd\n   ")
	}
}

func TestMultilineLayer(t *testing.T) {
	c := New(3, 3).AddLayer(NewLayer("box", "ab\ncd", 1, 1, 0))

	got, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "   \n ab\n cd"
	if got != want {
		t.Errorf("composite = %q, want %q", got, want)
	}
}

func TestWideGlyphs(t *testing.T) {
	c := New(4, 1).AddLayer(NewLayer("cjk", "日本", 0, 0, 0))

	got, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "日本" {
		t.Errorf("composite = %q, want 日本", got)
	}
	if w := textwidth.Width(got); w != 4 {
		t.Errorf("width = %d, want 4", w)
	}
}

func TestWideGlyphClippedAtEdge(t *testing.T) {
	// A 2-column glyph that would straddle the right edge is dropped
	// whole, never half drawn.
	c := New(3, 1).AddLayer(NewLayer("cjk", "a日本", 0, 0, 0))

	got, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "a日" {
		t.Errorf("composite = %q, want %q", got, "a日")
	}
}

func TestOverwritingHalfAWideGlyph(t *testing.T) {
	c := New(4, 1).
		AddLayer(NewLayer("wide", "日本", 0, 0, 0)).
		AddLayer(NewLayer("narrow", "x", 1, 0, 1))

	got, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// The cut glyph blanks out; the row must keep its 4 columns.
	if w := textwidth.Width(got); w != 4 {
		t.Errorf("width = %d, want 4 (%q)", w, got)
	}
	if got != " x本" {
		t.Errorf("composite = %q, want %q", got, " x本")
	}
}

func TestRenderIsPure(t *testing.T) {
	c := New(3, 1).
		AddLayer(NewLayer("lower", "XYZ", 0, 0, 0)).
		AddLayer(NewLayer("upper", "A B", 0, 0, 1))

	first, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := c.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Errorf("renders differ: %q vs %q", first, second)
	}
}

func TestImmutableCanvas(t *testing.T) {
	base := New(1, 1)
	withLayer := base.AddLayer(NewLayer("a", "A", 0, 0, 0))

	got, err := base.Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != " " {
		t.Errorf("AddLayer mutated the receiver: %q", got)
	}

	removed := withLayer.RemoveLayer("a")
	if _, ok := withLayer.Layer("a"); !ok {
		t.Error("RemoveLayer mutated the receiver")
	}
	if _, ok := removed.Layer("a"); ok {
		t.Error("RemoveLayer kept the layer")
	}
}

func TestStyledLayerSerialization(t *testing.T) {
	st := style.New().Bold()
	layer := NewLayer("b", "ab", 0, 0, 0)
	layer.Style = &st

	got, err := New(3, 1).AddLayer(layer).Render(profile.Default())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "\x1b[1mab\x1b[0m "
	if got != want {
		t.Errorf("styled render = %q, want %q", got, want)
	}
}

func TestLayerErrorFailsFast(t *testing.T) {
	bad := style.New().WithForeground(color.Named("notacolor"))
	layer := NewLayer("bad", "x", 0, 0, 0)
	layer.Style = &bad

	_, err := New(2, 1).
		AddLayer(NewLayer("ok", "a", 0, 0, 0)).
		AddLayer(layer).
		Render(profile.Default())
	if err == nil {
		t.Fatal("expected error from bad layer style")
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("error should name the failing layer: %v", err)
	}
}

func TestBackgroundFill(t *testing.T) {
	c := New(2, 1).WithBackground(color.Hex("#000080"))

	got, err := c.Render(profile.Default())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "\x1b[48;2;0;0;128m  \x1b[0m"
	if got != want {
		t.Errorf("background fill = %q, want %q", got, want)
	}
}

func TestNewModalCentering(t *testing.T) {
	modal, backdrop := NewModal(10, 5, "ab\ncd", ModalOptions{})

	if modal.X != 4 || modal.Y != 1 {
		t.Errorf("modal at (%d,%d), want (4,1)", modal.X, modal.Y)
	}
	if modal.Z != ModalZ {
		t.Errorf("modal z = %d, want %d", modal.Z, ModalZ)
	}
	if backdrop.Z != ModalZ-1 {
		t.Errorf("backdrop z = %d, want %d", backdrop.Z, ModalZ-1)
	}
	if textwidth.WidestLine(backdrop.Content) != 10 {
		t.Errorf("backdrop width = %d, want 10", textwidth.WidestLine(backdrop.Content))
	}
	if textwidth.Height(backdrop.Content) != 5 {
		t.Errorf("backdrop height = %d, want 5", textwidth.Height(backdrop.Content))
	}
}

func TestNewModalClampsToOrigin(t *testing.T) {
	modal, _ := NewModal(2, 1, "toowide", ModalOptions{})
	if modal.X != 0 || modal.Y != 0 {
		t.Errorf("oversized modal at (%d,%d), want origin", modal.X, modal.Y)
	}
}

func TestModalComposite(t *testing.T) {
	modal, backdrop := NewModal(5, 1, "hi", ModalOptions{})

	got, err := New(5, 1).AddLayers(backdrop, modal).Render(plainCaps())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "░hi░░" {
		t.Errorf("modal composite = %q, want %q", got, "░hi░░")
	}
}
