package style

import (
	"testing"

	"github.com/dshills/stylus/color"
)

func TestAttributeOps(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrItalic)
	if !a.Has(AttrBold) || !a.Has(AttrItalic) {
		t.Error("expected bold and italic set")
	}
	if a.Has(AttrUnderline) {
		t.Error("underline should not be set")
	}

	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("bold should be removed")
	}
	if !a.Has(AttrItalic) {
		t.Error("italic should survive removal of bold")
	}
}

func TestBuilderImmutability(t *testing.T) {
	base := New()
	styled := base.Bold().
		WithForeground(color.Hex("#FF0000")).
		WithPadding(1, 2, 3, 4).
		WithWidth(20)

	if !base.IsZero() {
		t.Errorf("receiver mutated: %+v", base)
	}
	if !styled.Attributes.Has(AttrBold) {
		t.Error("bold not set on copy")
	}
	if styled.Foreground.Kind() != color.KindHex {
		t.Error("foreground not set on copy")
	}
	if styled.Padding != (Sides{1, 2, 3, 4}) {
		t.Errorf("padding = %+v", styled.Padding)
	}
	if styled.Width != 20 {
		t.Errorf("width = %d", styled.Width)
	}
}

func TestFlagMethods(t *testing.T) {
	st := New().Bold().Italic().Underline().Strikethrough().Reverse().Blink().Faint()
	for _, attr := range []Attribute{
		AttrBold, AttrItalic, AttrUnderline, AttrStrikethrough,
		AttrReverse, AttrBlink, AttrFaint,
	} {
		if !st.Attributes.Has(attr) {
			t.Errorf("attribute %b not set", attr)
		}
	}
}

func TestMerge(t *testing.T) {
	base := New().Bold().WithForeground(color.Named("red")).WithWidth(10)
	over := New().Italic().WithForeground(color.Named("blue")).WithAlign(AlignCenter)

	merged := base.Merge(over)

	if !merged.Attributes.Has(AttrBold) || !merged.Attributes.Has(AttrItalic) {
		t.Error("attributes should OR together")
	}
	if merged.Foreground.Name() != "blue" {
		t.Errorf("other should win foreground, got %q", merged.Foreground.Name())
	}
	if merged.Width != 10 {
		t.Errorf("unset field should persist, width = %d", merged.Width)
	}
	if merged.Align != AlignCenter {
		t.Error("alignment should merge")
	}

	// Merge never touches its inputs.
	if base.Attributes.Has(AttrItalic) {
		t.Error("merge mutated receiver")
	}
}

func TestEqualsAndIsZero(t *testing.T) {
	if !New().IsZero() {
		t.Error("New() should be zero")
	}
	a := New().Bold()
	b := New().Bold()
	if !a.Equals(b) {
		t.Error("identical styles should be equal")
	}
	if a.Equals(b.Italic()) {
		t.Error("different styles should not be equal")
	}
}

func TestHasVisual(t *testing.T) {
	if New().HasVisual() {
		t.Error("zero style has no visual attributes")
	}
	if New().WithWidth(10).WithPadding(1, 1, 1, 1).HasVisual() {
		t.Error("layout-only style has no visual attributes")
	}
	if !New().Bold().HasVisual() {
		t.Error("bold is visual")
	}
	if !New().WithBackground(color.Index(4)).HasVisual() {
		t.Error("background is visual")
	}
}
