// Package style defines the immutable visual-attribute record consumed
// by the rendering pipeline. A Style is a sparse set of optional
// attributes; every mutation method copies, the receiver is never
// changed.
package style

import (
	"github.com/dshills/stylus/color"
)

// Attribute is a bitmask of boolean text attributes.
type Attribute uint16

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrItalic                  // Italic text
	AttrUnderline               // Underlined text
	AttrStrikethrough           // Strikethrough text
	AttrReverse                 // Reverse video (swap fg/bg)
	AttrBlink                   // Blinking text (rarely supported)
	AttrFaint                   // Faint/dim text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// HorizontalAlignment positions content along the horizontal axis.
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

// VerticalAlignment positions content along the vertical axis.
type VerticalAlignment uint8

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

// Transform is a case transformation applied before layout.
type Transform uint8

const (
	TransformNone Transform = iota
	TransformUpper
	TransformLower
	TransformCapitalize
)

// Sides holds per-edge box-model values in the CSS top/right/bottom/left
// order.
type Sides struct {
	Top, Right, Bottom, Left int
}

// IsZero reports whether every edge is zero.
func (s Sides) IsZero() bool {
	return s == Sides{}
}

// Style is a sparse, immutable record of visual attributes. The zero
// value renders text unchanged.
type Style struct {
	Attributes Attribute
	Foreground color.Color
	Background color.Color
	Align      HorizontalAlignment
	VAlign     VerticalAlignment
	Transform  Transform
	Padding    Sides
	Margin     Sides
	Width      int
	Height     int
}

// New returns the zero style.
func New() Style {
	return Style{}
}

// WithForeground returns a copy with the foreground color set.
func (s Style) WithForeground(c color.Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy with the background color set.
func (s Style) WithBackground(c color.Color) Style {
	s.Background = c
	return s
}

// WithAlign returns a copy with the horizontal alignment set.
func (s Style) WithAlign(a HorizontalAlignment) Style {
	s.Align = a
	return s
}

// WithVAlign returns a copy with the vertical alignment set.
func (s Style) WithVAlign(a VerticalAlignment) Style {
	s.VAlign = a
	return s
}

// WithTransform returns a copy with the text transform set.
func (s Style) WithTransform(t Transform) Style {
	s.Transform = t
	return s
}

// WithPadding returns a copy with all padding edges set.
func (s Style) WithPadding(top, right, bottom, left int) Style {
	s.Padding = Sides{Top: top, Right: right, Bottom: bottom, Left: left}
	return s
}

// WithMargin returns a copy with all margin edges set.
func (s Style) WithMargin(top, right, bottom, left int) Style {
	s.Margin = Sides{Top: top, Right: right, Bottom: bottom, Left: left}
	return s
}

// WithWidth returns a copy with the width hint set.
func (s Style) WithWidth(w int) Style {
	s.Width = w
	return s
}

// WithHeight returns a copy with the height hint set.
func (s Style) WithHeight(h int) Style {
	s.Height = h
	return s
}

// Bold returns a copy with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Italic returns a copy with the italic attribute added.
func (s Style) Italic() Style {
	s.Attributes |= AttrItalic
	return s
}

// Underline returns a copy with the underline attribute added.
func (s Style) Underline() Style {
	s.Attributes |= AttrUnderline
	return s
}

// Strikethrough returns a copy with the strikethrough attribute added.
func (s Style) Strikethrough() Style {
	s.Attributes |= AttrStrikethrough
	return s
}

// Reverse returns a copy with the reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Blink returns a copy with the blink attribute added.
func (s Style) Blink() Style {
	s.Attributes |= AttrBlink
	return s
}

// Faint returns a copy with the faint attribute added.
func (s Style) Faint() Style {
	s.Attributes |= AttrFaint
	return s
}

// Merge combines two styles. The other style wins for every field it
// sets; attributes are OR'd together.
func (s Style) Merge(other Style) Style {
	result := s
	result.Attributes |= other.Attributes

	if other.Foreground.IsSet() {
		result.Foreground = other.Foreground
	}
	if other.Background.IsSet() {
		result.Background = other.Background
	}
	if other.Align != AlignLeft {
		result.Align = other.Align
	}
	if other.VAlign != AlignTop {
		result.VAlign = other.VAlign
	}
	if other.Transform != TransformNone {
		result.Transform = other.Transform
	}
	if !other.Padding.IsZero() {
		result.Padding = other.Padding
	}
	if !other.Margin.IsZero() {
		result.Margin = other.Margin
	}
	if other.Width != 0 {
		result.Width = other.Width
	}
	if other.Height != 0 {
		result.Height = other.Height
	}
	return result
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s == other
}

// IsZero reports whether the style sets nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}

// HasVisual reports whether the style emits escape codes (attributes or
// colors), as opposed to pure layout fields.
func (s Style) HasVisual() bool {
	return s.Attributes != AttrNone || s.Foreground.IsSet() || s.Background.IsSet()
}
