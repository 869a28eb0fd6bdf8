// Package color models terminal color values and their conversions.
//
// Color is a closed tagged union over the ways a caller can name a
// color: a hex literal, a W3C color name, an ANSI-256 palette index, an
// RGB triple, a complete color carrying per-depth fallbacks, or an
// adaptive light/dark pair. One exhaustive resolution function turns
// any member into concrete RGB channels.
package color

import (
	"errors"
	"fmt"

	"github.com/dshills/stylus/profile"
)

// ErrInvalidColor reports an unparseable or unknown color literal.
// Out-of-range channel values are clamped, never reported.
var ErrInvalidColor = errors.New("invalid color")

// Kind discriminates the members of the Color union.
type Kind uint8

const (
	// KindNone is the zero Color: unset, rendering as the terminal
	// default.
	KindNone Kind = iota

	// KindHex is a "#RRGGBB" or "#RGB" literal.
	KindHex

	// KindNamed is a W3C color name such as "rebeccapurple".
	KindNamed

	// KindIndexed is an ANSI-256 palette index.
	KindIndexed

	// KindRGB is an explicit RGB triple.
	KindRGB

	// KindComplete bundles truecolor, 256-index, and basic-16
	// representations with profile-based selection.
	KindComplete

	// KindAdaptive is a light/dark pair resolved against the detected
	// terminal background.
	KindAdaptive
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindHex:
		return "hex"
	case KindNamed:
		return "named"
	case KindIndexed:
		return "indexed"
	case KindRGB:
		return "rgb"
	case KindComplete:
		return "complete"
	case KindAdaptive:
		return "adaptive"
	default:
		return "unknown"
	}
}

// RGBColor is a fully resolved color with 8-bit channels.
type RGBColor struct {
	R, G, B uint8
}

// CompleteColor pairs a truecolor value with ANSI-256 and basic-16
// fallbacks. Selection happens at code-generation time based on the
// active profile.
type CompleteColor struct {
	// TrueColor is a hex literal, preferred on truecolor terminals.
	TrueColor string

	// ANSI256 is the 256-palette fallback index.
	ANSI256 uint8

	// ANSI is the basic-16 fallback index.
	ANSI uint8
}

// AdaptiveColor picks between two colors based on the terminal
// background.
type AdaptiveColor struct {
	Light Color
	Dark  Color
}

// Color is an immutable tagged color value. The zero value is unset.
type Color struct {
	kind     Kind
	hex      string
	name     string
	index    uint8
	rgb      RGBColor
	complete CompleteColor
	adaptive *AdaptiveColor
}

// Hex creates a color from a hex literal ("#RRGGBB", "#RGB", with or
// without the leading '#'). The literal is validated at resolution
// time, not construction time.
func Hex(literal string) Color {
	return Color{kind: KindHex, hex: literal}
}

// Named creates a color from a W3C color name.
func Named(name string) Color {
	return Color{kind: KindNamed, name: name}
}

// Index creates a color from an ANSI-256 palette index.
func Index(n uint8) Color {
	return Color{kind: KindIndexed, index: n}
}

// RGB creates a color from explicit channels. Values outside [0,255]
// are clamped.
func RGB(r, g, b int) Color {
	return Color{kind: KindRGB, rgb: RGBColor{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}}
}

// FromComplete creates a color carrying per-depth fallbacks.
func FromComplete(c CompleteColor) Color {
	return Color{kind: KindComplete, complete: c}
}

// FromAdaptive creates a color resolved against the terminal
// background.
func FromAdaptive(light, dark Color) Color {
	return Color{kind: KindAdaptive, adaptive: &AdaptiveColor{Light: light, Dark: dark}}
}

// Kind returns the union discriminant.
func (c Color) Kind() Kind {
	return c.kind
}

// IsSet reports whether the color carries a value.
func (c Color) IsSet() bool {
	return c.kind != KindNone
}

// HexLiteral returns the literal for a KindHex color.
func (c Color) HexLiteral() string { return c.hex }

// Name returns the name for a KindNamed color.
func (c Color) Name() string { return c.name }

// Index256 returns the palette index for a KindIndexed color.
func (c Color) Index256() uint8 { return c.index }

// RGBValue returns the channels for a KindRGB color.
func (c Color) RGBValue() RGBColor { return c.rgb }

// CompleteValue returns the fallback bundle for a KindComplete color.
func (c Color) CompleteValue() CompleteColor { return c.complete }

// AdaptiveValue returns the pair for a KindAdaptive color.
func (c Color) AdaptiveValue() AdaptiveColor {
	if c.adaptive == nil {
		return AdaptiveColor{}
	}
	return *c.adaptive
}

// String returns a debug representation of the color.
func (c Color) String() string {
	switch c.kind {
	case KindNone:
		return "none"
	case KindHex:
		return c.hex
	case KindNamed:
		return c.name
	case KindIndexed:
		return fmt.Sprintf("idx(%d)", c.index)
	case KindRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.rgb.R, c.rgb.G, c.rgb.B)
	case KindComplete:
		return fmt.Sprintf("complete(%s)", c.complete.TrueColor)
	case KindAdaptive:
		return fmt.Sprintf("adaptive(%s|%s)", c.adaptive.Light, c.adaptive.Dark)
	default:
		return "unknown"
	}
}

// Resolve converts any member of the union into concrete RGB channels.
// Adaptive colors pick their light or dark side from the detected
// background first, complete colors resolve their truecolor member.
// Unknown names and malformed hex literals return ErrInvalidColor.
func Resolve(c Color, caps profile.Capabilities) (RGBColor, error) {
	switch c.kind {
	case KindNone:
		return RGBColor{}, fmt.Errorf("%w: unset color", ErrInvalidColor)
	case KindHex:
		return ParseHex(c.hex)
	case KindNamed:
		return LookupName(c.name)
	case KindIndexed:
		return IndexToRGB(c.index), nil
	case KindRGB:
		return c.rgb, nil
	case KindComplete:
		if c.complete.TrueColor != "" {
			return ParseHex(c.complete.TrueColor)
		}
		return IndexToRGB(c.complete.ANSI256), nil
	case KindAdaptive:
		if caps.IsDark() {
			return Resolve(c.adaptive.Dark, caps)
		}
		return Resolve(c.adaptive.Light, caps)
	default:
		return RGBColor{}, fmt.Errorf("%w: unknown kind %d", ErrInvalidColor, c.kind)
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
