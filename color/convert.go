package color

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// standard16 holds the xterm values for palette indices 0-15.
var standard16 = [16]RGBColor{
	{0x00, 0x00, 0x00}, // black
	{0x80, 0x00, 0x00}, // red
	{0x00, 0x80, 0x00}, // green
	{0x80, 0x80, 0x00}, // yellow
	{0x00, 0x00, 0x80}, // blue
	{0x80, 0x00, 0x80}, // magenta
	{0x00, 0x80, 0x80}, // cyan
	{0xC0, 0xC0, 0xC0}, // white
	{0x80, 0x80, 0x80}, // bright black
	{0xFF, 0x00, 0x00}, // bright red
	{0x00, 0xFF, 0x00}, // bright green
	{0xFF, 0xFF, 0x00}, // bright yellow
	{0x00, 0x00, 0xFF}, // bright blue
	{0xFF, 0x00, 0xFF}, // bright magenta
	{0x00, 0xFF, 0xFF}, // bright cyan
	{0xFF, 0xFF, 0xFF}, // bright white
}

// cubeLevels are the channel values used by the 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// ParseHex parses "#RRGGBB" or "#RGB", with or without the leading '#'.
func ParseHex(hex string) (RGBColor, error) {
	raw := strings.TrimPrefix(hex, "#")

	var parts [3]string
	switch len(raw) {
	case 3:
		for i := 0; i < 3; i++ {
			parts[i] = string(raw[i]) + string(raw[i])
		}
	case 6:
		for i := 0; i < 3; i++ {
			parts[i] = raw[i*2 : i*2+2]
		}
	default:
		return RGBColor{}, fmt.Errorf("%w: hex literal %q", ErrInvalidColor, hex)
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return RGBColor{}, fmt.Errorf("%w: hex literal %q", ErrInvalidColor, hex)
		}
		ch[i] = uint8(v)
	}
	return RGBColor{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// HexToRGB is an alias for ParseHex, named for its round-trip pairing
// with RGBToHex.
func HexToRGB(hex string) (RGBColor, error) {
	return ParseHex(hex)
}

// RGBToHex formats channels as an uppercase "#RRGGBB" literal.
func RGBToHex(c RGBColor) string {
	return c.Hex()
}

// Hex formats the color as an uppercase "#RRGGBB" literal.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBToHSL converts channels to hue [0,360], saturation [0,100], and
// lightness [0,100].
func RGBToHSL(c RGBColor) (h, s, l float64) {
	h, s, l = c.colorful().Hsl()
	return h, s * 100, l * 100
}

// HSLToRGB converts hue [0,360], saturation [0,100], and lightness
// [0,100] to channels. Inputs outside their ranges are clamped.
func HSLToRGB(h, s, l float64) RGBColor {
	h = clampFloat(h, 0, 360)
	s = clampFloat(s, 0, 100)
	l = clampFloat(l, 0, 100)
	r, g, b := colorful.Hsl(h, s/100, l/100).Clamped().RGB255()
	return RGBColor{R: r, G: g, B: b}
}

// IndexToRGB returns the RGB value of an ANSI-256 palette index:
// 0-15 standard palette, 16-231 the 6x6x6 cube (16 + 36r + 6g + b),
// 232-255 the 24-step grayscale ramp (8 + 10*step).
func IndexToRGB(index uint8) RGBColor {
	switch {
	case index < 16:
		return standard16[index]
	case index < 232:
		n := int(index) - 16
		return RGBColor{
			R: cubeLevels[n/36],
			G: cubeLevels[n/6%6],
			B: cubeLevels[n%6],
		}
	default:
		v := 8 + 10*(int(index)-232)
		return RGBColor{R: uint8(v), G: uint8(v), B: uint8(v)}
	}
}

// RGBToIndex returns the ANSI-256 index closest to the color.
func RGBToIndex(c RGBColor) uint8 {
	return nearestIndex(c, 256)
}

// RGBToBasic returns the basic-16 index closest to the color.
func RGBToBasic(c RGBColor) uint8 {
	return nearestIndex(c, 16)
}

func nearestIndex(c RGBColor, size int) uint8 {
	target := c.colorful()
	best := 0
	bestDist := -1.0
	for i := 0; i < size; i++ {
		d := target.DistanceRgb(IndexToRGB(uint8(i)).colorful())
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

// Lighten moves the color toward white. Amount is 0.0 to 1.0.
func (c RGBColor) Lighten(amount float64) RGBColor {
	amount = clampFloat(amount, 0, 1)
	return RGBColor{
		R: uint8(float64(c.R) + float64(255-c.R)*amount),
		G: uint8(float64(c.G) + float64(255-c.G)*amount),
		B: uint8(float64(c.B) + float64(255-c.B)*amount),
	}
}

// Darken moves the color toward black. Amount is 0.0 to 1.0.
func (c RGBColor) Darken(amount float64) RGBColor {
	amount = clampFloat(amount, 0, 1)
	return RGBColor{
		R: uint8(float64(c.R) * (1 - amount)),
		G: uint8(float64(c.G) * (1 - amount)),
		B: uint8(float64(c.B) * (1 - amount)),
	}
}

// Blend mixes the color with other. Amount 0.0 keeps the receiver,
// 1.0 yields other.
func (c RGBColor) Blend(other RGBColor, amount float64) RGBColor {
	amount = clampFloat(amount, 0, 1)
	return RGBColor{
		R: uint8(float64(c.R)*(1-amount) + float64(other.R)*amount),
		G: uint8(float64(c.G)*(1-amount) + float64(other.G)*amount),
		B: uint8(float64(c.B)*(1-amount) + float64(other.B)*amount),
	}
}

func (c RGBColor) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
