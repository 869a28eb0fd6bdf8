package color

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// LookupName resolves a W3C color name to RGB channels. Matching is
// case-insensitive. Unknown names return ErrInvalidColor.
func LookupName(name string) (RGBColor, error) {
	c, ok := tcell.ColorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGBColor{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, name)
	}
	hex := c.Hex()
	return RGBColor{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
	}, nil
}
