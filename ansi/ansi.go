// Package ansi synthesizes SGR escape codes from style descriptions and
// terminal capabilities, and wraps text in them.
package ansi

import (
	"fmt"
	"strings"

	"github.com/dshills/stylus/color"
	"github.com/dshills/stylus/profile"
	"github.com/dshills/stylus/style"
)

// Reset clears all active SGR attributes.
const Reset = "\x1b[0m"

// csi builds an SGR escape from parameters.
func csi(params string) string {
	return "\x1b[" + params + "m"
}

// attrOrder fixes the canonical emission order for boolean attributes.
var attrOrder = []struct {
	attr  style.Attribute
	param string
}{
	{style.AttrBold, "1"},
	{style.AttrItalic, "3"},
	{style.AttrUnderline, "4"},
	{style.AttrStrikethrough, "9"},
	{style.AttrReverse, "7"},
	{style.AttrBlink, "5"},
	{style.AttrFaint, "2"},
}

// GenerateCodes turns a style into an ordered list of escape codes:
// boolean attributes in canonical order, then foreground, then
// background. When the capabilities disallow color the result is nil
// and no error; suppression is a success path.
func GenerateCodes(st style.Style, caps profile.Capabilities) ([]string, error) {
	if !caps.ColorAllowed() {
		return nil, nil
	}

	var codes []string
	for _, a := range attrOrder {
		if st.Attributes.Has(a.attr) {
			codes = append(codes, csi(a.param))
		}
	}

	if st.Foreground.IsSet() {
		code, err := colorCode(st.Foreground, caps, false)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	if st.Background.IsSet() {
		code, err := colorCode(st.Background, caps, true)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// colorCode renders one color for the active profile.
func colorCode(c color.Color, caps profile.Capabilities, background bool) (string, error) {
	// Adaptive colors pick a side before depth selection.
	if c.Kind() == color.KindAdaptive {
		side := c.AdaptiveValue().Light
		if caps.IsDark() {
			side = c.AdaptiveValue().Dark
		}
		return colorCode(side, caps, background)
	}

	// Complete colors carry their own per-depth representations.
	if c.Kind() == color.KindComplete {
		comp := c.CompleteValue()
		switch caps.Profile {
		case profile.TrueColor:
			if comp.TrueColor != "" {
				rgb, err := color.ParseHex(comp.TrueColor)
				if err != nil {
					return "", fmt.Errorf("complete color: %w", err)
				}
				return rgbCode(rgb, background), nil
			}
			return indexCode(comp.ANSI256, background), nil
		case profile.ANSI256:
			return indexCode(comp.ANSI256, background), nil
		default:
			return basicCode(comp.ANSI, background), nil
		}
	}

	// Indexed colors stay indexed wherever the palette exists.
	if c.Kind() == color.KindIndexed {
		if caps.Profile == profile.ANSI {
			return basicCode(color.RGBToBasic(color.IndexToRGB(c.Index256())), background), nil
		}
		return indexCode(c.Index256(), background), nil
	}

	rgb, err := color.Resolve(c, caps)
	if err != nil {
		return "", err
	}
	switch caps.Profile {
	case profile.TrueColor:
		return rgbCode(rgb, background), nil
	case profile.ANSI256:
		return indexCode(color.RGBToIndex(rgb), background), nil
	default:
		return basicCode(color.RGBToBasic(rgb), background), nil
	}
}

func rgbCode(c color.RGBColor, background bool) string {
	lead := "38"
	if background {
		lead = "48"
	}
	return csi(fmt.Sprintf("%s;2;%d;%d;%d", lead, c.R, c.G, c.B))
}

func indexCode(index uint8, background bool) string {
	lead := "38"
	if background {
		lead = "48"
	}
	return csi(fmt.Sprintf("%s;5;%d", lead, index))
}

// basicCode maps a 0-15 index onto the classic 30-37/90-97 range
// (40-47/100-107 for backgrounds).
func basicCode(index uint8, background bool) string {
	base := 30
	if background {
		base = 40
	}
	n := int(index)
	if n > 7 {
		base += 60
		n -= 8
	}
	return csi(fmt.Sprintf("%d", base+n))
}

// RenderResult is the outcome of wrapping text in escape codes.
// ByteLength is the UTF-8 encoded length of Content, distinct from both
// rune count and display width.
type RenderResult struct {
	Content    string
	Codes      []string
	Reset      string
	ByteLength int
}

// Render wraps text in the codes the style produces. When no codes
// apply the text is returned byte-identical, with no reset appended.
func Render(text string, st style.Style, caps profile.Capabilities) (RenderResult, error) {
	codes, err := GenerateCodes(st, caps)
	if err != nil {
		return RenderResult{}, err
	}
	if len(codes) == 0 {
		return RenderResult{Content: text, ByteLength: len(text)}, nil
	}

	content := strings.Join(codes, "") + text + Reset
	return RenderResult{
		Content:    content,
		Codes:      codes,
		Reset:      Reset,
		ByteLength: len(content),
	}, nil
}

// Combine concatenates render results: contents append, code lists
// append, byte lengths sum. Combining nothing yields the identity
// result.
func Combine(results ...RenderResult) RenderResult {
	var combined RenderResult
	var content strings.Builder
	for _, r := range results {
		content.WriteString(r.Content)
		combined.Codes = append(combined.Codes, r.Codes...)
		combined.ByteLength += r.ByteLength
		if r.Reset != "" {
			combined.Reset = r.Reset
		}
	}
	combined.Content = content.String()
	return combined
}
