// Package profile defines the terminal-capability contract consumed by
// the styling pipeline. Detection is the caller's responsibility; this
// package only describes what a terminal can do.
package profile

// Profile identifies the color depth a terminal supports.
type Profile uint8

const (
	// NoColor disables all color output.
	NoColor Profile = iota

	// ANSI supports the 16 basic colors.
	ANSI

	// ANSI256 supports the 256-color palette.
	ANSI256

	// TrueColor supports 24-bit RGB colors.
	TrueColor
)

// String returns the string representation of the profile.
func (p Profile) String() string {
	switch p {
	case NoColor:
		return "no-color"
	case ANSI:
		return "ansi"
	case ANSI256:
		return "ansi256"
	case TrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// Background describes the detected terminal background.
type Background uint8

const (
	BackgroundUnknown Background = iota
	BackgroundLight
	BackgroundDark
)

// Capabilities describes what the active terminal supports.
// Values are supplied by an external detector and treated as read-only.
type Capabilities struct {
	// Profile is the supported color depth.
	Profile Profile

	// EnableColor reports whether color output is enabled at all.
	EnableColor bool

	// RespectCapabilities gates output on the detected capabilities.
	// When false the caller takes responsibility for the result.
	RespectCapabilities bool

	// ForceColor overrides capability gating.
	ForceColor bool

	// TrueColorSupport reports 24-bit color support independent of the
	// selected profile.
	TrueColorSupport bool

	// UnicodeSupport reports whether the terminal renders non-ASCII
	// glyphs reliably.
	UnicodeSupport bool

	// Background is the detected background, if known.
	Background Background
}

// Default returns capabilities for a modern truecolor terminal with a
// dark background. Useful for tests and non-interactive rendering.
func Default() Capabilities {
	return Capabilities{
		Profile:          TrueColor,
		EnableColor:      true,
		TrueColorSupport: true,
		UnicodeSupport:   true,
		Background:       BackgroundDark,
	}
}

// ColorAllowed reports whether escape codes may be emitted under these
// capabilities.
func (c Capabilities) ColorAllowed() bool {
	if c.ForceColor {
		return true
	}
	if !c.RespectCapabilities {
		return true
	}
	return c.EnableColor && c.Profile != NoColor
}

// IsDark reports whether the background is known to be dark. An unknown
// background resolves dark, the conventional terminal default.
func (c Capabilities) IsDark() bool {
	return c.Background != BackgroundLight
}
