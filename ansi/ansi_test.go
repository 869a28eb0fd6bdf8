package ansi

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/stylus/color"
	"github.com/dshills/stylus/profile"
	"github.com/dshills/stylus/style"
)

func TestGenerateCodesSuppressed(t *testing.T) {
	caps := profile.Capabilities{
		Profile:             profile.NoColor,
		EnableColor:         false,
		RespectCapabilities: true,
	}

	codes, err := GenerateCodes(style.New(), caps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(codes) != 0 {
		t.Errorf("expected no codes, got %v", codes)
	}

	// Even a fully styled input suppresses cleanly.
	st := style.New().Bold().WithForeground(color.Hex("#FF0000"))
	codes, err = GenerateCodes(st, caps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(codes) != 0 {
		t.Errorf("expected no codes, got %v", codes)
	}
}

func TestGenerateCodesForceColor(t *testing.T) {
	caps := profile.Capabilities{
		Profile:             profile.TrueColor,
		EnableColor:         false,
		RespectCapabilities: true,
		ForceColor:          true,
	}

	codes, err := GenerateCodes(style.New().Bold(), caps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(codes, []string{"\x1b[1m"}) {
		t.Errorf("forced color: got %v", codes)
	}
}

func TestGenerateCodesOrder(t *testing.T) {
	st := style.New().
		Faint().
		Blink().
		Reverse().
		Strikethrough().
		Underline().
		Italic().
		Bold().
		WithForeground(color.RGB(255, 0, 0)).
		WithBackground(color.RGB(0, 0, 255))

	codes, err := GenerateCodes(st, profile.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"\x1b[1m", // bold
		"\x1b[3m", // italic
		"\x1b[4m", // underline
		"\x1b[9m", // strikethrough
		"\x1b[7m", // reverse
		"\x1b[5m", // blink
		"\x1b[2m", // faint
		"\x1b[38;2;255;0;0m",
		"\x1b[48;2;0;0;255m",
	}
	if !reflect.DeepEqual(codes, want) {
		t.Errorf("code order:\n got %q\nwant %q", codes, want)
	}
}

func TestColorCodeByProfile(t *testing.T) {
	red := color.Hex("#FF0000")

	tests := []struct {
		name    string
		profile profile.Profile
		want    string
	}{
		{"truecolor", profile.TrueColor, "\x1b[38;2;255;0;0m"},
		{"ansi256", profile.ANSI256, "\x1b[38;5;9m"},
		{"basic", profile.ANSI, "\x1b[91m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := profile.Default()
			caps.Profile = tt.profile
			codes, err := GenerateCodes(style.New().WithForeground(red), caps)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(codes) != 1 || codes[0] != tt.want {
				t.Errorf("got %q, want [%q]", codes, tt.want)
			}
		})
	}
}

func TestCompleteColorFallback(t *testing.T) {
	c := color.FromComplete(color.CompleteColor{
		TrueColor: "#FF0000",
		ANSI256:   196,
		ANSI:      9,
	})

	tests := []struct {
		profile profile.Profile
		want    string
	}{
		{profile.TrueColor, "\x1b[38;2;255;0;0m"},
		{profile.ANSI256, "\x1b[38;5;196m"},
		{profile.ANSI, "\x1b[91m"},
	}

	for _, tt := range tests {
		caps := profile.Default()
		caps.Profile = tt.profile
		codes, err := GenerateCodes(style.New().WithForeground(c), caps)
		if err != nil {
			t.Fatalf("%v: %v", tt.profile, err)
		}
		if len(codes) != 1 || codes[0] != tt.want {
			t.Errorf("%v: got %q, want [%q]", tt.profile, codes, tt.want)
		}
	}
}

func TestGenerateCodesInvalidColor(t *testing.T) {
	st := style.New().WithForeground(color.Named("notacolor"))
	_, err := GenerateCodes(st, profile.Default())
	if !errors.Is(err, color.ErrInvalidColor) {
		t.Errorf("want ErrInvalidColor, got %v", err)
	}
}

func TestBasicBackgroundCode(t *testing.T) {
	caps := profile.Default()
	caps.Profile = profile.ANSI
	codes, err := GenerateCodes(style.New().WithBackground(color.Index(0)), caps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(codes) != 1 || codes[0] != "\x1b[40m" {
		t.Errorf("got %q, want [\\x1b[40m]", codes)
	}
}

func TestRenderPlainPassthrough(t *testing.T) {
	res, err := Render("hello", style.New(), profile.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Content != "hello" {
		t.Errorf("content = %q, want %q", res.Content, "hello")
	}
	if res.Reset != "" || len(res.Codes) != 0 {
		t.Errorf("plain render carries codes: %+v", res)
	}
	if res.ByteLength != len("hello") {
		t.Errorf("byte length = %d, want %d", res.ByteLength, len("hello"))
	}
}

func TestRenderStyled(t *testing.T) {
	res, err := Render("hi", style.New().Bold(), profile.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\x1b[1mhi\x1b[0m"
	if res.Content != want {
		t.Errorf("content = %q, want %q", res.Content, want)
	}
	if res.Reset != Reset {
		t.Errorf("reset = %q, want %q", res.Reset, Reset)
	}
	if res.ByteLength != len(want) {
		t.Errorf("byte length = %d, want %d", res.ByteLength, len(want))
	}
}

func TestRenderByteLengthUTF8(t *testing.T) {
	res, err := Render("日本", style.New(), profile.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2 runes, 3 bytes each: encoded length differs from both rune
	// count and display width.
	if res.ByteLength != 6 {
		t.Errorf("byte length = %d, want 6", res.ByteLength)
	}
}

func TestCombine(t *testing.T) {
	caps := profile.Default()
	a, _ := Render("a", style.New().Bold(), caps)
	b, _ := Render("b", style.New(), caps)

	combined := Combine(a, b)
	if combined.Content != a.Content+b.Content {
		t.Errorf("content = %q", combined.Content)
	}
	if combined.ByteLength != a.ByteLength+b.ByteLength {
		t.Errorf("byte length = %d", combined.ByteLength)
	}
	if len(combined.Codes) != len(a.Codes)+len(b.Codes) {
		t.Errorf("codes = %v", combined.Codes)
	}
}

func TestCombineIdentity(t *testing.T) {
	combined := Combine()
	if combined.Content != "" || combined.ByteLength != 0 || len(combined.Codes) != 0 || combined.Reset != "" {
		t.Errorf("Combine() = %+v, want zero result", combined)
	}
}
