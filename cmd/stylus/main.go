// Package main is a demonstration harness for the stylus styling
// pipeline: it renders styled swatches, joined layouts, and layered
// canvases to the current terminal.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/stylus/canvas"
	"github.com/dshills/stylus/color"
	"github.com/dshills/stylus/compose"
	"github.com/dshills/stylus/format"
	"github.com/dshills/stylus/profile"
	"github.com/dshills/stylus/style"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	if err := run(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run() error {
	var forceColor bool
	var noColor bool

	root := &cobra.Command{
		Use:          "stylus",
		Short:        "Render styled terminal text demos",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&forceColor, "force-color", false, "emit color even when the terminal reports none")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "suppress all escape output")

	caps := func() profile.Capabilities {
		c := detectCapabilities()
		c.ForceColor = forceColor
		if noColor {
			c.Profile = profile.NoColor
			c.EnableColor = false
			c.ForceColor = false
		}
		return c
	}

	root.AddCommand(swatchCommand(caps), composeCommand(caps), canvasCommand(caps))
	return root.Execute()
}

// detectCapabilities assembles the capability contract the library
// itself leaves to callers: environment sniffing plus TTY checks.
func detectCapabilities() profile.Capabilities {
	caps := profile.Capabilities{
		RespectCapabilities: true,
		UnicodeSupport:      true,
		Background:          detectBackground(),
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
		return caps
	}

	caps.EnableColor = true
	termEnv := os.Getenv("TERM")
	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	switch {
	case colorTerm == "truecolor" || colorTerm == "24bit":
		caps.Profile = profile.TrueColor
		caps.TrueColorSupport = true
	case strings.Contains(termEnv, "256color"):
		caps.Profile = profile.ANSI256
	case termEnv != "" && termEnv != "dumb":
		caps.Profile = profile.ANSI
	default:
		caps.EnableColor = false
	}
	return caps
}

// detectBackground reads the COLORFGBG convention ("fg;bg", bg 0-6 or
// 8 meaning dark).
func detectBackground() profile.Background {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) < 2 {
		return profile.BackgroundUnknown
	}
	switch parts[len(parts)-1] {
	case "0", "1", "2", "3", "4", "5", "6", "8":
		return profile.BackgroundDark
	case "7", "15":
		return profile.BackgroundLight
	default:
		return profile.BackgroundUnknown
	}
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func swatchCommand(caps func() profile.Capabilities) *cobra.Command {
	return &cobra.Command{
		Use:   "swatch [colors...]",
		Short: "Render color swatches across the palette fallbacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = []string{"red", "orange", "yellow", "green", "blue", "indigo", "violet"}
			}

			cells := make([]compose.Block, 0, len(names))
			for _, name := range names {
				st := style.New().
					WithForeground(color.Named(name)).
					Bold()
				cells = append(cells, compose.Block{Content: "██ " + name, Style: &st})
			}

			out, err := compose.Grid(cells, 3, caps())
			if err != nil {
				return fmt.Errorf("swatch: %w", err)
			}
			cmd.Println(out)
			return nil
		},
	}
}

func composeCommand(caps func() profile.Capabilities) *cobra.Command {
	return &cobra.Command{
		Use:   "compose",
		Short: "Render a joined multi-panel layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			width := terminalWidth()
			if width > 72 {
				width = 72
			}

			header := style.New().
				Bold().
				WithTransform(style.TransformUpper).
				WithAlign(style.AlignCenter).
				WithForeground(color.FromAdaptive(color.Hex("#1A1A60"), color.Hex("#9999FF")))

			body := style.New().WithPadding(0, 1, 0, 1)

			panels := []compose.Block{
				{Content: "left panel\nwith two lines", Style: &body, Weight: 1},
				{Content: "the wider right panel wraps its text to fit the share it receives", Style: &body, Weight: 2},
			}

			top, err := format.Render("layout demo", header, format.Options{Width: width}, caps())
			if err != nil {
				return fmt.Errorf("compose: %w", err)
			}
			bottom, err := compose.Flexible(panels, compose.Horizontal, width, caps())
			if err != nil {
				return fmt.Errorf("compose: %w", err)
			}

			rows, err := compose.Table([][]string{
				{"operation", "result"},
				{"truncate", format.Truncate("hello world", 8, format.DefaultEllipsis)},
				{"upper", format.ApplyTransform("quiet", style.TransformUpper)},
			}, []compose.ColumnSpec{compose.AutoColumn(), compose.FixedColumn(12)}, compose.TableOptions{}, caps())
			if err != nil {
				return fmt.Errorf("compose: %w", err)
			}

			out, err := compose.JoinVertical([]compose.Block{
				{Content: top},
				{Content: bottom},
				{Content: rows},
			}, compose.VJoinOptions{Spacing: 1}, caps())
			if err != nil {
				return fmt.Errorf("compose: %w", err)
			}
			cmd.Println(out)
			return nil
		},
	}
}

func canvasCommand(caps func() profile.Capabilities) *cobra.Command {
	return &cobra.Command{
		Use:   "canvas",
		Short: "Render a layered canvas with a centered modal",
		RunE: func(cmd *cobra.Command, args []string) error {
			const w, h = 40, 9

			content := strings.Repeat("the quick brown fox jumps over it ", 12)
			wrapped := format.Wrap(content, w)

			modalStyle := style.New().Bold().WithBackground(color.Index(17))
			modal, backdrop := canvas.NewModal(w, h, " press any key ", canvas.ModalOptions{
				Style: &modalStyle,
			})

			surface := canvas.New(w, h).
				AddLayer(canvas.NewLayer("body", wrapped, 0, 0, 0)).
				AddLayers(backdrop, modal)

			out, err := surface.Render(caps())
			if err != nil {
				return fmt.Errorf("canvas: %w", err)
			}
			cmd.Println(out)
			return nil
		},
	}
}
