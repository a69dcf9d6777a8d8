package colour

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultSwatchWidth = 8

// Previewer renders colour swatches for terminal output. When disabled it
// renders plain text so output stays readable in pipes and files.
type Previewer struct {
	renderer *lipgloss.Renderer
	enabled  bool
	width    int
}

// NewPreviewer creates a Previewer writing to w. Colour is only enabled when
// requested and w is a terminal.
func NewPreviewer(w io.Writer, enabled bool) *Previewer {
	return &Previewer{
		renderer: lipgloss.NewRenderer(w),
		enabled:  enabled && IsTerminal(w),
		width:    defaultSwatchWidth,
	}
}

// Enabled reports whether swatches are rendered in colour.
func (p *Previewer) Enabled() bool {
	return p.enabled
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Swatch returns a solid block of the colour, or an empty string when
// colour output is disabled.
func (p *Previewer) Swatch(rgb RGB) string {
	if !p.enabled {
		return ""
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(rgb.Hex())).
		Width(p.width).
		Render("")
}

// SwatchWithText renders text centred on the colour using black or white
// text, whichever reads better.
func (p *Previewer) SwatchWithText(rgb RGB, text string) string {
	if !p.enabled {
		return text
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(rgb.Hex())).
		Foreground(lipgloss.Color(BestTextColour(rgb.Hex()))).
		Width(p.width).
		MaxWidth(p.width).
		Align(lipgloss.Center).
		Render(text)
}

// FormatColour formats a colour as its swatch followed by the hex code.
func (p *Previewer) FormatColour(rgb RGB) string {
	if !p.enabled {
		return rgb.Hex()
	}
	return fmt.Sprintf("%s %s", p.Swatch(rgb), rgb.Hex())
}

// FormatColourWithLabel formats a colour with a label, swatch and hex code.
func (p *Previewer) FormatColourWithLabel(rgb RGB, label string) string {
	if !p.enabled {
		return fmt.Sprintf("%-20s %s", label, rgb.Hex())
	}
	return fmt.Sprintf("%s  %-20s %s", p.Swatch(rgb), label, rgb.Hex())
}

// Sample renders text in the text colour on the background colour.
func (p *Previewer) Sample(text, background RGB, s string) string {
	if !p.enabled {
		return s
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(background.Hex())).
		Foreground(lipgloss.Color(text.Hex())).
		Render(s)
}
