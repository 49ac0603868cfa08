package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// palette is rosé pine, light and dark variants.
var (
	colorText  = lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}
	colorLove  = lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}
	colorPine  = lipgloss.AdaptiveColor{Light: "#286983", Dark: "#31748f"}
	colorFoam  = lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#9ccfd8"}
	colorMuted = lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"}
)

type styles struct {
	correct    lipgloss.Style
	misspelled lipgloss.Style
	suggestion lipgloss.Style
	rank       lipgloss.Style
	muted      lipgloss.Style
	title      lipgloss.Style
}

// newStyles binds the palette to w. With color off every style renders
// plain text.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		correct:    r.NewStyle().Foreground(colorPine).Bold(true),
		misspelled: r.NewStyle().Foreground(colorLove).Bold(true),
		suggestion: r.NewStyle().Foreground(colorFoam),
		rank:       r.NewStyle().Foreground(colorMuted).Width(4).Align(lipgloss.Right),
		muted:      r.NewStyle().Foreground(colorMuted).Italic(true),
		title:      r.NewStyle().Foreground(colorText).Bold(true),
	}
}
