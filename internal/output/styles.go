package output

import (
	"github.com/charmbracelet/lipgloss"

	"caseshop/internal/service"
)

// Palettes. Dark follows One Dark; light is its daytime counterpart.
var (
	darkPalette = palette{
		accent: lipgloss.Color("#C678DD"),
		text:   lipgloss.Color("#ABB2BF"),
		muted:  lipgloss.Color("#5C6370"),
		green:  lipgloss.Color("#98C379"),
		yellow: lipgloss.Color("#E5C07B"),
		red:    lipgloss.Color("#E06C75"),
		blue:   lipgloss.Color("#61AFEF"),
		orange: lipgloss.Color("#D19A66"),
	}
	lightPalette = palette{
		accent: lipgloss.Color("#A626A4"),
		text:   lipgloss.Color("#383A42"),
		muted:  lipgloss.Color("#A0A1A7"),
		green:  lipgloss.Color("#50A14F"),
		yellow: lipgloss.Color("#C18401"),
		red:    lipgloss.Color("#E45649"),
		blue:   lipgloss.Color("#4078F2"),
		orange: lipgloss.Color("#986801"),
	}
)

type palette struct {
	accent, text, muted, green, yellow, red, blue, orange lipgloss.Color
}

type styles struct {
	header  lipgloss.Style
	name    lipgloss.Style
	price   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	error   lipgloss.Style

	pending    lipgloss.Style
	inProgress lipgloss.Style
	completed  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return styles{
		header:     r.NewStyle().Foreground(p.accent).Bold(true),
		name:       r.NewStyle().Foreground(p.text),
		price:      r.NewStyle().Foreground(p.orange),
		muted:      r.NewStyle().Foreground(p.muted),
		success:    r.NewStyle().Foreground(p.green),
		warning:    r.NewStyle().Foreground(p.yellow),
		error:      r.NewStyle().Foreground(p.red).Bold(true),
		pending:    r.NewStyle().Foreground(p.yellow),
		inProgress: r.NewStyle().Foreground(p.blue),
		completed:  r.NewStyle().Foreground(p.green),
	}
}

func (s styles) status(status string) lipgloss.Style {
	switch status {
	case service.StatusCompleted:
		return s.completed
	case service.StatusInProgress:
		return s.inProgress
	default:
		return s.pending
	}
}
