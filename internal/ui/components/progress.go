package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aeroSapphire/greprep/internal/ui/theme"
)

// ProgressBar is a horizontal bar sized to Width, with an optional
// leading label and trailing percentage.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var out string
	if p.Label != "" {
		out = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	// The bar takes whatever width the label and percent suffix leave,
	// but never collapses below 4 cells.
	reserved := lipgloss.Width(out)
	if p.ShowPercent {
		reserved += 6
	}
	barWidth := p.Width - reserved
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled < 0 {
		filled = 0
	} else if filled > barWidth {
		filled = barWidth
	}

	out += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	out += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		out += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}
	return out
}
