package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/progress"
	"github.com/abhisek/levelup/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     int
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar. percent is in [0, 100].
func NewProgressBar(label string, percent int, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * p.Percent / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", p.Percent))
	}

	return result
}

// LevelTrack renders one marker per level: done levels in green, the current
// level highlighted, upcoming levels dimmed.
func LevelTrack(levels []progress.LevelProgress) string {
	parts := make([]string, 0, len(levels))
	for _, lp := range levels {
		label := fmt.Sprintf(" %d ", lp.Level.Number)
		var style lipgloss.Style
		switch lp.State {
		case progress.LevelDone:
			style = lipgloss.NewStyle().Background(theme.Success).Foreground(theme.BgCard)
		case progress.LevelCurrent:
			style = lipgloss.NewStyle().Background(theme.Primary).Foreground(theme.Text).Bold(true)
		default:
			style = lipgloss.NewStyle().Background(theme.Border).Foreground(theme.TextDim)
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("──"))
}

// LessonList renders lessons with their status icon and label.
func LessonList(records []progress.Record) string {
	if len(records) == 0 {
		return theme.Hint.Render("No lessons started at this level yet.")
	}
	var b strings.Builder
	for i, r := range records {
		style := theme.StatusColor(r.Status)
		name := r.LessonName
		if name == "" {
			name = "(removed lesson)"
		}
		fmt.Fprintf(&b, "%s %2d. %s  %s",
			style.Render(theme.StatusIcon(r.Status)),
			r.LessonNumber,
			theme.Body.Render(name),
			style.Render(r.Status.DisplayName()),
		)
		if i < len(records)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
