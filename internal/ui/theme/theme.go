package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/exams"
	"github.com/abhisek/levelup/internal/progress"
)

// Palette shared by the TUI and the printed dashboard.
var (
	Primary   = lipgloss.Color("#8B5CF6") // purple
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F97316") // orange
	Success   = lipgloss.Color("#22C55E")
	Warning   = lipgloss.Color("#EAB308")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Card frames one dashboard section.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// StatusColor returns the colour used for a lesson status.
func StatusColor(s progress.Status) lipgloss.Style {
	switch s {
	case progress.StatusCompleted:
		return lipgloss.NewStyle().Foreground(Success)
	case progress.StatusInProgress:
		return lipgloss.NewStyle().Foreground(Accent).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(TextDim)
	}
}

// StatusIcon returns the glyph shown next to a lesson.
func StatusIcon(s progress.Status) string {
	switch s {
	case progress.StatusCompleted:
		return "✓"
	case progress.StatusInProgress:
		return "▶"
	default:
		return "·"
	}
}

// BandStyle returns the style for an exam score band.
func BandStyle(b exams.Band) lipgloss.Style {
	switch b {
	case exams.BandExcellent:
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case exams.BandGood:
		return lipgloss.NewStyle().Foreground(Secondary)
	case exams.BandFair:
		return lipgloss.NewStyle().Foreground(Warning)
	default:
		return lipgloss.NewStyle().Foreground(Error)
	}
}
