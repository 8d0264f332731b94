package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/dashboard"
	"github.com/abhisek/levelup/internal/exams"
	"github.com/abhisek/levelup/internal/store"
	"github.com/abhisek/levelup/internal/ui/layout"
	"github.com/abhisek/levelup/internal/ui/theme"
)

// maxNotes caps how many teacher notes the dashboard lists.
const maxNotes = 5

// Dashboard renders a student's dashboard at the given width. Narrow widths
// stack the exam and note cards below the lessons.
func Dashboard(d *dashboard.Dashboard, width int) string {
	s := d.Summary

	levelTitle := fmt.Sprintf("Level %d", s.CurrentLevel)
	if name := s.CurrentLevelName(); name != "" {
		levelTitle += ": " + name
	}

	cardWidth := width - 2
	if cardWidth < 20 {
		cardWidth = 20
	}

	level := theme.Card.Width(cardWidth).Render(
		theme.Title.Render(levelTitle) + "\n\n" +
			LevelTrack(s.Levels) + "\n\n" +
			NewProgressBar("This level", s.CurrentPercent, true, cardWidth-4).View(),
	)

	lessons := section("Lessons", LessonList(d.Lessons))
	scores := section("Exam results", ExamList(d.Exams))
	notes := section("Teacher notes", NoteList(d.Notes))

	var body string
	if layout.IsCompactWidth(width) {
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.Card.Width(cardWidth).Render(lessons),
			theme.Card.Width(cardWidth).Render(scores),
			theme.Card.Width(cardWidth).Render(notes),
		)
	} else {
		half := cardWidth/2 - 1
		right := lipgloss.JoinVertical(lipgloss.Left,
			theme.Card.Width(cardWidth-half).Render(scores),
			theme.Card.Width(cardWidth-half).Render(notes),
		)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			theme.Card.Width(half).Render(lessons),
			right,
		)
	}

	out := []string{
		theme.Title.Render(d.Student.Name) + "  " + theme.Subtitle.Render(d.Student.Code),
		level,
		body,
	}
	if d.Problem != nil {
		out = append(out, theme.ErrorText.Render("Curriculum needs attention; run `levelup doctor`."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func section(title, content string) string {
	return theme.Subtitle.Bold(true).Render(title) + "\n" + content
}

// ExamList renders exam results with their score band colour.
func ExamList(results []exams.Result) string {
	if len(results) == 0 {
		return theme.Hint.Render("No exams yet.")
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		style := theme.BandStyle(r.Band())
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			theme.Subtitle.Render(r.Date.Format("2006-01-02")),
			theme.Body.Render(r.Name),
			style.Render(fmt.Sprintf("%d/%d (%.0f%%)", r.Score, r.MaxScore, exams.Percent(r.Score, r.MaxScore))),
		))
	}
	return strings.Join(lines, "\n")
}

// NoteList renders the most recent teacher notes.
func NoteList(notes []store.Note) string {
	if len(notes) == 0 {
		return theme.Hint.Render("No notes yet.")
	}
	if len(notes) > maxNotes {
		notes = notes[:maxNotes]
	}
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		by := n.TeacherName
		if by == "" {
			by = "Teacher"
		}
		lines = append(lines,
			theme.Body.Render(n.Text)+"\n"+
				theme.Hint.Render(fmt.Sprintf("  %s, %s", by, n.CreatedAt.Local().Format("Jan 2"))))
	}
	return strings.Join(lines, "\n")
}
