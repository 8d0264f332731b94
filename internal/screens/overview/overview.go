// Package overview is the student dashboard screen.
package overview

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/levelup/internal/dashboard"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/ui/components"
	"github.com/abhisek/levelup/internal/ui/layout"
	"github.com/abhisek/levelup/internal/ui/theme"
)

// refreshedMsg carries a reloaded dashboard.
type refreshedMsg struct {
	dash *dashboard.Dashboard
	err  error
}

// OverviewScreen shows one student's dashboard.
type OverviewScreen struct {
	loader     dashboard.Loader
	dash       *dashboard.Dashboard
	offset     int
	refreshing bool
	errMsg     string
}

var _ screen.Screen = (*OverviewScreen)(nil)

// New creates an OverviewScreen for an already loaded dashboard.
func New(loader dashboard.Loader, d *dashboard.Dashboard) *OverviewScreen {
	return &OverviewScreen{loader: loader, dash: d}
}

func (s *OverviewScreen) Title() string {
	return "Progress"
}

// Status shows the signed-in student in the header.
func (s *OverviewScreen) Status() string {
	return s.dash.Student.Name
}

func (s *OverviewScreen) Init() tea.Cmd {
	return nil
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		s.refreshing = false
		if msg.err != nil {
			s.errMsg = "Refresh failed: " + msg.err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.dash = msg.dash
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.refresh()
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		case "home", "g":
			s.offset = 0
		}
	}
	return s, nil
}

func (s *OverviewScreen) refresh() tea.Cmd {
	if s.refreshing {
		return nil
	}
	s.refreshing = true
	loader, code := s.loader, s.dash.Student.Code
	return func() tea.Msg {
		d, err := loader.Load(context.Background(), code)
		return refreshedMsg{dash: d, err: err}
	}
}

func (s *OverviewScreen) View(width, height int) string {
	content := components.Dashboard(s.dash, width)
	switch {
	case s.refreshing:
		content = theme.Hint.Render("Refreshing...") + "\n" + content
	case s.errMsg != "":
		content = theme.ErrorText.Render(s.errMsg) + "\n" + content
	}

	lines := strings.Split(content, "\n")
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	lines = lines[s.offset:]
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Refresh"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Sign out"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
