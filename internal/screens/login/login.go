// Package login is the parent sign-in screen: the parent types their
// child's student code and is taken to the dashboard.
package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/levelup/internal/dashboard"
	"github.com/abhisek/levelup/internal/router"
	"github.com/abhisek/levelup/internal/screen"
	"github.com/abhisek/levelup/internal/screens/overview"
	"github.com/abhisek/levelup/internal/ui/components"
	"github.com/abhisek/levelup/internal/ui/layout"
	"github.com/abhisek/levelup/internal/ui/theme"
)

const codeLimit = 32

// loadedMsg carries the result of a dashboard lookup.
type loadedMsg struct {
	dash *dashboard.Dashboard
	err  error
}

// LoginScreen asks for a student code.
type LoginScreen struct {
	loader  dashboard.Loader
	input   components.TextInput
	loading bool
	errMsg  string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates a LoginScreen that resolves codes with loader.
func New(loader dashboard.Loader) *LoginScreen {
	return &LoginScreen{
		loader: loader,
		input:  components.NewTextInput("student code", codeLimit),
	}
}

func (s *LoginScreen) Title() string {
	return "Parent sign-in"
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.err != nil {
			s.input.Submit(false)
			s.errMsg = describe(msg.err)
			return s, nil
		}
		s.input.Submit(true)
		s.errMsg = ""
		return s, router.Push(overview.New(s.loader, msg.dash))

	case tea.KeyMsg:
		if s.loading {
			return s, nil
		}
		if msg.String() == "enter" {
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	code := s.input.Value()
	if code == "" {
		s.errMsg = "Enter your child's student code."
		return nil
	}
	s.loading = true
	s.errMsg = ""
	loader := s.loader
	return func() tea.Msg {
		d, err := loader.Load(context.Background(), code)
		return loadedMsg{dash: d, err: err}
	}
}

func describe(err error) string {
	if errors.Is(err, dashboard.ErrStudentNotFound) {
		return "No student found with that code."
	}
	return "Could not load progress: " + err.Error()
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(RenderBanner(width))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Follow your child's progress"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Student code"))
	b.WriteString("\n")
	b.WriteString(theme.Card.Width(40).Render(s.input.View()))
	b.WriteString("\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Render("Looking up..."))
	case s.errMsg != "":
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
