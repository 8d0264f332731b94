package overview

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/levelup/internal/curriculum"
	"github.com/abhisek/levelup/internal/dashboard"
	"github.com/abhisek/levelup/internal/progress"
	"github.com/abhisek/levelup/internal/store"
)

type fakeLoader struct {
	dash *dashboard.Dashboard
	err  error
}

func (f *fakeLoader) Load(context.Context, string) (*dashboard.Dashboard, error) {
	return f.dash, f.err
}

func testDashboard(name string) *dashboard.Dashboard {
	snap := &store.StudentSnapshot{
		Student: store.Student{ID: "s1", Name: name, Code: "ADA"},
		Levels: []curriculum.Level{
			{ID: "lv1", Number: 1, Name: "Foundations"},
			{ID: "lv2", Number: 2, Name: "Builders"},
		},
		Lessons: []curriculum.Lesson{
			{ID: "a", LevelID: "lv1", Number: 1, Name: "Counting"},
			{ID: "b", LevelID: "lv1", Number: 2, Name: "Shapes"},
		},
		Rows: []progress.Row{
			{ID: "r1", StudentID: "s1", LessonID: "a", LevelID: "lv1", Status: "completed"},
			{ID: "r2", StudentID: "s1", LessonID: "b", LevelID: "lv1", Status: "in_progress"},
		},
	}
	return dashboard.Build(snap, dashboard.DefaultOptions())
}

func TestOverviewScreen_View(t *testing.T) {
	s := New(&fakeLoader{}, testDashboard("Ada"))
	view := s.View(120, 60)
	for _, want := range []string{"Ada", "Level 1", "Foundations", "Counting", "Shapes"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if s.Status() != "Ada" {
		t.Errorf("Status = %q, want Ada", s.Status())
	}
}

func TestOverviewScreen_Refresh(t *testing.T) {
	loader := &fakeLoader{dash: testDashboard("Ada Lovelace")}
	s := New(loader, testDashboard("Ada"))

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a refresh command")
	}
	s.Update(cmd())

	if s.Status() != "Ada Lovelace" {
		t.Errorf("Status after refresh = %q, want Ada Lovelace", s.Status())
	}
}

func TestOverviewScreen_RefreshErrorKeepsData(t *testing.T) {
	s := New(&fakeLoader{err: errors.New("disk full")}, testDashboard("Ada"))

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	s.Update(cmd())

	view := s.View(120, 60)
	if !strings.Contains(view, "disk full") {
		t.Error("expected refresh error in view")
	}
	if !strings.Contains(view, "Counting") {
		t.Error("expected previous dashboard to stay visible")
	}
}

func TestOverviewScreen_ScrollClamped(t *testing.T) {
	s := New(&fakeLoader{}, testDashboard("Ada"))
	for range 500 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := s.View(120, 10)
	if got := len(strings.Split(view, "\n")); got != 10 {
		t.Errorf("visible lines = %d, want 10", got)
	}

	s.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	if s.offset != 0 {
		t.Errorf("offset after home = %d, want 0", s.offset)
	}
}
