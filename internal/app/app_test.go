package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/levelup/internal/dashboard"
	"github.com/abhisek/levelup/internal/store"
)

type stubLoader struct{}

func (stubLoader) Load(_ context.Context, code string) (*dashboard.Dashboard, error) {
	return &dashboard.Dashboard{Student: store.Student{Name: "Ada", Code: code}}, nil
}

func TestStartsOnLogin(t *testing.T) {
	m := newAppModel(Options{Loader: stubLoader{}})
	if got := m.router.Active().Title(); got != "Parent sign-in" {
		t.Errorf("active = %q, want Parent sign-in", got)
	}
}

func TestInitialDashboardAndSignOut(t *testing.T) {
	d, _ := stubLoader{}.Load(context.Background(), "ADA")
	m := newAppModel(Options{Loader: stubLoader{}, Initial: d})
	if m.router.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", m.router.Depth())
	}

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command on Esc")
	}
	m = updated.(AppModel)
	updated, _ = m.Update(cmd())
	m = updated.(AppModel)

	if m.router.Depth() != 1 {
		t.Errorf("Depth() after Esc = %d, want 1", m.router.Depth())
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(Options{Loader: stubLoader{}})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	v := updated.(AppModel).View()
	if !v.AltScreen {
		t.Error("expected alt screen view")
	}
}

func TestRunRequiresLoader(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Error("expected error without a loader")
	}
}
