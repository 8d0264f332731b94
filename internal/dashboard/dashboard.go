// Package dashboard assembles one student's progress view from a single
// store snapshot.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/levelup/internal/curriculum"
	"github.com/abhisek/levelup/internal/exams"
	"github.com/abhisek/levelup/internal/progress"
	"github.com/abhisek/levelup/internal/store"
)

// ErrStudentNotFound is returned when no student has the requested code.
var ErrStudentNotFound = errors.New("no student with that code")

// Options tune how a dashboard is derived.
type Options struct {
	// MaxLevel overrides the level ceiling. Zero derives it from the
	// configured levels.
	MaxLevel int

	TieBreak   progress.TieBreak
	Membership progress.Membership
}

// DefaultOptions returns the derived ceiling, first-wins tie-break and
// stored level membership.
func DefaultOptions() Options {
	return Options{
		TieBreak:   progress.TieBreakFirst,
		Membership: progress.MembershipStored,
	}
}

// Dashboard is the derived view for one student.
type Dashboard struct {
	Student store.Student
	Summary progress.Summary

	// Lessons are the current level's records ordered by lesson number.
	Lessons []progress.Record

	Exams []exams.Result
	Notes []store.Note

	// Drift lists rows whose stored level no longer matches their lesson.
	Drift []progress.Drift

	// Problem is the curriculum validation error, if any. The dashboard is
	// still derived when the curriculum is inconsistent.
	Problem error
}

// Service loads dashboards.
type Service struct {
	snapshots store.SnapshotRepo
	opts      Options
}

// NewService creates a Service reading from snapshots.
func NewService(snapshots store.SnapshotRepo, opts Options) *Service {
	return &Service{snapshots: snapshots, opts: opts}
}

// Load reads the student with the given code and derives their dashboard.
func (s *Service) Load(ctx context.Context, code string) (*Dashboard, error) {
	snap, err := s.snapshots.ByCode(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load dashboard %q: %w", code, ErrStudentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	return Build(snap, s.opts), nil
}

// Build derives a dashboard from a snapshot.
func Build(snap *store.StudentSnapshot, opts Options) *Dashboard {
	cat := curriculum.NewCatalog(snap.Levels, snap.Lessons)
	records, drift := progress.Join(cat, snap.Rows, opts.Membership)

	cfg := progress.ConfigFor(cat.Levels())
	if opts.MaxLevel > 0 {
		cfg.MaxLevel = opts.MaxLevel
	}
	if opts.TieBreak != "" {
		cfg.TieBreak = opts.TieBreak
	}
	summary := progress.New(cfg).Summarize(records, cat.Levels())

	return &Dashboard{
		Student: snap.Student,
		Summary: summary,
		Lessons: progress.SortByLessonNumber(summary.CurrentLessons),
		Exams:   snap.Exams,
		Notes:   snap.Notes,
		Drift:   drift,
		Problem: curriculum.Validate(snap.Levels, snap.Lessons),
	}
}

// Loader loads a dashboard by student code. *Service implements it.
type Loader interface {
	Load(ctx context.Context, code string) (*Dashboard, error)
}

var _ Loader = (*Service)(nil)
