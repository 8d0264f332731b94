package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/levelup/internal/curriculum"
	"github.com/abhisek/levelup/internal/exams"
	"github.com/abhisek/levelup/internal/progress"
)

var (
	// ErrNotFound is returned when a looked-up entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a write violates a uniqueness rule
	// (student code, level number, lesson number within a level).
	ErrDuplicate = errors.New("already exists")

	// ErrLevelInUse is returned when deleting a level that still has
	// lessons or progress rows.
	ErrLevelInUse = errors.New("level still has lessons or progress")

	// ErrInvalidStatus is returned when writing an unknown progress status.
	ErrInvalidStatus = errors.New("invalid progress status")
)

// Student is a learner whose parents look them up by Code.
type Student struct {
	ID        string
	Name      string
	Code      string
	CreatedAt time.Time
}

// Note is a teacher's free-text note about a student.
type Note struct {
	ID          string
	StudentID   string
	Text        string
	TeacherName string
	CreatedAt   time.Time
}

// StudentSnapshot is everything read for one render of a student's
// dashboard. All fields come from a single read transaction.
type StudentSnapshot struct {
	Student Student
	Levels  []curriculum.Level
	Lessons []curriculum.Lesson
	Rows    []progress.Row
	Exams   []exams.Result
	Notes   []Note
}

// StudentRepo manages students.
type StudentRepo interface {
	Create(ctx context.Context, name, code string) (*Student, error)
	ByCode(ctx context.Context, code string) (*Student, error)
	List(ctx context.Context) ([]Student, error)
	Delete(ctx context.Context, id string) error
}

// CurriculumRepo manages levels and lessons.
type CurriculumRepo interface {
	CreateLevel(ctx context.Context, number int, name string) (*curriculum.Level, error)
	Levels(ctx context.Context) ([]curriculum.Level, error)
	DeleteLevel(ctx context.Context, id string) error

	CreateLesson(ctx context.Context, levelID string, number int, name string) (*curriculum.Lesson, error)
	Lessons(ctx context.Context) ([]curriculum.Lesson, error)
	DeleteLesson(ctx context.Context, id string) error

	// MoveLesson reassigns a lesson to another level as lesson number and
	// rewrites the level of every progress row for that lesson in the same
	// transaction. A number below 1 takes the next free number in the target
	// level. It returns the number the lesson ended up with.
	MoveLesson(ctx context.Context, lessonID, levelID string, number int) (int, error)

	// Import inserts a whole curriculum in one transaction.
	Import(ctx context.Context, levels []curriculum.Level, lessons []curriculum.Lesson) error
}

// ProgressRepo manages per-lesson progress rows.
type ProgressRepo interface {
	// Set creates or updates the student's row for a lesson. The row's
	// level is taken from the lesson at write time.
	Set(ctx context.Context, studentID, lessonID string, status progress.Status) (*progress.Row, error)

	// ForStudent returns the student's rows in insertion order.
	ForStudent(ctx context.Context, studentID string) ([]progress.Row, error)

	// All returns every row in insertion order.
	All(ctx context.Context) ([]progress.Row, error)

	// Realign sets each listed row's level to its lesson's current level.
	// Returns the number of rows changed.
	Realign(ctx context.Context, rowIDs []string) (int, error)

	Delete(ctx context.Context, id string) error
}

// ExamRepo manages exam results.
type ExamRepo interface {
	Create(ctx context.Context, r exams.Result) (*exams.Result, error)
	ForStudent(ctx context.Context, studentID string) ([]exams.Result, error)
	Delete(ctx context.Context, id string) error
}

// NoteRepo manages teacher notes.
type NoteRepo interface {
	Create(ctx context.Context, studentID, text, teacherName string) (*Note, error)
	ForStudent(ctx context.Context, studentID string) ([]Note, error)
	Delete(ctx context.Context, id string) error
}

// SnapshotRepo reads consistent per-student snapshots.
type SnapshotRepo interface {
	// ByCode reads the student with the given code together with the
	// curriculum, the student's progress rows, exams and notes.
	// Returns ErrNotFound if no student has the code.
	ByCode(ctx context.Context, code string) (*StudentSnapshot, error)
}
