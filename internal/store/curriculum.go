package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/levelup/internal/curriculum"
)

// curriculumRepo implements CurriculumRepo.
type curriculumRepo struct {
	db *sql.DB
}

func (r *curriculumRepo) CreateLevel(ctx context.Context, number int, name string) (*curriculum.Level, error) {
	name = strings.TrimSpace(name)
	if number < 1 || name == "" {
		return nil, fmt.Errorf("create level: number must be >= 1 and name is required")
	}
	lvl := &curriculum.Level{ID: uuid.NewString(), Number: number, Name: name}
	if err := insertLevel(ctx, r.db, *lvl); err != nil {
		return nil, err
	}
	return lvl, nil
}

func (r *curriculumRepo) Levels(ctx context.Context) ([]curriculum.Level, error) {
	return queryLevels(ctx, r.db)
}

func (r *curriculumRepo) DeleteLevel(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, table := range []string{"lessons", "student_progress"} {
			n, err := countWhere(ctx, tx, table, entsql.EQ("level_id", id))
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("delete level: %w", ErrLevelInUse)
			}
		}
		query, args := builder().Delete("levels").Where(entsql.EQ("id", id)).Query()
		return execOne(ctx, tx, "delete level", query, args)
	})
}

func countWhere(ctx context.Context, q querier, table string, p *entsql.Predicate) (int, error) {
	query, args := builder().Select(entsql.Count("*")).
		From(entsql.Table(table)).
		Where(p).
		Query()
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (r *curriculumRepo) CreateLesson(ctx context.Context, levelID string, number int, name string) (*curriculum.Lesson, error) {
	name = strings.TrimSpace(name)
	if number < 1 || name == "" {
		return nil, fmt.Errorf("create lesson: number must be >= 1 and name is required")
	}
	lesson := &curriculum.Lesson{ID: uuid.NewString(), LevelID: levelID, Number: number, Name: name}
	if err := insertLesson(ctx, r.db, *lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (r *curriculumRepo) Lessons(ctx context.Context) ([]curriculum.Lesson, error) {
	return queryLessons(ctx, r.db)
}

func (r *curriculumRepo) DeleteLesson(ctx context.Context, id string) error {
	query, args := builder().Delete("lessons").Where(entsql.EQ("id", id)).Query()
	return execOne(ctx, r.db, "delete lesson", query, args)
}

func (r *curriculumRepo) MoveLesson(ctx context.Context, lessonID, levelID string, number int) (int, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if number < 1 {
			next, err := nextLessonNumber(ctx, tx, levelID)
			if err != nil {
				return err
			}
			number = next
		}

		query, args := builder().Update("lessons").
			Set("level_id", levelID).
			Set("number", number).
			Where(entsql.EQ("id", lessonID)).
			Query()
		if err := execOne(ctx, tx, "move lesson", query, args); err != nil {
			return err
		}

		query, args = builder().Update("student_progress").
			Set("level_id", levelID).
			Set("updated_at", formatTime(time.Now())).
			Where(entsql.EQ("lesson_id", lessonID)).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("move lesson progress: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return number, nil
}

// nextLessonNumber returns one past the highest lesson number in a level.
func nextLessonNumber(ctx context.Context, q querier, levelID string) (int, error) {
	query, args := builder().Select(entsql.Max("number")).
		From(entsql.Table("lessons")).
		Where(entsql.EQ("level_id", levelID)).
		Query()
	var last sql.NullInt64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&last); err != nil {
		return 0, fmt.Errorf("query lesson numbers: %w", err)
	}
	return int(last.Int64) + 1, nil
}

func (r *curriculumRepo) Import(ctx context.Context, levels []curriculum.Level, lessons []curriculum.Lesson) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, l := range levels {
			if err := insertLevel(ctx, tx, l); err != nil {
				return err
			}
		}
		for _, l := range lessons {
			if err := insertLesson(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertLevel(ctx context.Context, q querier, l curriculum.Level) error {
	query, args := builder().Insert("levels").
		Columns("id", "number", "name").
		Values(l.ID, l.Number, l.Name).
		Query()
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create level %d: %w", l.Number, classify(err))
	}
	return nil
}

func insertLesson(ctx context.Context, q querier, l curriculum.Lesson) error {
	query, args := builder().Insert("lessons").
		Columns("id", "level_id", "number", "name").
		Values(l.ID, l.LevelID, l.Number, l.Name).
		Query()
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create lesson %q: %w", l.Name, classify(err))
	}
	return nil
}

func queryLevels(ctx context.Context, q querier) ([]curriculum.Level, error) {
	query, args := builder().Select("id", "number", "name").
		From(entsql.Table("levels")).
		OrderBy("number").
		Query()
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query levels: %w", err)
	}
	defer rows.Close()

	var out []curriculum.Level
	for rows.Next() {
		var l curriculum.Level
		if err := rows.Scan(&l.ID, &l.Number, &l.Name); err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func queryLessons(ctx context.Context, q querier) ([]curriculum.Lesson, error) {
	query, args := builder().Select("id", "level_id", "number", "name").
		From(entsql.Table("lessons")).
		OrderBy("level_id", "number").
		Query()
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	defer rows.Close()

	var out []curriculum.Lesson
	for rows.Next() {
		var l curriculum.Lesson
		if err := rows.Scan(&l.ID, &l.LevelID, &l.Number, &l.Name); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// lessonLevel returns the current level ID of a lesson.
func lessonLevel(ctx context.Context, q querier, lessonID string) (string, error) {
	query, args := builder().Select("level_id").
		From(entsql.Table("lessons")).
		Where(entsql.EQ("id", lessonID)).
		Query()
	var levelID string
	err := q.QueryRowContext(ctx, query, args...).Scan(&levelID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("lesson %q: %w", lessonID, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("query lesson level: %w", err)
	}
	return levelID, nil
}
