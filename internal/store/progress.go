package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/levelup/internal/progress"
)

// progressRepo implements ProgressRepo.
type progressRepo struct {
	db *sql.DB
}

var progressColumns = []string{"id", "student_id", "lesson_id", "level_id", "status"}

func (r *progressRepo) Set(ctx context.Context, studentID, lessonID string, status progress.Status) (*progress.Row, error) {
	if _, ok := progress.ParseStatus(string(status)); !ok {
		return nil, fmt.Errorf("set progress %q: %w", status, ErrInvalidStatus)
	}

	var row *progress.Row
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		levelID, err := lessonLevel(ctx, tx, lessonID)
		if err != nil {
			return err
		}
		now := formatTime(time.Now())

		existing, err := progressRow(ctx, tx, studentID, lessonID)
		switch {
		case errors.Is(err, ErrNotFound):
			row = &progress.Row{
				ID:        uuid.NewString(),
				StudentID: studentID,
				LessonID:  lessonID,
				LevelID:   levelID,
				Status:    string(status),
			}
			query, args := builder().Insert("student_progress").
				Columns("id", "student_id", "lesson_id", "level_id", "status", "updated_at").
				Values(row.ID, row.StudentID, row.LessonID, row.LevelID, row.Status, now).
				Query()
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert progress: %w", classify(err))
			}
			return nil
		case err != nil:
			return err
		}

		existing.LevelID = levelID
		existing.Status = string(status)
		query, args := builder().Update("student_progress").
			Set("level_id", levelID).
			Set("status", existing.Status).
			Set("updated_at", now).
			Where(entsql.EQ("id", existing.ID)).
			Query()
		if err := execOne(ctx, tx, "update progress", query, args); err != nil {
			return err
		}
		row = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *progressRepo) ForStudent(ctx context.Context, studentID string) ([]progress.Row, error) {
	return queryProgress(ctx, r.db, entsql.EQ("student_id", studentID))
}

func (r *progressRepo) All(ctx context.Context) ([]progress.Row, error) {
	return queryProgress(ctx, r.db, nil)
}

func (r *progressRepo) Realign(ctx context.Context, rowIDs []string) (int, error) {
	if len(rowIDs) == 0 {
		return 0, nil
	}
	changed := 0
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		ids := make([]any, len(rowIDs))
		for i, id := range rowIDs {
			ids[i] = id
		}
		rows, err := queryProgress(ctx, tx, entsql.In("id", ids...))
		if err != nil {
			return err
		}
		now := formatTime(time.Now())
		for _, row := range rows {
			levelID, err := lessonLevel(ctx, tx, row.LessonID)
			if err != nil {
				return err
			}
			if levelID == row.LevelID {
				continue
			}
			query, args := builder().Update("student_progress").
				Set("level_id", levelID).
				Set("updated_at", now).
				Where(entsql.EQ("id", row.ID)).
				Query()
			if err := execOne(ctx, tx, "realign progress", query, args); err != nil {
				return err
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

func (r *progressRepo) Delete(ctx context.Context, id string) error {
	query, args := builder().Delete("student_progress").Where(entsql.EQ("id", id)).Query()
	return execOne(ctx, r.db, "delete progress", query, args)
}

func progressRow(ctx context.Context, q querier, studentID, lessonID string) (*progress.Row, error) {
	rows, err := queryProgress(ctx, q, entsql.And(
		entsql.EQ("student_id", studentID),
		entsql.EQ("lesson_id", lessonID),
	))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("progress for lesson %q: %w", lessonID, ErrNotFound)
	}
	return &rows[0], nil
}

// queryProgress reads progress rows in insertion order. A nil predicate
// reads every row.
func queryProgress(ctx context.Context, q querier, where *entsql.Predicate) ([]progress.Row, error) {
	sel := builder().Select(progressColumns...).From(entsql.Table("student_progress"))
	if where != nil {
		sel = sel.Where(where)
	}
	query, args := sel.OrderBy("seq").Query()
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	var out []progress.Row
	for rows.Next() {
		var r progress.Row
		if err := rows.Scan(&r.ID, &r.StudentID, &r.LessonID, &r.LevelID, &r.Status); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
