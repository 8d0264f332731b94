package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/levelup/internal/exams"
)

// examRepo implements ExamRepo.
type examRepo struct {
	db *sql.DB
}

func (r *examRepo) Create(ctx context.Context, e exams.Result) (*exams.Result, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return nil, fmt.Errorf("create exam: name is required")
	}
	if e.MaxScore <= 0 {
		return nil, fmt.Errorf("create exam: max score must be positive, got %d", e.MaxScore)
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	e.ID = uuid.NewString()

	query, args := builder().Insert("exams").
		Columns("id", "student_id", "name", "score", "max_score", "exam_date").
		Values(e.ID, e.StudentID, e.Name, e.Score, e.MaxScore, e.Date.Format(dateLayout)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("create exam: %w", classify(err))
	}
	e.Date = truncateDate(e.Date)
	return &e, nil
}

func (r *examRepo) ForStudent(ctx context.Context, studentID string) ([]exams.Result, error) {
	return examsForStudent(ctx, r.db, studentID)
}

func (r *examRepo) Delete(ctx context.Context, id string) error {
	query, args := builder().Delete("exams").Where(entsql.EQ("id", id)).Query()
	return execOne(ctx, r.db, "delete exam", query, args)
}

// examsForStudent returns a student's exams, most recent first.
func examsForStudent(ctx context.Context, q querier, studentID string) ([]exams.Result, error) {
	query, args := builder().Select("id", "student_id", "name", "score", "max_score", "exam_date").
		From(entsql.Table("exams")).
		Where(entsql.EQ("student_id", studentID)).
		OrderBy(entsql.Desc("exam_date"), "name").
		Query()
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exams: %w", err)
	}
	defer rows.Close()

	var out []exams.Result
	for rows.Next() {
		var e exams.Result
		var date string
		if err := rows.Scan(&e.ID, &e.StudentID, &e.Name, &e.Score, &e.MaxScore, &date); err != nil {
			return nil, fmt.Errorf("scan exam: %w", err)
		}
		e.Date, _ = time.Parse(dateLayout, date)
		out = append(out, e)
	}
	return out, rows.Err()
}

func truncateDate(t time.Time) time.Time {
	d, _ := time.Parse(dateLayout, t.Format(dateLayout))
	return d
}
