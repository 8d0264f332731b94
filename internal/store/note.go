package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// noteRepo implements NoteRepo.
type noteRepo struct {
	db *sql.DB
}

func (r *noteRepo) Create(ctx context.Context, studentID, text, teacherName string) (*Note, error) {
	text, teacherName = strings.TrimSpace(text), strings.TrimSpace(teacherName)
	if text == "" {
		return nil, fmt.Errorf("create note: text is required")
	}
	n := &Note{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Text:        text,
		TeacherName: teacherName,
		CreatedAt:   time.Now().UTC(),
	}
	query, args := builder().Insert("teacher_notes").
		Columns("id", "student_id", "note_text", "teacher_name", "created_at").
		Values(n.ID, n.StudentID, n.Text, n.TeacherName, formatTime(n.CreatedAt)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("create note: %w", classify(err))
	}
	return n, nil
}

func (r *noteRepo) ForStudent(ctx context.Context, studentID string) ([]Note, error) {
	return notesForStudent(ctx, r.db, studentID)
}

func (r *noteRepo) Delete(ctx context.Context, id string) error {
	query, args := builder().Delete("teacher_notes").Where(entsql.EQ("id", id)).Query()
	return execOne(ctx, r.db, "delete note", query, args)
}

// notesForStudent returns a student's notes, newest first.
func notesForStudent(ctx context.Context, q querier, studentID string) ([]Note, error) {
	query, args := builder().Select("id", "student_id", "note_text", "teacher_name", "created_at").
		From(entsql.Table("teacher_notes")).
		Where(entsql.EQ("student_id", studentID)).
		OrderBy(entsql.Desc("created_at")).
		Query()
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		var n Note
		var created string
		if err := rows.Scan(&n.ID, &n.StudentID, &n.Text, &n.TeacherName, &created); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		n.CreatedAt = parseTime(created)
		out = append(out, n)
	}
	return out, rows.Err()
}
