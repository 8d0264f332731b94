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
)

// studentRepo implements StudentRepo.
type studentRepo struct {
	db *sql.DB
}

func (r *studentRepo) Create(ctx context.Context, name, code string) (*Student, error) {
	name, code = strings.TrimSpace(name), strings.TrimSpace(code)
	if name == "" || code == "" {
		return nil, fmt.Errorf("create student: name and code are required")
	}

	st := &Student{
		ID:        uuid.NewString(),
		Name:      name,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}
	query, args := builder().Insert("students").
		Columns("id", "name", "code", "created_at").
		Values(st.ID, st.Name, st.Code, formatTime(st.CreatedAt)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("create student: %w", classify(err))
	}
	return st, nil
}

func (r *studentRepo) ByCode(ctx context.Context, code string) (*Student, error) {
	return studentByCode(ctx, r.db, strings.TrimSpace(code))
}

func (r *studentRepo) List(ctx context.Context) ([]Student, error) {
	query, args := builder().Select("id", "name", "code", "created_at").
		From(entsql.Table("students")).
		OrderBy("name").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	var out []Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *st)
	}
	return out, rows.Err()
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	query, args := builder().Delete("students").Where(entsql.EQ("id", id)).Query()
	return execOne(ctx, r.db, "delete student", query, args)
}

func studentByCode(ctx context.Context, q querier, code string) (*Student, error) {
	query, args := builder().Select("id", "name", "code", "created_at").
		From(entsql.Table("students")).
		Where(entsql.EQ("code", code)).
		Limit(1).
		Query()
	st, err := scanStudent(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("student %q: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(s scanner) (*Student, error) {
	var st Student
	var created string
	if err := s.Scan(&st.ID, &st.Name, &st.Code, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan student: %w", err)
	}
	st.CreatedAt = parseTime(created)
	return &st, nil
}

// execOne runs a statement that must affect exactly one row.
func execOne(ctx context.Context, q querier, op, query string, args []any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
