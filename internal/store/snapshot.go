package store

import (
	"context"
	"database/sql"
	"strings"

	entsql "entgo.io/ent/dialect/sql"
)

// snapshotRepo implements SnapshotRepo.
type snapshotRepo struct {
	db *sql.DB
}

func (r *snapshotRepo) ByCode(ctx context.Context, code string) (*StudentSnapshot, error) {
	var snap StudentSnapshot
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		st, err := studentByCode(ctx, tx, strings.TrimSpace(code))
		if err != nil {
			return err
		}
		snap.Student = *st

		if snap.Levels, err = queryLevels(ctx, tx); err != nil {
			return err
		}
		if snap.Lessons, err = queryLessons(ctx, tx); err != nil {
			return err
		}
		if snap.Rows, err = queryProgress(ctx, tx, entsql.EQ("student_id", st.ID)); err != nil {
			return err
		}
		if snap.Exams, err = examsForStudent(ctx, tx, st.ID); err != nil {
			return err
		}
		snap.Notes, err = notesForStudent(ctx, tx, st.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
