package progress

import "github.com/abhisek/levelup/internal/curriculum"

// Row is a persisted progress row before it is joined with reference data.
type Row struct {
	ID        string
	StudentID string
	LessonID  string
	LevelID   string
	Status    string
}

// Membership decides which level a progress row counts towards.
type Membership int

const (
	// MembershipStored trusts the level ID written on the row.
	MembershipStored Membership = iota

	// MembershipLesson follows the row's lesson to the lesson's current
	// level, falling back to the stored level for orphaned lessons.
	MembershipLesson
)

// Drift describes a row whose stored level differs from its lesson's current
// level, typically after the lesson was moved.
type Drift struct {
	RowID         string
	StudentID     string
	LessonID      string
	StoredLevelID string
	LessonLevelID string
}

// Join turns rows into engine records using the catalog for level and lesson
// details. Input order is preserved. Rows that reference deleted levels get
// LevelNumber 0, rows that reference deleted lessons keep an empty name, and
// unknown statuses read as locked.
func Join(cat *curriculum.Catalog, rows []Row, m Membership) ([]Record, []Drift) {
	records := make([]Record, 0, len(rows))
	var drift []Drift

	for _, row := range rows {
		status, _ := ParseStatus(row.Status)
		rec := Record{
			RowID:     row.ID,
			StudentID: row.StudentID,
			LessonID:  row.LessonID,
			LevelID:   row.LevelID,
			Status:    status,
		}

		lesson, hasLesson := cat.Lesson(row.LessonID)
		if hasLesson {
			rec.LessonNumber = lesson.Number
			rec.LessonName = lesson.Name
			if lesson.LevelID != row.LevelID {
				drift = append(drift, Drift{
					RowID:         row.ID,
					StudentID:     row.StudentID,
					LessonID:      row.LessonID,
					StoredLevelID: row.LevelID,
					LessonLevelID: lesson.LevelID,
				})
				if m == MembershipLesson {
					rec.LevelID = lesson.LevelID
				}
			}
		}

		if lvl, ok := cat.Level(rec.LevelID); ok {
			rec.LevelNumber = lvl.Number
		}
		records = append(records, rec)
	}
	return records, drift
}
