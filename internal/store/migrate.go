package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	entdriver "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table definitions mirror ent/schema. student_progress.seq is the insertion
// order; progress is always read ORDER BY seq so the engine sees a stable
// source order.
var (
	// studentsColumns holds the columns for the "students" table.
	studentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeString},
	}
	// studentsTable holds the schema information for the "students" table.
	studentsTable = &schema.Table{
		Name:       "students",
		Columns:    studentsColumns,
		PrimaryKey: []*schema.Column{studentsColumns[0]},
	}

	// levelsColumns holds the columns for the "levels" table.
	levelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "number", Type: field.TypeInt, Unique: true},
		{Name: "name", Type: field.TypeString},
	}
	// levelsTable holds the schema information for the "levels" table.
	levelsTable = &schema.Table{
		Name:       "levels",
		Columns:    levelsColumns,
		PrimaryKey: []*schema.Column{levelsColumns[0]},
		Annotation: &entsql.Annotation{
			Checks: map[string]string{"level_number_positive": "number >= 1"},
		},
	}

	// lessonsColumns holds the columns for the "lessons" table.
	lessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "level_id", Type: field.TypeString},
		{Name: "number", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
	}
	// lessonsTable holds the schema information for the "lessons" table.
	lessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    lessonsColumns,
		PrimaryKey: []*schema.Column{lessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_levels_lessons",
				Columns:    []*schema.Column{lessonsColumns[1]},
				RefColumns: []*schema.Column{levelsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_level_id_number",
				Unique:  true,
				Columns: []*schema.Column{lessonsColumns[1], lessonsColumns[2]},
			},
		},
		Annotation: &entsql.Annotation{
			Checks: map[string]string{"lesson_number_positive": "number >= 1"},
		},
	}

	// studentProgressColumns holds the columns for the "student_progress" table.
	studentProgressColumns = []*schema.Column{
		{Name: "seq", Type: field.TypeInt64, Increment: true},
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "level_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"locked", "in_progress", "completed"}},
		{Name: "updated_at", Type: field.TypeString},
	}
	// studentProgressTable holds the schema information for the "student_progress" table.
	studentProgressTable = &schema.Table{
		Name:       "student_progress",
		Columns:    studentProgressColumns,
		PrimaryKey: []*schema.Column{studentProgressColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "student_progress_students_progress",
				Columns:    []*schema.Column{studentProgressColumns[2]},
				RefColumns: []*schema.Column{studentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "student_progress_lessons_progress",
				Columns:    []*schema.Column{studentProgressColumns[3]},
				RefColumns: []*schema.Column{lessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "student_progress_levels_progress",
				Columns:    []*schema.Column{studentProgressColumns[4]},
				RefColumns: []*schema.Column{levelsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "studentprogress_student_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{studentProgressColumns[2], studentProgressColumns[3]},
			},
			{
				Name:    "studentprogress_student_id_seq",
				Unique:  false,
				Columns: []*schema.Column{studentProgressColumns[2], studentProgressColumns[0]},
			},
		},
		Annotation: &entsql.Annotation{
			Checks: map[string]string{
				"progress_status_valid": "status IN ('locked', 'in_progress', 'completed')",
			},
		},
	}

	// examsColumns holds the columns for the "exams" table.
	examsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "max_score", Type: field.TypeInt},
		{Name: "exam_date", Type: field.TypeString},
	}
	// examsTable holds the schema information for the "exams" table.
	examsTable = &schema.Table{
		Name:       "exams",
		Columns:    examsColumns,
		PrimaryKey: []*schema.Column{examsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "exams_students_exams",
				Columns:    []*schema.Column{examsColumns[1]},
				RefColumns: []*schema.Column{studentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Annotation: &entsql.Annotation{
			Checks: map[string]string{"exam_max_score_positive": "max_score > 0"},
		},
	}

	// teacherNotesColumns holds the columns for the "teacher_notes" table.
	teacherNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "note_text", Type: field.TypeString},
		{Name: "teacher_name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeString},
	}
	// teacherNotesTable holds the schema information for the "teacher_notes" table.
	teacherNotesTable = &schema.Table{
		Name:       "teacher_notes",
		Columns:    teacherNotesColumns,
		PrimaryKey: []*schema.Column{teacherNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "teacher_notes_students_notes",
				Columns:    []*schema.Column{teacherNotesColumns[1]},
				RefColumns: []*schema.Column{studentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}

	// tables holds all the tables in the schema, referenced tables first.
	tables = []*schema.Table{
		studentsTable,
		levelsTable,
		lessonsTable,
		studentProgressTable,
		examsTable,
		teacherNotesTable,
	}
)

func init() {
	lessonsTable.ForeignKeys[0].RefTable = levelsTable
	studentProgressTable.ForeignKeys[0].RefTable = studentsTable
	studentProgressTable.ForeignKeys[1].RefTable = lessonsTable
	studentProgressTable.ForeignKeys[2].RefTable = levelsTable
	examsTable.ForeignKeys[0].RefTable = studentsTable
	teacherNotesTable.ForeignKeys[0].RefTable = studentsTable
}

// migrate creates missing tables, columns and indexes. Columns and indexes
// are never dropped.
func migrate(ctx context.Context, db *sql.DB) error {
	drv := entdriver.OpenDB(dialect.SQLite, db)
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("init migration: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
