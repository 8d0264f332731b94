package store

import (
	"sort"
	"strings"
	"testing"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"

	entschema "github.com/abhisek/levelup/ent/schema"
)

type entSchema interface {
	Mixin() []ent.Mixin
	Fields() []ent.Field
	Annotations() []schema.Annotation
}

// TestMigrationMatchesEntSchema keeps the migration tables and the ent schema
// definitions describing the same columns.
func TestMigrationMatchesEntSchema(t *testing.T) {
	s := openTestStore(t)

	schemas := []entSchema{
		entschema.Student{},
		entschema.Level{},
		entschema.Lesson{},
		entschema.StudentProgress{},
		entschema.Exam{},
		entschema.TeacherNote{},
	}

	for _, sc := range schemas {
		table := tableName(t, sc)
		t.Run(table, func(t *testing.T) {
			want := schemaColumns(sc)
			got := tableColumns(t, s, table)
			if len(got) != len(want) {
				t.Fatalf("columns = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("columns = %v, want %v", got, want)
					break
				}
			}
		})
	}
}

func tableName(t *testing.T, sc entSchema) string {
	t.Helper()
	for _, a := range sc.Annotations() {
		if ann, ok := a.(entsql.Annotation); ok && ann.Table != "" {
			return ann.Table
		}
	}
	t.Fatalf("%T has no table annotation", sc)
	return ""
}

func schemaColumns(sc entSchema) []string {
	var cols []string
	for _, m := range sc.Mixin() {
		for _, f := range m.Fields() {
			cols = append(cols, f.Descriptor().Name)
		}
	}
	for _, f := range sc.Fields() {
		cols = append(cols, f.Descriptor().Name)
	}
	sort.Strings(cols)
	return cols
}

func tableColumns(t *testing.T, s *Store, table string) []string {
	t.Helper()
	rows, err := s.DB().Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		t.Fatalf("table info %s: %v", table, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("scan column: %v", err)
		}
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}

func TestMigrationEnforcesConstraints(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	stmts := []string{
		`INSERT INTO students (id, name, code, created_at) VALUES ('s1', 'Ada', 'ADA', 'now')`,
		`INSERT INTO levels (id, number, name) VALUES ('l1', 1, 'One')`,
		`INSERT INTO lessons (id, level_id, number, name) VALUES ('k1', 'l1', 1, 'Counting')`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed %q: %v", stmt, err)
		}
	}

	tests := []struct {
		name string
		stmt string
		want string
	}{
		{"level number below one", `INSERT INTO levels (id, number, name) VALUES ('l0', 0, 'Zero')`, "CHECK constraint failed"},
		{"duplicate level number", `INSERT INTO levels (id, number, name) VALUES ('l2', 1, 'Again')`, "UNIQUE constraint failed"},
		{"duplicate lesson number in level", `INSERT INTO lessons (id, level_id, number, name) VALUES ('k2', 'l1', 1, 'Again')`, "UNIQUE constraint failed"},
		{"lesson in unknown level", `INSERT INTO lessons (id, level_id, number, name) VALUES ('k3', 'nope', 2, 'Lost')`, "FOREIGN KEY constraint failed"},
		{"unknown status", `INSERT INTO student_progress (id, student_id, lesson_id, level_id, status, updated_at) VALUES ('p1', 's1', 'k1', 'l1', 'skipped', 'now')`, "CHECK constraint failed"},
		{"exam without max score", `INSERT INTO exams (id, student_id, name, score, max_score, exam_date) VALUES ('e1', 's1', 'Quiz', 0, 0, '2024-01-01')`, "CHECK constraint failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.Exec(tt.stmt)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestProgressSeqAutoIncrements(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	stmts := []string{
		`INSERT INTO students (id, name, code, created_at) VALUES ('s1', 'Ada', 'ADA', 'now')`,
		`INSERT INTO levels (id, number, name) VALUES ('l1', 1, 'One')`,
		`INSERT INTO lessons (id, level_id, number, name) VALUES ('k1', 'l1', 1, 'Counting')`,
		`INSERT INTO lessons (id, level_id, number, name) VALUES ('k2', 'l1', 2, 'Adding')`,
		`INSERT INTO student_progress (id, student_id, lesson_id, level_id, status, updated_at) VALUES ('p1', 's1', 'k1', 'l1', 'completed', 'now')`,
		`INSERT INTO student_progress (id, student_id, lesson_id, level_id, status, updated_at) VALUES ('p2', 's1', 'k2', 'l1', 'locked', 'now')`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}

	var first, second int64
	if err := db.QueryRow(`SELECT seq FROM student_progress WHERE id = 'p1'`).Scan(&first); err != nil {
		t.Fatalf("seq p1: %v", err)
	}
	if err := db.QueryRow(`SELECT seq FROM student_progress WHERE id = 'p2'`).Scan(&second); err != nil {
		t.Fatalf("seq p2: %v", err)
	}
	if second <= first {
		t.Errorf("seq = %d then %d, want increasing", first, second)
	}
}
