package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Exam is one scored exam result.
type Exam struct {
	ent.Schema
}

func (Exam) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "exams"}}
}

func (Exam) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, StudentRefMixin{}}
}

func (Exam) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Int("score"),
		field.Int("max_score").
			Positive(),
		field.String("exam_date").
			Comment("Calendar date, YYYY-MM-DD"),
	}
}

// TeacherNote is a free-text note shown to parents.
type TeacherNote struct {
	ent.Schema
}

func (TeacherNote) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "teacher_notes"}}
}

func (TeacherNote) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, StudentRefMixin{}}
}

func (TeacherNote) Fields() []ent.Field {
	return []ent.Field{
		field.String("note_text").
			NotEmpty(),
		field.String("teacher_name"),
		field.String("created_at").
			Immutable(),
	}
}
