package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentProgress is a student's status for one lesson. The level is
// recorded on the row and kept in step with the lesson on every write.
type StudentProgress struct {
	ent.Schema
}

func (StudentProgress) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "student_progress"}}
}

func (StudentProgress) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}, StudentRefMixin{}}
}

func (StudentProgress) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("seq").
			Unique().
			Immutable().
			Comment("Insertion order; progress is always read in this order"),
		field.String("lesson_id").
			NotEmpty(),
		field.String("level_id").
			NotEmpty().
			Comment("Level the row counts towards"),
		field.Enum("status").
			Values("locked", "in_progress", "completed"),
		field.String("updated_at").
			Comment("RFC 3339 timestamp of the last write"),
	}
}

func (StudentProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "lesson_id").Unique(),
		index.Fields("student_id", "seq"),
	}
}
