package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// IDMixin gives an entity a UUID string primary key.
type IDMixin struct {
	mixin.Schema
}

func (IDMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID assigned on insert"),
	}
}

// StudentRefMixin adds the owning student to per-student records.
type StudentRefMixin struct {
	mixin.Schema
}

func (StudentRefMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Owning student; rows are deleted with the student"),
	}
}
