package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Student is a learner. Parents look a student up by code.
type Student struct {
	ent.Schema
}

func (Student) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "students"}}
}

func (Student) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}}
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("code").
			NotEmpty().
			Unique().
			Comment("Sign-in code given to parents"),
		field.String("created_at").
			Immutable().
			Comment("RFC 3339 timestamp"),
	}
}
