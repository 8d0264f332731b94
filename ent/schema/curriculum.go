package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Level is one stage of the curriculum. Numbers are dense from 1.
type Level struct {
	ent.Schema
}

func (Level) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "levels"}}
}

func (Level) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}}
}

func (Level) Fields() []ent.Field {
	return []ent.Field{
		field.Int("number").
			Positive().
			Unique(),
		field.String("name").
			NotEmpty(),
	}
}

// Lesson belongs to exactly one level at a time.
type Lesson struct {
	ent.Schema
}

func (Lesson) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "lessons"}}
}

func (Lesson) Mixin() []ent.Mixin {
	return []ent.Mixin{IDMixin{}}
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("level_id").
			NotEmpty().
			Comment("Current level; levels with lessons cannot be deleted"),
		field.Int("number").
			Positive(),
		field.String("name").
			NotEmpty(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level_id", "number").Unique(),
	}
}
