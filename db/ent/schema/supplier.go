package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Supplier struct{ ent.Schema }

func (Supplier) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "suppliers"},
	}
}

func (Supplier) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("address").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.String("phone").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Supplier) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("invoices", Invoice.Type),
	}
}

func (Supplier) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
