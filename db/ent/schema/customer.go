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

type Customer struct{ ent.Schema }

func (Customer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "customers"},
	}
}

func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("billing_address").Optional().Nillable(),
		field.String("shipping_address").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Customer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("invoices", Invoice.Type),
	}
}

func (Customer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
