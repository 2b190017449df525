package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type InvoiceItem struct{ ent.Schema }

func (InvoiceItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_items"},
	}
}

func (InvoiceItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("description").NotEmpty(),
		field.Float("quantity").
			Default(1).
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,2)"}),
		field.Float("unit_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("line_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (InvoiceItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE invoice (FK: invoice_items.invoice_id)
		edge.From("invoice", Invoice.Type).
			Ref("items").
			Required().
			Unique(),
	}
}
