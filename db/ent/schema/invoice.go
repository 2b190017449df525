package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/constants"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("invoice_number").NotEmpty(),
		field.String("invoice_date").Optional().Nillable(),
		field.String("status").
			Default(string(constants.StatusUnpaid)).
			Validate(utils.EnumValidator(constants.InvoiceStatuses...)),
		field.Float("subtotal").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("discount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("tax_rate").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(6,3)"}),
		field.Float("total_tax").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("balance_due").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("total_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("currency").Optional().Nillable(),
		field.String("payment_terms").Optional().Nillable(),
		field.String("bank_name").Optional().Nillable(),
		field.String("branch").Optional().Nillable(),
		field.String("account_number").Optional().Nillable(),
		field.String("payment_instructions").Optional().Nillable(),
		field.String("source_file").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY invoices -> ONE supplier (FK: invoices.supplier_id)
		edge.From("supplier", Supplier.Type).
			Ref("invoices").
			Unique(),
		// OPTIONAL: MANY invoices -> ONE customer (FK: invoices.customer_id)
		edge.From("customer", Customer.Type).
			Ref("invoices").
			Unique(),
		// ONE invoice -> MANY line items
		edge.To("items", InvoiceItem.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_number").Unique(),
		index.Fields("created_at"),
	}
}
