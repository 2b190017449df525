// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "billing_address", Type: field.TypeString, Nullable: true},
		{Name: "shipping_address", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customer_name",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[1]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString},
		{Name: "invoice_date", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "UNPAID"},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "discount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "tax_rate", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(6,3)"}},
		{Name: "total_tax", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "balance_due", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency", Type: field.TypeString, Nullable: true},
		{Name: "payment_terms", Type: field.TypeString, Nullable: true},
		{Name: "bank_name", Type: field.TypeString, Nullable: true},
		{Name: "branch", Type: field.TypeString, Nullable: true},
		{Name: "account_number", Type: field.TypeString, Nullable: true},
		{Name: "payment_instructions", Type: field.TypeString, Nullable: true},
		{Name: "source_file", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_invoices", Type: field.TypeUUID, Nullable: true},
		{Name: "supplier_invoices", Type: field.TypeUUID, Nullable: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_customers_invoices",
				Columns:    []*schema.Column{InvoicesColumns[19]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "invoices_suppliers_invoices",
				Columns:    []*schema.Column{InvoicesColumns[20]},
				RefColumns: []*schema.Column{SuppliersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_invoice_number",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[1]},
			},
			{
				Name:    "invoice_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[17]},
			},
		},
	}
	// InvoiceItemsColumns holds the columns for the "invoice_items" table.
	InvoiceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, Default: 1, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "line_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "invoice_items", Type: field.TypeUUID},
	}
	// InvoiceItemsTable holds the schema information for the "invoice_items" table.
	InvoiceItemsTable = &schema.Table{
		Name:       "invoice_items",
		Columns:    InvoiceItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_items_invoices_items",
				Columns:    []*schema.Column{InvoiceItemsColumns[6]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SuppliersColumns holds the columns for the "suppliers" table.
	SuppliersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SuppliersTable holds the schema information for the "suppliers" table.
	SuppliersTable = &schema.Table{
		Name:       "suppliers",
		Columns:    SuppliersColumns,
		PrimaryKey: []*schema.Column{SuppliersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "supplier_name",
				Unique:  false,
				Columns: []*schema.Column{SuppliersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CustomersTable,
		InvoicesTable,
		InvoiceItemsTable,
		SuppliersTable,
	}
)

func init() {
	CustomersTable.Annotation = &entsql.Annotation{
		Table: "customers",
	}
	InvoicesTable.ForeignKeys[0].RefTable = CustomersTable
	InvoicesTable.ForeignKeys[1].RefTable = SuppliersTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceItemsTable.Annotation = &entsql.Annotation{
		Table: "invoice_items",
	}
	SuppliersTable.Annotation = &entsql.Annotation{
		Table: "suppliers",
	}
}
