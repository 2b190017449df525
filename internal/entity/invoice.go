package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents an invoice header for data transfer between layers.
type Invoice struct {
	ID                  uuid.UUID  `json:"id"`
	InvoiceNumber       string     `json:"invoice_number"`
	InvoiceDate         *string    `json:"invoice_date,omitempty"`
	Status              string     `json:"status"`
	Subtotal            *float64   `json:"subtotal,omitempty"`
	Discount            *float64   `json:"discount,omitempty"`
	TaxRate             *float64   `json:"tax_rate,omitempty"`
	TotalTax            *float64   `json:"total_tax,omitempty"`
	BalanceDue          *float64   `json:"balance_due,omitempty"`
	TotalAmount         *float64   `json:"total_amount,omitempty"`
	Currency            *string    `json:"currency,omitempty"`
	PaymentTerms        *string    `json:"payment_terms,omitempty"`
	BankName            *string    `json:"bank_name,omitempty"`
	Branch              *string    `json:"branch,omitempty"`
	AccountNumber       *string    `json:"account_number,omitempty"`
	PaymentInstructions *string    `json:"payment_instructions,omitempty"`
	SourceFile          *string    `json:"source_file,omitempty"`
	SupplierID          *uuid.UUID `json:"supplier_id,omitempty"`
	CustomerID          *uuid.UUID `json:"customer_id,omitempty"`
	SupplierName        string     `json:"supplier_name,omitempty"`
	CustomerName        string     `json:"customer_name,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
