// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/customer"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/invoice"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/supplier"
	"github.com/google/uuid"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber string `json:"invoice_number,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate *string `json:"invoice_date,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal *float64 `json:"subtotal,omitempty"`
	// Discount holds the value of the "discount" field.
	Discount *float64 `json:"discount,omitempty"`
	// TaxRate holds the value of the "tax_rate" field.
	TaxRate *float64 `json:"tax_rate,omitempty"`
	// TotalTax holds the value of the "total_tax" field.
	TotalTax *float64 `json:"total_tax,omitempty"`
	// BalanceDue holds the value of the "balance_due" field.
	BalanceDue *float64 `json:"balance_due,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount *float64 `json:"total_amount,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency *string `json:"currency,omitempty"`
	// PaymentTerms holds the value of the "payment_terms" field.
	PaymentTerms *string `json:"payment_terms,omitempty"`
	// BankName holds the value of the "bank_name" field.
	BankName *string `json:"bank_name,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch *string `json:"branch,omitempty"`
	// AccountNumber holds the value of the "account_number" field.
	AccountNumber *string `json:"account_number,omitempty"`
	// PaymentInstructions holds the value of the "payment_instructions" field.
	PaymentInstructions *string `json:"payment_instructions,omitempty"`
	// SourceFile holds the value of the "source_file" field.
	SourceFile *string `json:"source_file,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges             InvoiceEdges `json:"edges"`
	customer_invoices *uuid.UUID
	supplier_invoices *uuid.UUID
	selectValues      sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Supplier holds the value of the supplier edge.
	Supplier *Supplier `json:"supplier,omitempty"`
	// Customer holds the value of the customer edge.
	Customer *Customer `json:"customer,omitempty"`
	// Items holds the value of the items edge.
	Items []*InvoiceItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SupplierOrErr returns the Supplier value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) SupplierOrErr() (*Supplier, error) {
	if e.Supplier != nil {
		return e.Supplier, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: supplier.Label}
	}
	return nil, &NotLoadedError{edge: "supplier"}
}

// CustomerOrErr returns the Customer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) CustomerOrErr() (*Customer, error) {
	if e.Customer != nil {
		return e.Customer, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: customer.Label}
	}
	return nil, &NotLoadedError{edge: "customer"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) ItemsOrErr() ([]*InvoiceItem, error) {
	if e.loadedTypes[2] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldSubtotal, invoice.FieldDiscount, invoice.FieldTaxRate, invoice.FieldTotalTax, invoice.FieldBalanceDue, invoice.FieldTotalAmount:
			values[i] = new(sql.NullFloat64)
		case invoice.FieldInvoiceNumber, invoice.FieldInvoiceDate, invoice.FieldStatus, invoice.FieldCurrency, invoice.FieldPaymentTerms, invoice.FieldBankName, invoice.FieldBranch, invoice.FieldAccountNumber, invoice.FieldPaymentInstructions, invoice.FieldSourceFile:
			values[i] = new(sql.NullString)
		case invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID:
			values[i] = new(uuid.UUID)
		case invoice.ForeignKeys[0]: // customer_invoices
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case invoice.ForeignKeys[1]: // supplier_invoices
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = value.String
			}
		case invoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(string)
				*_m.InvoiceDate = value.String
			}
		case invoice.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case invoice.FieldSubtotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = new(float64)
				*_m.Subtotal = value.Float64
			}
		case invoice.FieldDiscount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discount", values[i])
			} else if value.Valid {
				_m.Discount = new(float64)
				*_m.Discount = value.Float64
			}
		case invoice.FieldTaxRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tax_rate", values[i])
			} else if value.Valid {
				_m.TaxRate = new(float64)
				*_m.TaxRate = value.Float64
			}
		case invoice.FieldTotalTax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tax", values[i])
			} else if value.Valid {
				_m.TotalTax = new(float64)
				*_m.TotalTax = value.Float64
			}
		case invoice.FieldBalanceDue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field balance_due", values[i])
			} else if value.Valid {
				_m.BalanceDue = new(float64)
				*_m.BalanceDue = value.Float64
			}
		case invoice.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(float64)
				*_m.TotalAmount = value.Float64
			}
		case invoice.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = new(string)
				*_m.Currency = value.String
			}
		case invoice.FieldPaymentTerms:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_terms", values[i])
			} else if value.Valid {
				_m.PaymentTerms = new(string)
				*_m.PaymentTerms = value.String
			}
		case invoice.FieldBankName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_name", values[i])
			} else if value.Valid {
				_m.BankName = new(string)
				*_m.BankName = value.String
			}
		case invoice.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = new(string)
				*_m.Branch = value.String
			}
		case invoice.FieldAccountNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_number", values[i])
			} else if value.Valid {
				_m.AccountNumber = new(string)
				*_m.AccountNumber = value.String
			}
		case invoice.FieldPaymentInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_instructions", values[i])
			} else if value.Valid {
				_m.PaymentInstructions = new(string)
				*_m.PaymentInstructions = value.String
			}
		case invoice.FieldSourceFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file", values[i])
			} else if value.Valid {
				_m.SourceFile = new(string)
				*_m.SourceFile = value.String
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case invoice.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field customer_invoices", values[i])
			} else if value.Valid {
				_m.customer_invoices = new(uuid.UUID)
				*_m.customer_invoices = *value.S.(*uuid.UUID)
			}
		case invoice.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_invoices", values[i])
			} else if value.Valid {
				_m.supplier_invoices = new(uuid.UUID)
				*_m.supplier_invoices = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySupplier queries the "supplier" edge of the Invoice entity.
func (_m *Invoice) QuerySupplier() *SupplierQuery {
	return NewInvoiceClient(_m.config).QuerySupplier(_m)
}

// QueryCustomer queries the "customer" edge of the Invoice entity.
func (_m *Invoice) QueryCustomer() *CustomerQuery {
	return NewInvoiceClient(_m.config).QueryCustomer(_m)
}

// QueryItems queries the "items" edge of the Invoice entity.
func (_m *Invoice) QueryItems() *InvoiceItemQuery {
	return NewInvoiceClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("invoice_number=")
	builder.WriteString(_m.InvoiceNumber)
	builder.WriteString(", ")
	if v := _m.InvoiceDate; v != nil {
		builder.WriteString("invoice_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Subtotal; v != nil {
		builder.WriteString("subtotal=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Discount; v != nil {
		builder.WriteString("discount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TaxRate; v != nil {
		builder.WriteString("tax_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalTax; v != nil {
		builder.WriteString("total_tax=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BalanceDue; v != nil {
		builder.WriteString("balance_due=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalAmount; v != nil {
		builder.WriteString("total_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Currency; v != nil {
		builder.WriteString("currency=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentTerms; v != nil {
		builder.WriteString("payment_terms=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BankName; v != nil {
		builder.WriteString("bank_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Branch; v != nil {
		builder.WriteString("branch=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AccountNumber; v != nil {
		builder.WriteString("account_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentInstructions; v != nil {
		builder.WriteString("payment_instructions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourceFile; v != nil {
		builder.WriteString("source_file=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
