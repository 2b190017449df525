// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/db/ent/schema"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/customer"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/invoice"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/invoiceitem"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/supplier"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[1].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerFields[4].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerFields[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[1].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = invoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceFields[3].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoice.StatusValidator = invoiceDescStatus.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[17].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[18].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoiceitemFields := schema.InvoiceItem{}.Fields()
	_ = invoiceitemFields
	// invoiceitemDescDescription is the schema descriptor for description field.
	invoiceitemDescDescription := invoiceitemFields[0].Descriptor()
	// invoiceitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoiceitem.DescriptionValidator = invoiceitemDescDescription.Validators[0].(func(string) error)
	// invoiceitemDescQuantity is the schema descriptor for quantity field.
	invoiceitemDescQuantity := invoiceitemFields[1].Descriptor()
	// invoiceitem.DefaultQuantity holds the default value on creation for the quantity field.
	invoiceitem.DefaultQuantity = invoiceitemDescQuantity.Default.(float64)
	// invoiceitemDescCreatedAt is the schema descriptor for created_at field.
	invoiceitemDescCreatedAt := invoiceitemFields[4].Descriptor()
	// invoiceitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoiceitem.DefaultCreatedAt = invoiceitemDescCreatedAt.Default.(func() time.Time)
	supplierFields := schema.Supplier{}.Fields()
	_ = supplierFields
	// supplierDescName is the schema descriptor for name field.
	supplierDescName := supplierFields[1].Descriptor()
	// supplier.NameValidator is a validator for the "name" field. It is called by the builders before save.
	supplier.NameValidator = supplierDescName.Validators[0].(func(string) error)
	// supplierDescCreatedAt is the schema descriptor for created_at field.
	supplierDescCreatedAt := supplierFields[5].Descriptor()
	// supplier.DefaultCreatedAt holds the default value on creation for the created_at field.
	supplier.DefaultCreatedAt = supplierDescCreatedAt.Default.(func() time.Time)
	// supplierDescID is the schema descriptor for id field.
	supplierDescID := supplierFields[0].Descriptor()
	// supplier.DefaultID holds the default value on creation for the id field.
	supplier.DefaultID = supplierDescID.Default.(func() uuid.UUID)
}
