// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/customer"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/invoice"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/invoiceitem"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/predicate"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/supplier"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdate) SetStatus(v string) *InvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdate) AddSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdate) ClearSubtotal() *InvoiceUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetDiscount sets the "discount" field.
func (_u *InvoiceUpdate) SetDiscount(v float64) *InvoiceUpdate {
	_u.mutation.ResetDiscount()
	_u.mutation.SetDiscount(v)
	return _u
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDiscount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetDiscount(*v)
	}
	return _u
}

// AddDiscount adds value to the "discount" field.
func (_u *InvoiceUpdate) AddDiscount(v float64) *InvoiceUpdate {
	_u.mutation.AddDiscount(v)
	return _u
}

// ClearDiscount clears the value of the "discount" field.
func (_u *InvoiceUpdate) ClearDiscount() *InvoiceUpdate {
	_u.mutation.ClearDiscount()
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *InvoiceUpdate) SetTaxRate(v float64) *InvoiceUpdate {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxRate(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *InvoiceUpdate) AddTaxRate(v float64) *InvoiceUpdate {
	_u.mutation.AddTaxRate(v)
	return _u
}

// ClearTaxRate clears the value of the "tax_rate" field.
func (_u *InvoiceUpdate) ClearTaxRate() *InvoiceUpdate {
	_u.mutation.ClearTaxRate()
	return _u
}

// SetTotalTax sets the "total_tax" field.
func (_u *InvoiceUpdate) SetTotalTax(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalTax()
	_u.mutation.SetTotalTax(v)
	return _u
}

// SetNillableTotalTax sets the "total_tax" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalTax(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalTax(*v)
	}
	return _u
}

// AddTotalTax adds value to the "total_tax" field.
func (_u *InvoiceUpdate) AddTotalTax(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalTax(v)
	return _u
}

// ClearTotalTax clears the value of the "total_tax" field.
func (_u *InvoiceUpdate) ClearTotalTax() *InvoiceUpdate {
	_u.mutation.ClearTotalTax()
	return _u
}

// SetBalanceDue sets the "balance_due" field.
func (_u *InvoiceUpdate) SetBalanceDue(v float64) *InvoiceUpdate {
	_u.mutation.ResetBalanceDue()
	_u.mutation.SetBalanceDue(v)
	return _u
}

// SetNillableBalanceDue sets the "balance_due" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBalanceDue(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetBalanceDue(*v)
	}
	return _u
}

// AddBalanceDue adds value to the "balance_due" field.
func (_u *InvoiceUpdate) AddBalanceDue(v float64) *InvoiceUpdate {
	_u.mutation.AddBalanceDue(v)
	return _u
}

// ClearBalanceDue clears the value of the "balance_due" field.
func (_u *InvoiceUpdate) ClearBalanceDue() *InvoiceUpdate {
	_u.mutation.ClearBalanceDue()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdate) SetTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdate) AddTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *InvoiceUpdate) ClearTotalAmount() *InvoiceUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InvoiceUpdate) SetCurrency(v string) *InvoiceUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrency(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *InvoiceUpdate) ClearCurrency() *InvoiceUpdate {
	_u.mutation.ClearCurrency()
	return _u
}

// SetPaymentTerms sets the "payment_terms" field.
func (_u *InvoiceUpdate) SetPaymentTerms(v string) *InvoiceUpdate {
	_u.mutation.SetPaymentTerms(v)
	return _u
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaymentTerms(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPaymentTerms(*v)
	}
	return _u
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (_u *InvoiceUpdate) ClearPaymentTerms() *InvoiceUpdate {
	_u.mutation.ClearPaymentTerms()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *InvoiceUpdate) SetBankName(v string) *InvoiceUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBankName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *InvoiceUpdate) ClearBankName() *InvoiceUpdate {
	_u.mutation.ClearBankName()
	return _u
}

// SetBranch sets the "branch" field.
func (_u *InvoiceUpdate) SetBranch(v string) *InvoiceUpdate {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBranch(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *InvoiceUpdate) ClearBranch() *InvoiceUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *InvoiceUpdate) SetAccountNumber(v string) *InvoiceUpdate {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAccountNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *InvoiceUpdate) ClearAccountNumber() *InvoiceUpdate {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (_u *InvoiceUpdate) SetPaymentInstructions(v string) *InvoiceUpdate {
	_u.mutation.SetPaymentInstructions(v)
	return _u
}

// SetNillablePaymentInstructions sets the "payment_instructions" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaymentInstructions(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPaymentInstructions(*v)
	}
	return _u
}

// ClearPaymentInstructions clears the value of the "payment_instructions" field.
func (_u *InvoiceUpdate) ClearPaymentInstructions() *InvoiceUpdate {
	_u.mutation.ClearPaymentInstructions()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *InvoiceUpdate) SetSourceFile(v string) *InvoiceUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSourceFile(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *InvoiceUpdate) ClearSourceFile() *InvoiceUpdate {
	_u.mutation.ClearSourceFile()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplierID sets the "supplier" edge to the Supplier entity by ID.
func (_u *InvoiceUpdate) SetSupplierID(id uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetSupplierID(id)
	return _u
}

// SetNillableSupplierID sets the "supplier" edge to the Supplier entity by ID if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSupplierID(id *uuid.UUID) *InvoiceUpdate {
	if id != nil {
		_u = _u.SetSupplierID(*id)
	}
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *InvoiceUpdate) SetSupplier(v *Supplier) *InvoiceUpdate {
	return _u.SetSupplierID(v.ID)
}

// SetCustomerID sets the "customer" edge to the Customer entity by ID.
func (_u *InvoiceUpdate) SetCustomerID(id uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetCustomerID(id)
	return _u
}

// SetNillableCustomerID sets the "customer" edge to the Customer entity by ID if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerID(id *uuid.UUID) *InvoiceUpdate {
	if id != nil {
		_u = _u.SetCustomerID(*id)
	}
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *InvoiceUpdate) SetCustomer(v *Customer) *InvoiceUpdate {
	return _u.SetCustomerID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdate) AddItemIDs(ids ...int) *InvoiceUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) AddItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *InvoiceUpdate) ClearSupplier() *InvoiceUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *InvoiceUpdate) ClearCustomer() *InvoiceUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) ClearItems() *InvoiceUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdate) RemoveItemIDs(ids ...int) *InvoiceUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdate) RemoveItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeString, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Discount(); ok {
		_spec.SetField(invoice.FieldDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscount(); ok {
		_spec.AddField(invoice.FieldDiscount, field.TypeFloat64, value)
	}
	if _u.mutation.DiscountCleared() {
		_spec.ClearField(invoice.FieldDiscount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if _u.mutation.TaxRateCleared() {
		_spec.ClearField(invoice.FieldTaxRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalTax(); ok {
		_spec.SetField(invoice.FieldTotalTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalTax(); ok {
		_spec.AddField(invoice.FieldTotalTax, field.TypeFloat64, value)
	}
	if _u.mutation.TotalTaxCleared() {
		_spec.ClearField(invoice.FieldTotalTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BalanceDue(); ok {
		_spec.SetField(invoice.FieldBalanceDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBalanceDue(); ok {
		_spec.AddField(invoice.FieldBalanceDue, field.TypeFloat64, value)
	}
	if _u.mutation.BalanceDueCleared() {
		_spec.ClearField(invoice.FieldBalanceDue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(invoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(invoice.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
	}
	if _u.mutation.PaymentTermsCleared() {
		_spec.ClearField(invoice.FieldPaymentTerms, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(invoice.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(invoice.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(invoice.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(invoice.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(invoice.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(invoice.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentInstructions(); ok {
		_spec.SetField(invoice.FieldPaymentInstructions, field.TypeString, value)
	}
	if _u.mutation.PaymentInstructionsCleared() {
		_spec.ClearField(invoice.FieldPaymentInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(invoice.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(invoice.FieldSourceFile, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.SupplierTable,
			Columns: []string{invoice.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.SupplierTable,
			Columns: []string{invoice.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CustomerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.CustomerTable,
			Columns: []string{invoice.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.CustomerTable,
			Columns: []string{invoice.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdateOne) SetStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdateOne) AddSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdateOne) ClearSubtotal() *InvoiceUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetDiscount sets the "discount" field.
func (_u *InvoiceUpdateOne) SetDiscount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetDiscount()
	_u.mutation.SetDiscount(v)
	return _u
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDiscount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDiscount(*v)
	}
	return _u
}

// AddDiscount adds value to the "discount" field.
func (_u *InvoiceUpdateOne) AddDiscount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddDiscount(v)
	return _u
}

// ClearDiscount clears the value of the "discount" field.
func (_u *InvoiceUpdateOne) ClearDiscount() *InvoiceUpdateOne {
	_u.mutation.ClearDiscount()
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *InvoiceUpdateOne) SetTaxRate(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxRate(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *InvoiceUpdateOne) AddTaxRate(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTaxRate(v)
	return _u
}

// ClearTaxRate clears the value of the "tax_rate" field.
func (_u *InvoiceUpdateOne) ClearTaxRate() *InvoiceUpdateOne {
	_u.mutation.ClearTaxRate()
	return _u
}

// SetTotalTax sets the "total_tax" field.
func (_u *InvoiceUpdateOne) SetTotalTax(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalTax()
	_u.mutation.SetTotalTax(v)
	return _u
}

// SetNillableTotalTax sets the "total_tax" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalTax(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalTax(*v)
	}
	return _u
}

// AddTotalTax adds value to the "total_tax" field.
func (_u *InvoiceUpdateOne) AddTotalTax(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalTax(v)
	return _u
}

// ClearTotalTax clears the value of the "total_tax" field.
func (_u *InvoiceUpdateOne) ClearTotalTax() *InvoiceUpdateOne {
	_u.mutation.ClearTotalTax()
	return _u
}

// SetBalanceDue sets the "balance_due" field.
func (_u *InvoiceUpdateOne) SetBalanceDue(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetBalanceDue()
	_u.mutation.SetBalanceDue(v)
	return _u
}

// SetNillableBalanceDue sets the "balance_due" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBalanceDue(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBalanceDue(*v)
	}
	return _u
}

// AddBalanceDue adds value to the "balance_due" field.
func (_u *InvoiceUpdateOne) AddBalanceDue(v float64) *InvoiceUpdateOne {
	_u.mutation.AddBalanceDue(v)
	return _u
}

// ClearBalanceDue clears the value of the "balance_due" field.
func (_u *InvoiceUpdateOne) ClearBalanceDue() *InvoiceUpdateOne {
	_u.mutation.ClearBalanceDue()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdateOne) SetTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdateOne) AddTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *InvoiceUpdateOne) ClearTotalAmount() *InvoiceUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InvoiceUpdateOne) SetCurrency(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrency(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *InvoiceUpdateOne) ClearCurrency() *InvoiceUpdateOne {
	_u.mutation.ClearCurrency()
	return _u
}

// SetPaymentTerms sets the "payment_terms" field.
func (_u *InvoiceUpdateOne) SetPaymentTerms(v string) *InvoiceUpdateOne {
	_u.mutation.SetPaymentTerms(v)
	return _u
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaymentTerms(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaymentTerms(*v)
	}
	return _u
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (_u *InvoiceUpdateOne) ClearPaymentTerms() *InvoiceUpdateOne {
	_u.mutation.ClearPaymentTerms()
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *InvoiceUpdateOne) SetBankName(v string) *InvoiceUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBankName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// ClearBankName clears the value of the "bank_name" field.
func (_u *InvoiceUpdateOne) ClearBankName() *InvoiceUpdateOne {
	_u.mutation.ClearBankName()
	return _u
}

// SetBranch sets the "branch" field.
func (_u *InvoiceUpdateOne) SetBranch(v string) *InvoiceUpdateOne {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBranch(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *InvoiceUpdateOne) ClearBranch() *InvoiceUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *InvoiceUpdateOne) SetAccountNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAccountNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *InvoiceUpdateOne) ClearAccountNumber() *InvoiceUpdateOne {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (_u *InvoiceUpdateOne) SetPaymentInstructions(v string) *InvoiceUpdateOne {
	_u.mutation.SetPaymentInstructions(v)
	return _u
}

// SetNillablePaymentInstructions sets the "payment_instructions" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaymentInstructions(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaymentInstructions(*v)
	}
	return _u
}

// ClearPaymentInstructions clears the value of the "payment_instructions" field.
func (_u *InvoiceUpdateOne) ClearPaymentInstructions() *InvoiceUpdateOne {
	_u.mutation.ClearPaymentInstructions()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *InvoiceUpdateOne) SetSourceFile(v string) *InvoiceUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSourceFile(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *InvoiceUpdateOne) ClearSourceFile() *InvoiceUpdateOne {
	_u.mutation.ClearSourceFile()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupplierID sets the "supplier" edge to the Supplier entity by ID.
func (_u *InvoiceUpdateOne) SetSupplierID(id uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetSupplierID(id)
	return _u
}

// SetNillableSupplierID sets the "supplier" edge to the Supplier entity by ID if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSupplierID(id *uuid.UUID) *InvoiceUpdateOne {
	if id != nil {
		_u = _u.SetSupplierID(*id)
	}
	return _u
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_u *InvoiceUpdateOne) SetSupplier(v *Supplier) *InvoiceUpdateOne {
	return _u.SetSupplierID(v.ID)
}

// SetCustomerID sets the "customer" edge to the Customer entity by ID.
func (_u *InvoiceUpdateOne) SetCustomerID(id uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetCustomerID(id)
	return _u
}

// SetNillableCustomerID sets the "customer" edge to the Customer entity by ID if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerID(id *uuid.UUID) *InvoiceUpdateOne {
	if id != nil {
		_u = _u.SetCustomerID(*id)
	}
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *InvoiceUpdateOne) SetCustomer(v *Customer) *InvoiceUpdateOne {
	return _u.SetCustomerID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdateOne) AddItemIDs(ids ...int) *InvoiceUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) AddItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearSupplier clears the "supplier" edge to the Supplier entity.
func (_u *InvoiceUpdateOne) ClearSupplier() *InvoiceUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *InvoiceUpdateOne) ClearCustomer() *InvoiceUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) ClearItems() *InvoiceUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveItemIDs(ids ...int) *InvoiceUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdateOne) RemoveItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeString, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Discount(); ok {
		_spec.SetField(invoice.FieldDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscount(); ok {
		_spec.AddField(invoice.FieldDiscount, field.TypeFloat64, value)
	}
	if _u.mutation.DiscountCleared() {
		_spec.ClearField(invoice.FieldDiscount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if _u.mutation.TaxRateCleared() {
		_spec.ClearField(invoice.FieldTaxRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalTax(); ok {
		_spec.SetField(invoice.FieldTotalTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalTax(); ok {
		_spec.AddField(invoice.FieldTotalTax, field.TypeFloat64, value)
	}
	if _u.mutation.TotalTaxCleared() {
		_spec.ClearField(invoice.FieldTotalTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BalanceDue(); ok {
		_spec.SetField(invoice.FieldBalanceDue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBalanceDue(); ok {
		_spec.AddField(invoice.FieldBalanceDue, field.TypeFloat64, value)
	}
	if _u.mutation.BalanceDueCleared() {
		_spec.ClearField(invoice.FieldBalanceDue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(invoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(invoice.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
	}
	if _u.mutation.PaymentTermsCleared() {
		_spec.ClearField(invoice.FieldPaymentTerms, field.TypeString)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(invoice.FieldBankName, field.TypeString, value)
	}
	if _u.mutation.BankNameCleared() {
		_spec.ClearField(invoice.FieldBankName, field.TypeString)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(invoice.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(invoice.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(invoice.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(invoice.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentInstructions(); ok {
		_spec.SetField(invoice.FieldPaymentInstructions, field.TypeString, value)
	}
	if _u.mutation.PaymentInstructionsCleared() {
		_spec.ClearField(invoice.FieldPaymentInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(invoice.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(invoice.FieldSourceFile, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.SupplierTable,
			Columns: []string{invoice.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.SupplierTable,
			Columns: []string{invoice.SupplierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CustomerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.CustomerTable,
			Columns: []string{invoice.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.CustomerTable,
			Columns: []string{invoice.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
