// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/customer"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/invoice"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/invoiceitem"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/supplier"
	"github.com/google/uuid"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *InvoiceCreate) SetInvoiceNumber(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *InvoiceCreate) SetInvoiceDate(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceDate(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvoiceCreate) SetStatus(v string) *InvoiceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableStatus(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *InvoiceCreate) SetSubtotal(v float64) *InvoiceCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSubtotal(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetDiscount sets the "discount" field.
func (_c *InvoiceCreate) SetDiscount(v float64) *InvoiceCreate {
	_c.mutation.SetDiscount(v)
	return _c
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDiscount(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetDiscount(*v)
	}
	return _c
}

// SetTaxRate sets the "tax_rate" field.
func (_c *InvoiceCreate) SetTaxRate(v float64) *InvoiceCreate {
	_c.mutation.SetTaxRate(v)
	return _c
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTaxRate(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTaxRate(*v)
	}
	return _c
}

// SetTotalTax sets the "total_tax" field.
func (_c *InvoiceCreate) SetTotalTax(v float64) *InvoiceCreate {
	_c.mutation.SetTotalTax(v)
	return _c
}

// SetNillableTotalTax sets the "total_tax" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTotalTax(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTotalTax(*v)
	}
	return _c
}

// SetBalanceDue sets the "balance_due" field.
func (_c *InvoiceCreate) SetBalanceDue(v float64) *InvoiceCreate {
	_c.mutation.SetBalanceDue(v)
	return _c
}

// SetNillableBalanceDue sets the "balance_due" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableBalanceDue(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetBalanceDue(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *InvoiceCreate) SetTotalAmount(v float64) *InvoiceCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTotalAmount(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *InvoiceCreate) SetCurrency(v string) *InvoiceCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCurrency(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetPaymentTerms sets the "payment_terms" field.
func (_c *InvoiceCreate) SetPaymentTerms(v string) *InvoiceCreate {
	_c.mutation.SetPaymentTerms(v)
	return _c
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePaymentTerms(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPaymentTerms(*v)
	}
	return _c
}

// SetBankName sets the "bank_name" field.
func (_c *InvoiceCreate) SetBankName(v string) *InvoiceCreate {
	_c.mutation.SetBankName(v)
	return _c
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableBankName(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetBankName(*v)
	}
	return _c
}

// SetBranch sets the "branch" field.
func (_c *InvoiceCreate) SetBranch(v string) *InvoiceCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableBranch(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetBranch(*v)
	}
	return _c
}

// SetAccountNumber sets the "account_number" field.
func (_c *InvoiceCreate) SetAccountNumber(v string) *InvoiceCreate {
	_c.mutation.SetAccountNumber(v)
	return _c
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableAccountNumber(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetAccountNumber(*v)
	}
	return _c
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (_c *InvoiceCreate) SetPaymentInstructions(v string) *InvoiceCreate {
	_c.mutation.SetPaymentInstructions(v)
	return _c
}

// SetNillablePaymentInstructions sets the "payment_instructions" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePaymentInstructions(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPaymentInstructions(*v)
	}
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *InvoiceCreate) SetSourceFile(v string) *InvoiceCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSourceFile(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSourceFile(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSupplierID sets the "supplier" edge to the Supplier entity by ID.
func (_c *InvoiceCreate) SetSupplierID(id uuid.UUID) *InvoiceCreate {
	_c.mutation.SetSupplierID(id)
	return _c
}

// SetNillableSupplierID sets the "supplier" edge to the Supplier entity by ID if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSupplierID(id *uuid.UUID) *InvoiceCreate {
	if id != nil {
		_c = _c.SetSupplierID(*id)
	}
	return _c
}

// SetSupplier sets the "supplier" edge to the Supplier entity.
func (_c *InvoiceCreate) SetSupplier(v *Supplier) *InvoiceCreate {
	return _c.SetSupplierID(v.ID)
}

// SetCustomerID sets the "customer" edge to the Customer entity by ID.
func (_c *InvoiceCreate) SetCustomerID(id uuid.UUID) *InvoiceCreate {
	_c.mutation.SetCustomerID(id)
	return _c
}

// SetNillableCustomerID sets the "customer" edge to the Customer entity by ID if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCustomerID(id *uuid.UUID) *InvoiceCreate {
	if id != nil {
		_c = _c.SetCustomerID(*id)
	}
	return _c
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_c *InvoiceCreate) SetCustomer(v *Customer) *InvoiceCreate {
	return _c.SetCustomerID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_c *InvoiceCreate) AddItemIDs(ids ...int) *InvoiceCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_c *InvoiceCreate) AddItems(v ...*InvoiceItem) *InvoiceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := invoice.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "Invoice.invoice_number"`)}
	}
	if v, ok := _c.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Invoice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeString, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = &value
	}
	if value, ok := _c.mutation.Discount(); ok {
		_spec.SetField(invoice.FieldDiscount, field.TypeFloat64, value)
		_node.Discount = &value
	}
	if value, ok := _c.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeFloat64, value)
		_node.TaxRate = &value
	}
	if value, ok := _c.mutation.TotalTax(); ok {
		_spec.SetField(invoice.FieldTotalTax, field.TypeFloat64, value)
		_node.TotalTax = &value
	}
	if value, ok := _c.mutation.BalanceDue(); ok {
		_spec.SetField(invoice.FieldBalanceDue, field.TypeFloat64, value)
		_node.BalanceDue = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
		_node.Currency = &value
	}
	if value, ok := _c.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
		_node.PaymentTerms = &value
	}
	if value, ok := _c.mutation.BankName(); ok {
		_spec.SetField(invoice.FieldBankName, field.TypeString, value)
		_node.BankName = &value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(invoice.FieldBranch, field.TypeString, value)
		_node.Branch = &value
	}
	if value, ok := _c.mutation.AccountNumber(); ok {
		_spec.SetField(invoice.FieldAccountNumber, field.TypeString, value)
		_node.AccountNumber = &value
	}
	if value, ok := _c.mutation.PaymentInstructions(); ok {
		_spec.SetField(invoice.FieldPaymentInstructions, field.TypeString, value)
		_node.PaymentInstructions = &value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(invoice.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SupplierIDs(); len(nodes) > 0 {
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
		_node.supplier_invoices = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_node.customer_invoices = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
