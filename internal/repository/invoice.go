package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/invoice"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/common"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/entity"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/parse"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/utils"
)

// CreateInvoiceRequest wraps parameters for persisting an extracted invoice.
type CreateInvoiceRequest struct {
	Fields     parse.InvoiceFields
	SourceFile string
	SupplierID *uuid.UUID
	CustomerID *uuid.UUID
}

type InvoiceRepository interface {
	UpsertFromFields(ctx context.Context, request *CreateInvoiceRequest) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Invoice, error)
	DeleteByNumber(ctx context.Context, number string) error
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

// dec converts an extracted money string to a nillable float. Extraction
// output keeps thousands separators, so strip them before parsing.
func dec(s string) *float64 {
	if s == "" {
		return nil
	}
	d, err := parse.ParseAmount(s)
	if err != nil {
		return nil
	}
	v, _ := d.Float64()
	return &v
}

func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (r *invoiceRepository) UpsertFromFields(ctx context.Context, request *CreateInvoiceRequest) (*entity.Invoice, error) {
	f := request.Fields

	existing, err := r.client.Invoice.Query().
		Where(invoice.InvoiceNumber(f.InvoiceNumber)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to look up invoice", "invoice_number", f.InvoiceNumber, "error", err)
		return nil, common.WrapError(err, "database error")
	}

	if existing != nil {
		builder := r.client.Invoice.UpdateOneID(existing.ID).
			SetStatus(f.InvoiceStatus).
			SetNillableInvoiceDate(strOrNil(f.InvoiceDate)).
			SetNillableSubtotal(dec(f.Subtotal)).
			SetNillableDiscount(dec(f.Discount)).
			SetNillableTaxRate(dec(f.TaxRate)).
			SetNillableTotalTax(dec(f.TotalTax)).
			SetNillableBalanceDue(dec(f.BalanceDue)).
			SetNillableTotalAmount(dec(f.TotalAmount)).
			SetNillableCurrency(strOrNil(f.Currency)).
			SetNillablePaymentTerms(strOrNil(f.PaymentTerms)).
			SetNillableBankName(strOrNil(f.BankName)).
			SetNillableBranch(strOrNil(f.Branch)).
			SetNillableAccountNumber(strOrNil(f.AccountNumber)).
			SetNillablePaymentInstructions(strOrNil(f.PaymentInstructions)).
			SetNillableSourceFile(strOrNil(request.SourceFile))
		if request.SupplierID != nil {
			builder = builder.SetSupplierID(*request.SupplierID)
		}
		if request.CustomerID != nil {
			builder = builder.SetCustomerID(*request.CustomerID)
		}
		inv, err := builder.Save(ctx)
		if err != nil {
			r.logger.Error("failed to update invoice", "invoice_number", f.InvoiceNumber, "error", err)
			return nil, common.WrapError(err, "database error")
		}
		return utils.ToInvoice(inv), nil
	}

	builder := r.client.Invoice.Create().
		SetInvoiceNumber(f.InvoiceNumber).
		SetStatus(f.InvoiceStatus).
		SetNillableInvoiceDate(strOrNil(f.InvoiceDate)).
		SetNillableSubtotal(dec(f.Subtotal)).
		SetNillableDiscount(dec(f.Discount)).
		SetNillableTaxRate(dec(f.TaxRate)).
		SetNillableTotalTax(dec(f.TotalTax)).
		SetNillableBalanceDue(dec(f.BalanceDue)).
		SetNillableTotalAmount(dec(f.TotalAmount)).
		SetNillableCurrency(strOrNil(f.Currency)).
		SetNillablePaymentTerms(strOrNil(f.PaymentTerms)).
		SetNillableBankName(strOrNil(f.BankName)).
		SetNillableBranch(strOrNil(f.Branch)).
		SetNillableAccountNumber(strOrNil(f.AccountNumber)).
		SetNillablePaymentInstructions(strOrNil(f.PaymentInstructions)).
		SetNillableSourceFile(strOrNil(request.SourceFile))
	if request.SupplierID != nil {
		builder = builder.SetSupplierID(*request.SupplierID)
	}
	if request.CustomerID != nil {
		builder = builder.SetCustomerID(*request.CustomerID)
	}

	inv, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice", "invoice_number", f.InvoiceNumber, "error", err)
		return nil, common.WrapError(err, "database error")
	}
	r.logger.Info("created invoice", "invoice_id", inv.ID, "invoice_number", inv.InvoiceNumber)
	return utils.ToInvoice(inv), nil
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	inv, err := r.client.Invoice.Query().
		Where(invoice.InvoiceNumber(number)).
		WithSupplier().
		WithCustomer().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get invoice", "invoice_number", number, "error", err)
		return nil, common.WrapError(err, "database error")
	}
	return utils.ToInvoice(inv), nil
}

func (r *invoiceRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().
		WithSupplier().
		WithCustomer().
		Order(ent.Desc(invoice.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	invs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, common.WrapError(err, "database error")
	}

	result := make([]*entity.Invoice, len(invs))
	for i, inv := range invs {
		result[i] = utils.ToInvoice(inv)
	}
	return result, nil
}

func (r *invoiceRepository) DeleteByNumber(ctx context.Context, number string) error {
	n, err := r.client.Invoice.Delete().
		Where(invoice.InvoiceNumber(number)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete invoice", "invoice_number", number, "error", err)
		return common.WrapError(err, "database error")
	}
	if n == 0 {
		return common.ErrNotFound
	}
	r.logger.Info("deleted invoice", "invoice_number", number)
	return nil
}
