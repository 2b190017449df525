package repository

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/invoice"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/invoiceitem"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/common"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/entity"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/parse"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/utils"
)

type InvoiceItemRepository interface {
	// ReplaceForInvoice deletes any existing items for the invoice and
	// inserts the given extracted rows. Returns the number inserted.
	ReplaceForInvoice(ctx context.Context, invoiceID uuid.UUID, items []parse.LineItem) (int, error)
	ListForInvoice(ctx context.Context, invoiceNumber string) ([]*entity.InvoiceItem, error)
}

type invoiceItemRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceItemRepository(client *ent.Client, logger *slog.Logger) InvoiceItemRepository {
	return &invoiceItemRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceItemRepository) ReplaceForInvoice(ctx context.Context, invoiceID uuid.UUID, items []parse.LineItem) (int, error) {
	if _, err := r.client.InvoiceItem.Delete().
		Where(invoiceitem.HasInvoiceWith(invoice.ID(invoiceID))).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear invoice items", "invoice_id", invoiceID, "error", err)
		return 0, common.WrapError(err, "database error")
	}

	if len(items) == 0 {
		return 0, nil
	}

	amount := func(s string) float64 {
		if v := dec(s); v != nil {
			return *v
		}
		return 0
	}

	builders := make([]*ent.InvoiceItemCreate, 0, len(items))
	for _, it := range items {
		qty, err := strconv.ParseFloat(it.Quantity, 64)
		if err != nil || qty < 1 {
			qty = 1
		}
		builders = append(builders, r.client.InvoiceItem.Create().
			SetInvoiceID(invoiceID).
			SetDescription(it.Description).
			SetQuantity(qty).
			SetUnitPrice(amount(it.UnitPrice)).
			SetLineTotal(amount(it.LineTotal)))
	}

	rows, err := r.client.InvoiceItem.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert invoice items", "invoice_id", invoiceID, "error", err)
		return 0, common.WrapError(err, "database error")
	}
	r.logger.Info("inserted invoice items", "invoice_id", invoiceID, "count", len(rows))
	return len(rows), nil
}

func (r *invoiceItemRepository) ListForInvoice(ctx context.Context, invoiceNumber string) ([]*entity.InvoiceItem, error) {
	rows, err := r.client.InvoiceItem.Query().
		Where(invoiceitem.HasInvoiceWith(invoice.InvoiceNumber(invoiceNumber))).
		Order(ent.Asc(invoiceitem.FieldID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoice items", "invoice_number", invoiceNumber, "error", err)
		return nil, common.WrapError(err, "database error")
	}

	result := make([]*entity.InvoiceItem, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoiceItem(row)
	}
	return result, nil
}
