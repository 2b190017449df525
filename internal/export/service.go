package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	invoicesRepo repository.InvoiceRepository
	itemsRepo    repository.InvoiceItemRepository
	logger       *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, items repository.InvoiceItemRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoicesRepo: invoices, itemsRepo: items, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) with one sheet of
// invoice headers and one sheet of line items. limit <= 0 exports everything.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	invs, err := s.invoicesRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const invoiceSheet = "Invoices"
	const itemSheet = "Line Items"
	if index, _ := f.GetSheetIndex(invoiceSheet); index == -1 {
		if _, err := f.NewSheet(invoiceSheet); err != nil {
			return nil, err
		}
	}
	if index, _ := f.GetSheetIndex(itemSheet); index == -1 {
		if _, err := f.NewSheet(itemSheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(invoiceSheet)
	f.SetActiveSheet(activeIndex)

	setRow := func(sheet string, row int, values []any) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	setRow(invoiceSheet, 1, []any{
		"Invoice Number",
		"Invoice Date",
		"Status",
		"Supplier",
		"Customer",
		"Subtotal",
		"Total Tax",
		"Total Amount",
		"Currency",
		"Source File",
	})

	money := func(v *float64) any {
		if v == nil {
			return ""
		}
		return *v
	}
	str := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}

	row := 2
	for _, inv := range invs {
		setRow(invoiceSheet, row, []any{
			inv.InvoiceNumber,
			str(inv.InvoiceDate),
			inv.Status,
			inv.SupplierName,
			inv.CustomerName,
			money(inv.Subtotal),
			money(inv.TotalTax),
			money(inv.TotalAmount),
			str(inv.Currency),
			str(inv.SourceFile),
		})
		row++
	}

	setRow(itemSheet, 1, []any{
		"Invoice Number",
		"Description",
		"Quantity",
		"Unit Price",
		"Line Total",
	})

	itemRow := 2
	for _, inv := range invs {
		items, err := s.itemsRepo.ListForInvoice(ctx, inv.InvoiceNumber)
		if err != nil {
			return nil, fmt.Errorf("query items for %s: %w", inv.InvoiceNumber, err)
		}
		for _, it := range items {
			setRow(itemSheet, itemRow, []any{
				inv.InvoiceNumber,
				truncate(it.Description, 140),
				it.Quantity,
				it.UnitPrice,
				it.LineTotal,
			})
			itemRow++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(invoiceSheet, "A", "A", 18) // number
	_ = f.SetColWidth(invoiceSheet, "B", "C", 14) // date, status
	_ = f.SetColWidth(invoiceSheet, "D", "E", 28) // parties
	_ = f.SetColWidth(invoiceSheet, "F", "H", 14) // amounts
	_ = f.SetColWidth(invoiceSheet, "J", "J", 60) // path
	_ = f.SetColWidth(itemSheet, "A", "A", 18)
	_ = f.SetColWidth(itemSheet, "B", "B", 48)
	_ = f.SetColWidth(itemSheet, "C", "E", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"invoices", len(invs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
