package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/entity"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/parse"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/repository"
)

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
}

func (f *fakeInvoiceRepo) UpsertFromFields(context.Context, *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) GetByNumber(context.Context, string) (*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) ListRecent(context.Context, int) ([]*entity.Invoice, error) {
	return f.invoices, nil
}
func (f *fakeInvoiceRepo) DeleteByNumber(context.Context, string) error { return nil }

type fakeItemRepo struct {
	items map[string][]*entity.InvoiceItem
}

func (f *fakeItemRepo) ReplaceForInvoice(context.Context, uuid.UUID, []parse.LineItem) (int, error) {
	return 0, nil
}
func (f *fakeItemRepo) ListForInvoice(_ context.Context, number string) ([]*entity.InvoiceItem, error) {
	return f.items[number], nil
}

func TestExportInvoicesXLSX(t *testing.T) {
	total := 1500.0
	invRepo := &fakeInvoiceRepo{invoices: []*entity.Invoice{
		{InvoiceNumber: "INV-1", Status: "UNPAID", SupplierName: "Lanka Supplies Ltd", TotalAmount: &total},
		{InvoiceNumber: "INV-2", Status: "PAID"},
	}}
	itemRepo := &fakeItemRepo{items: map[string][]*entity.InvoiceItem{
		"INV-1": {
			{Description: "Widget A", Quantity: 2, UnitPrice: 500, LineTotal: 1000},
			{Description: "Widget B", Quantity: 1, UnitPrice: 500, LineTotal: 500},
		},
	}}

	svc := NewService(invRepo, itemRepo, nil)
	raw, err := svc.ExportInvoicesXLSX(context.Background(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 invoices
	assert.Equal(t, "INV-1", rows[1][0])
	assert.Equal(t, "UNPAID", rows[1][2])

	itemRows, err := f.GetRows("Line Items")
	require.NoError(t, err)
	require.Len(t, itemRows, 3) // header + 2 items
	assert.Equal(t, "Widget A", itemRows[1][1])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
}
