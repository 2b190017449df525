package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/entity"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/ocr"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/parse"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/repository"
)

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(_ context.Context, _ string) (ocr.ExtractionResult, error) {
	return ocr.ExtractionResult{Text: s.text, Pages: 1}, s.err
}

type stubInvoiceRepo struct {
	saved *repository.CreateInvoiceRequest
}

func (s *stubInvoiceRepo) UpsertFromFields(_ context.Context, req *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	s.saved = req
	return &entity.Invoice{ID: uuid.New(), InvoiceNumber: req.Fields.InvoiceNumber}, nil
}
func (s *stubInvoiceRepo) GetByNumber(context.Context, string) (*entity.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceRepo) ListRecent(context.Context, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceRepo) DeleteByNumber(context.Context, string) error { return nil }

type stubItemRepo struct {
	items []parse.LineItem
}

func (s *stubItemRepo) ReplaceForInvoice(_ context.Context, _ uuid.UUID, items []parse.LineItem) (int, error) {
	s.items = items
	return len(items), nil
}
func (s *stubItemRepo) ListForInvoice(context.Context, string) ([]*entity.InvoiceItem, error) {
	return nil, nil
}

type stubSupplierRepo struct{ created string }

func (s *stubSupplierRepo) GetOrCreate(_ context.Context, name, _, _, _ string) (*entity.Supplier, error) {
	if name == "" {
		return nil, nil
	}
	s.created = name
	return &entity.Supplier{ID: uuid.New(), Name: name}, nil
}
func (s *stubSupplierRepo) List(context.Context) ([]*entity.Supplier, error) { return nil, nil }

type stubCustomerRepo struct{ created string }

func (s *stubCustomerRepo) GetOrCreate(_ context.Context, name, _, _ string) (*entity.Customer, error) {
	if name == "" {
		return nil, nil
	}
	s.created = name
	return &entity.Customer{ID: uuid.New(), Name: name}, nil
}
func (s *stubCustomerRepo) List(context.Context) ([]*entity.Customer, error) { return nil, nil }

const invoiceText = `INVOICE
Invoice Number: INV-2024-001
Date: 2024-03-15
From: Lanka Supplies Ltd
Bill To: Acme Corp
Description Qty Unit Price Amount
Widget A 2 500.00 1000.00
Subtotal: 1000.00
Balance Due: 1000.00
`

func newTestProcessor(t *testing.T, text string) (*Processor, *stubInvoiceRepo, *stubItemRepo, *stubSupplierRepo, *stubCustomerRepo) {
	t.Helper()
	inv := &stubInvoiceRepo{}
	items := &stubItemRepo{}
	sup := &stubSupplierRepo{}
	cust := &stubCustomerRepo{}
	p := NewProcessor(stubExtractor{text: text}, inv, items, sup, cust, t.TempDir(), nil)
	return p, inv, items, sup, cust
}

func TestProcessFilePersistsInvoiceAndItems(t *testing.T) {
	p, inv, items, sup, cust := newTestProcessor(t, invoiceText)

	res, err := p.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "scan.pdf"))
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, "INV-2024-001", res.InvoiceNumber)
	assert.Equal(t, 1, res.ItemCount)

	require.NotNil(t, inv.saved)
	assert.Equal(t, "INV-2024-001", inv.saved.Fields.InvoiceNumber)
	assert.NotNil(t, inv.saved.SupplierID)
	assert.NotNil(t, inv.saved.CustomerID)
	assert.Equal(t, "Lanka Supplies Ltd", sup.created)
	assert.Equal(t, "Acme Corp", cust.created)
	require.Len(t, items.items, 1)
	assert.Equal(t, "Widget A", items.items[0].Description)
}

func TestProcessFileWritesSidecars(t *testing.T) {
	p, _, _, _, _ := newTestProcessor(t, invoiceText)

	src := filepath.Join(t.TempDir(), "scan.pdf")
	res, err := p.ProcessFile(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, "scan.pdf.txt", filepath.Base(res.TextPath))
	assert.Equal(t, "scan.pdf.json", filepath.Base(res.JSONPath))

	raw, err := os.ReadFile(res.JSONPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "INV-2024-001", doc["invoice_number"])
	require.NoError(t, ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), raw))
}

func TestProcessFileSkipsWhenNothingDetected(t *testing.T) {
	p, inv, _, _, _ := newTestProcessor(t, "lorem ipsum dolor sit amet\n")

	res, err := p.ProcessFile(context.Background(), "/tmp/blank-page.pdf")
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Nil(t, inv.saved)
	// the fallback number is still reported so callers can reference the file
	assert.Equal(t, "blank-page", res.InvoiceNumber)
}

func TestProcessFileSkipsUnsupportedExtension(t *testing.T) {
	p, inv, _, _, _ := newTestProcessor(t, invoiceText)

	res, err := p.ProcessFile(context.Background(), "/tmp/notes.docx")
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Nil(t, inv.saved)
}

func TestCleanInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-9", CleanInvoiceNumber(" —_INV-9 "))
	assert.Equal(t, "INV-9", CleanInvoiceNumber("INV-9"))
}

func TestFallbackInvoiceNumber(t *testing.T) {
	assert.Equal(t, "invoice-42", FallbackInvoiceNumber("/data/invoices/invoice-42.pdf"))
	assert.Equal(t, "scan.final", FallbackInvoiceNumber("scan.final.png"))
}

func TestBuildInvoiceJSONSchemaRejectsUnknownKeys(t *testing.T) {
	doc := []byte(`{"invoice_number":"X","invoice_status":"UNPAID","bogus":"y"}`)
	err := ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), doc)
	require.Error(t, err)
}
