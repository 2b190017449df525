package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/common"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/entity"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/export"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/ocr"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/parse"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/pipeline"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/repository"
)

type memInvoiceRepo struct {
	byNumber map[string]*entity.Invoice
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{byNumber: map[string]*entity.Invoice{}}
}

func (m *memInvoiceRepo) UpsertFromFields(_ context.Context, req *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	inv := &entity.Invoice{ID: uuid.New(), InvoiceNumber: req.Fields.InvoiceNumber, Status: req.Fields.InvoiceStatus}
	m.byNumber[inv.InvoiceNumber] = inv
	return inv, nil
}
func (m *memInvoiceRepo) GetByNumber(_ context.Context, number string) (*entity.Invoice, error) {
	inv, ok := m.byNumber[number]
	if !ok {
		return nil, common.ErrNotFound
	}
	return inv, nil
}
func (m *memInvoiceRepo) ListRecent(context.Context, int) ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(m.byNumber))
	for _, inv := range m.byNumber {
		out = append(out, inv)
	}
	return out, nil
}
func (m *memInvoiceRepo) DeleteByNumber(_ context.Context, number string) error {
	if _, ok := m.byNumber[number]; !ok {
		return common.ErrNotFound
	}
	delete(m.byNumber, number)
	return nil
}

type memItemRepo struct{}

func (memItemRepo) ReplaceForInvoice(_ context.Context, _ uuid.UUID, items []parse.LineItem) (int, error) {
	return len(items), nil
}
func (memItemRepo) ListForInvoice(context.Context, string) ([]*entity.InvoiceItem, error) {
	return nil, nil
}

type memSupplierRepo struct{}

func (memSupplierRepo) GetOrCreate(context.Context, string, string, string, string) (*entity.Supplier, error) {
	return nil, nil
}
func (memSupplierRepo) List(context.Context) ([]*entity.Supplier, error) { return nil, nil }

type memCustomerRepo struct{}

func (memCustomerRepo) GetOrCreate(context.Context, string, string, string) (*entity.Customer, error) {
	return nil, nil
}
func (memCustomerRepo) List(context.Context) ([]*entity.Customer, error) { return nil, nil }

type fixedExtractor struct{ text string }

func (f fixedExtractor) Extract(context.Context, string) (ocr.ExtractionResult, error) {
	return ocr.ExtractionResult{Text: f.text, Pages: 1}, nil
}

func newTestServer(t *testing.T, ocrText string) (*Server, *memInvoiceRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	invoices := newMemInvoiceRepo()
	items := memItemRepo{}
	proc := pipeline.NewProcessor(fixedExtractor{text: ocrText}, invoices, items,
		memSupplierRepo{}, memCustomerRepo{}, t.TempDir(), nil)
	exporter := export.NewService(invoices, items, nil)
	return New(proc, invoices, items, exporter, t.TempDir(), nil), invoices
}

func doRequest(s *Server, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, "")
	w := doRequest(s, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetInvoiceNotFound(t *testing.T) {
	s, _ := newTestServer(t, "")
	w := doRequest(s, http.MethodGet, "/api/invoices/NOPE", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListInvoicesBadLimit(t *testing.T) {
	s, _ := newTestServer(t, "")
	w := doRequest(s, http.MethodGet, "/api/invoices?limit=abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func uploadBody(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadProcessesInvoice(t *testing.T) {
	s, invoices := newTestServer(t, "Invoice Number: INV-7\nBalance Due: 99.00\n")

	body, ct := uploadBody(t, "inv7.pdf")
	w := doRequest(s, http.MethodPost, "/api/invoices", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Result pipeline.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INV-7", resp.Result.InvoiceNumber)
	_, ok := invoices.byNumber["INV-7"]
	assert.True(t, ok)
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	s, _ := newTestServer(t, "")
	body, ct := uploadBody(t, "notes.docx")
	w := doRequest(s, http.MethodPost, "/api/invoices", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadNoFieldsDetected(t *testing.T) {
	s, _ := newTestServer(t, "nothing useful here\n")
	body, ct := uploadBody(t, "blank.pdf")
	w := doRequest(s, http.MethodPost, "/api/invoices", body, ct)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteInvoice(t *testing.T) {
	s, invoices := newTestServer(t, "")
	invoices.byNumber["INV-1"] = &entity.Invoice{InvoiceNumber: "INV-1"}

	w := doRequest(s, http.MethodDelete, "/api/invoices/INV-1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, invoices.byNumber)

	w = doRequest(s, http.MethodDelete, "/api/invoices/INV-1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportInvoices(t *testing.T) {
	s, invoices := newTestServer(t, "")
	invoices.byNumber["INV-1"] = &entity.Invoice{InvoiceNumber: "INV-1", Status: "UNPAID"}

	w := doRequest(s, http.MethodGet, "/api/invoices/export", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}
