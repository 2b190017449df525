package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/constants"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/ocr"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/parse"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/repository"
)

// TextExtractor is the OCR behavior the pipeline depends on.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

// Result is the per-file processing outcome.
type Result struct {
	SourcePath    string `json:"source_path"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
	TextPath      string `json:"text_path,omitempty"`
	JSONPath      string `json:"json_path,omitempty"`
	ItemCount     int    `json:"item_count"`
	Skipped       bool   `json:"skipped"`
	Err           string `json:"error,omitempty"`
}

// Processor runs the OCR-extract-persist flow for invoice documents.
type Processor struct {
	extractor TextExtractor
	invoices  repository.InvoiceRepository
	items     repository.InvoiceItemRepository
	suppliers repository.SupplierRepository
	customers repository.CustomerRepository
	schema    map[string]any
	outputDir string
	logger    *slog.Logger
}

func NewProcessor(
	extractor TextExtractor,
	invoices repository.InvoiceRepository,
	items repository.InvoiceItemRepository,
	suppliers repository.SupplierRepository,
	customers repository.CustomerRepository,
	outputDir string,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		extractor: extractor,
		invoices:  invoices,
		items:     items,
		suppliers: suppliers,
		customers: customers,
		schema:    BuildInvoiceJSONSchema(),
		outputDir: outputDir,
		logger:    logger,
	}
}

// CleanInvoiceNumber strips OCR artifacts that leak into detected invoice
// numbers, such as a leading em-dash underscore pair.
func CleanInvoiceNumber(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "—_", "")
}

// FallbackInvoiceNumber returns the file stem (name without extension) for
// documents where no invoice number was detected in the text.
func FallbackInvoiceNumber(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ProcessFile OCRs one document, writes raw-text and JSON sidecars, and
// persists the invoice header plus line items. Documents where no field at
// all is recognized are skipped rather than stored.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*Result, error) {
	result := &Result{SourcePath: path}
	p.logger.Info("processing invoice file", "path", path)

	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		p.logger.Warn("skipping unsupported file type", "path", path, "ext", ext)
		result.Skipped = true
		return result, nil
	}

	res, err := p.extractor.Extract(ctx, path)
	if err != nil {
		result.Err = err.Error()
		return result, err
	}

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		result.Err = err.Error()
		return result, err
	}

	base := filepath.Base(path)
	textPath := filepath.Join(p.outputDir, base+".txt")
	if err := os.WriteFile(textPath, []byte(res.Text), 0o644); err != nil {
		result.Err = err.Error()
		return result, err
	}
	result.TextPath = textPath
	p.logger.Debug("wrote ocr text sidecar", "path", textPath, "pages", res.Pages, "method", res.Method)

	fields := parse.ExtractFields(res.Text)
	nothingDetected := fields.Empty()
	if fields.InvoiceNumber == "" {
		fields.InvoiceNumber = FallbackInvoiceNumber(path)
	}
	fields.InvoiceNumber = CleanInvoiceNumber(fields.InvoiceNumber)
	result.InvoiceNumber = fields.InvoiceNumber

	if nothingDetected {
		p.logger.Warn("no invoice fields recognized, skipping persist", "path", path)
		result.Skipped = true
		return result, nil
	}

	doc, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		result.Err = err.Error()
		return result, err
	}
	if err := ValidateJSONAgainstSchema(p.schema, doc); err != nil {
		p.logger.Error("extracted fields failed schema validation", "path", path, "error", err)
		result.Err = err.Error()
		return result, err
	}
	jsonPath := filepath.Join(p.outputDir, base+".json")
	if err := os.WriteFile(jsonPath, doc, 0o644); err != nil {
		result.Err = err.Error()
		return result, err
	}
	result.JSONPath = jsonPath

	req := &repository.CreateInvoiceRequest{
		Fields:     fields,
		SourceFile: path,
	}

	supplier, err := p.suppliers.GetOrCreate(ctx, fields.SupplierName, fields.SupplierAddress, fields.SupplierEmail, fields.SupplierPhone)
	if err != nil {
		result.Err = err.Error()
		return result, err
	}
	if supplier != nil {
		req.SupplierID = &supplier.ID
	}
	customer, err := p.customers.GetOrCreate(ctx, fields.CustomerName, fields.BillingAddress, fields.ShippingAddress)
	if err != nil {
		result.Err = err.Error()
		return result, err
	}
	if customer != nil {
		req.CustomerID = &customer.ID
	}

	inv, err := p.invoices.UpsertFromFields(ctx, req)
	if err != nil {
		result.Err = err.Error()
		return result, err
	}

	items := parse.ExtractLineItems(res.Text)
	if len(items) > 0 {
		n, err := p.items.ReplaceForInvoice(ctx, inv.ID, items)
		if err != nil {
			result.Err = err.Error()
			return result, err
		}
		result.ItemCount = n
	}

	p.logger.Info("processed invoice",
		"path", path, "invoice_number", inv.InvoiceNumber, "items", result.ItemCount)
	return result, nil
}

// ProcessDirectory processes every supported file directly under dir in
// name order. Per-file failures are recorded and do not stop the batch.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) ([]*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var results []*Result
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		res, err := p.ProcessFile(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			p.logger.Error("failed to process file", "path", res.SourcePath, "error", err)
		}
		results = append(results, res)
	}
	return results, nil
}
