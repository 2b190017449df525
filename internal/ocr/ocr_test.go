package ocr

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/constants"
)

// stubRunner replays canned outputs keyed by binary name.
type stubRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	if err, ok := s.errs[name]; ok {
		return nil, []byte("boom"), err
	}
	return []byte(s.outputs[name]), nil, nil
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, nil)
	e.runner = r
	return e
}

func TestExtractPDFUsesTextLayer(t *testing.T) {
	text := strings.Repeat("INVOICE #001 Total: 100.00\n", 10)
	r := &stubRunner{outputs: map[string]string{"pdftotext": text}}
	e := newTestExtractor(r)

	res, err := e.Extract(context.Background(), "/tmp/sample.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, constants.PDF, res.SourceType)
	assert.Contains(t, res.Text, "INVOICE #001")
	assert.Equal(t, []string{"pdftotext"}, r.calls)
}

func TestExtractPDFFallsBackToOCRWhenTextLayerEmpty(t *testing.T) {
	r := &stubRunner{outputs: map[string]string{"pdftotext": "  \n"}}
	e := newTestExtractor(r)

	_, err := e.Extract(context.Background(), "/tmp/scanned.pdf")
	// pdftoppm renders into a temp dir the stub never populates, so the
	// fallback path errors out; what matters is that it was attempted.
	require.Error(t, err)
	assert.Contains(t, r.calls, "pdftoppm")
}

func TestExtractImageRunsTesseract(t *testing.T) {
	r := &stubRunner{outputs: map[string]string{"tesseract": "Invoice Number: X-1\nTotal: 42.00\n"}}
	e := newTestExtractor(r)

	res, err := e.Extract(context.Background(), "/tmp/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, constants.IMAGE, res.SourceType)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "Invoice Number: X-1")
}

func TestExtractImageTesseractFailure(t *testing.T) {
	r := &stubRunner{errs: map[string]error{"tesseract": fmt.Errorf("exit status 1")}}
	e := newTestExtractor(r)

	_, err := e.Extract(context.Background(), "/tmp/photo.png")
	require.Error(t, err)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := newTestExtractor(&stubRunner{})
	_, err := e.Extract(context.Background(), "/tmp/notes.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestNormalize(t *testing.T) {
	in := "Total:\t100.00\r\nPaid   in  full\n\n\n\nThanks  \n____\n"
	out := Normalize(in)
	assert.NotContains(t, out, "\r")
	assert.NotContains(t, out, "\t")
	assert.NotContains(t, out, "\n\n\n")
	assert.NotContains(t, out, "____")
	assert.Contains(t, out, "Total: 100.00")
	assert.Contains(t, out, "Paid in full")
}

func TestHeuristicConfidence(t *testing.T) {
	rich := "INVOICE\nDate: 2024-01-15\nTotal: $1,250.00\n" + strings.Repeat("line item detail\n", 10)
	poor := "zz"
	assert.Greater(t, heuristicConfidence(rich), heuristicConfidence(poor))
	assert.LessOrEqual(t, heuristicConfidence(rich), float32(1.0))
}
