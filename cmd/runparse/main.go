package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/parse"
)

// runparse feeds a saved OCR text dump through both extractors and prints
// the result as JSON. Useful when tuning patterns against a problem invoice.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runparse <ocr-text-file>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read input", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	text := string(raw)
	out := struct {
		Fields parse.InvoiceFields `json:"fields"`
		Items  []parse.LineItem    `json:"line_items"`
	}{
		Fields: parse.ExtractFields(text),
		Items:  parse.ExtractLineItems(text),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "extracted %d line item(s)\n", len(out.Items))
}
