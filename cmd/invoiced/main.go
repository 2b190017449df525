package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/common"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/export"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/ocr"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/pipeline"
	repo "github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/repository"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Optional .env for local development
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	invoices := repo.NewInvoiceRepository(entc, logger)
	items := repo.NewInvoiceItemRepository(entc, logger)
	suppliers := repo.NewSupplierRepository(entc, logger)
	customers := repo.NewCustomerRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)

	processor := pipeline.NewProcessor(extractor, invoices, items, suppliers, customers, cfg.Paths.OutputDir, logger)
	exporter := export.NewService(invoices, items, logger)

	srv := server.New(processor, invoices, items, exporter, cfg.Paths.InvoiceDir, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(cfg.Server.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		logger.Error("http server stopped", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		logger.Info("shutting down")
	}
}
