package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/common"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/export"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/ingest"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/ocr"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/pipeline"
	repo "github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use an in-memory SQLite database")
		dir   = flag.String("dir", "", "directory of invoice files to process (defaults to INVOICE_DIR)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to sibling invoices.xlsx)")
		watch = flag.Bool("watch", false, "stay running and process files as they are dropped under -dir")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Optional .env for local development
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if *dir == "" {
		*dir = cfg.Paths.InvoiceDir
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if *watch {
		// Watch mode runs until interrupted.
		ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	} else {
		ctx, cancel = context.WithTimeout(context.Background(), 30*time.Minute)
	}
	defer cancel()

	var entc *ent.Client
	if *inmem {
		var err error
		entc, err = repo.OpenSQLite(ctx, "", logger)
		if err != nil {
			printError("Error: open in-memory database: %v\n", err)
			os.Exit(1)
		}
		defer entc.Close()
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required (or pass -inmem)\n")
			os.Exit(1)
		}
		var err error
		var pool interface{ Close() }
		entc, pool, err = openPostgres(ctx, cfg, logger)
		if err != nil {
			printError("Error: open database: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()
		defer entc.Close()
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

	scanner := ingest.NewScanner(logger)
	files, stats, err := scanner.ScanDirectory(*dir, nil, true)
	if err != nil {
		printError("Error: scan %s: %v\n", *dir, err)
		os.Exit(1)
	}

	var processed, skipped, failed int
	for _, f := range files {
		if f.Err != "" {
			failed++
			continue
		}
		res, err := processor.ProcessFile(ctx, f.Path)
		switch {
		case err != nil:
			failed++
		case res.Skipped:
			skipped++
		default:
			processed++
		}
	}
	logger.Info("batch complete",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"processed", processed, "skipped", skipped, "failed", failed)

	if *watch {
		watcher := ingest.NewWatcher(ingest.WatchConfig{
			Root:     *dir,
			Debounce: 500 * time.Millisecond,
		}, logger)
		paths, watchErrs, err := watcher.Start(ctx)
		if err != nil {
			printError("Error: watch %s: %v\n", *dir, err)
			os.Exit(1)
		}
		for paths != nil || watchErrs != nil {
			select {
			case p, ok := <-paths:
				if !ok {
					paths = nil
					continue
				}
				if _, err := processor.ProcessFile(ctx, p); err != nil {
					logger.Error("process watched file failed", "path", p, "error", err)
				}
			case _, ok := <-watchErrs:
				// watch errors are already logged by the watcher
				if !ok {
					watchErrs = nil
				}
			}
		}
		logger.Info("watch stopped")
	}

	exporter := export.NewService(invoices, items, logger)
	// Fresh context: in watch mode ctx is already cancelled by the signal.
	exportCtx, exportCancel := context.WithTimeout(context.Background(), time.Minute)
	defer exportCancel()
	raw, err := exporter.ExportInvoicesXLSX(exportCtx, 0)
	if err != nil {
		printError("Error: export: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		printError("Error: write %s: %v\n", *out, err)
		os.Exit(1)
	}
	logger.Info("wrote workbook", "path", *out)
}

func openPostgres(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, interface{ Close() }, error) {
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
		return nil, nil, err
	}
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return entc, pool, nil
}
