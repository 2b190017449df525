package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/export"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/pipeline"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/repository"
)

// Server exposes the invoice dashboard API over HTTP.
type Server struct {
	engine    *gin.Engine
	processor *pipeline.Processor
	invoices  repository.InvoiceRepository
	items     repository.InvoiceItemRepository
	exporter  *export.Service
	uploadDir string
	logger    *slog.Logger
}

func New(
	processor *pipeline.Processor,
	invoices repository.InvoiceRepository,
	items repository.InvoiceItemRepository,
	exporter *export.Service,
	uploadDir string,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:    engine,
		processor: processor,
		invoices:  invoices,
		items:     items,
		exporter:  exporter,
		uploadDir: uploadDir,
		logger:    logger,
	}
	engine.Use(s.requestLogger())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)

	api := s.engine.Group("/api")
	api.GET("/invoices", s.listInvoices)
	api.GET("/invoices/export", s.exportInvoices)
	api.GET("/invoices/:number", s.getInvoice)
	api.POST("/invoices", s.uploadInvoice)
	api.DELETE("/invoices/:number", s.deleteInvoice)
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	s.logger.Info("starting http server", "addr", addr)
	return s.engine.Run(addr)
}

// Engine exposes the underlying router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
