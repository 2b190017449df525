package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/common"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/entity"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/ingest"
)

const defaultListLimit = 20

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listInvoices(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = v
	}

	invs, err := s.invoices.ListRecent(c.Request.Context(), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invs})
}

func (s *Server) getInvoice(c *gin.Context) {
	number := c.Param("number")

	inv, err := s.invoices.GetByNumber(c.Request.Context(), number)
	if err != nil {
		s.fail(c, err)
		return
	}
	items, err := s.items.ListForInvoice(c.Request.Context(), number)
	if err != nil {
		s.fail(c, err)
		return
	}
	if items == nil {
		items = []*entity.InvoiceItem{}
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv, "items": items})
}

func (s *Server) uploadInvoice(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "choose an invoice file to upload"})
		return
	}
	if !ingest.AllowedExt(filepath.Ext(file.Filename)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only pdf, jpg, jpeg and png files are supported"})
		return
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		s.fail(c, err)
		return
	}
	target := filepath.Join(s.uploadDir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, target); err != nil {
		s.fail(c, err)
		return
	}

	result, err := s.processor.ProcessFile(c.Request.Context(), target)
	if err != nil {
		s.fail(c, err)
		return
	}
	if result.Skipped {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  fmt.Sprintf("processed %s, but could not detect any invoice data", file.Filename),
			"result": result,
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": result})
}

func (s *Server) deleteInvoice(c *gin.Context) {
	number := c.Param("number")
	if err := s.invoices.DeleteByNumber(c.Request.Context(), number); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": number})
}

func (s *Server) exportInvoices(c *gin.Context) {
	raw, err := s.exporter.ExportInvoicesXLSX(c.Request.Context(), 0)
	if err != nil {
		s.fail(c, err)
		return
	}
	name := fmt.Sprintf("invoices-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", raw)
}

// fail maps internal errors to HTTP responses.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
