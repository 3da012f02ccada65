package handlers

import (
	"net/http"

	"invoice-service/internal/api/responses"
	"invoice-service/internal/config"
	"invoice-service/internal/core/generator"
	"invoice-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves the export, summary and defaults routes.
type InvoiceHandler struct {
	service generator.Service
	cfg     *config.Config
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(service generator.Service, cfg *config.Config) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		cfg:     cfg,
	}
}

func (h *InvoiceHandler) bindRecord(c *gin.Context) (*domain.InvoiceRecord, bool) {
	var rec domain.InvoiceRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid invoice record payload", err.Error())
		return nil, false
	}
	return &rec, true
}

// HandleMasterExport generates and downloads the master-only workbook.
func (h *InvoiceHandler) HandleMasterExport(c *gin.Context) {
	rec, ok := h.bindRecord(c)
	if !ok {
		return
	}

	data, filename, err := h.service.GenerateMaster(rec)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to generate Master Excel", err.Error())
		return
	}
	responses.File(c, filename, generator.ContentTypeXLSX, data)
}

// HandleCommercialExport generates and downloads the commercial-invoice-only workbook.
func (h *InvoiceHandler) HandleCommercialExport(c *gin.Context) {
	rec, ok := h.bindRecord(c)
	if !ok {
		return
	}

	data, filename, err := h.service.GenerateCommercial(rec)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to generate Commercial Excel", err.Error())
		return
	}
	responses.File(c, filename, generator.ContentTypeXLSX, data)
}

// HandleCompleteExport generates and downloads the combined two-tab workbook.
func (h *InvoiceHandler) HandleCompleteExport(c *gin.Context) {
	rec, ok := h.bindRecord(c)
	if !ok {
		return
	}

	data, filename, err := h.service.GenerateComplete(rec)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to generate Combined Excel", err.Error())
		return
	}
	responses.File(c, filename, generator.ContentTypeXLSX, data)
}

// HandleSummary returns the derived totals the form shows interactively.
func (h *InvoiceHandler) HandleSummary(c *gin.Context) {
	rec, ok := h.bindRecord(c)
	if !ok {
		return
	}

	summary := gin.H{
		"totalQuantity":  rec.TotalQuantity(),
		"cifValue":       rec.TotalAmount(),
		"freightValue":   float64(rec.FreightValue),
		"insuranceValue": float64(rec.InsuranceValue),
		"fobValue":       rec.FOBValue(),
	}
	responses.Success(c, summary, "Invoice totals computed")
}

// HandleDefaults returns the environment-supplied exporter defaults used as
// initial form values.
func (h *InvoiceHandler) HandleDefaults(c *gin.Context) {
	responses.Success(c, gin.H{
		"exporterName":    h.cfg.ExporterName,
		"exporterAddress": h.cfg.ExporterAddress,
	}, "Exporter defaults")
}
