package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"invoice-service/internal/api/responses"
	"invoice-service/internal/config"
	"invoice-service/internal/core/generator"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	responses.InitLogger()

	cfg := &config.Config{
		Port:            "8083",
		ExporterName:    "Acme Pharma Exports",
		ExporterAddress: "12 Industrial Estate, Mumbai",
	}
	h := NewInvoiceHandler(generator.NewService(), cfg)

	router := gin.New()
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/invoices/master", h.HandleMasterExport)
		apiV1.POST("/invoices/commercial", h.HandleCommercialExport)
		apiV1.POST("/invoices/complete", h.HandleCompleteExport)
		apiV1.POST("/invoices/summary", h.HandleSummary)
		apiV1.GET("/defaults", h.HandleDefaults)
	}
	return router
}

const sampleBody = `{
	"invoiceNo": "EXP-2024-001",
	"exporterName": "Acme Pharma Exports",
	"freightValue": "50",
	"insuranceValue": 10,
	"items": [
		{"productName": "Item A", "quantity": 10, "price": 5},
		{"productName": "Item B", "quantity": "3", "price": "20.00"}
	]
}`

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMasterExportDownload(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/v1/invoices/master", sampleBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != generator.ContentTypeXLSX {
		t.Errorf("Content-Type: got %q", ct)
	}
	want := "attachment; filename=Master_Invoice_EXP-2024-001.xlsx"
	if cd := rec.Header().Get("Content-Disposition"); cd != want {
		t.Errorf("Content-Disposition: got %q, want %q", cd, want)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected workbook bytes in response body")
	}
}

func TestCommercialExportDownload(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/v1/invoices/commercial", sampleBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	want := "attachment; filename=Invoice_Commercial_EXP-2024-001.xlsx"
	if cd := rec.Header().Get("Content-Disposition"); cd != want {
		t.Errorf("Content-Disposition: got %q, want %q", cd, want)
	}
}

func TestCompleteExportDraftFilename(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/v1/invoices/complete", `{"items":[]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	want := "attachment; filename=Complete_Set_DRAFT.xlsx"
	if cd := rec.Header().Get("Content-Disposition"); cd != want {
		t.Errorf("Content-Disposition: got %q, want %q", cd, want)
	}
}

func TestExportRejectsMalformedJSON(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/v1/invoices/master", `{"items": [`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}

	var resp responses.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("status field: got %q, want error", resp.Status)
	}
}

func TestSummaryTotals(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/v1/invoices/summary", sampleBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status string             `json:"status"`
		Data   map[string]float64 `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("status field: got %q", resp.Status)
	}

	want := map[string]float64{
		"totalQuantity":  13,
		"cifValue":       110,
		"freightValue":   50,
		"insuranceValue": 10,
		"fobValue":       50,
	}
	for k, v := range want {
		if got := resp.Data[k]; got != v {
			t.Errorf("%s: got %v, want %v", k, got, v)
		}
	}
}

func TestDefaults(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/defaults", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Acme Pharma Exports") {
		t.Errorf("body missing exporter name: %s", body)
	}
	if !strings.Contains(body, "12 Industrial Estate, Mumbai") {
		t.Errorf("body missing exporter address: %s", body)
	}
}
