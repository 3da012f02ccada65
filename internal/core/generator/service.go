package generator

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"invoice-service/internal/domain"
)

// ContentTypeXLSX is the MIME type of the generated workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	masterSheetName  = "Master Sheet"
	invoiceSheetName = "INVOICE"
)

// Service defines the interface for workbook generation. Each call builds a
// fresh in-memory workbook from the given record, serializes it and returns
// the bytes together with the data-derived download filename.
type Service interface {
	GenerateMaster(rec *domain.InvoiceRecord) ([]byte, string, error)
	GenerateCommercial(rec *domain.InvoiceRecord) ([]byte, string, error)
	GenerateComplete(rec *domain.InvoiceRecord) ([]byte, string, error)
}

type service struct{}

// NewService creates a new workbook generation service.
func NewService() Service {
	return &service{}
}

// GenerateMaster produces a workbook holding only the Master Sheet.
func (svc *service) GenerateMaster(rec *domain.InvoiceRecord) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := buildMasterSheet(f, rec); err != nil {
		return nil, "", fmt.Errorf("building master sheet: %w", err)
	}

	data, err := serializeWorkbook(f, masterSheetName)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("Master_Invoice_%s.xlsx", rec.InvoiceNo), nil
}

// GenerateCommercial produces a workbook holding only the INVOICE sheet.
func (svc *service) GenerateCommercial(rec *domain.InvoiceRecord) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := buildCommercialInvoiceSheet(f, rec); err != nil {
		return nil, "", fmt.Errorf("building commercial invoice sheet: %w", err)
	}

	data, err := serializeWorkbook(f, invoiceSheetName)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("Invoice_Commercial_%s.xlsx", rec.InvoiceNo), nil
}

// GenerateComplete produces a single workbook with both tabs.
func (svc *service) GenerateComplete(rec *domain.InvoiceRecord) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := buildMasterSheet(f, rec); err != nil {
		return nil, "", fmt.Errorf("building master sheet: %w", err)
	}
	if err := buildCommercialInvoiceSheet(f, rec); err != nil {
		return nil, "", fmt.Errorf("building commercial invoice sheet: %w", err)
	}

	data, err := serializeWorkbook(f, masterSheetName)
	if err != nil {
		return nil, "", err
	}

	name := rec.InvoiceNo
	if name == "" {
		name = "DRAFT"
	}
	return data, fmt.Sprintf("Complete_Set_%s.xlsx", name), nil
}

// serializeWorkbook drops the implicit default sheet, activates the first
// generated tab and writes the workbook to a byte buffer.
func serializeWorkbook(f *excelize.File, firstSheet string) ([]byte, error) {
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(firstSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
