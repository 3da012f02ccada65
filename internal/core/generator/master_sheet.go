package generator

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"invoice-service/internal/domain"
)

// masterColumnWidths is the 15-column template tuned for label/value pairs.
var masterColumnWidths = []float64{25, 25, 10, 20, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}

// masterItemHeaders is the 18-column item table header. "description" and
// "generic name" exist on the record but are rendered only on the commercial
// invoice, not here.
var masterItemHeaders = []string{
	"Sr.", "Product Name", "HSN", "Pack", "Qty", "Price", "Batch", "Mfg Date", "Exp Date",
	"Box Info", "State", "Supp GST", "Dist", "Gr Wt", "Net Wt", "UOM", "GST %", "End Use",
}

// buildMasterSheet appends the "Master Sheet" tab to the workbook.
func buildMasterSheet(f *excelize.File, rec *domain.InvoiceRecord) error {
	w, err := newSheetWriter(f, masterSheetName)
	if err != nil {
		return err
	}
	st, err := newMasterStyles(f)
	if err != nil {
		return err
	}

	w.HideGridlines()
	w.ColWidths(masterColumnWidths)

	row := 1

	// Header block: consignee over A:C, exporter over D:G.
	w.Merge(row, 1, row, 3)
	w.SetCell(row, 1, "CONSIGNEE")
	w.StyleRange(row, 1, row, 3, st.header)
	w.Merge(row, 4, row, 7)
	w.SetCell(row, 4, "EXPORTER")
	w.StyleRange(row, 4, row, 7, st.header)
	row++

	// Address block: four rows of wrapped free text per party.
	buyerLine := ""
	if rec.BuyerName != "" {
		buyerLine = "BUYER: " + rec.BuyerName
	}
	w.Merge(row, 1, row+3, 3)
	w.SetCell(row, 1, fmt.Sprintf("%s\n%s\n\n%s", rec.ConsigneeName, rec.ConsigneeAddress, buyerLine))
	w.StyleRange(row, 1, row+3, 3, st.addr)

	w.Merge(row, 4, row+3, 7)
	w.SetCell(row, 4, fmt.Sprintf("%s\n%s\nPhone: %s\nEmail: %s",
		rec.ExporterName, rec.ExporterAddress, rec.ExporterPhone, rec.ExporterEmail))
	w.StyleRange(row, 4, row+3, 7, st.addr)
	row += 4

	drawPair := func(r int, label, value string, labelStyle int) {
		w.SetCell(r, 1, label)
		w.Style(r, 1, labelStyle)
		w.Merge(r, 2, r, 3)
		w.SetCell(r, 2, value)
		w.StyleRange(r, 2, r, 3, st.value)
	}
	drawRegPair := func(r int, label, value string) {
		w.SetCell(r, 4, label)
		w.Style(r, 4, st.labelOrange)
		w.Merge(r, 5, r, 7)
		w.SetCell(r, 5, value)
		w.StyleRange(r, 5, r, 7, st.value)
	}

	// Two independent cursors run from the same row: logistics+financials on
	// the left, regulatory+remittance on the right.
	left := row
	right := row

	drawPair(left, "Invoice No", rec.InvoiceNo, st.labelBlue)
	left++
	drawPair(left, "Date", rec.InvoiceDate, st.labelBlue)
	left++
	drawPair(left, "Packing List No", rec.PackingListNo, st.labelOrange)
	left++
	drawPair(left, "Port of Loading", rec.PortOfLoading, st.labelOrange)
	left++
	drawPair(left, "Port of Discharge", rec.PortOfDischarge, st.labelOrange)
	left++
	drawPair(left, "Final Destination", rec.FinalDestination, st.labelOrange)
	left++
	drawPair(left, "Payment Terms", rec.PaymentTerms, st.labelOrange)
	left++

	drawPair(left, "Proforma Value", rec.ProformaValue, st.labelYellow)
	left++
	drawPair(left, "110% Value", rec.InvoiceValue110, st.labelYellow)
	left++
	drawPair(left, "110% Round Up", rec.InvoiceValue110Round, st.labelYellow)
	left++
	drawPair(left, "ADC Rate", rec.ADCRate, st.labelYellow)
	left++
	drawPair(left, "INR Value", rec.INRValue, st.labelYellow)
	left++

	drawRegPair(right, "IEC No.", rec.IECNo)
	right++
	drawRegPair(right, "GST Status", rec.GSTStatus)
	right++
	drawRegPair(right, "Exporter Ref", rec.ExporterRef)
	right++
	drawRegPair(right, "LUT Ref", rec.LUTRef)
	right++
	drawRegPair(right, "LUT Date", rec.LUTDate)
	right++

	drawRegPair(right, "Remittance Ref", rec.RemittanceRef)
	right++
	drawRegPair(right, "TT Date", rec.RemittanceDate)
	right++
	drawRegPair(right, "TT Amount", rec.RemittanceAmount)
	right++
	drawRegPair(right, "Available Amt", rec.RemittanceAvailable)
	right++
	drawRegPair(right, "Amount Used", rec.RemittanceUsed)
	right++

	// The two columns have different lengths; resume one blank row below the
	// longer one.
	row = maxInt(left, right) + 1

	w.SetCell(row, 1, "PACKING DIMENSIONS")
	w.Style(row, 1, st.header)
	row++

	for _, box := range rec.BoxDimensions {
		w.SetCell(row, 1, box.BoxNo)
		w.Style(row, 1, st.boxLabel)
		w.Merge(row, 2, row, 3)
		w.SetCell(row, 2, box.Dimensions)
		w.StyleRange(row, 2, row, 3, st.boxValue)
		row++
	}
	row++

	for i, h := range masterItemHeaders {
		w.SetCell(row, i+1, h)
		w.Style(row, i+1, st.itemHeader)
	}
	row++

	for i, it := range rec.Items {
		values := []interface{}{
			i + 1,
			it.ProductName,
			it.HSNSAC,
			it.PackSize,
			float64(it.Quantity),
			float64(it.Price),
			it.BatchNo,
			it.MfgDate,
			it.ExpDate,
			it.BoxInfo,
			it.StateCode,
			it.SupplierGSTIN,
			it.DistCode,
			float64(it.GrossWeight),
			float64(it.NetWeight),
			it.UOM,
			float64(it.GSTPercent),
			it.EndUse,
		}
		for col, v := range values {
			w.SetCell(row, col+1, v)
			w.Style(row, col+1, st.itemCell)
		}
		row++
	}

	row++
	w.Merge(row, 1, row, 5)
	w.SetCell(row, 1, fmt.Sprintf("Description: %s | IGST: %s", rec.GeneralDescription, rec.GlobalIGST))
	w.StyleRange(row, 1, row, 5, st.footer)

	return w.Err()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
