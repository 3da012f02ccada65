package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"invoice-service/internal/domain"
)

// invoiceColumnWidths is the fixed 10-column customs-invoice template:
// marks, description, HSN, pack, batch, expiry, UQC, quantity, rate, amount.
var invoiceColumnWidths = []float64{6, 45, 12, 8, 12, 12, 10, 10, 15, 15}

var invoiceItemHeaders = []string{
	"Marks & Nos", "Description of Goods", "HSN CODE", "Pack", "Batch No.",
	"Expiry Date", "Standard UQC", "Quantity (NOS)", "Rate Per Unit / USD", "Amount / USD",
}

// The legal declaration has exactly two variants, keyed on whether the GST
// status reads as paid.
const (
	declarationWithIGST = "* SUPPLY MEANT FOR EXPORT UNDER WITH PAYMENT OF INTEGRATED TAX (IGST)"
	declarationUnderLUT = "* SUPPLY MEANT FOR EXPORT UNDER LETTER OF UNDERTAKING WITHOUT PAYMENT OF IGST *"
)

func declarationText(rec *domain.InvoiceRecord) string {
	variant := declarationUnderLUT
	if rec.IGSTPaid() {
		variant = declarationWithIGST
	}
	return "DECLARATION:\nWe declare that this invoice shows actual price of the goods described and that all particulars are true and correct.\n" + variant
}

// descriptionCellText packs product name, free text and the supplier tax
// identifiers into the single display cell the customs template uses.
func descriptionCellText(it domain.LineItem) string {
	return fmt.Sprintf("%s\n%s\n\nSTATE CODE: %s, GSTIN: %s\nDISTRICT CODE: %s",
		strings.ToUpper(it.ProductName), it.Description, it.StateCode, it.SupplierGSTIN, it.DistCode)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// buildCommercialInvoiceSheet appends the "INVOICE" tab to the workbook.
func buildCommercialInvoiceSheet(f *excelize.File, rec *domain.InvoiceRecord) error {
	w, err := newSheetWriter(f, invoiceSheetName)
	if err != nil {
		return err
	}
	st, err := newInvoiceStyles(f)
	if err != nil {
		return err
	}

	w.HideGridlines()
	w.ColWidths(invoiceColumnWidths)

	row := 1

	// Title
	w.Merge(row, 1, row, 10)
	w.SetCell(row, 1, "INVOICE")
	w.StyleRange(row, 1, row, 10, st.title)
	row++

	// Exporter identity block on the left, reference fields on the right.
	w.Merge(row, 1, row+7, 4)
	w.SetCell(row, 1, fmt.Sprintf("EXPORTER :\n%s\n%s\nPhone: %s\nEmail: %s",
		rec.ExporterName, rec.ExporterAddress, rec.ExporterPhone, rec.ExporterEmail))
	w.StyleRange(row, 1, row+7, 4, st.block)

	drawRightField := func(r int, label, value string) {
		w.Merge(r, 5, r, 6)
		w.SetCell(r, 5, label)
		w.StyleRange(r, 5, r, 6, st.field)
		w.Merge(r, 7, r, 10)
		w.SetCell(r, 7, value)
		w.StyleRange(r, 7, r, 10, st.field)
	}

	drawRightField(row, "INVOICE No.", rec.InvoiceNo)
	row++
	drawRightField(row, "INVOICE DATE", rec.InvoiceDate)
	row++
	drawRightField(row, "IEC No.", rec.IECNo)
	row++
	drawRightField(row, "Company GSTN", rec.CompanyGSTNo)
	row++
	drawRightField(row, "IGST PAYMENT STATUS :", rec.GSTStatus)
	row++
	drawRightField(row, "Drug Lic No.", rec.DrugLicNo)
	row++
	drawRightField(row, "Buyer's Order Ref.", rec.BuyerOrderRef)
	row++
	drawRightField(row, "Exporter Ref.", rec.ExporterRef)
	row++

	// Consignee and buyer blocks.
	buyer := rec.BuyerName
	if buyer == "" {
		buyer = "Same as Consignee"
	}
	w.Merge(row, 1, row+4, 4)
	w.SetCell(row, 1, fmt.Sprintf("CONSIGNEE :\n%s\n%s", rec.ConsigneeName, rec.ConsigneeAddress))
	w.StyleRange(row, 1, row+4, 4, st.block)

	w.Merge(row, 5, row+4, 10)
	w.SetCell(row, 5, "BUYER (IF OTHER THAN CONSIGNEE) :\n"+buyer)
	w.StyleRange(row, 5, row+4, 10, st.block)
	row += 5

	// Logistics grid: label and value share a cell, value wrapped beneath.
	drawLogistics := func(r, c1, c2 int, label, value string) {
		w.Merge(r, c1, r, c2)
		w.SetCell(r, c1, label+"\n"+value)
		w.StyleRange(r, c1, r, c2, st.logistics)
	}

	drawLogistics(row, 1, 2, "PRE-CARRIAGE BY", rec.PreCarriage)
	drawLogistics(row, 3, 4, "PLACE OF RECEIPT", rec.PlaceOfReceipt)
	w.Merge(row, 5, row, 7)
	w.SetCell(row, 5, "COUNTRY OF ORIGIN")
	w.StyleRange(row, 5, row, 7, st.label)
	w.Merge(row, 8, row, 10)
	w.SetCell(row, 8, "INDIA")
	w.StyleRange(row, 8, row, 10, st.field)
	row++

	drawLogistics(row, 1, 2, "VESSEL/FLIGHT NO.", rec.VesselFlight)
	drawLogistics(row, 3, 4, "PORT OF LOADING", rec.PortOfLoading)
	w.Merge(row, 5, row, 7)
	w.SetCell(row, 5, "COUNTRY OF FINAL DEST")
	w.StyleRange(row, 5, row, 7, st.label)
	w.Merge(row, 8, row, 10)
	w.SetCell(row, 8, rec.FinalDestination)
	w.StyleRange(row, 8, row, 10, st.field)
	row++

	drawLogistics(row, 1, 2, "PORT OF DISCHARGE", rec.PortOfDischarge)
	drawLogistics(row, 3, 4, "FINAL DESTINATION", rec.FinalDestination)
	w.Merge(row, 5, row+1, 5)
	w.SetCell(row, 5, "TERMS OF DELIVERY")
	w.StyleRange(row, 5, row+1, 5, st.labelWrap)
	w.Merge(row, 6, row+1, 10)
	w.SetCell(row, 6, rec.TermsOfDelivery)
	w.StyleRange(row, 6, row+1, 10, st.block)
	row++

	w.Merge(row, 1, row, 2)
	w.StyleRange(row, 1, row, 2, st.label)
	w.Merge(row, 3, row, 4)
	w.StyleRange(row, 3, row, 4, st.label)
	row++

	w.SetCell(row, 5, "PAYMENT TERMS")
	w.Style(row, 5, st.label)
	w.Merge(row, 6, row, 10)
	w.SetCell(row, 6, rec.PaymentTerms)
	w.StyleRange(row, 6, row, 10, st.field)
	row++

	// Item table.
	for i, h := range invoiceItemHeaders {
		w.SetCell(row, i+1, h)
		w.Style(row, i+1, st.itemHeader)
	}
	row++

	var totalQty, totalAmount float64
	for i, it := range rec.Items {
		w.SetCell(row, 1, i+1)
		w.Style(row, 1, st.itemCenter)

		w.SetCell(row, 2, descriptionCellText(it))
		w.Style(row, 2, st.desc)

		w.SetCell(row, 3, it.HSNSAC)
		w.SetCell(row, 4, it.PackSize)
		w.SetCell(row, 5, it.BatchNo)
		w.SetCell(row, 6, it.ExpDate)
		w.SetCell(row, 7, fmt.Sprintf("%s %s", formatNumber(float64(it.NetWeight)), it.UOM))

		qty := float64(it.Quantity)
		w.SetCell(row, 8, qty)
		totalQty += qty

		rate := float64(it.Price)
		w.SetCell(row, 9, rate)

		amount := qty * rate
		w.SetCell(row, 10, amount)
		totalAmount += amount

		w.StyleRange(row, 3, row, 8, st.itemCenter)
		w.StyleRange(row, 9, row, 10, st.money)
		row++
	}

	// Totals block. The left-side packing summary lines share rows with the
	// right-side financial totals to save vertical space.
	w.Merge(row, 1, row, 7)
	w.StyleRange(row, 1, row, 7, st.label)
	w.SetCell(row, 8, totalQty)
	w.Style(row, 8, st.field)
	w.SetCell(row, 9, "CIF VALUE $")
	w.Style(row, 9, st.field)
	w.SetCell(row, 10, totalAmount)
	w.Style(row, 10, st.moneyBold)
	row++

	freight := float64(rec.FreightValue)
	w.SetCell(row, 9, "FREIGHT VALUE $")
	w.Style(row, 9, st.label)
	w.SetCell(row, 10, freight)
	w.Style(row, 10, st.moneyPlain)
	w.Merge(row, 1, row, 5)
	w.SetCell(row, 1, fmt.Sprintf("No. of Corrugated Boxes :  %s", rec.TotalCorrugatedBoxes))
	w.StyleRange(row, 1, row, 5, st.summaryLeft)
	row++

	insurance := float64(rec.InsuranceValue)
	w.SetCell(row, 9, "INSURANCE $")
	w.Style(row, 9, st.label)
	w.SetCell(row, 10, insurance)
	w.Style(row, 10, st.moneyPlain)
	w.Merge(row, 1, row, 5)
	w.SetCell(row, 1, fmt.Sprintf("Gross Weight :  %s %s", rec.TotalGrossWeight, rec.UOM))
	w.StyleRange(row, 1, row, 5, st.summaryLeft)
	row++

	fob := totalAmount - freight - insurance
	w.SetCell(row, 9, "FOB VALUE $")
	w.Style(row, 9, st.field)
	w.SetCell(row, 10, fob)
	w.Style(row, 10, st.moneyBold)
	w.Merge(row, 1, row, 5)
	w.SetCell(row, 1, fmt.Sprintf("Nett Weight :  %s %s", rec.TotalNetWeight, rec.UOM))
	w.StyleRange(row, 1, row, 5, st.summaryLeftBottom)
	row++

	// Static placeholder, not computed from the numeric total.
	w.Merge(row, 1, row+1, 10)
	w.SetCell(row, 1, "AMOUNT CHARGEABLE (IN WORDS):\nUS DOLLARS ...ONLY")
	w.StyleRange(row, 1, row+1, 10, st.words)
	row += 2

	w.Merge(row, 1, row+3, 6)
	w.SetCell(row, 1, declarationText(rec))
	w.StyleRange(row, 1, row+3, 6, st.decl)

	w.Merge(row, 7, row+3, 10)
	w.SetCell(row, 7, fmt.Sprintf("For %s,\n\n\n\nAUTHORISED SIGNATORY", rec.ExporterName))
	w.StyleRange(row, 7, row+3, 10, st.sign)

	return w.Err()
}
