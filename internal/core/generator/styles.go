package generator

import (
	"github.com/xuri/excelize/v2"
)

// ---------------------- style registry ----------------------

// Fill colors shared by both sheet templates (ARGB).
const (
	fillBlue   = "FF99CCFF"
	fillOrange = "FFFFC000"
	fillYellow = "FFFFFF00"
)

// moneyFmt is the fixed two-decimal dollar format used by the commercial
// invoice. The master sheet deliberately applies no number formats.
const moneyFmt = `"$"#,##0.00`

func borderAll() []excelize.Border {
	return []excelize.Border{
		{Type: "top", Color: "000000", Style: 1},
		{Type: "left", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
}

func solidFill(argb string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{argb}, Pattern: 1}
}

// masterStyles holds the workbook-scoped style IDs of the Master Sheet.
// excelize styles live on the workbook, so the set is rebuilt per export.
type masterStyles struct {
	header      int // orange fill, bold 11 Calibri
	labelBlue   int
	labelOrange int
	labelYellow int
	value       int // border only
	addr        int // wrapped, top-aligned address block
	boxLabel    int
	boxValue    int
	itemHeader  int
	itemCell    int
	footer      int
}

func newMasterStyles(f *excelize.File) (*masterStyles, error) {
	st := &masterStyles{}
	var err error

	fontHeader := &excelize.Font{Bold: true, Size: 11, Family: "Calibri"}
	fontBold := &excelize.Font{Bold: true, Size: 10, Family: "Calibri"}

	if st.header, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Fill: solidFill(fillOrange), Font: fontHeader,
	}); err != nil {
		return nil, err
	}
	if st.labelBlue, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Fill: solidFill(fillBlue), Font: fontBold,
	}); err != nil {
		return nil, err
	}
	if st.labelOrange, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Fill: solidFill(fillOrange), Font: fontBold,
	}); err != nil {
		return nil, err
	}
	if st.labelYellow, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Fill: solidFill(fillYellow), Font: fontBold,
	}); err != nil {
		return nil, err
	}
	if st.value, err = f.NewStyle(&excelize.Style{Border: borderAll()}); err != nil {
		return nil, err
	}
	if st.addr, err = f.NewStyle(&excelize.Style{
		Border:    borderAll(),
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	}); err != nil {
		return nil, err
	}
	if st.boxLabel, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Fill: solidFill(fillOrange),
	}); err != nil {
		return nil, err
	}
	if st.boxValue, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Fill: solidFill(fillBlue),
	}); err != nil {
		return nil, err
	}
	if st.itemHeader, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Fill: solidFill(fillOrange), Font: fontHeader,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return nil, err
	}
	if st.itemCell, err = f.NewStyle(&excelize.Style{
		Border:    borderAll(),
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return nil, err
	}
	if st.footer, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Fill: solidFill(fillBlue),
	}); err != nil {
		return nil, err
	}
	return st, nil
}

// invoiceStyles holds the workbook-scoped style IDs of the INVOICE sheet.
type invoiceStyles struct {
	title             int // bold 14 underlined Arial, centered
	block             int // bold 9 Arial, wrapped, top-aligned party blocks
	field             int // bold 9 Arial label/value cells
	label             int // plain bordered label cells
	labelWrap         int // plain bordered, wrapped, top-aligned
	logistics         int // bold, wrapped, centered label\nvalue cells
	itemHeader        int
	itemCenter        int // bordered, centered, top-aligned item cells
	desc              int
	money             int // item rate/amount: centered with dollar format
	moneyPlain        int // totals column without emphasis
	moneyBold         int
	summaryLeft       int // left-side packing summary lines, open right edge
	summaryLeftBottom int
	words             int
	decl              int
	sign              int
}

func newInvoiceStyles(f *excelize.File) (*invoiceStyles, error) {
	st := &invoiceStyles{}
	var err error

	fontTitle := &excelize.Font{Bold: true, Size: 14, Underline: "single", Family: "Arial"}
	fontHeader := &excelize.Font{Bold: true, Size: 10, Family: "Arial"}
	fontBold := &excelize.Font{Bold: true, Size: 9, Family: "Arial"}
	fontSmall := &excelize.Font{Size: 8, Family: "Arial"}

	if st.title, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Font: fontTitle,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return nil, err
	}
	if st.block, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Font: fontBold,
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	}); err != nil {
		return nil, err
	}
	if st.field, err = f.NewStyle(&excelize.Style{Border: borderAll(), Font: fontBold}); err != nil {
		return nil, err
	}
	if st.label, err = f.NewStyle(&excelize.Style{Border: borderAll()}); err != nil {
		return nil, err
	}
	if st.labelWrap, err = f.NewStyle(&excelize.Style{
		Border:    borderAll(),
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	}); err != nil {
		return nil, err
	}
	if st.logistics, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Font: fontBold,
		Alignment: &excelize.Alignment{WrapText: true, Horizontal: "center"},
	}); err != nil {
		return nil, err
	}
	if st.itemHeader, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Font: fontHeader,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	}); err != nil {
		return nil, err
	}
	if st.itemCenter, err = f.NewStyle(&excelize.Style{
		Border:    borderAll(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
	}); err != nil {
		return nil, err
	}
	if st.desc, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Font: fontBold,
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	}); err != nil {
		return nil, err
	}
	fmtMoney := moneyFmt
	if st.money, err = f.NewStyle(&excelize.Style{
		Border:       borderAll(),
		Alignment:    &excelize.Alignment{Horizontal: "center", Vertical: "top"},
		CustomNumFmt: &fmtMoney,
	}); err != nil {
		return nil, err
	}
	if st.moneyPlain, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), CustomNumFmt: &fmtMoney,
	}); err != nil {
		return nil, err
	}
	if st.moneyBold, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Font: fontBold, CustomNumFmt: &fmtMoney,
	}); err != nil {
		return nil, err
	}
	if st.summaryLeft, err = f.NewStyle(&excelize.Style{
		Border: []excelize.Border{{Type: "left", Color: "000000", Style: 1}},
		Font:   fontBold,
	}); err != nil {
		return nil, err
	}
	if st.summaryLeftBottom, err = f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Font: fontBold,
	}); err != nil {
		return nil, err
	}
	if st.words, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Font: fontBold,
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	}); err != nil {
		return nil, err
	}
	if st.decl, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Font: fontSmall,
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	}); err != nil {
		return nil, err
	}
	if st.sign, err = f.NewStyle(&excelize.Style{
		Border: borderAll(), Font: fontBold,
		Alignment: &excelize.Alignment{WrapText: true, Horizontal: "center", Vertical: "bottom"},
	}); err != nil {
		return nil, err
	}
	return st, nil
}
