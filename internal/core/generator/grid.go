package generator

import (
	"github.com/xuri/excelize/v2"
)

// sheetWriter exposes one worksheet of an excelize workbook behind 1-based
// (row, column) addressing. The first failing call latches its error and turns
// every later call into a no-op, so the layout builders stay declarative and
// surface a single error through Err.
//
// No call validates that a target lies inside sheet bounds; the builders own
// their row cursors and keep them monotonic so writes never collide.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func newSheetWriter(f *excelize.File, sheet string) (*sheetWriter, error) {
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	return &sheetWriter{f: f, sheet: sheet}, nil
}

// Err returns the first error any write produced, if any.
func (w *sheetWriter) Err() error {
	return w.err
}

func (w *sheetWriter) setErr(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *sheetWriter) cellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	w.setErr(err)
	return name
}

// SetCell writes a value at (row, col).
func (w *sheetWriter) SetCell(row, col int, value interface{}) {
	if w.err != nil {
		return
	}
	w.setErr(w.f.SetCellValue(w.sheet, w.cellName(row, col), value))
}

// Merge joins the inclusive rectangle into one cell; later writes into the
// range target its top-left anchor.
func (w *sheetWriter) Merge(startRow, startCol, endRow, endCol int) {
	if w.err != nil {
		return
	}
	w.setErr(w.f.MergeCell(w.sheet, w.cellName(startRow, startCol), w.cellName(endRow, endCol)))
}

// Style applies a registered style to a single cell.
func (w *sheetWriter) Style(row, col, styleID int) {
	w.StyleRange(row, col, row, col, styleID)
}

// StyleRange applies a registered style to every cell of the rectangle, which
// is what keeps borders visible around merged blocks.
func (w *sheetWriter) StyleRange(startRow, startCol, endRow, endCol, styleID int) {
	if w.err != nil {
		return
	}
	w.setErr(w.f.SetCellStyle(w.sheet, w.cellName(startRow, startCol), w.cellName(endRow, endCol), styleID))
}

// ColWidth sets the width of a single 1-based column.
func (w *sheetWriter) ColWidth(col int, width float64) {
	if w.err != nil {
		return
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		w.setErr(err)
		return
	}
	w.setErr(w.f.SetColWidth(w.sheet, name, name, width))
}

// ColWidths applies a width template starting at column A.
func (w *sheetWriter) ColWidths(widths []float64) {
	for i, width := range widths {
		w.ColWidth(i+1, width)
	}
}

// HideGridlines turns the sheet's gridline view off.
func (w *sheetWriter) HideGridlines() {
	if w.err != nil {
		return
	}
	off := false
	w.setErr(w.f.SetSheetView(w.sheet, -1, &excelize.ViewOptions{ShowGridLines: &off}))
}
