package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ErrNoData is returned when a report with no real rows is exported.
var ErrNoData = fmt.Errorf("report has no data to export")

// ExportPDF renders the report as a landscape A4 table and writes it to
// path. The header row repeats on every page.
func ExportPDF(r *Report, path string) error {
	if !r.HasData() {
		return ErrNoData
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 15)

	pageW, pageH := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	usable := pageW - left - right
	colW := usable / float64(len(r.Columns))

	header := func() {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(usable, 10, r.Title, "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(usable, 5,
			"Generated: "+r.GeneratedAt.Format("2006-01-02 15:04"),
			"", 1, "C", false, 0, "")
		pdf.Ln(3)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(60, 90, 150)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range r.Columns {
			pdf.CellFormat(colW, 7, col, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 8)
	}

	pdf.AddPage()
	header()

	for i, row := range r.Rows {
		if pdf.GetY()+6 > pageH-bottom {
			pdf.AddPage()
			header()
		}
		fill := i%2 == 1
		pdf.SetFillColor(235, 238, 245)
		for _, cell := range row {
			pdf.CellFormat(colW, 6, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
