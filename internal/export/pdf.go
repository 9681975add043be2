package export

import (
	"io"
	"strconv"

	"rentdesk/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// WriteAssetsPDF renders the asset inventory as a simple A4 table.
func WriteAssetsPDF(w io.Writer, assets []models.Asset) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Asset Inventory")
	pdf.Ln(12)

	headers := []string{"Name", "Code", "Category", "Qty", "Status"}
	widths := []float64{60, 35, 40, 15, 35}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, a := range assets {
		pdf.CellFormat(widths[0], 8, a.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, a.Code, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, a.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 8, strconv.Itoa(a.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 8, string(a.Status), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// WriteOrderPDF renders a single order summary with its asset lines.
func WriteOrderPDF(w io.Writer, order models.Order) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Rental Order "+order.ID)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	lines := [][2]string{
		{"Customer", order.CustomerName},
		{"Start date", order.StartDate.Format("2006-01-02")},
		{"End date", order.EndDate.Format("2006-01-02")},
		{"Status", string(order.Status)},
	}
	for _, l := range lines {
		pdf.CellFormat(35, 7, l[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, l[1], "", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 8, "Asset", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Code", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Status", "1", 0, "L", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, a := range order.Assets {
		pdf.CellFormat(80, 8, a.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, a.Code, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, string(a.Status), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
