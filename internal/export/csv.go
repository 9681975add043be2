package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"rentdesk/internal/models"
)

// Exports open in Excel more often than not; the BOM keeps non-ASCII asset
// names intact there.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteAssetsCSV serialises the asset inventory to CSV.
func WriteAssetsCSV(w io.Writer, assets []models.Asset) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"ID", "Name", "Code", "Category", "Quantity", "Status"}); err != nil {
		return err
	}
	for _, a := range assets {
		if err := writer.Write([]string{
			a.ID,
			a.Name,
			a.Code,
			a.Category,
			strconv.Itoa(a.Quantity),
			string(a.Status),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteOrdersCSV serialises orders, one row per order with the referenced
// asset ids joined into a single column.
func WriteOrdersCSV(w io.Writer, orders []models.Order) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"ID", "Customer", "Start Date", "End Date", "Status", "Assets"}); err != nil {
		return err
	}
	for _, o := range orders {
		ids := make([]string, 0, len(o.Assets))
		for _, a := range o.Assets {
			ids = append(ids, a.ID)
		}
		if err := writer.Write([]string{
			o.ID,
			o.CustomerName,
			o.StartDate.Format("2006-01-02"),
			o.EndDate.Format("2006-01-02"),
			string(o.Status),
			strings.Join(ids, " "),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
