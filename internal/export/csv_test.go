package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"rentdesk/internal/models"

	"github.com/stretchr/testify/require"
)

func TestWriteAssetsCSV(t *testing.T) {
	assets := []models.Asset{
		{ID: "a1", Name: "Máy chiếu", Code: "PRJ-01", Category: "av", Quantity: 3, Status: models.AssetAvailable},
		{ID: "a2", Name: "Speaker", Code: "SPK-01", Category: "audio", Quantity: 1, Status: models.AssetCheckedOut},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAssetsCSV(&buf, assets))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "expected UTF-8 BOM prefix")

	records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"ID", "Name", "Code", "Category", "Quantity", "Status"}, records[0])
	require.Equal(t, []string{"a1", "Máy chiếu", "PRJ-01", "av", "3", "available"}, records[1])
	require.Equal(t, []string{"a2", "Speaker", "SPK-01", "audio", "1", "checked_out"}, records[2])
}

func TestWriteOrdersCSV(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2024-01-01")
	end, _ := time.Parse("2006-01-02", "2024-01-10")
	orders := []models.Order{
		{
			ID:           "o1",
			CustomerName: "Nguyen",
			StartDate:    start,
			EndDate:      end,
			Status:       models.OrderActive,
			Assets:       []models.Asset{{ID: "a1"}, {ID: "a2"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOrdersCSV(&buf, orders))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, []string{"o1", "Nguyen", "2024-01-01", "2024-01-10", "active", "a1 a2"}, records[1])
}
