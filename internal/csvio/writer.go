package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ruralpay/txengine/internal/models"
)

// amountPlaces is the decimal precision used for balances on output.
// Four places round-trip the fixed-point amounts the engine accepts.
const amountPlaces = 4

// Writer renders account snapshots as CSV.
type Writer struct{}

// Write emits the snapshot header and one row per account, in the order
// the snapshots are given.
func (w *Writer) Write(out io.Writer, snapshots []models.AccountSnapshot) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"client", "available", "held", "total", "locked"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, snap := range snapshots {
		row := []string{
			strconv.FormatUint(uint64(snap.Client), 10),
			formatAmount(snap.Available),
			formatAmount(snap.Held),
			formatAmount(snap.Total),
			strconv.FormatBool(snap.Locked),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for client %d: %w", snap.Client, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(amountPlaces)
}
