package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ruralpay/txengine/internal/models"
)

// Reader decodes transaction rows from CSV input. The expected shape is
// a header row followed by `type,client,tx,amount` rows; the amount
// field may be absent entirely on dispute, resolve and chargeback rows,
// so rows of 3 or 4 fields are both accepted.
type Reader struct {
	csv *csv.Reader
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row shape is validated per-row below
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// ReadFile reads all transaction rows from the CSV file at path.
func ReadFile(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", path, err)
	}
	defer f.Close()

	return NewReader(f).ReadAll()
}

// ReadAll consumes the whole input, skipping the header row and any row
// that cannot be read as CSV at all. Field-level validation is the
// dispatcher's job; this layer only deals in row shape.
func (r *Reader) ReadAll() ([]models.RawRecord, error) {
	records := make([]models.RawRecord, 0)
	header := true
	for {
		row, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			// encoding/csv resumes at the next row, so a mangled row
			// costs only itself.
			log.Printf("skipping unreadable CSV row: %v", err)
			continue
		}
		if header {
			header = false
			continue
		}

		rec, ok := rowToRecord(row)
		if !ok {
			log.Printf("skipping row with %d fields, want 3 or 4", len(row))
			continue
		}
		records = append(records, rec)
	}
}

func rowToRecord(row []string) (models.RawRecord, bool) {
	switch len(row) {
	case 3:
		return models.RawRecord{Type: row[0], Client: row[1], Tx: row[2]}, true
	case 4:
		return models.RawRecord{Type: row[0], Client: row[1], Tx: row[2], Amount: row[3]}, true
	default:
		return models.RawRecord{}, false
	}
}
