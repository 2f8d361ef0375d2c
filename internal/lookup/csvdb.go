package lookup

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"labelcheck/internal/domain"
)

// CSVDatabase implements port.ProductLookup over a local products CSV file.
// The file is re-read on every lookup so edits take effect without a restart.
type CSVDatabase struct {
	path string
}

// NewCSVDatabase creates a lookup over the CSV file at path. Expected header
// columns: barcode, product_name, brand, quantity, manufacturer, country,
// mrp, mfg_date. Missing columns degrade to "N/A" values.
func NewCSVDatabase(path string) *CSVDatabase {
	return &CSVDatabase{path: path}
}

func (db *CSVDatabase) Lookup(ctx context.Context, barcode string) (*domain.BarcodeProduct, error) {
	code := NormalizeBarcode(barcode)
	if code == "" {
		return nil, domain.ErrInvalidBarcode
	}

	f, err := os.Open(db.path)
	if err != nil {
		if os.IsNotExist(err) {
			// An absent database file means no local products, not a failure.
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("opening products database: %v: %w", err, domain.ErrLookupUnavailable)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading products database header: %v: %w", err, domain.ErrLookupUnavailable)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	barcodeIdx, ok := col["barcode"]
	if !ok {
		return nil, fmt.Errorf("products database has no barcode column: %w", domain.ErrLookupUnavailable)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err != nil {
			break
		}
		if barcodeIdx >= len(row) || NormalizeBarcode(row[barcodeIdx]) != code {
			continue
		}
		field := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(row) || row[idx] == "" {
				return domain.NotAvailable
			}
			return row[idx]
		}
		return &domain.BarcodeProduct{
			Barcode:      code,
			ProductName:  field("product_name"),
			Brand:        field("brand"),
			NetWeight:    field("quantity"),
			Manufacturer: field("manufacturer"),
			Country:      field("country"),
			MRP:          field("mrp"),
			MfgDate:      field("mfg_date"),
			Source:       "Local Database",
		}, nil
	}

	return nil, domain.ErrProductNotFound
}
