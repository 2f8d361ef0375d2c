package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"labelcheck/internal/domain"
)

const sheetName = "Records"

// WriteXLSX renders check records as a single-sheet Excel workbook.
func WriteXLSX(w io.Writer, records []domain.CheckRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i := range records {
		r := &records[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("computing cell for row %d: %w", i+2, err)
		}
		row := []interface{}{
			r.ID.String(),
			r.UserID.String(),
			r.Username,
			string(r.SourceType),
			r.RawText,
			r.ProductName,
			r.NetWeight,
			r.MRP,
			formatBool(r.TaxesIncluded),
			r.MfgDate,
			r.CountryOfOrigin,
			r.Manufacturer,
			r.ComplianceStatus,
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
