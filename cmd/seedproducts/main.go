// Command seedproducts converts a product master Excel workbook into the CSV
// file the local barcode lookup reads. The first sheet must carry the columns
// barcode, product_name, brand, quantity, manufacturer, country, mrp and
// mfg_date (header row, any order).
// Usage: go run ./cmd/seedproducts <workbook.xlsx>
// Output: data/products.csv
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"labelcheck/internal/lookup"
)

var columns = []string{"barcode", "product_name", "brand", "quantity", "manufacturer", "country", "mrp", "mfg_date"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seedproducts <workbook.xlsx>")
		os.Exit(1)
	}
	xlsxPath := os.Args[1]
	outPath := "data/products.csv"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("sheet has no data rows")
	}

	// Map workbook columns by header name
	colIdx := make(map[string]int)
	for i, h := range rows[0] {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := colIdx["barcode"]; !ok {
		return fmt.Errorf("sheet is missing a barcode column")
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := csv.NewWriter(out)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	seen := make(map[string]bool)
	written := 0
	for i := 1; i < len(rows); i++ {
		row := rows[i]

		barcode := lookup.NormalizeBarcode(cellVal(row, colIdx["barcode"]))
		if barcode == "" || seen[barcode] {
			continue
		}
		seen[barcode] = true

		record := make([]string, len(columns))
		record[0] = barcode
		for j, col := range columns[1:] {
			idx, ok := colIdx[col]
			if !ok {
				continue
			}
			record[j+1] = strings.TrimSpace(cellVal(row, idx))
		}

		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
		written++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	log.Printf("Wrote %d products (%d rows skipped) to %s", written, len(rows)-1-written, outPath)
	return nil
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
