package export_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"labelcheck/internal/domain"
	"labelcheck/internal/export"
)

func sampleRecord() domain.CheckRecord {
	return domain.CheckRecord{
		ID:               uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		UserID:           uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"),
		Username:         "officer",
		SourceType:       domain.SourceUploadOCR,
		RawText:          "Product Name: Choco Chips\nMRP: 45",
		ProductName:      "Choco Chips",
		MRP:              "45",
		TaxesIncluded:    true,
		ComplianceStatus: "NON-COMPLIANT: Missing Net Quantity, Manufacture Date, Country of Origin, Manufacturer Details",
		CreatedAt:        time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestWriter_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := export.NewWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecords([]domain.CheckRecord{sampleRecord()}))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "compliance_status", rows[0][12])
	assert.Equal(t, "officer", rows[1][2])
	assert.Equal(t, "Uploaded Image OCR", rows[1][3])
	assert.Equal(t, "Yes", rows[1][8])
	assert.Equal(t, "2026-03-14T09:30:00Z", rows[1][13])
}

func TestAppender_CreatesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.csv")
	a := export.NewAppender(path)

	require.NoError(t, a.Append(&domain.CheckRecord{Username: "officer", CreatedAt: time.Now()}))
	require.NoError(t, a.Append(&domain.CheckRecord{Username: "user", CreatedAt: time.Now()}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, export.BOM))

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, export.BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "one header plus two data rows")
	assert.Equal(t, "username", rows[0][2])
	assert.Equal(t, "officer", rows[1][2])
	assert.Equal(t, "user", rows[2][2])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, []domain.CheckRecord{sampleRecord()}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Records")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "product_name", rows[0][5])
	assert.Equal(t, "Choco Chips", rows[1][5])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Checks_March_2026", export.SanitizeFilename("Checks: March 2026!"))
	assert.Equal(t, "a-b_c", export.SanitizeFilename("a-b  c"))
	long := strings.Repeat("x", 150)
	assert.Len(t, export.SanitizeFilename(long), 100)
}

func TestBuildFilename(t *testing.T) {
	name := export.BuildFilename("compliance checks", "csv")
	assert.True(t, strings.HasPrefix(name, "compliance_checks_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}
