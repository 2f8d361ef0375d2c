package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"labelcheck/internal/label"
)

const fullLabel = "Product Name: Choco Chips\nNET WT: 150 g\nMRP: Rs. 45.00\nInclusive of all taxes\nMfg: 03/2024\nCountry of Origin: India\nManufacturer: ABC Foods Pvt Ltd"

func TestExtract_FullLabel(t *testing.T) {
	f := label.Extract(fullLabel)

	assert.Equal(t, "Choco Chips", f.ProductName)
	assert.Equal(t, "150 g", f.NetWeight)
	assert.Equal(t, "45.00", f.MRP)
	assert.True(t, f.TaxesIncluded)
	assert.Equal(t, "03/2024", f.MfgDate)
	assert.Equal(t, "India", f.CountryOfOrigin)
	assert.NotEmpty(t, f.Manufacturer)
}

func TestExtract_MRPOnly(t *testing.T) {
	f := label.Extract("MRP: 99")

	assert.Empty(t, f.ProductName, "a bare field keyword is not a product title")
	assert.Empty(t, f.NetWeight)
	assert.Equal(t, "99", f.MRP)
	assert.False(t, f.TaxesIncluded)
	assert.Empty(t, f.MfgDate)
	assert.Empty(t, f.CountryOfOrigin)
	assert.Empty(t, f.Manufacturer)
}

func TestExtract_EmptyText(t *testing.T) {
	f := label.Extract("")

	assert.Equal(t, label.Fields{}, f)
}

func TestExtract_GarbledTextNeverFails(t *testing.T) {
	inputs := []string{
		"@@@###$$$",
		"\n\n\n",
		"   ",
		"ля২৩‡†\x00\x01",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { label.Extract(in) })
	}
}

func TestExtract_MRPThousandsSeparator(t *testing.T) {
	f := label.Extract("MRP: 1,299.50")
	assert.Equal(t, "1299.50", f.MRP)
}

func TestExtract_MRPCurrencySymbols(t *testing.T) {
	t.Run("rupee_symbol", func(t *testing.T) {
		f := label.Extract("MRP ₹299 Incl. All Taxes")
		assert.Equal(t, "299", f.MRP)
		assert.True(t, f.TaxesIncluded)
	})

	t.Run("rs_prefix", func(t *testing.T) {
		f := label.Extract("Price Rs. 120.00")
		assert.Equal(t, "120.00", f.MRP)
	})
}

func TestExtract_NetQuantityUnits(t *testing.T) {
	cases := map[string]string{
		"Net Qty: 500 ml":       "500 ml",
		"NET WEIGHT 1 kg":       "1 kg",
		"Quantity: 12 pcs":      "12 pcs",
		"NET WT 200g":           "200g",
		"Net Quantity: 2 x 50 g": "50 g",
	}
	for in, want := range cases {
		f := label.Extract(in)
		assert.Equal(t, want, f.NetWeight, "input %q", in)
	}
}

func TestExtract_MfgDateFormats(t *testing.T) {
	cases := map[string]string{
		"Mfg: 03/2024":          "03/2024",
		"MFG Date: 12/08/2024":  "12/08/2024",
		"Mfd 01.2025":           "01.2025",
		"Manufactured on 2024-06-15": "2024-06-15",
	}
	for in, want := range cases {
		f := label.Extract(in)
		assert.Equal(t, want, f.MfgDate, "input %q", in)
	}
}

func TestExtract_CountryStopsAtLineEnd(t *testing.T) {
	f := label.Extract("Country of Origin: India\nImporter: XYZ Traders")
	assert.Equal(t, "India", f.CountryOfOrigin)
}

func TestExtract_ManufacturerTruncatesAddress(t *testing.T) {
	f := label.Extract("Manufactured By: Sunrise Agro Ltd Address: Plot 7, MIDC, Pune")
	assert.Equal(t, "Sunrise Agro Ltd", f.Manufacturer)
}

func TestExtract_ManufacturerJoinsWrappedLines(t *testing.T) {
	f := label.Extract("Manufactured By: Alpha Foods\nPlot 9 Estate\n\nCustomer Care: 1800 000 000")
	assert.Equal(t, "Alpha Foods Plot 9 Estate", f.Manufacturer)
}

func TestExtract_ProductNameFallbackTitleLine(t *testing.T) {
	f := label.Extract("Choco Crunch Biscuits\nSome other text")
	assert.Equal(t, "Choco Crunch Biscuits", f.ProductName)
}

func TestExtract_Deterministic(t *testing.T) {
	first := label.Extract(fullLabel)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, label.Extract(fullLabel))
	}
}
