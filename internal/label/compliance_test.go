package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"labelcheck/internal/label"
)

func completeFields() label.Fields {
	return label.Fields{
		ProductName:     "Choco Chips",
		NetWeight:       "150 g",
		MRP:             "45.00",
		TaxesIncluded:   true,
		MfgDate:         "03/2024",
		CountryOfOrigin: "India",
		Manufacturer:    "ABC Foods Pvt Ltd",
	}
}

func TestEvaluate_Compliant(t *testing.T) {
	ev := label.Evaluate(completeFields())

	assert.True(t, ev.Compliant())
	assert.Empty(t, ev.Missing)
	assert.Equal(t, label.StatusCompliant, ev.Status)
}

func TestEvaluate_SingleMissing(t *testing.T) {
	f := completeFields()
	f.TaxesIncluded = false

	ev := label.Evaluate(f)

	assert.False(t, ev.Compliant())
	assert.Equal(t, []string{"Taxes Included"}, ev.Missing)
	assert.Equal(t, "NON-COMPLIANT: Missing Taxes Included", ev.Status)
}

func TestEvaluate_AllMissing(t *testing.T) {
	ev := label.Evaluate(label.Fields{})

	assert.Equal(t, []string{
		"Product Name",
		"Net Quantity",
		"MRP",
		"Taxes Included",
		"Manufacture Date",
		"Country of Origin",
		"Manufacturer Details",
	}, ev.Missing)
	assert.Equal(t, "NON-COMPLIANT: Missing Product Name, Net Quantity, MRP, Taxes Included, Manufacture Date, Country of Origin, Manufacturer Details", ev.Status)
}

// Labels must come out in declaration order no matter which fields are absent.
func TestEvaluate_LabelOrderInvariant(t *testing.T) {
	f := label.Fields{NetWeight: "1 kg", TaxesIncluded: true, MfgDate: "01/2024"}

	ev := label.Evaluate(f)

	assert.Equal(t, []string{"Product Name", "MRP", "Country of Origin", "Manufacturer Details"}, ev.Missing)
}

func TestEvaluate_Deterministic(t *testing.T) {
	f := label.Fields{MRP: "99"}
	first := label.Evaluate(f)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, label.Evaluate(f))
	}
}

func TestExtractThenEvaluate_MRPOnly(t *testing.T) {
	ev := label.Evaluate(label.Extract("MRP: 99"))

	assert.Equal(t, []string{
		"Product Name",
		"Net Quantity",
		"Taxes Included",
		"Manufacture Date",
		"Country of Origin",
		"Manufacturer Details",
	}, ev.Missing)
}

func TestExtractThenEvaluate_FullLabel(t *testing.T) {
	ev := label.Evaluate(label.Extract(fullLabel))
	assert.Equal(t, label.StatusCompliant, ev.Status)
}
