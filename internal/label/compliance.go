package label

import "strings"

// StatusCompliant is the verdict for a label carrying every mandatory declaration.
const StatusCompliant = "COMPLIANT"

// complianceChecks lists the mandatory declarations in reporting order. The
// order is fixed so that the missing list, and therefore the status string,
// is reproducible for a given input.
var complianceChecks = []struct {
	label   string
	present func(Fields) bool
}{
	{"Product Name", func(f Fields) bool { return f.ProductName != "" }},
	{"Net Quantity", func(f Fields) bool { return f.NetWeight != "" }},
	{"MRP", func(f Fields) bool { return f.MRP != "" }},
	{"Taxes Included", func(f Fields) bool { return f.TaxesIncluded }},
	{"Manufacture Date", func(f Fields) bool { return f.MfgDate != "" }},
	{"Country of Origin", func(f Fields) bool { return f.CountryOfOrigin != "" }},
	{"Manufacturer Details", func(f Fields) bool { return f.Manufacturer != "" }},
}

// Evaluate checks the extracted fields against the mandatory declarations and
// returns the verdict. Like Extract it is pure and never fails.
func Evaluate(f Fields) Evaluation {
	var missing []string
	for _, check := range complianceChecks {
		if !check.present(f) {
			missing = append(missing, check.label)
		}
	}
	if len(missing) == 0 {
		return Evaluation{Status: StatusCompliant}
	}
	return Evaluation{
		Missing: missing,
		Status:  "NON-COMPLIANT: Missing " + strings.Join(missing, ", "),
	}
}
