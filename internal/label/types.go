// Package label implements field extraction from product label text and
// evaluation of the mandatory declarations a packaged-goods label must carry.
package label

// Fields holds the declarations extracted from one label text. String fields
// are empty when the label did not declare them.
type Fields struct {
	ProductName     string
	NetWeight       string
	MRP             string
	TaxesIncluded   bool
	MfgDate         string
	CountryOfOrigin string
	Manufacturer    string
}

// Evaluation is the compliance verdict for one set of extracted fields.
type Evaluation struct {
	Missing []string
	Status  string
}

// Compliant reports whether no mandatory declaration was missing.
func (e Evaluation) Compliant() bool {
	return len(e.Missing) == 0
}
