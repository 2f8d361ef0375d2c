package label

import (
	"fmt"
	"strings"

	"labelcheck/internal/domain"
)

// SynthesizeText builds a pseudo label text from structured lookup data using
// the same label vocabulary the extractor matches on. Running the ordinary
// extraction pipeline over it keeps the barcode path and the OCR path uniform.
// Entries are separated by blank lines so each declaration terminates cleanly
// for the multi-line capture patterns.
func SynthesizeText(p *domain.BarcodeProduct) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product Name: %s\n\n", p.ProductName)
	fmt.Fprintf(&b, "Manufacturer: %s\n\n", manufacturerOf(p))
	fmt.Fprintf(&b, "Net Quantity: %s\n\n", p.NetWeight)
	if p.MRP != domain.NotAvailableAPI {
		fmt.Fprintf(&b, "MRP: %s (Inclusive of all taxes)\n\n", p.MRP)
	} else {
		fmt.Fprintf(&b, "MRP: %s\n\n", p.MRP)
	}
	fmt.Fprintf(&b, "MFG Date: %s\n\n", p.MfgDate)
	fmt.Fprintf(&b, "Country of Origin: %s\n", p.Country)
	return b.String()
}

// MergeStructured runs the extraction pipeline over the synthesized text of a
// structured lookup result, then overrides any field the extractor missed
// with the structured value, provided that value is not a sentinel. Extracted
// values always win over structured ones; the taxes flag is only ever set by
// the extractor since lookups carry no tax-inclusion signal. Compliance is
// re-evaluated on the merged fields.
func MergeStructured(p *domain.BarcodeProduct) (Fields, Evaluation, string) {
	rawText := SynthesizeText(p)
	f := Extract(rawText)

	if absent(f.ProductName) && known(p.ProductName) {
		f.ProductName = p.ProductName
	}
	if absent(f.NetWeight) && known(p.NetWeight) {
		f.NetWeight = p.NetWeight
	}
	if absent(f.MRP) && known(p.MRP) {
		f.MRP = cleanMRP(p.MRP)
	}
	if manu := manufacturerOf(p); absent(f.Manufacturer) && known(manu) {
		f.Manufacturer = manu
	}
	if absent(f.CountryOfOrigin) && known(p.Country) {
		f.CountryOfOrigin = cleanCountry(p.Country)
	}
	if absent(f.MfgDate) && known(p.MfgDate) {
		f.MfgDate = p.MfgDate
	}

	f = dropSentinels(f)
	return f, Evaluate(f), rawText
}

// absent reports whether an extracted value should be treated as missing for
// override purposes. Sentinels survive extraction of the synthesized text.
func absent(v string) bool {
	return v == "" || v == domain.NotAvailable
}

// known reports whether a structured value carries real data.
func known(v string) bool {
	return v != "" && v != domain.NotAvailable && v != domain.NotAvailableAPI
}

func manufacturerOf(p *domain.BarcodeProduct) string {
	if p.Manufacturer != "" {
		return p.Manufacturer
	}
	if p.Brand != "" {
		return p.Brand
	}
	return domain.NotAvailable
}

// cleanMRP strips currency markers a structured source may prepend.
func cleanMRP(v string) string {
	v = strings.ReplaceAll(v, "Rs.", "")
	v = strings.ReplaceAll(v, "₹", "")
	return strings.TrimSpace(v)
}

// cleanCountry strips OpenFoodFacts language-tag prefixes and keeps only the
// first country when the source lists several.
func cleanCountry(v string) string {
	for _, prefix := range []string{"en:", "es:", "fr:"} {
		v = strings.ReplaceAll(v, prefix, "")
	}
	v, _, _ = strings.Cut(v, ",")
	return strings.TrimSpace(v)
}

// dropSentinels blanks any field still holding a lookup sentinel so that the
// re-evaluation counts it as missing and the stored record stays clean.
func dropSentinels(f Fields) Fields {
	for _, v := range []*string{&f.ProductName, &f.NetWeight, &f.MRP, &f.MfgDate, &f.CountryOfOrigin, &f.Manufacturer} {
		if *v == domain.NotAvailable || *v == domain.NotAvailableAPI {
			*v = ""
		}
	}
	return f
}
