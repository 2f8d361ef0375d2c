package label

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// matcher is one step in a field's extraction chain: a pattern whose first
// capture group yields the candidate value, and an optional cleanup applied
// to it.
type matcher struct {
	re    *regexp.Regexp
	clean func(string) string
}

// fieldRule binds a field to its ordered matcher chain. Matchers are tried in
// order and the first hit wins; a field whose whole chain misses stays empty.
type fieldRule struct {
	name   string
	chain  []matcher
	assign func(*Fields, string)
}

var textRules = []fieldRule{
	{
		name: "product_name",
		chain: []matcher{
			{
				re:    regexp.MustCompile(`(?is)(?:Product(?: Name)?|Item|Description)\s*[:\s]*\s*(.+?)(?:\n|MRP|NET|WT|WGT|Qty|Manufacturer|\z)`),
				clean: collapseWhitespace,
			},
			// No labeled declaration; fall back to the first plausible title line.
			{
				re:    regexp.MustCompile(`(?im)^[\s\W]*([A-Za-z][A-Za-z0-9 ,\-]{2,80})`),
				clean: rejectFieldKeyword,
			},
		},
		assign: func(f *Fields, v string) { f.ProductName = v },
	},
	{
		name: "net_weight",
		chain: []matcher{
			{re: regexp.MustCompile(`(?i)(?:NET\s*WT|NET\s*WGT|NET\s*WEIGHT|NET\s*QTY|NET|Qty|Quantity|Weight)[^\n]*?(\d+[\s\.]*\d*\s*(?:g|kg|gm|ml|l|pcs|pack|packet|units|KG))`)},
		},
		assign: func(f *Fields, v string) { f.NetWeight = v },
	},
	{
		name: "mrp",
		chain: []matcher{
			{
				re:    regexp.MustCompile(`(?i)(?:MRP|Maximum\s*Retail\s*Price|Price|Rs\.?)(?:[^0-9\n]*)([\d,]*\.?\d+)`),
				clean: stripThousandsSeparators,
			},
		},
		assign: func(f *Fields, v string) { f.MRP = v },
	},
	{
		name: "mfg_date",
		chain: []matcher{
			{re: regexp.MustCompile(`(?i)(?:Mfg|Mfd|Manufactured\s*on|Mfg\.?|MFG\s*Date)[\s:/-]*(\d{1,4}[/.-]\d{1,4}[/.-]?\d{0,4})`)},
		},
		assign: func(f *Fields, v string) { f.MfgDate = v },
	},
	{
		name: "country_of_origin",
		chain: []matcher{
			{re: regexp.MustCompile(`(?i)Country\s*of\s*Origin[:\s]*([A-Za-z\s,]+)(?:\n|Importer|Manufacturer|\z)`)},
		},
		assign: func(f *Fields, v string) { f.CountryOfOrigin = v },
	},
	{
		name: "manufacturer",
		chain: []matcher{
			{
				re:    regexp.MustCompile(`(?is)(?:Manufacturer|Manufactured\s*By|Packed\s*&\s*Marketed\s*by|Mfg\s*By|Importer|Marketer|Seller|Mfg:)\s*[:\s\-]*\s*(.+?)(?:For\s*Consumer\s*Complaints|\n{2,}|Phone:|Tel:|Email:|Customer|Net Qty|MRP|\z)`),
				clean: cleanManufacturer,
			},
		},
		assign: func(f *Fields, v string) { f.Manufacturer = v },
	},
}

// taxesRe is a presence test, not a capture; it sets the boolean flag directly.
var taxesRe = regexp.MustCompile(`(?i)(?:inclusive\s*of\s*all\s*taxes|Incl\.?\s*All\s*Taxes)`)

// Extract parses raw label text into its declared fields. It is pure and
// total: any input, including garbled OCR output or an empty string, yields a
// complete Fields value with unmatched fields left empty.
func Extract(rawText string) Fields {
	var f Fields
	for _, rule := range textRules {
		for _, m := range rule.chain {
			sub := m.re.FindStringSubmatch(rawText)
			if sub == nil {
				continue
			}
			v := strings.TrimSpace(sub[1])
			if m.clean != nil {
				v = m.clean(v)
			}
			rule.assign(&f, v)
			break
		}
	}
	f.TaxesIncluded = taxesRe.MatchString(rawText)
	return f
}

func collapseWhitespace(v string) string {
	return whitespaceRe.ReplaceAllString(v, " ")
}

func stripThousandsSeparators(v string) string {
	return strings.ReplaceAll(v, ",", "")
}

// fieldKeywordRe matches the extraction keyword vocabulary. A line holding a
// bare field keyword is a header, not a product title.
var fieldKeywordRe = regexp.MustCompile(`(?i)^(?:MRP|NET(?:\s*(?:WT|WGT|WEIGHT|QTY))?|Qty|Quantity|Weight|Price|Rs\.?|Mfg\.?|Mfd|MFG\s*Date|Manufacturer|Importer|Marketer|Seller|Country\s*of\s*Origin)$`)

func rejectFieldKeyword(v string) string {
	if fieldKeywordRe.MatchString(v) {
		return ""
	}
	return v
}

func cleanManufacturer(v string) string {
	v = strings.ReplaceAll(v, "\n", " ")
	v = multiSpaceRe.ReplaceAllString(v, " ")
	// Postal addresses follow the legal entity name on most labels.
	v, _, _ = strings.Cut(v, "Address:")
	return strings.TrimSpace(v)
}
