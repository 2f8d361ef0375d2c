package port

import (
	"context"

	"labelcheck/internal/domain"
)

// ProductLookup resolves a barcode to structured product data.
// Implementations return domain.ErrProductNotFound when the code is unknown
// and domain.ErrLookupUnavailable when the backing source cannot be reached.
type ProductLookup interface {
	Lookup(ctx context.Context, barcode string) (*domain.BarcodeProduct, error)
}

// LabelScraper fetches a storefront product page and assembles label text
// from it. Only hosts the implementation recognizes are accepted.
type LabelScraper interface {
	Scrape(ctx context.Context, rawURL string) (string, error)
}
