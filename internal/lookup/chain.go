package lookup

import (
	"context"
	"errors"
	"log"

	"labelcheck/internal/domain"
	"labelcheck/internal/port"
)

// Chain tries lookup sources in order. A non-final source must return a
// usable product name to win; the final source is accepted as-is, so a local
// database row still counts even when its name column is empty.
type Chain struct {
	sources []port.ProductLookup
	names   []string
}

// NewChain creates a Chain from an ordered list of sources and their names.
func NewChain(sources []port.ProductLookup, names []string) *Chain {
	return &Chain{sources: sources, names: names}
}

func (c *Chain) Lookup(ctx context.Context, barcode string) (*domain.BarcodeProduct, error) {
	var lastErr error
	anyRan := false

	for i, src := range c.sources {
		p, err := src.Lookup(ctx, barcode)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				anyRan = true
				continue
			}
			if errors.Is(err, domain.ErrInvalidBarcode) {
				return nil, err
			}
			log.Printf("lookup.Chain: %s failed: %v", c.names[i], err)
			lastErr = err
			continue
		}
		anyRan = true
		if i == len(c.sources)-1 || usableName(p) {
			return p, nil
		}
		log.Printf("lookup.Chain: %s returned no product name, trying next source", c.names[i])
	}

	if !anyRan && lastErr != nil {
		return nil, lastErr
	}
	return nil, domain.ErrProductNotFound
}

func usableName(p *domain.BarcodeProduct) bool {
	return p.ProductName != "" && p.ProductName != domain.NotAvailable
}
