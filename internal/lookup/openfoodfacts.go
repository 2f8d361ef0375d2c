// Package lookup resolves product barcodes to structured product data, first
// through the OpenFoodFacts public API and then through a local CSV database.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"labelcheck/internal/domain"
)

const openFoodFactsURL = "https://world.openfoodfacts.org/api/v0/product"

var nonDigitRe = regexp.MustCompile(`\D`)

// NormalizeBarcode strips everything but digits from a scanned or typed code.
func NormalizeBarcode(code string) string {
	return nonDigitRe.ReplaceAllString(code, "")
}

// OpenFoodFactsClient implements port.ProductLookup against the OpenFoodFacts
// public product API.
type OpenFoodFactsClient struct {
	endpoint string
	client   *http.Client
}

// NewOpenFoodFactsClient creates a client with the given request timeout.
func NewOpenFoodFactsClient(timeoutSecs int) *OpenFoodFactsClient {
	return NewOpenFoodFactsClientWithEndpoint(openFoodFactsURL, timeoutSecs)
}

// NewOpenFoodFactsClientWithEndpoint creates a client pointing at a custom API
// endpoint (for testing).
func NewOpenFoodFactsClientWithEndpoint(endpoint string, timeoutSecs int) *OpenFoodFactsClient {
	timeout := time.Duration(timeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &OpenFoodFactsClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type offResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName         string `json:"product_name"`
		Brands              string `json:"brands"`
		Quantity            string `json:"quantity"`
		ManufacturingPlaces string `json:"manufacturing_places"`
		Countries           string `json:"countries"`
	} `json:"product"`
}

func (c *OpenFoodFactsClient) Lookup(ctx context.Context, barcode string) (*domain.BarcodeProduct, error) {
	code := NormalizeBarcode(barcode)
	if code == "" {
		return nil, domain.ErrInvalidBarcode
	}

	url := fmt.Sprintf("%s/%s.json", c.endpoint, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling openfoodfacts API: %v: %w", err, domain.ErrLookupUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %v: %w", err, domain.ErrLookupUnavailable)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts API status %d: %w", resp.StatusCode, domain.ErrLookupUnavailable)
	}

	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %v: %w", err, domain.ErrLookupUnavailable)
	}
	if parsed.Status != 1 {
		return nil, domain.ErrProductNotFound
	}

	manufacturer := parsed.Product.ManufacturingPlaces
	if manufacturer == "" {
		manufacturer = parsed.Product.Brands
	}

	return &domain.BarcodeProduct{
		Barcode:      code,
		ProductName:  orNA(parsed.Product.ProductName),
		Brand:        orNA(parsed.Product.Brands),
		NetWeight:    orNA(parsed.Product.Quantity),
		Manufacturer: orNA(manufacturer),
		Country:      orNA(parsed.Product.Countries),
		MRP:          domain.NotAvailableAPI,
		MfgDate:      domain.NotAvailableAPI,
		Source:       "OpenFoodFacts API",
	}, nil
}

func orNA(v string) string {
	if v == "" {
		return domain.NotAvailable
	}
	return v
}
