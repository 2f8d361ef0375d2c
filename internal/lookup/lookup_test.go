package lookup_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelcheck/internal/domain"
	"labelcheck/internal/lookup"
	"labelcheck/internal/port"
)

func TestNormalizeBarcode(t *testing.T) {
	assert.Equal(t, "8901234567890", lookup.NormalizeBarcode(" 8901-2345-6789-0\n"))
	assert.Equal(t, "", lookup.NormalizeBarcode("no digits here"))
}

func TestOpenFoodFacts_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/8901234567890.json", r.URL.Path)
		fmt.Fprint(w, `{"status":1,"product":{"product_name":"Choco Chips","brands":"ABC Foods","quantity":"150 g","countries":"en:india"}}`)
	}))
	defer server.Close()

	client := lookup.NewOpenFoodFactsClientWithEndpoint(server.URL, 5)
	p, err := client.Lookup(context.Background(), "8901-2345-6789-0")

	require.NoError(t, err)
	assert.Equal(t, "Choco Chips", p.ProductName)
	assert.Equal(t, "ABC Foods", p.Brand)
	assert.Equal(t, "150 g", p.NetWeight)
	assert.Equal(t, "ABC Foods", p.Manufacturer, "falls back to brand when no manufacturing places")
	assert.Equal(t, "en:india", p.Country)
	assert.Equal(t, domain.NotAvailableAPI, p.MRP)
	assert.Equal(t, domain.NotAvailableAPI, p.MfgDate)
	assert.Equal(t, "OpenFoodFacts API", p.Source)
}

func TestOpenFoodFacts_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":0,"status_verbose":"product not found"}`)
	}))
	defer server.Close()

	client := lookup.NewOpenFoodFactsClientWithEndpoint(server.URL, 5)
	_, err := client.Lookup(context.Background(), "000")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestOpenFoodFacts_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := lookup.NewOpenFoodFactsClientWithEndpoint(server.URL, 5)
	_, err := client.Lookup(context.Background(), "123")

	assert.ErrorIs(t, err, domain.ErrLookupUnavailable)
}

func TestOpenFoodFacts_InvalidBarcode(t *testing.T) {
	client := lookup.NewOpenFoodFactsClient(5)
	_, err := client.Lookup(context.Background(), "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidBarcode)
}

func writeProductsCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	content := "barcode,product_name,brand,quantity,manufacturer,country,mrp,mfg_date\n" +
		"8901234567890,Basmati Rice,Daawat,1 kg,LT Foods Ltd,India,Rs. 180,01/2024\n" +
		"1112223334445,Mystery Item,,,,,,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVDatabase_Found(t *testing.T) {
	db := lookup.NewCSVDatabase(writeProductsCSV(t))

	p, err := db.Lookup(context.Background(), "8901234567890")

	require.NoError(t, err)
	assert.Equal(t, "Basmati Rice", p.ProductName)
	assert.Equal(t, "LT Foods Ltd", p.Manufacturer)
	assert.Equal(t, "Rs. 180", p.MRP)
	assert.Equal(t, "01/2024", p.MfgDate)
	assert.Equal(t, "Local Database", p.Source)
}

func TestCSVDatabase_EmptyColumnsDegradeToNA(t *testing.T) {
	db := lookup.NewCSVDatabase(writeProductsCSV(t))

	p, err := db.Lookup(context.Background(), "1112223334445")

	require.NoError(t, err)
	assert.Equal(t, "Mystery Item", p.ProductName)
	assert.Equal(t, domain.NotAvailable, p.Brand)
	assert.Equal(t, domain.NotAvailable, p.MRP)
}

func TestCSVDatabase_UnknownBarcode(t *testing.T) {
	db := lookup.NewCSVDatabase(writeProductsCSV(t))
	_, err := db.Lookup(context.Background(), "9999999999999")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCSVDatabase_MissingFile(t *testing.T) {
	db := lookup.NewCSVDatabase(filepath.Join(t.TempDir(), "nope.csv"))
	_, err := db.Lookup(context.Background(), "8901234567890")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

type stubLookup struct {
	product *domain.BarcodeProduct
	err     error
	calls   int
}

func (s *stubLookup) Lookup(_ context.Context, _ string) (*domain.BarcodeProduct, error) {
	s.calls++
	return s.product, s.err
}

func TestChain_FirstSourceWins(t *testing.T) {
	first := &stubLookup{product: &domain.BarcodeProduct{ProductName: "Choco Chips"}}
	second := &stubLookup{product: &domain.BarcodeProduct{ProductName: "Should Not Be Used"}}
	chain := lookup.NewChain([]port.ProductLookup{first, second}, []string{"api", "local"})

	p, err := chain.Lookup(context.Background(), "123")

	require.NoError(t, err)
	assert.Equal(t, "Choco Chips", p.ProductName)
	assert.Zero(t, second.calls)
}

func TestChain_UnnamedResultFallsThrough(t *testing.T) {
	first := &stubLookup{product: &domain.BarcodeProduct{ProductName: domain.NotAvailable}}
	second := &stubLookup{product: &domain.BarcodeProduct{ProductName: "Basmati Rice"}}
	chain := lookup.NewChain([]port.ProductLookup{first, second}, []string{"api", "local"})

	p, err := chain.Lookup(context.Background(), "123")

	require.NoError(t, err)
	assert.Equal(t, "Basmati Rice", p.ProductName)
}

func TestChain_FinalSourceAcceptedAsIs(t *testing.T) {
	first := &stubLookup{err: domain.ErrProductNotFound}
	second := &stubLookup{product: &domain.BarcodeProduct{ProductName: domain.NotAvailable, MRP: "45"}}
	chain := lookup.NewChain([]port.ProductLookup{first, second}, []string{"api", "local"})

	p, err := chain.Lookup(context.Background(), "123")

	require.NoError(t, err)
	assert.Equal(t, "45", p.MRP)
}

func TestChain_AllMiss(t *testing.T) {
	chain := lookup.NewChain([]port.ProductLookup{
		&stubLookup{err: domain.ErrProductNotFound},
		&stubLookup{err: domain.ErrProductNotFound},
	}, []string{"api", "local"})

	_, err := chain.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestChain_AllUnavailable(t *testing.T) {
	unavailable := errors.New("dial tcp: connection refused")
	chain := lookup.NewChain([]port.ProductLookup{
		&stubLookup{err: fmt.Errorf("api: %w", domain.ErrLookupUnavailable)},
		&stubLookup{err: unavailable},
	}, []string{"api", "local"})

	_, err := chain.Lookup(context.Background(), "123")
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)
}
