// Package scrape fetches storefront product pages and assembles label text
// from the product details found in the page markup.
package scrape

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"labelcheck/internal/domain"
)

const (
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	maxManufacturerLen = 200
)

var (
	amazonTitleRe  = regexp.MustCompile(`(?is)<span[^>]*id="productTitle"[^>]*>(.+?)</span>`)
	amazonBylineRe = regexp.MustCompile(`(?is)<a[^>]*id="bylineInfo"[^>]*>(.+?)</a>`)
	amazonPriceRe  = regexp.MustCompile(`(?is)<span[^>]*class="a-price-whole"[^>]*>([\d,.]+)`)

	flipkartTitleRe = regexp.MustCompile(`(?is)<span[^>]*class="B_NuCI"[^>]*>(.+?)</span>`)
	flipkartBrandRe = regexp.MustCompile(`(?is)<span[^>]*class="G6XhRU"[^>]*>(.+?)</span>`)
	flipkartPriceRe = regexp.MustCompile(`(?is)<div[^>]*class="_30jeq3[^"]*"[^>]*>[^\d]*([\d,.]+)`)

	quantityRe     = regexp.MustCompile(`(?i)(\d+\s*(?:g|ml|kg|L|pcs))`)
	bylinePrefixRe = regexp.MustCompile(`(?i)^(?:Visit\s*the\s*|Store\s*|Brand:\s*)`)

	manufacturerRe = regexp.MustCompile(`(?is)(?:Manufactured\s*By|Packed\s*By|Importer|Marketer|Seller|Address|Marketed\s*By)\s*[:\s\-]*\s*(.+?)(?:\s{2,}|<br>|<div|<span|</p>|\z)`)
	junkCharsRe    = regexp.MustCompile(`[<>"{}|\\/]`)
	deviceModalRe  = regexp.MustCompile(`(?i)selections\?deviceType=.+modal`)
	tagRe          = regexp.MustCompile(`<[^>]+>`)
	multiSpaceRe   = regexp.MustCompile(`\s{2,}`)
)

// Scraper implements port.LabelScraper over plain HTTP page fetches for the
// two supported storefronts.
type Scraper struct {
	client *http.Client
}

// NewScraper creates a Scraper with the given request timeout.
func NewScraper(timeoutSecs int) *Scraper {
	timeout := time.Duration(timeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Scraper{client: &http.Client{Timeout: timeout}}
}

type product struct {
	name         string
	mrp          string
	netQuantity  string
	brand        string
	manufacturer string
}

// Scrape fetches the product page and assembles label text from it. URLs
// outside the supported storefronts are rejected before any network work.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (string, error) {
	isAmazon := strings.Contains(rawURL, "amazon")
	isFlipkart := strings.Contains(rawURL, "flipkart")
	if !isAmazon && !isFlipkart {
		return "", fmt.Errorf("%w: only Amazon and Flipkart links are supported", domain.ErrUnsupportedStorefront)
	}

	page, err := s.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	var p product
	if isAmazon {
		p = parseAmazon(page)
	} else {
		p = parseFlipkart(page)
	}
	p.manufacturer = extractManufacturer(page)
	if p.manufacturer == "" {
		// Brand is the closest public proxy when the page hides the
		// packer declaration.
		p.manufacturer = p.brand
	}

	return assembleText(p), nil
}

func (s *Scraper) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPageFetchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-IN,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPageFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrPageFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading page: %v", domain.ErrPageFetchFailed, err)
	}
	return string(body), nil
}

func parseAmazon(page string) product {
	p := product{
		name: textOf(amazonTitleRe, page),
		mrp:  textOf(amazonPriceRe, page),
	}
	if byline := textOf(amazonBylineRe, page); byline != "" {
		p.brand = strings.TrimSpace(bylinePrefixRe.ReplaceAllString(byline, ""))
	}
	p.netQuantity = textOf(quantityRe, page)
	return p
}

func parseFlipkart(page string) product {
	return product{
		name:        textOf(flipkartTitleRe, page),
		mrp:         textOf(flipkartPriceRe, page),
		brand:       textOf(flipkartBrandRe, page),
		netQuantity: textOf(quantityRe, page),
	}
}

// textOf returns the first capture group stripped of markup and entities.
func textOf(re *regexp.Regexp, page string) string {
	m := re.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	v := tagRe.ReplaceAllString(m[1], " ")
	v = html.UnescapeString(v)
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(v, " "))
}

func extractManufacturer(page string) string {
	m := manufacturerRe.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	v := tagRe.ReplaceAllString(m[1], " ")
	v = html.UnescapeString(v)
	v = strings.ReplaceAll(v, "\n", " ")
	v = junkCharsRe.ReplaceAllString(v, " ")
	v = deviceModalRe.ReplaceAllString(v, "")
	v = strings.TrimSpace(multiSpaceRe.ReplaceAllString(v, " "))
	if len(v) > maxManufacturerLen {
		v = v[:maxManufacturerLen]
	}
	return v
}

func assembleText(p product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product Name: %s\n", p.name)
	fmt.Fprintf(&b, "MRP: Rs %s (Inclusive of all taxes)\n", p.mrp)
	fmt.Fprintf(&b, "Net Quantity: %s\n", p.netQuantity)
	if p.manufacturer != "" {
		fmt.Fprintf(&b, "Manufacturer: %s\n", p.manufacturer)
	}
	return b.String()
}
