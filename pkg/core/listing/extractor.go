package listing

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"plex_analyzer/pkg/core/utils"
)

const (
	fetchTimeout = 15 * time.Second

	// Listing platforms block obvious bot agents; present a browser.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"
	acceptLanguage = "fr-CA,fr;q=0.9,en;q=0.8"
)

// Extractor downloads listing pages and extracts property records.
type Extractor struct {
	httpClient *http.Client
}

// NewExtractor creates an extractor with the default 15-second timeout.
func NewExtractor() *Extractor {
	return &Extractor{
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// Extract detects the platform from the URL and extracts a best-effort
// listing record. Business failures (unknown platform, unreachable page,
// page without recognizable data) are reported through the record's Error
// field, never as a Go error.
func (e *Extractor) Extract(ctx context.Context, rawURL string) Listing {
	switch DetectPlatform(rawURL) {
	case PlatformCentris:
		return e.extractCentris(ctx, rawURL)
	case PlatformDuProprio:
		return e.extractDuProprio(ctx, rawURL)
	case PlatformLesPacs:
		return Listing{Platform: displayLesPacs, URL: rawURL, Error: msgLesPacsInactive}
	default:
		return Listing{Platform: displayUnknown, URL: rawURL, Error: msgUnknownPlatform}
	}
}

func (e *Extractor) extractCentris(ctx context.Context, rawURL string) Listing {
	result := Listing{Platform: displayCentris, URL: rawURL}

	doc, err := e.fetchDocument(ctx, rawURL)
	if err != nil {
		result.Error = msgCentrisLoadFailed
		return result
	}

	parseCentris(&result, doc)
	if result.Price == nil && result.Address == "" {
		result.Error = msgCentrisPartial
	}
	return result
}

func (e *Extractor) extractDuProprio(ctx context.Context, rawURL string) Listing {
	result := Listing{Platform: displayDuProprio, URL: rawURL}

	doc, err := e.fetchDocument(ctx, rawURL)
	if err != nil {
		result.Error = msgDuProprioLoadFailed
		return result
	}

	parseDuProprio(&result, doc)
	if result.Price == nil && result.Address == "" {
		result.Error = msgDuProprioPartial
	}
	return result
}

// fetchDocument downloads a listing page and parses it into a DOM.
func (e *Extractor) fetchDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing page request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}
	return doc, nil
}

// parseCentris fills the record from a Centris property page.
func parseCentris(result *Listing, doc *goquery.Document) {
	// 1. Price from a price-class span
	if span := findFirstByClass(doc, "span", "price", "prix"); span != nil {
		result.Price = cleanPrice(span.Text())
	}

	// 2. Address from a heading
	if heading := findFirstByClass(doc, "h2", "address", "adresse"); heading != nil {
		result.Address = strings.TrimSpace(heading.Text())
	}

	// 3. Meta tag fallback for the price
	if result.Price == nil {
		result.Price = cleanPrice(metaContent(doc, "og:price:amount"))
	}

	// 4. Building type from the page title
	result.BuildingType = buildingTypeFromTitle(doc.Find("title").First().Text())

	// 5. Structured-data fallback for whatever is still missing
	applyStructuredData(result, doc)
}

// parseDuProprio fills the record from a DuProprio property page.
func parseDuProprio(result *Listing, doc *goquery.Document) {
	// 1. Price from a price-class div, then any price span
	priceEl := findFirstByClass(doc, "div", "price", "listing-price")
	if priceEl == nil {
		priceEl = findFirstByClass(doc, "span", "price")
	}
	if priceEl != nil {
		result.Price = cleanPrice(priceEl.Text())
	}

	// 2. Address from the listing heading
	if heading := findFirstByClass(doc, "h1", "address", "listing-location"); heading != nil {
		result.Address = strings.TrimSpace(heading.Text())
	}

	// 3. Meta tag fallbacks
	if result.Price == nil {
		result.Price = cleanPrice(metaContent(doc, "og:price:amount"))
	}
	if result.Address == "" {
		result.Address = strings.TrimSpace(metaContent(doc, "og:title"))
	}

	// 4. Building type from the page title
	result.BuildingType = buildingTypeFromTitle(doc.Find("title").First().Text())

	// 5. Structured-data fallback for whatever is still missing
	applyStructuredData(result, doc)
}

// findFirstByClass returns the first element of the given tag whose class
// attribute contains one of the keywords, case-insensitively.
func findFirstByClass(doc *goquery.Document, tag string, keywords ...string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find(tag).EachWithBreak(func(i int, s *goquery.Selection) bool {
		class := strings.ToLower(s.AttrOr("class", ""))
		for _, keyword := range keywords {
			if strings.Contains(class, keyword) {
				found = s
				return false
			}
		}
		return true
	})
	return found
}

// metaContent returns the content attribute of a meta tag by property name.
func metaContent(doc *goquery.Document, property string) string {
	return doc.Find(fmt.Sprintf("meta[property=%q]", property)).First().AttrOr("content", "")
}

// =============================================================================
// STRUCTURED DATA (JSON-LD) FALLBACK
// =============================================================================

// structuredListing models the subset of schema.org listing markup we read.
type structuredListing struct {
	Type    string            `json:"@type"`
	Name    string            `json:"name"`
	Address structuredAddress `json:"address"`
	Offers  structuredOffer   `json:"offers"`
}

type structuredAddress struct {
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
}

type structuredOffer struct {
	// Price appears as a number on some pages and display text on others.
	Price interface{} `json:"price"`
}

// relevant reports whether the block describes a property rather than
// unrelated page markup such as breadcrumbs.
func (s structuredListing) relevant() bool {
	if s.Offers.Price != nil {
		return true
	}
	return s.Address.StreetAddress != "" || s.Address.AddressLocality != ""
}

// applyStructuredData fills missing price/address/city fields from
// <script type="application/ld+json"> blocks. Listing sites emit sloppy
// JSON-LD, so blocks go through the lenient decode chain.
func applyStructuredData(result *Listing, doc *goquery.Document) {
	if result.Price != nil && result.Address != "" {
		return
	}

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		block := strings.TrimSpace(s.Text())
		if block == "" {
			return true
		}
		for _, candidate := range decodeStructuredBlock(block) {
			if !candidate.relevant() {
				continue
			}
			if result.Price == nil {
				result.Price = coercePrice(candidate.Offers.Price)
			}
			if result.Address == "" {
				if candidate.Address.StreetAddress != "" {
					result.Address = candidate.Address.StreetAddress
				} else if candidate.Name != "" {
					result.Address = candidate.Name
				}
			}
			if result.City == "" {
				result.City = candidate.Address.AddressLocality
			}
		}
		return result.Price == nil || result.Address == ""
	})
}

// decodeStructuredBlock parses one JSON-LD block, which may hold a single
// object or an array of objects.
func decodeStructuredBlock(block string) []structuredListing {
	var single structuredListing
	if err := utils.DecodeLenient(block, &single); err == nil {
		return []structuredListing{single}
	}
	var many []structuredListing
	if err := utils.DecodeLenient(block, &many); err == nil {
		return many
	}
	return nil
}

// coercePrice converts a JSON-LD price value (number or display text) to a
// positive amount.
func coercePrice(raw interface{}) *float64 {
	switch value := raw.(type) {
	case float64:
		if value > 0 {
			v := value
			return &v
		}
	case string:
		return cleanPrice(value)
	}
	return nil
}
