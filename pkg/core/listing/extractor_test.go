package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Failed to parse fixture HTML: %v", err)
	}
	return doc
}

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		url      string
		expected string
	}{
		{"https://www.centris.ca/fr/triplex~a-vendre~montreal", PlatformCentris},
		{"https://duproprio.com/fr/montreal/duplex-a-vendre", PlatformDuProprio},
		{"https://www.lespacs.com/annonce/12345", PlatformLesPacs},
		{"https://www.kijiji.ca/v-maison-a-vendre/123", ""},
		{"centris.ca/fr/listing", ""}, // no scheme means no hostname
	}

	for _, tc := range cases {
		if got := DetectPlatform(tc.url); got != tc.expected {
			t.Errorf("DetectPlatform(%s): expected %q, got %q", tc.url, tc.expected, got)
		}
	}
}

func TestCleanPrice(t *testing.T) {
	cases := []struct {
		text     string
		expected float64
		ok       bool
	}{
		{"579 000 $", 579000, true},
		{"$1,250,000", 1250000, true},
		{"465000.50", 465000.50, true},
		{"Prix: 899000$", 899000, true},
		{"", 0, false},
		{"Sur demande", 0, false},
	}

	for _, tc := range cases {
		got := cleanPrice(tc.text)
		if tc.ok {
			if got == nil {
				t.Errorf("cleanPrice(%q): expected %f, got nil", tc.text, tc.expected)
			} else if *got != tc.expected {
				t.Errorf("cleanPrice(%q): expected %f, got %f", tc.text, tc.expected, *got)
			}
		} else if got != nil {
			t.Errorf("cleanPrice(%q): expected nil, got %f", tc.text, *got)
		}
	}
}

func TestBuildingTypeFromTitle(t *testing.T) {
	cases := []struct {
		title    string
		expected string
	}{
		{"Triplex à vendre à Rosemont (Montréal)", "Triplex"},
		{"Magnifique immeuble à revenus", "Immeuble"},
		{"QUADRUPLEX rare sur le Plateau", "Quadruplex"},
		{"Duplex et triplex disponibles", "Duplex"},
		{"Maison unifamiliale à vendre", ""},
	}

	for _, tc := range cases {
		if got := buildingTypeFromTitle(tc.title); got != tc.expected {
			t.Errorf("buildingTypeFromTitle(%q): expected %q, got %q", tc.title, tc.expected, got)
		}
	}
}

func TestParseCentrisFullPage(t *testing.T) {
	doc := docFromHTML(t, `
<html><head><title>Triplex à vendre à Rosemont (Montréal)</title></head><body>
<span class="ListingPrice prix">579 000 $</span>
<h2 class="property-address">6543, Rue de Normanville, Montréal</h2>
</body></html>`)

	result := Listing{Platform: displayCentris}
	parseCentris(&result, doc)

	if result.Price == nil || *result.Price != 579000 {
		t.Errorf("Expected price 579000, got %v", result.Price)
	}
	if result.Address != "6543, Rue de Normanville, Montréal" {
		t.Errorf("Expected address from heading, got %q", result.Address)
	}
	if result.BuildingType != "Triplex" {
		t.Errorf("Expected building type Triplex, got %q", result.BuildingType)
	}
}

func TestParseCentrisMetaPriceFallback(t *testing.T) {
	doc := docFromHTML(t, `
<html><head>
<meta property="og:price:amount" content="465000"/>
<title>Duplex à vendre</title>
</head><body><p>Contenu dynamique</p></body></html>`)

	result := Listing{Platform: displayCentris}
	parseCentris(&result, doc)

	if result.Price == nil || *result.Price != 465000 {
		t.Errorf("Expected meta price 465000, got %v", result.Price)
	}
	if result.BuildingType != "Duplex" {
		t.Errorf("Expected building type Duplex, got %q", result.BuildingType)
	}
}

func TestParseDuProprioFullPage(t *testing.T) {
	doc := docFromHTML(t, `
<html><head><title>Duplex à vendre à Québec</title></head><body>
<div class="listing-price">425 000 $</div>
<h1 class="listing-location">78, Rue Saint-Vallier Est, Québec</h1>
</body></html>`)

	result := Listing{Platform: displayDuProprio}
	parseDuProprio(&result, doc)

	if result.Price == nil || *result.Price != 425000 {
		t.Errorf("Expected price 425000, got %v", result.Price)
	}
	if result.Address != "78, Rue Saint-Vallier Est, Québec" {
		t.Errorf("Expected address from heading, got %q", result.Address)
	}
	if result.BuildingType != "Duplex" {
		t.Errorf("Expected building type Duplex, got %q", result.BuildingType)
	}
}

func TestParseDuProprioSpanAndMetaFallbacks(t *testing.T) {
	doc := docFromHTML(t, `
<html><head>
<meta property="og:title" content="Triplex - 12, Avenue des Pins, Montréal"/>
<title>Annonce</title>
</head><body>
<span class="price-tag">515 000 $</span>
</body></html>`)

	result := Listing{Platform: displayDuProprio}
	parseDuProprio(&result, doc)

	if result.Price == nil || *result.Price != 515000 {
		t.Errorf("Expected span price 515000, got %v", result.Price)
	}
	if result.Address != "Triplex - 12, Avenue des Pins, Montréal" {
		t.Errorf("Expected og:title address fallback, got %q", result.Address)
	}
}

func TestStructuredDataFallbackRepairsSloppyJSON(t *testing.T) {
	// Single-quoted JSON-LD goes through the repair chain.
	doc := docFromHTML(t, `
<html><head><title>Triplex à vendre</title>
<script type="application/ld+json">
{'@type': 'SingleFamilyResidence', 'name': '456, Avenue du Parc',
 'address': {'streetAddress': '456, Avenue du Parc', 'addressLocality': 'Montréal'},
 'offers': {'price': '525 000 $'}}
</script>
</head><body><p>Rien d'autre</p></body></html>`)

	result := Listing{Platform: displayCentris}
	parseCentris(&result, doc)

	if result.Price == nil || *result.Price != 525000 {
		t.Errorf("Expected structured-data price 525000, got %v", result.Price)
	}
	if result.Address != "456, Avenue du Parc" {
		t.Errorf("Expected structured-data address, got %q", result.Address)
	}
	if result.City != "Montréal" {
		t.Errorf("Expected structured-data city Montréal, got %q", result.City)
	}
}

func TestStructuredDataNumericPrice(t *testing.T) {
	doc := docFromHTML(t, `
<html><head><title>Duplex</title>
<script type="application/ld+json">
{"@type": "House", "address": {"streetAddress": "9, Rue Principale", "addressLocality": "Laval"}, "offers": {"price": 512000}}
</script>
</head><body></body></html>`)

	result := Listing{Platform: displayCentris}
	parseCentris(&result, doc)

	if result.Price == nil || *result.Price != 512000 {
		t.Errorf("Expected structured-data price 512000, got %v", result.Price)
	}
	if result.City != "Laval" {
		t.Errorf("Expected city Laval, got %q", result.City)
	}
}

func TestStructuredDataIgnoresBreadcrumbs(t *testing.T) {
	// Blocks without price or address data must not pollute the record.
	doc := docFromHTML(t, `
<html><head><title>Annonce</title>
<script type="application/ld+json">
{"@type": "BreadcrumbList", "name": "Accueil"}
</script>
</head><body></body></html>`)

	result := Listing{Platform: displayCentris}
	parseCentris(&result, doc)

	if result.Price != nil {
		t.Errorf("Expected no price from breadcrumbs, got %v", *result.Price)
	}
	if result.Address != "" {
		t.Errorf("Expected no address from breadcrumbs, got %q", result.Address)
	}
}

func TestExtractCentrisEndToEnd(t *testing.T) {
	var gotUserAgent, gotAcceptLanguage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAcceptLanguage = r.Header.Get("Accept-Language")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`
<html><head><title>Quadruplex à vendre</title></head><body>
<span class="price">930 000 $</span>
<h2 class="address">1, Rue Test, Montréal</h2>
</body></html>`))
	}))
	defer srv.Close()

	e := &Extractor{httpClient: srv.Client()}
	result := e.extractCentris(context.Background(), srv.URL)

	if result.Error != "" {
		t.Fatalf("Expected no error, got %q", result.Error)
	}
	if result.Price == nil || *result.Price != 930000 {
		t.Errorf("Expected price 930000, got %v", result.Price)
	}
	if result.BuildingType != "Quadruplex" {
		t.Errorf("Expected building type Quadruplex, got %q", result.BuildingType)
	}
	if !strings.Contains(gotUserAgent, "Chrome/120.0.0.0") {
		t.Errorf("Expected browser User-Agent, got %q", gotUserAgent)
	}
	if gotAcceptLanguage != "fr-CA,fr;q=0.9,en;q=0.8" {
		t.Errorf("Expected fr-CA Accept-Language, got %q", gotAcceptLanguage)
	}
}

func TestExtractCentrisLoadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	e := &Extractor{httpClient: srv.Client()}
	result := e.extractCentris(context.Background(), srv.URL)

	if result.Error != msgCentrisLoadFailed {
		t.Errorf("Expected load-failure message, got %q", result.Error)
	}
	if result.Price != nil {
		t.Errorf("Expected nil price on load failure, got %v", *result.Price)
	}
}

func TestExtractCentrisPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Annonce</title></head><body><p>Chargement...</p></body></html>`))
	}))
	defer srv.Close()

	e := &Extractor{httpClient: srv.Client()}
	result := e.extractCentris(context.Background(), srv.URL)

	if result.Error != msgCentrisPartial {
		t.Errorf("Expected partial-failure message, got %q", result.Error)
	}
}

func TestExtractCentrisAddressOnlyIsNotFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><h2 class="address">2, Rue Seule</h2></body></html>`))
	}))
	defer srv.Close()

	e := &Extractor{httpClient: srv.Client()}
	result := e.extractCentris(context.Background(), srv.URL)

	if result.Error != "" {
		t.Errorf("Expected no error when the address was found, got %q", result.Error)
	}
	if result.Address != "2, Rue Seule" {
		t.Errorf("Expected address, got %q", result.Address)
	}
}

func TestExtractLesPacsStaticRecord(t *testing.T) {
	e := NewExtractor()
	result := e.Extract(context.Background(), "https://www.lespacs.com/annonce/987")

	if result.Platform != "LesPACs" {
		t.Errorf("Expected platform LesPACs, got %q", result.Platform)
	}
	if result.Error != msgLesPacsInactive {
		t.Errorf("Expected inactive-platform message, got %q", result.Error)
	}
	if result.Price != nil {
		t.Errorf("Expected nil price, got %v", *result.Price)
	}
}

func TestExtractUnknownPlatform(t *testing.T) {
	e := NewExtractor()
	result := e.Extract(context.Background(), "https://www.kijiji.ca/v-maison/123")

	if result.Platform != "Inconnue" {
		t.Errorf("Expected platform Inconnue, got %q", result.Platform)
	}
	if result.Error != msgUnknownPlatform {
		t.Errorf("Expected unknown-platform message, got %q", result.Error)
	}
}
