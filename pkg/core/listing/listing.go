// Package listing extracts property data from Québec real-estate listing
// pages (Centris, DuProprio, LesPACs). Extraction is best effort: every
// failure path fills the record's Error message instead of aborting, so the
// caller can always fall back to manual entry.
package listing

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Platform keys returned by DetectPlatform.
const (
	PlatformCentris   = "centris"
	PlatformDuProprio = "duproprio"
	PlatformLesPacs   = "lespacs"
)

// Display names carried in the extracted record.
const (
	displayCentris   = "Centris"
	displayDuProprio = "DuProprio"
	displayLesPacs   = "LesPACs"
	displayUnknown   = "Inconnue"
)

// User-facing extraction messages, in the caller's language.
const (
	msgCentrisLoadFailed = "Impossible de charger la page Centris. " +
		"Le site utilise du JavaScript dynamique. " +
		"Veuillez saisir les données manuellement."
	msgCentrisPartial = "Le scraping de Centris a partiellement échoué (contenu dynamique). " +
		"Veuillez compléter les données manuellement."
	msgDuProprioLoadFailed = "Impossible de charger la page DuProprio. " +
		"Veuillez saisir les données manuellement."
	msgDuProprioPartial = "Le scraping de DuProprio a partiellement échoué. " +
		"Veuillez compléter les données manuellement."
	msgLesPacsInactive = "LesPACs n'est plus actif pour l'immobilier résidentiel. " +
		"Veuillez saisir les données manuellement."
	msgUnknownPlatform = "Plateforme non reconnue. " +
		"Plateformes supportées : Centris, DuProprio, LesPACs. " +
		"Veuillez saisir les données manuellement."
)

// buildingTypes is the vocabulary sniffed from page titles, most specific
// first so "Triplex" wins over the bare "Plex" suffix.
var buildingTypes = []string{"Duplex", "Triplex", "Quadruplex", "Quintuplex", "Immeuble", "Plex"}

// Listing is the best-effort record extracted from a listing page. Pointer
// fields stay nil when the page did not yield the value. Error carries the
// user-facing failure message when extraction could not complete.
type Listing struct {
	Platform     string   `json:"platform"`
	URL          string   `json:"url"`
	Price        *float64 `json:"price"`
	BuildingType string   `json:"building_type,omitempty"`
	Units        *int     `json:"units"`
	Address      string   `json:"address,omitempty"`
	City         string   `json:"city,omitempty"`
	GrossRevenue *float64 `json:"gross_revenue"`
	Expenses     *float64 `json:"expenses"`
	Error        string   `json:"error,omitempty"`
}

// DetectPlatform identifies the listing platform from the URL hostname.
// Returns the empty string for unrecognized hosts.
func DetectPlatform(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	switch {
	case strings.Contains(host, "centris"):
		return PlatformCentris
	case strings.Contains(host, "duproprio"):
		return PlatformDuProprio
	case strings.Contains(host, "lespacs"):
		return PlatformLesPacs
	}
	return ""
}

var nonPriceChars = regexp.MustCompile(`[^\d,.]`)

// cleanPrice pulls a numeric price out of display text such as "579 000 $"
// or "$1,250,000". Returns nil when no number survives the cleanup.
func cleanPrice(text string) *float64 {
	if text == "" {
		return nil
	}
	digits := nonPriceChars.ReplaceAllString(text, "")
	digits = strings.ReplaceAll(digits, ",", "")
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return nil
	}
	return &value
}

// buildingTypeFromTitle scans a page title for the plex vocabulary and
// returns the first canonical match.
func buildingTypeFromTitle(title string) string {
	lower := strings.ToLower(title)
	for _, word := range buildingTypes {
		if strings.Contains(lower, strings.ToLower(word)) {
			return word
		}
	}
	return ""
}
