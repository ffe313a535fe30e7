package finance

import "math"

// =============================================================================
// TRANSFER TAX ("TAXE DE BIENVENUE"): QUÉBEC 2026 SCHEDULES
// =============================================================================

// Bracket is one marginal step of a progressive transfer-tax schedule.
// Bounds strictly increase across a schedule; the terminal bound is +Inf.
type Bracket struct {
	UpperBound float64 `json:"upper_bound"`
	Rate       float64 `json:"rate"`
}

// Jurisdiction keys accepted by TransferTax. Unknown keys fall back to the
// general Québec schedule.
const (
	JurisdictionQuebec     = "quebec"
	JurisdictionMontreal   = "montreal"
	JurisdictionQuebecCity = "quebec-city"

	DefaultJurisdiction = JurisdictionQuebec
)

// 2026 provincial base schedule.
var bracketsQuebec2026 = []Bracket{
	{62_900, 0.005},
	{315_000, 0.01},
	{math.Inf(1), 0.015},
}

// 2026 Montréal schedule (extra upper brackets).
var bracketsMontreal2026 = []Bracket{
	{62_900, 0.005},
	{315_000, 0.01},
	{500_000, 0.015},
	{1_000_000, 0.02},
	{2_000_000, 0.025},
	{3_113_000, 0.035},
	{math.Inf(1), 0.04},
}

// 2026 Ville de Québec schedule.
var bracketsQuebecCity2026 = []Bracket{
	{62_900, 0.005},
	{315_000, 0.01},
	{500_000, 0.015},
	{750_000, 0.025},
	{math.Inf(1), 0.03},
}

var taxSchedules = map[string][]Bracket{
	JurisdictionQuebec:     bracketsQuebec2026,
	JurisdictionMontreal:   bracketsMontreal2026,
	JurisdictionQuebecCity: bracketsQuebecCity2026,
}

// jurisdictionLabels maps keys to their French display names.
var jurisdictionLabels = map[string]string{
	JurisdictionQuebec:     "Québec (général)",
	JurisdictionMontreal:   "Montréal",
	JurisdictionQuebecCity: "Ville de Québec",
}

// Jurisdictions returns the supported jurisdiction keys in display order.
func Jurisdictions() []string {
	return []string{JurisdictionQuebec, JurisdictionMontreal, JurisdictionQuebecCity}
}

// JurisdictionLabel returns the French display name for a jurisdiction key,
// or the key itself when unknown.
func JurisdictionLabel(key string) string {
	if label, ok := jurisdictionLabels[key]; ok {
		return label
	}
	return key
}

// TaxSchedule returns the bracket schedule for a jurisdiction key.
func TaxSchedule(jurisdiction string) []Bracket {
	if schedule, ok := taxSchedules[jurisdiction]; ok {
		return schedule
	}
	return bracketsQuebec2026
}

// TransferTax computes the progressive property-transfer tax on a purchase
// price. Each bracket taxes the slice of price above the previous bound and
// at or below its own bound, at the bracket's marginal rate. A price of 0
// yields 0. Result is rounded to the cent.
func TransferTax(price float64, jurisdiction string) float64 {
	tax := 0.0
	prevBound := 0.0
	for _, b := range TaxSchedule(jurisdiction) {
		if price <= prevBound {
			break
		}
		portion := math.Min(price, b.UpperBound) - prevBound
		tax += portion * b.Rate
		prevBound = b.UpperBound
	}
	return round2(tax)
}
