package analysis

import (
	"time"

	"plex_analyzer/pkg/core/assumption"
	"plex_analyzer/pkg/core/finance"
	"plex_analyzer/pkg/core/location"
)

// PropertyInput describes the property under analysis, as entered by the
// user or prefilled from an extracted listing record. Gross rent can be
// given directly or derived from Units and MonthlyRentPerUnit.
type PropertyInput struct {
	Price              float64 `json:"price"`
	Address            string  `json:"address,omitempty"`
	City               string  `json:"city,omitempty"`
	BuildingType       string  `json:"building_type,omitempty"`
	Units              int     `json:"units,omitempty"`
	GrossAnnualRent    float64 `json:"gross_annual_rent,omitempty"`
	MonthlyRentPerUnit float64 `json:"monthly_rent_per_unit,omitempty"`
	MunicipalTaxes     float64 `json:"municipal_taxes"`
	SchoolTaxes        float64 `json:"school_taxes"`
	Insurance          float64 `json:"insurance"`
	Maintenance        float64 `json:"maintenance"`
	OtherExpenses      float64 `json:"other_expenses"`
	InitialWork        float64 `json:"initial_work"`
	FinancingFees      float64 `json:"financing_fees"`
}

// Report is the complete output of one analysis run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Property    PropertyInput  `json:"property"`
	Assumptions assumption.Set `json:"assumptions"`

	Costs      finance.CostBreakdown    `json:"costs"`
	YearOne    finance.YearOneResult    `json:"year_one"`
	Projection finance.ProjectionResult `json:"projection"`
	Indicators finance.IndicatorResult  `json:"indicators"`

	// Location is present only when criteria answers were supplied.
	Location *location.Result `json:"location,omitempty"`
}
