// Package analysis orchestrates a full investment analysis run: initial
// costs, year-1 profitability, 10-year projection, derived indicators and
// the optional location score.
package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"plex_analyzer/pkg/core/assumption"
	"plex_analyzer/pkg/core/finance"
	"plex_analyzer/pkg/core/location"
)

// Engine runs analyses. It is stateless and safe for concurrent use.
type Engine struct {
	math finance.MathProvider
}

// NewEngine creates an engine backed by the default IRR/NPV solver.
func NewEngine() *Engine {
	return &Engine{math: finance.DefaultMathProvider{}}
}

// Analyze performs the full analysis of a property under the given
// assumption set. locationAnswers may be nil; when answers are present the
// report carries a location score.
func (e *Engine) Analyze(property PropertyInput, set assumption.Set, locationAnswers map[string]string) (*Report, error) {
	if property.Price <= 0 {
		return nil, fmt.Errorf("property price must be positive, got %.2f", property.Price)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid assumptions: %w", err)
	}
	grossRent := resolveGrossRent(property)
	if grossRent <= 0 {
		return nil, fmt.Errorf("gross annual rent unknown: provide gross_annual_rent or units with monthly_rent_per_unit")
	}

	// 1. One-time acquisition costs
	costs := finance.InitialCosts(finance.CostInput{
		Price:          property.Price,
		DownPaymentPct: set.DownPaymentPct,
		NotaryFee:      set.NotaryFee,
		InspectionFee:  set.InspectionFee,
		AppraisalFee:   set.AppraisalFee,
		AccountingFee:  set.AccountingFee,
		InitialWork:    property.InitialWork,
		FinancingFees:  property.FinancingFees,
		Jurisdiction:   set.Jurisdiction,
	})

	// 2. Year-1 profitability
	yearOne := finance.AnalyzeYearOne(finance.YearOneInput{
		Price:             property.Price,
		GrossAnnualRent:   grossRent,
		VacancyRatePct:    set.VacancyRatePct,
		MunicipalTaxes:    property.MunicipalTaxes,
		SchoolTaxes:       property.SchoolTaxes,
		Insurance:         property.Insurance,
		Maintenance:       property.Maintenance,
		ManagementPct:     set.ManagementPct,
		OtherExpenses:     property.OtherExpenses,
		DownPaymentPct:    set.DownPaymentPct,
		InterestRatePct:   set.InterestRatePct,
		AmortizationYears: set.AmortizationYears,
		InitialCosts:      &costs,
	})

	// 3. Long-horizon projection from the year-1 outputs
	projection := finance.Project(finance.ProjectionInput{
		Price:               property.Price,
		GrossAnnualRent:     grossRent,
		OperatingExpenses:   yearOne.OperatingExpenses,
		YearOneNOI:          yearOne.NOI,
		VacancyRatePct:      set.VacancyRatePct,
		DownPaymentPct:      set.DownPaymentPct,
		InterestRatePct:     set.InterestRatePct,
		AmortizationYears:   set.AmortizationYears,
		RentGrowthPct:       set.RentGrowthPct,
		ExpenseInflationPct: set.ExpenseInflationPct,
		AppreciationPct:     set.AppreciationPct,
		TotalInvestment:     costs.Total,
		HorizonYears:        set.HorizonYears,
	}, e.math)

	// 4. Derived indicators
	indicators := finance.Indicators(finance.IndicatorInput{
		Price:           property.Price,
		NOI:             yearOne.NOI,
		CashFlow:        yearOne.CashFlow,
		TotalInvestment: costs.Total,
		DebtService:     yearOne.DebtService,
		NetRent:         yearOne.NetRent,
		InterestRatePct: set.InterestRatePct,
		LoanPrincipal:   yearOne.LoanPrincipal,
	})

	// 5. Optional location score
	var locationScore *location.Result
	if len(locationAnswers) > 0 {
		score := location.Score(locationAnswers)
		locationScore = &score
	}

	return &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now(),
		Property:    property,
		Assumptions: set,
		Costs:       costs,
		YearOne:     yearOne,
		Projection:  projection,
		Indicators:  indicators,
		Location:    locationScore,
	}, nil
}

// resolveGrossRent returns the explicit gross annual rent when given,
// otherwise derives it from the unit count and per-unit monthly rent.
func resolveGrossRent(property PropertyInput) float64 {
	if property.GrossAnnualRent > 0 {
		return property.GrossAnnualRent
	}
	if property.Units > 0 && property.MonthlyRentPerUnit > 0 {
		return float64(property.Units) * property.MonthlyRentPerUnit * 12
	}
	return 0
}
