// Package assumption holds the financial assumption set shared by the
// analysis engine, the HTTP API and the CLI: financing terms, growth rates
// and one-time fee defaults, with YAML loading and per-request overrides.
package assumption

import (
	"fmt"

	"plex_analyzer/pkg/core/finance"
)

// Set is a complete group of financial assumptions. The zero value is not
// usable; start from Defaults().
type Set struct {
	InterestRatePct     float64 `json:"interest_rate_pct" yaml:"interest_rate_pct"`
	AmortizationYears   int     `json:"amortization_years" yaml:"amortization_years"`
	DownPaymentPct      float64 `json:"down_payment_pct" yaml:"down_payment_pct"`
	VacancyRatePct      float64 `json:"vacancy_rate_pct" yaml:"vacancy_rate_pct"`
	ManagementPct       float64 `json:"management_pct" yaml:"management_pct"`
	RentGrowthPct       float64 `json:"rent_growth_pct" yaml:"rent_growth_pct"`
	ExpenseInflationPct float64 `json:"expense_inflation_pct" yaml:"expense_inflation_pct"`
	AppreciationPct     float64 `json:"appreciation_pct" yaml:"appreciation_pct"`
	HorizonYears        int     `json:"horizon_years" yaml:"horizon_years"`
	Jurisdiction        string  `json:"jurisdiction" yaml:"jurisdiction"`

	NotaryFee     float64 `json:"notary_fee" yaml:"notary_fee"`
	InspectionFee float64 `json:"inspection_fee" yaml:"inspection_fee"`
	AppraisalFee  float64 `json:"appraisal_fee" yaml:"appraisal_fee"`
	AccountingFee float64 `json:"accounting_fee" yaml:"accounting_fee"`
}

// Defaults returns the standard assumption set: 20% down at 5% over 25
// years, 5% vacancy, 3%/2%/3% growth rates, 10-year horizon, general
// Québec transfer-tax schedule.
func Defaults() Set {
	return Set{
		InterestRatePct:     5.0,
		AmortizationYears:   finance.DefaultAmortizationYears,
		DownPaymentPct:      20.0,
		VacancyRatePct:      5.0,
		ManagementPct:       0.0,
		RentGrowthPct:       3.0,
		ExpenseInflationPct: 2.0,
		AppreciationPct:     3.0,
		HorizonYears:        finance.DefaultHorizonYears,
		Jurisdiction:        finance.DefaultJurisdiction,
		NotaryFee:           finance.DefaultNotaryFee,
		InspectionFee:       finance.DefaultInspectionFee,
		AppraisalFee:        finance.DefaultAppraisalFee,
		AccountingFee:       finance.DefaultAccountingFee,
	}
}

// Overrides carries optional per-request replacements for Set fields. Nil
// fields leave the base value untouched.
type Overrides struct {
	InterestRatePct     *float64 `json:"interest_rate_pct,omitempty"`
	AmortizationYears   *int     `json:"amortization_years,omitempty"`
	DownPaymentPct      *float64 `json:"down_payment_pct,omitempty"`
	VacancyRatePct      *float64 `json:"vacancy_rate_pct,omitempty"`
	ManagementPct       *float64 `json:"management_pct,omitempty"`
	RentGrowthPct       *float64 `json:"rent_growth_pct,omitempty"`
	ExpenseInflationPct *float64 `json:"expense_inflation_pct,omitempty"`
	AppreciationPct     *float64 `json:"appreciation_pct,omitempty"`
	HorizonYears        *int     `json:"horizon_years,omitempty"`
	Jurisdiction        *string  `json:"jurisdiction,omitempty"`
	NotaryFee           *float64 `json:"notary_fee,omitempty"`
	InspectionFee       *float64 `json:"inspection_fee,omitempty"`
	AppraisalFee        *float64 `json:"appraisal_fee,omitempty"`
	AccountingFee       *float64 `json:"accounting_fee,omitempty"`
}

// Apply overlays the non-nil override fields onto the set.
func (s *Set) Apply(o Overrides) {
	if o.InterestRatePct != nil {
		s.InterestRatePct = *o.InterestRatePct
	}
	if o.AmortizationYears != nil {
		s.AmortizationYears = *o.AmortizationYears
	}
	if o.DownPaymentPct != nil {
		s.DownPaymentPct = *o.DownPaymentPct
	}
	if o.VacancyRatePct != nil {
		s.VacancyRatePct = *o.VacancyRatePct
	}
	if o.ManagementPct != nil {
		s.ManagementPct = *o.ManagementPct
	}
	if o.RentGrowthPct != nil {
		s.RentGrowthPct = *o.RentGrowthPct
	}
	if o.ExpenseInflationPct != nil {
		s.ExpenseInflationPct = *o.ExpenseInflationPct
	}
	if o.AppreciationPct != nil {
		s.AppreciationPct = *o.AppreciationPct
	}
	if o.HorizonYears != nil {
		s.HorizonYears = *o.HorizonYears
	}
	if o.Jurisdiction != nil {
		s.Jurisdiction = *o.Jurisdiction
	}
	if o.NotaryFee != nil {
		s.NotaryFee = *o.NotaryFee
	}
	if o.InspectionFee != nil {
		s.InspectionFee = *o.InspectionFee
	}
	if o.AppraisalFee != nil {
		s.AppraisalFee = *o.AppraisalFee
	}
	if o.AccountingFee != nil {
		s.AccountingFee = *o.AccountingFee
	}
}

// Validate checks the programming contract of the set. Unknown jurisdiction
// keys are allowed; the tax calculator falls back to the general schedule.
func (s Set) Validate() error {
	if s.InterestRatePct < 0 || s.InterestRatePct > 100 {
		return fmt.Errorf("interest rate %.2f%% out of range [0, 100]", s.InterestRatePct)
	}
	validAmortization := false
	for _, years := range finance.AmortizationYearOptions {
		if s.AmortizationYears == years {
			validAmortization = true
			break
		}
	}
	if !validAmortization {
		return fmt.Errorf("amortization %d years not in %v", s.AmortizationYears, finance.AmortizationYearOptions)
	}
	if s.DownPaymentPct < 0 || s.DownPaymentPct > 100 {
		return fmt.Errorf("down payment %.2f%% out of range [0, 100]", s.DownPaymentPct)
	}
	if s.VacancyRatePct < 0 || s.VacancyRatePct > 100 {
		return fmt.Errorf("vacancy rate %.2f%% out of range [0, 100]", s.VacancyRatePct)
	}
	if s.ManagementPct < 0 || s.ManagementPct > 100 {
		return fmt.Errorf("management fee %.2f%% out of range [0, 100]", s.ManagementPct)
	}
	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"rent growth", s.RentGrowthPct},
		{"expense inflation", s.ExpenseInflationPct},
		{"appreciation", s.AppreciationPct},
	} {
		if rate.value < -100 || rate.value > 100 {
			return fmt.Errorf("%s %.2f%% out of range [-100, 100]", rate.name, rate.value)
		}
	}
	if s.HorizonYears < 1 || s.HorizonYears > 50 {
		return fmt.Errorf("horizon %d years out of range [1, 50]", s.HorizonYears)
	}
	for _, fee := range []struct {
		name  string
		value float64
	}{
		{"notary fee", s.NotaryFee},
		{"inspection fee", s.InspectionFee},
		{"appraisal fee", s.AppraisalFee},
		{"accounting fee", s.AccountingFee},
	} {
		if fee.value < 0 {
			return fmt.Errorf("%s cannot be negative", fee.name)
		}
	}
	return nil
}
