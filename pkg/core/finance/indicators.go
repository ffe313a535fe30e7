package finance

import "fmt"

// =============================================================================
// DERIVED INDICATORS
// =============================================================================

// Sensitivity offsets, in percentage points around the base rate.
var sensitivityDeltas = []float64{-1.0, -0.5, 0.5, 1.0}

// IndicatorInput bundles the year-1 outputs the indicators derive from.
type IndicatorInput struct {
	Price           float64 `json:"price"`
	NOI             float64 `json:"noi"`
	CashFlow        float64 `json:"cash_flow"`
	TotalInvestment float64 `json:"total_investment"`
	DebtService     float64 `json:"debt_service"`
	NetRent         float64 `json:"net_rent"`
	InterestRatePct float64 `json:"interest_rate_pct"`
	LoanPrincipal   float64 `json:"loan_principal"`
}

// IndicatorResult holds the derived ratios. PaybackYears is nil and
// PaybackInfinite true when the property never recovers the invested cash
// (cash flow ≤ 0). RateSensitivity maps a formatted rate ("5.5%") to the
// cash flow at that rate; offsets driving the rate to 0 or below are
// omitted.
type IndicatorResult struct {
	CapRatePct      float64            `json:"cap_rate_pct"`
	CashOnCashPct   float64            `json:"cash_on_cash_pct"`
	CoverageRatio   float64            `json:"coverage_ratio"`
	LTVPct          float64            `json:"ltv_pct"`
	PaybackYears    *float64           `json:"payback_years"`
	PaybackInfinite bool               `json:"payback_infinite"`
	GRM             float64            `json:"grm"`
	RateSensitivity map[string]float64 `json:"rate_sensitivity"`
}

// Indicators recomputes the display ratios from year-1 outputs and builds
// the interest-rate sensitivity table.
func Indicators(in IndicatorInput) IndicatorResult {
	capRate := safeDiv(in.NOI, in.Price) * 100
	cashOnCash := safeDiv(in.CashFlow, in.TotalInvestment) * 100
	coverage := safeDiv(in.NetRent, in.DebtService)
	ltv := safeDiv(in.LoanPrincipal, in.Price) * 100

	// Payback period in years, infinite when cash flow never turns positive.
	var payback *float64
	paybackInfinite := true
	if in.CashFlow > 0 {
		v := round1(in.TotalInvestment / in.CashFlow)
		payback = &v
		paybackInfinite = false
	}

	// Gross rent multiplier. The divisor grosses NOI back up by a flat 5%
	// vacancy assumption regardless of the configured vacancy rate.
	grm := 0.0
	if in.NOI > 0 {
		grm = in.Price / (in.NOI / (1 - 0.05))
	}

	// Rate sensitivity: shifted payments re-price at the default 25-year
	// amortization.
	sensitivity := make(map[string]float64, len(sensitivityDeltas))
	for _, delta := range sensitivityDeltas {
		rate := in.InterestRatePct + delta
		if rate <= 0 {
			continue
		}
		annualPayment := MonthlyPayment(in.LoanPrincipal, rate, DefaultAmortizationYears) * 12
		sensitivity[fmt.Sprintf("%.1f%%", rate)] = round2(in.NOI - annualPayment)
	}

	return IndicatorResult{
		CapRatePct:      round2(capRate),
		CashOnCashPct:   round2(cashOnCash),
		CoverageRatio:   round3(coverage),
		LTVPct:          round1(ltv),
		PaybackYears:    payback,
		PaybackInfinite: paybackInfinite,
		GRM:             round2(grm),
		RateSensitivity: sensitivity,
	}
}
