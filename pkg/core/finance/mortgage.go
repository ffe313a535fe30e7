package finance

import "math"

// =============================================================================
// DEBT SERVICE (MORTGAGE)
// =============================================================================

// DefaultAmortizationYears matches the most common Canadian mortgage term.
const DefaultAmortizationYears = 25

// AmortizationYearOptions are the amortization periods offered to callers.
var AmortizationYearOptions = []int{15, 20, 25, 30}

// AmortizationRow is one year of a loan schedule, aggregated from 12 monthly
// steps. Balance is the year-end remaining principal, floored at 0.
type AmortizationRow struct {
	Year          int     `json:"year"`
	AnnualPayment float64 `json:"annual_payment"`
	Interest      float64 `json:"interest"`
	Principal     float64 `json:"principal"`
	Balance       float64 `json:"balance"`
}

// MonthlyPayment computes the fixed monthly mortgage payment using the
// standard annuity formula with monthly compounding. A non-positive
// principal or rate returns 0 rather than an error. Result is rounded to
// the cent.
func MonthlyPayment(principal, annualRatePct float64, amortizationYears int) float64 {
	if principal <= 0 || annualRatePct <= 0 {
		return 0.0
	}
	if amortizationYears <= 0 {
		amortizationYears = DefaultAmortizationYears
	}
	monthlyRate := annualRatePct / 100 / 12
	n := float64(amortizationYears * 12)
	growth := math.Pow(1+monthlyRate, n)
	payment := principal * (monthlyRate * growth) / (growth - 1)
	return round2(payment)
}

// AmortizationSchedule simulates the loan month by month and aggregates one
// row per year over horizonYears (which may be shorter than the amortization
// period). The internal balance can drift a few cents negative in the final
// amortization year; the displayed balance is clamped at 0.
func AmortizationSchedule(principal, annualRatePct float64, amortizationYears, horizonYears int) []AmortizationRow {
	monthlyRate := annualRatePct / 100 / 12
	payment := MonthlyPayment(principal, annualRatePct, amortizationYears)

	balance := principal
	rows := make([]AmortizationRow, 0, horizonYears)
	for year := 1; year <= horizonYears; year++ {
		annualInterest := 0.0
		annualPrincipal := 0.0
		for month := 0; month < 12; month++ {
			interest := balance * monthlyRate
			principalPart := payment - interest
			annualInterest += interest
			annualPrincipal += principalPart
			balance -= principalPart
		}
		rows = append(rows, AmortizationRow{
			Year:          year,
			AnnualPayment: round2(payment * 12),
			Interest:      round2(annualInterest),
			Principal:     round2(annualPrincipal),
			Balance:       round2(math.Max(balance, 0)),
		})
	}
	return rows
}
