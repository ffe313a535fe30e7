package finance

import "math"

// =============================================================================
// MULTI-YEAR PROJECTION
// =============================================================================

// DefaultHorizonYears is the standard projection length.
const DefaultHorizonYears = 10

// ProjectionInput bundles the inputs of the multi-year projection.
// YearOneNOI is informational; the projector recomputes NOI every year from
// the compounded rent and expense series.
type ProjectionInput struct {
	Price               float64 `json:"price"`
	GrossAnnualRent     float64 `json:"gross_annual_rent"`
	OperatingExpenses   float64 `json:"operating_expenses"`
	YearOneNOI          float64 `json:"year_one_noi"`
	VacancyRatePct      float64 `json:"vacancy_rate_pct"`
	DownPaymentPct      float64 `json:"down_payment_pct"`
	InterestRatePct     float64 `json:"interest_rate_pct"`
	AmortizationYears   int     `json:"amortization_years"`
	RentGrowthPct       float64 `json:"rent_growth_pct"`
	ExpenseInflationPct float64 `json:"expense_inflation_pct"`
	AppreciationPct     float64 `json:"appreciation_pct"`
	TotalInvestment     float64 `json:"total_investment"`
	HorizonYears        int     `json:"horizon_years"`
}

// ProjectionRow is one year of the projection table.
type ProjectionRow struct {
	Year               int     `json:"year"`
	GrossRent          float64 `json:"gross_rent"`
	NetRent            float64 `json:"net_rent"`
	Expenses           float64 `json:"expenses"`
	NOI                float64 `json:"noi"`
	DebtService        float64 `json:"debt_service"`
	CashFlow           float64 `json:"cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	PropertyValue      float64 `json:"property_value"`
	MortgageBalance    float64 `json:"mortgage_balance"`
	Equity             float64 `json:"equity"`
}

// ProjectionResult holds the projection table and the whole-horizon return
// metrics. IRRPct, NPV and CumulativeReturnPct are nil when they cannot be
// computed (no solver convergence, nil provider, or zero investment).
type ProjectionResult struct {
	Rows                []ProjectionRow `json:"rows"`
	IRRPct              *float64        `json:"irr_pct"`
	NPV                 *float64        `json:"npv"`
	CumulativeCashFlow  float64         `json:"cumulative_cash_flow"`
	FinalEquity         float64         `json:"final_equity"`
	FinalPropertyValue  float64         `json:"final_property_value"`
	CumulativeReturnPct *float64        `json:"cumulative_return_pct"`
}

// Project compounds rents, expenses and property value over the horizon and
// merges in the amortization schedule. Year 1 carries the unescalated input
// values; growth applies from year 2, each year compounding the previous
// one. The rate-of-return series assumes a sale at the horizon: entry 0 is
// the negative invested cash, the final entry adds the sale proceeds
// (property value minus mortgage balance) to that year's cash flow.
func Project(in ProjectionInput, provider MathProvider) ProjectionResult {
	horizon := in.HorizonYears
	if horizon <= 0 {
		horizon = DefaultHorizonYears
	}

	loan := in.Price * (1 - in.DownPaymentPct/100)
	if loan < 0 {
		loan = 0
	}
	schedule := AmortizationSchedule(loan, in.InterestRatePct, in.AmortizationYears, horizon)

	rows := make([]ProjectionRow, 0, horizon)
	cashflows := make([]float64, 0, horizon+1)
	cashflows = append(cashflows, -in.TotalInvestment)

	cumulative := 0.0
	grossRent := in.GrossAnnualRent
	expenses := in.OperatingExpenses
	value := in.Price

	for i := 0; i < horizon; i++ {
		if i > 0 {
			grossRent *= 1 + in.RentGrowthPct/100
			expenses *= 1 + in.ExpenseInflationPct/100
		}

		vacancyLoss := grossRent * (in.VacancyRatePct / 100)
		netRent := grossRent - vacancyLoss
		noi := netRent - expenses
		debtService := schedule[i].AnnualPayment
		cashFlow := noi - debtService
		cumulative += cashFlow

		if i > 0 {
			value *= 1 + in.AppreciationPct/100
		}

		balance := schedule[i].Balance
		equity := value - balance

		rows = append(rows, ProjectionRow{
			Year:               i + 1,
			GrossRent:          round2(grossRent),
			NetRent:            round2(netRent),
			Expenses:           round2(expenses),
			NOI:                round2(noi),
			DebtService:        round2(debtService),
			CashFlow:           round2(cashFlow),
			CumulativeCashFlow: round2(cumulative),
			PropertyValue:      round2(value),
			MortgageBalance:    round2(balance),
			Equity:             round2(equity),
		})

		// Sale assumed in the final year: add the net proceeds.
		if i < horizon-1 {
			cashflows = append(cashflows, cashFlow)
		} else {
			cashflows = append(cashflows, cashFlow+value-balance)
		}
	}

	var irrPct, npv *float64
	if provider != nil {
		if rate := provider.IRR(cashflows); rate != nil && !math.IsNaN(*rate) {
			v := round2(*rate * 100)
			irrPct = &v
		}
		if n := provider.NPV(in.InterestRatePct/100, cashflows); !math.IsNaN(n) && !math.IsInf(n, 0) {
			v := round2(n)
			npv = &v
		}
	}

	last := rows[len(rows)-1]

	var cumulativeReturnPct *float64
	if in.TotalInvestment > 0 {
		gain := cumulative + (value - in.Price) + (loan - last.MortgageBalance)
		v := round2(gain / in.TotalInvestment * 100)
		cumulativeReturnPct = &v
	}

	return ProjectionResult{
		Rows:                rows,
		IRRPct:              irrPct,
		NPV:                 npv,
		CumulativeCashFlow:  round2(cumulative),
		FinalEquity:         last.Equity,
		FinalPropertyValue:  round2(value),
		CumulativeReturnPct: cumulativeReturnPct,
	}
}
