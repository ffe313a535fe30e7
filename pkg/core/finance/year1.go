package finance

// =============================================================================
// YEAR-1 ANALYSIS
// =============================================================================

// YearOneInput bundles the raw inputs of the first-year analysis.
// InitialCosts is optional; when present, its total replaces the raw down
// payment as the invested-cash base of the return ratios.
type YearOneInput struct {
	Price             float64        `json:"price"`
	GrossAnnualRent   float64        `json:"gross_annual_rent"`
	VacancyRatePct    float64        `json:"vacancy_rate_pct"`
	MunicipalTaxes    float64        `json:"municipal_taxes"`
	SchoolTaxes       float64        `json:"school_taxes"`
	Insurance         float64        `json:"insurance"`
	Maintenance       float64        `json:"maintenance"`
	ManagementPct     float64        `json:"management_pct"`
	OtherExpenses     float64        `json:"other_expenses"`
	DownPaymentPct    float64        `json:"down_payment_pct"`
	InterestRatePct   float64        `json:"interest_rate_pct"`
	AmortizationYears int            `json:"amortization_years"`
	InitialCosts      *CostBreakdown `json:"initial_costs,omitempty"`
}

// YearOneResult holds the first-year metrics. Monetary fields are rounded to
// the cent, CoverageRatio to 3 decimals, LTVPct to 1 decimal, percentages to
// 2 decimals.
type YearOneResult struct {
	GrossRent         float64 `json:"gross_rent"`
	VacancyLoss       float64 `json:"vacancy_loss"`
	NetRent           float64 `json:"net_rent"`
	OperatingExpenses float64 `json:"operating_expenses"`
	NOI               float64 `json:"noi"`
	DebtService       float64 `json:"debt_service"`
	CashFlow          float64 `json:"cash_flow"`
	LoanPrincipal     float64 `json:"loan_principal"`
	CoverageRatio     float64 `json:"coverage_ratio"`
	LTVPct            float64 `json:"ltv_pct"`
	ReturnOnCashPct   float64 `json:"return_on_cash_pct"`
	CapRatePct        float64 `json:"cap_rate_pct"`
	CashOnCashPct     float64 `json:"cash_on_cash_pct"`
	TotalInvestment   float64 `json:"total_investment"`
}

// AnalyzeYearOne runs the first-year profitability analysis. The computation
// order is fixed: vacancy comes off gross rent, the management fee applies
// to net rent, NOI excludes debt service, cash flow = NOI - debt service.
func AnalyzeYearOne(in YearOneInput) YearOneResult {
	// 1. Net rents after vacancy
	vacancyLoss := in.GrossAnnualRent * (in.VacancyRatePct / 100)
	netRent := in.GrossAnnualRent - vacancyLoss

	// 2. Management fee (on net rent, not gross)
	managementFee := netRent * (in.ManagementPct / 100)

	// 3. Total operating expenses
	expenses := in.MunicipalTaxes + in.SchoolTaxes + in.Insurance +
		in.Maintenance + managementFee + in.OtherExpenses

	// 4. NOI
	noi := netRent - expenses

	// 5. Debt service. A down payment of 100% or more means no loan.
	loan := in.Price * (1 - in.DownPaymentPct/100)
	if loan < 0 {
		loan = 0
	}
	monthlyPayment := MonthlyPayment(loan, in.InterestRatePct, in.AmortizationYears)
	debtService := monthlyPayment * 12

	// 6. Cash flow
	cashFlow := noi - debtService

	// 7. Invested cash: full cost-breakdown total when available, else the
	// raw down payment.
	investment := in.Price * (in.DownPaymentPct / 100)
	if in.InitialCosts != nil {
		investment = in.InitialCosts.Total
	}

	// 8. Ratios
	coverage := safeDiv(netRent, debtService)
	ltv := safeDiv(loan, in.Price)
	returnOnCash := safeDiv(cashFlow, investment) * 100
	capRate := safeDiv(noi, in.Price) * 100

	return YearOneResult{
		GrossRent:         round2(in.GrossAnnualRent),
		VacancyLoss:       round2(vacancyLoss),
		NetRent:           round2(netRent),
		OperatingExpenses: round2(expenses),
		NOI:               round2(noi),
		DebtService:       round2(debtService),
		CashFlow:          round2(cashFlow),
		LoanPrincipal:     round2(loan),
		CoverageRatio:     round3(coverage),
		LTVPct:            round1(ltv * 100),
		ReturnOnCashPct:   round2(returnOnCash),
		CapRatePct:        round2(capRate),
		CashOnCashPct:     round2(returnOnCash),
		TotalInvestment:   round2(investment),
	}
}
