package main

import (
	"fmt"
	"math"
	"os"

	"plex_analyzer/pkg/core/finance"
)

// Replays a hand-worked reference scenario (300k triplex, 20% down, 5% over
// 25 years) through every finance stage and compares against the expected
// values. Exits non-zero on any mismatch.
func main() {
	failures := 0

	check := func(label string, got, want float64) {
		status := "OK  "
		if math.Abs(got-want) > 0.011 {
			status = "FAIL"
			failures++
		}
		fmt.Printf("  [%s] %-40s | got %14.2f | want %14.2f\n", status, label, got, want)
	}
	deref := func(v *float64) float64 {
		if v != nil {
			return *v
		}
		return math.NaN()
	}

	fmt.Println("================================================================================")
	fmt.Println("            FINANCE ENGINE VERIFICATION (HAND-WORKED REFERENCE VALUES)")
	fmt.Println("================================================================================")

	fmt.Println("\n--- Transfer Tax ---")
	check("300,000 general Quebec", finance.TransferTax(300_000, finance.JurisdictionQuebec), 2685.50)
	check("62,900 first bracket boundary", finance.TransferTax(62_900, finance.JurisdictionQuebec), 314.50)
	check("600,000 general Quebec", finance.TransferTax(600_000, finance.JurisdictionQuebec), 7110.50)
	check("600,000 Montreal", finance.TransferTax(600_000, finance.JurisdictionMontreal), 7610.50)
	check("600,000 Quebec City", finance.TransferTax(600_000, finance.JurisdictionQuebecCity), 8110.50)
	check("unknown key falls back to general", finance.TransferTax(300_000, "gatineau"), 2685.50)

	fmt.Println("\n--- Mortgage (240,000 at 5% over 25 years) ---")
	payment := finance.MonthlyPayment(240_000, 5.0, 25)
	check("monthly payment", payment, 1403.02)
	check("annual debt service", payment*12, 16836.24)

	schedule := finance.AmortizationSchedule(240_000, 5.0, 25, 10)
	check("year 1 interest", schedule[0].Interest, 11887.62)
	check("year 1 principal", schedule[0].Principal, 4948.62)
	check("year 1 balance", schedule[0].Balance, 235051.38)
	check("year 2 balance", schedule[1].Balance, 229849.57)
	check("year 10 balance", schedule[9].Balance, 177418.14)

	fmt.Println("\n--- Initial Costs (300,000, 20% down, default fees) ---")
	costs := finance.InitialCosts(finance.CostInput{
		Price:          300_000,
		DownPaymentPct: 20,
		NotaryFee:      finance.DefaultNotaryFee,
		InspectionFee:  finance.DefaultInspectionFee,
		AppraisalFee:   finance.DefaultAppraisalFee,
		AccountingFee:  finance.DefaultAccountingFee,
		Jurisdiction:   finance.JurisdictionQuebec,
	})
	check("down payment line", costs.Amount(finance.CostLabelDownPayment), 60000.00)
	check("transfer tax line", costs.Amount(finance.CostLabelTransferTax), 2685.50)
	check("total initial costs", costs.Total, 66485.50)

	fmt.Println("\n--- Year One (38,400 gross rent, 5% vacancy, 11,000 expenses) ---")
	yearOne := finance.AnalyzeYearOne(finance.YearOneInput{
		Price:             300_000,
		GrossAnnualRent:   38_400,
		VacancyRatePct:    5,
		MunicipalTaxes:    5_000,
		SchoolTaxes:       500,
		Insurance:         2_500,
		Maintenance:       3_000,
		DownPaymentPct:    20,
		InterestRatePct:   5.0,
		AmortizationYears: 25,
		InitialCosts:      &costs,
	})
	check("vacancy loss", yearOne.VacancyLoss, 1920.00)
	check("net rent", yearOne.NetRent, 36480.00)
	check("operating expenses", yearOne.OperatingExpenses, 11000.00)
	check("NOI", yearOne.NOI, 25480.00)
	check("debt service", yearOne.DebtService, 16836.24)
	check("cash flow", yearOne.CashFlow, 8643.76)
	check("coverage ratio", yearOne.CoverageRatio, 2.167)
	check("LTV pct", yearOne.LTVPct, 80.0)
	check("cap rate pct", yearOne.CapRatePct, 8.49)
	check("cash-on-cash pct", yearOne.CashOnCashPct, 13.00)

	fmt.Println("\n--- Projection (10 years, 3% rent growth, 2% inflation, 3% appreciation) ---")
	projection := finance.Project(finance.ProjectionInput{
		Price:               300_000,
		GrossAnnualRent:     38_400,
		OperatingExpenses:   yearOne.OperatingExpenses,
		YearOneNOI:          yearOne.NOI,
		VacancyRatePct:      5,
		DownPaymentPct:      20,
		InterestRatePct:     5.0,
		AmortizationYears:   25,
		RentGrowthPct:       3,
		ExpenseInflationPct: 2,
		AppreciationPct:     3,
		TotalInvestment:     costs.Total,
		HorizonYears:        10,
	}, finance.DefaultMathProvider{})
	check("row count", float64(len(projection.Rows)), 10)
	check("year 2 cash flow", projection.Rows[1].CashFlow, 9518.16)
	check("year 10 gross rent", projection.Rows[9].GrossRent, 50103.29)
	check("year 10 NOI", projection.Rows[9].NOI, 34452.11)
	check("IRR pct", deref(projection.IRRPct), 24.02)
	check("NPV at 5%", deref(projection.NPV), 161738.58)
	check("cumulative cash flow", projection.CumulativeCashFlow, 129392.99)
	check("final property value", projection.FinalPropertyValue, 391431.96)
	check("final equity", projection.FinalEquity, 214013.82)
	check("cumulative return pct", deref(projection.CumulativeReturnPct), 426.27)

	fmt.Println("\n--- Indicators ---")
	indicators := finance.Indicators(finance.IndicatorInput{
		Price:           300_000,
		NOI:             yearOne.NOI,
		CashFlow:        yearOne.CashFlow,
		TotalInvestment: costs.Total,
		DebtService:     yearOne.DebtService,
		NetRent:         yearOne.NetRent,
		InterestRatePct: 5.0,
		LoanPrincipal:   yearOne.LoanPrincipal,
	})
	check("GRM", indicators.GRM, 11.19)
	check("payback years", deref(indicators.PaybackYears), 7.7)
	check("sensitivity at 4.0%", indicators.RateSensitivity["4.0%"], 10278.28)
	check("sensitivity at 4.5%", indicators.RateSensitivity["4.5%"], 9472.00)
	check("sensitivity at 5.5%", indicators.RateSensitivity["5.5%"], 7794.28)
	check("sensitivity at 6.0%", indicators.RateSensitivity["6.0%"], 6924.16)

	fmt.Println("\n================================================================================")
	if failures > 0 {
		fmt.Printf("%d CHECK(S) FAILED\n", failures)
		os.Exit(1)
	}
	fmt.Println("ALL CHECKS PASSED")
}
