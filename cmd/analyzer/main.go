package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"plex_analyzer/pkg/core/analysis"
	"plex_analyzer/pkg/core/assumption"
	"plex_analyzer/pkg/core/listing"
	"plex_analyzer/pkg/core/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "extract":
		cmdExtract(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  analyzer analyze --price 300000 --rent 38400 --municipal-taxes 5000 --insurance 2500")
	fmt.Println("  analyzer analyze --url https://www.centris.ca/fr/... --rent 38400 --report rapport.md")
	fmt.Println("  analyzer extract --url https://duproprio.com/fr/...")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - analyze prints the summary; --report/--html write the full report to disk")
	fmt.Println("  - extract prints the best-effort listing record as JSON")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)

	price := fs.Float64("price", 0, "Purchase price in dollars")
	grossRent := fs.Float64("rent", 0, "Gross annual rent in dollars")
	monthlyRent := fs.Float64("monthly-rent", 0, "Monthly rent per unit, used with --units when --rent is 0")
	units := fs.Int("units", 0, "Number of units")
	address := fs.String("address", "", "Property address")
	city := fs.String("city", "", "Property city")
	municipalTaxes := fs.Float64("municipal-taxes", 0, "Annual municipal taxes")
	schoolTaxes := fs.Float64("school-taxes", 0, "Annual school taxes")
	insurance := fs.Float64("insurance", 0, "Annual insurance")
	maintenance := fs.Float64("maintenance", 0, "Annual maintenance")
	otherExpenses := fs.Float64("other-expenses", 0, "Other annual operating expenses")
	initialWork := fs.Float64("initial-work", 0, "One-time initial work budget")
	financingFees := fs.Float64("financing-fees", 0, "One-time financing fees")

	listingURL := fs.String("url", "", "Listing URL to prefill price/address (Centris, DuProprio)")
	cfgPath := fs.String("config", "", "Path to a YAML assumptions file")

	rate := fs.Float64("rate", 0, "Interest rate in % (0 = default)")
	down := fs.Float64("down", 0, "Down payment in % (0 = default)")
	amortization := fs.Int("amortization", 0, "Amortization in years (0 = default)")
	vacancy := fs.Float64("vacancy", -1, "Vacancy rate in % (-1 = default)")
	jurisdiction := fs.String("jurisdiction", "", "Transfer-tax schedule: quebec, montreal, quebec-city")
	horizon := fs.Int("horizon", 0, "Projection horizon in years (0 = default)")

	reportPath := fs.String("report", "", "Write the Markdown report to this path")
	htmlPath := fs.String("html", "", "Write the HTML report to this path")
	_ = fs.Parse(args)

	set := assumption.Defaults()
	if *cfgPath != "" {
		loaded, err := assumption.LoadFile(*cfgPath)
		if err != nil {
			fmt.Printf("[FATAL] %v\n", err)
			os.Exit(1)
		}
		set = loaded
	}
	if *rate > 0 {
		set.InterestRatePct = *rate
	}
	if *down > 0 {
		set.DownPaymentPct = *down
	}
	if *amortization > 0 {
		set.AmortizationYears = *amortization
	}
	if *vacancy >= 0 {
		set.VacancyRatePct = *vacancy
	}
	if *jurisdiction != "" {
		set.Jurisdiction = *jurisdiction
	}
	if *horizon > 0 {
		set.HorizonYears = *horizon
	}

	property := analysis.PropertyInput{
		Price:              *price,
		Address:            *address,
		City:               *city,
		Units:              *units,
		GrossAnnualRent:    *grossRent,
		MonthlyRentPerUnit: *monthlyRent,
		MunicipalTaxes:     *municipalTaxes,
		SchoolTaxes:        *schoolTaxes,
		Insurance:          *insurance,
		Maintenance:        *maintenance,
		OtherExpenses:      *otherExpenses,
		InitialWork:        *initialWork,
		FinancingFees:      *financingFees,
	}

	if *listingURL != "" {
		record := listing.NewExtractor().Extract(context.Background(), *listingURL)
		if record.Error != "" {
			fmt.Printf("[LISTING] %s\n", record.Error)
		}
		mergeListing(&property, record)
	}

	result, err := analysis.NewEngine().Analyze(property, set, nil)
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}

	printSummary(result)

	if *reportPath != "" {
		markdown := report.Build(result)
		if err := os.WriteFile(*reportPath, []byte(markdown), 0644); err != nil {
			fmt.Printf("[FATAL] Failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n[REPORT] Markdown written to %s\n", *reportPath)
	}
	if *htmlPath != "" {
		html, err := report.RenderHTML(result)
		if err != nil {
			fmt.Printf("[FATAL] %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*htmlPath, []byte(html), 0644); err != nil {
			fmt.Printf("[FATAL] Failed to write HTML report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[REPORT] HTML written to %s\n", *htmlPath)
	}
}

// printSummary prints the analysis sections in fixed-width columns. The
// Markdown report carries the same numbers with full formatting.
func printSummary(r *analysis.Report) {
	money := func(v float64) string { return fmt.Sprintf("%14.2f $", v) }

	title := r.Property.Address
	if title == "" {
		title = "Analyse d'investissement"
	}
	fmt.Println("================================================================================")
	fmt.Printf("  %s (run %s)\n", title, r.RunID)
	fmt.Println("================================================================================")

	fmt.Println("\n--- Première année ---")
	y := r.YearOne
	fmt.Printf("  %-36s %s\n", "Revenus bruts annuels", money(y.GrossRent))
	fmt.Printf("  %-36s %s\n", "Revenus nets (après vacance)", money(y.NetRent))
	fmt.Printf("  %-36s %s\n", "Dépenses d'exploitation", money(y.OperatingExpenses))
	fmt.Printf("  %-36s %s\n", "NOI", money(y.NOI))
	fmt.Printf("  %-36s %s\n", "Service de dette annuel", money(y.DebtService))
	fmt.Printf("  %-36s %s\n", "Cashflow annuel", money(y.CashFlow))
	fmt.Printf("  %-36s %s\n", "Cashflow mensuel", money(y.CashFlow/12))

	fmt.Println("\n--- Coûts initiaux ---")
	for _, item := range r.Costs.Items {
		fmt.Printf("  %-36s %s\n", item.Label, money(item.Amount))
	}
	fmt.Printf("  %-36s %s\n", "Total", money(r.Costs.Total))

	fmt.Println("\n--- Projection ---")
	fmt.Printf("  %5s %14s %14s %14s %14s\n", "Année", "Cashflow", "Cumulé", "Valeur", "Équité")
	for _, row := range r.Projection.Rows {
		fmt.Printf("  %5d %14.2f %14.2f %14.2f %14.2f\n",
			row.Year, row.CashFlow, row.CumulativeCashFlow, row.PropertyValue, row.Equity)
	}
	if r.Projection.IRRPct != nil {
		fmt.Printf("  %-36s %13.2f %%\n", "TRI", *r.Projection.IRRPct)
	} else {
		fmt.Printf("  %-36s %16s\n", "TRI", "N/A")
	}
	if r.Projection.NPV != nil {
		fmt.Printf("  %-36s %s\n", "VAN", money(*r.Projection.NPV))
	} else {
		fmt.Printf("  %-36s %16s\n", "VAN", "N/A")
	}

	fmt.Println("\n--- Indicateurs ---")
	ind := r.Indicators
	fmt.Printf("  %-36s %13.2f %%\n", "Cap Rate", ind.CapRatePct)
	fmt.Printf("  %-36s %13.2f %%\n", "Cash-on-Cash", ind.CashOnCashPct)
	fmt.Printf("  %-36s %16.3f\n", "Ratio de couverture (CSD)", ind.CoverageRatio)
	fmt.Printf("  %-36s %13.1f %%\n", "LTV", ind.LTVPct)
	if ind.PaybackInfinite {
		fmt.Printf("  %-36s %16s\n", "Délai de récupération", "∞")
	} else {
		fmt.Printf("  %-36s %12.1f ans\n", "Délai de récupération", *ind.PaybackYears)
	}
	fmt.Printf("  %-36s %16.2f\n", "GRM", ind.GRM)
}

// mergeListing fills property fields the user left empty from an extracted
// listing record.
func mergeListing(property *analysis.PropertyInput, record listing.Listing) {
	if property.Price == 0 && record.Price != nil {
		property.Price = *record.Price
	}
	if property.Address == "" {
		property.Address = record.Address
	}
	if property.City == "" {
		property.City = record.City
	}
	if property.BuildingType == "" {
		property.BuildingType = record.BuildingType
	}
	if property.Units == 0 && record.Units != nil {
		property.Units = *record.Units
	}
	if property.GrossAnnualRent == 0 && record.GrossRevenue != nil {
		property.GrossAnnualRent = *record.GrossRevenue
	}
	if property.OtherExpenses == 0 && record.Expenses != nil {
		property.OtherExpenses = *record.Expenses
	}
}

func cmdExtract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	url := fs.String("url", "", "Listing URL")
	_ = fs.Parse(args)

	if *url == "" {
		fmt.Println("--url is required")
		os.Exit(2)
	}

	record := listing.NewExtractor().Extract(context.Background(), *url)
	blob, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(blob))
}
