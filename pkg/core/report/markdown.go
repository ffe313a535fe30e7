// Package report renders an analysis run as a Markdown document, with an
// HTML variant for web delivery.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"plex_analyzer/pkg/core/analysis"
	"plex_analyzer/pkg/core/utils"
)

// Build renders the full investment report as Markdown.
func Build(r *analysis.Report) string {
	var b strings.Builder

	writeHeader(&b, r)
	writeYearOne(&b, r)
	writeCosts(&b, r)
	writeProjection(&b, r)
	writeIndicators(&b, r)
	if r.Location != nil {
		writeLocation(&b, r)
	}

	return b.String()
}

// RenderHTML builds the Markdown report and converts it to HTML.
func RenderHTML(r *analysis.Report) (string, error) {
	html, err := utils.RenderMarkdown(Build(r))
	if err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}
	return html, nil
}

func writeHeader(b *strings.Builder, r *analysis.Report) {
	b.WriteString("# Analyse d'investissement immobilier\n\n")

	if r.Property.Address != "" {
		location := r.Property.Address
		if r.Property.City != "" {
			location += ", " + r.Property.City
		}
		fmt.Fprintf(b, "**Emplacement :** %s\n\n", location)
	}
	if r.Property.BuildingType != "" {
		fmt.Fprintf(b, "**Type d'immeuble :** %s\n\n", r.Property.BuildingType)
	}
	fmt.Fprintf(b, "**Prix d'achat :** %s\n\n", money(r.Property.Price))
	fmt.Fprintf(b, "**Généré le :** %s · **Référence :** %s\n", r.GeneratedAt.Format("2006-01-02 15:04"), r.RunID)
}

func writeYearOne(b *strings.Builder, r *analysis.Report) {
	an1 := r.YearOne

	b.WriteString("\n## Analyse de la première année\n\n")
	b.WriteString("| Indicateur | Valeur |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(b, "| Revenus bruts annuels | %s |\n", money(an1.GrossRent))
	fmt.Fprintf(b, "| Revenus nets (après vacance) | %s |\n", money(an1.NetRent))
	fmt.Fprintf(b, "| Dépenses d'exploitation | %s |\n", money(an1.OperatingExpenses))
	fmt.Fprintf(b, "| NOI (revenu net d'exploitation) | %s |\n", money(an1.NOI))
	fmt.Fprintf(b, "| Hypothèque | %s |\n", money(an1.LoanPrincipal))
	fmt.Fprintf(b, "| Service de dette annuel | %s |\n", money(an1.DebtService))
	fmt.Fprintf(b, "| Cashflow annuel | %s |\n", money(an1.CashFlow))
	fmt.Fprintf(b, "| Cashflow mensuel | %s |\n", money(an1.CashFlow/12))
	fmt.Fprintf(b, "| Ratio de couverture (CSD) | %.3f |\n", an1.CoverageRatio)
	fmt.Fprintf(b, "| LTV | %.1f %% |\n", an1.LTVPct)
}

func writeCosts(b *strings.Builder, r *analysis.Report) {
	b.WriteString("\n## Coûts initiaux\n\n")
	b.WriteString("| Poste | Montant |\n")
	b.WriteString("|---|---:|\n")
	for _, item := range r.Costs.Items {
		fmt.Fprintf(b, "| %s | %s |\n", item.Label, money(item.Amount))
	}
	fmt.Fprintf(b, "| **Total coûts initiaux** | **%s** |\n", money(r.Costs.Total))
}

func writeProjection(b *strings.Builder, r *analysis.Report) {
	proj := r.Projection

	fmt.Fprintf(b, "\n## Projection sur %d ans\n\n", len(proj.Rows))

	fmt.Fprintf(b, "**TRI :** %s · **VAN :** %s\n\n", pctOrNA(proj.IRRPct), moneyOrNA(proj.NPV))
	fmt.Fprintf(b, "**Cashflow cumulé :** %s · **Équité finale :** %s\n\n",
		money(proj.CumulativeCashFlow), money(proj.FinalEquity))
	fmt.Fprintf(b, "**Valeur projetée :** %s · **Rendement cumulé :** %s\n\n",
		money(proj.FinalPropertyValue), pctOrNA(proj.CumulativeReturnPct))

	b.WriteString("| Année | Revenus bruts | Revenus nets | Dépenses | NOI | Service de dette | Cashflow | Cashflow cumulé | Valeur immeuble | Solde hypothèque | Équité |\n")
	b.WriteString("|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|\n")
	for _, row := range proj.Rows {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			row.Year,
			moneyWhole(row.GrossRent),
			moneyWhole(row.NetRent),
			moneyWhole(row.Expenses),
			moneyWhole(row.NOI),
			moneyWhole(row.DebtService),
			moneyWhole(row.CashFlow),
			moneyWhole(row.CumulativeCashFlow),
			moneyWhole(row.PropertyValue),
			moneyWhole(row.MortgageBalance),
			moneyWhole(row.Equity),
		)
	}
}

func writeIndicators(b *strings.Builder, r *analysis.Report) {
	ind := r.Indicators

	b.WriteString("\n## Indicateurs financiers\n\n")
	b.WriteString("| Indicateur | Valeur |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(b, "| Cap Rate | %.2f %% |\n", ind.CapRatePct)
	fmt.Fprintf(b, "| Cash-on-Cash | %.2f %% |\n", ind.CashOnCashPct)
	fmt.Fprintf(b, "| CSD | %.3f |\n", ind.CoverageRatio)
	fmt.Fprintf(b, "| LTV | %.1f %% |\n", ind.LTVPct)
	fmt.Fprintf(b, "| Délai de récupération | %s |\n", payback(ind.PaybackYears, ind.PaybackInfinite))
	fmt.Fprintf(b, "| GRM | %.2f |\n", ind.GRM)

	if len(ind.RateSensitivity) > 0 {
		b.WriteString("\n### Sensibilité aux taux d'intérêt\n\n")
		b.WriteString("| Taux | Cashflow annuel |\n")
		b.WriteString("|---:|---:|\n")
		for _, rate := range sortedRates(ind.RateSensitivity) {
			fmt.Fprintf(b, "| %s | %s |\n", rate, money(ind.RateSensitivity[rate]))
		}
	}
}

func writeLocation(b *strings.Builder, r *analysis.Report) {
	loc := r.Location

	b.WriteString("\n## Analyse de la localisation\n\n")
	fmt.Fprintf(b, "**Score global :** %.1f/10 · **Appréciation :** %s\n\n", loc.Score, loc.Tier)

	if len(loc.Details) > 0 {
		b.WriteString("| Critère | Réponse | Score | Pondération |\n")
		b.WriteString("|---|---|---:|---:|\n")
		for _, detail := range loc.Details {
			fmt.Fprintf(b, "| %s | %s | %d | %.1f |\n",
				detail.Criterion, detail.Answer, detail.Score, detail.Weight)
		}
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// money formats an amount as "1,234,567.89 $".
func money(v float64) string {
	return comma(v, 2) + " $"
}

// moneyWhole formats an amount as "1,234,568 $".
func moneyWhole(v float64) string {
	return comma(v, 0) + " $"
}

// comma renders v with the given decimals and comma thousand separators.
func comma(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	return sign + b.String() + fracPart
}

// pctOrNA renders an optional percentage, "N/A" when absent.
func pctOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f %%", *v)
}

// moneyOrNA renders an optional amount, "N/A" when absent.
func moneyOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return money(*v)
}

// payback renders the recovery time, "∞" when the cash flow never repays
// the investment.
func payback(years *float64, infinite bool) string {
	if infinite || years == nil {
		return "∞"
	}
	return fmt.Sprintf("%.1f ans", *years)
}

// sortedRates orders sensitivity keys ("4.0%", "5.5%") by numeric rate.
func sortedRates(sensitivity map[string]float64) []string {
	rates := make([]string, 0, len(sensitivity))
	for rate := range sensitivity {
		rates = append(rates, rate)
	}
	sort.Slice(rates, func(i, j int) bool {
		a, _ := strconv.ParseFloat(strings.TrimSuffix(rates[i], "%"), 64)
		b, _ := strconv.ParseFloat(strings.TrimSuffix(rates[j], "%"), 64)
		return a < b
	})
	return rates
}
