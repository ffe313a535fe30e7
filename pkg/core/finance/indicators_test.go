package finance

import (
	"math"
	"testing"
)

func referenceIndicatorInput() IndicatorInput {
	return IndicatorInput{
		Price:           300_000,
		NOI:             25_480,
		CashFlow:        8_643.76,
		TotalInvestment: 66_485.50,
		DebtService:     16_836.24,
		NetRent:         36_480,
		InterestRatePct: 5,
		LoanPrincipal:   240_000,
	}
}

func TestIndicators(t *testing.T) {
	res := Indicators(referenceIndicatorInput())

	// cap rate = 25480/300000*100 = 8.49; cash-on-cash = 8643.76/66485.50
	// *100 = 13.00; coverage = 36480/16836.24 = 2.167; LTV = 80.0.
	if res.CapRatePct != 8.49 {
		t.Errorf("Expected cap rate 8.49, got %f", res.CapRatePct)
	}
	if math.Abs(res.CashOnCashPct-13.00) > 0.011 {
		t.Errorf("Expected cash-on-cash 13.00, got %f", res.CashOnCashPct)
	}
	if res.CoverageRatio != 2.167 {
		t.Errorf("Expected coverage 2.167, got %f", res.CoverageRatio)
	}
	if res.LTVPct != 80.0 {
		t.Errorf("Expected LTV 80.0, got %f", res.LTVPct)
	}

	// payback = 66485.50/8643.76 = 7.69 -> 7.7 years
	if res.PaybackInfinite {
		t.Fatal("Expected finite payback")
	}
	if res.PaybackYears == nil || *res.PaybackYears != 7.7 {
		t.Errorf("Expected payback 7.7, got %v", res.PaybackYears)
	}
}

func TestIndicatorsInfinitePayback(t *testing.T) {
	in := referenceIndicatorInput()
	in.CashFlow = -1_200

	res := Indicators(in)
	if !res.PaybackInfinite {
		t.Error("Expected infinite payback for negative cash flow")
	}
	if res.PaybackYears != nil {
		t.Errorf("Expected nil payback years, got %f", *res.PaybackYears)
	}
}

// The GRM divisor grosses NOI back up by a flat 5% regardless of the
// configured vacancy rate; this pins that behavior down.
func TestGRMUsesFlatVacancyAdjustment(t *testing.T) {
	in := referenceIndicatorInput()
	res := Indicators(in)

	// 300000 / (25480 / 0.95) = 11.1852 -> 11.19
	if math.Abs(res.GRM-11.19) > 0.011 {
		t.Errorf("Expected GRM 11.19, got %f", res.GRM)
	}

	// Same NOI computed under any other vacancy rate yields the same GRM.
	in.NetRent = 34_560 // a 10%-vacancy rent roll
	if again := Indicators(in); again.GRM != res.GRM {
		t.Errorf("GRM should depend only on price and NOI, got %f vs %f", again.GRM, res.GRM)
	}

	in.NOI = 0
	if res := Indicators(in); res.GRM != 0 {
		t.Errorf("Expected GRM 0 for non-positive NOI, got %f", res.GRM)
	}
}

func TestRateSensitivity(t *testing.T) {
	res := Indicators(referenceIndicatorInput())

	// Offsets -1, -0.5, +0.5, +1 around 5% produce 4.0/4.5/5.5/6.0. The
	// shifted payments re-price at 25 years: e.g. at 4.0% the payment is
	// 1266.81/month, so cash flow = 25480 - 15201.72 = 10278.28.
	want := map[string]float64{
		"4.0%": 10_278.28,
		"4.5%": 9_472.00,
		"5.5%": 7_794.28,
		"6.0%": 6_924.16,
	}
	if len(res.RateSensitivity) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(res.RateSensitivity))
	}
	for key, cf := range want {
		got, ok := res.RateSensitivity[key]
		if !ok {
			t.Errorf("Missing sensitivity key %q", key)
			continue
		}
		if math.Abs(got-cf) > 0.011 {
			t.Errorf("%s: expected %f, got %f", key, cf, got)
		}
	}
}

func TestRateSensitivityOmitsNonPositiveRates(t *testing.T) {
	in := referenceIndicatorInput()
	in.InterestRatePct = 0.5

	// -1.0 -> -0.5% and -0.5 -> 0.0% are both omitted.
	res := Indicators(in)
	if len(res.RateSensitivity) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(res.RateSensitivity))
	}
	if _, ok := res.RateSensitivity["1.0%"]; !ok {
		t.Error("Missing 1.0% entry")
	}
	if _, ok := res.RateSensitivity["1.5%"]; !ok {
		t.Error("Missing 1.5% entry")
	}
	for key := range res.RateSensitivity {
		if key == "0.0%" || key == "-0.5%" {
			t.Errorf("Rate %s should have been omitted", key)
		}
	}
}

func TestIndicatorsDegenerateInputs(t *testing.T) {
	res := Indicators(IndicatorInput{})
	if res.CapRatePct != 0 || res.CashOnCashPct != 0 || res.CoverageRatio != 0 || res.LTVPct != 0 {
		t.Error("Expected zeroed ratios for empty input")
	}
	if !res.PaybackInfinite {
		t.Error("Expected infinite payback for zero cash flow")
	}
	if res.GRM != 0 {
		t.Errorf("Expected GRM 0, got %f", res.GRM)
	}
}
