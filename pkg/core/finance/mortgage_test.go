package finance

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	// 300,000 at 20% down leaves a 240,000 loan. At 5% over 25 years the
	// annuity formula gives 240000 * (r(1+r)^300)/((1+r)^300 - 1) with
	// r = 0.05/12, i.e. 1403.0161 -> 1403.02.
	got := MonthlyPayment(240_000, 5.0, 25)
	if got != 1403.02 {
		t.Errorf("Expected 1403.02, got %f", got)
	}

	// Rates from the sensitivity grid.
	if got := MonthlyPayment(240_000, 4.5, 25); got != 1334.00 {
		t.Errorf("Expected 1334.00 at 4.5%%, got %f", got)
	}
	if got := MonthlyPayment(240_000, 4.0, 25); got != 1266.81 {
		t.Errorf("Expected 1266.81 at 4.0%%, got %f", got)
	}
}

func TestMonthlyPaymentDegenerateInputs(t *testing.T) {
	if got := MonthlyPayment(0, 5.0, 25); got != 0 {
		t.Errorf("Expected 0 for zero principal, got %f", got)
	}
	if got := MonthlyPayment(-100_000, 5.0, 25); got != 0 {
		t.Errorf("Expected 0 for negative principal, got %f", got)
	}
	if got := MonthlyPayment(240_000, 0, 25); got != 0 {
		t.Errorf("Expected 0 for zero rate, got %f", got)
	}
	if got := MonthlyPayment(240_000, -1.5, 25); got != 0 {
		t.Errorf("Expected 0 for negative rate, got %f", got)
	}
}

func TestMonthlyPaymentDefaultAmortization(t *testing.T) {
	want := MonthlyPayment(240_000, 5.0, DefaultAmortizationYears)
	if got := MonthlyPayment(240_000, 5.0, 0); got != want {
		t.Errorf("Expected default 25-year payment %f, got %f", want, got)
	}
}

func TestAmortizationScheduleFirstYears(t *testing.T) {
	// Hand-simulated from the rounded 1403.02 payment:
	//   year 1: interest 11887.62, principal 4948.62, balance 235051.38
	//   year 2: interest 11634.43, principal 5201.81, balance 229849.57
	rows := AmortizationSchedule(240_000, 5.0, 25, 10)
	if len(rows) != 10 {
		t.Fatalf("Expected 10 rows, got %d", len(rows))
	}

	y1 := rows[0]
	if y1.Year != 1 {
		t.Errorf("Expected year 1, got %d", y1.Year)
	}
	if y1.AnnualPayment != 16836.24 {
		t.Errorf("Expected annual payment 16836.24, got %f", y1.AnnualPayment)
	}
	if math.Abs(y1.Interest-11887.62) > 0.011 {
		t.Errorf("Expected year-1 interest 11887.62, got %f", y1.Interest)
	}
	if math.Abs(y1.Principal-4948.62) > 0.011 {
		t.Errorf("Expected year-1 principal 4948.62, got %f", y1.Principal)
	}
	if math.Abs(y1.Balance-235051.38) > 0.011 {
		t.Errorf("Expected year-1 balance 235051.38, got %f", y1.Balance)
	}

	y2 := rows[1]
	if math.Abs(y2.Balance-229849.57) > 0.011 {
		t.Errorf("Expected year-2 balance 229849.57, got %f", y2.Balance)
	}

	// Interest + principal must recompose the annual payment each year.
	for _, row := range rows {
		if math.Abs(row.Interest+row.Principal-row.AnnualPayment) > 0.011 {
			t.Errorf("year %d: interest %f + principal %f != payment %f",
				row.Year, row.Interest, row.Principal, row.AnnualPayment)
		}
	}
}

func TestAmortizationScheduleFullTermPaysOff(t *testing.T) {
	rows := AmortizationSchedule(240_000, 5.0, 25, 25)
	last := rows[len(rows)-1]
	// The rounded payment overshoots by a few cents over 300 months; the
	// displayed balance clamps at 0.
	if last.Balance != 0 {
		t.Errorf("Expected 0 balance at end of term, got %f", last.Balance)
	}

	// Balance never increases and never goes negative.
	prev := 240_000.0
	for _, row := range rows {
		if row.Balance > prev {
			t.Errorf("year %d: balance rose from %f to %f", row.Year, prev, row.Balance)
		}
		if row.Balance < 0 {
			t.Errorf("year %d: negative balance %f", row.Year, row.Balance)
		}
		prev = row.Balance
	}
}

func TestAmortizationScheduleZeroRate(t *testing.T) {
	// Zero rate means no payment (degenerate case), so the balance stays put.
	rows := AmortizationSchedule(240_000, 0, 25, 5)
	for _, row := range rows {
		if row.AnnualPayment != 0 {
			t.Errorf("year %d: expected 0 payment, got %f", row.Year, row.AnnualPayment)
		}
		if row.Balance != 240_000 {
			t.Errorf("year %d: expected untouched balance, got %f", row.Year, row.Balance)
		}
	}
}
