package finance

import "math"

// =============================================================================
// FINANCIAL MATH PROVIDER (IRR / NPV)
// =============================================================================

// MathProvider supplies the rate-of-return numerics used by the projector.
// IRR returns nil when no rate can be found for the series. Passing a nil
// provider to the projector degrades IRR/NPV to absent instead of failing.
type MathProvider interface {
	// IRR returns the internal rate of return of a cash-flow series whose
	// first entry sits at t=0, or nil when the solver cannot converge.
	IRR(cashflows []float64) *float64
	// NPV discounts a cash-flow series at the given periodic rate. The t=0
	// entry is not discounted.
	NPV(rate float64, cashflows []float64) float64
}

// DefaultMathProvider solves IRR with Newton's method from a 10% seed and
// falls back to bisection over a bracketing scan when Newton drifts.
type DefaultMathProvider struct{}

func (DefaultMathProvider) NPV(rate float64, cashflows []float64) float64 {
	npv := 0.0
	for t, flow := range cashflows {
		npv += flow / math.Pow(1+rate, float64(t))
	}
	return npv
}

func (p DefaultMathProvider) IRR(cashflows []float64) *float64 {
	// A sign change is necessary for any root to exist.
	hasPositive, hasNegative := false, false
	for _, flow := range cashflows {
		if flow > 0 {
			hasPositive = true
		}
		if flow < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return nil
	}

	const tol = 1e-9

	// Newton's method. The derivative of NPV with respect to the rate is
	// sum(-t * flow / (1+r)^(t+1)).
	rate := 0.10
	for i := 0; i < 100; i++ {
		f := p.NPV(rate, cashflows)
		if math.Abs(f) < tol {
			return &rate
		}
		deriv := 0.0
		for t, flow := range cashflows {
			deriv -= float64(t) * flow / math.Pow(1+rate, float64(t+1))
		}
		if deriv == 0 || math.IsNaN(deriv) || math.IsInf(deriv, 0) {
			break
		}
		next := rate - f/deriv
		if next <= -1 || math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		if math.Abs(next-rate) < 1e-12 {
			rate = next
			break
		}
		rate = next
	}
	if f := p.NPV(rate, cashflows); math.Abs(f) < 1e-6 {
		return &rate
	}

	// Bisection fallback: scan for a bracketing interval, then halve it.
	grid := []float64{-0.9999, -0.9, -0.5, -0.25, 0, 0.1, 0.25, 0.5, 1, 2, 5, 10}
	for i := 0; i < len(grid)-1; i++ {
		lo, hi := grid[i], grid[i+1]
		fLo, fHi := p.NPV(lo, cashflows), p.NPV(hi, cashflows)
		if fLo == 0 {
			return &lo
		}
		if fLo*fHi > 0 {
			continue
		}
		for iter := 0; iter < 200; iter++ {
			mid := (lo + hi) / 2
			fMid := p.NPV(mid, cashflows)
			if math.Abs(fMid) < tol || (hi-lo)/2 < 1e-12 {
				return &mid
			}
			if fLo*fMid < 0 {
				hi = mid
			} else {
				lo, fLo = mid, fMid
			}
		}
		mid := (lo + hi) / 2
		return &mid
	}
	return nil
}
