package finance

import "math"

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// safeDiv treats a non-positive denominator as degenerate and returns 0.
func safeDiv(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
