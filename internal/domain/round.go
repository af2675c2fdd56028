package domain

import "math"

// Round2 rounds to two decimal places, half away from zero. Weight totals
// are rounded independently before the difference is taken, and the
// difference itself is re-rounded to absorb float noise.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WeightDifference computes total gross minus total net under the Round2
// convention used across all GRN paperwork.
func WeightDifference(totalGross, totalNet float64) float64 {
	return Round2(Round2(totalGross) - Round2(totalNet))
}
