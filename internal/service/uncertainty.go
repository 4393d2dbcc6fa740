package service

import "math"

// 95% interval half-width multiplier.
const intervalZ = 1.96

// Dispersion returns the population standard deviation of the base-model
// predictions. Fewer than two predictions carry no spread information.
func Dispersion(predictions []float64) float64 {
	if len(predictions) < 2 {
		return 0
	}
	var mean float64
	for _, p := range predictions {
		mean += p
	}
	mean /= float64(len(predictions))

	var variance float64
	for _, p := range predictions {
		d := p - mean
		variance += d * d
	}
	variance /= float64(len(predictions))
	return math.Sqrt(variance)
}

// Interval derives the confidence band around the estimate. The lower bound
// is clamped at zero; prices are never negative.
func Interval(estimate, uncertainty float64) (lower, upper float64) {
	lower = math.Max(0, estimate-intervalZ*uncertainty)
	upper = estimate + intervalZ*uncertainty
	return lower, upper
}
