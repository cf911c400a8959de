package sim

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean is a util function that calculates the mean of a data list.
// Returns 0 for an empty list rather than NaN.
func Mean(data []int) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(toFloat64s(data), nil)
}

// Percentile calculates the p-th percentile (p in [0,100]) of a data list
// using the empirical quantile. Returns 0 for an empty list.
func Percentile(data []int, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := toFloat64s(data)
	sort.Float64s(sorted)
	return stat.Quantile(p/100, stat.Empirical, sorted, nil)
}

// MaxInt returns the largest value in the list, or 0 if the list is empty.
func MaxInt(data []int) int {
	max := 0
	for i, v := range data {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

func toFloat64s(data []int) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}
