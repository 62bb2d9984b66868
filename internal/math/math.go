package math

import (
	"math"
	"strconv"
)

// Format formats a float with the precision used in the training reports.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// Finite returns true if none of the given values is NaN or infinite.
func Finite(ff ...float64) bool {
	for _, f := range ff {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Distance returns the euclidean distance between two points of the same dimension.
func Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
