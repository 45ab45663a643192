package utils

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns 0 for an empty slice.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(Sum(values)) / float64(len(values))
}

// KeepCount is how many of n sampled items to keep at rate: floor(n*rate),
// but at least one when n > 0.
func KeepCount(n int, rate float64) int {
	if n == 0 {
		return 0
	}
	return min(max(int(float64(n)*rate), 1), n)
}
