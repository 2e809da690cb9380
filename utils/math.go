package utils

import (
	"math"
)

const (
	// Eps is the double precision machine epsilon, 2^-52.
	Eps = 2.220446049250313e-16
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
