package chebtech

import (
	"github.com/saber00001/chebfun/utils"
)

// EvalCoeffs evaluates the Chebyshev series held in each coefficient column
// at the given points by the Clenshaw recurrence. One row per point.
func EvalCoeffs(coeffs utils.Matrix, x []float64) (R utils.Matrix) {
	var (
		_, nc = coeffs.Dims()
	)
	R = utils.NewMatrix(len(x), nc)
	for j := 0; j < nc; j++ {
		col := coeffs.Col(j)
		for i, xi := range x {
			R.M.Set(i, j, clenshaw(col, xi))
		}
	}
	return
}

func clenshaw(c []float64, x float64) (y float64) {
	n := len(c) - 1
	if n < 0 {
		return 0
	}
	if n == 0 {
		return c[0]
	}
	var b1, b2 float64
	for k := n; k >= 1; k-- {
		b1, b2 = 2*x*b1-b2+c[k], b1
	}
	y = x*b1 - b2 + c[0]
	return
}
