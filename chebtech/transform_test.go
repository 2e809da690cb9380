package chebtech

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saber00001/chebfun/utils"
)

func TestTransformRoundTrip(t *testing.T) {
	// toValues(toCoeffs(values)) reproduces the input for a range of grid
	// sizes, including the single-point identity.
	for _, n := range []int{0, 1, 2, 5, 16, 33, 100} {
		var (
			nr   = n + 1
			vals = utils.NewMatrix(nr, 2)
		)
		for i := 0; i < nr; i++ {
			x := float64(i)/float64(nr) - 0.3
			vals.Set(i, 0, math.Exp(x)*math.Sin(7*x))
			vals.Set(i, 1, 1/(1+x*x))
		}
		back := CoeffsToVals(ValsToCoeffs(vals))
		assert.InDelta(t, 0, vals.MaxAbsDiff(back), 1.e-13)
	}
}

func TestTransformKnownSeries(t *testing.T) {
	// Constant function: only the degree-0 coefficient survives
	{
		vals := utils.NewMatrix(9, 1).Apply(func(float64) float64 { return 1 })
		coeffs := ValsToCoeffs(vals)
		assert.InDelta(t, 1, coeffs.At(0, 0), 1.e-14)
		for k := 1; k <= 8; k++ {
			assert.InDelta(t, 0, coeffs.At(k, 0), 1.e-14)
		}
	}
	// f(x) = x is T_1 exactly
	{
		X := Grid(8)
		vals := utils.NewMatrix(9, 1)
		for i := 0; i < 9; i++ {
			vals.Set(i, 0, X.AtVec(i))
		}
		coeffs := ValsToCoeffs(vals)
		assert.InDelta(t, 1, coeffs.At(1, 0), 1.e-14)
		for k := 0; k <= 8; k++ {
			if k != 1 {
				assert.InDelta(t, 0, coeffs.At(k, 0), 1.e-14)
			}
		}
	}
	// f(x) = 2x^2 - 1 is T_2 exactly
	{
		X := Grid(6)
		vals := utils.NewMatrix(7, 1)
		for i := 0; i < 7; i++ {
			x := X.AtVec(i)
			vals.Set(i, 0, 2*x*x-1)
		}
		coeffs := ValsToCoeffs(vals)
		assert.InDelta(t, 1, coeffs.At(2, 0), 1.e-14)
		assert.InDelta(t, 0, coeffs.At(0, 0), 1.e-14)
		assert.InDelta(t, 0, coeffs.At(1, 0), 1.e-14)
	}
	// CoeffsToVals evaluates the series on the grid
	{
		coeffs := utils.NewMatrix(5, 1, []float64{1, 0.5, 0.25, 0, 0.125})
		vals := CoeffsToVals(coeffs)
		X := Grid(4)
		for i := 0; i < 5; i++ {
			want := EvalCoeffs(coeffs, []float64{X.AtVec(i)}).At(0, 0)
			assert.InDelta(t, want, vals.At(i, 0), 1.e-13)
		}
	}
}
