package chebtech

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saber00001/chebfun/utils"
)

func TestAlias(t *testing.T) {
	// Folding a full series onto a coarse grid agrees with sampling the
	// series on that grid and transforming, which is the aliasing relation
	// the fold encodes
	{
		data := []float64{1, 0.8, -0.5, 0.3, 0.25, -0.125, 0.1, 0.05, 0.025,
			-0.0125, 0.01, 0.005, 0.0025, 0.00125, 0.001, 0.0005, 0.00025}
		coeffs := utils.NewMatrix(17, 1, data)
		for _, m := range []int{9, 5, 3, 2} {
			folded := Alias(coeffs, m)
			X := Grid(m - 1)
			sampled := utils.NewMatrix(m, 1)
			for i := 0; i < m; i++ {
				sampled.Set(i, 0, EvalCoeffs(coeffs, []float64{X.AtVec(i)}).At(0, 0))
			}
			viaGrid := ValsToCoeffs(sampled)
			assert.InDelta(t, 0, folded.MaxAbsDiff(viaGrid), 1.e-13, "m = %d", m)
		}
	}
	// Folding onto a single point is evaluation at x = 0
	{
		coeffs := utils.NewMatrix(7, 1, []float64{0.5, 1, -0.25, 2, 0.75, -1, 0.125})
		folded := Alias(coeffs, 1)
		want := EvalCoeffs(coeffs, []float64{0}).At(0, 0)
		assert.InDelta(t, want, folded.At(0, 0), 1.e-14)
	}
	// Same row count copies, larger row count zero-pads
	{
		coeffs := utils.NewMatrix(3, 2, []float64{1, 2, 3, 4, 5, 6})
		assert.Equal(t, coeffs, Alias(coeffs, 3))
		padded := Alias(coeffs, 5)
		nr, nc := padded.Dims()
		assert.Equal(t, 5, nr)
		assert.Equal(t, 2, nc)
		assert.Equal(t, 0., padded.At(4, 0))
		assert.Equal(t, coeffs.At(2, 1), padded.At(2, 1))
	}
	// Purely additive: total first-row mass of an even series is conserved
	{
		coeffs := utils.NewMatrix(5, 1, []float64{1, 0, 0, 0, 1})
		folded := Alias(coeffs, 3)
		// degree 4 reflects onto degree 0 with period 4
		assert.InDelta(t, 2, folded.At(0, 0), 1.e-15)
		assert.InDelta(t, 0, folded.At(1, 0), 1.e-15)
		assert.InDelta(t, 0, folded.At(2, 0), 1.e-15)
	}
}
