package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Copy is independent of the source
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := M.Copy()
		A.Set(0, 0, 100)
		assert.Equal(t, 1., M.At(0, 0))
		assert.Equal(t, 100., A.At(0, 0))
	}
	// Row / SetRow / Col / SetCol
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1))
		assert.Equal(t, []float64{2, 5}, M.Col(1))
		M.SetRow(0, []float64{7, 8, 9})
		assert.Equal(t, []float64{7, 8, 9}, M.Row(0))
		M.SetCol(2, []float64{0, 0})
		assert.Equal(t, []float64{0, 0}, M.Col(2))
	}
	// ColMaxAbsFinite ignores NaN and Inf
	{
		M := NewMatrix(3, 2, []float64{
			1, math.NaN(),
			-5, 2,
			math.Inf(1), -3,
		})
		s := M.ColMaxAbsFinite()
		assert.Equal(t, 5., s.AtVec(0))
		assert.Equal(t, 3., s.AtVec(1))
	}
	// NonFiniteRowMasks
	{
		M := NewMatrix(3, 2, []float64{
			1, math.NaN(),
			2, 2,
			math.Inf(-1), 3,
		})
		maskNaN, maskInf := M.NonFiniteRowMasks()
		assert.Equal(t, []bool{true, false, false}, maskNaN)
		assert.Equal(t, []bool{false, false, true}, maskInf)
	}
	// MaxAbsDiff
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := NewMatrix(2, 2, []float64{1, 2.5, 3, 4})
		assert.InDelta(t, 0.5, M.MaxAbsDiff(A), 1.e-15)
	}
}
