package chebtech

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saber00001/chebfun/utils"
)

func TestClassicCheck(t *testing.T) {
	// A clean plateau of negligible coefficients is accepted with the
	// cutoff at the last significant degree
	{
		data := make([]float64, 33)
		data[0] = 1
		data[1] = 0.5
		for k := 2; k < 33; k++ {
			data[k] = 1.e-20
		}
		coeffs := utils.NewMatrix(33, 1, data)
		vscale := utils.NewVectorConst(1, 1)
		res := ClassicCheck(coeffs, vscale, utils.Eps)
		assert.True(t, res.Happy)
		assert.Equal(t, 1, res.Cutoff)
		assert.InDelta(t, utils.Eps, res.Epslevel.AtVec(0), 1.e-17)
	}
	// Slowly decaying coefficients never plateau
	{
		data := make([]float64, 33)
		for k := range data {
			data[k] = 1 / float64(k+1)
		}
		coeffs := utils.NewMatrix(33, 1, data)
		vscale := utils.NewVectorConst(1, 1)
		res := ClassicCheck(coeffs, vscale, utils.Eps)
		assert.False(t, res.Happy)
	}
	// The shared cutoff is the max over per-column cutoffs
	{
		data := make([]float64, 2*17)
		coeffs := utils.NewMatrix(17, 2, data)
		for k := 0; k <= 2; k++ {
			coeffs.Set(k, 0, 1)
		}
		for k := 0; k <= 9; k++ {
			coeffs.Set(k, 1, 1)
		}
		vscale := utils.NewVectorConst(2, 1)
		res := ClassicCheck(coeffs, vscale, utils.Eps)
		assert.True(t, res.Happy)
		assert.Equal(t, 9, res.Cutoff)
	}
	// Happiness is relative: scaling values and vscale together changes
	// nothing
	{
		data := make([]float64, 33)
		data[0] = 1
		for k := 1; k < 33; k++ {
			data[k] = 1.e-20
		}
		coeffs := utils.NewMatrix(33, 1, data).Scale(1.e8)
		vscale := utils.NewVectorConst(1, 1.e8)
		res := ClassicCheck(coeffs, vscale, utils.Eps)
		assert.True(t, res.Happy)
		assert.Equal(t, 0, res.Cutoff)
	}
	// Epslevel reports the achieved accuracy, floored at machine epsilon
	{
		data := make([]float64, 33)
		data[0] = 1
		for k := 1; k < 33; k++ {
			data[k] = 1.e-17
		}
		coeffs := utils.NewMatrix(33, 1, data)
		vscale := utils.NewVectorConst(1, 1)
		res := ClassicCheck(coeffs, vscale, utils.Eps)
		assert.True(t, res.Happy)
		assert.GreaterOrEqual(t, res.Epslevel.AtVec(0), utils.Eps)
		assert.Less(t, res.Epslevel.AtVec(0), 1.e-14)
	}
}
