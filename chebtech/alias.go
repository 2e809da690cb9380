package chebtech

import (
	"github.com/james-bowman/sparse"

	"github.com/saber00001/chebfun/utils"
)

// Alias folds the coefficient matrix onto m rows. On an m-point second-kind
// grid the basis T_d is indistinguishable from T_{a(d)} with a(d) the
// reflection of d modulo 2(m-1), so each discarded coefficient is added onto
// its alias rather than dropped; plain truncation would lose signal energy
// that reappears on any later resampling at the smaller grid. Purely
// additive, no resampling of the original function. Requests for m at or
// above the current row count pad with zero rows instead.
func Alias(coeffs utils.Matrix, m int) (aliased utils.Matrix) {
	var (
		nr, nc = coeffs.Dims()
	)
	if m < 1 {
		panic("alias target must retain at least one row")
	}
	if m == nr {
		return coeffs.Copy()
	}
	if m > nr {
		aliased = utils.NewMatrix(m, nc)
		for i := 0; i < nr; i++ {
			aliased.SetRow(i, coeffs.Row(i))
		}
		return
	}
	if m == 1 {
		// Single-point grid at x = 0: odd modes vanish, even modes fold
		// with alternating sign since T_{2k}(0) = (-1)^k.
		aliased = utils.NewMatrix(1, nc)
		for j := 0; j < nc; j++ {
			var (
				sum  float64
				sign = 1.0
			)
			for k := 0; k < nr; k += 2 {
				sum += sign * coeffs.At(k, j)
				sign = -sign
			}
			aliased.M.Set(0, j, sum)
		}
		return
	}
	fold := sparse.NewDOK(m, nr)
	for d := 0; d < nr; d++ {
		fold.Set(aliasTarget(d, m), d, 1)
	}
	prod := sparse.NewCSR(m, nc, nil, nil, nil)
	prod.Mul(fold.ToCSR(), coeffs.M)
	aliased = utils.NewMatrix(m, nc)
	for j := 0; j < nc; j++ {
		for i := 0; i < m; i++ {
			aliased.M.Set(i, j, prod.At(i, j))
		}
	}
	return
}

// aliasTarget reflects degree d into the retained band [0, m-1] with period
// 2(m-1), the aliasing relation of an m-point second-kind grid.
func aliasTarget(d, m int) int {
	if d < m {
		return d
	}
	p := 2 * (m - 1)
	r := d % p
	if r < m {
		return r
	}
	return p - r
}
