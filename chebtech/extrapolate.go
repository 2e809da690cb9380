package chebtech

import (
	"github.com/saber00001/chebfun/utils"
)

// Extrapolate replaces non-finite sample values with finite substitutes so
// that the transform and convergence checks stay well defined. A row is
// masked when any of its columns is NaN (maskNaN) or infinite (maskInf);
// with endpoints set, the first and last rows are treated as masked too.
// Masked entries are rebuilt per column by linear extrapolation through the
// nearest finite neighbors. The input matrix is not modified.
func Extrapolate(values utils.Matrix, endpoints bool) (clean utils.Matrix, maskNaN, maskInf []bool, err error) {
	var (
		nr, nc = values.Dims()
	)
	maskNaN, maskInf = values.NonFiniteRowMasks()
	masked := make([]bool, nr)
	var any bool
	for i := range masked {
		masked[i] = maskNaN[i] || maskInf[i]
		any = any || masked[i]
	}
	if endpoints && nr > 2 {
		masked[0] = true
		masked[nr-1] = true
		any = true
	}
	clean = values.Copy()
	if !any {
		return
	}
	x := Grid(nr - 1)
	for j := 0; j < nc; j++ {
		// Support rows for this column: unmasked and finite. If endpoint
		// masking left nothing, fall back to any finite entry.
		var sup []int
		for i := 0; i < nr; i++ {
			if !masked[i] && utils.IsFinite(values.At(i, j)) {
				sup = append(sup, i)
			}
		}
		if len(sup) == 0 {
			for i := 0; i < nr; i++ {
				if utils.IsFinite(values.At(i, j)) {
					sup = append(sup, i)
				}
			}
		}
		if len(sup) == 0 {
			clean = utils.Matrix{}
			err = &AllNonFiniteError{Col: j}
			return
		}
		for i := 0; i < nr; i++ {
			if masked[i] || !utils.IsFinite(values.At(i, j)) {
				clean.M.Set(i, j, extrapolateAt(x, values, sup, i, j))
			}
		}
	}
	return
}

// extrapolateAt rebuilds entry (i,j) from the two support rows nearest to i,
// bracketing it when possible. A single support row gives a constant fill.
func extrapolateAt(x utils.Vector, values utils.Matrix, sup []int, i, j int) float64 {
	if len(sup) == 1 {
		return values.At(sup[0], j)
	}
	var (
		lo = -1
		hi = -1
	)
	for _, s := range sup {
		if s <= i {
			lo = s
		}
		if s >= i && hi < 0 {
			hi = s
		}
	}
	var a, b int
	switch {
	case lo < 0:
		a, b = sup[0], sup[1]
	case hi < 0:
		a, b = sup[len(sup)-2], sup[len(sup)-1]
	default:
		a, b = lo, hi
	}
	// Row i can end up in the fallback support set when every unmasked row
	// was non-finite; its own finite value is then the extrapolant, not a
	// degenerate zero-length line.
	if a == b {
		return values.At(a, j)
	}
	var (
		x0, x1 = x.AtVec(a), x.AtVec(b)
		y0, y1 = values.At(a, j), values.At(b, j)
		xi     = x.AtVec(i)
	)
	return y0 + (y1-y0)*(xi-x0)/(x1-x0)
}
