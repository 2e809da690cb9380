package chebtech

import (
	"math"

	"github.com/saber00001/chebfun/utils"
)

// HappinessResult reports the outcome of a convergence check.
type HappinessResult struct {
	Happy    bool
	Cutoff   int          // highest retained degree; rows to keep = Cutoff+1
	Epslevel utils.Vector // per-column achieved relative accuracy
}

// ClassicCheck scans each column's coefficients from the highest degree
// downward. A degree d is negligible when the tail sum of magnitudes from d
// upward stays below the column's threshold, which is relative to its
// vertical scale and grows mildly with the grid size to absorb transform
// round-off. A column is converged only when its cutoff lies strictly below
// the current degree; the global cutoff is the maximum over columns, since
// the matrix shape is shared.
func ClassicCheck(coeffs utils.Matrix, vscale utils.Vector, tol float64) (res HappinessResult) {
	var (
		nr, nc = coeffs.Dims()
		n      = nr - 1
		cuts   = make([]int, nc)
	)
	res.Happy = true
	res.Epslevel = utils.NewVectorConst(nc, utils.Eps)
	for j := 0; j < nc; j++ {
		var (
			th   = negligibilityThreshold(tol, vscale.AtVec(j), n)
			cut  = n
			tail float64
		)
		for d := n; d >= 0; d-- {
			tail += math.Abs(coeffs.At(d, j))
			if tail > th {
				break
			}
			cut = d - 1
		}
		if cut < 0 {
			cut = 0 // entire column negligible: keep the constant term
		}
		cuts[j] = cut
		if cut >= n {
			res.Happy = false
		}
	}
	res.Cutoff = cuts[0]
	for _, c := range cuts[1:] {
		if c > res.Cutoff {
			res.Cutoff = c
		}
	}
	for j := 0; j < nc; j++ {
		var tail float64
		for d := res.Cutoff + 1; d <= n; d++ {
			tail += math.Abs(coeffs.At(d, j))
		}
		if vs := vscale.AtVec(j); vs > 0 {
			res.Epslevel.V.SetVec(j, math.Max(utils.Eps, tail/vs))
		}
	}
	return
}

// negligibilityThreshold is the absolute level below which a coefficient
// tail counts as noise. The n/2 factor tracks the worst-case accumulation
// of round-off across an n-point transform; the exact constant is a tuning
// choice, the scale- and tolerance-relative form is the contract.
func negligibilityThreshold(tol, vscale float64, n int) (th float64) {
	grid := float64(n)
	if grid < 2 {
		grid = 2
	}
	th = math.Max(tol, utils.Eps) * vscale * grid / 2
	return
}

// Points held out from every sampling grid, used to cross-check a truncated
// series against the function itself. Grid points of the second kind are
// algebraic, so these never coincide with one.
var sampleTestPoints = []float64{-0.357998918959666, 0.036785641195074}

// sampleTest evaluates the truncated series at held-out points and compares
// against fresh function samples. It protects against aliasing-only false
// convergence: a passing coefficient tail with a failing sample test is not
// accepted.
func sampleTest(f Fn, coeffs utils.Matrix, vscale utils.Vector, tol float64) (ok bool, err error) {
	want, ferr := f(sampleTestPoints)
	if ferr != nil {
		err = &EvaluationError{Pts: len(sampleTestPoints), Err: ferr}
		return
	}
	var (
		nr, nc = want.Dims()
		cr, cc = coeffs.Dims()
		n      = cr - 1
	)
	if nr != len(sampleTestPoints) || nc != cc {
		err = &EvaluationError{Pts: len(sampleTestPoints), Rows: nr, Cols: nc}
		return
	}
	got := EvalCoeffs(coeffs, sampleTestPoints)
	ok = true
	for j := 0; j < nc; j++ {
		// Loose by two orders relative to the tail threshold: this guards
		// against aliasing-scale errors, not round-off.
		th := 100 * negligibilityThreshold(tol, math.Max(vscale.AtVec(j), 1), n)
		for i := 0; i < nr; i++ {
			w := want.At(i, j)
			if !utils.IsFinite(w) {
				continue
			}
			if math.Abs(got.At(i, j)-w) > th {
				ok = false
				return
			}
		}
	}
	return
}
