package chebtech

import (
	"github.com/saber00001/chebfun/utils"
)

// Simplify strips any redundant coefficient tail discovered once the scale
// has stabilized, by re-running the happiness check against the achieved
// accuracy (or an explicit tolerance) and aliasing down to the new cutoff.
// Unhappy representations and already-minimal ones are returned unchanged;
// a second application is always a no-op.
func (t *Chebtech) Simplify(tolO ...float64) *Chebtech {
	if !t.IsHappy || t.Coeffs.IsEmpty() {
		return t
	}
	tol := utils.Eps
	if t.Epslevel.V != nil && t.Epslevel.Len() > 0 {
		tol = t.Epslevel.Max()
	}
	if len(tolO) != 0 {
		tol = tolO[0]
	}
	var (
		res   = ClassicCheck(t.Coeffs, t.Vscale, tol)
		nr, _ = t.Coeffs.Dims()
	)
	if !res.Happy || res.Cutoff+1 >= nr {
		return t
	}
	t.Coeffs = Alias(t.Coeffs, res.Cutoff+1)
	t.Values = CoeffsToVals(t.Coeffs)
	if t.Epslevel.V != nil {
		t.Epslevel.MaxWith(res.Epslevel)
	}
	return t
}
