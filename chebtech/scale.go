package chebtech

import (
	"github.com/saber00001/chebfun/utils"
)

// UpdateVscale folds the magnitudes of the newly sampled values into the
// running per-column vertical scale. Non-finite entries contribute nothing,
// so divergent samples cannot corrupt the scale. The result is element-wise
// non-decreasing across successive calls within one construction.
func UpdateVscale(prev utils.Vector, values utils.Matrix) (next utils.Vector) {
	next = values.ColMaxAbsFinite()
	if prev.V == nil || prev.Len() != next.Len() {
		return
	}
	next = next.MaxWith(prev)
	return
}
