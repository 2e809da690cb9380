// Package chebtech builds finite Chebyshev series representations of
// caller-supplied functions on [-1,1], adaptively selecting the minimal
// polynomial degree that meets a requested relative accuracy.
package chebtech

import (
	"math"

	"github.com/saber00001/chebfun/utils"
)

// Grid returns the n+1 Chebyshev points of the second kind on [-1,1] in
// increasing order:
//
//	x_j = sin(pi*(2j-n)/(2n)), j = 0..n
//
// The sine form is symmetric to the last bit, unlike -cos(j*pi/n).
// Grid(0) is the single point {0}.
func Grid(n int) (X utils.Vector) {
	if n < 0 {
		panic("negative grid degree")
	}
	if n == 0 {
		return utils.NewVector(1)
	}
	var (
		x = make([]float64, n+1)
	)
	for j := 0; j <= n; j++ {
		x[j] = math.Sin(math.Pi * float64(2*j-n) / float64(2*n))
	}
	X = utils.NewVector(n+1, x)
	return
}
