package chebtech

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/saber00001/chebfun/utils"
)

// ValsToCoeffs converts values sampled on Grid(n) to Chebyshev coefficients,
// one column at a time. Row j of the result holds the degree-j coefficient.
// The transform is the DCT-I pair realized with a real FFT of the even
// extension, O(n log n) per column. A single row is returned unchanged.
func ValsToCoeffs(values utils.Matrix) (coeffs utils.Matrix) {
	var (
		nr, nc = values.Dims()
		n      = nr - 1
	)
	if nr <= 1 {
		return values.Copy()
	}
	var (
		fft = fourier.NewFFT(2 * n)
		tmp = make([]float64, 2*n)
		fc  = make([]complex128, n+1)
	)
	coeffs = utils.NewMatrix(nr, nc)
	for j := 0; j < nc; j++ {
		col := values.Col(j)
		// Even extension of the column reordered onto the decreasing grid:
		// [v_n, v_{n-1}, ..., v_0, v_1, ..., v_{n-1}], length 2n.
		for i := 0; i <= n; i++ {
			tmp[i] = col[n-i]
		}
		for k := 1; k < n; k++ {
			tmp[2*n-k] = col[n-k]
		}
		fft.Coefficients(fc, tmp)
		for k := 0; k <= n; k++ {
			c := real(fc[k]) / float64(2*n)
			if k > 0 && k < n {
				c *= 2
			}
			coeffs.M.Set(k, j, c)
		}
	}
	return
}

// CoeffsToVals is the inverse of ValsToCoeffs: it evaluates the Chebyshev
// series held in each column on Grid(n).
func CoeffsToVals(coeffs utils.Matrix) (values utils.Matrix) {
	var (
		nr, nc = coeffs.Dims()
		n      = nr - 1
	)
	if nr <= 1 {
		return coeffs.Copy()
	}
	var (
		fft = fourier.NewFFT(2 * n)
		u   = make([]float64, 2*n)
		fc  = make([]complex128, n+1)
	)
	values = utils.NewMatrix(nr, nc)
	for j := 0; j < nc; j++ {
		col := coeffs.Col(j)
		u[0] = col[0]
		u[n] = col[n]
		for k := 1; k < n; k++ {
			u[k] = col[k] / 2
			u[2*n-k] = col[k] / 2
		}
		fft.Coefficients(fc, u)
		// Spectrum index j holds the value at the decreasing-grid point j;
		// flip back to increasing order.
		for i := 0; i <= n; i++ {
			values.M.Set(i, j, real(fc[n-i]))
		}
	}
	return
}
