package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) IsEmpty() bool {
	if m.M == nil {
		return true
	}
	nr, _ := m.Dims()
	return nr == 0
}

func (m Matrix) Set(i, j int, val float64) Matrix {
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Row(i int) (r []float64) {
	var (
		_, nc = m.Dims()
	)
	r = make([]float64, nc)
	copy(r, m.M.RawRowView(i))
	return
}

func (m Matrix) SetRow(i int, vals []float64) Matrix {
	m.M.SetRow(i, vals)
	return m
}

func (m Matrix) Col(j int) (c []float64) {
	var (
		nr, _ = m.Dims()
	)
	c = make([]float64, nr)
	for i := 0; i < nr; i++ {
		c[i] = m.At(i, j)
	}
	return
}

func (m Matrix) SetCol(j int, vals []float64) Matrix {
	m.M.SetCol(j, vals)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.M.RawMatrix().Data
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	var (
		data = m.M.RawMatrix().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

// ColMaxAbsFinite reduces each column to the largest magnitude among its
// finite entries. Non-finite entries contribute zero.
func (m Matrix) ColMaxAbsFinite() (R Vector) {
	var (
		nr, nc = m.Dims()
	)
	R = NewVector(nc)
	for j := 0; j < nc; j++ {
		var max float64
		for i := 0; i < nr; i++ {
			val := math.Abs(m.At(i, j))
			if !math.IsInf(val, 0) && !math.IsNaN(val) && val > max {
				max = val
			}
		}
		R.V.SetVec(j, max)
	}
	return
}

// NonFiniteRowMasks marks rows containing NaN or Inf entries in any column.
func (m Matrix) NonFiniteRowMasks() (maskNaN, maskInf []bool) {
	var (
		nr, nc = m.Dims()
	)
	maskNaN = make([]bool, nr)
	maskInf = make([]bool, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			val := m.At(i, j)
			if math.IsNaN(val) {
				maskNaN[i] = true
			}
			if math.IsInf(val, 0) {
				maskInf[i] = true
			}
		}
	}
	return
}

func (m Matrix) MaxAbsDiff(A Matrix) (max float64) {
	var (
		nr, nc   = m.Dims()
		nrA, ncA = A.Dims()
	)
	if nr != nrA || nc != ncA {
		panic(fmt.Errorf("dimension mismatch: [%d,%d] vs [%d,%d]", nr, nc, nrA, ncA))
	}
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			if d := math.Abs(m.At(i, j) - A.At(i, j)); d > max {
				max = d
			}
		}
	}
	return
}
