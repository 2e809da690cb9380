package chebtech

import (
	"runtime"
	"sync"

	"github.com/saber00001/chebfun/utils"
)

// RefinementMode selects how successive sample grids are produced.
type RefinementMode int

const (
	// Nested doubles the grid each round and evaluates the function only at
	// the newly introduced points, reusing prior samples at coincident
	// points of the nested grids.
	Nested RefinementMode = iota
	// Resampling doubles the grid and re-evaluates every point.
	Resampling
	// Compose behaves like Resampling but starts near the operand's current
	// length instead of the minimum grid, for operator composition where the
	// expected resolution is already known.
	Compose
)

func (rm RefinementMode) String() string {
	switch rm {
	case Nested:
		return "nested"
	case Resampling:
		return "resampling"
	case Compose:
		return "compose"
	}
	return "unknown"
}

type refiner struct {
	f   Fn
	cfg Config
	nc  int // output column count, fixed by the first evaluation
}

// next produces the sample matrix for the following iteration, or signals
// give-up when the grid required would exceed the configured degree limit.
func (r *refiner) next(prev utils.Matrix) (values utils.Matrix, giveUp bool, err error) {
	if prev.IsEmpty() {
		values, err = r.evaluate(Grid(r.firstDegree()).DataP())
		return
	}
	var (
		nrPrev, _ = prev.Dims()
		n         = 2 * (nrPrev - 1) // next degree, doubling the intervals
	)
	if n > r.cfg.MaxDegree {
		giveUp = true
		return
	}
	if r.cfg.Refinement != Nested {
		values, err = r.evaluate(Grid(n).DataP())
		return
	}
	// Grid(n) contains Grid(n/2) at the even indices, so only the odd
	// indexed points are new.
	var (
		x      = Grid(n)
		newPts = make([]float64, n/2)
	)
	for k := 0; k < n/2; k++ {
		newPts[k] = x.AtVec(2*k + 1)
	}
	fresh, err := r.evaluate(newPts)
	if err != nil {
		return
	}
	_, nc := fresh.Dims()
	values = utils.NewMatrix(n+1, nc)
	for i := 0; i <= n; i++ {
		if i%2 == 0 {
			values.SetRow(i, prev.Row(i/2))
		} else {
			values.SetRow(i, fresh.Row(i/2))
		}
	}
	return
}

// firstDegree picks the initial grid: the minimum sample count, raised for
// Compose refinement to the next power-of-two-plus-one at or above the
// operand's length.
func (r *refiner) firstDegree() (n int) {
	n = r.cfg.MinSamples - 1
	if r.cfg.Refinement == Compose && r.cfg.InitialLength > 0 {
		for n+1 < r.cfg.InitialLength {
			n *= 2
		}
	}
	return
}

func (r *refiner) evaluate(points []float64) (out utils.Matrix, err error) {
	if !r.cfg.Parallel || len(points) < 2 {
		if out, err = r.evaluateBatch(points); err == nil {
			_, r.nc = out.Dims()
		}
		return
	}
	var (
		np = runtime.NumCPU()
	)
	if np > len(points) {
		np = len(points)
	}
	var (
		pm   = utils.NewPartitionMap(np, len(points))
		outs = make([]utils.Matrix, np)
		errs = make([]error, np)
		wg   sync.WaitGroup
	)
	for t := 0; t < np; t++ {
		wg.Add(1)
		go func(t int) {
			defer wg.Done()
			lo, hi := pm.Partitions[t][0], pm.Partitions[t][1]
			outs[t], errs[t] = r.evaluateBatch(points[lo:hi])
		}(t)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			err = e
			return
		}
	}
	_, nc := outs[0].Dims()
	for t := 1; t < np; t++ {
		if nrt, nct := outs[t].Dims(); nct != nc {
			lo, hi := pm.Partitions[t][0], pm.Partitions[t][1]
			err = &EvaluationError{Pts: hi - lo, Rows: nrt, Cols: nct}
			return
		}
	}
	out = utils.NewMatrix(len(points), nc)
	for t := 0; t < np; t++ {
		lo := pm.Partitions[t][0]
		nr, _ := outs[t].Dims()
		for i := 0; i < nr; i++ {
			out.SetRow(lo+i, outs[t].Row(i))
		}
	}
	r.nc = nc
	return
}

// evaluateBatch invokes the target function on one batch of points and
// validates the returned shape. It never mutates the refiner, so parallel
// callers can share it.
func (r *refiner) evaluateBatch(points []float64) (out utils.Matrix, err error) {
	out, ferr := r.f(points)
	if ferr != nil {
		err = &EvaluationError{Pts: len(points), Err: ferr}
		return
	}
	nr, nc := out.Dims()
	if nr != len(points) || nc == 0 || (r.nc != 0 && nc != r.nc) {
		err = &EvaluationError{Pts: len(points), Rows: nr, Cols: nc}
		return
	}
	return
}
