package chebtech

import "fmt"

// EvaluationError reports a failure of the caller-supplied function: either
// it returned an error itself, or its output shape does not match the batch
// of points it was handed.
type EvaluationError struct {
	Pts        int
	Rows, Cols int
	Err        error
}

func (e *EvaluationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("function evaluation failed on %d points: %v", e.Pts, e.Err)
	}
	return fmt.Sprintf("function returned a %dx%d matrix for %d points", e.Rows, e.Cols, e.Pts)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// AllNonFiniteError reports an output column with no finite sample anywhere
// on the grid, leaving nothing to extrapolate from.
type AllNonFiniteError struct {
	Col int
}

func (e *AllNonFiniteError) Error() string {
	return fmt.Sprintf("column %d has no finite sample values", e.Col)
}

// DimensionMismatchError reports an inconsistent values/coefficients pair
// supplied to the non-adaptive entry points.
type DimensionMismatchError struct {
	ValRows, ValCols     int
	CoeffRows, CoeffCols int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("values %dx%d and coefficients %dx%d have mismatched shapes",
		e.ValRows, e.ValCols, e.CoeffRows, e.CoeffCols)
}
