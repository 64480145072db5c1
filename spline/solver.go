package spline

import (
	"fmt"
	"math"
)

// ValidateForSolve checks if a path is suitable for spline fitting.
func (path *Path) ValidateForSolve() error {
	if path == nil {
		return ErrNilPath
	}
	n := path.N()
	if n < MinAnchors {
		kind := "open path"
		if path.IsCycle() {
			kind = "cycle"
		}
		return fmt.Errorf("%w: %s needs at least %d anchors, got %d", ErrTooFewAnchors, kind, MinAnchors, n)
	}
	for i := 0; i < n; i++ {
		x, y := path.points[i].F()
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return fmt.Errorf("%w at anchor %d", ErrInvalidAnchor, i)
		}
	}
	return nil
}

/*
SolveTridiagonal solves the linear system M·b = d, where M is the k×k
matrix

	| 4 1         |
	| 1 4 1       |
	|   1 4 1     |
	|     ...     |
	|       1 4 1 |
	|         1 4 |

by forward elimination and back-substitution. During the forward pass b
holds the elimination coefficients c.i = 1/(4 - c.[i-1]), afterwards it
holds the solution. d is consumed.

The matrix is strictly diagonally dominant, therefore every system with
k ≥ 2 is well-posed. Systems with a single row must be solved by the
caller.
*/
func SolveTridiagonal(b, d []float64) error {
	k := len(b)
	if len(d) != k {
		return fmt.Errorf("%w: b has %d, d has %d", ErrLengthMismatch, k, len(d))
	}
	if k < 2 {
		return fmt.Errorf("%w: got %d", ErrSystemTooSmall, k)
	}
	b[0] = 0.25
	d[0] *= 0.25
	for i := 1; i < k; i++ {
		id := 4.0 - b[i-1]
		b[i] = 1.0 / id
		d[i] = (d[i] - d[i-1]) / id
	}
	b[k-1] = d[k-1]
	for i := k - 2; i >= 0; i-- {
		b[i] = d[i] - b[i]*b[i+1]
	}
	return nil
}
