package spline

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smoothpath"
)

// tracer writes to trace with key 'spline'
func tracer() tracing.Trace {
	return tracing.Select("spline")
}

// MinAnchors is the minimum number of anchors a path needs to be fitted.
const MinAnchors = 3

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewAnchors indicates the anchor count is insufficient for fitting.
	ErrTooFewAnchors = errors.New("too few anchors")
	// ErrInvalidAnchor indicates an anchor coordinate contains NaN/Inf.
	ErrInvalidAnchor = errors.New("path has invalid anchor coordinate")
	// ErrSystemTooSmall indicates a tridiagonal system with less than 2 rows.
	ErrSystemTooSmall = errors.New("tridiagonal system needs at least 2 rows")
	// ErrLengthMismatch indicates solution and right-hand side vectors of
	// different length.
	ErrLengthMismatch = errors.New("vectors differ in length")
)

// Path is the concrete type for building and fitting spline paths.
// To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	points   []smoothpath.Pair // anchor i
	cycle    bool              // is this path cyclic ?
	Controls *Controls         // control points to be calculated
}

// Controls collects calculated spline control points.
//
// For an open path of n anchors, post-controls 0…n-2 and pre-controls 1…n-1
// get calculated. For a cyclic path every anchor receives both.
type Controls struct {
	prec  []smoothpath.Pair // control point i-, to be calculated
	postc []smoothpath.Pair // control point i+, to be calculated
}
