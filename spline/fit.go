package spline

import (
	"fmt"

	"github.com/npillmayer/smoothpath"
)

// Slopes calculates the spline values s.0 … s.[m-1] for the coordinates a
// of one axis. The boundary values are clamped to the end anchors,
// s.0 = a.0 and s.[m-1] = a.[m-1].
func Slopes(a []float64) ([]float64, error) {
	m := len(a)
	if m < MinAnchors {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrTooFewAnchors, MinAnchors, m)
	}
	s := make([]float64, m)
	s[0], s[m-1] = a[0], a[m-1]
	if m-2 == 1 { // one unknown: 4 s.1 = 6 a.1 - a.0 - a.2
		s[1] = 1.5*a[1] - 0.25*a[0] - 0.25*a[2]
		return s, nil
	}
	d := make([]float64, m-2)
	d[0] = 6*a[1] - a[0]
	for i := 1; i < m-3; i++ {
		d[i] = 6 * a[i+1]
	}
	d[m-3] = 6*a[m-2] - a[m-1]
	if err := SolveTridiagonal(s[1:m-1], d); err != nil {
		return nil, err
	}
	tracer().Debugf("s = %v", s)
	return s, nil
}

// FitAxis calculates the Bezier handle coordinates of one axis for every
// segment between consecutive anchors. For segment n (from a.n to a.[n+1]),
// before[n] is the handle leaving a.n and after[n] is the handle arriving at
// a.[n+1]. Both slices have length len(a)-1.
func FitAxis(a []float64) (before, after []float64, err error) {
	s, err := Slopes(a)
	if err != nil {
		return nil, nil, err
	}
	m := len(a)
	before = make([]float64, m-1)
	after = make([]float64, m-1)
	for n := 1; n < m; n++ {
		before[n-1] = (2*s[n-1] + s[n]) / 3
		after[n-1] = (s[n-1] + 2*s[n]) / 3
	}
	return before, after, nil
}

// seamExtended returns the anchors of a cyclic path with the last anchor
// prepended and the first two anchors appended.
func seamExtended(path *Path) []smoothpath.Pair {
	n := path.N()
	ext := make([]smoothpath.Pair, 0, n+3)
	ext = append(ext, path.Z(n-1))
	ext = append(ext, path.points...)
	ext = append(ext, path.Z(0), path.Z(1))
	return ext
}

/*
FindControls finds the spline control points for a given skeleton path.
It is the central API function of this package.

Clients may provide a container for the spline control points. If none is
provided, i.e. controls == nil, this function will allocate one.

Both axes are fitted independently by FitAxis. Cyclic paths are extended
across the seam before fitting; the handles of the two synthetic segments
are dropped afterwards. For an open path, the pre-control of the first
anchor and the post-control of the last anchor stay unknown.

FindControls will trace the calculated path using log-level INFO.
*/
func FindControls(path *Path, controls *Controls) (*Controls, error) {
	if err := path.ValidateForSolve(); err != nil {
		return nil, err
	}
	if controls == nil {
		controls = &Controls{}
	}
	n := path.N()
	anchors, first, segments := path.points, 0, n-1
	if path.IsCycle() {
		anchors, first, segments = seamExtended(path), 1, n
	}
	xs, ys := axes(anchors)
	xbefore, xafter, err := FitAxis(xs)
	if err != nil {
		return nil, err
	}
	ybefore, yafter, err := FitAxis(ys)
	if err != nil {
		return nil, err
	}
	for k := 0; k < segments; k++ {
		j := k + first
		controls.SetPostControl(k, smoothpath.P(xbefore[j], ybefore[j]))
		controls.SetPreControl((k+1)%n, smoothpath.P(xafter[j], yafter[j]))
	}
	tracer().Infof("%s", AsString(path, controls))
	return controls, nil
}

// MustFindControls is a compatibility helper which panics on validation errors.
func MustFindControls(path *Path, controls *Controls) *Controls {
	c, err := FindControls(path, controls)
	if err != nil {
		panic(err)
	}
	return c
}
