package spline

import (
	"math/cmplx"

	"github.com/npillmayer/smoothpath"
)

// SetPreControl sets the incoming control point of anchor i.
func (ctrls *Controls) SetPreControl(i int, c smoothpath.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, smoothpath.Pair(cmplx.NaN()))
	ctrls.prec[i] = c
}

// SetPostControl sets the outgoing control point of anchor i.
func (ctrls *Controls) SetPostControl(i int, c smoothpath.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, smoothpath.Pair(cmplx.NaN()))
	ctrls.postc[i] = c
}

// PreControl returns the incoming control point of anchor i, or NaN if it
// has not been calculated.
func (ctrls *Controls) PreControl(i int) smoothpath.Pair {
	return getC(ctrls.prec, i, smoothpath.Pair(cmplx.NaN()))
}

// PostControl returns the outgoing control point of anchor i, or NaN if it
// has not been calculated.
func (ctrls *Controls) PostControl(i int) smoothpath.Pair {
	return getC(ctrls.postc, i, smoothpath.Pair(cmplx.NaN()))
}

// HasPreControl is a predicate: has the incoming control point of anchor i
// been calculated?
func (ctrls *Controls) HasPreControl(i int) bool {
	return !cmplx.IsNaN(ctrls.PreControl(i).C())
}

// HasPostControl is a predicate: has the outgoing control point of anchor i
// been calculated?
func (ctrls *Controls) HasPostControl(i int) bool {
	return !cmplx.IsNaN(ctrls.PostControl(i).C())
}
