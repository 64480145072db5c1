package spline

import (
	"github.com/npillmayer/smoothpath"
)

func newSkeletonPath(points []smoothpath.Pair) *Path {
	path := &Path{}
	path.points = make([]smoothpath.Pair, len(points), len(points)*2)
	copy(path.points, points)
	path.Controls = &Controls{}
	return path
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a closed path of three anchors:
//
//	var path *Path
//	var controls *Controls
//	path = Nullpath().Knot(P(0,0)).Knot(P(3,2)).Knot(P(5,2.5)).Cycle()
//	controls = path.Controls
//
// Calling Cycle() or End() returns a path. Its control point container
// (path.Controls) is empty and to be filled by FindControls.
func Nullpath() *Path {
	return newSkeletonPath(nil)
}

// FromAnchors creates a path from a list of anchors, cyclic or not.
// The anchors are copied.
func FromAnchors(anchors []smoothpath.Pair, cycle bool) *Path {
	path := newSkeletonPath(anchors)
	path.cycle = cycle
	return path
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Cycle closes a cyclic path. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.cycle = true
	return path
}

// Knot adds an anchor to a path. Part of builder functionality.
func (path *Path) Knot(p smoothpath.Pair) *Path {
	path.points = append(path.points, p)
	return path
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the length of this path (anchor count). For cyclic paths, the
// seam is not counted twice.
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the anchor at position (i mod N). Negative positions count
// backwards from the end.
func (path *Path) Z(i int) smoothpath.Pair {
	n := path.N()
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return path.points[i]
}
