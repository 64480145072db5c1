/*
Package polygon provides polygons and polygonal regions.

Polygons are built from anchors, with a builder similar to the one of
package spline:

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

Regions are unions of polygons. They are used to track the areas of a
drawing that have been touched by an operation and need to be redrawn.
Contours and bounding boxes are those of package polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smoothpath"
)

// L traces to the 'polygon' tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a sequence of corners, possibly closed.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by Knot.
func NullPolygon() *Polygon {
	return &Polygon{contour: polyclip.Contour{}}
}

// Knot appends a corner. Part of builder functionality.
func (pg *Polygon) Knot(p smoothpath.Pair) *Polygon {
	pg.contour.Add(pt(p))
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of corners.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns corner i.
func (pg *Polygon) Pt(i int) smoothpath.Pair {
	return pair(pg.contour[i])
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-aligned rectangle enclosing pg.
func (pg *Polygon) BoundingBox() (smoothpath.Pair, smoothpath.Pair) {
	r := pg.contour.BoundingBox()
	return pair(r.Min), pair(r.Max)
}

// Contains is a predicate: is p inside the (closed) polygon?
func (pg *Polygon) Contains(p smoothpath.Pair) bool {
	return pg.cycle && pg.contour.Contains(pt(p))
}

// Box creates a closed rectangular polygon from two diagonal corners.
func Box(p1, p2 smoothpath.Pair) *Polygon {
	x1, y1 := p1.F()
	x2, y2 := p2.F()
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return NullPolygon().Knot(smoothpath.P(x1, y1)).Knot(smoothpath.P(x2, y1)).
		Knot(smoothpath.P(x2, y2)).Knot(smoothpath.P(x1, y2)).Cycle()
}

// ControlPolygon returns the polygon through all control points of a stroke,
// in path order: handle-in, anchor, handle-out for every anchor.
func ControlPolygon(s smoothpath.Stroke) *Polygon {
	pg := NullPolygon()
	for i := 0; i < s.N(); i++ {
		pg.Knot(s.PreHandle(i)).Knot(s.Anchor(i)).Knot(s.PostHandle(i))
	}
	if s.Closed {
		pg.Cycle()
	}
	return pg
}

// AsString returns a polygon as a string, e.g. "(0,0) -- (1,3) -- cycle".
func AsString(pg *Polygon) string {
	if pg == nil {
		return "<nil polygon>"
	}
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(pg.Pt(i).String())
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

// --- Regions ---------------------------------------------------------------

// Region is an area of the plane, made up of closed contours. Contours may
// overlap; a point is inside the region if any contour contains it. The zero
// value is an empty region. Contours are not clipped against each other.
type Region struct {
	poly polyclip.Polygon
}

// Empty is a predicate: does r cover no area?
func (r Region) Empty() bool {
	return len(r.poly) == 0
}

// N returns the number of contours of r.
func (r Region) N() int {
	return len(r.poly)
}

// Union returns the union of r and a closed polygon. r is not modified.
func (r Region) Union(pg *Polygon) Region {
	if pg == nil || !pg.cycle || pg.N() < 3 {
		return r
	}
	u := Region{poly: make(polyclip.Polygon, 0, len(r.poly)+1)}
	u.poly = append(u.poly, r.poly...)
	u.poly = append(u.poly, pg.contour.Clone())
	return u
}

// Merge returns the union of two regions.
func (r Region) Merge(other Region) Region {
	if other.Empty() {
		return r
	}
	u := Region{poly: make(polyclip.Polygon, 0, len(r.poly)+len(other.poly))}
	u.poly = append(u.poly, r.poly...)
	u.poly = append(u.poly, other.poly...)
	return u
}

// BoundingBox returns the lower left and upper right corner of the region's
// bounding rectangle. For an empty region, both are the origin.
func (r Region) BoundingBox() (smoothpath.Pair, smoothpath.Pair) {
	if r.Empty() {
		return smoothpath.Origin, smoothpath.Origin
	}
	b := r.poly.BoundingBox()
	return pair(b.Min), pair(b.Max)
}

// Contains is a predicate: is p inside r?
func (r Region) Contains(p smoothpath.Pair) bool {
	for _, c := range r.poly {
		if c.Contains(pt(p)) {
			return true
		}
	}
	return false
}

// String returns the region's contours, one per line.
func (r Region) String() string {
	if r.Empty() {
		return "<empty region>"
	}
	var b strings.Builder
	for i, c := range r.poly {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d:", i)
		for _, p := range c {
			fmt.Fprintf(&b, " %s", pair(p))
		}
	}
	return b.String()
}

// StrokeRegion returns a region covering a stroke. Every Bézier segment lies
// inside the convex hull of its four control points, therefore the union of
// the segments' bounding boxes covers the stroke. Boxes are widened by margin
// on every side, which keeps horizontal and vertical segments from
// degenerating.
func StrokeRegion(s smoothpath.Stroke, margin float64) Region {
	var r Region
	n := s.N()
	segments := n - 1
	if s.Closed {
		segments = n
	}
	if n == 1 {
		segments = 0
		r = r.Union(paddedBox([]smoothpath.Pair{s.PreHandle(0), s.Anchor(0), s.PostHandle(0)}, margin))
	}
	for k := 0; k < segments; k++ {
		j := (k + 1) % n
		r = r.Union(paddedBox([]smoothpath.Pair{
			s.Anchor(k), s.PostHandle(k), s.PreHandle(j), s.Anchor(j),
		}, margin))
	}
	L().Debugf("stroke region = %s", r)
	return r
}

func paddedBox(pts []smoothpath.Pair, margin float64) *Polygon {
	pg := NullPolygon()
	for _, p := range pts {
		pg.Knot(p)
	}
	lo, hi := pg.BoundingBox()
	d := smoothpath.P(margin, margin)
	return Box(lo-d, hi+d)
}

func pt(p smoothpath.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func pair(p polyclip.Point) smoothpath.Pair {
	return smoothpath.P(p.X, p.Y)
}
