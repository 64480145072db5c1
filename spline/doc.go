// Package spline fits interpolating cubic splines through the anchors of
// a path. It provides the tridiagonal solver and the per-axis fitting
// procedure used to smooth vector-path strokes.
/*

Every segment between two consecutive anchors z.i and z.[i+1] becomes a
cubic Bezier curve. Requiring the first and second derivatives to be
continuous at every interior anchor leads to one unknown s.i per anchor,
for each axis independently, with

	z.i = ( s.[i-1] + 4 s.i + s.[i+1] ) / 6

The values s.i are the de Boor points of the uniform cubic B-spline
interpolating the anchors. At the ends of an open path the boundary values
are clamped to the end anchors, s.0 = z.0 and s.[n-1] = z.[n-1]. The
remaining interior system is tridiagonal with 4 on the diagonal and 1 on
both off-diagonals, and is solved by forward elimination and
back-substitution (Thomas algorithm) in linear time.

Bezier handles follow from the solution by dividing every leg s.i → s.[i+1]
into thirds:

	post-control of z.i      = (2 s.i + s.[i+1]) / 3
	pre-control of z.[i+1]   = (s.i + 2 s.[i+1]) / 3

Cyclic paths are handled by extending the anchor list across the seam: the
last anchor is prepended, the first two anchors are appended. The
synthetic first and last segments are dropped after fitting, so every
anchor of a cyclic path, including the ones at the seam, is treated by
the same interior-point equations.

Usage

Clients build a skeleton path of anchors, much like a MetaPost path
without any join parameters:

	path := Nullpath().Knot(P(0,0)).Knot(P(1,1)).Knot(P(2,0)).End()
	controls, err := FindControls(path, nil)

which results in

	(0,0) .. controls (0.3333,0.5000) and (0.6667,1.0000)
	  .. (1,1) .. controls (1.3333,1.0000) and (1.6667,0.5000)
	  .. (2,0)

The per-axis building blocks, FitAxis and SolveTridiagonal, are exported
as well.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import "fmt"

// AsString returns
// a path -- optionally including spline control point information -- as a
// (debugging) string. The string contains newlines if control point
// information is present. Otherwise it will include the anchor coordinates
// in one line.
//
// Example, a triangle-shaped open path:
//
//	(0,0) .. controls (0.3333,0.5000) and (0.6667,1.0000)
//	  .. (1,1) .. controls (1.3333,1.0000) and (1.6667,0.5000)
//	  .. (2,0)
//
// Control points not calculated yet are shown as "(<unknown>)".
func AsString(path *Path, contr *Controls) string {
	var s string
	for i := 0; i < path.N(); i++ {
		pt := path.Z(i)
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && (i < path.N()-1 || path.IsCycle()) {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	if path.IsCycle() {
		if contr != nil {
			s += fmt.Sprintf(" and %s\n ", ptstring(contr.PreControl(0), true))
		}
		s += " .. cycle"
	}
	return s
}
