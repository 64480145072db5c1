/*
Package smooth smooths the strokes of vector paths by cubic-spline
interpolation, optionally preserving hard corners.

Every stroke is processed on its own: the anchors are extracted, a spline
is fitted through them (package spline), and for every anchor a corner
rule decides whether its handles are replaced by the fitted ones or kept.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package smooth

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smoothpath"
	"github.com/npillmayer/smoothpath/spline"
)

// tracer writes to trace with key 'smooth'
func tracer() tracing.Trace {
	return tracing.Select("smooth")
}

// MinAnchors is the minimum number of anchors a stroke needs to be smoothed.
// Shorter strokes pass through unchanged.
const MinAnchors = spline.MinAnchors

// Smooth fits a cubic spline through the anchors of s and returns a new
// stroke with the same anchors, length and closed flag. Anchors selected by
// cfg receive the fitted handles, all others keep their original handles.
//
// Strokes with fewer than MinAnchors anchors are returned unchanged (as a
// copy). s is expected to be structurally valid, see Stroke.Validate.
func Smooth(s smoothpath.Stroke, cfg Config) smoothpath.Stroke {
	out := s.Clone()
	n := s.N()
	if n < MinAnchors {
		tracer().Debugf("stroke of %d anchors passes through", n)
		return out
	}
	anchors := s.Anchors()
	path := spline.FromAnchors(anchors, s.Closed)
	controls, err := spline.FindControls(path, path.Controls)
	if err != nil { // only for invalid coordinates, which we leave alone
		tracer().Errorf("cannot smooth stroke: %v", err)
		return out
	}
	smoothed := 0
	for i := 0; i < n; i++ {
		if !cfg.decide(anchors, i, s.Closed) {
			continue
		}
		smoothed++
		j := i * smoothpath.ScalarsPerAnchor
		if controls.HasPreControl(i) {
			out.Points[j], out.Points[j+1] = controls.PreControl(i).F()
		}
		if controls.HasPostControl(i) {
			out.Points[j+4], out.Points[j+5] = controls.PostControl(i).F()
		}
	}
	tracer().Infof("smoothed %d of %d anchors (%s)", smoothed, n, cfg)
	return out
}

// SmoothAll smooths a list of strokes, one after another.
func SmoothAll(strokes []smoothpath.Stroke, cfg Config) []smoothpath.Stroke {
	result := make([]smoothpath.Stroke, len(strokes))
	for i, s := range strokes {
		result[i] = Smooth(s, cfg)
	}
	return result
}
