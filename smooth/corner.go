package smooth

import (
	"math"

	"github.com/npillmayer/smoothpath"
)

// TurnAngle returns the angle at vB, in degrees, between the incoming
// vector vA→vB and the outgoing vector vB→vC. It is calculated as
// 180 - |θ|, where θ is the signed turn from one vector to the other. A
// straight continuation yields 180, a full reversal yields 0.
//
// Coincident points have no direction; their turn is taken to be 0
// (math.Atan2(0,0)), i.e. they yield 180 regardless of signed zeros.
func TurnAngle(vA, vB, vC smoothpath.Pair) float64 {
	v1 := vB - vA
	v2 := vC - vB
	cross := v1.X()*v2.Y() - v1.Y()*v2.X()
	dot := v1.X()*v2.X() + v1.Y()*v2.Y()
	theta := 0.0
	if cross != 0 || dot != 0 {
		theta = math.Atan2(cross, dot)
	}
	return 180 - math.Abs(theta/smoothpath.Deg2Rad)
}

// InBand is a predicate: is angle (degrees) inside the configured band?
func (cfg Config) InBand(angle float64) bool {
	if cfg.Wraps() {
		return angle < cfg.AngleMax || angle > cfg.AngleMin
	}
	return angle > cfg.AngleMin && angle < cfg.AngleMax
}

// ShouldSmooth decides whether the anchor vB, between vA and vC, receives
// newly fitted handles. Without SmoothSpecified every anchor is smoothed.
func (cfg Config) ShouldSmooth(vA, vB, vC smoothpath.Pair) bool {
	if !cfg.SmoothSpecified {
		return true
	}
	angle := TurnAngle(vA, vB, vC)
	ok := cfg.InBand(angle)
	tracer().Debugf("angle at %v = %.4g°, smooth = %v", vB, angle, ok)
	return ok
}

// anchorKind classifies anchor positions of a stroke. Every kind has its own
// rule for the corner decision.
type anchorKind int8

const (
	openStart anchorKind = iota // first anchor of an open stroke
	seamStart                   // first anchor of a closed stroke
	interior                    // anchor with neighbours on both sides
	seamEnd                     // last anchor of a closed stroke
	openEnd                     // last anchor of an open stroke
)

func (k anchorKind) String() string {
	switch k {
	case openStart:
		return "open-start"
	case seamStart:
		return "seam-start"
	case interior:
		return "interior"
	case seamEnd:
		return "seam-end"
	case openEnd:
		return "open-end"
	}
	return "?"
}

func classify(i, n int, closed bool) anchorKind {
	switch {
	case i == 0 && closed:
		return seamStart
	case i == 0:
		return openStart
	case i == n-1 && closed:
		return seamEnd
	case i == n-1:
		return openEnd
	}
	return interior
}

// decide applies the corner rule for anchor i of anchors. Open end points
// have no angle; they are smoothed only if corners are not selected by angle.
// Seam anchors take their neighbour from across the seam.
func (cfg Config) decide(anchors []smoothpath.Pair, i int, closed bool) bool {
	n := len(anchors)
	switch classify(i, n, closed) {
	case openStart, openEnd:
		return !cfg.SmoothSpecified
	case seamStart:
		return cfg.ShouldSmooth(anchors[n-1], anchors[0], anchors[1])
	case seamEnd:
		return cfg.ShouldSmooth(anchors[n-2], anchors[n-1], anchors[0])
	}
	return cfg.ShouldSmooth(anchors[i-1], anchors[i], anchors[i+1])
}
