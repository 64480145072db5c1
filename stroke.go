package smoothpath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ScalarsPerAnchor is the number of coordinates per anchor in a flattened
// control point sequence: handle-in, anchor, handle-out, each as x,y.
const ScalarsPerAnchor = 6

// ErrMalformedStroke indicates a control point sequence whose length is not a
// multiple of ScalarsPerAnchor, or which contains NaN/Inf.
var ErrMalformedStroke = errors.New("malformed stroke")

// Stroke is one continuous component of a vector path, open or closed.
//
// Points holds, for every anchor in path order, the flattened triple
//
//	handleIn.x, handleIn.y, anchor.x, anchor.y, handleOut.x, handleOut.y
//
// Strokes are treated as immutable values: operations on strokes return new
// strokes and never modify the receiver's point slice.
type Stroke struct {
	Points []float64 `yaml:"points,flow"`
	Closed bool      `yaml:"closed"`
}

// NewStroke creates a stroke from a flattened point sequence. The sequence
// is copied.
func NewStroke(points []float64, closed bool) Stroke {
	s := Stroke{Points: make([]float64, len(points)), Closed: closed}
	copy(s.Points, points)
	return s
}

// StrokeFromAnchors creates a stroke with handles collapsed onto their
// anchors, i.e., a polyline of anchors.
func StrokeFromAnchors(anchors []Pair, closed bool) Stroke {
	s := Stroke{Points: make([]float64, 0, len(anchors)*ScalarsPerAnchor), Closed: closed}
	for _, a := range anchors {
		x, y := a.F()
		s.Points = append(s.Points, x, y, x, y, x, y)
	}
	return s
}

// Validate checks the structural invariants of a stroke.
func (s Stroke) Validate() error {
	if len(s.Points)%ScalarsPerAnchor != 0 {
		return fmt.Errorf("%w: %d coordinates is not a multiple of %d",
			ErrMalformedStroke, len(s.Points), ScalarsPerAnchor)
	}
	for i, c := range s.Points {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: invalid coordinate at index %d", ErrMalformedStroke, i)
		}
	}
	return nil
}

// N returns the number of anchors of a stroke.
func (s Stroke) N() int {
	return len(s.Points) / ScalarsPerAnchor
}

func (s Stroke) pt(i, offset int) Pair {
	j := i*ScalarsPerAnchor + offset
	return P(s.Points[j], s.Points[j+1])
}

// PreHandle returns the incoming handle of anchor i.
func (s Stroke) PreHandle(i int) Pair {
	return s.pt(i, 0)
}

// Anchor returns anchor i.
func (s Stroke) Anchor(i int) Pair {
	return s.pt(i, 2)
}

// PostHandle returns the outgoing handle of anchor i.
func (s Stroke) PostHandle(i int) Pair {
	return s.pt(i, 4)
}

// Anchors returns all anchors of a stroke, in path order.
func (s Stroke) Anchors() []Pair {
	anchors := make([]Pair, s.N())
	for i := range anchors {
		anchors[i] = s.Anchor(i)
	}
	return anchors
}

// Clone returns a deep copy of s.
func (s Stroke) Clone() Stroke {
	return NewStroke(s.Points, s.Closed)
}

// Equal is a predicate: are s and t the same stroke, coordinate by coordinate?
func (s Stroke) Equal(t Stroke) bool {
	if s.Closed != t.Closed || len(s.Points) != len(t.Points) {
		return false
	}
	for i := range s.Points {
		if s.Points[i] != t.Points[i] {
			return false
		}
	}
	return true
}

// Transformed returns a new stroke with every anchor and handle transformed
// by m.
func (s Stroke) Transformed(m AT) Stroke {
	t := Stroke{Points: make([]float64, len(s.Points)), Closed: s.Closed}
	for j := 0; j+1 < len(s.Points); j += 2 {
		p := m.Transform(P(s.Points[j], s.Points[j+1]))
		t.Points[j], t.Points[j+1] = p.F()
	}
	return t
}

// Rotated returns a closed stroke with its anchor list rotated to start at
// anchor k. For open strokes, s is returned unchanged.
func (s Stroke) Rotated(k int) Stroke {
	n := s.N()
	if !s.Closed || n == 0 {
		return s.Clone()
	}
	k = ((k % n) + n) % n
	t := Stroke{Points: make([]float64, 0, len(s.Points)), Closed: true}
	t.Points = append(t.Points, s.Points[k*ScalarsPerAnchor:]...)
	t.Points = append(t.Points, s.Points[:k*ScalarsPerAnchor]...)
	return t
}

// AsString returns a stroke as a (debugging) string, one anchor per line:
//
//	(0,0) [(-1,0) | (1,0)]
func (s Stroke) AsString() string {
	var b strings.Builder
	for i := 0; i < s.N(); i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s [%s | %s]", s.Anchor(i), s.PreHandle(i), s.PostHandle(i))
	}
	if s.Closed {
		b.WriteString("\ncycle")
	}
	return b.String()
}
