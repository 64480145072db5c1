package smooth

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smoothpath"
	"github.com/stretchr/testify/assert"
)

// point c such that the path (-1,0) → (0,0) → c turns by phi degrees
func turn(phi float64) smoothpath.Pair {
	return smoothpath.P(math.Cos(phi*smoothpath.Deg2Rad), math.Sin(phi*smoothpath.Deg2Rad))
}

var (
	a0 = smoothpath.P(-1, 0)
	b0 = smoothpath.Origin
)

func TestTurnAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 90.0, TurnAngle(a0, b0, turn(90)), 1e-9)
	assert.InDelta(t, 90.0, TurnAngle(a0, b0, turn(-90)), 1e-9)
	assert.InDelta(t, 30.0, TurnAngle(a0, b0, turn(150)), 1e-9)
	assert.InDelta(t, 170.0, TurnAngle(a0, b0, turn(10)), 1e-9)
	assert.InDelta(t, 45.0, TurnAngle(smoothpath.P(0, 0), smoothpath.P(1, 0), smoothpath.P(0, 1)), 1e-9)
}

func TestTurnAngleCollinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	straight := TurnAngle(smoothpath.P(0, 0), smoothpath.P(1, 1), smoothpath.P(2, 2))
	reverse := TurnAngle(smoothpath.P(0, 0), smoothpath.P(2, 0), smoothpath.P(1, 0))
	assert.InDelta(t, 180.0, straight, 1e-9)
	assert.InDelta(t, 0.0, reverse, 1e-9)
	cfg := DefaultConfig()
	cfg.SmoothSpecified = true
	assert.False(t, cfg.ShouldSmooth(smoothpath.P(0, 0), smoothpath.P(1, 1), smoothpath.P(2, 2)))
	assert.False(t, cfg.ShouldSmooth(smoothpath.P(0, 0), smoothpath.P(2, 0), smoothpath.P(1, 0)))
}

func TestTurnAngleCoincident(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := smoothpath.P(1, 1)
	assert.Equal(t, 180.0, TurnAngle(p, p, p))
	// v1 = (0,0), v2 = (-1,-1): dot product is -0, which must not flip the angle
	assert.Equal(t, 180.0, TurnAngle(p, p, smoothpath.P(0, 0)))
	assert.Equal(t, 180.0, TurnAngle(smoothpath.P(2, 2), p, p))
}

func TestShouldSmoothUnspecified(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := DefaultConfig()
	for _, phi := range []float64{0, 10, 90, 150, 180} {
		assert.True(t, cfg.ShouldSmooth(a0, b0, turn(phi)), "phi = %g", phi)
	}
}

func TestShouldSmoothBand(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := Config{SmoothSpecified: true, AngleMin: 60, AngleMax: 120}
	assert.False(t, cfg.Wraps())
	assert.True(t, cfg.ShouldSmooth(a0, b0, turn(90)))
	assert.False(t, cfg.ShouldSmooth(a0, b0, turn(150))) // 30°
	assert.False(t, cfg.ShouldSmooth(a0, b0, turn(10)))  // 170°
}

func TestShouldSmoothWrappedBand(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// min > max: angles outside [60,120] are inside the band
	cfg := Config{SmoothSpecified: true, AngleMin: 120, AngleMax: 60}
	assert.True(t, cfg.Wraps())
	assert.False(t, cfg.ShouldSmooth(a0, b0, turn(90)))
	assert.True(t, cfg.ShouldSmooth(a0, b0, turn(150))) // 30°
	assert.True(t, cfg.ShouldSmooth(a0, b0, turn(10)))  // 170°
	// min == max wraps as well and covers everything but this one angle
	cfg = Config{SmoothSpecified: true, AngleMin: 90, AngleMax: 90}
	assert.False(t, cfg.InBand(90))
	assert.True(t, cfg.InBand(89.5))
}

func TestBandLimitsAreExclusive(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := Config{SmoothSpecified: true, AngleMin: 60, AngleMax: 120}
	assert.False(t, cfg.InBand(60))
	assert.False(t, cfg.InBand(120))
	assert.True(t, cfg.InBand(60.001))
}

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, openStart, classify(0, 4, false))
	assert.Equal(t, interior, classify(1, 4, false))
	assert.Equal(t, openEnd, classify(3, 4, false))
	assert.Equal(t, seamStart, classify(0, 4, true))
	assert.Equal(t, interior, classify(2, 4, true))
	assert.Equal(t, seamEnd, classify(3, 4, true))
	assert.Equal(t, "seam-end", seamEnd.String())
}

func TestDecideEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	anchors := []smoothpath.Pair{smoothpath.P(0, 0), smoothpath.P(1, 1), smoothpath.P(2, 0)}
	all := DefaultConfig()
	assert.True(t, all.decide(anchors, 0, false))
	assert.True(t, all.decide(anchors, 2, false))
	specified := Config{SmoothSpecified: true, AngleMin: 0, AngleMax: 180}
	assert.False(t, specified.decide(anchors, 0, false))
	assert.False(t, specified.decide(anchors, 2, false))
	assert.True(t, specified.decide(anchors, 1, false))
	// closed: seam anchors use the triplet across the seam, 45° each
	narrow := Config{SmoothSpecified: true, AngleMin: 40, AngleMax: 50}
	assert.True(t, narrow.decide(anchors, 0, true))
	assert.True(t, narrow.decide(anchors, 2, true))
	assert.False(t, narrow.decide(anchors, 1, true))
}

func TestConfigValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, DefaultConfig().Validate())
	err := Config{AngleMin: -1, AngleMax: 120}.Validate()
	assert.True(t, errors.Is(err, ErrAngleRange))
	err = Config{AngleMin: 0, AngleMax: 180.5}.Validate()
	assert.True(t, errors.Is(err, ErrAngleRange))
	assert.Equal(t, "smooth all corners", DefaultConfig().String())
	assert.Equal(t, "smooth corners inside (60°,120°)", Config{true, 60, 120}.String())
	assert.Equal(t, "smooth corners outside [60°,120°]", Config{true, 120, 60}.String())
}
