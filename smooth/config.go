package smooth

import (
	"errors"
	"fmt"
)

// ErrAngleRange indicates a band limit outside of [0,180] degrees.
var ErrAngleRange = errors.New("angle must be in [0,180] degrees")

// Config holds the parameters of a smoothing pass. It is read-only for the
// duration of a pass.
//
// If SmoothSpecified is false, every anchor is smoothed. The end points of
// open strokes get a fitted handle on their inner side only. If it is true,
// only anchors whose angle lies inside the band (AngleMin, AngleMax) are
// smoothed, and the end points of open strokes keep their handles. A band
// with AngleMax ≤ AngleMin wraps around: angles outside [AngleMax, AngleMin]
// are inside the band.
type Config struct {
	SmoothSpecified bool    `yaml:"smooth-specified"`
	AngleMin        float64 `yaml:"angle-min"` // degrees
	AngleMax        float64 `yaml:"angle-max"` // degrees
}

// DefaultConfig returns the configuration used when no settings have been
// persisted yet.
func DefaultConfig() Config {
	return Config{
		SmoothSpecified: false,
		AngleMin:        60.0,
		AngleMax:        120.0,
	}
}

// Validate checks the band limits.
func (cfg Config) Validate() error {
	if cfg.AngleMin < 0 || cfg.AngleMin > 180 {
		return fmt.Errorf("%w: angle-min = %g", ErrAngleRange, cfg.AngleMin)
	}
	if cfg.AngleMax < 0 || cfg.AngleMax > 180 {
		return fmt.Errorf("%w: angle-max = %g", ErrAngleRange, cfg.AngleMax)
	}
	return nil
}

// Wraps is a predicate: does the angle band wrap around?
func (cfg Config) Wraps() bool {
	return cfg.AngleMax <= cfg.AngleMin
}

func (cfg Config) String() string {
	if !cfg.SmoothSpecified {
		return "smooth all corners"
	}
	if cfg.Wraps() {
		return fmt.Sprintf("smooth corners outside [%g°,%g°]", cfg.AngleMax, cfg.AngleMin)
	}
	return fmt.Sprintf("smooth corners inside (%g°,%g°)", cfg.AngleMin, cfg.AngleMax)
}
