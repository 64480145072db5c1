/*
Package plugin implements the smooth-path procedure on top of package
document: it replaces every stroke of a path by its smoothed version,
as one undoable step.

The procedure knows three run modes. Interactive runs start from the
settings of the last interactive run, NonInteractive runs need all
parameters to be given explicitly, and runs WithLastVals are passed
through to the host.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package plugin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smoothpath/document"
	"github.com/npillmayer/smoothpath/smooth"
)

// tracer writes to trace with key 'plugin'
func tracer() tracing.Trace {
	return tracing.Select("plugin")
}

// ProcedureName is the key under which settings are persisted.
const ProcedureName = "plug-in-smooth-path"

// ErrMissingParams is returned for non-interactive runs without a complete
// set of parameters.
var ErrMissingParams = errors.New("non-interactive run needs smooth, angle-min and angle-max")

// RunMode tells how the procedure has been invoked.
type RunMode int8

// Run modes of the procedure, corresponding to the host's run modes.
const (
	Interactive RunMode = iota
	NonInteractive
	WithLastVals
)

func (m RunMode) String() string {
	switch m {
	case Interactive:
		return "interactive"
	case NonInteractive:
		return "non-interactive"
	case WithLastVals:
		return "with-last-vals"
	}
	return fmt.Sprintf("RunMode(%d)", int8(m))
}

// ParseRunMode returns the run mode named s (see RunMode.String).
func ParseRunMode(s string) (RunMode, error) {
	for _, m := range []RunMode{Interactive, NonInteractive, WithLastVals} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return Interactive, fmt.Errorf("unknown run mode %q", s)
}

// Status is the outcome of a run.
type Status int8

// Results of a run. ExecutionError is reported for paths which cannot be
// read or replaced.
const (
	Success Status = iota
	CallingError
	ExecutionError
	PassThrough
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case CallingError:
		return "calling error"
	case ExecutionError:
		return "execution error"
	case PassThrough:
		return "pass through"
	}
	return fmt.Sprintf("Status(%d)", int8(s))
}

// Params are the explicit parameters of a run. Nil fields are not given.
type Params struct {
	Smooth   *bool
	AngleMin *float64
	AngleMax *float64
}

// Complete is a predicate: are all parameters given?
func (p Params) Complete() bool {
	return p.Smooth != nil && p.AngleMin != nil && p.AngleMax != nil
}

// Apply returns cfg with every given parameter replacing its counterpart.
func (p Params) Apply(cfg smooth.Config) smooth.Config {
	if p.Smooth != nil {
		cfg.SmoothSpecified = *p.Smooth
	}
	if p.AngleMin != nil {
		cfg.AngleMin = *p.AngleMin
	}
	if p.AngleMax != nil {
		cfg.AngleMax = *p.AngleMax
	}
	return cfg
}

// Run executes the procedure on path vectorsID of img.
//
// Interactive runs load the last settings from store (if not nil), overlay
// the given params, and store the settings used after a successful run.
// Unless the run is NonInteractive, the image's damage is flushed afterwards.
func Run(img *document.Image, vectorsID document.ID, mode RunMode, params Params,
	store document.SettingsStore) (Status, error) {
	var cfg smooth.Config
	switch mode {
	case Interactive:
		cfg = smooth.DefaultConfig()
		if store != nil {
			var err error
			if cfg, err = store.Get(ProcedureName); err != nil {
				tracer().Errorf("cannot read last settings: %v", err)
			}
		}
		cfg = params.Apply(cfg)
	case NonInteractive:
		if !params.Complete() {
			return CallingError, ErrMissingParams
		}
		cfg = params.Apply(smooth.DefaultConfig())
	case WithLastVals:
		tracer().Infof("run mode %s: passing through", mode)
		return PassThrough, nil
	default:
		return CallingError, fmt.Errorf("unknown run mode %d", mode)
	}
	if err := cfg.Validate(); err != nil {
		return CallingError, err
	}
	tracer().Infof("%s run on vectors %d: %s", mode, vectorsID, cfg)
	if _, err := SmoothPath(img, vectorsID, cfg); err != nil {
		return ExecutionError, err
	}
	if mode != NonInteractive {
		img.Flush()
	}
	if mode == Interactive && store != nil {
		if err := store.Set(ProcedureName, cfg); err != nil {
			tracer().Errorf("cannot store settings: %v", err)
		}
	}
	return Success, nil
}

// SmoothPath replaces path vectorsID by a new path of the same name and
// position, holding the smoothed strokes. The replacement is a single undo
// step. It returns the ID of the new path.
func SmoothPath(img *document.Image, vectorsID document.ID, cfg smooth.Config) (document.ID, error) {
	old, err := img.Vectors(vectorsID)
	if err != nil {
		return 0, err
	}
	img.UndoGroupStart()
	defer func() {
		if err := img.UndoGroupEnd(); err != nil {
			tracer().Errorf("%v", err)
		}
	}()
	nv := img.NewVectors(old.Name)
	for _, sid := range old.StrokeIDs() {
		s, err := img.ReadStroke(vectorsID, sid)
		if err != nil {
			return 0, err
		}
		out := smooth.Smooth(s, cfg)
		if _, err := nv.NewStrokeFromPoints(out.Points, out.Closed); err != nil {
			return 0, fmt.Errorf("stroke %d: %w", sid, err)
		}
	}
	if err := img.ReplaceVectors(vectorsID, nv); err != nil {
		return 0, err
	}
	tracer().Debugf("vectors %d smoothed into %d", vectorsID, nv.ID)
	return nv.ID, nil
}
