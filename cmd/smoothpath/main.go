package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/smoothpath/document"
	"github.com/npillmayer/smoothpath/plugin"
	"github.com/tdewolff/argp"
)

// Smooth is the command: it smooths one path of a YAML document.
type Smooth struct {
	Path            string `short:"p" default:"" desc:"Name of the path to smooth (default: topmost path)"`
	SmoothSpecified string `short:"s" name:"smooth-specified" default:"" desc:"Smooth only corners within the angle band (true/false)"`
	AngleMin        string `name:"angle-min" default:"" desc:"Minimum angle to be smoothed, in degrees"`
	AngleMax        string `name:"angle-max" default:"" desc:"Maximum angle to be smoothed, in degrees"`
	Mode            string `short:"m" default:"non-interactive" desc:"Run mode: interactive, non-interactive or with-last-vals"`
	Settings        string `default:"" desc:"Settings file for interactive runs"`
	Output          string `short:"o" default:"" desc:"Output file (default: stdout)"`
	Trace           string `default:"" desc:"Trace level: error, info or debug"`
	Input           string `index:"0" desc:"Input file (YAML document)"`
}

func main() {
	root := argp.NewCmd(&Smooth{}, "Smooth the strokes of a vector path by cubic-spline interpolation")
	root.Parse()
	root.PrintHelp()
}

// traceSelector hands out one Go-logger tracer per key, all at the same
// trace level.
type traceSelector struct {
	sync.Mutex
	level   tracing.TraceLevel
	tracers map[string]tracing.Trace
}

func newTraceSelector(level tracing.TraceLevel) *traceSelector {
	return &traceSelector{level: level, tracers: map[string]tracing.Trace{}}
}

// Select is part of interface tracing.TraceSelector.
func (sel *traceSelector) Select(key string) tracing.Trace {
	sel.Lock()
	defer sel.Unlock()
	t, ok := sel.tracers[key]
	if !ok {
		t = gologadapter.New()
		t.SetTraceLevel(sel.level)
		sel.tracers[key] = t
	}
	return t
}

// Run is called by argp after the flags have been parsed.
func (cmd *Smooth) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	if cmd.Trace != "" {
		tracing.SetTraceSelector(newTraceSelector(tracing.TraceLevelFromString(cmd.Trace)))
	}
	mode, err := plugin.ParseRunMode(cmd.Mode)
	if err != nil {
		fmt.Println("ERROR:", err)
		return argp.ShowUsage
	}
	params, err := cmd.params()
	if err != nil {
		fmt.Println("ERROR:", err)
		return argp.ShowUsage
	}

	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()
	img, err := document.Load(f)
	if err != nil {
		return err
	}

	var v *document.Vectors
	if cmd.Path != "" {
		if v, err = img.VectorsByName(cmd.Path); err != nil {
			return err
		}
	} else if ids := img.List(); len(ids) > 0 {
		v, _ = img.Vectors(ids[0])
	} else {
		return fmt.Errorf("%s: %w", cmd.Input, document.ErrNoSuchVectors)
	}

	var store document.SettingsStore
	if cmd.Settings != "" {
		store = document.NewFileSettings(cmd.Settings)
	}
	status, err := plugin.Run(img, v.ID, mode, params, store)
	if err != nil {
		return fmt.Errorf("%s: %w", status, err)
	}
	fmt.Fprintf(os.Stderr, "%s %q: %s\n", plugin.ProcedureName, v.Name, status)

	var w io.Writer = os.Stdout
	if cmd.Output != "" && cmd.Output != "-" {
		fw, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer fw.Close()
		w = fw
	}
	return img.Save(w)
}

// params converts the optional flags. Flags left empty are not given.
func (cmd *Smooth) params() (plugin.Params, error) {
	var p plugin.Params
	if cmd.SmoothSpecified != "" {
		b, err := strconv.ParseBool(cmd.SmoothSpecified)
		if err != nil {
			return p, fmt.Errorf("smooth-specified: %w", err)
		}
		p.Smooth = &b
	}
	var err error
	if p.AngleMin, err = parseAngle("angle-min", cmd.AngleMin); err != nil {
		return p, err
	}
	if p.AngleMax, err = parseAngle("angle-max", cmd.AngleMax); err != nil {
		return p, err
	}
	return p, nil
}

func parseAngle(name, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &a, nil
}
