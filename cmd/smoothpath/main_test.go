package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smoothpath/document"
	"github.com/npillmayer/smoothpath/smooth"
	"github.com/stretchr/testify/assert"
)

const input = `vectors:
  - name: zigzag
    strokes:
      - points: [0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 0, 2, 0, 2, 0]
`

func TestParams(t *testing.T) {
	cmd := &Smooth{SmoothSpecified: "true", AngleMax: "150"}
	p, err := cmd.params()
	assert.NoError(t, err)
	assert.False(t, p.Complete())
	assert.Nil(t, p.AngleMin)
	assert.Equal(t, smooth.Config{SmoothSpecified: true, AngleMin: 60, AngleMax: 150},
		p.Apply(smooth.DefaultConfig()))
	_, err = (&Smooth{AngleMin: "sixty"}).params()
	assert.Error(t, err)
	_, err = (&Smooth{SmoothSpecified: "maybe"}).params()
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.yaml"), filepath.Join(dir, "out.yaml")
	assert.NoError(t, os.WriteFile(in, []byte(input), 0o644))
	cmd := &Smooth{
		Path:            "zigzag",
		SmoothSpecified: "false",
		AngleMin:        "60",
		AngleMax:        "120",
		Mode:            "non-interactive",
		Output:          out,
		Input:           in,
	}
	assert.NoError(t, cmd.Run())
	f, err := os.Open(out)
	assert.NoError(t, err)
	defer f.Close()
	img, err := document.Load(f)
	assert.NoError(t, err)
	v, err := img.VectorsByName("zigzag")
	assert.NoError(t, err)
	s, _ := v.ReadStroke(1)
	assert.InDelta(t, 1.0/3, s.PostHandle(0).X(), 1e-9)
	assert.InDelta(t, 0.5, s.PostHandle(0).Y(), 1e-9)

	cmd.SmoothSpecified = ""
	err = cmd.Run()
	assert.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "calling error"))
	cmd.Path = "missing"
	assert.Error(t, cmd.Run())
}

func TestTraceSelector(t *testing.T) {
	sel := newTraceSelector(tracing.LevelDebug)
	for _, key := range []string{"spline", "smooth", "plugin", "document", "polygon"} {
		tr := sel.Select(key)
		assert.Equal(t, tracing.LevelDebug, tr.GetTraceLevel(), key)
		assert.Same(t, tr, sel.Select(key))
	}
	assert.Equal(t, tracing.LevelInfo, newTraceSelector(tracing.LevelInfo).Select("smooth").GetTraceLevel())
}

func TestRunTraced(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.yaml"), filepath.Join(dir, "out.yaml")
	assert.NoError(t, os.WriteFile(in, []byte(input), 0o644))
	cmd := &Smooth{Mode: "interactive", Trace: "debug", Output: out, Input: in}
	assert.NoError(t, cmd.Run())
	for _, key := range []string{"spline", "smooth", "plugin", "document"} {
		assert.Equal(t, tracing.LevelDebug, tracing.Select(key).GetTraceLevel(), key)
	}
	_, err := os.Stat(out)
	assert.NoError(t, err)
}
