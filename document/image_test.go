package document

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smoothpath"
	"github.com/stretchr/testify/assert"
)

var triangle = []float64{0, 0, 0, 0, 0, 0, 4, 0, 4, 0, 4, 0, 2, 3, 2, 3, 2, 3}

func TestVectorsPositions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	img := NewImage()
	a, b, c := img.NewVectors("a"), img.NewVectors("b"), img.NewVectors("c")
	assert.NoError(t, img.AddVectors(a, -1))
	assert.NoError(t, img.AddVectors(b, 0))
	assert.NoError(t, img.AddVectors(c, 1))
	assert.Equal(t, []ID{b.ID, c.ID, a.ID}, img.List())
	pos, err := img.VectorsPosition(a.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, pos)
	v, err := img.VectorsByName("c")
	assert.NoError(t, err)
	assert.Same(t, c, v)
	_, err = img.VectorsByName("d")
	assert.True(t, errors.Is(err, ErrNoSuchVectors))
	_, err = img.Vectors(99)
	assert.True(t, errors.Is(err, ErrNoSuchVectors))
	assert.True(t, errors.Is(img.AddVectors(a, 0), ErrVectorsInUse))
	assert.NoError(t, img.RemoveVectors(c.ID))
	assert.Equal(t, []ID{b.ID, a.ID}, img.List())
	assert.True(t, errors.Is(img.RemoveVectors(c.ID), ErrNoSuchVectors))
}

func TestStrokes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	img := NewImage()
	v := img.NewVectors("path")
	id1, err := v.NewStrokeFromPoints(triangle, true)
	assert.NoError(t, err)
	id2, err := v.NewStrokeFromPoints(triangle[:12], false)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, []int{id1, id2})
	_, err = v.NewStrokeFromPoints(triangle[:7], false)
	assert.True(t, errors.Is(err, ErrMalformedStroke))
	assert.NoError(t, img.AddVectors(v, 0))
	ids, err := img.StrokeIDs(v.ID)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)
	s, err := v.ReadStroke(id1)
	assert.NoError(t, err)
	assert.True(t, s.Closed)
	assert.Equal(t, 3, s.N())
	s.Points[0] = 42
	s2, _ := v.ReadStroke(id1)
	assert.Equal(t, 0.0, s2.Points[0], "ReadStroke must return a copy")
	assert.NoError(t, v.RemoveStroke(id1))
	assert.Equal(t, []int{2}, v.StrokeIDs())
	_, err = v.ReadStroke(id1)
	assert.True(t, errors.Is(err, ErrNoSuchStroke))
	assert.True(t, errors.Is(v.RemoveStroke(id1), ErrNoSuchStroke))
	id3, _ := v.NewStrokeFromPoints(triangle, false)
	assert.Equal(t, 3, id3, "stroke IDs are not reused")
	_, err = img.StrokeIDs(99)
	assert.True(t, errors.Is(err, ErrNoSuchVectors))
	id4, err := img.NewStrokeFromPoints(v.ID, smoothpath.NewStroke(triangle, true))
	assert.NoError(t, err)
	s, err = img.ReadStroke(v.ID, id4)
	assert.NoError(t, err)
	assert.True(t, s.Equal(smoothpath.NewStroke(triangle, true)))
	_, err = img.ReadStroke(99, id4)
	assert.True(t, errors.Is(err, ErrNoSuchVectors))
	_, err = img.NewStrokeFromPoints(99, s)
	assert.True(t, errors.Is(err, ErrNoSuchVectors))
}

func TestReplaceVectors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	img := NewImage()
	for _, name := range []string{"top", "middle", "bottom"} {
		assert.NoError(t, img.AddVectors(img.NewVectors(name), -1))
	}
	old, _ := img.VectorsByName("middle")
	nv := img.NewVectors("temporary")
	_, _ = nv.NewStrokeFromPoints(triangle, true)
	assert.NoError(t, img.ReplaceVectors(old.ID, nv))
	assert.Equal(t, "middle", nv.Name)
	pos, _ := img.VectorsPosition(nv.ID)
	assert.Equal(t, 1, pos)
	_, err := img.Vectors(old.ID)
	assert.True(t, errors.Is(err, ErrNoSuchVectors))
	assert.Len(t, img.List(), 3)
	assert.True(t, errors.Is(img.ReplaceVectors(old.ID, img.NewVectors("x")), ErrNoSuchVectors))
}

func TestDamage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	img := NewImage()
	v := img.NewVectors("path")
	_, _ = v.NewStrokeFromPoints(triangle, true)
	assert.True(t, img.Damage().Empty(), "detached vectors do not damage")
	assert.NoError(t, img.AddVectors(v, 0))
	r := img.Flush()
	assert.False(t, r.Empty())
	lo, hi := r.BoundingBox()
	assert.Equal(t, smoothpath.P(-1, -1), lo)
	assert.Equal(t, smoothpath.P(5, 4), hi)
	assert.True(t, img.Damage().Empty())
	far := []float64{100, 100, 100, 100, 100, 100, 110, 100, 110, 100, 110, 100}
	_, _ = v.NewStrokeFromPoints(far, false)
	r = img.Flush()
	assert.True(t, r.Contains(smoothpath.P(105, 100)))
	assert.False(t, r.Contains(smoothpath.P(2, 1)))
}
