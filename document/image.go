/*
Package document is an in-memory model of a drawing's vector paths.

An Image holds named Vectors (paths) at ordered positions, every Vectors
holds strokes under ascending stroke IDs. Changes to an image are tracked
twice: as undo snapshots and as a damage region, i.e. the area of the
drawing which has to be redrawn on the next Flush.

Images are read from and written to YAML documents:

	vectors:
	  - name: outline
	    strokes:
	      - points: [0, 0, 0, 0, 0, 0, 3, 1, 3, 1, 3, 1, 4, 4, 4, 4, 4, 4]
	        closed: true

Images are not safe for concurrent use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package document

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smoothpath"
	"github.com/npillmayer/smoothpath/polygon"
)

// tracer writes to trace with key 'document'
func tracer() tracing.Trace {
	return tracing.Select("document")
}

// Errors returned by image and vectors operations.
var (
	ErrNoSuchVectors  = errors.New("no such vectors")
	ErrNoSuchStroke   = errors.New("no such stroke")
	ErrVectorsInUse   = errors.New("vectors already belong to an image")
	ErrUndoGroupOpen  = errors.New("undo group is open")
	ErrNoUndoGroup    = errors.New("no undo group is open")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrMalformedInput = errors.New("malformed document")
)

// ErrMalformedStroke is returned for point sequences which do not form a
// stroke.
var ErrMalformedStroke = smoothpath.ErrMalformedStroke

// DamageMargin widens the damage region around changed strokes.
const DamageMargin = 1.0

// ID identifies a Vectors object within an image.
type ID int

// Image is a drawing consisting of vector paths.
type Image struct {
	vectors *treemap.Map // ID → *Vectors
	order   []ID         // position 0 is the top
	nextID  ID
	damage  polygon.Region
	undo    []snapshot
	group   *snapshot // snapshot taken at the start of the open undo group
	depth   int       // nesting of undo groups
}

// NewImage creates an empty image.
func NewImage() *Image {
	return &Image{
		vectors: treemap.NewWithIntComparator(),
		nextID:  1,
	}
}

// NewVectors creates an empty path with a fresh ID. It does not belong to
// img until it is added with AddVectors.
func (img *Image) NewVectors(name string) *Vectors {
	v := newVectors(img.nextID, name)
	img.nextID++
	return v
}

// AddVectors inserts v at position. Positions out of range (e.g., -1) append
// v at the bottom.
func (img *Image) AddVectors(v *Vectors, position int) error {
	if v == nil {
		return ErrNoSuchVectors
	}
	if v.img != nil {
		return fmt.Errorf("%w: %q (%d)", ErrVectorsInUse, v.Name, v.ID)
	}
	if v.ID >= img.nextID {
		img.nextID = v.ID + 1
	}
	return img.change(func() error {
		img.insert(v, position)
		img.damageVectors(v)
		return nil
	})
}

func (img *Image) insert(v *Vectors, position int) {
	v.img = img
	img.vectors.Put(int(v.ID), v)
	if position < 0 || position > len(img.order) {
		position = len(img.order)
	}
	img.order = append(img.order, 0)
	copy(img.order[position+1:], img.order[position:])
	img.order[position] = v.ID
}

// RemoveVectors removes a path from the image.
func (img *Image) RemoveVectors(id ID) error {
	v, err := img.Vectors(id)
	if err != nil {
		return err
	}
	return img.change(func() error {
		img.damageVectors(v)
		img.remove(v)
		return nil
	})
}

func (img *Image) remove(v *Vectors) int {
	pos, _ := img.VectorsPosition(v.ID)
	img.order = append(img.order[:pos], img.order[pos+1:]...)
	img.vectors.Remove(int(v.ID))
	v.img = nil
	return pos
}

// ReplaceVectors puts v in place of the path oldID, at the same position and
// under the same name. The old path is removed from the image.
func (img *Image) ReplaceVectors(oldID ID, v *Vectors) error {
	old, err := img.Vectors(oldID)
	if err != nil {
		return err
	}
	if v == nil {
		return ErrNoSuchVectors
	}
	if v.img != nil {
		return fmt.Errorf("%w: %q (%d)", ErrVectorsInUse, v.Name, v.ID)
	}
	return img.change(func() error {
		img.damageVectors(old)
		pos := img.remove(old)
		v.Name = old.Name
		img.insert(v, pos)
		img.damageVectors(v)
		tracer().Debugf("vectors %d replaced by %d at position %d", oldID, v.ID, pos)
		return nil
	})
}

// Vectors returns the path with the given ID.
func (img *Image) Vectors(id ID) (*Vectors, error) {
	v, found := img.vectors.Get(int(id))
	if !found {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchVectors, id)
	}
	return v.(*Vectors), nil
}

// VectorsByName returns the topmost path with the given name.
func (img *Image) VectorsByName(name string) (*Vectors, error) {
	for _, id := range img.order {
		v, _ := img.Vectors(id)
		if v.Name == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoSuchVectors, name)
}

// VectorsPosition returns the position of a path, 0 being the top.
func (img *Image) VectorsPosition(id ID) (int, error) {
	for i, vid := range img.order {
		if vid == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %d", ErrNoSuchVectors, id)
}

// List returns the IDs of all paths, top to bottom.
func (img *Image) List() []ID {
	ids := make([]ID, len(img.order))
	copy(ids, img.order)
	return ids
}

// StrokeIDs returns the stroke IDs of path vectorsID in ascending order.
func (img *Image) StrokeIDs(vectorsID ID) ([]int, error) {
	v, err := img.Vectors(vectorsID)
	if err != nil {
		return nil, err
	}
	return v.StrokeIDs(), nil
}

// ReadStroke returns a copy of stroke strokeID of path vectorsID.
func (img *Image) ReadStroke(vectorsID ID, strokeID int) (smoothpath.Stroke, error) {
	v, err := img.Vectors(vectorsID)
	if err != nil {
		return smoothpath.Stroke{}, err
	}
	return v.ReadStroke(strokeID)
}

// NewStrokeFromPoints adds a copy of s to path vectorsID and returns the ID
// of the new stroke.
func (img *Image) NewStrokeFromPoints(vectorsID ID, s smoothpath.Stroke) (int, error) {
	v, err := img.Vectors(vectorsID)
	if err != nil {
		return 0, err
	}
	return v.NewStrokeFromPoints(s.Points, s.Closed)
}

// Flush returns the region which changed since the last flush and clears it.
func (img *Image) Flush() polygon.Region {
	r := img.damage
	img.damage = polygon.Region{}
	lo, hi := r.BoundingBox()
	tracer().Infof("flush: damage %v–%v", lo, hi)
	return r
}

// Damage returns the region which changed since the last flush.
func (img *Image) Damage() polygon.Region {
	return img.damage
}

func (img *Image) damageStroke(s smoothpath.Stroke) {
	img.damage = img.damage.Merge(polygon.StrokeRegion(s, DamageMargin))
}

func (img *Image) damageVectors(v *Vectors) {
	it := v.strokes.Iterator()
	for it.Next() {
		img.damageStroke(it.Value().(smoothpath.Stroke))
	}
}
