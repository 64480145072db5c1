package document

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/smoothpath"
)

// Vectors is a named path, made up of strokes.
type Vectors struct {
	ID      ID
	Name    string
	strokes *treemap.Map // stroke ID → smoothpath.Stroke
	next    int
	img     *Image // nil while detached
}

func newVectors(id ID, name string) *Vectors {
	return &Vectors{
		ID:      id,
		Name:    name,
		strokes: treemap.NewWithIntComparator(),
		next:    1,
	}
}

// StrokeIDs returns the IDs of all strokes in ascending order.
func (v *Vectors) StrokeIDs() []int {
	ids := make([]int, 0, v.strokes.Size())
	for _, k := range v.strokes.Keys() {
		ids = append(ids, k.(int))
	}
	return ids
}

// ReadStroke returns a copy of stroke id.
func (v *Vectors) ReadStroke(id int) (smoothpath.Stroke, error) {
	s, found := v.strokes.Get(id)
	if !found {
		return smoothpath.Stroke{}, fmt.Errorf("%w: %d in vectors %d", ErrNoSuchStroke, id, v.ID)
	}
	return s.(smoothpath.Stroke).Clone(), nil
}

// Strokes returns copies of all strokes, in ascending order of stroke IDs.
func (v *Vectors) Strokes() []smoothpath.Stroke {
	strokes := make([]smoothpath.Stroke, 0, v.strokes.Size())
	it := v.strokes.Iterator()
	for it.Next() {
		strokes = append(strokes, it.Value().(smoothpath.Stroke).Clone())
	}
	return strokes
}

// NewStrokeFromPoints adds a stroke from a flattened point sequence (see
// smoothpath.Stroke) and returns its ID. The points are copied.
func (v *Vectors) NewStrokeFromPoints(points []float64, closed bool) (int, error) {
	s := smoothpath.NewStroke(points, closed)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	id := v.next
	err := v.modify(func() {
		v.strokes.Put(id, s)
		v.next++
		if v.img != nil {
			v.img.damageStroke(s)
		}
	})
	return id, err
}

// RemoveStroke removes stroke id.
func (v *Vectors) RemoveStroke(id int) error {
	s, found := v.strokes.Get(id)
	if !found {
		return fmt.Errorf("%w: %d in vectors %d", ErrNoSuchStroke, id, v.ID)
	}
	return v.modify(func() {
		v.strokes.Remove(id)
		if v.img != nil {
			v.img.damageStroke(s.(smoothpath.Stroke))
		}
	})
}

// modify applies f, as an undoable step if v belongs to an image.
func (v *Vectors) modify(f func()) error {
	if v.img == nil {
		f()
		return nil
	}
	return v.img.change(func() error {
		f()
		return nil
	})
}

// clone returns a detached deep copy of v. Strokes are immutable values and
// are shared.
func (v *Vectors) clone() *Vectors {
	c := newVectors(v.ID, v.Name)
	c.next = v.next
	it := v.strokes.Iterator()
	for it.Next() {
		c.strokes.Put(it.Key(), it.Value())
	}
	return c
}
