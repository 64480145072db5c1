package document

// snapshot is the state of an image's paths at one point in time.
type snapshot struct {
	vectors []*Vectors // in position order
	nextID  ID
	dirty   bool
}

func (img *Image) takeSnapshot() *snapshot {
	s := &snapshot{nextID: img.nextID}
	for _, id := range img.order {
		v, _ := img.Vectors(id)
		s.vectors = append(s.vectors, v.clone())
	}
	return s
}

func (img *Image) restore(s snapshot) {
	for _, id := range img.order {
		v, _ := img.Vectors(id)
		img.damageVectors(v)
		v.img = nil
	}
	img.vectors.Clear()
	img.order = img.order[:0]
	for _, v := range s.vectors {
		c := v.clone()
		img.insert(c, -1)
		img.damageVectors(c)
	}
	img.nextID = s.nextID
}

// change runs f as one undoable step. Inside an undo group, f becomes part of
// the group's step.
func (img *Image) change(f func() error) error {
	if img.depth > 0 {
		img.group.dirty = true
		return f()
	}
	s := img.takeSnapshot()
	if err := f(); err != nil {
		return err
	}
	img.undo = append(img.undo, *s)
	return nil
}

// UndoGroupStart opens an undo group. All changes up to the matching
// UndoGroupEnd are undone together. Groups may be nested; only the outermost
// group counts.
func (img *Image) UndoGroupStart() {
	if img.depth == 0 {
		img.group = img.takeSnapshot()
	}
	img.depth++
}

// UndoGroupEnd closes an undo group. A group without changes leaves no undo
// step.
func (img *Image) UndoGroupEnd() error {
	if img.depth == 0 {
		return ErrNoUndoGroup
	}
	img.depth--
	if img.depth == 0 {
		if img.group.dirty {
			img.undo = append(img.undo, *img.group)
		}
		img.group = nil
	}
	return nil
}

// UndoSteps returns the number of steps Undo can revert.
func (img *Image) UndoSteps() int {
	return len(img.undo)
}

// Undo reverts the last step. Vectors obtained from img before the call are
// stale afterwards and have to be looked up again by ID.
func (img *Image) Undo() error {
	if img.depth > 0 {
		return ErrUndoGroupOpen
	}
	if len(img.undo) == 0 {
		return ErrNothingToUndo
	}
	s := img.undo[len(img.undo)-1]
	img.undo = img.undo[:len(img.undo)-1]
	img.restore(s)
	tracer().Debugf("undo: %d steps left", len(img.undo))
	return nil
}
