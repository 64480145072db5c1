package document

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/smoothpath"
	"gopkg.in/yaml.v3"
)

type fileImage struct {
	Vectors []fileVectors `yaml:"vectors"`
}

type fileVectors struct {
	Name    string              `yaml:"name"`
	Strokes []smoothpath.Stroke `yaml:"strokes"`
}

// Load reads an image from a YAML document. Paths are numbered top to bottom
// starting with ID 1, strokes within a path starting with 1. Loading is not
// an undoable step.
func Load(r io.Reader) (*Image, error) {
	var doc fileImage
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	img := NewImage()
	for i, fv := range doc.Vectors {
		v := img.NewVectors(fv.Name)
		for j, s := range fv.Strokes {
			if _, err := v.NewStrokeFromPoints(s.Points, s.Closed); err != nil {
				return nil, fmt.Errorf("vectors %d (%q), stroke %d: %w", i, fv.Name, j, err)
			}
		}
		img.insert(v, -1)
	}
	tracer().Infof("loaded image with %d vectors", len(img.order))
	return img, nil
}

// Save writes img as a YAML document, paths top to bottom.
func (img *Image) Save(w io.Writer) error {
	var doc fileImage
	for _, id := range img.order {
		v, _ := img.Vectors(id)
		doc.Vectors = append(doc.Vectors, fileVectors{Name: v.Name, Strokes: v.Strokes()})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return enc.Close()
}
