// Package sprite implements the sprite sheet core: grid descriptors, sheet
// slicing with a shared cache, heading-to-frame selection and per-entity
// frame animators. It only depends on the standard image packages so the
// whole pipeline stays testable without a graphics context.
package sprite

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpec reports a malformed sheet descriptor.
	ErrInvalidSpec = errors.New("sprite: invalid sheet spec")
	// ErrDimensionMismatch reports an image whose size doesn't match its spec.
	ErrDimensionMismatch = errors.New("sprite: sheet dimension mismatch")
	// ErrInvalidTick reports a negative tick delta passed to an animator.
	ErrInvalidTick = errors.New("sprite: invalid tick delta")
)

// RotationFrames is the frame count of a full-rotation sheet: one frame per
// 15 degrees of heading.
const RotationFrames = 24

// SheetSpec describes the grid layout of a single sprite sheet. The
// dimensions embedded in asset filenames (`<name>-<size>px-<cols>x<rows>.png`)
// are advisory; the spec is authoritative and is checked against the decoded
// image on load.
type SheetSpec struct {
	Name      string  `yaml:"name"`
	File      string  `yaml:"file"`
	FrameSize int     `yaml:"frame_size"`
	Columns   int     `yaml:"columns"`
	Rows      int     `yaml:"rows"`
	Scale     float64 `yaml:"scale"`
}

// NewSheetSpec builds a validated sheet descriptor.
func NewSheetSpec(name, file string, frameSize, columns, rows int) (SheetSpec, error) {
	s := SheetSpec{
		Name:      name,
		File:      file,
		FrameSize: frameSize,
		Columns:   columns,
		Rows:      rows,
		Scale:     1.0,
	}
	if err := s.Validate(); err != nil {
		return SheetSpec{}, err
	}
	return s, nil
}

// Validate checks the descriptor invariants: positive frame size and at
// least a 1x1 grid.
func (s SheetSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	}
	if s.FrameSize <= 0 {
		return fmt.Errorf("%w: %s: frame size %d", ErrInvalidSpec, s.Name, s.FrameSize)
	}
	if s.Columns <= 0 || s.Rows <= 0 {
		return fmt.Errorf("%w: %s: grid %dx%d", ErrInvalidSpec, s.Name, s.Columns, s.Rows)
	}
	return nil
}

// FrameCount returns the total number of frames in the grid.
func (s SheetSpec) FrameCount() int {
	return s.Columns * s.Rows
}

// DrawScale returns the render scale, defaulting to 1 when unset so that
// yaml entries may omit it.
func (s SheetSpec) DrawScale() float64 {
	if s.Scale <= 0 {
		return 1.0
	}
	return s.Scale
}
