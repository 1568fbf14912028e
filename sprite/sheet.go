package sprite

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
)

// subImager is satisfied by image types that can share pixels with a
// sub-rectangle view, which includes every decoded PNG type we load.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Sheet is one sliced sprite sheet: the ordered frames of a spec, row-major
// (row 0 left to right, then row 1, ...). Sheets are immutable after Slice
// and shared between every entity that references the same asset name.
type Sheet struct {
	Spec   SheetSpec
	frames []image.Image
}

// Decode parses PNG bytes and slices them according to spec.
func Decode(spec SheetSpec, data []byte) (*Sheet, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sprite: decode %s: %w", spec.Name, err)
	}
	return Slice(spec, img)
}

// Slice cuts an image into the spec's grid. The image must be exactly
// (Columns*FrameSize) x (Rows*FrameSize) pixels.
func Slice(spec SheetSpec, img image.Image) (*Sheet, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	b := img.Bounds()
	wantW := spec.Columns * spec.FrameSize
	wantH := spec.Rows * spec.FrameSize
	if b.Dx() != wantW || b.Dy() != wantH {
		return nil, fmt.Errorf("%w: %s: image %dx%d, spec wants %dx%d",
			ErrDimensionMismatch, spec.Name, b.Dx(), b.Dy(), wantW, wantH)
	}

	sub, ok := img.(subImager)
	if !ok {
		// Decoded PNGs always support SubImage; anything else gets copied.
		rgba := image.NewRGBA(b)
		drawCopy(rgba, img)
		sub = rgba
	}

	frames := make([]image.Image, 0, spec.FrameCount())
	for row := 0; row < spec.Rows; row++ {
		for col := 0; col < spec.Columns; col++ {
			x := b.Min.X + col*spec.FrameSize
			y := b.Min.Y + row*spec.FrameSize
			r := image.Rect(x, y, x+spec.FrameSize, y+spec.FrameSize)
			frames = append(frames, sub.SubImage(r))
		}
	}
	return &Sheet{Spec: spec, frames: frames}, nil
}

func drawCopy(dst *image.RGBA, src image.Image) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}
}

// FrameCount returns the number of sliced frames.
func (s *Sheet) FrameCount() int {
	return len(s.frames)
}

// Frame returns the frame at a linear row-major index. Out-of-range indexes
// clamp so a stale animator can never read past the sheet.
func (s *Sheet) Frame(i int) image.Image {
	if len(s.frames) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.frames) {
		i = len(s.frames) - 1
	}
	return s.frames[i]
}

// FrameAt returns the frame at a (row, column) grid position.
func (s *Sheet) FrameAt(row, col int) image.Image {
	return s.Frame(row*s.Spec.Columns + col)
}
