package sprite

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testSheetImage builds an image where every pixel encodes its row-major
// frame index in the red channel, so slicing order can be asserted.
func testSheetImage(spec SheetSpec) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spec.Columns*spec.FrameSize, spec.Rows*spec.FrameSize))
	for row := 0; row < spec.Rows; row++ {
		for col := 0; col < spec.Columns; col++ {
			idx := row*spec.Columns + col
			for y := 0; y < spec.FrameSize; y++ {
				for x := 0; x < spec.FrameSize; x++ {
					img.Set(col*spec.FrameSize+x, row*spec.FrameSize+y, color.RGBA{R: uint8(idx), A: 255})
				}
			}
		}
	}
	return img
}

func frameIndexAt(t *testing.T, frame image.Image) int {
	t.Helper()
	if frame == nil {
		t.Fatalf("nil frame")
	}
	b := frame.Bounds()
	r, _, _, _ := frame.At(b.Min.X, b.Min.Y).RGBA()
	return int(r >> 8)
}

func TestSliceRowMajor(t *testing.T) {
	spec := SheetSpec{Name: "grid", File: "grid.png", FrameSize: 96, Columns: 6, Rows: 4}
	sheet, err := Slice(spec, testSheetImage(spec))
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if sheet.FrameCount() != 24 {
		t.Fatalf("FrameCount = %d, want 24", sheet.FrameCount())
	}
	for i := 0; i < sheet.FrameCount(); i++ {
		if got := frameIndexAt(t, sheet.Frame(i)); got != i {
			t.Fatalf("frame %d sliced out of order: payload %d", i, got)
		}
		b := sheet.Frame(i).Bounds()
		if b.Dx() != 96 || b.Dy() != 96 {
			t.Fatalf("frame %d size %dx%d, want 96x96", i, b.Dx(), b.Dy())
		}
	}
	// Row-major: frame at (row 1, col 2) is linear index 8.
	if got := frameIndexAt(t, sheet.FrameAt(1, 2)); got != 8 {
		t.Fatalf("FrameAt(1,2) payload = %d, want 8", got)
	}
}

func TestSliceDimensionMismatch(t *testing.T) {
	spec := SheetSpec{Name: "grid", File: "grid.png", FrameSize: 96, Columns: 6, Rows: 4}
	cases := []struct {
		name string
		w, h int
	}{
		{"one_short", 575, 384},
		{"one_wide", 577, 384},
		{"short_rows", 576, 383},
		{"double_height", 576, 768},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, c.w, c.h))
			if _, err := Slice(spec, img); !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("expected ErrDimensionMismatch, got %v", err)
			}
		})
	}
}

func TestSliceRejectsInvalidSpec(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 96, 96))
	if _, err := Slice(SheetSpec{Name: "bad", FrameSize: 0, Columns: 1, Rows: 1}, img); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestDecodePNGRoundTrip(t *testing.T) {
	spec := SheetSpec{Name: "grid", File: "grid.png", FrameSize: 8, Columns: 3, Rows: 2}
	var buf bytes.Buffer
	if err := png.Encode(&buf, testSheetImage(spec)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	sheet, err := Decode(spec, buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sheet.FrameCount() != 6 {
		t.Fatalf("FrameCount = %d, want 6", sheet.FrameCount())
	}
	for i := 0; i < 6; i++ {
		if got := frameIndexAt(t, sheet.Frame(i)); got != i {
			t.Fatalf("frame %d payload = %d", i, got)
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	spec := SheetSpec{Name: "grid", File: "grid.png", FrameSize: 8, Columns: 1, Rows: 1}
	if _, err := Decode(spec, []byte("not a png")); err == nil {
		t.Fatalf("expected decode error")
	}
}
