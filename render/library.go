// Package render turns cached sprite sheets into GPU-side frame sets and
// draws them. It is the only layer that touches ebiten images; everything
// below it works on plain decoded pixels.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/logastroids/sprite"
)

// FrameSet is one sheet uploaded as per-frame ebiten images, shared by every
// entity that renders the same asset.
type FrameSet struct {
	Spec   sprite.SheetSpec
	frames []*ebiten.Image
}

// FrameCount returns the number of frames in the set.
func (f *FrameSet) FrameCount() int {
	if f == nil {
		return 0
	}
	return len(f.frames)
}

// Frame returns the frame at a row-major index, clamped into range.
func (f *FrameSet) Frame(i int) *ebiten.Image {
	if f == nil || len(f.frames) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(f.frames) {
		i = len(f.frames) - 1
	}
	return f.frames[i]
}

// Draw renders frame i centered on (x, y) at the set's draw scale times
// scale.
func (f *FrameSet) Draw(screen *ebiten.Image, i int, x, y, scale float64) {
	img := f.Frame(i)
	if img == nil {
		return
	}
	s := f.Spec.DrawScale() * scale
	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(s, s)
	half := float64(f.Spec.FrameSize) * s / 2
	op.GeoM.Translate(x-half, y-half)
	screen.DrawImage(img, &op)
}

// Library caches frame sets by sheet name on top of the sprite cache. One
// library lives on the game context; there is no package-level registry.
type Library struct {
	cache *sprite.Cache
	sets  map[string]*FrameSet
}

// NewLibrary creates a library over a sheet cache.
func NewLibrary(cache *sprite.Cache) *Library {
	return &Library{
		cache: cache,
		sets:  make(map[string]*FrameSet),
	}
}

// Load returns the shared frame set for spec, slicing and uploading it on
// first use.
func (l *Library) Load(spec sprite.SheetSpec) (*FrameSet, error) {
	if set, ok := l.sets[spec.Name]; ok {
		return set, nil
	}
	sheet, err := l.cache.Load(spec)
	if err != nil {
		return nil, err
	}
	set := &FrameSet{Spec: sheet.Spec}
	set.frames = make([]*ebiten.Image, 0, sheet.FrameCount())
	for i := 0; i < sheet.FrameCount(); i++ {
		set.frames = append(set.frames, ebiten.NewImageFromImage(sheet.Frame(i)))
	}
	l.sets[spec.Name] = set
	return set, nil
}

// Get returns an already-loaded frame set by name.
func (l *Library) Get(name string) (*FrameSet, bool) {
	set, ok := l.sets[name]
	return set, ok
}
