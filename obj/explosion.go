package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/render"
	"github.com/milk9111/logastroids/sprite"
)

// Explosion plays the broken-asteroid sheets one-shot while keeping the
// destroyed asteroid's drift and spin, so the shards fly apart naturally.
type Explosion struct {
	Pos     cp.Vector
	Vel     cp.Vector
	Heading float64
	Spin    float64
	Scale   float64
	Dead    bool

	anim   *sprite.Animator
	sheets []*render.FrameSet
}

// NewExplosion starts a shard animation over the broken sheets. frameHold is
// the tick count each sheet stays on screen.
func NewExplosion(sheets []*render.FrameSet, pos, vel cp.Vector, heading, spin, scale float64, frameHold int) *Explosion {
	// One extra animator frame past the sheets, so the last sheet is held
	// for its full frameHold before the completion signal.
	count := len(sheets) + 1
	return &Explosion{
		Pos:     pos,
		Vel:     vel,
		Heading: sprite.NormalizeHeading(heading),
		Spin:    spin,
		Scale:   scale,
		anim:    sprite.NewAnimator(count, frameHold, sprite.OneShot),
		sheets:  sheets,
	}
}

func (e *Explosion) Update() {
	if e.Dead {
		return
	}
	e.Pos = Wrap(e.Pos.Add(e.Vel))
	e.Heading = sprite.NormalizeHeading(e.Heading + e.Spin)
	// Ignoring the error: the per-tick delta is always 1.
	_ = e.anim.Advance(1)
	if e.anim.JustFinished() {
		e.Dead = true
	}
}

func (e *Explosion) Draw(screen *ebiten.Image) {
	if e.Dead || e.anim.Frame() >= len(e.sheets) {
		return
	}
	set := e.sheets[e.anim.Frame()]
	if set == nil {
		return
	}
	frame := sprite.FrameForHeading(e.Heading, set.FrameCount())
	set.Draw(screen, frame, e.Pos.X, e.Pos.Y, e.Scale)
}
