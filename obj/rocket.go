package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/render"
	"github.com/milk9111/logastroids/sprite"
)

// Rocket is the heavy shot: it cycles through its animation sheets while it
// flies and destroys an asteroid outright on impact.
type Rocket struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Life   int
	Radius float64
	Damage int
	Dead   bool

	heading float64
	anim    *sprite.Animator
	sheets  []*render.FrameSet
}

// NewRocket launches a rocket. The rotation frame is fixed at launch from
// the velocity direction; only the exhaust animation advances in flight.
func NewRocket(sheets []*render.FrameSet, pos, vel cp.Vector, lifetime, damage int) *Rocket {
	frameSize, scale := 96.0, 1.0
	if len(sheets) > 0 && sheets[0] != nil {
		frameSize = float64(sheets[0].Spec.FrameSize)
		scale = sheets[0].Spec.DrawScale()
	}

	// Sprites face up at frame 0, so the velocity angle is offset by 90.
	heading := sprite.NormalizeHeading(math.Atan2(vel.Y, vel.X)*180/math.Pi + 90)

	sheetCount := len(sheets)
	if sheetCount == 0 {
		sheetCount = 1
	}
	hold := lifetime / sheetCount
	if hold < 1 {
		hold = 1
	}

	return &Rocket{
		Pos:     pos,
		Vel:     vel,
		Life:    lifetime,
		Radius:  frameSize * scale / 3,
		Damage:  damage,
		heading: heading,
		anim:    sprite.NewAnimator(sheetCount, hold, sprite.Loop),
		sheets:  sheets,
	}
}

func (r *Rocket) Update() {
	if r.Dead {
		return
	}
	r.Pos = Wrap(r.Pos.Add(r.Vel))
	_ = r.anim.Advance(1)
	r.Life--
	if r.Life <= 0 {
		r.Dead = true
	}
}

// Heading returns the launch heading in degrees.
func (r *Rocket) Heading() float64 {
	return r.heading
}

func (r *Rocket) Draw(screen *ebiten.Image) {
	if r.Dead || r.anim.Frame() >= len(r.sheets) {
		return
	}
	set := r.sheets[r.anim.Frame()]
	if set == nil {
		return
	}
	frame := sprite.FrameForHeading(r.heading, set.FrameCount())
	set.Draw(screen, frame, r.Pos.X, r.Pos.Y, 1)
}
