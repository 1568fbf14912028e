package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/render"
	"github.com/milk9111/logastroids/sprite"
)

const fireballLifetime = 180

// Fireball is the boss projectile. Its rotation frame is fixed at launch
// from the flight direction.
type Fireball struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Life   int
	Radius float64
	Dead   bool

	heading float64
	set     *render.FrameSet
}

func NewFireball(set *render.FrameSet, pos, vel cp.Vector) *Fireball {
	frameSize := 48.0
	if set != nil {
		frameSize = float64(set.Spec.FrameSize)
	}
	return &Fireball{
		Pos:     pos,
		Vel:     vel,
		Life:    fireballLifetime,
		Radius:  frameSize / 3,
		heading: sprite.NormalizeHeading(math.Atan2(vel.Y, vel.X)*180/math.Pi + 90),
		set:     set,
	}
}

func (f *Fireball) Update() {
	if f.Dead {
		return
	}
	f.Pos = Wrap(f.Pos.Add(f.Vel))
	f.Life--
	if f.Life <= 0 {
		f.Dead = true
	}
}

func (f *Fireball) Draw(screen *ebiten.Image) {
	if f.Dead || f.set == nil {
		return
	}
	frame := sprite.FrameForHeading(f.heading, f.set.FrameCount())
	f.set.Draw(screen, frame, f.Pos.X, f.Pos.Y, 1)
}
