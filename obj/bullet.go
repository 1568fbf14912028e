package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// Bullet is a plain shot from the ship. Bullets wrap like everything else so
// a missed shot can still land from the far edge.
type Bullet struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Life   int
	Radius float64

	Dead bool
}

func NewBullet(pos, vel cp.Vector, lifetime int) *Bullet {
	return &Bullet{
		Pos:    pos,
		Vel:    vel,
		Life:   lifetime,
		Radius: 2,
	}
}

func (b *Bullet) Update() {
	if b.Dead {
		return
	}
	b.Pos = Wrap(b.Pos.Add(b.Vel))
	b.Life--
	if b.Life <= 0 {
		b.Dead = true
	}
}

func (b *Bullet) Draw(screen *ebiten.Image) {
	if b.Dead {
		return
	}
	vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), color.White, true)
}
