package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/prefabs"
	"github.com/milk9111/logastroids/render"
	"github.com/milk9111/logastroids/sprite"
)

const (
	bossSpin          = 0.75
	bossGunOffset     = 40.0
	bossFireballSpeed = 4.0
)

// Boss is the scripted encounter ship. Movement and fire timing are decided
// by its behavior script each tick; Boss only carries the physical state.
type Boss struct {
	Pos     cp.Vector
	Vel     cp.Vector
	Heading float64
	Health  int
	Radius  float64
	Dead    bool

	spec      prefabs.BossSpec
	set       *render.FrameSet
	fireballs *render.FrameSet
}

// NewBoss places the boss just above the top edge, centered, so the script's
// entrance phase can fly it in.
func NewBoss(set, fireballs *render.FrameSet, spec prefabs.BossSpec, startX float64) *Boss {
	return &Boss{
		Pos:       cp.Vector{X: startX, Y: -spec.Radius},
		Health:    spec.Health,
		Radius:    spec.Radius,
		spec:      spec,
		set:       set,
		fireballs: fireballs,
	}
}

// Update integrates the velocity the script set this tick. The boss spins
// slowly and never wraps; the script is responsible for keeping it on screen.
func (b *Boss) Update() {
	if b.Dead {
		return
	}
	b.Pos = b.Pos.Add(b.Vel)
	b.Heading = sprite.NormalizeHeading(b.Heading + bossSpin)
}

// FireVolley launches one fireball from each of the four diagonal gun mounts,
// aimed outward along the mount direction relative to the displayed rotation.
func (b *Boss) FireVolley() []*Fireball {
	if b.Dead {
		return nil
	}
	volley := make([]*Fireball, 0, 4)
	for _, gun := range []float64{45, 135, 225, 315} {
		angle := sprite.NormalizeHeading(b.Heading + gun)
		rad := (angle - 90) * math.Pi / 180
		dir := cp.Vector{X: math.Cos(rad), Y: math.Sin(rad)}
		origin := b.Pos.Add(dir.Mult(bossGunOffset))
		volley = append(volley, NewFireball(b.fireballs, origin, dir.Mult(bossFireballSpeed)))
	}
	return volley
}

// FireAt launches a single fireball toward a target point.
func (b *Boss) FireAt(target cp.Vector) *Fireball {
	if b.Dead {
		return nil
	}
	dir := target.Sub(b.Pos)
	if dir.Length() == 0 {
		dir = cp.Vector{Y: 1}
	}
	dir = dir.Normalize()
	origin := b.Pos.Add(dir.Mult(bossGunOffset))
	return NewFireball(b.fireballs, origin, dir.Mult(bossFireballSpeed))
}

// TakeDamage reports whether the hit destroyed the boss.
func (b *Boss) TakeDamage(points int) bool {
	if b.Dead {
		return false
	}
	b.Health -= points
	if b.Health <= 0 {
		b.Dead = true
		return true
	}
	return false
}

func (b *Boss) Spec() prefabs.BossSpec {
	return b.spec
}

func (b *Boss) Draw(screen *ebiten.Image) {
	if b.Dead || b.set == nil {
		return
	}
	frame := sprite.FrameForHeading(b.Heading, b.set.FrameCount())
	b.set.Draw(screen, frame, b.Pos.X, b.Pos.Y, 1)
}
