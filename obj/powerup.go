package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/common"
	"github.com/milk9111/logastroids/render"
)

// PowerUpKind selects one of the pickup effects; the value doubles as the
// frame index into the power-ups sheet.
type PowerUpKind int

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpInvulnerability
	PowerUpRockets
	PowerUpShields
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "health"
	case PowerUpInvulnerability:
		return "invulnerability"
	case PowerUpRockets:
		return "rockets"
	case PowerUpShields:
		return "shields"
	default:
		return "unknown"
	}
}

// PowerUp floats straight down and despawns off-screen or when it expires.
type PowerUp struct {
	Kind   PowerUpKind
	Pos    cp.Vector
	Speed  float64
	Life   int
	Radius float64
	Dead   bool

	set *render.FrameSet
}

func NewPowerUp(set *render.FrameSet, kind PowerUpKind, pos cp.Vector, speed float64, lifetime int) *PowerUp {
	radius := 24.0
	if set != nil {
		radius = float64(set.Spec.FrameSize) / 2
	}
	return &PowerUp{
		Kind:   kind,
		Pos:    pos,
		Speed:  speed,
		Life:   lifetime,
		Radius: radius,
		set:    set,
	}
}

func (p *PowerUp) Update() {
	if p.Dead {
		return
	}
	p.Pos.Y += p.Speed
	p.Life--
	if p.Life <= 0 || p.Pos.Y-p.Radius > common.BaseHeight {
		p.Dead = true
	}
}

func (p *PowerUp) Draw(screen *ebiten.Image) {
	if p.Dead || p.set == nil {
		return
	}
	p.set.Draw(screen, int(p.Kind), p.Pos.X, p.Pos.Y, 1)
}
