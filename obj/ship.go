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
	shieldFrameHold    = 10
	explosionFrameHold = 3
	gunForwardOffset   = 20.0
	gunSideOffset      = 20.0
	invulnPowerUpTicks = 300
	rocketsPerPickup   = 3
)

// ShipSheets bundles every frame set the ship renders: the rotation sheets
// for each thrust/firing state, the damage progression played on
// destruction, and the shield overlay.
type ShipSheets struct {
	Static          *render.FrameSet
	Thrust          *render.FrameSet
	FireThrustLeft  *render.FrameSet
	FireThrustRight *render.FrameSet
	FireStaticLeft  *render.FrameSet
	FireStaticRight *render.FrameSet
	Damage          []*render.FrameSet
	Shield          *render.FrameSet
}

// Ship is the player: rotate-and-thrust movement with drift, a 24-direction
// rotation sprite, shields and a staged destruction animation.
type Ship struct {
	Pos     cp.Vector
	Vel     cp.Vector
	Heading float64

	Health  int
	Rockets int
	// SpawnShield is the post-spawn invulnerability countdown.
	SpawnShield int
	// Exploding is set once health is gone; Dead once the damage
	// progression has fully played out.
	Exploding bool
	Dead      bool

	Radius float64

	spec       prefabs.ShipSpec
	sheets     ShipSheets
	isThrust   bool
	fireSide   int // 0 left, 1 right
	cooldown   int
	firingTime int
	hitInvuln  int
	invuln     int

	shieldTimer int
	shieldAnim  *sprite.Animator
	explosion   *sprite.Animator
}

func NewShip(sheets ShipSheets, pos cp.Vector, spec prefabs.ShipSpec) *Ship {
	shieldFrames := 3
	if sheets.Shield != nil {
		shieldFrames = sheets.Shield.FrameCount()
	}
	// One animator frame past the damage sheets so the final stage holds
	// for its full frameHold before the ship is gone.
	damageStages := len(sheets.Damage) + 1
	return &Ship{
		Pos:         pos,
		Health:      spec.MaxHealth,
		SpawnShield: spec.SpawnShield,
		Radius:      spec.Radius,
		spec:        spec,
		sheets:      sheets,
		shieldAnim:  sprite.NewAnimator(shieldFrames, shieldFrameHold, sprite.Loop),
		explosion:   sprite.NewAnimator(damageStages, explosionFrameHold, sprite.OneShot),
	}
}

// Update advances one tick of ship physics and timers.
func (s *Ship) Update(in *Input) {
	if s.Dead {
		return
	}
	if s.Exploding {
		// Keep drifting while the destruction animation plays.
		s.Pos = Wrap(s.Pos.Add(s.Vel))
		_ = s.explosion.Advance(1)
		if s.explosion.JustFinished() {
			s.Dead = true
		}
		return
	}

	if in.RotateLeft {
		s.Heading = sprite.NormalizeHeading(s.Heading - s.spec.RotationSpeed)
	}
	if in.RotateRight {
		s.Heading = sprite.NormalizeHeading(s.Heading + s.spec.RotationSpeed)
	}

	s.isThrust = in.Thrust
	if in.Thrust {
		rad := (s.Heading - 90) * math.Pi / 180
		s.Vel = s.Vel.Add(cp.Vector{X: math.Cos(rad), Y: math.Sin(rad)}.Mult(s.spec.Acceleration))
		if speed := s.Vel.Length(); speed > s.spec.MaxVelocity {
			s.Vel = s.Vel.Mult(s.spec.MaxVelocity / speed)
		}
	} else {
		s.Vel = s.Vel.Mult(s.spec.DriftDecay)
	}
	s.Pos = Wrap(s.Pos.Add(s.Vel))

	if s.cooldown > 0 {
		s.cooldown--
	}
	if s.firingTime > 0 {
		s.firingTime--
	}
	if s.SpawnShield > 0 {
		s.SpawnShield--
	}
	if s.hitInvuln > 0 {
		s.hitInvuln--
	}
	if s.invuln > 0 {
		s.invuln--
	}
	if s.shieldTimer > 0 {
		s.shieldTimer--
		_ = s.shieldAnim.Advance(1)
	}
}

// FacingFrame returns the rotation frame the ship currently displays.
func (s *Ship) FacingFrame() int {
	count := sprite.RotationFrames
	if s.sheets.Static != nil {
		count = s.sheets.Static.FrameCount()
	}
	return sprite.FrameForHeading(s.Heading, count)
}

// gunMuzzle returns the firing direction and origin, quantized to the
// displayed rotation frame so shots line up with the visible sprite.
func (s *Ship) gunMuzzle() (dir, origin cp.Vector) {
	count := sprite.RotationFrames
	if s.sheets.Static != nil {
		count = s.sheets.Static.FrameCount()
	}
	step := 360.0 / float64(count)
	quantized := float64(s.FacingFrame()) * step
	rad := (quantized - 90) * math.Pi / 180
	dir = cp.Vector{X: math.Cos(rad), Y: math.Sin(rad)}

	side := 1.0
	if s.fireSide == 1 {
		side = -1
	}
	perp := cp.Vector{X: -dir.Y, Y: dir.X}
	origin = s.Pos.Add(dir.Mult(gunForwardOffset)).Add(perp.Mult(gunSideOffset * side))
	return dir, origin
}

// Fire emits a bullet along the facing frame, alternating the gun side.
// It returns nil while cooling down or exploding.
func (s *Ship) Fire(bullet prefabs.BulletSpec) *Bullet {
	if s.cooldown > 0 || s.Exploding || s.Dead {
		return nil
	}
	dir, origin := s.gunMuzzle()
	b := NewBullet(origin, dir.Mult(bullet.Speed), bullet.Lifetime)
	s.cooldown = s.spec.FireCooldown
	s.firingTime = s.spec.FiringDuration
	s.fireSide = 1 - s.fireSide
	return b
}

// FireRocket launches a rocket if any are stocked, consuming one.
func (s *Ship) FireRocket(sheets []*render.FrameSet, bullet prefabs.BulletSpec, rocket prefabs.RocketSpec) *Rocket {
	if s.Rockets <= 0 || s.cooldown > 0 || s.Exploding || s.Dead {
		return nil
	}
	s.Rockets--
	dir, origin := s.gunMuzzle()
	r := NewRocket(sheets, origin, dir.Mult(bullet.Speed*rocket.SpeedMultiplier), bullet.Lifetime, rocket.Damage)
	s.cooldown = s.spec.FireCooldown
	s.firingTime = s.spec.FiringDuration
	s.fireSide = 1 - s.fireSide
	return r
}

// Vulnerable reports whether a hit would currently land.
func (s *Ship) Vulnerable() bool {
	return !s.Exploding && !s.Dead && s.SpawnShield <= 0 && s.hitInvuln <= 0 && s.invuln <= 0
}

// TakeHit applies one asteroid collision: lose a health segment, flash the
// shield and bounce both bodies, or start the destruction sequence when the
// last segment is gone.
func (s *Ship) TakeHit(a *Asteroid) {
	if !s.Vulnerable() {
		return
	}
	s.Health--
	if s.Health <= 0 {
		s.Exploding = true
		s.explosion.Reset()
		return
	}

	s.shieldTimer = s.spec.ShieldDuration
	s.shieldAnim.Reset()
	s.hitInvuln = s.spec.HitInvulnerability

	if a != nil {
		s.Vel, a.Vel = ElasticImpulse(s.Pos, s.Vel, a.Pos, a.Vel, 0.6)
	}
}

// ApplyPowerUp applies a pickup effect.
func (s *Ship) ApplyPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpHealth:
		if s.Health < s.spec.MaxHealth {
			s.Health++
		}
	case PowerUpInvulnerability:
		s.invuln = invulnPowerUpTicks
	case PowerUpRockets:
		s.Rockets += rocketsPerPickup
	case PowerUpShields:
		s.Health = s.spec.MaxHealth
	}
}

// Invulnerable reports power-up invulnerability, for HUD feedback.
func (s *Ship) Invulnerable() bool {
	return s.invuln > 0
}

func (s *Ship) activeSheet() *render.FrameSet {
	if s.firingTime > 0 {
		if s.isThrust {
			if s.fireSide == 1 {
				return s.sheets.FireThrustLeft
			}
			return s.sheets.FireThrustRight
		}
		if s.fireSide == 1 {
			return s.sheets.FireStaticLeft
		}
		return s.sheets.FireStaticRight
	}
	if s.isThrust {
		return s.sheets.Thrust
	}
	return s.sheets.Static
}

func (s *Ship) Draw(screen *ebiten.Image) {
	if s.Dead {
		return
	}
	if s.Exploding {
		stage := s.explosion.Frame()
		if stage < len(s.sheets.Damage) && s.sheets.Damage[stage] != nil {
			set := s.sheets.Damage[stage]
			frame := sprite.FrameForHeading(s.Heading, set.FrameCount())
			set.Draw(screen, frame, s.Pos.X, s.Pos.Y, 1)
		}
		return
	}

	set := s.activeSheet()
	if set != nil {
		set.Draw(screen, sprite.FrameForHeading(s.Heading, set.FrameCount()), s.Pos.X, s.Pos.Y, 1)
	}
	if s.shieldTimer > 0 && s.sheets.Shield != nil {
		s.sheets.Shield.Draw(screen, s.shieldAnim.Frame(), s.Pos.X, s.Pos.Y, 1)
	}
}
