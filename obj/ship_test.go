package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/prefabs"
)

func testShipSpec() prefabs.ShipSpec {
	return prefabs.ShipSpec{
		RotationSpeed:      6,
		Acceleration:       0.5,
		MaxVelocity:        10,
		DriftDecay:         0.99,
		FireCooldown:       8,
		FiringDuration:     10,
		SpawnShield:        120,
		HitInvulnerability: 20,
		ShieldDuration:     30,
		MaxHealth:          3,
		Radius:             32,
	}
}

func newTestShip() *Ship {
	return NewShip(ShipSheets{}, cp.Vector{X: 600, Y: 450}, testShipSpec())
}

func TestShipRotationWraps(t *testing.T) {
	s := newTestShip()
	in := &Input{RotateLeft: true}
	s.Update(in)
	if s.Heading != 354 {
		t.Fatalf("Heading = %v, want 354 after one left turn", s.Heading)
	}

	s.Heading = 354
	s.Update(&Input{RotateRight: true})
	if s.Heading != 0 {
		t.Fatalf("Heading = %v, want wrap to 0", s.Heading)
	}
}

func TestShipThrustAndClamp(t *testing.T) {
	s := newTestShip()
	in := &Input{Thrust: true}

	s.Update(in)
	// Heading 0 points up.
	if math.Abs(s.Vel.Y+0.5) > 1e-9 || math.Abs(s.Vel.X) > 1e-9 {
		t.Fatalf("Vel after one thrust tick = %v, want (0, -0.5)", s.Vel)
	}

	for i := 0; i < 100; i++ {
		s.Update(in)
	}
	if speed := s.Vel.Length(); speed > s.spec.MaxVelocity+1e-9 {
		t.Fatalf("speed %v exceeds cap %v", speed, s.spec.MaxVelocity)
	}
}

func TestShipDriftDecay(t *testing.T) {
	s := newTestShip()
	s.Vel = cp.Vector{X: 10}
	s.Update(&Input{})
	if math.Abs(s.Vel.X-9.9) > 1e-9 {
		t.Fatalf("Vel.X = %v, want 9.9 after one decayed tick", s.Vel.X)
	}
}

func TestShipFireCooldownAndSides(t *testing.T) {
	s := newTestShip()
	bullet := prefabs.BulletSpec{Speed: 12, Lifetime: 90}

	first := s.Fire(bullet)
	if first == nil {
		t.Fatal("first shot blocked")
	}
	if s.Fire(bullet) != nil {
		t.Fatal("fired during cooldown")
	}

	for i := 0; i < s.spec.FireCooldown; i++ {
		s.Update(&Input{})
	}
	second := s.Fire(bullet)
	if second == nil {
		t.Fatal("shot blocked after cooldown expired")
	}

	// Heading 0: the guns sit either side of the nose, so consecutive
	// shots differ in X.
	if first.Pos.X == second.Pos.X {
		t.Fatalf("consecutive shots from the same gun at X=%v", first.Pos.X)
	}
	if first.Vel != second.Vel {
		t.Fatalf("gun side changed the shot direction: %v vs %v", first.Vel, second.Vel)
	}
}

func TestShipBulletDirectionQuantized(t *testing.T) {
	s := newTestShip()
	// 7 degrees displays frame 0 (within half a 15-degree step), so the
	// shot must leave along frame 0's direction: straight up.
	s.Heading = 7
	b := s.Fire(prefabs.BulletSpec{Speed: 12, Lifetime: 90})
	if b == nil {
		t.Fatal("shot blocked")
	}
	if math.Abs(b.Vel.X) > 1e-9 || math.Abs(b.Vel.Y+12) > 1e-9 {
		t.Fatalf("Vel = %v, want (0, -12)", b.Vel)
	}
}

func TestShipRocketStock(t *testing.T) {
	s := newTestShip()
	bullet := prefabs.BulletSpec{Speed: 12, Lifetime: 90}
	rocket := prefabs.RocketSpec{SpeedMultiplier: 1.5, Damage: 4}

	if s.FireRocket(nil, bullet, rocket) != nil {
		t.Fatal("fired a rocket with none stocked")
	}

	s.ApplyPowerUp(PowerUpRockets)
	if s.Rockets != rocketsPerPickup {
		t.Fatalf("Rockets = %d, want %d", s.Rockets, rocketsPerPickup)
	}

	r := s.FireRocket(nil, bullet, rocket)
	if r == nil {
		t.Fatal("rocket blocked with stock available")
	}
	if s.Rockets != rocketsPerPickup-1 {
		t.Fatalf("Rockets = %d after launch, want %d", s.Rockets, rocketsPerPickup-1)
	}
	if got := r.Vel.Length(); math.Abs(got-18) > 1e-9 {
		t.Fatalf("rocket speed = %v, want 18", got)
	}
	if r.Damage != 4 {
		t.Fatalf("rocket damage = %d, want 4", r.Damage)
	}
}

func TestShipVulnerabilityWindows(t *testing.T) {
	s := newTestShip()
	if s.Vulnerable() {
		t.Fatal("vulnerable during spawn shield")
	}

	for i := 0; i < s.spec.SpawnShield; i++ {
		s.Update(&Input{})
	}
	if !s.Vulnerable() {
		t.Fatal("still invulnerable after spawn shield expired")
	}

	s.TakeHit(nil)
	if s.Health != 2 {
		t.Fatalf("Health = %d after hit, want 2", s.Health)
	}
	if s.Vulnerable() {
		t.Fatal("vulnerable immediately after a hit")
	}

	for i := 0; i < s.spec.HitInvulnerability; i++ {
		s.Update(&Input{})
	}
	if !s.Vulnerable() {
		t.Fatal("still invulnerable after the grace period")
	}

	s.ApplyPowerUp(PowerUpInvulnerability)
	if s.Vulnerable() {
		t.Fatal("vulnerable with the invulnerability power-up active")
	}
	before := s.Health
	s.TakeHit(nil)
	if s.Health != before {
		t.Fatal("power-up invulnerability did not block the hit")
	}
}

func TestShipHitBouncesAsteroid(t *testing.T) {
	s := newTestShip()
	s.SpawnShield = 0
	s.Vel = cp.Vector{X: 2}

	a := NewAsteroid(nil, 0, s.Pos.Add(cp.Vector{X: 40}), cp.Vector{X: -2}, 0, 0, 1, false)
	aVel := a.Vel

	s.TakeHit(a)
	if a.Vel == aVel {
		t.Fatal("asteroid velocity unchanged by the bounce")
	}
	if s.Vel.X >= 2 {
		t.Fatalf("ship Vel.X = %v, want pushback below 2", s.Vel.X)
	}
}

func TestShipDestructionSequence(t *testing.T) {
	s := newTestShip()
	s.SpawnShield = 0
	s.Health = 1

	s.TakeHit(nil)
	if !s.Exploding {
		t.Fatal("ship not exploding after the last hit")
	}
	if s.Dead {
		t.Fatal("ship dead before the sequence played")
	}
	if s.Fire(prefabs.BulletSpec{Speed: 12, Lifetime: 90}) != nil {
		t.Fatal("exploding ship fired")
	}

	for i := 0; i < 1000 && !s.Dead; i++ {
		s.Update(&Input{})
	}
	if !s.Dead {
		t.Fatal("destruction sequence never finished")
	}
}

func TestShipPowerUps(t *testing.T) {
	s := newTestShip()
	s.Health = 1

	s.ApplyPowerUp(PowerUpHealth)
	if s.Health != 2 {
		t.Fatalf("Health = %d after pickup, want 2", s.Health)
	}

	s.ApplyPowerUp(PowerUpShields)
	if s.Health != s.spec.MaxHealth {
		t.Fatalf("Health = %d after shields, want %d", s.Health, s.spec.MaxHealth)
	}

	s.ApplyPowerUp(PowerUpHealth)
	if s.Health != s.spec.MaxHealth {
		t.Fatalf("Health = %d, want cap at %d", s.Health, s.spec.MaxHealth)
	}
}
