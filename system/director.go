package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/common"
	"github.com/milk9111/logastroids/obj"
	"github.com/milk9111/logastroids/prefabs"
	"github.com/milk9111/logastroids/render"
)

// LevelParams is the resolved asteroid budget for one level.
type LevelParams struct {
	Level            int
	InitialAsteroids int
	MaxOnScreen      int
	TotalAsteroids   int
	SpawnInterval    int
	BossLevel        bool
}

// ParamsForLevel applies the per-level progression to the base tuning.
// Levels count from 1.
func ParamsForLevel(level int, spec prefabs.LevelSpec, boss prefabs.BossSpec) LevelParams {
	if level < 1 {
		level = 1
	}
	steps := level - 1

	seconds := spec.SpawnIntervalSeconds - float64(steps)*spec.SpawnReduction
	if seconds < spec.MinSpawnInterval {
		seconds = spec.MinSpawnInterval
	}
	interval := int(math.Round(seconds * common.TicksPerSecond))
	if interval < 1 {
		interval = 1
	}

	return LevelParams{
		Level:            level,
		InitialAsteroids: spec.InitialAsteroids + steps*spec.PerLevelInitial,
		MaxOnScreen:      spec.MaxOnScreen + steps*spec.PerLevelMax,
		TotalAsteroids:   spec.TotalAsteroids + steps*spec.PerLevelTotal,
		SpawnInterval:    interval,
		BossLevel:        boss.EveryLevels > 0 && level%boss.EveryLevels == 0,
	}
}

// Director paces one level's asteroid wave: the opening burst, then timed
// spawns from off-screen until the level's budget is spent.
type Director struct {
	params   LevelParams
	asteroid prefabs.AsteroidSpec
	stages   []*render.FrameSet
	rng      *rand.Rand

	spawned int
	timer   int
}

func NewDirector(params LevelParams, asteroid prefabs.AsteroidSpec, stages []*render.FrameSet, rng *rand.Rand) *Director {
	return &Director{
		params:   params,
		asteroid: asteroid,
		stages:   stages,
		rng:      rng,
		timer:    params.SpawnInterval,
	}
}

func (d *Director) Params() LevelParams {
	return d.params
}

// SpawnInitial produces the level's opening wave.
func (d *Director) SpawnInitial() []*obj.Asteroid {
	out := make([]*obj.Asteroid, 0, d.params.InitialAsteroids)
	for i := 0; i < d.params.InitialAsteroids && d.spawned < d.params.TotalAsteroids; i++ {
		out = append(out, d.spawnOne())
		d.spawned++
	}
	return out
}

// Update runs the spawn timer. It returns a newly spawned asteroid at most
// once per interval, and nil while the field is at capacity or the level's
// budget is spent.
func (d *Director) Update(onScreen int) *obj.Asteroid {
	if d.Exhausted() {
		return nil
	}
	if d.timer > 0 {
		d.timer--
		return nil
	}
	if onScreen >= d.params.MaxOnScreen {
		return nil
	}
	d.timer = d.params.SpawnInterval
	d.spawned++
	return d.spawnOne()
}

// Exhausted reports whether the level's full budget has spawned.
func (d *Director) Exhausted() bool {
	return d.spawned >= d.params.TotalAsteroids
}

// LevelComplete reports whether the budget is spent and the field is clear.
func (d *Director) LevelComplete(onScreen int) bool {
	return d.Exhausted() && onScreen == 0
}

// spawnOne places an asteroid just outside a random screen edge, headed
// roughly at the center with some angular jitter.
func (d *Director) spawnOne() *obj.Asteroid {
	margin := 60.0
	var pos cp.Vector
	switch d.rng.Intn(4) {
	case 0:
		pos = cp.Vector{X: d.rng.Float64() * common.BaseWidth, Y: -margin}
	case 1:
		pos = cp.Vector{X: d.rng.Float64() * common.BaseWidth, Y: common.BaseHeight + margin}
	case 2:
		pos = cp.Vector{X: -margin, Y: d.rng.Float64() * common.BaseHeight}
	default:
		pos = cp.Vector{X: common.BaseWidth + margin, Y: d.rng.Float64() * common.BaseHeight}
	}

	center := cp.Vector{X: common.BaseWidth / 2, Y: common.BaseHeight / 2}
	angle := math.Atan2(center.Y-pos.Y, center.X-pos.X)
	angle += (d.rng.Float64() - 0.5) * math.Pi / 3

	speed := common.Lerp(d.asteroid.MinSpeed, d.asteroid.MaxSpeed, d.rng.Float64())
	vel := cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}.Mult(speed)

	spin := common.Lerp(d.asteroid.MinSpin, d.asteroid.MaxSpin, d.rng.Float64())
	if d.rng.Intn(2) == 0 {
		spin = -spin
	}

	heading := d.rng.Float64() * 360
	splits := d.params.Level >= d.asteroid.SplitLevel
	return obj.NewAsteroid(d.stages, 0, pos, vel, heading, spin, 1, splits)
}

// SpawnChildren breaks a destroyed parent into smaller fragments flying
// outward from the impact.
func (d *Director) SpawnChildren(parent *obj.Asteroid) []*obj.Asteroid {
	if parent == nil || !parent.SpawnChildren || d.asteroid.ChildCount <= 0 {
		return nil
	}
	out := make([]*obj.Asteroid, 0, d.asteroid.ChildCount)
	base := d.rng.Float64() * 2 * math.Pi
	for i := 0; i < d.asteroid.ChildCount; i++ {
		angle := base + float64(i)*2*math.Pi/float64(d.asteroid.ChildCount)
		vel := cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}.Mult(d.asteroid.ChildSpeed)
		spin := common.Lerp(d.asteroid.MinSpin, d.asteroid.MaxSpin, d.rng.Float64())
		if d.rng.Intn(2) == 0 {
			spin = -spin
		}
		child := obj.NewAsteroid(d.stages, 0, parent.Pos, vel, d.rng.Float64()*360, spin, d.asteroid.ChildScale, false)
		out = append(out, child)
	}
	return out
}
