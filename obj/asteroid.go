package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/render"
	"github.com/milk9111/logastroids/sprite"
)

// Asteroid drifts across the field and advances through visual damage
// stages as it is shot; running out of stages destroys it.
type Asteroid struct {
	Pos     cp.Vector
	Vel     cp.Vector
	Heading float64
	Spin    float64
	Scale   float64
	// SpawnChildren marks a full-size parent that splits when destroyed
	// (children never split again).
	SpawnChildren bool

	Stage     int
	HitPoints int
	Radius    float64
	Dead      bool

	stages []*render.FrameSet
}

// NewAsteroid creates an asteroid at stage. stages carries one frame set per
// visual stage; a nil slice renders nothing but keeps the simulation valid.
func NewAsteroid(stages []*render.FrameSet, stage int, pos, vel cp.Vector, heading, spin, scale float64, spawnChildren bool) *Asteroid {
	frameSize := 96.0
	if len(stages) > 0 && stages[0] != nil {
		frameSize = float64(stages[0].Spec.FrameSize)
	}
	stageCount := len(stages)
	if stageCount == 0 {
		stageCount = 4
	}
	if stage < 0 {
		stage = 0
	}
	if stage >= stageCount {
		stage = stageCount - 1
	}
	return &Asteroid{
		Pos:           pos,
		Vel:           vel,
		Heading:       sprite.NormalizeHeading(heading),
		Spin:          spin,
		Scale:         scale,
		SpawnChildren: spawnChildren,
		Stage:         stage,
		HitPoints:     stageCount - stage,
		// Hitbox at ~80% of the sprite diameter.
		Radius: frameSize * scale * 0.4,
		stages: stages,
	}
}

func (a *Asteroid) Update() {
	if a.Dead {
		return
	}
	a.Heading = sprite.NormalizeHeading(a.Heading + a.Spin)
	a.Pos = Wrap(a.Pos.Add(a.Vel))
}

// StageCount returns the number of visual stages.
func (a *Asteroid) StageCount() int {
	if len(a.stages) > 0 {
		return len(a.stages)
	}
	return 4
}

// AdvanceStage moves to the next visual stage, reporting false when there is
// no stage left and the asteroid is destroyed.
func (a *Asteroid) AdvanceStage() bool {
	if a.Stage+1 >= a.StageCount() {
		a.Dead = true
		return false
	}
	a.Stage++
	return true
}

// TakeDamage applies damage point by point, advancing one stage per point.
// It reports false once the asteroid is destroyed.
func (a *Asteroid) TakeDamage(damage int) bool {
	for ; damage > 0; damage-- {
		a.HitPoints--
		if a.HitPoints <= 0 {
			a.Dead = true
			return false
		}
		if !a.AdvanceStage() {
			return false
		}
	}
	return !a.Dead
}

func (a *Asteroid) Draw(screen *ebiten.Image) {
	if a.Dead || a.Stage >= len(a.stages) {
		return
	}
	set := a.stages[a.Stage]
	if set == nil {
		return
	}
	frame := sprite.FrameForHeading(a.Heading, set.FrameCount())
	set.Draw(screen, frame, a.Pos.X, a.Pos.Y, a.Scale)
}
