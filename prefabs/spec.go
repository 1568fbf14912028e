package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/logastroids/sprite"
)

// LoadSpec unmarshals one prefab yaml into a typed spec.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// SheetsSpec is the asset registry: every sprite sheet the game renders,
// with its authoritative grid layout.
type SheetsSpec struct {
	Sheets []sprite.SheetSpec `yaml:"sheets"`
}

// LoadSheets reads sheets.yaml and returns the specs keyed by name. Every
// descriptor is validated up front; a malformed registry is fatal at
// startup, not at first use.
func LoadSheets() (map[string]sprite.SheetSpec, error) {
	spec, err := LoadSpec[SheetsSpec]("sheets.yaml")
	if err != nil {
		return nil, err
	}
	byName := make(map[string]sprite.SheetSpec, len(spec.Sheets))
	for _, s := range spec.Sheets {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byName[s.Name]; dup {
			return nil, fmt.Errorf("prefabs: duplicate sheet %q", s.Name)
		}
		byName[s.Name] = s
	}
	return byName, nil
}

// ShipSpec tunes ship handling and survivability.
type ShipSpec struct {
	RotationSpeed      float64 `yaml:"rotation_speed"`
	Acceleration       float64 `yaml:"acceleration"`
	MaxVelocity        float64 `yaml:"max_velocity"`
	DriftDecay         float64 `yaml:"drift_decay"`
	FireCooldown       int     `yaml:"fire_cooldown"`
	FiringDuration     int     `yaml:"firing_duration"`
	SpawnShield        int     `yaml:"spawn_shield"`
	HitInvulnerability int     `yaml:"hit_invulnerability"`
	ShieldDuration     int     `yaml:"shield_duration"`
	MaxHealth          int     `yaml:"max_health"`
	Radius             float64 `yaml:"radius"`
}

// BulletSpec tunes projectiles.
type BulletSpec struct {
	Speed    float64 `yaml:"speed"`
	Lifetime int     `yaml:"lifetime"`
}

// RocketSpec tunes the rocket power-weapon.
type RocketSpec struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	Damage          int     `yaml:"damage"`
	Scale           float64 `yaml:"scale"`
}

// AsteroidSpec tunes asteroid spawning and splitting.
type AsteroidSpec struct {
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	MaxSpin    float64 `yaml:"max_spin"`
	MinSpin    float64 `yaml:"min_spin"`
	SplitLevel int     `yaml:"split_level"`
	ChildCount int     `yaml:"child_count"`
	ChildScale float64 `yaml:"child_scale"`
	ChildSpeed float64 `yaml:"child_speed"`
}

// PowerUpSpec tunes power-up drops.
type PowerUpSpec struct {
	Speed      float64 `yaml:"speed"`
	Lifetime   int     `yaml:"lifetime"`
	DropChance float64 `yaml:"drop_chance"`
}

// LevelSpec tunes the per-level asteroid budget and its progression.
type LevelSpec struct {
	InitialAsteroids     int     `yaml:"initial_asteroids"`
	MaxOnScreen          int     `yaml:"max_on_screen"`
	TotalAsteroids       int     `yaml:"total_asteroids"`
	SpawnIntervalSeconds float64 `yaml:"spawn_interval_seconds"`
	PerLevelInitial      int     `yaml:"per_level_initial"`
	PerLevelMax          int     `yaml:"per_level_max"`
	PerLevelTotal        int     `yaml:"per_level_total"`
	SpawnReduction       float64 `yaml:"spawn_reduction_seconds"`
	MinSpawnInterval     float64 `yaml:"min_spawn_interval_seconds"`
}

// BossSpec tunes the scripted boss encounter.
type BossSpec struct {
	EveryLevels  int     `yaml:"every_levels"`
	Health       int     `yaml:"health"`
	Score        int     `yaml:"score"`
	FireInterval int     `yaml:"fire_interval"`
	Speed        float64 `yaml:"speed"`
	Radius       float64 `yaml:"radius"`
	Script       string  `yaml:"script"`
}

// ScoreSpec tunes scoring and the high-score table shape.
type ScoreSpec struct {
	StageHit   int `yaml:"stage_hit"`
	Kill       int `yaml:"kill"`
	MaxEntries int `yaml:"max_entries"`
	MaxNameLen int `yaml:"max_name_len"`
}

// TuningSpec is the full gameplay tuning document.
type TuningSpec struct {
	Ship     ShipSpec     `yaml:"ship"`
	Bullet   BulletSpec   `yaml:"bullet"`
	Rocket   RocketSpec   `yaml:"rocket"`
	Asteroid AsteroidSpec `yaml:"asteroid"`
	PowerUp  PowerUpSpec  `yaml:"powerup"`
	Level    LevelSpec    `yaml:"level"`
	Boss     BossSpec     `yaml:"boss"`
	Score    ScoreSpec    `yaml:"score"`
}

// LoadTuning reads tuning.yaml.
func LoadTuning() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec]("tuning.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
