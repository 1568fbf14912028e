// Package system holds the pieces that drive the playfield: the level
// director that paces asteroid waves and the script runtime behind the boss.
package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/obj"
	"github.com/milk9111/logastroids/prefabs"
)

const bossDispatchScript = `
boss_update(__engine, __state)
`

// BossDriver runs the boss behavior script once per tick, translating the
// script's decisions into velocity changes and fireball launches.
type BossDriver struct {
	Boss *obj.Boss

	compiled *tengo.Compiled
	state    *tengo.Map
	tick     int
	fired    []*obj.Fireball
}

// NewBossDriver compiles the behavior script named by the boss spec. The
// script must define boss_update(engine, state).
func NewBossDriver(boss *obj.Boss, spec prefabs.BossSpec) (*BossDriver, error) {
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("boss script %s: %w", spec.Script, err)
	}

	script := tengo.NewScript(append(src, []byte(bossDispatchScript)...))
	if err := script.Add("__engine", map[string]any{}); err != nil {
		return nil, err
	}
	if err := script.Add("__state", map[string]any{}); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("boss script %s: %w", spec.Script, err)
	}

	return &BossDriver{
		Boss:     boss,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Update runs one scripted tick and then integrates the boss. It returns any
// fireballs the script launched.
func (d *BossDriver) Update(playerPos cp.Vector) ([]*obj.Fireball, error) {
	if d.Boss == nil || d.Boss.Dead {
		return nil, nil
	}

	d.fired = d.fired[:0]
	engine := d.buildEngine(playerPos)
	if err := d.compiled.Set("__engine", engine); err != nil {
		return nil, err
	}
	if err := d.compiled.Set("__state", d.state); err != nil {
		return nil, err
	}
	if err := d.compiled.Run(); err != nil {
		return nil, err
	}

	d.Boss.Update()
	d.tick++

	out := make([]*obj.Fireball, len(d.fired))
	copy(out, d.fired)
	return out, nil
}

func (d *BossDriver) buildEngine(playerPos cp.Vector) *tengo.ImmutableMap {
	spec := d.Boss.Spec()
	values := map[string]tengo.Object{}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vectorArray(d.Boss.Pos), nil
	}}

	values["get_player_position"] = &tengo.UserFunction{Name: "get_player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vectorArray(playerPos), nil
	}}

	values["set_velocity"] = &tengo.UserFunction{Name: "set_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		x, okX := objectAsFloat(args[0])
		y, okY := objectAsFloat(args[1])
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		d.Boss.Vel = cp.Vector{X: x, Y: y}
		return tengo.TrueValue, nil
	}}

	values["fire"] = &tengo.UserFunction{Name: "fire", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if fb := d.Boss.FireAt(playerPos); fb != nil {
			d.fired = append(d.fired, fb)
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["fire_volley"] = &tengo.UserFunction{Name: "fire_volley", Value: func(args ...tengo.Object) (tengo.Object, error) {
		volley := d.Boss.FireVolley()
		d.fired = append(d.fired, volley...)
		return &tengo.Int{Value: int64(len(volley))}, nil
	}}

	values["tick"] = &tengo.UserFunction{Name: "tick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(d.tick)}, nil
	}}

	values["speed"] = &tengo.UserFunction{Name: "speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: spec.Speed}, nil
	}}

	values["fire_interval"] = &tengo.UserFunction{Name: "fire_interval", Value: func(args ...tengo.Object) (tengo.Object, error) {
		interval := spec.FireInterval
		if interval < 1 {
			interval = 1
		}
		return &tengo.Int{Value: int64(interval)}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func vectorArray(v cp.Vector) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{
		&tengo.Float{Value: v.X},
		&tengo.Float{Value: v.Y},
	}}
}

func objectAsFloat(o tengo.Object) (float64, bool) {
	switch v := o.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	default:
		return 0, false
	}
}
