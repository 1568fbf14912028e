package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/logastroids/common"
	"github.com/milk9111/logastroids/obj"
	"github.com/milk9111/logastroids/prefabs"
	"github.com/milk9111/logastroids/system"
)

type mode int

const (
	modeTitle mode = iota
	modePlaying
	modePaused
	modeNameEntry
	modeGameOver
)

const asteroidExplosionHold = 4

type Game struct {
	ctx    *Context
	input  *obj.Input
	frames int

	mode    mode
	pauseUI *ebitenui.UI

	watcher *prefabs.Watcher

	ship       *obj.Ship
	bullets    []*obj.Bullet
	rockets    []*obj.Rocket
	asteroids  []*obj.Asteroid
	explosions []*obj.Explosion
	powerUps   []*obj.PowerUp
	fireballs  []*obj.Fireball

	boss       *obj.Boss
	bossDriver *system.BossDriver

	director *system.Director
	level    int
	score    int

	// Name being typed on the high-score prompt, and the rank the run
	// landed at once committed.
	nameBuf  []rune
	lastRank int
}

func NewGame(ctx *Context) *Game {
	g := &Game{
		ctx:      ctx,
		input:    obj.NewInput(),
		lastRank: -1,
	}
	g.pauseUI = NewPauseUI(g)

	watcher, err := prefabs.NewWatcher("prefabs")
	if err != nil {
		// Running without an editable prefabs dir next to the binary is
		// the normal shipped configuration.
		if ctx.debug {
			log.Printf("tuning hot reload disabled: %v", err)
		}
	} else {
		g.watcher = watcher
	}
	return g
}

// startRun resets the playfield for a fresh run at level 1.
func (g *Game) startRun() error {
	g.score = 0
	g.level = 1
	g.bullets = nil
	g.rockets = nil
	g.explosions = nil
	g.powerUps = nil
	g.fireballs = nil
	g.nameBuf = g.nameBuf[:0]
	g.lastRank = -1

	sheets, err := g.ctx.shipSheets()
	if err != nil {
		return err
	}
	center := cp.Vector{X: common.BaseWidth / 2, Y: common.BaseHeight / 2}
	g.ship = obj.NewShip(sheets, center, g.ctx.tuning.Ship)

	if err := g.startLevel(1); err != nil {
		return err
	}
	g.mode = modePlaying
	return nil
}

// startLevel builds the wave director and, on boss levels, the boss.
func (g *Game) startLevel(level int) error {
	g.level = level
	g.asteroids = nil
	g.boss = nil
	g.bossDriver = nil

	stages, err := g.ctx.asteroidStages()
	if err != nil {
		return err
	}
	params := system.ParamsForLevel(level, g.ctx.tuning.Level, g.ctx.tuning.Boss)
	g.director = system.NewDirector(params, g.ctx.tuning.Asteroid, stages, g.ctx.rng)
	g.asteroids = g.director.SpawnInitial()

	if params.BossLevel {
		bossSet, err := g.ctx.frameSet("boss")
		if err != nil {
			return err
		}
		fireballSet, err := g.ctx.frameSet("fireball")
		if err != nil {
			return err
		}
		g.boss = obj.NewBoss(bossSet, fireballSet, g.ctx.tuning.Boss, common.BaseWidth/2)
		driver, err := system.NewBossDriver(g.boss, g.ctx.tuning.Boss)
		if err != nil {
			return err
		}
		g.bossDriver = driver
	}
	return nil
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	g.drainWatcher()

	switch g.mode {
	case modeTitle:
		if g.input.StartPressed {
			return g.startRun()
		}
	case modePlaying:
		if g.input.PausePressed {
			g.mode = modePaused
			return nil
		}
		return g.updatePlaying()
	case modePaused:
		g.pauseUI.Update()
		if g.input.PausePressed {
			g.mode = modePlaying
		}
	case modeNameEntry:
		g.updateNameEntry()
	case modeGameOver:
		if g.input.StartPressed {
			return g.startRun()
		}
	}
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("prefab watcher: %v", err)
			}
			if !ok {
				g.watcher = nil
				return
			}
		default:
			if reload {
				if err := g.ctx.ReloadTuning(); err != nil {
					log.Printf("tuning reload failed: %v", err)
				} else if g.ctx.debug {
					log.Print("tuning reloaded")
				}
			}
			return
		}
	}
}

func (g *Game) updatePlaying() error {
	g.ship.Update(g.input)

	if g.input.FirePressed {
		if b := g.ship.Fire(g.ctx.tuning.Bullet); b != nil {
			g.bullets = append(g.bullets, b)
		}
	}
	if g.input.RocketPressed {
		sheets, err := g.ctx.rocketSheets()
		if err != nil {
			return err
		}
		if r := g.ship.FireRocket(sheets, g.ctx.tuning.Bullet, g.ctx.tuning.Rocket); r != nil {
			g.rockets = append(g.rockets, r)
		}
	}

	for _, b := range g.bullets {
		b.Update()
	}
	for _, r := range g.rockets {
		r.Update()
	}
	for _, a := range g.asteroids {
		a.Update()
	}
	for _, e := range g.explosions {
		e.Update()
	}
	for _, p := range g.powerUps {
		p.Update()
	}
	for _, f := range g.fireballs {
		f.Update()
	}

	if g.bossDriver != nil && g.boss != nil && !g.boss.Dead {
		fired, err := g.bossDriver.Update(g.ship.Pos)
		if err != nil {
			log.Printf("boss script: %v", err)
			g.bossDriver = nil
		}
		g.fireballs = append(g.fireballs, fired...)
	}

	if a := g.director.Update(len(g.asteroids)); a != nil {
		g.asteroids = append(g.asteroids, a)
	}

	g.resolveCollisions()
	g.compact()

	if g.ship.Dead {
		g.endRun()
		return nil
	}

	bossDown := g.boss == nil || g.boss.Dead
	if bossDown && g.director.LevelComplete(len(g.asteroids)) {
		return g.startLevel(g.level + 1)
	}
	return nil
}

func (g *Game) resolveCollisions() {
	for _, b := range g.bullets {
		if b.Dead {
			continue
		}
		for _, a := range g.asteroids {
			if a.Dead || !obj.CirclesOverlap(b.Pos, b.Radius, a.Pos, a.Radius) {
				continue
			}
			b.Dead = true
			g.score += g.ctx.tuning.Score.StageHit
			if !a.TakeDamage(1) {
				g.destroyAsteroid(a)
			}
			break
		}
		if !b.Dead && g.bossAlive() && obj.CirclesOverlap(b.Pos, b.Radius, g.boss.Pos, g.boss.Radius) {
			b.Dead = true
			g.hitBoss(1)
		}
	}

	for _, r := range g.rockets {
		if r.Dead {
			continue
		}
		for _, a := range g.asteroids {
			if a.Dead || !obj.CirclesOverlap(r.Pos, r.Radius, a.Pos, a.Radius) {
				continue
			}
			r.Dead = true
			if !a.TakeDamage(r.Damage) {
				g.destroyAsteroid(a)
			}
			break
		}
		if !r.Dead && g.bossAlive() && obj.CirclesOverlap(r.Pos, r.Radius, g.boss.Pos, g.boss.Radius) {
			r.Dead = true
			g.hitBoss(r.Damage)
		}
	}

	if g.ship.Vulnerable() {
		for _, a := range g.asteroids {
			if !a.Dead && obj.CirclesOverlap(g.ship.Pos, g.ship.Radius, a.Pos, a.Radius) {
				g.ship.TakeHit(a)
				break
			}
		}
	}
	if g.ship.Vulnerable() {
		for _, f := range g.fireballs {
			if !f.Dead && obj.CirclesOverlap(g.ship.Pos, g.ship.Radius, f.Pos, f.Radius) {
				f.Dead = true
				g.ship.TakeHit(nil)
				break
			}
		}
	}

	for _, p := range g.powerUps {
		if !p.Dead && !g.ship.Exploding && !g.ship.Dead &&
			obj.CirclesOverlap(g.ship.Pos, g.ship.Radius, p.Pos, p.Radius) {
			p.Dead = true
			g.ship.ApplyPowerUp(p.Kind)
		}
	}
}

func (g *Game) bossAlive() bool {
	return g.boss != nil && !g.boss.Dead
}

func (g *Game) hitBoss(damage int) {
	if !g.boss.TakeDamage(damage) {
		return
	}
	g.score += g.ctx.tuning.Boss.Score
	g.spawnExplosion(g.boss.Pos, g.boss.Vel, 0, 1, 1.5)
}

// destroyAsteroid scores the kill, plays the shard animation, splits
// full-size parents and rolls a power-up drop.
func (g *Game) destroyAsteroid(a *obj.Asteroid) {
	g.score += g.ctx.tuning.Score.Kill
	g.spawnExplosion(a.Pos, a.Vel, a.Heading, a.Spin, a.Scale)

	if a.SpawnChildren {
		g.asteroids = append(g.asteroids, g.director.SpawnChildren(a)...)
	}

	if g.ctx.rng.Float64() < g.ctx.tuning.PowerUp.DropChance {
		g.dropPowerUp(a.Pos)
	}
}

func (g *Game) spawnExplosion(pos, vel cp.Vector, heading, spin, scale float64) {
	broken, err := g.ctx.brokenSheets()
	if err != nil {
		log.Printf("broken sheets: %v", err)
		return
	}
	g.explosions = append(g.explosions, obj.NewExplosion(broken, pos, vel, heading, spin, scale, asteroidExplosionHold))
}

func (g *Game) dropPowerUp(pos cp.Vector) {
	set, err := g.ctx.frameSet("powerups")
	if err != nil {
		log.Printf("powerups sheet: %v", err)
		return
	}
	kind := obj.PowerUpKind(g.ctx.rng.Intn(4))
	g.powerUps = append(g.powerUps, obj.NewPowerUp(set, kind, pos, g.ctx.tuning.PowerUp.Speed, g.ctx.tuning.PowerUp.Lifetime))
}

// compact drops dead entities in place.
func (g *Game) compact() {
	g.bullets = compactSlice(g.bullets, func(b *obj.Bullet) bool { return b.Dead })
	g.rockets = compactSlice(g.rockets, func(r *obj.Rocket) bool { return r.Dead })
	g.asteroids = compactSlice(g.asteroids, func(a *obj.Asteroid) bool { return a.Dead })
	g.explosions = compactSlice(g.explosions, func(e *obj.Explosion) bool { return e.Dead })
	g.powerUps = compactSlice(g.powerUps, func(p *obj.PowerUp) bool { return p.Dead })
	g.fireballs = compactSlice(g.fireballs, func(f *obj.Fireball) bool { return f.Dead })
}

func compactSlice[T any](s []*T, dead func(*T) bool) []*T {
	out := s[:0]
	for _, v := range s {
		if !dead(v) {
			out = append(out, v)
		}
	}
	for i := len(out); i < len(s); i++ {
		s[i] = nil
	}
	return out
}

func (g *Game) endRun() {
	if g.ctx.scores.Qualifies(g.score) {
		g.nameBuf = g.nameBuf[:0]
		g.mode = modeNameEntry
		return
	}
	g.mode = modeGameOver
}

func (g *Game) updateNameEntry() {
	maxLen := g.ctx.tuning.Score.MaxNameLen
	for _, r := range g.input.Typed {
		if len(g.nameBuf) < maxLen {
			g.nameBuf = append(g.nameBuf, r)
		}
	}
	if g.input.DeletePressed && len(g.nameBuf) > 0 {
		g.nameBuf = g.nameBuf[:len(g.nameBuf)-1]
	}
	if g.input.EnterPressed {
		g.lastRank = g.ctx.scores.Add(string(g.nameBuf), g.score)
		if err := g.ctx.store.Save(g.ctx.scores); err != nil {
			log.Printf("save high scores: %v", err)
		}
		g.mode = modeGameOver
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case modeTitle:
		g.drawTitle(screen)
		return
	case modeNameEntry, modeGameOver:
		g.drawField(screen)
		g.drawGameOver(screen)
		return
	}

	g.drawField(screen)
	g.drawHUD(screen)

	if g.mode == modePaused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawField(screen *ebiten.Image) {
	for _, a := range g.asteroids {
		a.Draw(screen)
	}
	for _, e := range g.explosions {
		e.Draw(screen)
	}
	for _, p := range g.powerUps {
		p.Draw(screen)
	}
	for _, b := range g.bullets {
		b.Draw(screen)
	}
	for _, r := range g.rockets {
		r.Draw(screen)
	}
	for _, f := range g.fireballs {
		f.Draw(screen)
	}
	if g.boss != nil {
		g.boss.Draw(screen)
	}
	if g.ship != nil {
		g.ship.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
