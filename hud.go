package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/logastroids/common"
)

const (
	hudMargin        = 16
	healthSegWidth   = 40
	healthSegHeight  = 12
	healthSegSpacing = 6
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, hudFace, op)
}

// drawTextCentered centers s horizontally around x.
func drawTextCentered(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	w, _ := ebtext.Measure(s, hudFace, 0)
	drawText(screen, s, x-w/2, y, clr)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	drawText(screen, fmt.Sprintf("SCORE %d", g.score), hudMargin, hudMargin, white)
	drawText(screen, fmt.Sprintf("LEVEL %d", g.level), hudMargin, hudMargin+20, white)

	if g.ship != nil {
		g.drawHealth(screen)
		drawText(screen, fmt.Sprintf("ROCKETS %d", g.ship.Rockets), hudMargin, hudMargin+40, white)
		if g.ship.Invulnerable() {
			drawText(screen, "INVULNERABLE", hudMargin, hudMargin+60, color.NRGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff})
		}
	}

	if g.bossAlive() {
		g.drawBossHealth(screen)
	}

	if g.ctx.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  entities: %d",
			ebiten.ActualFPS(), len(g.asteroids)+len(g.bullets)+len(g.rockets)+len(g.fireballs)),
			hudMargin, common.BaseHeight-24)
	}
}

// drawHealth renders one segment per remaining health point, top right.
func (g *Game) drawHealth(screen *ebiten.Image) {
	max := g.ctx.tuning.Ship.MaxHealth
	for i := 0; i < max; i++ {
		x := float32(common.BaseWidth - hudMargin - (max-i)*(healthSegWidth+healthSegSpacing))
		clr := color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
		if i < g.ship.Health {
			clr = color.NRGBA{R: 0x30, G: 0xd0, B: 0x50, A: 0xff}
		}
		vector.DrawFilledRect(screen, x, hudMargin, healthSegWidth, healthSegHeight, clr, false)
	}
}

// drawBossHealth renders the boss bar centered along the top edge.
func (g *Game) drawBossHealth(screen *ebiten.Image) {
	const barWidth, barHeight = 400, 10
	x := float32(common.BaseWidth-barWidth) / 2
	y := float32(hudMargin + healthSegHeight + 8)

	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}, false)
	frac := float32(g.boss.Health) / float32(g.ctx.tuning.Boss.Health)
	if frac < 0 {
		frac = 0
	}
	vector.DrawFilledRect(screen, x, y, barWidth*frac, barHeight, color.NRGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}, false)
}
