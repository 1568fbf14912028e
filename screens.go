package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/logastroids/common"
)

func (g *Game) drawTitle(screen *ebiten.Image) {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dim := color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	cx := float64(common.BaseWidth) / 2

	drawTextCentered(screen, "L O G A S T R O I D S", cx, 280, white)
	drawTextCentered(screen, "arrows / WASD to fly, SPACE to shoot, R for rockets", cx, 360, dim)
	drawTextCentered(screen, "press P to start", cx, 400, white)

	g.drawScoreTable(screen, 460)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dim := color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	cx := float64(common.BaseWidth) / 2

	drawTextCentered(screen, "GAME OVER", cx, 200, white)
	drawTextCentered(screen, fmt.Sprintf("final score: %d  (level %d)", g.score, g.level), cx, 240, dim)

	if g.mode == modeNameEntry {
		drawTextCentered(screen, "new high score! type your name and press ENTER", cx, 300, white)
		drawTextCentered(screen, string(g.nameBuf)+"_", cx, 330, white)
		return
	}

	g.drawScoreTable(screen, 320)
	drawTextCentered(screen, "press P to play again", cx, common.BaseHeight-80, white)
}

// drawScoreTable renders the saved table starting at y, highlighting the row
// the finished run just claimed.
func (g *Game) drawScoreTable(screen *ebiten.Image, y float64) {
	entries := g.ctx.scores.Entries()
	if len(entries) == 0 {
		return
	}

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dim := color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	gold := color.NRGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff}
	cx := float64(common.BaseWidth) / 2

	drawTextCentered(screen, "HIGH SCORES", cx, y, white)
	for i, e := range entries {
		clr := dim
		if i == g.lastRank {
			clr = gold
		}
		row := fmt.Sprintf("%2d. %-12s %8d", i+1, e.Name, e.Score)
		drawTextCentered(screen, row, cx, y+24+float64(i)*18, clr)
	}
}
