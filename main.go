package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/logastroids/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("logastroids")

	ctx, err := NewContext(*debug)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(NewGame(ctx)); err != nil {
		log.Fatal(err)
	}
}
