package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/prefabs"
	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Int64("seed", 1, "random seed")
	debug := flag.Bool("debug", false, "enable debug logging and steering rays")
	watch := flag.Bool("watch", true, "reload prefabs from disk on change")
	dir := flag.String("prefabs", "", "prefab directory overriding the embedded copies")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if *dir != "" {
		prefabs.Dir = *dir
	}
	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("arena")

	game, err := NewGame(*seed, *debug, *watch)
	if err != nil {
		logrus.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logrus.Fatal(err)
	}
}
