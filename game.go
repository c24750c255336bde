package main

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
	"github.com/milk9111/arena/sim"
	"github.com/sirupsen/logrus"
	"golang.design/x/clipboard"
)

const statusDuration = 2.0

type Game struct {
	arena   *sim.Arena
	seed    int64
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	jitter  *rand.Rand

	paused       bool
	quit         bool
	showSteering bool
	clipboardOK  bool

	status      string
	statusTimer float64
}

func NewGame(seed int64, debug, watch bool) (*Game, error) {
	g := &Game{
		seed:         seed,
		showSteering: debug,
		jitter:       rand.New(rand.NewSource(seed)),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		logrus.WithError(err).Warn("clipboard unavailable")
	} else {
		g.clipboardOK = true
	}

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			logrus.WithError(err).Warn("prefab watcher disabled")
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// restart rebuilds the arena from the current prefabs.
func (g *Game) restart() error {
	cat, err := prefabs.LoadCatalog()
	if err != nil {
		return err
	}
	a, err := sim.New(cat, sim.Options{Seed: g.seed})
	if err != nil {
		return err
	}
	g.arena = a
	return nil
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.statusTimer > 0 {
		g.statusTimer -= dt
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showSteering = !g.showSteering
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			g.setStatus(fmt.Sprintf("restart failed: %v", err))
		}
	}

	if tf, ok := ecs.Get(g.arena.World, g.arena.Player, component.TransformComponent.Kind()); ok {
		g.arena.SetInput(readInput(tf.Position))
	}
	g.arena.Step(dt)
	return nil
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Drain() {
		if err := g.arena.Reload(name); err != nil {
			g.setStatus(fmt.Sprintf("reload %s: %v", name, err))
			continue
		}
		g.setStatus("reloaded " + name)
	}
}

func (g *Game) copySnapshot() {
	if !g.clipboardOK {
		g.setStatus("clipboard unavailable")
		return
	}
	data, err := g.arena.Snapshot().YAML()
	if err != nil {
		g.setStatus(fmt.Sprintf("snapshot: %v", err))
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus("snapshot copied")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTimer = statusDuration
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawArena(screen)
	g.drawHUD(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
