package main

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
	"github.com/milk9111/arena/sim"
	"github.com/sirupsen/logrus"
)

func main() {
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "tick duration in seconds")
	seed := flag.Int64("seed", 1, "random seed")
	verbose := flag.Bool("v", false, "log every transition")
	every := flag.Int("every", 60, "log a summary every n ticks")
	watch := flag.Bool("watch", false, "reload prefabs from disk while running")
	dir := flag.String("prefabs", "", "prefab directory overriding the embedded copies")
	profile := flag.Bool("profile", false, "report time spent per system")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if *dir != "" {
		prefabs.Dir = *dir
	}

	cat, err := prefabs.LoadCatalog()
	if err != nil {
		logrus.Fatal(err)
	}
	arena, err := sim.New(cat, sim.Options{Seed: *seed})
	if err != nil {
		logrus.Fatal(err)
	}
	arena.Scheduler.Profile = *profile
	if *profile {
		defer reportTimings(arena)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			logrus.WithError(err).Warn("prefab watcher disabled")
		} else {
			defer watcher.Close()
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	pilot := &sim.Autopilot{ThrowRange: 160}
	for i := 0; i < *ticks; i++ {
		select {
		case <-interrupt:
			logrus.Info("interrupted")
			summarize(arena)
			return
		default:
		}

		if watcher != nil {
			for _, name := range watcher.Drain() {
				if err := arena.Reload(name); err != nil {
					logrus.WithError(err).WithField("file", name).Warn("reload failed")
				}
			}
		}

		arena.SetInput(pilot.Input(arena, *dt))
		arena.Step(*dt)

		if *every > 0 && (i+1)%*every == 0 {
			summarize(arena)
		}
		if st, ok := arena.PlayerState(); !ok || st.Kind == component.PlayerDead {
			logrus.WithField("tick", arena.Tick()).Info("player is dead")
			break
		}
	}
	summarize(arena)
}

func summarize(arena *sim.Arena) {
	snap := arena.Snapshot()
	alive := 0
	for _, c := range snap.Creatures {
		if c.State != "dying" && c.State != "dead" {
			alive++
		}
	}
	logrus.WithFields(logrus.Fields{
		"tick":      snap.Tick,
		"elapsed":   snap.Elapsed,
		"player":    snap.Player.State,
		"health":    snap.Player.Health,
		"creatures": alive,
		"props":     snap.Props,
	}).Info("summary")
}

func reportTimings(arena *sim.Arena) {
	for _, t := range arena.Scheduler.Timings() {
		logrus.WithFields(logrus.Fields{
			"system": t.Name,
			"total":  t.Total,
			"calls":  t.Calls,
			"avg":    t.Total / time.Duration(t.Calls),
		}).Info("system timing")
	}
}
