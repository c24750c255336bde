// Package sim assembles a playable arena: the world, its transition engines
// and the fixed system order, driven one tick at a time.
package sim

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
	"github.com/milk9111/arena/ecs/system"
	"github.com/milk9111/arena/prefabs"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Seed int64
}

// Shake is the camera shake currently playing.
type Shake struct {
	Remaining float64
	Duration  float64
	Intensity float64
}

// Arena owns one simulation. It is not safe for concurrent use.
type Arena struct {
	World       *ecs.World
	Transitions *system.Transitions
	Scheduler   *ecs.Scheduler
	Player      ecs.Entity
	Catalog     *prefabs.Catalog

	Combat      *system.CombatSystem
	Projectiles *system.ProjectileSystem

	scripts *system.CreatureScriptSystem
	freeze  float64
	shake   Shake
}

func New(cat *prefabs.Catalog, opts Options) (*Arena, error) {
	if cat == nil {
		return nil, fmt.Errorf("sim: nil catalog")
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	w := ecs.NewWorld()
	player, err := entity.BuildArena(w, cat, rng)
	if err != nil {
		return nil, fmt.Errorf("sim: build arena: %w", err)
	}

	a := &Arena{
		World:   w,
		Player:  player,
		Catalog: cat,
	}
	a.Transitions = system.NewTransitions(w)

	control := system.NewPlayerControllerSystem(a.Transitions)
	if thrown, ok := cat.ThrownWeapon(); ok {
		control.Thrown = thrown
	}
	a.scripts = system.NewCreatureScriptSystem(a.Transitions)
	a.Combat = system.NewCombatSystem(a.Transitions)
	a.Projectiles = system.NewProjectileSystem(a.Transitions)

	a.Scheduler = ecs.NewScheduler(
		system.NewTransitionSystem(a.Transitions),
		a.scripts,
		control,
		system.NewCreatureAISystem(a.Transitions, rng),
		system.NewSteeringSystem(),
		system.NewKnockbackSystem(),
		system.NewObstacleSystem(),
		system.NewSwingSystem(a.Transitions),
		a.Combat,
		a.Projectiles,
		system.NewStunSystem(a.Transitions),
		system.NewDeathSystem(a.Transitions),
		system.NewHitFreezeSystem(a.addFreeze),
		system.NewCameraShakeSystem(a.addShake),
		system.NewStateTimeSystem(),
	)
	return a, nil
}

// Step advances the simulation by dt seconds. While a hit freeze is playing
// the world is held still and Step reports false.
func (a *Arena) Step(dt float64) bool {
	if a == nil || dt <= 0 {
		return false
	}
	a.decayShake(dt)
	if a.freeze > 0 {
		a.freeze -= dt
		return false
	}

	if _, clock, ok := ecs.First(a.World, component.ClockComponent.Kind()); ok {
		clock.DT = dt
		clock.Elapsed += dt
		clock.Tick++
	}
	a.Scheduler.Update(a.World)
	return true
}

// SetInput replaces the player's intent for the next Step.
func (a *Arena) SetInput(in component.Input) {
	if a == nil {
		return
	}
	if cur, ok := ecs.Get(a.World, a.Player, component.InputComponent.Kind()); ok {
		*cur = in
	}
}

// Reload applies a changed prefab file by base name. Settings and scripts
// are applied live; other files need a fresh arena.
func (a *Arena) Reload(name string) error {
	if a == nil {
		return nil
	}
	switch {
	case name == prefabs.SettingsFile:
		tuning, err := prefabs.LoadSettings()
		if err != nil {
			return err
		}
		if _, cur, ok := ecs.First(a.World, component.TuningComponent.Kind()); ok {
			*cur = tuning
		}
		a.Catalog.Settings = tuning
		logrus.WithField("file", name).Info("settings reloaded")
	case filepath.Ext(name) == ".tengo":
		a.scripts.Invalidate()
		logrus.WithField("file", name).Info("scripts invalidated")
	default:
		logrus.WithField("file", name).Info("prefab changed; restart to apply")
	}
	return nil
}

// Freeze is the remaining hit-freeze time.
func (a *Arena) Freeze() float64 {
	return a.freeze
}

func (a *Arena) Shake() Shake {
	return a.shake
}

// Tick is the number of simulated ticks so far.
func (a *Arena) Tick() uint64 {
	if _, clock, ok := ecs.First(a.World, component.ClockComponent.Kind()); ok {
		return clock.Tick
	}
	return 0
}

// PlayerState is the player's current state, and false once the player
// entity is gone.
func (a *Arena) PlayerState() (component.PlayerState, bool) {
	m, ok := ecs.Get(a.World, a.Player, component.PlayerFSMComponent.Kind())
	if !ok {
		return component.PlayerState{}, false
	}
	return m.Current, true
}

func (a *Arena) addFreeze(seconds float64) {
	if seconds > a.freeze {
		a.freeze = seconds
	}
}

func (a *Arena) addShake(seconds, intensity float64) {
	if seconds >= a.shake.Remaining || intensity > a.shake.Intensity {
		a.shake = Shake{Remaining: seconds, Duration: seconds, Intensity: intensity}
	}
}

func (a *Arena) decayShake(dt float64) {
	if a.shake.Remaining <= 0 {
		return
	}
	a.shake.Remaining -= dt
	if a.shake.Remaining <= 0 {
		a.shake = Shake{}
	}
}
