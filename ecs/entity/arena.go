package entity

import (
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
)

// NewWorldSingletons creates the clock, tuning and bounds entity.
func NewWorldSingletons(w *ecs.World, tuning component.Tuning, width, height float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return 0, fmt.Errorf("world: add clock: %w", err)
	}
	if err := ecs.Add(w, entity, component.TuningComponent.Kind(), &tuning); err != nil {
		return 0, fmt.Errorf("world: add tuning: %w", err)
	}
	if width > 0 && height > 0 {
		if err := ecs.Add(w, entity, component.ArenaBoundsComponent.Kind(), &component.ArenaBounds{Box: cp.BB{L: 0, B: 0, R: width, T: height}}); err != nil {
			return 0, fmt.Errorf("world: add bounds: %w", err)
		}
	}
	return entity, nil
}

// BuildArena populates w from the catalog's arena layout and returns the
// player entity.
func BuildArena(w *ecs.World, cat *prefabs.Catalog, rng *rand.Rand) (ecs.Entity, error) {
	if cat == nil {
		return 0, fmt.Errorf("arena: nil catalog")
	}
	if _, err := NewWorldSingletons(w, cat.Settings, cat.Arena.Width, cat.Arena.Height); err != nil {
		return 0, err
	}
	for _, o := range cat.Arena.Obstacles {
		if _, err := NewObstacle(w, o); err != nil {
			return 0, err
		}
	}
	for _, p := range cat.Arena.Props {
		if _, err := NewProp(w, p); err != nil {
			return 0, err
		}
	}
	player, err := NewPlayer(w, cat.Player, cat.Weapons, cat.Arena.Player.Vector())
	if err != nil {
		return 0, err
	}
	for _, spawn := range cat.Arena.Creatures {
		if _, err := NewCreature(w, cat, spawn.Prefab, cp.Vector{X: spawn.X, Y: spawn.Y}, rng); err != nil {
			return 0, err
		}
	}
	return player, nil
}
