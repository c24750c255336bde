package entity

import (
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/fsm"
	"github.com/milk9111/arena/prefabs"
	"github.com/milk9111/arena/steering"
	"golang.org/x/image/colornames"
)

// NewCreature spawns the named creature prefab at pos. rng picks the flank
// offset; nil uses the global source.
func NewCreature(w *ecs.World, cat *prefabs.Catalog, name string, pos cp.Vector, rng *rand.Rand) (ecs.Entity, error) {
	if cat == nil {
		return 0, fmt.Errorf("creature: nil catalog")
	}
	spec, ok := cat.Creatures[name]
	if !ok {
		return 0, fmt.Errorf("creature: unknown prefab %q", name)
	}
	profile, ok := cat.Profiles[spec.Profile]
	if !ok {
		return 0, fmt.Errorf("creature %s: unknown profile %q", name, spec.Profile)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.CreatureTagComponent.Kind(), &component.CreatureTag{}); err != nil {
		return 0, fmt.Errorf("creature %s: add tag: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.CreatureFSMComponent.Kind(), fsm.NewMachine(component.CreatureIdleState)); err != nil {
		return 0, fmt.Errorf("creature %s: add state machine: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.CreatureComponent.Kind(), &component.Creature{
		Name:           spec.Name,
		SightRange:     spec.SightRange,
		ChaseRange:     spec.ChaseRange,
		AttackCooldown: spec.AttackCooldown,
		Home:           pos,
		TetherRadius:   spec.TetherRadius,
		IdleTime:       spec.IdleTime,
	}); err != nil {
		return 0, fmt.Errorf("creature %s: add creature: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.HostilityComponent.Kind(), &component.Hostility{
		Hostile: spec.Hostile,
		Profile: profile,
		Pursuit: cat.Pursuit,
	}); err != nil {
		return 0, fmt.Errorf("creature %s: add hostility: %w", name, err)
	}

	flank := 0.0
	if profile.Flank {
		flank = steering.NewFlankOffset(rng, profile.FlankMin, profile.FlankMax)
	}
	if err := ecs.Add(w, entity, component.SteeringStateComponent.Kind(), &component.SteeringState{FlankOffset: flank}); err != nil {
		return 0, fmt.Errorf("creature %s: add steering state: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("creature %s: add transform: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}); err != nil {
		return 0, fmt.Errorf("creature %s: add health: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.HurtboxComponent.Kind(), &component.Hurtbox{Collider: spec.Collider.Collider()}); err != nil {
		return 0, fmt.Errorf("creature %s: add hurtbox: %w", name, err)
	}

	if err := ecs.Add(w, entity, component.SwingComponent.Kind(), &component.Swing{}); err != nil {
		return 0, fmt.Errorf("creature %s: add swing: %w", name, err)
	}

	if spec.Weapon != "" {
		weapon, ok := cat.Weapons[spec.Weapon]
		if !ok {
			return 0, fmt.Errorf("creature %s: unknown weapon %q", name, spec.Weapon)
		}
		if err := ecs.Add(w, entity, component.WeaponComponent.Kind(), &weapon); err != nil {
			return 0, fmt.Errorf("creature %s: add weapon: %w", name, err)
		}
	}

	if spec.Script != "" {
		if err := ecs.Add(w, entity, component.ScriptComponent.Kind(), &component.Script{Path: spec.Script}); err != nil {
			return 0, fmt.Errorf("creature %s: add script: %w", name, err)
		}
	}

	if err := ecs.Add(w, entity, component.AppearanceComponent.Kind(), &component.Appearance{
		Label: spec.Name,
		Color: spec.Color.ColorOr(colornames.Crimson),
	}); err != nil {
		return 0, fmt.Errorf("creature %s: add appearance: %w", name, err)
	}

	return entity, nil
}
