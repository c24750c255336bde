package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/fsm"
	"github.com/milk9111/arena/prefabs"
	"golang.org/x/image/colornames"
)

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, weapons map[string]component.Weapon, pos cp.Vector) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerFSMComponent.Kind(), fsm.NewMachine(component.PlayerIdleState)); err != nil {
		return 0, fmt.Errorf("player: add state machine: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.HurtboxComponent.Kind(), &component.Hurtbox{Collider: spec.Collider.Collider()}); err != nil {
		return 0, fmt.Errorf("player: add hurtbox: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.SwingComponent.Kind(), &component.Swing{}); err != nil {
		return 0, fmt.Errorf("player: add swing: %w", err)
	}

	if spec.Weapon != "" {
		weapon, ok := weapons[spec.Weapon]
		if !ok {
			return 0, fmt.Errorf("player: unknown weapon %q", spec.Weapon)
		}
		if err := ecs.Add(w, entity, component.WeaponComponent.Kind(), &weapon); err != nil {
			return 0, fmt.Errorf("player: add weapon: %w", err)
		}
	}

	if err := ecs.Add(w, entity, component.AppearanceComponent.Kind(), &component.Appearance{
		Label: "player",
		Color: spec.Color.ColorOr(colornames.Gold),
	}); err != nil {
		return 0, fmt.Errorf("player: add appearance: %w", err)
	}

	return entity, nil
}
