package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/geom"
	"github.com/milk9111/arena/prefabs"
	"golang.org/x/image/colornames"
)

func NewProp(w *ecs.World, spec prefabs.PropSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PropTagComponent.Kind(), &component.PropTag{}); err != nil {
		return 0, fmt.Errorf("prop: add tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: cp.Vector{X: spec.X, Y: spec.Y}}); err != nil {
		return 0, fmt.Errorf("prop: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}); err != nil {
		return 0, fmt.Errorf("prop: add health: %w", err)
	}
	collider := geom.NewHitCollider(geom.Circle{Radius: spec.Radius})
	if err := ecs.Add(w, entity, component.HurtboxComponent.Kind(), &component.Hurtbox{Collider: collider}); err != nil {
		return 0, fmt.Errorf("prop: add hurtbox: %w", err)
	}
	if err := ecs.Add(w, entity, component.AppearanceComponent.Kind(), &component.Appearance{Label: "prop", Color: colornames.Burlywood}); err != nil {
		return 0, fmt.Errorf("prop: add appearance: %w", err)
	}
	return entity, nil
}

func NewObstacle(w *ecs.World, spec prefabs.ObstacleSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	shape := spec.Ellipse()
	if err := ecs.Add(w, entity, component.ObstacleComponent.Kind(), &component.Obstacle{Shape: shape}); err != nil {
		return 0, fmt.Errorf("obstacle: add obstacle: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: shape.Center}); err != nil {
		return 0, fmt.Errorf("obstacle: add transform: %w", err)
	}
	return entity, nil
}

// NewProjectile launches a thrown prop from origin along dir. It carries
// the thrown weapon as its damage source.
func NewProjectile(w *ecs.World, origin, dir cp.Vector, weapon component.Weapon, tuning component.Tuning) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	vel := geom.UnitOr(dir, cp.Vector{X: 1}).Mult(tuning.ProjectileSpeed)

	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), &component.Projectile{
		Velocity:  vel,
		Radius:    tuning.ProjectileRadius,
		Remaining: tuning.ProjectileLifetime,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: origin, Rotation: vel.ToAngle()}); err != nil {
		return 0, fmt.Errorf("projectile: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.WeaponComponent.Kind(), &weapon); err != nil {
		return 0, fmt.Errorf("projectile: add weapon: %w", err)
	}
	if err := ecs.Add(w, entity, component.AppearanceComponent.Kind(), &component.Appearance{Label: "thrown", Color: colornames.Wheat}); err != nil {
		return 0, fmt.Errorf("projectile: add appearance: %w", err)
	}
	return entity, nil
}
