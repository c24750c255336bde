package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/geom"
)

// ObstacleSystem is the authoritative collision pass: movers are pushed out
// of obstacle ellipses and clamped to the arena bounds. Steering only
// advises; this corrects.
type ObstacleSystem struct{}

func NewObstacleSystem() *ObstacleSystem {
	return &ObstacleSystem{}
}

func (s *ObstacleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var shapes []geom.Ellipse
	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		shapes = append(shapes, o.Shape)
	})
	_, bounds, hasBounds := ecs.First(w, component.ArenaBoundsComponent.Kind())

	ecs.ForEach2(w, component.HurtboxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, hb *component.Hurtbox, tf *component.Transform) {
		if ecs.Has(w, e, component.PropTagComponent.Kind()) {
			return
		}
		radius := hb.Collider.BoundingRadius()
		for _, shape := range shapes {
			if p, moved := shape.PushOut(tf.Position, radius); moved {
				tf.Position = p
			}
		}
		if hasBounds {
			tf.Position = bounds.Box.ClampVect(&tf.Position)
		}
	})
}
