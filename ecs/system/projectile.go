package system

import (
	"math"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/geom"
)

// ProjectileSystem flies thrown props. Each tick a projectile tests a full
// circle of its own radius against creatures and props and is spent on the
// first hit or when its lifetime runs out.
type ProjectileSystem struct {
	transitions *Transitions

	// OnHit observes every applied hit. Optional.
	OnHit func(projectile, target ecs.Entity, res HitResult)
}

func NewProjectileSystem(t *Transitions) *ProjectileSystem {
	return &ProjectileSystem{transitions: t}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || s.transitions == nil || w == nil {
		return
	}
	dt := tickDT(w)
	tuning := currentTuning(w)

	var spent []ecs.Entity
	var hits []pendingHit
	for _, e := range w.Query(component.ProjectileComponent.Kind(), component.TransformComponent.Kind()) {
		p, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
		tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		tf.Position = tf.Position.Add(p.Velocity.Mult(dt))
		p.Remaining -= dt

		cone := geom.NewHitCone(tf.Position, p.Velocity, p.Radius, 2*math.Pi)
		weapon, armed := ecs.Get(w, e, component.WeaponComponent.Kind())
		hit := false
		if armed {
			for _, v := range victims(w) {
				if !cone.HitsCollider(v.position, v.collider) {
					continue
				}
				hits = append(hits, pendingHit{attacker: e, target: v.entity, origin: tf.Position, weapon: *weapon})
				hit = true
				break
			}
		}
		if hit || p.Remaining <= 0 {
			spent = append(spent, e)
		}
	}

	for _, hit := range hits {
		res := applyHit(w, s.transitions, hit, tuning)
		if s.OnHit != nil {
			s.OnHit(hit.attacker, hit.target, res)
		}
	}
	for _, e := range spent {
		ecs.DestroyEntity(w, e)
	}
}
