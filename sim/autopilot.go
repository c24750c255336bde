package sim

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// Autopilot drives the player for headless runs: walk to the nearest
// living creature, swing once in reach and throw when far away.
type Autopilot struct {
	// ThrowRange is the distance beyond which the pilot throws instead of
	// walking. Zero never throws.
	ThrowRange float64
	throwCool  float64
}

func (p *Autopilot) Input(a *Arena, dt float64) component.Input {
	var in component.Input
	if p == nil || a == nil {
		return in
	}
	p.throwCool -= dt

	w := a.World
	tf, ok := ecs.Get(w, a.Player, component.TransformComponent.Kind())
	if !ok {
		return in
	}

	target, dist, found := nearestCreature(w, tf.Position)
	if !found {
		return in
	}
	to := target.Sub(tf.Position)
	in.Aim = to
	in.Move = to

	reach := 0.0
	if weapon, ok := ecs.Get(w, a.Player, component.WeaponComponent.Kind()); ok {
		reach = weapon.Range()
	}
	if dist <= reach {
		in.Move = cp.Vector{}
		in.Attack = true
	}
	if p.ThrowRange > 0 && dist > p.ThrowRange && p.throwCool <= 0 {
		in.Throw = true
		p.throwCool = 1
	}
	return in
}

func nearestCreature(w *ecs.World, from cp.Vector) (cp.Vector, float64, bool) {
	best := math.Inf(1)
	var at cp.Vector
	for _, e := range w.Query(component.CreatureTagComponent.Kind(), component.TransformComponent.Kind()) {
		if m, ok := ecs.Get(w, e, component.CreatureFSMComponent.Kind()); ok {
			if m.Current.Kind == component.CreatureDying || m.Current.Kind == component.CreatureDead {
				continue
			}
		}
		tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if d := tf.Position.Distance(from); d < best {
			best, at = d, tf.Position
		}
	}
	return at, best, !math.IsInf(best, 1)
}
