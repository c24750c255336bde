package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/geom"
)

const waypointArrival = 4.0

// CreatureAISystem makes the per-creature decisions: the sight/chase latch,
// idle and patrol wandering, the decision to attack and the end of the
// cooldown. Chase movement belongs to SteeringSystem.
type CreatureAISystem struct {
	transitions *Transitions
	rng         *rand.Rand
}

func NewCreatureAISystem(t *Transitions, rng *rand.Rand) *CreatureAISystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &CreatureAISystem{transitions: t, rng: rng}
}

func (s *CreatureAISystem) Update(w *ecs.World) {
	if s == nil || s.transitions == nil || w == nil {
		return
	}
	dt := tickDT(w)
	tuning := currentTuning(w)
	player := findPlayer(w)

	entities := w.Query(
		component.CreatureTagComponent.Kind(),
		component.CreatureComponent.Kind(),
		component.CreatureFSMComponent.Kind(),
		component.HostilityComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, e := range entities {
		creature, _ := ecs.Get(w, e, component.CreatureComponent.Kind())
		m, _ := ecs.Get(w, e, component.CreatureFSMComponent.Kind())
		hostility, _ := ecs.Get(w, e, component.HostilityComponent.Kind())
		tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		state := m.Current
		if creatureDown(state) || state.Kind == component.CreatureStunned {
			continue
		}

		dist := math.Inf(1)
		if player.alive() {
			dist = player.position.Distance(tf.Position)
		}
		updateActivation(hostility, creature, dist)
		engaged := hostility.Hostile && hostility.Activated

		if engaged && state.Kind != component.CreatureAttack {
			tf.Rotation = player.position.Sub(tf.Position).ToAngle()
		}

		switch state.Kind {
		case component.CreatureIdle:
			switch {
			case engaged:
				s.transitions.Creature.Request(e, component.CreatureChaseState)
			case creature.IdleTime > 0 && m.TimeInState+dt >= creature.IdleTime:
				s.pickWaypoint(w, e, creature)
				s.transitions.Creature.Request(e, component.CreaturePatrolState)
			}
		case component.CreaturePatrol:
			if engaged {
				s.transitions.Creature.Request(e, component.CreatureChaseState)
				break
			}
			if s.patrol(w, e, tf, hostility, tuning, dt) {
				s.transitions.Creature.Request(e, component.CreatureIdleState)
			}
		case component.CreatureChase:
			if !engaged {
				s.transitions.Creature.Request(e, component.CreatureIdleState)
				break
			}
			if weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok && dist <= attackReach(weapon, player.collider) {
				s.transitions.Creature.Request(e, component.CreatureAttackState(component.PhaseWindUp))
			}
		case component.CreatureCooldown:
			if m.TimeInState+dt < creature.AttackCooldown {
				break
			}
			if engaged {
				s.transitions.Creature.Request(e, component.CreatureChaseState)
			} else {
				s.transitions.Creature.Request(e, component.CreatureIdleState)
			}
		}
	}
}

// updateActivation latches on inside sight range and releases outside chase
// range.
func updateActivation(h *component.Hostility, c *component.Creature, dist float64) {
	if !h.Hostile {
		h.Activated = false
		return
	}
	if !h.Activated && dist <= c.SightRange {
		h.Activated = true
	} else if h.Activated && dist > math.Max(c.ChaseRange, c.SightRange) {
		h.Activated = false
	}
}

// attackReach is the distance at which a creature starts a swing.
func attackReach(weapon *component.Weapon, target *geom.HitCollider) float64 {
	reach := weapon.Range()
	if target != nil {
		reach += target.MaxRadius()
	}
	return reach
}

func (s *CreatureAISystem) pickWaypoint(w *ecs.World, e ecs.Entity, c *component.Creature) {
	st, ok := ecs.Get(w, e, component.SteeringStateComponent.Kind())
	if !ok {
		return
	}
	angle := s.rng.Float64() * 2 * math.Pi
	radius := c.TetherRadius * math.Sqrt(s.rng.Float64())
	st.Waypoint = c.Home.Add(cp.ForAngle(angle).Mult(radius))
	st.HasWaypoint = true
}

// patrol walks toward the current waypoint and reports arrival.
func (s *CreatureAISystem) patrol(w *ecs.World, e ecs.Entity, tf *component.Transform, h *component.Hostility, tuning component.Tuning, dt float64) bool {
	st, ok := ecs.Get(w, e, component.SteeringStateComponent.Kind())
	if !ok || !st.HasWaypoint || h.Profile == nil {
		return true
	}
	to := st.Waypoint.Sub(tf.Position)
	dist := to.Length()
	step := h.Profile.Speed * tuning.PatrolSpeedScale * dt
	if dist <= waypointArrival || step >= dist {
		tf.Position = st.Waypoint
		st.HasWaypoint = false
		return true
	}
	tf.Rotation = to.ToAngle()
	tf.Position = tf.Position.Add(to.Mult(step / dist))
	return false
}
