package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// StunSystem counts stuns down while actors are stunned and releases them
// when the timer expires.
// Players return to idle; creatures resume the chase if still activated.
type StunSystem struct {
	transitions *Transitions
}

func NewStunSystem(t *Transitions) *StunSystem {
	return &StunSystem{transitions: t}
}

func (s *StunSystem) Update(w *ecs.World) {
	if s == nil || s.transitions == nil || w == nil {
		return
	}
	dt := tickDT(w)

	ecs.ForEach(w, component.StunComponent.Kind(), func(e ecs.Entity, stun *component.Stun) {
		player, isPlayer := ecs.Get(w, e, component.PlayerFSMComponent.Kind())
		creature, isCreature := ecs.Get(w, e, component.CreatureFSMComponent.Kind())

		// The timer only runs once the stunned state has been entered, which
		// happens a tick after the hit.
		switch {
		case isPlayer && player.Current.Kind != component.PlayerStunned:
			return
		case isCreature && creature.Current.Kind != component.CreatureStunned:
			return
		}

		stun.Remaining -= dt
		if stun.Remaining > 0 {
			return
		}
		_ = ecs.Remove(w, e, component.StunComponent.Kind())

		switch {
		case isPlayer:
			s.transitions.Player.Request(e, component.PlayerIdleState)
		case isCreature:
			next := component.CreatureIdleState
			if host, ok := ecs.Get(w, e, component.HostilityComponent.Kind()); ok && host.Hostile && host.Activated {
				next = component.CreatureChaseState
			}
			s.transitions.Creature.Request(e, next)
		}
	})
}

// KnockbackSystem moves knocked-back actors and decays their velocity
// linearly to zero.
type KnockbackSystem struct{}

func NewKnockbackSystem() *KnockbackSystem {
	return &KnockbackSystem{}
}

func (s *KnockbackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := tickDT(w)

	ecs.ForEach2(w, component.KnockbackComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, kb *component.Knockback, tf *component.Transform) {
		tf.Position = tf.Position.Add(kb.Velocity.Mult(dt))
		kb.Remaining -= dt
		if kb.Remaining <= 0 || kb.Duration <= 0 {
			_ = ecs.Remove(w, e, component.KnockbackComponent.Kind())
			return
		}
		kb.Velocity = kb.Initial.Mult(kb.Remaining / kb.Duration)
	})
}
