package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// SwingSystem drives the attack phase timers. Swings are armed by an enter
// listener on the wind-up phase; Update advances the timer and requests the
// strike and the return to neutral.
type SwingSystem struct {
	transitions *Transitions
}

func NewSwingSystem(t *Transitions) *SwingSystem {
	s := &SwingSystem{transitions: t}
	if t == nil {
		return s
	}
	t.Player.OnEnter(func(n PlayerNotice) {
		if !n.State.InPhase(component.PhaseWindUp) {
			return
		}
		w := t.World()
		if tf, ok := ecs.Get(w, n.Actor, component.TransformComponent.Kind()); ok {
			armSwing(w, n.Actor, tf.Rotation)
		}
	})
	t.Creature.OnEnter(func(n CreatureNotice) {
		if !n.State.InPhase(component.PhaseWindUp) {
			return
		}
		w := t.World()
		tf, ok := ecs.Get(w, n.Actor, component.TransformComponent.Kind())
		if !ok {
			return
		}
		angle := tf.Rotation
		if p := findPlayer(w); p.ok {
			if d := p.position.Sub(tf.Position); d.Length() > 0 {
				angle = d.ToAngle()
			}
		}
		tf.Rotation = angle
		armSwing(w, n.Actor, angle)
	})
	return s
}

// armSwing snapshots the bearing and resets the timer and hit flag.
func armSwing(w *ecs.World, e ecs.Entity, baseAngle float64) {
	swing, ok := ecs.Get(w, e, component.SwingComponent.Kind())
	if !ok {
		swing = &component.Swing{}
		if err := ecs.Add(w, e, component.SwingComponent.Kind(), swing); err != nil {
			return
		}
	}
	tuning := currentTuning(w)

	duration := 0.0
	if weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok {
		duration = weapon.SwingDuration()
	}
	*swing = component.Swing{
		Duration:  duration,
		HitDelay:  duration * tuning.AttackHitDelayPercent,
		BaseAngle: baseAngle,
		Armed:     true,
	}
}

func (s *SwingSystem) Update(w *ecs.World) {
	if s == nil || s.transitions == nil || w == nil {
		return
	}
	dt := tickDT(w)

	ecs.ForEach2(w, component.PlayerFSMComponent.Kind(), component.SwingComponent.Kind(), func(e ecs.Entity, m *component.PlayerFSM, swing *component.Swing) {
		if m.Current.Kind != component.PlayerAttacking || !swing.Armed {
			return
		}
		swing.Timer += dt
		if m.Current.Phase == component.PhaseWindUp && swing.Timer >= swing.HitDelay {
			s.transitions.Player.Request(e, component.PlayerAttackingState(component.PhaseStrike))
		}
		if swing.Timer >= swing.Duration {
			swing.Armed = false
			s.transitions.Player.Request(e, component.PlayerIdleState)
		}
	})

	ecs.ForEach2(w, component.CreatureFSMComponent.Kind(), component.SwingComponent.Kind(), func(e ecs.Entity, m *component.CreatureFSM, swing *component.Swing) {
		if m.Current.Kind != component.CreatureAttack || !swing.Armed {
			return
		}
		swing.Timer += dt
		if m.Current.Phase == component.PhaseWindUp && swing.Timer >= swing.HitDelay {
			s.transitions.Creature.Request(e, component.CreatureAttackState(component.PhaseStrike))
		}
		if swing.Timer >= swing.Duration {
			swing.Armed = false
			s.transitions.Creature.Request(e, component.CreatureCooldownState)
		}
	})
}
