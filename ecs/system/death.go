package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/sirupsen/logrus"
)

// DeathSystem finishes dying actors after the dying duration and despawns
// dead creatures. Dead is terminal; nothing requests a way out of it.
type DeathSystem struct {
	transitions *Transitions
}

func NewDeathSystem(t *Transitions) *DeathSystem {
	return &DeathSystem{transitions: t}
}

func (s *DeathSystem) Update(w *ecs.World) {
	if s == nil || s.transitions == nil || w == nil {
		return
	}
	tuning := currentTuning(w)

	ecs.ForEach(w, component.PlayerFSMComponent.Kind(), func(e ecs.Entity, m *component.PlayerFSM) {
		if m.Current.Kind == component.PlayerDying && m.TimeInState >= tuning.DyingDuration {
			s.transitions.Player.Request(e, component.PlayerDeadState)
		}
	})

	ecs.ForEach(w, component.CreatureFSMComponent.Kind(), func(e ecs.Entity, m *component.CreatureFSM) {
		switch m.Current.Kind {
		case component.CreatureDying:
			if m.TimeInState >= tuning.DyingDuration {
				s.transitions.Creature.Request(e, component.CreatureDeadState)
			}
		case component.CreatureDead:
			logrus.WithField("entity", e).Debug("despawn creature")
			ecs.DestroyEntity(w, e)
		}
	})
}
