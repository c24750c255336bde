package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/fsm"
	"github.com/sirupsen/logrus"
)

type PlayerEngine = fsm.Engine[ecs.Entity, component.PlayerState]
type CreatureEngine = fsm.Engine[ecs.Entity, component.CreatureState]

type PlayerNotice = fsm.Notice[ecs.Entity, component.PlayerState]
type CreatureNotice = fsm.Notice[ecs.Entity, component.CreatureState]

// Transitions owns the two transition engines of a world. Systems request
// transitions through it and subscribe to enter/exit notices.
type Transitions struct {
	world    *ecs.World
	Player   *PlayerEngine
	Creature *CreatureEngine
}

func NewTransitions(w *ecs.World) *Transitions {
	t := &Transitions{world: w}
	t.Player = fsm.NewEngine[ecs.Entity, component.PlayerState](func(e ecs.Entity) (*component.PlayerFSM, bool) {
		return ecs.Get(w, e, component.PlayerFSMComponent.Kind())
	})
	t.Creature = fsm.NewEngine[ecs.Entity, component.CreatureState](func(e ecs.Entity) (*component.CreatureFSM, bool) {
		return ecs.Get(w, e, component.CreatureFSMComponent.Kind())
	})

	t.Player.OnEnter(func(n PlayerNotice) {
		logrus.WithFields(logrus.Fields{"entity": n.Actor, "state": n.State}).Debug("player state entered")
	})
	t.Creature.OnEnter(func(n CreatureNotice) {
		logrus.WithFields(logrus.Fields{"entity": n.Actor, "state": n.State}).Debug("creature state entered")
	})
	return t
}

func (t *Transitions) World() *ecs.World {
	if t == nil {
		return nil
	}
	return t.world
}

// TransitionSystem applies the requests queued during the previous tick.
// It must run first so every later system sees this tick's states.
type TransitionSystem struct {
	transitions *Transitions
}

func NewTransitionSystem(t *Transitions) *TransitionSystem {
	return &TransitionSystem{transitions: t}
}

func (s *TransitionSystem) Update(w *ecs.World) {
	if s == nil || s.transitions == nil || w == nil {
		return
	}
	s.transitions.Player.Process()
	s.transitions.Creature.Process()
}

// StateTimeSystem advances time_in_state of every machine. It runs last so
// observers see the pre-tick value during the tick.
type StateTimeSystem struct{}

func NewStateTimeSystem() *StateTimeSystem {
	return &StateTimeSystem{}
}

func (s *StateTimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := tickDT(w)
	ecs.ForEach(w, component.PlayerFSMComponent.Kind(), func(_ ecs.Entity, m *component.PlayerFSM) {
		m.Tick(dt)
	})
	ecs.ForEach(w, component.CreatureFSMComponent.Kind(), func(_ ecs.Entity, m *component.CreatureFSM) {
		m.Tick(dt)
	})
}
