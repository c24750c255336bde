package component

import (
	"fmt"

	"github.com/milk9111/arena/fsm"
)

type CreatureStateKind uint8

const (
	CreatureIdle CreatureStateKind = iota
	CreaturePatrol
	CreatureChase
	CreatureAttack
	CreatureCooldown
	CreatureStunned
	CreatureDying
	CreatureDead
)

var creatureStateNames = [...]string{
	CreatureIdle:     "idle",
	CreaturePatrol:   "patrol",
	CreatureChase:    "chase",
	CreatureAttack:   "attack",
	CreatureCooldown: "cooldown",
	CreatureStunned:  "stunned",
	CreatureDying:    "dying",
	CreatureDead:     "dead",
}

func (k CreatureStateKind) String() string {
	if int(k) < len(creatureStateNames) {
		return creatureStateNames[k]
	}
	return fmt.Sprintf("creature_state(%d)", k)
}

// CreatureState is a creature's behavioural state. Phase is only meaningful
// when Kind is CreatureAttack.
type CreatureState struct {
	Kind  CreatureStateKind
	Phase AttackPhase
}

var (
	CreatureIdleState     = CreatureState{Kind: CreatureIdle}
	CreaturePatrolState   = CreatureState{Kind: CreaturePatrol}
	CreatureChaseState    = CreatureState{Kind: CreatureChase}
	CreatureCooldownState = CreatureState{Kind: CreatureCooldown}
	CreatureStunnedState  = CreatureState{Kind: CreatureStunned}
	CreatureDyingState    = CreatureState{Kind: CreatureDying}
	CreatureDeadState     = CreatureState{Kind: CreatureDead}
)

func CreatureAttackState(phase AttackPhase) CreatureState {
	return CreatureState{Kind: CreatureAttack, Phase: phase}
}

// CanTransitionTo encodes the creature transition graph.
func (s CreatureState) CanTransitionTo(target CreatureState) bool {
	switch s.Kind {
	case CreatureDead:
		return false
	case CreatureDying:
		return target.Kind == CreatureDead
	}

	switch target.Kind {
	case CreatureDying, CreatureDead, CreatureStunned:
		return true
	}

	switch s.Kind {
	case CreatureIdle:
		return target.Kind == CreaturePatrol || target.Kind == CreatureChase
	case CreaturePatrol:
		return target.Kind == CreatureChase || target.Kind == CreatureIdle
	case CreatureChase:
		return target.Kind == CreatureIdle || target.Kind == CreaturePatrol || target.Kind == CreatureAttack
	case CreatureAttack:
		switch target.Kind {
		case CreatureAttack, CreatureCooldown, CreatureChase, CreaturePatrol, CreatureIdle:
			return true
		}
	case CreatureCooldown:
		return target.Kind == CreatureChase || target.Kind == CreatureIdle
	case CreatureStunned:
		return target.Kind == CreatureIdle || target.Kind == CreaturePatrol || target.Kind == CreatureChase
	}
	return false
}

func (s CreatureState) Is(kind CreatureStateKind) bool {
	return s.Kind == kind
}

func (s CreatureState) InPhase(phase AttackPhase) bool {
	return s.Kind == CreatureAttack && s.Phase == phase
}

func (s CreatureState) String() string {
	if s.Kind == CreatureAttack {
		return s.Kind.String() + ":" + s.Phase.String()
	}
	return s.Kind.String()
}

// ParseCreatureState accepts names such as "chase" or "attack:windup".
func ParseCreatureState(name string) (CreatureState, error) {
	kindName, phaseName := splitStateName(name)
	for k, n := range creatureStateNames {
		if n != kindName {
			continue
		}
		kind := CreatureStateKind(k)
		if kind != CreatureAttack {
			return CreatureState{Kind: kind}, nil
		}
		phase, ok := parseAttackPhase(phaseName)
		if !ok {
			return CreatureState{}, fmt.Errorf("component: unknown attack phase %q", phaseName)
		}
		return CreatureAttackState(phase), nil
	}
	return CreatureState{}, fmt.Errorf("component: unknown creature state %q", name)
}

type CreatureFSM = fsm.Machine[CreatureState]

var CreatureFSMComponent = NewComponent[CreatureFSM]()
