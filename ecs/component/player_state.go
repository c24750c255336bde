package component

import (
	"fmt"

	"github.com/milk9111/arena/fsm"
)

type PlayerStateKind uint8

const (
	PlayerIdle PlayerStateKind = iota
	PlayerMoving
	PlayerDashing
	PlayerAttacking
	PlayerStunned
	PlayerDying
	PlayerDead
)

var playerStateNames = [...]string{
	PlayerIdle:      "idle",
	PlayerMoving:    "moving",
	PlayerDashing:   "dashing",
	PlayerAttacking: "attacking",
	PlayerStunned:   "stunned",
	PlayerDying:     "dying",
	PlayerDead:      "dead",
}

func (k PlayerStateKind) String() string {
	if int(k) < len(playerStateNames) {
		return playerStateNames[k]
	}
	return fmt.Sprintf("player_state(%d)", k)
}

// PlayerState is the player's behavioural state. Phase is only meaningful
// when Kind is PlayerAttacking.
type PlayerState struct {
	Kind  PlayerStateKind
	Phase AttackPhase
}

var (
	PlayerIdleState    = PlayerState{Kind: PlayerIdle}
	PlayerMovingState  = PlayerState{Kind: PlayerMoving}
	PlayerDashingState = PlayerState{Kind: PlayerDashing}
	PlayerStunnedState = PlayerState{Kind: PlayerStunned}
	PlayerDyingState   = PlayerState{Kind: PlayerDying}
	PlayerDeadState    = PlayerState{Kind: PlayerDead}
)

func PlayerAttackingState(phase AttackPhase) PlayerState {
	return PlayerState{Kind: PlayerAttacking, Phase: phase}
}

// CanTransitionTo encodes the player transition graph.
func (s PlayerState) CanTransitionTo(target PlayerState) bool {
	switch s.Kind {
	case PlayerDead:
		return false
	case PlayerDying:
		return target.Kind == PlayerDead
	}

	switch target.Kind {
	case PlayerDying, PlayerDead, PlayerStunned:
		return true
	}

	switch s.Kind {
	case PlayerIdle:
		return target.Kind == PlayerMoving || target.Kind == PlayerDashing || target.Kind == PlayerAttacking
	case PlayerMoving:
		return target.Kind == PlayerIdle || target.Kind == PlayerDashing || target.Kind == PlayerAttacking
	case PlayerDashing:
		return target.Kind == PlayerMoving
	case PlayerAttacking:
		return target.Kind == PlayerAttacking || target.Kind == PlayerIdle
	case PlayerStunned:
		return target.Kind == PlayerIdle
	}
	return false
}

func (s PlayerState) Is(kind PlayerStateKind) bool {
	return s.Kind == kind
}

func (s PlayerState) InPhase(phase AttackPhase) bool {
	return s.Kind == PlayerAttacking && s.Phase == phase
}

func (s PlayerState) String() string {
	if s.Kind == PlayerAttacking {
		return s.Kind.String() + ":" + s.Phase.String()
	}
	return s.Kind.String()
}

// ParsePlayerState accepts names such as "moving" or "attacking:strike".
func ParsePlayerState(name string) (PlayerState, error) {
	kindName, phaseName := splitStateName(name)
	for k, n := range playerStateNames {
		if n != kindName {
			continue
		}
		kind := PlayerStateKind(k)
		if kind != PlayerAttacking {
			return PlayerState{Kind: kind}, nil
		}
		phase, ok := parseAttackPhase(phaseName)
		if !ok {
			return PlayerState{}, fmt.Errorf("component: unknown attack phase %q", phaseName)
		}
		return PlayerAttackingState(phase), nil
	}
	return PlayerState{}, fmt.Errorf("component: unknown player state %q", name)
}

type PlayerFSM = fsm.Machine[PlayerState]

var PlayerFSMComponent = NewComponent[PlayerFSM]()
