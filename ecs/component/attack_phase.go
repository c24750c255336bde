package component

import "strings"

// AttackPhase is the sub-state nested inside the attacking states.
// PhaseNone is carried by every non-attacking state.
type AttackPhase uint8

const (
	PhaseNone AttackPhase = iota
	PhaseWindUp
	PhaseStrike
	PhaseRecovery
)

func (p AttackPhase) String() string {
	switch p {
	case PhaseWindUp:
		return "windup"
	case PhaseStrike:
		return "strike"
	case PhaseRecovery:
		return "recovery"
	default:
		return ""
	}
}

func parseAttackPhase(s string) (AttackPhase, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "windup", "wind_up":
		return PhaseWindUp, true
	case "strike":
		return PhaseStrike, true
	case "recovery":
		return PhaseRecovery, true
	}
	return PhaseNone, false
}

// splitStateName splits "attack:strike" into kind and phase names.
func splitStateName(name string) (string, string) {
	kind, phase, _ := strings.Cut(strings.ToLower(strings.TrimSpace(name)), ":")
	return kind, phase
}
