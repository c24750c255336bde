package component

import "github.com/jakecoffman/cp"

// Stun counts down the remaining stun time in seconds.
type Stun struct {
	Remaining float64
}

var StunComponent = NewComponent[Stun]()

// Knockback is a velocity that decays linearly to zero over Duration.
type Knockback struct {
	Initial   cp.Vector
	Velocity  cp.Vector
	Duration  float64
	Remaining float64
}

func (k *Knockback) Active() bool {
	return k != nil && k.Remaining > 0
}

var KnockbackComponent = NewComponent[Knockback]()
