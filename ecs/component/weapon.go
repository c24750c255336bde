package component

import "math"

type AttackType string

const (
	AttackSlash  AttackType = "slash"
	AttackThrust AttackType = "thrust"
	AttackBlunt  AttackType = "blunt"
	AttackThrown AttackType = "thrown"
)

type EffectKind string

const (
	EffectStun      EffectKind = "stun"
	EffectKnockback EffectKind = "knockback"
)

// Effect is an on-hit effect. Value is seconds for stun and force for
// knockback.
type Effect struct {
	Kind  EffectKind
	Value float64
}

// Weapon is the equipped weapon of an actor. Tiers are small integers that
// map onto gameplay numbers through the methods below.
type Weapon struct {
	Name               string
	Damage             int
	SpeedTier          int
	ReachTier          int
	ArcTier            int
	BlockTier          int
	BlockKnockbackTier int
	AttackType         AttackType
	Effects            []Effect
	Riposte            bool
}

var WeaponComponent = NewComponent[Weapon]()

func (w *Weapon) AttackSpeed() float64 {
	return 1.0 + float64(w.SpeedTier)*0.5
}

// SwingDuration is the full length of one swing in seconds.
func (w *Weapon) SwingDuration() float64 {
	return 1.0 / w.AttackSpeed()
}

func (w *Weapon) Range() float64 {
	return 20 + float64(w.ReachTier)*10
}

// ConeAngle is the full arc width in radians.
func (w *Weapon) ConeAngle() float64 {
	return 0.35 + float64(w.ArcTier)*0.25
}

func (w *Weapon) BlockDamageReduction() float64 {
	return 0.1 + float64(w.BlockTier)*0.15
}

func (w *Weapon) BlockKnockbackReduction() float64 {
	return 0.2 + float64(w.BlockKnockbackTier)*0.15
}

// StunDuration is the longest stun among the weapon's effects.
func (w *Weapon) StunDuration() float64 {
	stun := 0.0
	for _, eff := range w.Effects {
		if eff.Kind == EffectStun && eff.Value > stun {
			stun = eff.Value
		}
	}
	return stun
}

// KnockbackForce sums every knockback effect.
func (w *Weapon) KnockbackForce() float64 {
	force := 0.0
	for _, eff := range w.Effects {
		if eff.Kind == EffectKnockback {
			force += eff.Value
		}
	}
	return force
}

// FinalDamage floors damage*multiplier and never returns a negative value.
func FinalDamage(damage int, multiplier float64) int {
	v := math.Floor(float64(damage) * multiplier)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return int(v)
}

// FistsWeapon is granted to provoked creatures that carry nothing.
func FistsWeapon() Weapon {
	return Weapon{
		Name:       "fists",
		Damage:     1,
		AttackType: AttackBlunt,
		Effects:    []Effect{{Kind: EffectKnockback, Value: 60}},
	}
}
