package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeaponFormulas(t *testing.T) {
	tests := []struct {
		name   string
		weapon Weapon
		speed  float64
		swing  float64
		rng    float64
		cone   float64
		blockD float64
		blockK float64
	}{
		{"zero_tiers", Weapon{}, 1, 1, 20, 0.35, 0.1, 0.2},
		{"tier_two", Weapon{SpeedTier: 2, ReachTier: 2, ArcTier: 2, BlockTier: 2, BlockKnockbackTier: 2}, 2, 0.5, 40, 0.85, 0.4, 0.5},
		{"mixed", Weapon{SpeedTier: 1, ReachTier: 3, ArcTier: 1, BlockTier: 4, BlockKnockbackTier: 0}, 1.5, 1 / 1.5, 50, 0.6, 0.7, 0.2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := tc.weapon
			assert.InDelta(t, tc.speed, w.AttackSpeed(), 1e-9)
			assert.InDelta(t, tc.swing, w.SwingDuration(), 1e-9)
			assert.InDelta(t, tc.rng, w.Range(), 1e-9)
			assert.InDelta(t, tc.cone, w.ConeAngle(), 1e-9)
			assert.InDelta(t, tc.blockD, w.BlockDamageReduction(), 1e-9)
			assert.InDelta(t, tc.blockK, w.BlockKnockbackReduction(), 1e-9)
		})
	}
}

func TestWeaponEffects(t *testing.T) {
	w := Weapon{Effects: []Effect{
		{Kind: EffectStun, Value: 0.3},
		{Kind: EffectKnockback, Value: 50},
		{Kind: EffectStun, Value: 0.8},
		{Kind: EffectKnockback, Value: 25},
	}}
	assert.InDelta(t, 0.8, w.StunDuration(), 1e-9)
	assert.InDelta(t, 75, w.KnockbackForce(), 1e-9)

	var bare Weapon
	assert.Zero(t, bare.StunDuration())
	assert.Zero(t, bare.KnockbackForce())
}

func TestFinalDamage(t *testing.T) {
	tests := []struct {
		damage int
		mult   float64
		want   int
	}{
		{5, 1, 5},
		{5, 0.5, 2},
		{3, 0.9, 2},
		{1, 0.6, 0},
		{4, 0, 0},
		{4, -1, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FinalDamage(tc.damage, tc.mult), "damage=%d mult=%v", tc.damage, tc.mult)
	}
}

func TestFistsWeapon(t *testing.T) {
	f := FistsWeapon()
	assert.Equal(t, 1, f.Damage)
	assert.Equal(t, AttackBlunt, f.AttackType)
	assert.Greater(t, f.KnockbackForce(), 0.0)
}
