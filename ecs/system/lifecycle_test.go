package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
	"github.com/milk9111/arena/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatureDeathSequence(t *testing.T) {
	f := newFixture(t)
	wolf := f.creature("wolf", cp.Vector{X: 200})

	var entered []component.CreatureStateKind
	f.tr.Creature.OnEnter(func(n CreatureNotice) { entered = append(entered, n.State.Kind) })

	res := applyHit(f.w, f.tr, pendingHit{attacker: f.player, target: wolf, weapon: component.Weapon{Damage: 10}}, f.cat.Settings)
	require.True(t, res.Killed)
	assert.Equal(t, 10, res.Damage)

	f.step(tickDT16)
	assert.Equal(t, component.CreatureDyingState, f.creatureState(wolf))

	ticks := 1
	for ecs.IsAlive(f.w, wolf) && ticks < 30 {
		f.step(tickDT16)
		ticks++
	}
	assert.False(t, ecs.IsAlive(f.w, wolf), "dead creatures are despawned")
	assert.LessOrEqual(t, ticks, 15)
	assert.Equal(t, []component.CreatureStateKind{component.CreatureDying, component.CreatureDead}, entered)
}

func TestDyingCreatureIsNoLongerTargeted(t *testing.T) {
	f := newFixture(t)
	wolf := f.creature("wolf", cp.Vector{X: 30})
	f.tr.Creature.RequestForced(wolf, component.CreatureDyingState)
	f.tr.Creature.Process()

	for _, c := range victims(f.w) {
		assert.NotEqual(t, wolf, c.entity)
	}
}

func TestDeadPlayerStaysDead(t *testing.T) {
	f := newFixture(t)
	res := applyHit(f.w, f.tr, pendingHit{attacker: f.player, target: f.player, weapon: component.Weapon{Damage: 99}}, f.cat.Settings)
	require.True(t, res.Killed)

	for i := 0; i < 20; i++ {
		f.step(tickDT16)
	}
	require.Equal(t, component.PlayerDeadState, f.playerState())

	in := f.input()
	in.Attack, in.Dash, in.Move = true, true, cp.Vector{X: 1}
	for i := 0; i < 20; i++ {
		f.step(tickDT16)
	}
	assert.Equal(t, component.PlayerDeadState, f.playerState())
	assert.True(t, ecs.IsAlive(f.w, f.player))
	assert.Equal(t, 0, f.tr.Player.Pending())
}

func TestStunExpiry(t *testing.T) {
	tests := []struct {
		name      string
		prefab    string
		wantState component.CreatureState
	}{
		{"hostile_resumes_chase", "wolf", component.CreatureChaseState},
		{"passive_goes_idle", "deer", component.CreatureIdleState},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			e := f.creature(tc.prefab, cp.Vector{X: 120})
			host, _ := ecs.Get(f.w, e, component.HostilityComponent.Kind())
			host.Activated = host.Hostile
			require.True(t, applyStun(f.w, f.tr, e, 0.25))

			f.step(tickDT16)
			assert.Equal(t, component.CreatureStunnedState, f.creatureState(e))
			pos := f.transform(e).Position

			for i := 0; i < 3; i++ {
				f.step(tickDT16)
				assert.Equal(t, component.CreatureStunnedState, f.creatureState(e))
			}
			assert.Equal(t, pos, f.transform(e).Position, "stunned creatures do not move")

			f.step(tickDT16)
			assert.Equal(t, tc.wantState, f.creatureState(e))
			assert.False(t, ecs.Has(f.w, e, component.StunComponent.Kind()))
		})
	}
}

func TestPlayerStunExpiresToIdle(t *testing.T) {
	f := newFixture(t)
	require.True(t, applyStun(f.w, f.tr, f.player, 0.125))
	f.step(tickDT16)
	assert.Equal(t, component.PlayerStunnedState, f.playerState())

	f.input().Move = cp.Vector{X: 1}
	f.step(tickDT16)
	assert.Equal(t, cp.Vector{}, f.transform(f.player).Position)
	f.step(tickDT16)
	assert.Equal(t, component.PlayerIdleState, f.playerState())
}

func TestShortStunStillReleases(t *testing.T) {
	tests := []struct {
		name    string
		target  func(f *fixture) ecs.Entity
		stunned func(f *fixture, e ecs.Entity) bool
	}{
		{
			name:    "creature",
			target:  func(f *fixture) ecs.Entity { return f.creature("wolf", cp.Vector{X: 200}) },
			stunned: func(f *fixture, e ecs.Entity) bool { return f.creatureState(e).Is(component.CreatureStunned) },
		},
		{
			name:    "player",
			target:  func(f *fixture) ecs.Entity { return f.player },
			stunned: func(f *fixture, _ ecs.Entity) bool { return f.playerState().Is(component.PlayerStunned) },
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			e := tc.target(f)
			attacker := f.creature("wolf", cp.Vector{X: -200})
			weapon := component.Weapon{Damage: 1, Effects: []component.Effect{{Kind: component.EffectStun, Value: 0.05}}}

			res := applyHit(f.w, f.tr, pendingHit{attacker: attacker, target: e, origin: cp.Vector{X: -200}, weapon: weapon}, f.cat.Settings)
			require.True(t, res.Stunned)

			// The stun system runs later in the same tick as the hit.
			f.setClock(tickDT16)
			NewStunSystem(f.tr).Update(f.w)
			require.True(t, ecs.Has(f.w, e, component.StunComponent.Kind()), "timer waits for the stunned state")

			f.step(tickDT16)
			assert.True(t, tc.stunned(f, e))
			for i := 0; i < 5; i++ {
				f.step(tickDT16)
			}
			assert.False(t, tc.stunned(f, e))
			assert.False(t, ecs.Has(f.w, e, component.StunComponent.Kind()))
		})
	}
}

func TestKnockbackDecaysLinearly(t *testing.T) {
	f := newFixture(t)
	f.setClock(tickDT16)
	require.True(t, applyKnockback(f.w, f.player, cp.Vector{X: 160}, 0.25))

	kb := NewKnockbackSystem()
	kb.Update(f.w)
	assert.InDelta(t, 10, f.transform(f.player).Position.X, 1e-9)
	k, ok := ecs.Get(f.w, f.player, component.KnockbackComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 120, k.Velocity.X, 1e-9)

	for i := 0; i < 3; i++ {
		kb.Update(f.w)
	}
	assert.False(t, ecs.Has(f.w, f.player, component.KnockbackComponent.Kind()))
	assert.InDelta(t, 10+7.5+5+2.5, f.transform(f.player).Position.X, 1e-9)
}

func TestUpdateActivation(t *testing.T) {
	tests := []struct {
		name      string
		hostile   bool
		activated bool
		sight     float64
		chase     float64
		dist      float64
		want      bool
	}{
		{"passive_never_activates", false, false, 150, 250, 10, false},
		{"enters_sight", true, false, 150, 250, 100, true},
		{"outside_sight", true, false, 150, 250, 200, false},
		{"held_inside_chase", true, true, 150, 250, 200, true},
		{"released_beyond_chase", true, true, 150, 250, 300, false},
		{"short_chase_uses_sight", true, true, 150, 50, 120, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := &component.Hostility{Hostile: tc.hostile, Activated: tc.activated}
			c := &component.Creature{SightRange: tc.sight, ChaseRange: tc.chase}
			updateActivation(h, c, tc.dist)
			assert.Equal(t, tc.want, h.Activated)
		})
	}
}

func TestHostileCreatureChasesAndAttacks(t *testing.T) {
	f := newFixture(t)
	wolf := f.creature("wolf", cp.Vector{X: 100})

	f.step(tickDT16)
	f.step(tickDT16)
	assert.Equal(t, component.CreatureChaseState, f.creatureState(wolf))

	f.step(tickDT16)
	dist := f.transform(wolf).Position.Length()
	assert.Less(t, dist, 100.0)
	dbg, ok := ecs.Get(f.w, wolf, component.SteeringDebugComponent.Kind())
	require.True(t, ok)
	assert.Greater(t, dbg.Strength, 0.0)
	assert.Less(t, dbg.Direction.X, 0.0)

	attacked := false
	for i := 0; i < 30 && !attacked; i++ {
		f.step(tickDT16)
		attacked = f.creatureState(wolf).Kind == component.CreatureAttack
	}
	assert.True(t, attacked, "a chasing creature starts a swing once in reach")
	assert.LessOrEqual(t, f.transform(wolf).Position.Length(), 30.0+8.0+100*tickDT16)
}

func TestPassiveCreatureIgnoresPlayer(t *testing.T) {
	f := newFixture(t)
	deer := f.creature("deer", cp.Vector{X: 40})
	for i := 0; i < 10; i++ {
		f.step(tickDT16)
	}
	assert.Equal(t, component.CreatureIdleState, f.creatureState(deer))
	assert.False(t, ecs.Has(f.w, deer, component.SteeringDebugComponent.Kind()))
}

func TestProjectileDestroysProp(t *testing.T) {
	f := newFixture(t)
	prop, err := entity.NewProp(f.w, prefabs.PropSpec{X: 45, Radius: 8, Health: 1})
	require.NoError(t, err)
	pebble := component.Weapon{Name: "pebble", Damage: 1, AttackType: component.AttackThrown}
	shot, err := entity.NewProjectile(f.w, cp.Vector{}, cp.Vector{X: 1}, pebble, f.cat.Settings)
	require.NoError(t, err)

	var hits []ecs.Entity
	projectiles := NewProjectileSystem(f.tr)
	projectiles.OnHit = func(_, target ecs.Entity, _ HitResult) { hits = append(hits, target) }

	f.setClock(tickDT16)
	for i := 0; i < 4 && ecs.IsAlive(f.w, shot); i++ {
		projectiles.Update(f.w)
	}
	assert.Equal(t, []ecs.Entity{prop}, hits)
	assert.False(t, ecs.IsAlive(f.w, prop))
	assert.False(t, ecs.IsAlive(f.w, shot), "spent on first hit")
}

func TestProjectileExpires(t *testing.T) {
	f := newFixture(t)
	shot, err := entity.NewProjectile(f.w, cp.Vector{}, cp.Vector{Y: 1}, component.Weapon{Damage: 1}, f.cat.Settings)
	require.NoError(t, err)

	projectiles := NewProjectileSystem(f.tr)
	f.setClock(0.5)
	projectiles.Update(f.w)
	projectiles.Update(f.w)
	assert.True(t, ecs.IsAlive(f.w, shot))
	projectiles.Update(f.w)
	assert.False(t, ecs.IsAlive(f.w, shot))
}

func TestBerserkerScriptSkipsCooldown(t *testing.T) {
	f := newFixture(t)
	wolf := f.creature("wolf", cp.Vector{X: 100})
	require.NoError(t, ecs.Add(f.w, wolf, component.ScriptComponent.Kind(), &component.Script{Path: "berserker.tengo"}))

	f.tr.Creature.RequestForced(wolf, component.CreatureCooldownState)
	f.tr.Creature.Process()

	scripts := NewCreatureScriptSystem(f.tr)
	scripts.Update(f.w)
	assert.Equal(t, 0, f.tr.Creature.Pending(), "healthy creatures wait out the cooldown")

	h, _ := ecs.Get(f.w, wolf, component.HealthComponent.Kind())
	h.Current = 1
	scripts.Update(f.w)
	require.Equal(t, 1, f.tr.Creature.Pending())
	f.tr.Creature.Process()
	assert.Equal(t, component.CreatureChaseState, f.creatureState(wolf))
}

func TestMissingScriptIsIgnored(t *testing.T) {
	f := newFixture(t)
	wolf := f.creature("wolf", cp.Vector{X: 100})
	require.NoError(t, ecs.Add(f.w, wolf, component.ScriptComponent.Kind(), &component.Script{Path: "nope.tengo"}))

	scripts := NewCreatureScriptSystem(f.tr)
	assert.NotPanics(t, func() {
		scripts.Update(f.w)
		scripts.Update(f.w)
	})
	assert.Equal(t, 0, f.tr.Creature.Pending())
}

func TestObstaclePushOutAndBounds(t *testing.T) {
	f := newFixture(t)
	_, err := entity.NewObstacle(f.w, prefabs.ObstacleSpec{X: 50, RX: 20, RY: 20})
	require.NoError(t, err)
	wolf := f.creature("wolf", cp.Vector{X: 40})
	prop, err := entity.NewProp(f.w, prefabs.PropSpec{X: 55, Radius: 4, Health: 1})
	require.NoError(t, err)

	bounds := ecs.CreateEntity(f.w)
	require.NoError(t, ecs.Add(f.w, bounds, component.ArenaBoundsComponent.Kind(), &component.ArenaBounds{Box: cp.BB{L: -5, B: -5, R: 100, T: 100}}))
	f.transform(f.player).Position = cp.Vector{X: -40, Y: 300}

	NewObstacleSystem().Update(f.w)

	assert.GreaterOrEqual(t, f.transform(wolf).Position.Distance(cp.Vector{X: 50}), 28.0-1e-6)
	assert.Equal(t, cp.Vector{X: 55}, f.transform(prop).Position, "props stay put")
	assert.Equal(t, cp.Vector{X: -5, Y: 100}, f.transform(f.player).Position)
}

func TestChaseStopsInsideMinimumDistance(t *testing.T) {
	tests := []struct {
		name        string
		minDistance float64
		x           float64
		wantMove    bool
	}{
		// Effective distance is MinDistance minus the player's offset and radius.
		{"inside", 40, 30, false},
		{"on_the_edge", 40, 32, false},
		{"outside", 40, 50, true},
		{"floor_holds", 10, 3, false},
		{"past_floor", 10, 6, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			wolf := f.creature("wolf", cp.Vector{X: tc.x})
			host, ok := ecs.Get(f.w, wolf, component.HostilityComponent.Kind())
			require.True(t, ok)
			host.Activated = true
			host.Profile = &component.SteeringProfile{Name: "close", Speed: 100, SeekWeight: 1, MinDistance: tc.minDistance}
			f.tr.Creature.RequestForced(wolf, component.CreatureChaseState)
			f.tr.Creature.Process()

			f.setClock(tickDT16)
			NewSteeringSystem().Update(f.w)

			pos := f.transform(wolf).Position
			if tc.wantMove {
				assert.Less(t, pos.X, tc.x)
			} else {
				assert.Equal(t, cp.Vector{X: tc.x}, pos)
			}
		})
	}
}
