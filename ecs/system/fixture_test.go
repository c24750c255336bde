package system

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
	"github.com/milk9111/arena/prefabs"
	"github.com/stretchr/testify/require"
)

// tickDT16 is exact in binary so accumulated timers compare cleanly.
const tickDT16 = 1.0 / 16.0

type fixture struct {
	t      *testing.T
	w      *ecs.World
	tr     *Transitions
	sched  *ecs.Scheduler
	cat    *prefabs.Catalog
	player ecs.Entity
}

func testCatalog() *prefabs.Catalog {
	pursuit := &component.SteeringProfile{Name: "pursuit", Speed: 100, SeekWeight: 1, MinDistance: 10}
	roam := &component.SteeringProfile{Name: "roam", Speed: 60, Flank: true, FlankMin: 0.3, FlankMax: 0.6, SeekWeight: 1, MinDistance: 10}
	body := prefabs.ColliderSpec{Circles: []prefabs.CircleSpec{{Radius: 8}}}
	return &prefabs.Catalog{
		Settings: component.DefaultTuning(),
		Weapons: map[string]component.Weapon{
			"sword": {Name: "sword", Damage: 3, ReachTier: 2, ArcTier: 2, AttackType: component.AttackSlash},
			"fang":  {Name: "fang", Damage: 2, ReachTier: 1, ArcTier: 2, AttackType: component.AttackThrust},
			"mace": {Name: "mace", Damage: 2, Riposte: true, AttackType: component.AttackBlunt,
				Effects: []component.Effect{{Kind: component.EffectStun, Value: 0.25}}},
		},
		Profiles: map[string]*component.SteeringProfile{"pursuit": pursuit, "roam": roam},
		Pursuit:  pursuit,
		Creatures: map[string]prefabs.CreatureSpec{
			"wolf": {Name: "wolf", Health: 5, Weapon: "fang", Hostile: true, SightRange: 150, ChaseRange: 250, AttackCooldown: 0.5, Profile: "pursuit", Collider: body},
			"deer": {Name: "deer", Health: 5, Hostile: false, SightRange: 150, ChaseRange: 250, AttackCooldown: 0.5, Profile: "roam", Collider: body},
		},
		Player: prefabs.PlayerSpec{Health: 10, Weapon: "sword", Collider: body},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{t: t, w: ecs.NewWorld(), cat: testCatalog()}
	_, err := entity.NewWorldSingletons(f.w, f.cat.Settings, 0, 0)
	require.NoError(t, err)
	f.player, err = entity.NewPlayer(f.w, f.cat.Player, f.cat.Weapons, cp.Vector{})
	require.NoError(t, err)

	f.tr = NewTransitions(f.w)
	f.sched = ecs.NewScheduler(
		NewTransitionSystem(f.tr),
		NewCreatureScriptSystem(f.tr),
		NewPlayerControllerSystem(f.tr),
		NewCreatureAISystem(f.tr, rand.New(rand.NewSource(1))),
		NewSteeringSystem(),
		NewKnockbackSystem(),
		NewObstacleSystem(),
		NewSwingSystem(f.tr),
		NewCombatSystem(f.tr),
		NewProjectileSystem(f.tr),
		NewStunSystem(f.tr),
		NewDeathSystem(f.tr),
		NewHitFreezeSystem(nil),
		NewCameraShakeSystem(nil),
		NewStateTimeSystem(),
	)
	return f
}

func (f *fixture) creature(name string, pos cp.Vector) ecs.Entity {
	f.t.Helper()
	e, err := entity.NewCreature(f.w, f.cat, name, pos, rand.New(rand.NewSource(2)))
	require.NoError(f.t, err)
	return e
}

func (f *fixture) step(dt float64) {
	_, clock, _ := ecs.First(f.w, component.ClockComponent.Kind())
	clock.DT = dt
	clock.Elapsed += dt
	clock.Tick++
	f.sched.Update(f.w)
}

// setClock primes the clock for calling a single system directly.
func (f *fixture) setClock(dt float64) {
	_, clock, _ := ecs.First(f.w, component.ClockComponent.Kind())
	clock.DT = dt
}

func (f *fixture) input() *component.Input {
	in, ok := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	require.True(f.t, ok)
	return in
}

func (f *fixture) playerState() component.PlayerState {
	m, ok := ecs.Get(f.w, f.player, component.PlayerFSMComponent.Kind())
	require.True(f.t, ok)
	return m.Current
}

func (f *fixture) creatureState(e ecs.Entity) component.CreatureState {
	st, ok := creatureState(f.w, e)
	require.True(f.t, ok)
	return st
}

func (f *fixture) health(e ecs.Entity) int {
	h, ok := ecs.Get(f.w, e, component.HealthComponent.Kind())
	require.True(f.t, ok)
	return h.Current
}

func (f *fixture) transform(e ecs.Entity) *component.Transform {
	tf, ok := ecs.Get(f.w, e, component.TransformComponent.Kind())
	require.True(f.t, ok)
	return tf
}

// forceCreatureStrike puts e into an armed strike aimed at angle.
func (f *fixture) forceCreatureStrike(e ecs.Entity, angle float64) {
	f.tr.Creature.RequestForced(e, component.CreatureAttackState(component.PhaseStrike))
	f.tr.Creature.Process()
	swing, ok := ecs.Get(f.w, e, component.SwingComponent.Kind())
	require.True(f.t, ok)
	*swing = component.Swing{Duration: 1, HitDelay: 0.5, Timer: 0.5, BaseAngle: angle, Armed: true}
}
