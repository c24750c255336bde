package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/geom"
)

// CombatSystem runs the strike-phase hit tests. Player swings may hit every
// creature and prop in the cone. Creature swings against the player stop at
// the first landed hit of the tick; attackers that did not get to land keep
// HitApplied unset and may land on a later tick of the same strike.
type CombatSystem struct {
	transitions *Transitions

	// OnHit observes every applied hit. Optional.
	OnHit func(attacker, target ecs.Entity, res HitResult)
}

func NewCombatSystem(t *Transitions) *CombatSystem {
	return &CombatSystem{transitions: t}
}

type hitCandidate struct {
	entity   ecs.Entity
	position cp.Vector
	collider *geom.HitCollider
}

func (s *CombatSystem) Update(w *ecs.World) {
	if s == nil || s.transitions == nil || w == nil {
		return
	}
	tuning := currentTuning(w)
	player := findPlayer(w)

	var hits []pendingHit
	if player.alive() {
		hits = append(hits, s.resolvePlayerSwing(w, player)...)
		if hit, ok := s.resolveCreatureSwings(w, player); ok {
			hits = append(hits, hit)
		}
	}

	for _, hit := range hits {
		res := applyHit(w, s.transitions, hit, tuning)
		if s.OnHit != nil {
			s.OnHit(hit.attacker, hit.target, res)
		}
	}
}

// victims lists the creatures and props a player attack can damage.
func victims(w *ecs.World) []hitCandidate {
	var out []hitCandidate
	for _, e := range w.Query(component.CreatureTagComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind()) {
		if st, ok := creatureState(w, e); ok && creatureDown(st) {
			continue
		}
		out = append(out, candidateFor(w, e))
	}
	for _, e := range w.Query(component.PropTagComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind()) {
		out = append(out, candidateFor(w, e))
	}
	return out
}

func candidateFor(w *ecs.World, e ecs.Entity) hitCandidate {
	c := hitCandidate{entity: e}
	if tf, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		c.position = tf.Position
	}
	if hb, ok := ecs.Get(w, e, component.HurtboxComponent.Kind()); ok {
		c.collider = &hb.Collider
	}
	return c
}

func (s *CombatSystem) resolvePlayerSwing(w *ecs.World, player playerView) []pendingHit {
	if !player.state.InPhase(component.PhaseStrike) {
		return nil
	}
	swing, ok := ecs.Get(w, player.entity, component.SwingComponent.Kind())
	if !ok || !swing.Armed || swing.HitApplied {
		return nil
	}
	weapon, ok := ecs.Get(w, player.entity, component.WeaponComponent.Kind())
	if !ok {
		return nil
	}

	cone := geom.NewHitCone(player.position, cp.ForAngle(swing.BaseAngle), weapon.Range(), weapon.ConeAngle())
	var hits []pendingHit
	for _, c := range victims(w) {
		if cone.HitsCollider(c.position, c.collider) {
			hits = append(hits, pendingHit{attacker: player.entity, target: c.entity, origin: player.position, weapon: *weapon})
		}
	}
	if len(hits) > 0 {
		swing.HitApplied = true
		s.transitions.Player.Request(player.entity, component.PlayerAttackingState(component.PhaseRecovery))
	}
	return hits
}

// playerInvincible covers dashing and being knocked back.
func playerInvincible(w *ecs.World, player playerView) bool {
	if player.state.Kind == component.PlayerDashing {
		return true
	}
	kb, ok := ecs.Get(w, player.entity, component.KnockbackComponent.Kind())
	return ok && kb.Active()
}

func (s *CombatSystem) resolveCreatureSwings(w *ecs.World, player playerView) (pendingHit, bool) {
	if playerInvincible(w, player) {
		return pendingHit{}, false
	}
	for _, e := range w.Query(component.CreatureFSMComponent.Kind(), component.SwingComponent.Kind(), component.WeaponComponent.Kind(), component.TransformComponent.Kind()) {
		st, _ := creatureState(w, e)
		if !st.InPhase(component.PhaseStrike) {
			continue
		}
		swing, _ := ecs.Get(w, e, component.SwingComponent.Kind())
		if !swing.Armed || swing.HitApplied {
			continue
		}
		weapon, _ := ecs.Get(w, e, component.WeaponComponent.Kind())
		tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		cone := geom.NewHitCone(tf.Position, cp.ForAngle(swing.BaseAngle), weapon.Range(), weapon.ConeAngle())
		if !cone.HitsCollider(player.position, player.collider) {
			continue
		}
		swing.HitApplied = true
		s.transitions.Creature.Request(e, component.CreatureAttackState(component.PhaseRecovery))
		return pendingHit{attacker: e, target: player.entity, origin: tf.Position, weapon: *weapon}, true
	}
	return pendingHit{}, false
}
