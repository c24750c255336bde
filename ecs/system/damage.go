package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/geom"
	"github.com/sirupsen/logrus"
)

var knockbackFallback = cp.Vector{X: 0, Y: -1}

// pendingHit is a landed hit waiting to be applied. Hits are collected for
// the whole pass first so candidate iteration never sees partial damage.
type pendingHit struct {
	attacker ecs.Entity
	target   ecs.Entity
	origin   cp.Vector
	weapon   component.Weapon
}

// HitResult describes what applying a hit did, mostly for tests and logs.
type HitResult struct {
	Damage    int
	Blocked   bool
	Killed    bool
	Stunned   bool
	Provoked  bool
	Riposted  bool
	Knockback cp.Vector
}

// BlockAccepted is the facing gate of a block: the defender's facing, the
// weapon angle minus facingOffset, must point at the attacker within the
// cosine-style threshold.
func BlockAccepted(weaponAngle, facingOffset float64, toAttacker cp.Vector, threshold float64) bool {
	facing := cp.ForAngle(weaponAngle - facingOffset)
	return facing.Dot(toAttacker) > threshold*toAttacker.Length()
}

// applyHit resolves one landed hit against its target.
func applyHit(w *ecs.World, t *Transitions, hit pendingHit, tuning component.Tuning) HitResult {
	var res HitResult
	health, ok := ecs.Get(w, hit.target, component.HealthComponent.Kind())
	if !ok || health.Dead() {
		return res
	}
	tf, ok := ecs.Get(w, hit.target, component.TransformComponent.Kind())
	if !ok {
		return res
	}

	damageMult, knockbackMult := 1.0, 1.0
	toAttacker := hit.origin.Sub(tf.Position)
	defenderWeapon, armed := ecs.Get(w, hit.target, component.WeaponComponent.Kind())
	if armed && ecs.Has(w, hit.target, component.GuardComponent.Kind()) &&
		BlockAccepted(tf.Rotation, tuning.FacingOffset, toAttacker, tuning.BlockAngleThreshold) {
		res.Blocked = true
		damageMult = 1 - defenderWeapon.BlockDamageReduction()
		knockbackMult = 1 - defenderWeapon.BlockKnockbackReduction()
	}
	riposte := armed && defenderWeapon.Riposte && !res.Blocked

	res.Damage = component.FinalDamage(hit.weapon.Damage, damageMult)
	health.Current -= res.Damage

	fields := logrus.Fields{"attacker": hit.attacker, "target": hit.target, "damage": res.Damage, "health": health.Current}

	if health.Current <= 0 {
		res.Killed = true
		kill(w, t, hit.target, tuning)
		logrus.WithFields(fields).Info("killed")
		return res
	}

	if riposte {
		dir := geom.UnitOr(toAttacker, knockbackFallback.Neg())
		res.Riposted = applyKnockback(w, hit.attacker, dir.Mult(tuning.RiposteForce), tuning.KnockbackDuration)
	}

	if stun := hit.weapon.StunDuration(); stun > 0 {
		res.Stunned = applyStun(w, t, hit.target, stun)
	}

	if force := hit.weapon.KnockbackForce() * knockbackMult; force > 0 {
		dir := geom.UnitOr(tf.Position.Sub(hit.origin), knockbackFallback)
		res.Knockback = dir.Mult(force)
		applyKnockback(w, hit.target, res.Knockback, tuning.KnockbackDuration)
	}

	res.Provoked = provoke(w, hit.target)
	if res.Provoked {
		logrus.WithFields(fields).Info("creature provoked")
	}

	requestFeedback(w, hit.target, tuning.HitFreezeDuration, tuning.HitShakeDuration, tuning.HitShakeIntensity)
	logrus.WithFields(fields).WithField("blocked", res.Blocked).Debug("hit")
	return res
}

// kill starts the death sequence, or removes a prop outright.
func kill(w *ecs.World, t *Transitions, e ecs.Entity, tuning component.Tuning) {
	_ = ecs.Remove(w, e, component.StunComponent.Kind())

	switch {
	case ecs.Has(w, e, component.PlayerFSMComponent.Kind()):
		t.Player.RequestForced(e, component.PlayerDyingState)
	case ecs.Has(w, e, component.CreatureFSMComponent.Kind()):
		t.Creature.RequestForced(e, component.CreatureDyingState)
	default:
		ecs.DestroyEntity(w, e)
		return
	}
	requestFeedback(w, e, tuning.KillFreezeDuration, tuning.KillShakeDuration, tuning.KillShakeIntensity)
}

// applyStun sets or refreshes the stun timer and requests the stunned state.
func applyStun(w *ecs.World, t *Transitions, e ecs.Entity, duration float64) bool {
	stun, ok := ecs.Get(w, e, component.StunComponent.Kind())
	if ok {
		if duration > stun.Remaining {
			stun.Remaining = duration
		}
	} else if err := ecs.Add(w, e, component.StunComponent.Kind(), &component.Stun{Remaining: duration}); err != nil {
		return false
	}

	switch {
	case ecs.Has(w, e, component.PlayerFSMComponent.Kind()):
		t.Player.Request(e, component.PlayerStunnedState)
	case ecs.Has(w, e, component.CreatureFSMComponent.Kind()):
		t.Creature.Request(e, component.CreatureStunnedState)
	}
	return true
}

// applyKnockback replaces any knockback in progress with velocity v.
func applyKnockback(w *ecs.World, e ecs.Entity, v cp.Vector, duration float64) bool {
	if duration <= 0 || !ecs.IsAlive(w, e) {
		return false
	}
	if ecs.Has(w, e, component.ProjectileComponent.Kind()) {
		return false
	}
	return ecs.Add(w, e, component.KnockbackComponent.Kind(), &component.Knockback{
		Initial:   v,
		Velocity:  v,
		Duration:  duration,
		Remaining: duration,
	}) == nil
}

// provoke turns a passive creature hostile: it switches to the pursuit
// steering profile and picks up fists if it carries nothing.
func provoke(w *ecs.World, e ecs.Entity) bool {
	host, ok := ecs.Get(w, e, component.HostilityComponent.Kind())
	if !ok || host.Hostile {
		return false
	}
	host.Hostile = true
	host.Activated = true
	if host.Pursuit != nil {
		host.Profile = host.Pursuit
	}
	if !ecs.Has(w, e, component.WeaponComponent.Kind()) {
		fists := component.FistsWeapon()
		_ = ecs.Add(w, e, component.WeaponComponent.Kind(), &fists)
	}
	if !ecs.Has(w, e, component.SwingComponent.Kind()) {
		_ = ecs.Add(w, e, component.SwingComponent.Kind(), &component.Swing{})
	}
	return true
}

func requestFeedback(w *ecs.World, e ecs.Entity, freeze, shake, intensity float64) {
	if !ecs.IsAlive(w, e) {
		return
	}
	if freeze > 0 {
		req, ok := ecs.Get(w, e, component.HitFreezeRequestComponent.Kind())
		if !ok {
			_ = ecs.Add(w, e, component.HitFreezeRequestComponent.Kind(), &component.HitFreezeRequest{Duration: freeze})
		} else if freeze > req.Duration {
			req.Duration = freeze
		}
	}
	if shake > 0 && intensity > 0 {
		req, ok := ecs.Get(w, e, component.CameraShakeRequestComponent.Kind())
		if !ok {
			_ = ecs.Add(w, e, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{Duration: shake, Intensity: intensity})
		} else {
			if shake > req.Duration {
				req.Duration = shake
			}
			if intensity > req.Intensity {
				req.Intensity = intensity
			}
		}
	}
}
