package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
	"github.com/milk9111/arena/geom"
	"github.com/sirupsen/logrus"
)

const (
	inputDeadzone      = 0.1
	blockingSpeedScale = 0.5
)

// PlayerControllerSystem turns decoded input into transition requests and
// performs the movement of the moving and dashing states.
type PlayerControllerSystem struct {
	transitions *Transitions

	// Thrown is the weapon used for thrown props. Nil disables throwing.
	Thrown *component.Weapon
}

func NewPlayerControllerSystem(t *Transitions) *PlayerControllerSystem {
	return &PlayerControllerSystem{transitions: t}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || p.transitions == nil || w == nil {
		return
	}
	dt := tickDT(w)
	tuning := currentTuning(w)

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.PlayerFSMComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, e := range entities {
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		m, _ := ecs.Get(w, e, component.PlayerFSMComponent.Kind())
		tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		state := m.Current

		if state.Kind != component.PlayerAttacking && input.Aim.Length() > inputDeadzone {
			tf.Rotation = input.Aim.ToAngle()
		}

		neutral := state.Kind == component.PlayerIdle || state.Kind == component.PlayerMoving
		if neutral && input.Block {
			_ = ecs.Add(w, e, component.GuardComponent.Kind(), &component.Guard{})
		} else {
			_ = ecs.Remove(w, e, component.GuardComponent.Kind())
		}

		moving := input.Move.Length() > inputDeadzone
		switch state.Kind {
		case component.PlayerIdle, component.PlayerMoving:
			switch {
			case input.Attack && ecs.Has(w, e, component.WeaponComponent.Kind()):
				p.transitions.Player.Request(e, component.PlayerAttackingState(component.PhaseWindUp))
			case input.Dash && moving:
				_ = ecs.Add(w, e, component.DashComponent.Kind(), &component.Dash{Direction: geom.UnitOr(input.Move, cp.Vector{X: 1})})
				p.transitions.Player.Request(e, component.PlayerDashingState)
			case moving:
				if state.Kind == component.PlayerIdle {
					p.transitions.Player.Request(e, component.PlayerMovingState)
					break
				}
				speed := tuning.PlayerSpeed
				if ecs.Has(w, e, component.GuardComponent.Kind()) {
					speed *= blockingSpeedScale
				}
				tf.Position = tf.Position.Add(geom.UnitOr(input.Move, cp.Vector{}).Mult(speed * dt))
			case state.Kind == component.PlayerMoving:
				p.transitions.Player.Request(e, component.PlayerIdleState)
			}
			if input.Throw {
				p.throw(w, e, tf, tuning)
			}
		case component.PlayerDashing:
			dir := cp.Vector{X: 1}
			if dash, ok := ecs.Get(w, e, component.DashComponent.Kind()); ok {
				dir = dash.Direction
			}
			tf.Position = tf.Position.Add(dir.Mult(tuning.DashSpeed * dt))
			if m.TimeInState+dt >= tuning.DashDuration {
				p.transitions.Player.Request(e, component.PlayerMovingState)
			}
		}

		// Edge-triggered intents are consumed once seen.
		input.Throw = false
		input.Dash = false
	}
}

func (p *PlayerControllerSystem) throw(w *ecs.World, e ecs.Entity, tf *component.Transform, tuning component.Tuning) {
	if p.Thrown == nil {
		return
	}
	dir := cp.ForAngle(tf.Rotation)
	if _, err := entity.NewProjectile(w, tf.Position, dir, *p.Thrown, tuning); err != nil {
		logrus.WithError(err).WithField("entity", e).Warn("throw failed")
	}
}
