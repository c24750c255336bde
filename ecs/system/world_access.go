package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/geom"
)

// tickDT returns the duration of the tick being simulated.
func tickDT(w *ecs.World) float64 {
	_, clock, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok || clock == nil || clock.DT < 0 {
		return 0
	}
	return clock.DT
}

// currentTuning copies the settings singleton so one tick sees one value.
func currentTuning(w *ecs.World) component.Tuning {
	_, t, ok := ecs.First(w, component.TuningComponent.Kind())
	if !ok || t == nil {
		return component.DefaultTuning()
	}
	return *t
}

// playerView is the frozen per-tick view of the player other systems read.
type playerView struct {
	entity   ecs.Entity
	position cp.Vector
	state    component.PlayerState
	collider *geom.HitCollider
	ok       bool
}

func (p playerView) alive() bool {
	return p.ok && p.state.Kind != component.PlayerDying && p.state.Kind != component.PlayerDead
}

func findPlayer(w *ecs.World) playerView {
	e, _, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return playerView{}
	}
	tf, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return playerView{}
	}
	view := playerView{entity: e, position: tf.Position, ok: true}
	if m, ok := ecs.Get(w, e, component.PlayerFSMComponent.Kind()); ok {
		view.state = m.Current
	}
	if hb, ok := ecs.Get(w, e, component.HurtboxComponent.Kind()); ok {
		view.collider = &hb.Collider
	}
	return view
}

func creatureState(w *ecs.World, e ecs.Entity) (component.CreatureState, bool) {
	m, ok := ecs.Get(w, e, component.CreatureFSMComponent.Kind())
	if !ok {
		return component.CreatureState{}, false
	}
	return m.Current, true
}

func creatureDown(s component.CreatureState) bool {
	return s.Kind == component.CreatureDying || s.Kind == component.CreatureDead
}
