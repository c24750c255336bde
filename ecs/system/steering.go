package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/steering"
)

// SteeringSystem moves chasing creatures with a context map built from the
// positions at the start of the pass, so iteration order never changes the
// outcome.
type SteeringSystem struct{}

func NewSteeringSystem() *SteeringSystem {
	return &SteeringSystem{}
}

type steerer struct {
	entity     ecs.Entity
	position   cp.Vector
	approacher bool
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := tickDT(w)
	tuning := currentTuning(w)
	player := findPlayer(w)
	if !player.alive() {
		return
	}

	var obstacles []steering.Obstacle
	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		obstacles = append(obstacles, steering.Obstacle{Center: o.Shape.Center, Radius: o.Shape.Radius()})
	})

	var snapshot []steerer
	for _, e := range w.Query(component.CreatureTagComponent.Kind(), component.TransformComponent.Kind()) {
		st, ok := creatureState(w, e)
		if !ok || creatureDown(st) {
			continue
		}
		tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		snapshot = append(snapshot, steerer{
			entity:     e,
			position:   tf.Position,
			approacher: st.Kind == component.CreatureChase || st.Kind == component.CreatureAttack,
		})
	}

	minFloor := tuning.MinDistanceFloor
	var playerOffset, playerRadius float64
	if player.collider != nil {
		playerOffset = player.collider.MaxOffset()
		playerRadius = player.collider.MaxRadius()
	}

	for i, self := range snapshot {
		st, _ := creatureState(w, self.entity)
		if st.Kind != component.CreatureChase {
			continue
		}
		hostility, ok := ecs.Get(w, self.entity, component.HostilityComponent.Kind())
		if !ok || !hostility.Hostile || !hostility.Activated || hostility.Profile == nil {
			continue
		}
		profile := hostility.Profile

		var others, approachers []cp.Vector
		for j, o := range snapshot {
			if j == i {
				continue
			}
			others = append(others, o.position)
			if o.approacher {
				approachers = append(approachers, o.position)
			}
		}

		var m steering.ContextMap
		flank := 0.0
		if state, ok := ecs.Get(w, self.entity, component.SteeringStateComponent.Kind()); ok && profile.Flank {
			flank = state.FlankOffset
		}
		if flank != 0 {
			steering.FlankSeek(&m, self.position, player.position, flank, profile.SeekWeight)
		} else {
			steering.Seek(&m, self.position, player.position, profile.SeekWeight)
		}
		steering.ObstacleDanger(&m, self.position, obstacles, profile.ObstacleLook, profile.ObstacleWeight)
		steering.SeparationDanger(&m, self.position, others, profile.SeparationRadius, profile.SeparationWeight)
		steering.OccupiedAngleDanger(&m, self.position, player.position, approachers, profile.OccupiedSpread, profile.OccupiedWeight)
		steering.ProximityDanger(&m, self.position, player.position, profile.MinDistance, profile.ProximityWeight)

		dir, strength, index := steering.Resolve(&m)
		recordSteering(w, self.entity, m, dir, strength, index)

		effectiveMin := math.Max(profile.MinDistance-playerOffset-playerRadius, minFloor)
		if self.position.Distance(player.position) <= effectiveMin {
			continue
		}
		tf, _ := ecs.Get(w, self.entity, component.TransformComponent.Kind())
		tf.Position = tf.Position.Add(dir.Mult(profile.Speed * strength * dt))
	}
}

func recordSteering(w *ecs.World, e ecs.Entity, m steering.ContextMap, dir cp.Vector, strength float64, index int) {
	debug := &component.SteeringDebug{Map: m, Direction: dir, Strength: strength, Index: index}
	_ = ecs.Add(w, e, component.SteeringDebugComponent.Kind(), debug)
}
