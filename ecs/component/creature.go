package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/steering"
)

// Creature holds the per-archetype AI numbers of a creature.
type Creature struct {
	Name           string
	SightRange     float64
	ChaseRange     float64
	AttackCooldown float64
	Home           cp.Vector
	TetherRadius   float64
	IdleTime       float64
}

var CreatureComponent = NewComponent[Creature]()

// SteeringProfile configures context-map movement. Profiles are shared
// between creatures of an archetype, so provocation swaps the pointer rather
// than editing the value.
type SteeringProfile struct {
	Name             string
	Speed            float64
	Flank            bool
	FlankMin         float64
	FlankMax         float64
	SeekWeight       float64
	ObstacleWeight   float64
	ObstacleLook     float64
	SeparationRadius float64
	SeparationWeight float64
	OccupiedSpread   float64
	OccupiedWeight   float64
	ProximityWeight  float64
	MinDistance      float64
}

// Hostility tracks whether a creature hunts the player. Activated is the
// sight/chase hysteresis latch.
type Hostility struct {
	Hostile   bool
	Activated bool
	Profile   *SteeringProfile
	Pursuit   *SteeringProfile
}

var HostilityComponent = NewComponent[Hostility]()

// SteeringState is per-creature steering memory.
type SteeringState struct {
	FlankOffset float64
	Waypoint    cp.Vector
	HasWaypoint bool
}

var SteeringStateComponent = NewComponent[SteeringState]()

// SteeringDebug caches the last resolved context map for display only.
type SteeringDebug struct {
	Map       steering.ContextMap
	Direction cp.Vector
	Strength  float64
	Index     int
}

var SteeringDebugComponent = NewComponent[SteeringDebug]()

// Script attaches a tengo behaviour script to a creature.
type Script struct {
	Path string
}

var ScriptComponent = NewComponent[Script]()
