package sim

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"gopkg.in/yaml.v3"
)

// Snapshot is a plain summary of an arena tick, used for logs and the
// viewer's copy-to-clipboard.
type Snapshot struct {
	Tick        uint64          `yaml:"tick"`
	Elapsed     float64         `yaml:"elapsed"`
	Player      ActorSnapshot   `yaml:"player"`
	Creatures   []ActorSnapshot `yaml:"creatures"`
	Props       int             `yaml:"props"`
	Projectiles int             `yaml:"projectiles"`
}

type ActorSnapshot struct {
	Entity  string  `yaml:"entity"`
	Name    string  `yaml:"name,omitempty"`
	State   string  `yaml:"state"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Health  int     `yaml:"health"`
	Hostile bool    `yaml:"hostile,omitempty"`
	Stunned float64 `yaml:"stunned,omitempty"`
}

func (a *Arena) Snapshot() Snapshot {
	var snap Snapshot
	if a == nil {
		return snap
	}
	w := a.World
	if _, clock, ok := ecs.First(w, component.ClockComponent.Kind()); ok {
		snap.Tick = clock.Tick
		snap.Elapsed = clock.Elapsed
	}

	snap.Player = actorSnapshot(w, a.Player)
	if st, ok := a.PlayerState(); ok {
		snap.Player.State = st.String()
	}

	for _, e := range w.Query(component.CreatureTagComponent.Kind()) {
		actor := actorSnapshot(w, e)
		if m, ok := ecs.Get(w, e, component.CreatureFSMComponent.Kind()); ok {
			actor.State = m.Current.String()
		}
		if c, ok := ecs.Get(w, e, component.CreatureComponent.Kind()); ok {
			actor.Name = c.Name
		}
		if h, ok := ecs.Get(w, e, component.HostilityComponent.Kind()); ok {
			actor.Hostile = h.Hostile
		}
		snap.Creatures = append(snap.Creatures, actor)
	}
	snap.Props = len(w.Query(component.PropTagComponent.Kind()))
	snap.Projectiles = len(w.Query(component.ProjectileComponent.Kind()))
	return snap
}

func actorSnapshot(w *ecs.World, e ecs.Entity) ActorSnapshot {
	actor := ActorSnapshot{Entity: e.String()}
	if tf, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		actor.X = tf.Position.X
		actor.Y = tf.Position.Y
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		actor.Health = h.Current
	}
	if s, ok := ecs.Get(w, e, component.StunComponent.Kind()); ok {
		actor.Stunned = s.Remaining
	}
	return actor
}

// YAML renders the snapshot as a YAML document.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
