package prefabs

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/geom"
)

const (
	CreaturesFile = "creatures.yaml"
	PlayerFile    = "player.yaml"
	ArenaFile     = "arena.yaml"
)

type SteeringProfileSpec struct {
	Speed            float64 `yaml:"speed"`
	Flank            bool    `yaml:"flank"`
	FlankMin         float64 `yaml:"flank_min"`
	FlankMax         float64 `yaml:"flank_max"`
	SeekWeight       float64 `yaml:"seek_weight"`
	ObstacleWeight   float64 `yaml:"obstacle_weight"`
	ObstacleLook     float64 `yaml:"obstacle_lookahead"`
	SeparationRadius float64 `yaml:"separation_radius"`
	SeparationWeight float64 `yaml:"separation_weight"`
	OccupiedSpread   float64 `yaml:"occupied_spread"`
	OccupiedWeight   float64 `yaml:"occupied_weight"`
	ProximityWeight  float64 `yaml:"proximity_weight"`
	MinDistance      float64 `yaml:"min_distance"`
}

func (s SteeringProfileSpec) Profile(name string) *component.SteeringProfile {
	return &component.SteeringProfile{
		Name:             name,
		Speed:            s.Speed,
		Flank:            s.Flank,
		FlankMin:         s.FlankMin,
		FlankMax:         s.FlankMax,
		SeekWeight:       s.SeekWeight,
		ObstacleWeight:   s.ObstacleWeight,
		ObstacleLook:     s.ObstacleLook,
		SeparationRadius: s.SeparationRadius,
		SeparationWeight: s.SeparationWeight,
		OccupiedSpread:   s.OccupiedSpread,
		OccupiedWeight:   s.OccupiedWeight,
		ProximityWeight:  s.ProximityWeight,
		MinDistance:      s.MinDistance,
	}
}

type CreatureSpec struct {
	Name           string       `yaml:"name"`
	Health         int          `yaml:"health"`
	Weapon         string       `yaml:"weapon"`
	Hostile        bool         `yaml:"hostile"`
	SightRange     float64      `yaml:"sight_range"`
	ChaseRange     float64      `yaml:"chase_range"`
	AttackCooldown float64      `yaml:"attack_cooldown"`
	TetherRadius   float64      `yaml:"tether_radius"`
	IdleTime       float64      `yaml:"idle_time"`
	Profile        string       `yaml:"profile"`
	Script         string       `yaml:"script"`
	Color          YAMLColor    `yaml:"color"`
	Collider       ColliderSpec `yaml:"collider"`
}

type CreaturesSpec struct {
	PursuitProfile string                         `yaml:"pursuit_profile"`
	Profiles       map[string]SteeringProfileSpec `yaml:"profiles"`
	Creatures      []CreatureSpec                 `yaml:"creatures"`
}

type PlayerSpec struct {
	Health   int          `yaml:"health"`
	Weapon   string       `yaml:"weapon"`
	Thrown   string       `yaml:"thrown"`
	Color    YAMLColor    `yaml:"color"`
	Collider ColliderSpec `yaml:"collider"`
}

type SpawnSpec struct {
	Prefab string  `yaml:"prefab"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

type PropSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Health int     `yaml:"health"`
}

type ObstacleSpec struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	RX float64 `yaml:"rx"`
	RY float64 `yaml:"ry"`
}

type ArenaSpec struct {
	Width     float64        `yaml:"width"`
	Height    float64        `yaml:"height"`
	Player    PointSpec      `yaml:"player"`
	Creatures []SpawnSpec    `yaml:"creatures"`
	Props     []PropSpec     `yaml:"props"`
	Obstacles []ObstacleSpec `yaml:"obstacles"`
}

func (p PointSpec) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

func (s ColliderSpec) Collider() geom.HitCollider {
	circles := make([]geom.Circle, 0, len(s.Circles))
	for _, c := range s.Circles {
		circles = append(circles, geom.Circle{Offset: cp.Vector{X: c.X, Y: c.Y}, Radius: c.Radius})
	}
	return geom.NewHitCollider(circles...)
}

func (o ObstacleSpec) Ellipse() geom.Ellipse {
	return geom.Ellipse{Center: cp.Vector{X: o.X, Y: o.Y}, RX: o.RX, RY: o.RY}
}

// Catalog is every prefab the arena needs, resolved and cross-checked.
type Catalog struct {
	Settings  component.Tuning
	Weapons   map[string]component.Weapon
	Profiles  map[string]*component.SteeringProfile
	Pursuit   *component.SteeringProfile
	Creatures map[string]CreatureSpec
	Player    PlayerSpec
	Arena     ArenaSpec
}

// ThrownWeapon returns the player's thrown weapon, if one is configured.
func (c *Catalog) ThrownWeapon() (*component.Weapon, bool) {
	if c == nil || c.Player.Thrown == "" {
		return nil, false
	}
	w, ok := c.Weapons[c.Player.Thrown]
	if !ok {
		return nil, false
	}
	return &w, true
}

func LoadCatalog() (*Catalog, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}
	weapons, err := LoadWeapons()
	if err != nil {
		return nil, err
	}
	creatures, err := LoadSpec[CreaturesSpec](CreaturesFile)
	if err != nil {
		return nil, err
	}
	player, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	arena, err := LoadSpec[ArenaSpec](ArenaFile)
	if err != nil {
		return nil, err
	}

	cat := &Catalog{
		Settings:  settings,
		Weapons:   weapons,
		Profiles:  make(map[string]*component.SteeringProfile, len(creatures.Profiles)),
		Creatures: make(map[string]CreatureSpec, len(creatures.Creatures)),
		Player:    player,
		Arena:     arena,
	}
	for name, ps := range creatures.Profiles {
		cat.Profiles[name] = ps.Profile(name)
	}
	pursuit, ok := cat.Profiles[creatures.PursuitProfile]
	if !ok {
		return nil, fmt.Errorf("prefabs: %s: unknown pursuit profile %q", CreaturesFile, creatures.PursuitProfile)
	}
	cat.Pursuit = pursuit

	for _, cs := range creatures.Creatures {
		if _, ok := cat.Profiles[cs.Profile]; !ok {
			return nil, fmt.Errorf("prefabs: creature %q: unknown profile %q", cs.Name, cs.Profile)
		}
		if cs.Weapon != "" {
			if _, ok := weapons[cs.Weapon]; !ok {
				return nil, fmt.Errorf("prefabs: creature %q: unknown weapon %q", cs.Name, cs.Weapon)
			}
		}
		cat.Creatures[cs.Name] = cs
	}
	if player.Weapon != "" {
		if _, ok := weapons[player.Weapon]; !ok {
			return nil, fmt.Errorf("prefabs: player: unknown weapon %q", player.Weapon)
		}
	}
	if player.Thrown != "" {
		if _, ok := weapons[player.Thrown]; !ok {
			return nil, fmt.Errorf("prefabs: player: unknown thrown weapon %q", player.Thrown)
		}
	}
	for _, spawn := range arena.Creatures {
		if _, ok := cat.Creatures[spawn.Prefab]; !ok {
			return nil, fmt.Errorf("prefabs: %s: unknown creature %q", ArenaFile, spawn.Prefab)
		}
	}
	return cat, nil
}
