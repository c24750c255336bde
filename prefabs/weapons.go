package prefabs

import (
	"fmt"
	"strings"

	"github.com/milk9111/arena/ecs/component"
)

const WeaponsFile = "weapons.yaml"

type EffectSpec struct {
	Kind  string  `yaml:"kind"`
	Value float64 `yaml:"value"`
}

type WeaponSpec struct {
	Name               string       `yaml:"name"`
	Damage             int          `yaml:"damage"`
	SpeedTier          int          `yaml:"speed_tier"`
	ReachTier          int          `yaml:"reach_tier"`
	ArcTier            int          `yaml:"arc_tier"`
	BlockTier          int          `yaml:"block_tier"`
	BlockKnockbackTier int          `yaml:"block_knockback_tier"`
	AttackType         string       `yaml:"attack_type"`
	Effects            []EffectSpec `yaml:"effects"`
	Riposte            bool         `yaml:"riposte"`
}

type WeaponsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

func (s WeaponSpec) Weapon() (component.Weapon, error) {
	w := component.Weapon{
		Name:               s.Name,
		Damage:             s.Damage,
		SpeedTier:          s.SpeedTier,
		ReachTier:          s.ReachTier,
		ArcTier:            s.ArcTier,
		BlockTier:          s.BlockTier,
		BlockKnockbackTier: s.BlockKnockbackTier,
		AttackType:         component.AttackType(strings.ToLower(s.AttackType)),
		Riposte:            s.Riposte,
	}
	if w.AttackType == "" {
		w.AttackType = component.AttackSlash
	}
	for _, eff := range s.Effects {
		kind := component.EffectKind(strings.ToLower(strings.TrimSpace(eff.Kind)))
		switch kind {
		case component.EffectStun, component.EffectKnockback:
		default:
			return component.Weapon{}, fmt.Errorf("prefabs: weapon %q: unknown effect %q", s.Name, eff.Kind)
		}
		w.Effects = append(w.Effects, component.Effect{Kind: kind, Value: eff.Value})
	}
	return w, nil
}

// LoadWeapons returns every weapon in weapons.yaml keyed by name.
func LoadWeapons() (map[string]component.Weapon, error) {
	spec, err := LoadSpec[WeaponsSpec](WeaponsFile)
	if err != nil {
		return nil, err
	}
	out := make(map[string]component.Weapon, len(spec.Weapons))
	for _, ws := range spec.Weapons {
		if ws.Name == "" {
			return nil, fmt.Errorf("prefabs: %s: weapon without name", WeaponsFile)
		}
		w, err := ws.Weapon()
		if err != nil {
			return nil, err
		}
		out[ws.Name] = w
	}
	return out, nil
}
