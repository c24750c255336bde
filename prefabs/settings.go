package prefabs

import "github.com/milk9111/arena/ecs/component"

const SettingsFile = "settings.yaml"

type SettingsSpec struct {
	PlayerSpeed   float64 `yaml:"player_speed"`
	DashSpeed     float64 `yaml:"dash_speed"`
	DashDuration  float64 `yaml:"dash_duration"`
	DyingDuration float64 `yaml:"dying_duration"`

	AttackHitDelayPercent float64 `yaml:"attack_hit_delay_percent"`
	BlockAngleThreshold   float64 `yaml:"block_angle_threshold"`
	FacingOffset          float64 `yaml:"facing_offset"`
	KnockbackDuration     float64 `yaml:"knockback_duration"`
	RiposteForce          float64 `yaml:"riposte_force"`

	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	ProjectileLifetime float64 `yaml:"projectile_lifetime"`
	ProjectileRadius   float64 `yaml:"projectile_radius"`

	MinDistanceFloor float64 `yaml:"min_distance_floor"`
	PatrolSpeedScale float64 `yaml:"patrol_speed_scale"`

	HitFreezeDuration  float64 `yaml:"hit_freeze_duration"`
	KillFreezeDuration float64 `yaml:"kill_freeze_duration"`
	HitShakeDuration   float64 `yaml:"hit_shake_duration"`
	HitShakeIntensity  float64 `yaml:"hit_shake_intensity"`
	KillShakeDuration  float64 `yaml:"kill_shake_duration"`
	KillShakeIntensity float64 `yaml:"kill_shake_intensity"`
}

func settingsSpecFrom(t component.Tuning) SettingsSpec {
	return SettingsSpec(t)
}

func (s SettingsSpec) Tuning() component.Tuning {
	return component.Tuning(s)
}

// LoadSettings reads settings.yaml over the built-in defaults.
func LoadSettings() (component.Tuning, error) {
	spec := settingsSpecFrom(component.DefaultTuning())
	if err := loadSpecInto(SettingsFile, &spec); err != nil {
		return component.DefaultTuning(), err
	}
	return spec.Tuning(), nil
}
