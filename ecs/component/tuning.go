package component

// Tuning is the flat gameplay settings singleton. Systems read it once per
// tick and never write it.
type Tuning struct {
	PlayerSpeed   float64
	DashSpeed     float64
	DashDuration  float64
	DyingDuration float64

	AttackHitDelayPercent float64
	BlockAngleThreshold   float64
	FacingOffset          float64
	KnockbackDuration     float64
	RiposteForce          float64

	ProjectileSpeed    float64
	ProjectileLifetime float64
	ProjectileRadius   float64

	MinDistanceFloor float64
	PatrolSpeedScale float64

	HitFreezeDuration  float64
	KillFreezeDuration float64
	HitShakeDuration   float64
	HitShakeIntensity  float64
	KillShakeDuration  float64
	KillShakeIntensity float64
}

// DefaultTuning mirrors prefabs/settings.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:           160,
		DashSpeed:             420,
		DashDuration:          0.18,
		DyingDuration:         0.6,
		AttackHitDelayPercent: 0.5,
		BlockAngleThreshold:   0.5,
		KnockbackDuration:     0.15,
		RiposteForce:          180,
		ProjectileSpeed:       320,
		ProjectileLifetime:    1.2,
		ProjectileRadius:      6,
		MinDistanceFloor:      4,
		PatrolSpeedScale:      0.4,
		HitFreezeDuration:     0.05,
		KillFreezeDuration:    0.12,
		HitShakeDuration:      0.1,
		HitShakeIntensity:     3,
		KillShakeDuration:     0.25,
		KillShakeIntensity:    6,
	}
}

var TuningComponent = NewComponent[Tuning]()
