package component

import "github.com/jakecoffman/cp"

// Projectile is a thrown prop. Damage comes from the entity's Weapon.
type Projectile struct {
	Velocity  cp.Vector
	Radius    float64
	Remaining float64
}

var ProjectileComponent = NewComponent[Projectile]()
