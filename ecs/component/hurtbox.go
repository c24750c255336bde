package component

import "github.com/milk9111/arena/geom"

// Hurtbox is the compound circle body attacks are tested against.
type Hurtbox struct {
	Collider geom.HitCollider
}

var HurtboxComponent = NewComponent[Hurtbox]()
