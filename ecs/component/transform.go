package component

import "github.com/jakecoffman/cp"

// Transform is the world position of an actor. Rotation is the weapon/aim
// orientation in radians and doubles as the facing used by block checks.
type Transform struct {
	Position cp.Vector
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
