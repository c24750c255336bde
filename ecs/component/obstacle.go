package component

import "github.com/milk9111/arena/geom"

// Obstacle is static elliptical scenery that movers are pushed out of.
type Obstacle struct {
	Shape geom.Ellipse
}

var ObstacleComponent = NewComponent[Obstacle]()
