package component

import "github.com/jakecoffman/cp"

// Input is decoded player intent. Move and Aim are world-space directions;
// Move may be zero.
type Input struct {
	Move   cp.Vector
	Aim    cp.Vector
	Attack bool
	Dash   bool
	Block  bool
	Throw  bool
}

var InputComponent = NewComponent[Input]()

// Guard is present while the player is holding block.
type Guard struct{}

var GuardComponent = NewComponent[Guard]()

// Dash stores the locked direction of an in-progress dash.
type Dash struct {
	Direction cp.Vector
}

var DashComponent = NewComponent[Dash]()
