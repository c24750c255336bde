package component

import "github.com/jakecoffman/cp"

// ArenaBounds is the singleton play area. Movers are clamped inside it.
type ArenaBounds struct {
	Box cp.BB
}

var ArenaBoundsComponent = NewComponent[ArenaBounds]()
