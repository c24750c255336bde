package component

// HitFreezeRequest requests a short global gameplay freeze in seconds.
// Systems emit this data-only component and the outer game loop applies it.
type HitFreezeRequest struct {
	Duration float64
}

var HitFreezeRequestComponent = NewComponent[HitFreezeRequest]()
