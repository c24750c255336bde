package component

// CameraShakeRequest asks the presentation layer for a short shake.
// Intensity is measured in world units.
type CameraShakeRequest struct {
	Duration  float64
	Intensity float64
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]()
