package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// HitFreezeSystem drains freeze requests and reports the longest one.
type HitFreezeSystem struct {
	onFreeze func(seconds float64)
}

func NewHitFreezeSystem(onFreeze func(seconds float64)) *HitFreezeSystem {
	return &HitFreezeSystem{onFreeze: onFreeze}
}

func (s *HitFreezeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	longest := 0.0
	ecs.ForEach(w, component.HitFreezeRequestComponent.Kind(), func(e ecs.Entity, req *component.HitFreezeRequest) {
		if req.Duration > longest {
			longest = req.Duration
		}
		_ = ecs.Remove(w, e, component.HitFreezeRequestComponent.Kind())
	})

	if longest > 0 && s.onFreeze != nil {
		s.onFreeze(longest)
	}
}

// CameraShakeSystem drains shake requests into a single strongest shake.
type CameraShakeSystem struct {
	onShake func(seconds, intensity float64)
}

func NewCameraShakeSystem(onShake func(seconds, intensity float64)) *CameraShakeSystem {
	return &CameraShakeSystem{onShake: onShake}
}

func (s *CameraShakeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var duration, intensity float64
	ecs.ForEach(w, component.CameraShakeRequestComponent.Kind(), func(e ecs.Entity, req *component.CameraShakeRequest) {
		if req.Duration > duration {
			duration = req.Duration
		}
		if req.Intensity > intensity {
			intensity = req.Intensity
		}
		_ = ecs.Remove(w, e, component.CameraShakeRequestComponent.Kind())
	})

	if duration > 0 && s.onShake != nil {
		s.onShake(duration, intensity)
	}
}
