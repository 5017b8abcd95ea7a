package system

import (
	"github.com/milk9111/maskbound/common"
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
)

// CameraSystem eases the camera toward whichever entity holds focus.
type CameraSystem struct {
	focus ecs.Entity
}

func NewCameraSystem(arbiter *Arbiter) (*CameraSystem, error) {
	if arbiter == nil {
		return nil, ErrNoMask
	}
	s := &CameraSystem{focus: arbiter.Focus()}
	arbiter.OnFocusChanged(func(focus ecs.Entity) {
		s.focus = focus
	})
	return s, nil
}

func (s *CameraSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.Target = uint64(s.focus)
		t, ok := ecs.Get(w, s.focus, component.TransformComponent.Kind())
		if !ok {
			return
		}
		smooth := common.Clamp(cam.Smoothness, 0, 1)
		if smooth == 0 {
			smooth = 1
		}
		cam.X = common.Lerp(cam.X, t.X, smooth)
		cam.Y = common.Lerp(cam.Y, t.Y, smooth)
	})
}

// StabilityBarSystem shows the host's stability while a possession lasts.
type StabilityBarSystem struct {
	arbiter *Arbiter
	host    ecs.Entity
}

func NewStabilityBarSystem(arbiter *Arbiter) (*StabilityBarSystem, error) {
	if arbiter == nil {
		return nil, ErrNoMask
	}
	s := &StabilityBarSystem{arbiter: arbiter}
	arbiter.OnFocusChanged(func(focus ecs.Entity) {
		if focus == arbiter.Mask() {
			s.host = 0
			return
		}
		s.host = focus
	})
	return s, nil
}

func (s *StabilityBarSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	p, hasHost := ecs.Get(w, s.host, component.PossessableComponent.Kind())
	ecs.ForEach(w, component.StabilityBarComponent.Kind(), func(_ ecs.Entity, bar *component.StabilityBar) {
		if !hasHost {
			*bar = component.StabilityBar{}
			return
		}
		bar.Visible = true
		bar.Host = uint64(s.host)
		bar.Value = max(p.Stability.Current, 0)
		bar.Max = p.Stability.Max
	})
}
