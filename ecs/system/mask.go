package system

import (
	"github.com/milk9111/maskbound/common"
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
)

// MaskControlSystem moves the free mask from input and settles its eject
// hop under gravity. While a host is held the mask rides along with it.
type MaskControlSystem struct {
	arbiter *Arbiter
}

func NewMaskControlSystem(arbiter *Arbiter) (*MaskControlSystem, error) {
	if arbiter == nil {
		return nil, ErrNoMask
	}
	return &MaskControlSystem{arbiter: arbiter}, nil
}

func (s *MaskControlSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	e := s.arbiter.Mask()
	mask, ok := ecs.Get(w, e, component.MaskComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if !mask.Active {
		if ht, ok := ecs.Get(w, s.arbiter.Host(), component.TransformComponent.Kind()); ok {
			t.X, t.Y, t.Z = ht.X, ht.Y, 0
			t.Facing = ht.Facing
		}
		return
	}

	dt := w.DeltaTime()
	if t.Z > 0 || mask.VZ != 0 {
		t.Z += mask.VZ * dt
		mask.VZ -= mask.Gravity * dt
		if t.Z <= 0 {
			t.Z = 0
			mask.VZ = 0
		}
	}

	if !mask.ControlEnabled {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	nx, ny, length := common.Normalize(input.MoveX, input.MoveY)
	if length < moveDeadZone {
		return
	}
	t.X += nx * mask.MoveSpeed * dt
	t.Y += ny * mask.MoveSpeed * dt
	t.Facing = common.Heading(nx, ny)
}
