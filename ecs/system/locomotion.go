package system

import (
	"github.com/milk9111/maskbound/common"
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
)

// LocomotionSystem moves every NavAgent toward its destination and turns
// the body to face the way it walks.
type LocomotionSystem struct{}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	for _, e := range w.Query(component.NavAgentComponent.Kind(), component.TransformComponent.Kind()) {
		nav, _ := ecs.Get(w, e, component.NavAgentComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		dx, dy, moving := nav.Step(t.X, t.Y, dt)
		if !moving {
			continue
		}
		t.X += dx
		t.Y += dy
		t.Facing = common.Heading(dx, dy)
	}
}
