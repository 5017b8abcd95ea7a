package system

import (
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
)

// AnimationSystem advances attack clips and clears last frame's triggers.
// It runs first so triggers fired this frame stay visible to the renderer.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(_ ecs.Entity, a *component.Animator) {
		a.Advance(dt)
	})
}
