package system

import (
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
)

// ProjectileSystem flies every live projectile along its direction.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	for _, e := range w.Query(component.ProjectileComponent.Kind(), component.TransformComponent.Kind()) {
		p, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
		if p.Spent {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		t.X += p.DirX * p.Speed * dt
		t.Y += p.DirY * p.Speed * dt
	}
}
