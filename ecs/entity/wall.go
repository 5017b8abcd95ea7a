package entity

import (
	"fmt"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/milk9111/maskbound/prefabs"
)

func NewWall(w *ecs.World, spec prefabs.WallSpec) (ecs.Entity, error) {
	return spawn(w, func(e ecs.Entity) error {
		if err := ecs.Add(w, e, component.WallComponent.Kind(), &component.Wall{
			X1:        spec.From.X,
			Y1:        spec.From.Y,
			X2:        spec.To.X,
			Y2:        spec.To.Y,
			Thickness: spec.Thickness,
		}); err != nil {
			return fmt.Errorf("wall: add wall: %w", err)
		}

		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Kind:   component.BodyWall,
			Radius: spec.Thickness / 2,
		}); err != nil {
			return fmt.Errorf("wall: add physics body: %w", err)
		}

		if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
			Category: component.CategoryWall,
			Mask:     component.CategoryActor | component.CategoryProjectile,
		}); err != nil {
			return fmt.Errorf("wall: add collision layer: %w", err)
		}
		return nil
	})
}
