package entity

import (
	"fmt"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/milk9111/maskbound/prefabs"
	"golang.org/x/image/colornames"
)

// NewMask spawns the player's mask. It also carries the frame's input
// intents, which every controlled body reads.
func NewMask(w *ecs.World, spec prefabs.MaskSpec, x, y float64) (ecs.Entity, error) {
	return spawn(w, func(mask ecs.Entity) error {
		if err := ecs.Add(w, mask, component.MaskTagComponent.Kind(), &component.MaskTag{}); err != nil {
			return fmt.Errorf("mask: add mask tag: %w", err)
		}

		if err := ecs.Add(w, mask, component.MaskComponent.Kind(), &component.Mask{
			Active:           true,
			ControlEnabled:   true,
			MoveSpeed:        spec.MoveSpeed,
			InteractionRange: spec.InteractionRange,
			EjectOffset:      spec.EjectOffset,
			EjectImpulse:     spec.EjectImpulse,
			Gravity:          spec.Gravity,
		}); err != nil {
			return fmt.Errorf("mask: add mask: %w", err)
		}

		if err := ecs.Add(w, mask, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
			return fmt.Errorf("mask: add transform: %w", err)
		}

		if err := ecs.Add(w, mask, component.InputComponent.Kind(), &component.Input{}); err != nil {
			return fmt.Errorf("mask: add input: %w", err)
		}

		if err := ecs.Add(w, mask, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Kind:   component.BodyActor,
			Radius: spec.Radius,
		}); err != nil {
			return fmt.Errorf("mask: add physics body: %w", err)
		}

		if err := ecs.Add(w, mask, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
			Category: component.CategoryActor,
			Mask:     component.CategoryProjectile | component.CategoryWall,
		}); err != nil {
			return fmt.Errorf("mask: add collision layer: %w", err)
		}

		if err := ecs.Add(w, mask, component.AppearanceComponent.Kind(), &component.Appearance{
			Color:  spec.Color.ColorOr(colornames.Antiquewhite),
			Radius: spec.Radius,
		}); err != nil {
			return fmt.Errorf("mask: add appearance: %w", err)
		}
		return nil
	})
}
