package entity

import (
	"fmt"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
)

// NewCamera spawns the camera following target, plus the stability bar
// that the HUD fills while a host is possessed.
func NewCamera(w *ecs.World, target ecs.Entity, zoom float64) (ecs.Entity, error) {
	return spawn(w, func(camera ecs.Entity) error {
		if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
			return fmt.Errorf("camera: add camera tag: %w", err)
		}

		x, y := 0.0, 0.0
		if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
			x, y = t.X, t.Y
		}
		if zoom <= 0 {
			zoom = 1
		}

		if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
			Target:     uint64(target),
			X:          x,
			Y:          y,
			Zoom:       zoom,
			Smoothness: 0.15,
		}); err != nil {
			return fmt.Errorf("camera: add camera: %w", err)
		}

		if err := ecs.Add(w, camera, component.StabilityBarComponent.Kind(), &component.StabilityBar{}); err != nil {
			return fmt.Errorf("camera: add stability bar: %w", err)
		}
		return nil
	})
}
