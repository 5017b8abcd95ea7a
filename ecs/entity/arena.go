package entity

import (
	"fmt"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/prefabs"
)

// BuildArena spawns walls, the mask, every enemy and the camera. It returns
// the mask entity.
func BuildArena(w *ecs.World, tuning *prefabs.TuningSpec, arena *prefabs.ArenaSpec) (ecs.Entity, error) {
	for i, spec := range arena.Walls {
		if _, err := NewWall(w, spec); err != nil {
			return 0, fmt.Errorf("arena: wall %d: %w", i, err)
		}
	}

	mask, err := NewMask(w, tuning.Mask, arena.Mask.X, arena.Mask.Y)
	if err != nil {
		return 0, fmt.Errorf("arena: %w", err)
	}

	for i, entry := range arena.Enemies {
		if _, err := NewEnemyFromSpec(w, tuning, entry); err != nil {
			return 0, fmt.Errorf("arena: enemy %d (%s): %w", i, entry.Archetype, err)
		}
	}

	if _, err := NewCamera(w, mask, 1); err != nil {
		return 0, fmt.Errorf("arena: %w", err)
	}

	return mask, nil
}
