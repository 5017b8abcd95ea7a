package entity

import "github.com/milk9111/maskbound/ecs"

// spawn creates an entity and lets fill attach its components. A failed fill
// destroys the partial entity, so the world never keeps half-built bodies.
func spawn(w *ecs.World, fill func(e ecs.Entity) error) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := fill(e); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
