package system

import (
	"fmt"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/milk9111/maskbound/ecs/entity"
)

// Shoot fires the shooter's active weapon along its facing. The shot hits
// the side opposite to the shooter's current faction, so a possessed body
// fires at hostiles.
func Shoot(w *ecs.World, shooter ecs.Entity) (ecs.Entity, error) {
	enemy, ok := ecs.Get(w, shooter, component.EnemyComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("shoot: %v has no enemy component", shooter)
	}
	t, ok := ecs.Get(w, shooter, component.TransformComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("shoot: %v has no transform", shooter)
	}

	fx, fy := t.Forward()
	return entity.NewProjectile(w, entity.ProjectileParams{
		X:             t.X,
		Y:             t.Y,
		DirX:          fx,
		DirY:          fy,
		Weapon:        enemy.ActiveWeapon(),
		TargetFaction: enemy.Faction.Opposite(),
		Owner:         shooter,
	})
}
