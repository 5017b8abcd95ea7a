package entity

import (
	"fmt"

	"github.com/milk9111/maskbound/common"
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"golang.org/x/image/colornames"
)

type ProjectileParams struct {
	X, Y          float64
	DirX, DirY    float64
	Weapon        component.Weapon
	TargetFaction component.Faction
	Owner         ecs.Entity
}

// NewProjectile spawns a shot Muzzle units ahead of (X, Y) along the
// direction. The direction is normalized; a zero direction is rejected.
func NewProjectile(w *ecs.World, p ProjectileParams) (ecs.Entity, error) {
	dx, dy, length := common.Normalize(p.DirX, p.DirY)
	if length == 0 {
		return 0, fmt.Errorf("projectile: zero direction")
	}

	e, err := spawn(w, func(e ecs.Entity) error {
		if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
			Speed:         p.Weapon.Speed,
			Damage:        p.Weapon.Damage,
			TargetFaction: p.TargetFaction,
			DirX:          dx,
			DirY:          dy,
			Owner:         uint64(p.Owner),
		}); err != nil {
			return fmt.Errorf("projectile: add projectile: %w", err)
		}

		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
			X:      p.X + dx*p.Weapon.Muzzle,
			Y:      p.Y + dy*p.Weapon.Muzzle,
			Facing: common.Heading(dx, dy),
		}); err != nil {
			return fmt.Errorf("projectile: add transform: %w", err)
		}

		if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: p.Weapon.Lifetime}); err != nil {
			return fmt.Errorf("projectile: add ttl: %w", err)
		}

		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Kind:   component.BodyProjectile,
			Radius: p.Weapon.Radius,
		}); err != nil {
			return fmt.Errorf("projectile: add physics body: %w", err)
		}

		if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
			Category: component.CategoryProjectile,
			Mask:     component.CategoryActor | component.CategoryWall,
		}); err != nil {
			return fmt.Errorf("projectile: add collision layer: %w", err)
		}

		tint := colornames.Orange
		if p.TargetFaction == component.FactionHostile {
			tint = colornames.Cyan
		}
		if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
			Color:  tint,
			Radius: p.Weapon.Radius,
		}); err != nil {
			return fmt.Errorf("projectile: add appearance: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventProjectile, Entity: e, Data: p.Owner})

	return e, nil
}
