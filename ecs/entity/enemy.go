package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/milk9111/maskbound/prefabs"
	"golang.org/x/image/colornames"
)

// ErrNoLocomotion is returned for enemies that would have no way to move.
var ErrNoLocomotion = errors.New("enemy: no locomotion")

const (
	// Tank bodies are slow and hold a possession far longer.
	TankDecayRate = 0.5
	TankSpeed     = 2.0
)

// Placement is a spawn position and heading.
type Placement struct {
	X      float64
	Y      float64
	Facing float64
}

// NewPossessableEnemy spawns an enemy the mask can take over. The variant
// picks the possessed movement and, for tanks, overrides decay and speed.
func NewPossessableEnemy(w *ecs.World, arch prefabs.ArchetypeSpec, stab prefabs.StabilitySpec, at Placement) (ecs.Entity, error) {
	movement := component.MovementDirect
	navSpeed := arch.NavSpeed
	possessedSpeed := arch.PossessedSpeed
	decayRate := arch.DecayRate

	switch arch.Variant {
	case "", "standard":
	case "resistant":
		movement = component.MovementResistant
	case "tank":
		navSpeed = TankSpeed
		possessedSpeed = TankSpeed
		decayRate = TankDecayRate
	default:
		return 0, fmt.Errorf("enemy: unknown variant %q", arch.Variant)
	}
	if navSpeed <= 0 {
		return 0, ErrNoLocomotion
	}
	if possessedSpeed <= 0 {
		possessedSpeed = navSpeed
	}

	stability := component.NewStability(arch.MaxStability, decayRate)
	if stab.Floor > 0 {
		stability.Floor = stab.Floor
	}
	if stab.Threshold > 0 {
		stability.Threshold = stab.Threshold
	}

	return spawn(w, func(e ecs.Entity) error {
		if err := addEnemyBody(w, e, arch, navSpeed, at); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.PossessableComponent.Kind(), &component.Possessable{
			Stability: stability,
			Movement:  movement,
			MoveSpeed: possessedSpeed,
		}); err != nil {
			return fmt.Errorf("enemy: add possessable: %w", err)
		}
		return nil
	})
}

// NewUnpossessableEnemy spawns an enemy with a plain health pool.
func NewUnpossessableEnemy(w *ecs.World, arch prefabs.ArchetypeSpec, at Placement) (ecs.Entity, error) {
	if arch.NavSpeed <= 0 {
		return 0, ErrNoLocomotion
	}

	return spawn(w, func(e ecs.Entity) error {
		if err := addEnemyBody(w, e, arch, arch.NavSpeed, at); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{
			Current: arch.Health,
			Max:     arch.Health,
		}); err != nil {
			return fmt.Errorf("enemy: add health: %w", err)
		}
		return nil
	})
}

// NewEnemyFromSpec spawns the archetype named by the spawn entry.
func NewEnemyFromSpec(w *ecs.World, tuning *prefabs.TuningSpec, entry prefabs.SpawnSpec) (ecs.Entity, error) {
	arch, ok := tuning.Archetypes[entry.Archetype]
	if !ok {
		return 0, fmt.Errorf("enemy: unknown archetype %q", entry.Archetype)
	}
	at := Placement{X: entry.X, Y: entry.Y, Facing: entry.Facing}
	if arch.Possessable {
		return NewPossessableEnemy(w, arch, tuning.Stability, at)
	}
	return NewUnpossessableEnemy(w, arch, at)
}

func addEnemyBody(w *ecs.World, e ecs.Entity, arch prefabs.ArchetypeSpec, navSpeed float64, at Placement) error {
	if err := ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return fmt.Errorf("enemy: add enemy tag: %w", err)
	}

	enemy := component.NewEnemy(arch.DetectionRadius, arch.AttackRange, arch.AttackCooldown)
	enemy.Weapon = weaponFromSpec(arch.Weapon)
	enemy.PossessedWeapon = weaponFromSpec(arch.PossessedWeapon)
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &enemy); err != nil {
		return fmt.Errorf("enemy: add enemy component: %w", err)
	}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      at.X,
		Y:      at.Y,
		Facing: at.Facing,
	}); err != nil {
		return fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.NavAgentComponent.Kind(), &component.NavAgent{
		Speed:            navSpeed,
		StoppingDistance: arch.StoppingDist,
	}); err != nil {
		return fmt.Errorf("enemy: add nav agent: %w", err)
	}

	if err := ecs.Add(w, e, component.AnimatorComponent.Kind(), &component.Animator{
		AttackDuration: arch.AttackClip,
	}); err != nil {
		return fmt.Errorf("enemy: add animator: %w", err)
	}

	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodyActor,
		Radius: arch.Radius,
	}); err != nil {
		return fmt.Errorf("enemy: add physics body: %w", err)
	}

	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.CategoryActor,
		Mask:     component.CategoryProjectile | component.CategoryWall,
	}); err != nil {
		return fmt.Errorf("enemy: add collision layer: %w", err)
	}

	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Color:  arch.Color.ColorOr(colornames.Indianred),
		Radius: arch.Radius,
	}); err != nil {
		return fmt.Errorf("enemy: add appearance: %w", err)
	}

	return nil
}

func weaponFromSpec(s prefabs.WeaponSpec) component.Weapon {
	return component.Weapon{
		Speed:    s.Speed,
		Damage:   s.Damage,
		Lifetime: s.Lifetime,
		Radius:   s.Radius,
		Muzzle:   s.Muzzle,
	}
}
