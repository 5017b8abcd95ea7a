package system

import (
	"fmt"

	"github.com/milk9111/maskbound/ecs"
)

// Pipeline is the per-frame system order for one world: input, enemy
// brains, possessed control, the possession poll, then projectiles,
// contacts and damage, and finally camera and HUD.
type Pipeline struct {
	Scheduler *ecs.Scheduler
	Arbiter   *Arbiter
	Physics   *PhysicsSystem
}

// NewPipeline wires every system around a single arbiter for mask. input
// may be nil when intents are written directly to the mask.
func NewPipeline(w *ecs.World, mask ecs.Entity, input *InputSystem, seed int64) (*Pipeline, error) {
	arbiter, err := NewArbiter(w, mask)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	ai, err := NewEnemyAISystem(w, arbiter)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	host, err := NewHostControlSystem(arbiter, seed)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	possession, err := NewPossessionSystem(arbiter)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	maskControl, err := NewMaskControlSystem(arbiter)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	physics := NewPhysicsSystem()
	damage, err := NewDamageSystem(arbiter, physics)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	camera, err := NewCameraSystem(arbiter)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	bar, err := NewStabilityBarSystem(arbiter)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	scheduler := ecs.NewScheduler()
	if input != nil {
		scheduler.Add(input)
	}
	scheduler.Add(NewAnimationSystem())
	scheduler.Add(ai)
	scheduler.Add(NewLocomotionSystem())
	scheduler.Add(host)
	scheduler.Add(possession)
	scheduler.Add(maskControl)
	scheduler.Add(NewProjectileSystem())
	scheduler.Add(NewTTLSystem())
	scheduler.Add(physics)
	scheduler.Add(damage)
	scheduler.Add(camera)
	scheduler.Add(bar)

	return &Pipeline{
		Scheduler: scheduler,
		Arbiter:   arbiter,
		Physics:   physics,
	}, nil
}

func (p *Pipeline) Step(w *ecs.World, dt float64) {
	p.Scheduler.Update(w, dt)
}
