package system

import (
	"github.com/milk9111/maskbound/common"
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
)

// PossessionSystem polls the player's intents once per frame. While a host
// is held it ejects on request or when the host's stability runs out;
// otherwise an interact press takes over the nearest possessable enemy.
type PossessionSystem struct {
	arbiter *Arbiter
}

func NewPossessionSystem(arbiter *Arbiter) (*PossessionSystem, error) {
	if arbiter == nil {
		return nil, ErrNoMask
	}
	return &PossessionSystem{arbiter: arbiter}, nil
}

func (s *PossessionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	input, _ := ecs.Get(w, s.arbiter.Mask(), component.InputComponent.Kind())

	if s.arbiter.IsPossessing() {
		if (input != nil && input.EjectPressed) || s.hostDepleted(w) {
			s.arbiter.Eject()
		}
		return
	}

	if input == nil || !input.InteractPressed {
		return
	}
	mask, ok := ecs.Get(w, s.arbiter.Mask(), component.MaskComponent.Kind())
	if !ok || !mask.Active || !mask.ControlEnabled {
		return
	}
	if target, ok := NearestPossessable(w, s.arbiter.Mask(), mask.InteractionRange); ok {
		s.arbiter.Possess(target)
	}
}

// hostDepleted also treats a host that vanished from the world as spent.
func (s *PossessionSystem) hostDepleted(w *ecs.World) bool {
	host := s.arbiter.Host()
	if !w.IsAlive(host) {
		return true
	}
	p, ok := ecs.Get(w, host, component.PossessableComponent.Kind())
	if !ok {
		return true
	}
	return p.Stability.Depleted()
}

// NearestPossessable returns the closest live possessable enemy within
// radius of from. Ties go to the lowest entity slot.
func NearestPossessable(w *ecs.World, from ecs.Entity, radius float64) (ecs.Entity, bool) {
	origin, ok := ecs.Get(w, from, component.TransformComponent.Kind())
	if !ok || radius <= 0 {
		return 0, false
	}

	var best ecs.Entity
	bestDist := radius
	found := false
	for _, e := range w.Query(component.PossessableComponent.Kind(), component.TransformComponent.Kind()) {
		if e == from {
			continue
		}
		p, _ := ecs.Get(w, e, component.PossessableComponent.Kind())
		if p.Dead {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		d := common.Distance(origin.X, origin.Y, t.X, t.Y)
		if d > bestDist || (found && d == bestDist) {
			continue
		}
		best, bestDist, found = e, d, true
	}
	return best, found
}
