package system

import (
	"errors"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/milk9111/maskbound/logger"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoMask  = errors.New("arbiter: no mask entity")
	ErrNoWorld = errors.New("arbiter: nil world")
)

// FocusListener receives the entity that now has camera and UI focus.
type FocusListener func(focus ecs.Entity)

// Arbiter owns the single possession slot. At most one enemy is possessed
// at a time; Possess and Eject are no-ops when their preconditions fail.
type Arbiter struct {
	world *ecs.World
	mask  ecs.Entity
	host  ecs.Entity

	ejecting  bool
	listeners []FocusListener
	log       *logrus.Entry
}

func NewArbiter(w *ecs.World, mask ecs.Entity) (*Arbiter, error) {
	if w == nil {
		return nil, ErrNoWorld
	}
	if !ecs.Has(w, mask, component.MaskComponent.Kind()) || !ecs.Has(w, mask, component.TransformComponent.Kind()) {
		return nil, ErrNoMask
	}
	return &Arbiter{
		world: w,
		mask:  mask,
		log:   logger.For("arbiter"),
	}, nil
}

// OnFocusChanged subscribes fn to focus changes.
func (a *Arbiter) OnFocusChanged(fn FocusListener) {
	if fn == nil {
		return
	}
	a.listeners = append(a.listeners, fn)
}

func (a *Arbiter) IsPossessing() bool {
	return a.host != 0
}

func (a *Arbiter) Host() ecs.Entity {
	return a.host
}

func (a *Arbiter) Mask() ecs.Entity {
	return a.mask
}

// Focus is the host while possessing, otherwise the mask.
func (a *Arbiter) Focus() ecs.Entity {
	if a.host != 0 {
		return a.host
	}
	return a.mask
}

// Possess hands control of target to the player.
func (a *Arbiter) Possess(target ecs.Entity) bool {
	if a.IsPossessing() || a.ejecting {
		a.log.WithField("target", target).Debug("possess ignored: already possessing")
		return false
	}

	w := a.world
	if target == a.mask || !w.IsAlive(target) {
		a.log.WithField("target", target).Debug("possess ignored: invalid target")
		return false
	}
	possessable, ok := ecs.Get(w, target, component.PossessableComponent.Kind())
	if !ok || possessable.Dead {
		a.log.WithField("target", target).Debug("possess ignored: not possessable")
		return false
	}
	enemy, ok := ecs.Get(w, target, component.EnemyComponent.Kind())
	if !ok {
		return false
	}
	mask, ok := ecs.Get(w, a.mask, component.MaskComponent.Kind())
	if !ok {
		return false
	}

	mask.Active = false
	mask.ControlEnabled = false
	mask.VZ = 0

	enemy.State = component.EnemyPossessed
	enemy.Faction = component.FactionPlayerControlled
	if nav, ok := ecs.Get(w, target, component.NavAgentComponent.Kind()); ok {
		nav.SetSuppressed(true)
		nav.HasDestination = false
	}
	possessable.Stability.BeginPossession()

	a.host = target
	w.Events().Push(ecs.Event{Kind: ecs.EventPossessed, Entity: target})
	a.log.WithFields(logrus.Fields{
		"host":      target,
		"stability": possessable.Stability.Current,
		"movement":  possessable.Movement.String(),
	}).Info("possessed")

	a.notify(target)
	return true
}

// Eject returns control to the mask. The host is freed when enlightened
// and goes back to chasing otherwise.
func (a *Arbiter) Eject() bool {
	if !a.IsPossessing() || a.ejecting {
		a.log.Debug("eject ignored: not possessing")
		return false
	}
	a.ejecting = true
	defer func() { a.ejecting = false }()

	w := a.world
	host := a.host
	mask, _ := ecs.Get(w, a.mask, component.MaskComponent.Kind())
	maskTransform, _ := ecs.Get(w, a.mask, component.TransformComponent.Kind())

	if hostTransform, ok := ecs.Get(w, host, component.TransformComponent.Kind()); ok && maskTransform != nil {
		fx, fy := hostTransform.Forward()
		offset := 0.0
		if mask != nil {
			offset = mask.EjectOffset
		}
		maskTransform.X = hostTransform.X + fx*offset
		maskTransform.Y = hostTransform.Y + fy*offset
		maskTransform.Z = 0
		maskTransform.Facing = hostTransform.Facing
	}
	if mask != nil {
		mask.VZ = mask.EjectImpulse
		mask.Active = true
	}

	enlightened := false
	if possessable, ok := ecs.Get(w, host, component.PossessableComponent.Kind()); ok {
		enlightened = possessable.Stability.Enlightened()
	}
	a.depossess(host, enlightened)

	if mask != nil {
		mask.ControlEnabled = true
	}
	a.host = 0

	w.Events().Push(ecs.Event{Kind: ecs.EventEjected, Entity: host, Data: enlightened})
	a.log.WithFields(logrus.Fields{
		"host":        host,
		"enlightened": enlightened,
	}).Info("ejected")

	a.notify(a.mask)
	return true
}

func (a *Arbiter) depossess(host ecs.Entity, enlightened bool) {
	w := a.world
	possessable, ok := ecs.Get(w, host, component.PossessableComponent.Kind())
	if !ok || possessable.Dead {
		return
	}

	if enemy, ok := ecs.Get(w, host, component.EnemyComponent.Kind()); ok {
		enemy.Faction = component.FactionHostile
		if !enlightened {
			enemy.State = component.EnemyChase
		}
	}

	if enlightened {
		possessable.Dead = true
		w.Events().Push(ecs.Event{Kind: ecs.EventHostFreed, Entity: host})
		a.log.WithField("host", host).Info("host freed")
		ecs.DestroyEntity(w, host)
		return
	}

	if nav, ok := ecs.Get(w, host, component.NavAgentComponent.Kind()); ok {
		nav.SetSuppressed(false)
	}
	possessable.Stability.Restore()
}

func (a *Arbiter) notify(focus ecs.Entity) {
	for _, fn := range a.listeners {
		fn(focus)
	}
}
