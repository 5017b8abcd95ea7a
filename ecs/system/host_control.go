package system

import (
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/milk9111/maskbound/logger"
	"github.com/sirupsen/logrus"
)

// HostControlSystem drains the possessed host's stability and drives it
// from player input. A host that runs dry is left for PossessionSystem to
// eject in the same frame.
type HostControlSystem struct {
	arbiter *Arbiter
	seed    int64
	log     *logrus.Entry

	// mover belongs to moverHost only; a new host gets a fresh one.
	mover     PossessedMover
	moverHost ecs.Entity
}

func NewHostControlSystem(arbiter *Arbiter, seed int64) (*HostControlSystem, error) {
	if arbiter == nil {
		return nil, ErrNoMask
	}
	s := &HostControlSystem{
		arbiter: arbiter,
		seed:    seed,
		log:     logger.For("host_control"),
	}
	return s, nil
}

func (s *HostControlSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if !s.arbiter.IsPossessing() {
		s.releaseMover()
		return
	}

	host := s.arbiter.Host()
	possessable, ok := ecs.Get(w, host, component.PossessableComponent.Kind())
	if !ok || possessable.Dead {
		s.releaseMover()
		return
	}
	transform, ok := ecs.Get(w, host, component.TransformComponent.Kind())
	if !ok {
		return
	}

	dt := w.DeltaTime()
	possessable.Stability.Decay(dt)
	if possessable.Stability.Depleted() {
		s.log.WithFields(logrus.Fields{
			"host":      host,
			"stability": possessable.Stability.Current,
		}).Info("host stability depleted")
		return
	}

	input, ok := ecs.Get(w, s.arbiter.Mask(), component.InputComponent.Kind())
	if !ok {
		return
	}

	rx, ry := transform.Right()
	res := s.moverFor(host, possessable.Movement).Move(MoveInput{
		X:      input.MoveX,
		Y:      input.MoveY,
		Facing: transform.Facing,
		RightX: rx,
		RightY: ry,
		Speed:  possessable.MoveSpeed,
		Now:    w.Now(),
		DT:     dt,
	})
	transform.X += res.DX
	transform.Y += res.DY
	transform.Facing = res.Facing

	anim, hasAnim := ecs.Get(w, host, component.AnimatorComponent.Kind())
	if hasAnim {
		anim.SetBool(component.AnimIdle, false)
		anim.SetBool(component.AnimWalk, false)
		anim.SetBool(component.AnimWalkPossessed, res.Moving)
	}

	if input.FirePressed {
		if _, err := Shoot(w, host); err != nil {
			s.log.WithError(err).Warn("possessed fire failed")
			return
		}
		if hasAnim {
			anim.SetTrigger(component.AnimAttack)
		}
	}
}

func (s *HostControlSystem) moverFor(host ecs.Entity, kind component.Movement) PossessedMover {
	if s.mover != nil && s.moverHost == host {
		return s.mover
	}
	s.mover = NewMover(kind, s.seed+int64(host))
	s.moverHost = host
	return s.mover
}

func (s *HostControlSystem) releaseMover() {
	s.mover = nil
	s.moverHost = 0
}
