package system

import (
	"fmt"

	"github.com/milk9111/maskbound/common"
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/milk9111/maskbound/ecs/entity"
	"github.com/milk9111/maskbound/logger"
	"github.com/sirupsen/logrus"
)

// chaseLeash is how far past the detection radius a chase is kept up.
const chaseLeash = 1.5

// Locomotion is the movement handle an enemy steers while autonomous.
type Locomotion interface {
	SetDestination(x, y float64)
	SetSuppressed(suppressed bool)
	Suppressed() bool
}

// AnimationSink receives animation signals. PlayingAttack is the only
// value read back.
type AnimationSink interface {
	SetBool(name string, v bool)
	SetTrigger(name string)
	PlayingAttack() bool
}

// EnemyAISystem runs the Idle/Chase/Attack machine of every autonomous
// enemy against whichever entity currently holds focus.
type EnemyAISystem struct {
	arbiter *Arbiter
	target  ecs.Entity
	log     *logrus.Entry
}

// NewEnemyAISystem checks every enemy already in w for a locomotion handle.
func NewEnemyAISystem(w *ecs.World, arbiter *Arbiter) (*EnemyAISystem, error) {
	if arbiter == nil {
		return nil, ErrNoMask
	}
	if w != nil {
		for _, e := range w.Query(component.EnemyComponent.Kind()) {
			if !ecs.Has(w, e, component.NavAgentComponent.Kind()) {
				return nil, fmt.Errorf("enemy ai: %v: %w", e, entity.ErrNoLocomotion)
			}
		}
	}

	s := &EnemyAISystem{
		arbiter: arbiter,
		target:  arbiter.Focus(),
		log:     logger.For("enemy_ai"),
	}
	arbiter.OnFocusChanged(func(focus ecs.Entity) {
		s.target = focus
	})
	return s, nil
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	target, ok := ecs.Get(w, s.target, component.TransformComponent.Kind())
	if !ok {
		s.target = s.arbiter.Focus()
		if target, ok = ecs.Get(w, s.target, component.TransformComponent.Kind()); !ok {
			return
		}
	}
	tx, ty := target.X, target.Y

	for _, e := range w.Query(component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.NavAgentComponent.Kind()) {
		enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		nav, _ := ecs.Get(w, e, component.NavAgentComponent.Kind())

		var anim AnimationSink
		if a, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
			anim = a
		}

		if s.tick(w.Now(), enemy, transform, nav, anim, tx, ty) {
			if _, err := Shoot(w, e); err != nil {
				s.log.WithError(err).WithField("enemy", e).Warn("attack failed")
			}
		}
	}
}

// tick advances one enemy by one frame and reports whether it attacks.
func (s *EnemyAISystem) tick(now float64, enemy *component.Enemy, t *component.Transform, loco Locomotion, anim AnimationSink, tx, ty float64) bool {
	if enemy.State == component.EnemyPossessed {
		return false
	}

	if anim != nil && anim.PlayingAttack() {
		loco.SetSuppressed(true)
		return false
	}

	dist := common.Distance(t.X, t.Y, tx, ty)
	attacked := false

	switch enemy.State {
	case component.EnemyIdle:
		setLocomotionBools(anim, false)
		loco.SetSuppressed(true)
		if dist < enemy.DetectionRadius {
			enemy.State = component.EnemyChase
		}

	case component.EnemyChase:
		setLocomotionBools(anim, true)
		loco.SetSuppressed(false)
		loco.SetDestination(tx, ty)

		if dist <= enemy.AttackRange && enemy.CooldownReady(now) {
			enemy.State = component.EnemyAttack
		}
		if dist > enemy.DetectionRadius*chaseLeash {
			enemy.State = component.EnemyIdle
		}

	case component.EnemyAttack:
		loco.SetSuppressed(true)
		if dist > 0 {
			t.Facing = common.Heading(tx-t.X, ty-t.Y)
		}
		if enemy.CooldownReady(now) {
			if anim != nil {
				anim.SetTrigger(component.AnimAttack)
			}
			enemy.LastAttackTime = now
			attacked = true
		}

		if dist > enemy.AttackRange {
			enemy.State = component.EnemyChase
		}

	case component.EnemyStunned:
		setLocomotionBools(anim, false)
		loco.SetSuppressed(true)
	}

	return attacked
}

func setLocomotionBools(anim AnimationSink, walking bool) {
	if anim == nil {
		return
	}
	anim.SetBool(component.AnimWalk, walking)
	anim.SetBool(component.AnimIdle, !walking)
	anim.SetBool(component.AnimWalkPossessed, false)
}
