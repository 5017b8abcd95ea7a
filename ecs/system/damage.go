package system

import (
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/milk9111/maskbound/logger"
	"github.com/sirupsen/logrus"
)

// ImpactOutcome is what a projectile did to the thing it touched.
type ImpactOutcome uint8

const (
	// ImpactNone means no damage; the projectile keeps flying.
	ImpactNone ImpactOutcome = iota
	ImpactTerrain
	ImpactHostStability
	ImpactPlayerHit
	ImpactHealth
	ImpactKilled
	ImpactCeiling
)

func (o ImpactOutcome) String() string {
	switch o {
	case ImpactTerrain:
		return "terrain"
	case ImpactHostStability:
		return "host_stability"
	case ImpactPlayerHit:
		return "player_hit"
	case ImpactHealth:
		return "health"
	case ImpactKilled:
		return "killed"
	case ImpactCeiling:
		return "ceiling"
	default:
		return "none"
	}
}

// Consumed reports whether the projectile is used up.
func (o ImpactOutcome) Consumed() bool {
	return o != ImpactNone
}

// RouteImpact applies one projectile contact. A shot only affects bodies
// tagged with its target faction; terrain always stops it.
func RouteImpact(w *ecs.World, arbiter *Arbiter, proj *component.Projectile, target ecs.Entity, terrain bool) ImpactOutcome {
	if terrain {
		return ImpactTerrain
	}
	if proj == nil || !w.IsAlive(target) {
		return ImpactNone
	}
	tag, ok := factionOf(w, target)
	if !ok || tag != proj.TargetFaction {
		return ImpactNone
	}

	log := logger.For("damage").WithFields(logrus.Fields{
		"target": target,
		"damage": proj.Damage,
	})

	if tag == component.FactionPlayerControlled {
		if arbiter != nil && arbiter.IsPossessing() && target == arbiter.Host() {
			p, ok := ecs.Get(w, target, component.PossessableComponent.Kind())
			if !ok {
				return ImpactNone
			}
			p.Stability.ApplyDamage(proj.Damage, true)
			log.WithField("stability", p.Stability.Current).Debug("host hit")
			return ImpactHostStability
		}
		if ecs.Has(w, target, component.MaskComponent.Kind()) {
			w.Events().Push(ecs.Event{Kind: ecs.EventPlayerHit, Entity: target, Data: proj.Damage})
			log.Warn("mask hit")
			return ImpactPlayerHit
		}
		return ImpactNone
	}

	enemy, ok := ecs.Get(w, target, component.EnemyComponent.Kind())
	if !ok || enemy.State == component.EnemyPossessed {
		return ImpactNone
	}

	if health, ok := ecs.Get(w, target, component.HealthComponent.Kind()); ok {
		if !health.Damage(proj.Damage) {
			return ImpactHealth
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventEnemyDied, Entity: target})
		log.Info("enemy died")
		ecs.DestroyEntity(w, target)
		return ImpactKilled
	}

	if p, ok := ecs.Get(w, target, component.PossessableComponent.Kind()); ok {
		drop := p.Stability.ApplyDamage(proj.Damage, false)
		log.WithFields(logrus.Fields{
			"drop":          drop,
			"effective_max": p.Stability.EffectiveMax,
		}).Info("stability ceiling degraded")
		return ImpactCeiling
	}

	return ImpactNone
}

// factionOf is the tag a projectile matches against. The mask is always
// player controlled.
func factionOf(w *ecs.World, e ecs.Entity) (component.Faction, bool) {
	if mask, ok := ecs.Get(w, e, component.MaskComponent.Kind()); ok {
		return component.FactionPlayerControlled, mask.Active
	}
	if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
		return enemy.Faction, true
	}
	return 0, false
}

// DamageSystem routes this frame's contacts and removes spent projectiles.
type DamageSystem struct {
	arbiter  *Arbiter
	contacts ContactSource
}

func NewDamageSystem(arbiter *Arbiter, contacts ContactSource) (*DamageSystem, error) {
	if arbiter == nil {
		return nil, ErrNoMask
	}
	return &DamageSystem{arbiter: arbiter, contacts: contacts}, nil
}

func (s *DamageSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.contacts == nil {
		return
	}

	var spent []ecs.Entity
	for _, c := range s.contacts.Contacts() {
		proj, ok := ecs.Get(w, c.Projectile, component.ProjectileComponent.Kind())
		if !ok || proj.Spent {
			continue
		}
		if RouteImpact(w, s.arbiter, proj, c.Other, c.Wall).Consumed() {
			proj.Spent = true
			spent = append(spent, c.Projectile)
		}
	}

	for _, e := range spent {
		ecs.DestroyEntity(w, e)
	}
}
