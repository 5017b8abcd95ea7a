package component

import "math"

// EnemyState is the behaviour state of a single enemy.
type EnemyState uint8

const (
	EnemyIdle EnemyState = iota
	EnemyChase
	EnemyAttack
	EnemyPossessed
	// EnemyStunned is reserved: it has no entry or exit transitions yet and
	// behaves like Idle with locomotion held.
	EnemyStunned
)

func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyChase:
		return "chase"
	case EnemyAttack:
		return "attack"
	case EnemyPossessed:
		return "possessed"
	case EnemyStunned:
		return "stunned"
	default:
		return "unknown"
	}
}

// Faction tags which side a body is on, and which side a projectile damages.
type Faction uint8

const (
	FactionHostile Faction = iota
	FactionPlayerControlled
)

func (f Faction) String() string {
	if f == FactionPlayerControlled {
		return "player_controlled"
	}
	return "hostile"
}

// Opposite returns the side a shot fired by f is meant to hit.
func (f Faction) Opposite() Faction {
	if f == FactionPlayerControlled {
		return FactionHostile
	}
	return FactionPlayerControlled
}

// Weapon describes the projectile an attacker spawns.
type Weapon struct {
	Speed    float64
	Damage   float64
	Lifetime float64
	Radius   float64
	// Muzzle is the distance ahead of the body where the shot spawns.
	Muzzle float64
}

// Enemy holds the autonomous behaviour parameters and state of one enemy.
type Enemy struct {
	DetectionRadius float64
	AttackRange     float64
	AttackCooldown  float64
	LastAttackTime  float64

	State   EnemyState
	Faction Faction

	// Weapon is fired while autonomous, PossessedWeapon while possessed.
	Weapon          Weapon
	PossessedWeapon Weapon
}

// NewEnemy returns an idle hostile enemy whose first attack is not gated by
// the cooldown.
func NewEnemy(detectionRadius, attackRange, attackCooldown float64) Enemy {
	return Enemy{
		DetectionRadius: detectionRadius,
		AttackRange:     attackRange,
		AttackCooldown:  attackCooldown,
		LastAttackTime:  math.Inf(-1),
		State:           EnemyIdle,
		Faction:         FactionHostile,
	}
}

// CooldownReady reports whether an attack may start at time now.
func (e *Enemy) CooldownReady(now float64) bool {
	return now > e.LastAttackTime+e.AttackCooldown
}

// ActiveWeapon returns the weapon matching the current control state.
func (e *Enemy) ActiveWeapon() Weapon {
	if e.State == EnemyPossessed {
		return e.PossessedWeapon
	}
	return e.Weapon
}

var EnemyComponent = NewComponent[Enemy]()
