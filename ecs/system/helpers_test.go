package system

import (
	"testing"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/milk9111/maskbound/ecs/entity"
	"github.com/milk9111/maskbound/logger"
	"github.com/milk9111/maskbound/prefabs"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Silence()
}

const (
	frame = 0.5
	// tick matches the game's 60 TPS step.
	tick = 1.0 / 60
)

func testWeapon() prefabs.WeaponSpec {
	return prefabs.WeaponSpec{Speed: 15, Damage: 15, Lifetime: 3, Radius: 0.2, Muzzle: 0.8}
}

func testArchetype(variant string) prefabs.ArchetypeSpec {
	return prefabs.ArchetypeSpec{
		Possessable:     true,
		Variant:         variant,
		DetectionRadius: 10,
		AttackRange:     5,
		AttackCooldown:  2,
		AttackClip:      0,
		NavSpeed:        3.5,
		StoppingDist:    1,
		MaxStability:    100,
		DecayRate:       5,
		PossessedSpeed:  3.5,
		Radius:          0.5,
		Weapon:          testWeapon(),
		PossessedWeapon: testWeapon(),
	}
}

func testGrunt() prefabs.ArchetypeSpec {
	a := testArchetype("")
	a.Possessable = false
	a.Health = 30
	return a
}

func testMaskSpec() prefabs.MaskSpec {
	return prefabs.MaskSpec{
		MoveSpeed:        5,
		Radius:           0.35,
		InteractionRange: 2,
		EjectOffset:      2,
		EjectImpulse:     5,
		Gravity:          10,
	}
}

func newTestWorld(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	mask, err := entity.NewMask(w, testMaskSpec(), 0, 0)
	require.NoError(t, err)
	return w, mask
}

func newTestArbiter(t *testing.T) (*ecs.World, *Arbiter) {
	t.Helper()
	w, mask := newTestWorld(t)
	a, err := NewArbiter(w, mask)
	require.NoError(t, err)
	return w, a
}

func spawnPossessable(t *testing.T, w *ecs.World, variant string, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewPossessableEnemy(w, testArchetype(variant), prefabs.StabilitySpec{}, entity.Placement{X: x, Y: y})
	require.NoError(t, err)
	return e
}

func spawnGrunt(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewUnpossessableEnemy(w, testGrunt(), entity.Placement{X: x, Y: y})
	require.NoError(t, err)
	return e
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok, "entity %v missing component", e)
	return v
}

func setInput(t *testing.T, w *ecs.World, mask ecs.Entity, in component.Input) {
	t.Helper()
	*mustGet(t, w, mask, component.InputComponent.Kind()) = in
}
