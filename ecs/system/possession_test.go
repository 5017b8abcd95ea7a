package system

import (
	"math"
	"testing"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPossessionScheduler(t *testing.T, a *Arbiter) *ecs.Scheduler {
	t.Helper()
	host, err := NewHostControlSystem(a, 1)
	require.NoError(t, err)
	poll, err := NewPossessionSystem(a)
	require.NoError(t, err)
	return ecs.NewScheduler(host, poll)
}

func runSeconds(s *ecs.Scheduler, w *ecs.World, seconds float64) {
	runSecondsAt(s, w, seconds, frame)
}

func runSecondsAt(s *ecs.Scheduler, w *ecs.World, seconds, step float64) {
	n := int(math.Round(seconds / step))
	for i := 0; i < n; i++ {
		s.Update(w, step)
	}
}

func TestPossessionDecayScenarios(t *testing.T) {
	cases := []struct {
		name        string
		hold        float64
		step        float64
		eject       bool
		wantAlive   bool
		wantState   component.EnemyState
		wantStab    float64
		wantPossess bool
		enlightened bool
	}{
		{name: "manual_eject_after_10s", hold: 10, eject: true, wantAlive: true, wantState: component.EnemyChase, wantStab: 100},
		{name: "manual_eject_at_20_percent", hold: 16, eject: true, wantAlive: false, enlightened: true},
		{name: "still_held_at_16s", hold: 16, wantAlive: true, wantState: component.EnemyPossessed, wantStab: 20, wantPossess: true},
		{name: "auto_eject_on_depletion", hold: 20, wantAlive: false, enlightened: true},
		{name: "manual_eject_after_10s_60hz", hold: 10, step: tick, eject: true, wantAlive: true, wantState: component.EnemyChase, wantStab: 100},
		{name: "manual_eject_at_20_percent_60hz", hold: 16, step: tick, eject: true, wantAlive: false, enlightened: true},
		{name: "still_held_at_16s_60hz", hold: 16, step: tick, wantAlive: true, wantState: component.EnemyPossessed, wantStab: 20, wantPossess: true},
		{name: "auto_eject_on_depletion_60hz", hold: 20, step: tick, wantAlive: false, enlightened: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, a := newTestArbiter(t)
			host := spawnPossessable(t, w, "standard", 1, 0)
			s := newPossessionScheduler(t, a)
			require.True(t, a.Possess(host))

			step := tc.step
			if step == 0 {
				step = frame
			}
			runSecondsAt(s, w, tc.hold, step)

			if tc.eject {
				p := mustGet(t, w, host, component.PossessableComponent.Kind())
				assert.Equal(t, tc.enlightened, p.Stability.Enlightened())
				setInput(t, w, a.Mask(), component.Input{EjectPressed: true})
				s.Update(w, 0)
			}

			assert.Equal(t, tc.wantPossess, a.IsPossessing())
			assert.Equal(t, tc.wantAlive, w.IsAlive(host))
			if !tc.wantAlive {
				return
			}
			assert.Equal(t, tc.wantState, mustGet(t, w, host, component.EnemyComponent.Kind()).State)
			assert.InDelta(t, tc.wantStab, mustGet(t, w, host, component.PossessableComponent.Kind()).Stability.Current, 1e-6)
		})
	}
}

func TestAutoEjectHappensOnDepletionFrame(t *testing.T) {
	w, a := newTestArbiter(t)
	host := spawnPossessable(t, w, "standard", 1, 0)
	s := newPossessionScheduler(t, a)
	require.True(t, a.Possess(host))

	// 39 frames of 0.5s leave 2.5 stability.
	for i := 0; i < 39; i++ {
		s.Update(w, frame)
	}
	require.True(t, a.IsPossessing())
	assert.Equal(t, 2.5, mustGet(t, w, host, component.PossessableComponent.Kind()).Stability.Current)

	s.Update(w, frame)
	assert.False(t, a.IsPossessing())
	assert.False(t, w.IsAlive(host))
}

func TestTankHoldsPossessionLonger(t *testing.T) {
	w, a := newTestArbiter(t)
	tank := spawnPossessable(t, w, "tank", 1, 0)
	s := newPossessionScheduler(t, a)
	require.True(t, a.Possess(tank))

	runSeconds(s, w, 20)

	assert.True(t, a.IsPossessing())
	assert.Equal(t, 90.0, mustGet(t, w, tank, component.PossessableComponent.Kind()).Stability.Current)
}

func TestDamageToHostDepletesIntoEject(t *testing.T) {
	w, a := newTestArbiter(t)
	host := spawnPossessable(t, w, "standard", 1, 0)
	s := newPossessionScheduler(t, a)
	require.True(t, a.Possess(host))

	p := mustGet(t, w, host, component.PossessableComponent.Kind())
	p.Stability.ApplyDamage(200, true)

	s.Update(w, frame)
	assert.False(t, a.IsPossessing())
	assert.False(t, w.IsAlive(host))
}

func TestInteractPossessesNearest(t *testing.T) {
	cases := []struct {
		name  string
		spawn [][2]float64
		want  int
	}{
		{name: "closest_wins", spawn: [][2]float64{{1.5, 0}, {1, 0.5}, {0.2, 3}}, want: 1},
		{name: "out_of_range", spawn: [][2]float64{{2.5, 0}, {0, -3}}, want: -1},
		{name: "exactly_at_range", spawn: [][2]float64{{2, 0}}, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, a := newTestArbiter(t)
			var spawned []ecs.Entity
			for _, p := range tc.spawn {
				spawned = append(spawned, spawnPossessable(t, w, "standard", p[0], p[1]))
			}
			s := newPossessionScheduler(t, a)

			setInput(t, w, a.Mask(), component.Input{InteractPressed: true})
			s.Update(w, frame)

			if tc.want < 0 {
				assert.False(t, a.IsPossessing())
				return
			}
			assert.Equal(t, spawned[tc.want], a.Host())
		})
	}
}

func TestInteractIgnoresGruntsAndHeldHost(t *testing.T) {
	w, a := newTestArbiter(t)
	spawnGrunt(t, w, 0.5, 0)
	s := newPossessionScheduler(t, a)

	setInput(t, w, a.Mask(), component.Input{InteractPressed: true})
	s.Update(w, frame)
	assert.False(t, a.IsPossessing())

	first := spawnPossessable(t, w, "standard", 1, 0)
	s.Update(w, frame)
	require.Equal(t, first, a.Host())

	spawnPossessable(t, w, "standard", 0.1, 0)
	s.Update(w, frame)
	assert.Equal(t, first, a.Host(), "interact while possessing does not switch hosts")
}

func TestPossessedHostFollowsInput(t *testing.T) {
	w, a := newTestArbiter(t)
	host := spawnPossessable(t, w, "standard", 0, 0)
	s := newPossessionScheduler(t, a)
	require.True(t, a.Possess(host))

	setInput(t, w, a.Mask(), component.Input{MoveX: 1})
	s.Update(w, frame)

	ht := mustGet(t, w, host, component.TransformComponent.Kind())
	assert.InDelta(t, 1.75, ht.X, 1e-9)
	assert.InDelta(t, 0, ht.Y, 1e-9)
	assert.True(t, mustGet(t, w, host, component.AnimatorComponent.Kind()).Bools[component.AnimWalkPossessed])
}

func TestPossessedFireTargetsHostiles(t *testing.T) {
	w, a := newTestArbiter(t)
	host := spawnPossessable(t, w, "standard", 0, 0)
	s := newPossessionScheduler(t, a)
	require.True(t, a.Possess(host))

	setInput(t, w, a.Mask(), component.Input{FirePressed: true})
	s.Update(w, frame)

	shots := w.Query(component.ProjectileComponent.Kind())
	require.Len(t, shots, 1)
	proj := mustGet(t, w, shots[0], component.ProjectileComponent.Kind())
	assert.Equal(t, component.FactionHostile, proj.TargetFaction)
	assert.Equal(t, uint64(host), proj.Owner)
}

func TestHostControlKeepsOnlyCurrentMover(t *testing.T) {
	w, a := newTestArbiter(t)
	first := spawnPossessable(t, w, "resistant", 1, 0)
	second := spawnPossessable(t, w, "standard", -1, 0)
	hc, err := NewHostControlSystem(a, 7)
	require.NoError(t, err)
	s := ecs.NewScheduler(hc)

	require.True(t, a.Possess(first))
	s.Update(w, frame)
	require.NotNil(t, hc.mover)
	assert.Equal(t, first, hc.moverHost)
	assert.IsType(t, &ResistantMover{}, hc.mover)

	require.True(t, a.Eject())
	s.Update(w, frame)
	assert.Nil(t, hc.mover, "mover is dropped once nothing is possessed")
	assert.Zero(t, hc.moverHost)

	require.True(t, a.Possess(second))
	s.Update(w, frame)
	assert.Equal(t, second, hc.moverHost)
	assert.IsType(t, DirectMover{}, hc.mover)

	ecs.DestroyEntity(w, second)
	s.Update(w, frame)
	assert.Nil(t, hc.mover, "a host that left the world releases its mover")
}
