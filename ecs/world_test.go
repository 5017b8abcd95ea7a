package ecs

import (
	"testing"

	"github.com/milk9111/maskbound/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	tests := []struct {
		name      string
		create    int
		destroy   []int
		wantAlive []int
	}{
		{name: "single_destroyed", create: 1, destroy: []int{0}},
		{name: "middle_destroyed", create: 3, destroy: []int{1}, wantAlive: []int{0, 2}},
		{name: "nothing_destroyed", create: 2, wantAlive: []int{0, 1}},
		{name: "destroy_twice", create: 2, destroy: []int{0, 0}, wantAlive: []int{1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, tc.create)
			for i := 0; i < tc.create; i++ {
				ents = append(ents, CreateEntity(w))
			}

			seen := map[int]bool{}
			for _, i := range tc.destroy {
				assert.Equal(t, !seen[i], DestroyEntity(w, ents[i]), "destroy %d", i)
				seen[i] = true
			}

			want := make([]Entity, 0, len(tc.wantAlive))
			for _, i := range tc.wantAlive {
				want = append(want, ents[i])
			}
			assert.Equal(t, want, append([]Entity{}, Entities(w)...))
			for i := range seen {
				assert.False(t, w.IsAlive(ents[i]))
			}
		})
	}
}

func TestEntityHandleEncoding(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	require.True(t, first.Valid())
	assert.Equal(t, "1v0", first.String())

	require.True(t, DestroyEntity(w, first))
	again := CreateEntity(w)
	assert.Equal(t, first.id(), again.id())
	assert.Equal(t, first.generation()+1, again.generation())
	assert.Equal(t, "1v1", again.String())

	assert.False(t, Entity(0).Valid())
}

func TestStaleHandles(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	require.NoError(t, Add(w, old, h.Kind(), intPtr(1)))
	require.True(t, DestroyEntity(w, old))
	assert.False(t, DestroyEntity(w, old), "second destroy is a no-op")

	reused := CreateEntity(w)
	require.Equal(t, old.id(), reused.id(), "slot is reused")
	assert.NotEqual(t, old, reused, "reused slot carries a new generation")
	assert.False(t, IsAlive(w, old))
	assert.False(t, Has(w, reused, h.Kind()), "components do not survive destruction")

	assert.ErrorIs(t, Add(w, old, h.Kind(), intPtr(2)), component.ErrEntityNotAlive)

	require.NoError(t, Add(w, reused, h.Kind(), intPtr(3)))
	_, ok := Get(w, old, h.Kind())
	assert.False(t, ok, "stale handle never resolves the new owner's value")
	assert.False(t, Remove(w, old, h.Kind()))
	assert.True(t, Has(w, reused, h.Kind()))
}

func TestComponentAddGetRemove(t *testing.T) {
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	tests := []struct {
		name    string
		run     func(w *World, e Entity) error
		wantErr error
	}{
		{name: "add_value", run: func(w *World, e Entity) error { return Add(w, e, ints.Kind(), intPtr(10)) }},
		{name: "nil_value", run: func(w *World, e Entity) error { return Add(w, e, ints.Kind(), nil) }, wantErr: component.ErrNilComponent},
		{name: "zero_kind", run: func(w *World, e Entity) error {
			return Add(w, e, component.ComponentKind[int]{}, intPtr(1))
		}, wantErr: component.ErrInvalidComponentKind},
		{name: "dead_entity", run: func(w *World, e Entity) error {
			DestroyEntity(w, e)
			return Add(w, e, strs.Kind(), stringPtr("x"))
		}, wantErr: component.ErrEntityNotAlive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			e := CreateEntity(w)
			err := tc.run(w, e)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			v, ok := Get(w, e, ints.Kind())
			require.True(t, ok)
			assert.Equal(t, 10, *v)

			assert.True(t, Remove(w, e, ints.Kind()))
			assert.False(t, Remove(w, e, ints.Kind()))
			assert.False(t, Has(w, e, ints.Kind()))
		})
	}
}

func TestQueryOrderAndIntersection(t *testing.T) {
	w := NewWorld()
	a := component.NewComponent[int]()
	b := component.NewComponent[string]()

	var ents []Entity
	for i := 0; i < 5; i++ {
		ents = append(ents, CreateEntity(w))
	}
	for i := len(ents) - 1; i >= 0; i-- {
		require.NoError(t, Add(w, ents[i], a.Kind(), intPtr(i)))
	}
	for _, i := range []int{3, 1, 4} {
		require.NoError(t, Add(w, ents[i], b.Kind(), stringPtr("x")))
	}

	assert.Equal(t, []Entity{ents[1], ents[3], ents[4]}, w.Query(a.Kind(), b.Kind()))
	assert.Equal(t, ents, w.Query(a.Kind()), "slot order, not insertion order")

	first, ok := w.First(b.Kind())
	require.True(t, ok)
	assert.Equal(t, ents[1], first)

	assert.Empty(t, w.Query())
	_, ok = w.First(component.NewComponent[float64]().Kind())
	assert.False(t, ok)
}

func TestForEachVisitsInSlotOrder(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	require.NoError(t, Add(w, e3, h.Kind(), intPtr(3)))
	require.NoError(t, Add(w, e1, h.Kind(), intPtr(1)))

	var visited []Entity
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visited = append(visited, e)
		*v *= 10
	})
	assert.Equal(t, []Entity{e1, e3}, visited)
	assert.NotContains(t, visited, e2)

	v, _ := Get(w, e3, h.Kind())
	assert.Equal(t, 30, *v, "callback mutates in place")

	visited = nil
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited = append(visited, e)
		DestroyEntity(w, e3)
	})
	assert.Equal(t, []Entity{e1}, visited, "entities destroyed mid-walk are skipped")
}

func TestComponentPointersStayValid(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	require.NoError(t, Add(w, e1, h.Kind(), intPtr(1)))
	require.NoError(t, Add(w, e2, h.Kind(), intPtr(2)))

	v2, _ := Get(w, e2, h.Kind())
	DestroyEntity(w, e1)
	*v2 = 20

	got, ok := Get(w, e2, h.Kind())
	require.True(t, ok)
	assert.Equal(t, 20, *got, "swap-remove keeps the moved value")
}

func TestWorldClock(t *testing.T) {
	tests := []struct {
		name    string
		steps   []float64
		wantNow float64
		wantDt  float64
	}{
		{name: "accumulates", steps: []float64{0.25, 0.5}, wantNow: 0.75, wantDt: 0.5},
		{name: "zero_step", steps: []float64{0.25, 0}, wantNow: 0.25, wantDt: 0},
		{name: "negative_clamped", steps: []float64{0.5, -1}, wantNow: 0.5, wantDt: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			for _, dt := range tc.steps {
				w.Advance(dt)
			}
			assert.Equal(t, tc.wantNow, w.Now())
			assert.Equal(t, tc.wantDt, w.DeltaTime())
		})
	}

	var nilWorld *World
	assert.NotPanics(t, func() { nilWorld.Advance(1) })
	assert.Zero(t, nilWorld.Now())
}

type recordingSystem struct {
	name string
	log  *[]string
	now  *[]float64
}

func (s recordingSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	*s.now = append(*s.now, w.Now())
}

func TestSchedulerRunsInOrderAndAdvancesClock(t *testing.T) {
	var order []string
	var times []float64
	s := NewScheduler(
		recordingSystem{name: "a", log: &order, now: &times},
		nil,
		recordingSystem{name: "b", log: &order, now: &times},
	)
	w := NewWorld()

	s.Update(w, 0.25)
	s.Update(w, 0)

	assert.Len(t, s.Systems(), 2)
	assert.Equal(t, []string{"a", "b", "a", "b"}, order)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, times, "clock advances before systems run")
	assert.Zero(t, w.DeltaTime())
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	w.Events().Push(Event{Kind: EventPossessed, Entity: e})
	w.Events().Push(Event{Kind: EventEjected, Entity: e, Data: true})

	require.Equal(t, 2, w.Events().Len())
	evts := w.Events().Drain()
	require.Len(t, evts, 2)
	assert.Equal(t, EventPossessed, evts[0].Kind)
	assert.Equal(t, true, evts[1].Data)
	assert.Nil(t, w.Events().Drain(), "queue is empty after drain")
}
