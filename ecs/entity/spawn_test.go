package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnDestroysPartialEntity(t *testing.T) {
	errFill := errors.New("fill failed")

	tests := []struct {
		name    string
		fill    func(w *ecs.World, e ecs.Entity) error
		wantErr error
	}{
		{name: "fill_ok", fill: func(w *ecs.World, e ecs.Entity) error {
			return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
		}},
		{name: "fails_after_first_component", fill: func(w *ecs.World, e ecs.Entity) error {
			if err := ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
				return err
			}
			return errFill
		}, wantErr: errFill},
		{name: "add_rejected", fill: func(w *ecs.World, e ecs.Entity) error {
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
				return err
			}
			return ecs.Add(w, e, component.EnemyTagComponent.Kind(), nil)
		}, wantErr: component.ErrNilComponent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			var built ecs.Entity
			e, err := spawn(w, func(e ecs.Entity) error {
				built = e
				return tc.fill(w, e)
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, e)
				assert.False(t, w.IsAlive(built))
				assert.Empty(t, ecs.Entities(w))
				assert.Empty(t, w.Query(component.EnemyTagComponent.Kind()))
				assert.Empty(t, w.Query(component.TransformComponent.Kind()))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, built, e)
			assert.True(t, ecs.Has(w, e, component.EnemyTagComponent.Kind()))
		})
	}
}
