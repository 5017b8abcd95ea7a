package main

import (
	"testing"

	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeadlessGame(t *testing.T) *Game {
	t.Helper()
	logger.Silence()

	tuning, arena, err := loadPrefabs("")
	require.NoError(t, err)

	g := &Game{cfg: Config{Seed: 1}, log: logger.For("game")}
	require.NoError(t, g.build(tuning, arena))
	return g
}

func TestBuildArena(t *testing.T) {
	g := newHeadlessGame(t)
	require.NotNil(t, g.pipeline)
	assert.False(t, g.pipeline.Arbiter.IsPossessing())
	assert.Equal(t, g.pipeline.Arbiter.Mask(), g.pipeline.Arbiter.Focus())

	for i := 0; i < 30; i++ {
		g.pipeline.Step(g.world, 1.0/60)
	}
	assert.InDelta(t, 0.5, g.world.Now(), 1e-9)
}

func TestDrainEventsCounts(t *testing.T) {
	g := newHeadlessGame(t)
	g.world.Events().Push(ecs.Event{Kind: ecs.EventPlayerHit})
	g.world.Events().Push(ecs.Event{Kind: ecs.EventPlayerHit})
	g.world.Events().Push(ecs.Event{Kind: ecs.EventHostFreed})

	g.drainEvents()
	assert.Equal(t, 2, g.playerHits)
	assert.Equal(t, 1, g.freed)
	assert.Zero(t, g.world.Events().Len())
}

func TestLoadPrefabsUnknownArena(t *testing.T) {
	_, _, err := loadPrefabs("does-not-exist.yaml")
	assert.Error(t, err)
}
