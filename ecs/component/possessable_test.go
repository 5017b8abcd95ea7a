package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStabilityDecay(t *testing.T) {
	s := NewStability(100, 5)

	s.Decay(16)
	assert.Equal(t, 20.0, s.Current)
	assert.True(t, s.Enlightened(), "a fifth of max is enlightened")
	assert.False(t, s.Depleted())

	s.Decay(0)
	s.Decay(-3)
	assert.Equal(t, 20.0, s.Current)

	s.Decay(4)
	assert.True(t, s.Depleted())
	assert.Equal(t, 0.0, s.Fraction())
}

func TestStabilityApplyDamage(t *testing.T) {
	tests := []struct {
		name      string
		start     Stability
		amount    float64
		possessed bool
		wantDrop  float64
		wantCur   float64
		wantEff   float64
	}{
		{name: "possessed_hits_current", start: NewStability(100, 5), amount: 15, possessed: true, wantCur: 85, wantEff: 100},
		{name: "free_hits_ceiling", start: NewStability(100, 5), amount: 30, wantDrop: 30, wantCur: 70, wantEff: 70},
		{name: "ceiling_floored", start: NewStability(100, 5), amount: 500, wantDrop: 90, wantCur: 10, wantEff: 10},
		{name: "already_at_floor", start: Stability{Max: 100, EffectiveMax: 10, Current: 10, Floor: 10}, amount: 5, wantCur: 10, wantEff: 10},
		{name: "below_floor_never_rises", start: Stability{Max: 100, EffectiveMax: 4, Current: 4, Floor: 10}, amount: 5, wantCur: 4, wantEff: 4},
		{name: "current_below_new_ceiling_kept", start: Stability{Max: 100, EffectiveMax: 100, Current: 50, Floor: 10}, amount: 20, wantDrop: 20, wantCur: 50, wantEff: 80},
		{name: "non_positive_ignored", start: NewStability(100, 5), amount: -10, wantCur: 100, wantEff: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.start
			drop := s.ApplyDamage(tc.amount, tc.possessed)
			assert.Equal(t, tc.wantDrop, drop)
			assert.Equal(t, tc.wantCur, s.Current)
			assert.Equal(t, tc.wantEff, s.EffectiveMax)
		})
	}
}

func TestStabilityPossessionCycle(t *testing.T) {
	s := NewStability(100, 5)
	s.ApplyDamage(30, false)

	s.BeginPossession()
	assert.Equal(t, 70.0, s.Current)

	s.Decay(10)
	assert.Equal(t, 20.0, s.Current)
	assert.True(t, s.Enlightened(), "measured against the original max")

	s.Restore()
	assert.Equal(t, 100.0, s.Current)
	assert.Equal(t, 70.0, s.EffectiveMax, "ceiling never recovers")
}

func TestStabilityBoundaryAtFrameRate(t *testing.T) {
	tests := []struct {
		name            string
		frames          int
		wantEnlightened bool
		wantDepleted    bool
	}{
		{name: "16s_at_60hz", frames: 960, wantEnlightened: true},
		{name: "one_frame_short", frames: 959},
		{name: "20s_at_60hz", frames: 1200, wantEnlightened: true, wantDepleted: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStability(100, 5)
			s.BeginPossession()
			for i := 0; i < tc.frames; i++ {
				s.Decay(1.0 / 60)
			}
			assert.Equal(t, tc.wantEnlightened, s.Enlightened(), "current %v", s.Current)
			assert.Equal(t, tc.wantDepleted, s.Depleted(), "current %v", s.Current)
		})
	}
}

func TestStabilityEnlightenedBoundary(t *testing.T) {
	s := NewStability(100, 5)
	s.Current = 20.5
	assert.False(t, s.Enlightened())
	s.Current = 20
	assert.True(t, s.Enlightened())

	zero := Stability{}
	assert.False(t, zero.Enlightened())
	assert.Equal(t, 0.0, zero.Fraction())
}

func TestMovementString(t *testing.T) {
	assert.Equal(t, "direct", MovementDirect.String())
	assert.Equal(t, "resistant", MovementResistant.String())
}
