package system

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/milk9111/maskbound/common"
	"github.com/milk9111/maskbound/ecs/component"
)

const (
	moveDeadZone = 0.1
	// possessedTurnRate is 720 degrees per second.
	possessedTurnRate = 4 * math.Pi
	driftFrequency    = 2.0

	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// MoveInput is one frame of player intent applied to a possessed body.
type MoveInput struct {
	X, Y   float64
	Facing float64
	// RightX/RightY is the body's right vector.
	RightX, RightY float64
	Speed          float64
	Now            float64
	DT             float64
}

type MoveResult struct {
	DX, DY float64
	Facing float64
	Moving bool
}

// PossessedMover turns player intent into motion for one movement variant.
type PossessedMover interface {
	Move(in MoveInput) MoveResult
}

// NewMover returns the mover for kind. seed only affects resistant drift.
func NewMover(kind component.Movement, seed int64) PossessedMover {
	if kind == component.MovementResistant {
		return NewResistantMover(seed)
	}
	return DirectMover{}
}

// DirectMover maps intent straight to motion and turns toward it.
type DirectMover struct{}

func (DirectMover) Move(in MoveInput) MoveResult {
	res := MoveResult{Facing: in.Facing}
	nx, ny, length := common.Normalize(in.X, in.Y)
	if length < moveDeadZone || in.DT <= 0 {
		return res
	}
	step := in.Speed * in.DT
	res.DX = nx * step
	res.DY = ny * step
	res.Facing = common.RotateTowards(in.Facing, common.Heading(nx, ny), possessedTurnRate*in.DT)
	res.Moving = true
	return res
}

// ResistantMover adds a lateral drift in [-1, 1] along the body's right
// vector, sampled from Perlin noise. Intent is not normalized and the body
// does not turn.
type ResistantMover struct {
	noise *perlin.Perlin
	// row keeps the sample line off the integer lattice, where Perlin
	// noise is always zero.
	row float64
}

func NewResistantMover(seed int64) *ResistantMover {
	return &ResistantMover{
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
		row:   0.5 + float64(seed%97)/197,
	}
}

// Drift returns the lateral push at time now.
func (m *ResistantMover) Drift(now float64) float64 {
	return common.Clamp(m.noise.Noise2D(now*driftFrequency, m.row), -1, 1)
}

func (m *ResistantMover) Move(in MoveInput) MoveResult {
	res := MoveResult{Facing: in.Facing}
	if in.DT <= 0 {
		return res
	}
	drift := m.Drift(in.Now)
	mx := in.X + in.RightX*drift
	my := in.Y + in.RightY*drift
	step := in.Speed * in.DT
	res.DX = mx * step
	res.DY = my * step
	res.Moving = math.Hypot(in.X, in.Y) >= moveDeadZone
	return res
}
