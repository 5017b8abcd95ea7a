package component

import "math"

// NavAgent is a straight-line locomotion handle. It moves its entity toward
// the last destination at Speed unless suppressed.
type NavAgent struct {
	Speed            float64
	StoppingDistance float64

	DestX          float64
	DestY          float64
	HasDestination bool
	Stopped        bool
}

func (a *NavAgent) SetDestination(x, y float64) {
	a.DestX = x
	a.DestY = y
	a.HasDestination = true
}

func (a *NavAgent) SetSuppressed(suppressed bool) {
	a.Stopped = suppressed
}

func (a *NavAgent) Suppressed() bool {
	return a.Stopped
}

// Step returns the displacement for one frame from (x, y).
func (a *NavAgent) Step(x, y, dt float64) (dx, dy float64, moving bool) {
	if a.Stopped || !a.HasDestination || dt <= 0 || a.Speed <= 0 {
		return 0, 0, false
	}
	ox := a.DestX - x
	oy := a.DestY - y
	dist := math.Hypot(ox, oy)
	if dist <= a.StoppingDistance || dist == 0 {
		return 0, 0, false
	}
	step := math.Min(a.Speed*dt, dist-a.StoppingDistance)
	return ox / dist * step, oy / dist * step, true
}

var NavAgentComponent = NewComponent[NavAgent]()
