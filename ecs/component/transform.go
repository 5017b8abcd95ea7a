package component

import "math"

// Transform places an entity on the ground plane. X/Y are plane coordinates,
// Z is height above the ground and Facing is the heading in radians.
type Transform struct {
	X      float64
	Y      float64
	Z      float64
	Facing float64
}

// Forward returns the unit heading vector.
func (t *Transform) Forward() (float64, float64) {
	return math.Cos(t.Facing), math.Sin(t.Facing)
}

// Right returns the unit vector 90 degrees clockwise of Forward.
func (t *Transform) Right() (float64, float64) {
	return math.Sin(t.Facing), -math.Cos(t.Facing)
}

var TransformComponent = NewComponent[Transform]()
