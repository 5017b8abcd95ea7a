package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Normalize returns the unit vector of (x, y) and its original length.
// A zero vector stays zero.
func Normalize(x, y float64) (nx, ny, length float64) {
	length = math.Hypot(x, y)
	if length == 0 {
		return 0, 0, 0
	}
	return x / length, y / length, length
}

// Heading returns the angle of (x, y) in radians.
func Heading(x, y float64) float64 {
	return math.Atan2(y, x)
}

// WrapAngle maps a radian angle to (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// RotateTowards turns from toward to by at most maxStep radians.
func RotateTowards(from, to, maxStep float64) float64 {
	diff := WrapAngle(to - from)
	if math.Abs(diff) <= maxStep {
		return to
	}
	return from + math.Copysign(maxStep, diff)
}
