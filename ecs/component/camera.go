package component

// Camera follows the entity that currently holds control focus.
type Camera struct {
	Target     uint64
	X          float64
	Y          float64
	Zoom       float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
