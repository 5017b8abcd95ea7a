package component

// Wall is a static segment obstacle. Projectiles die on contact.
type Wall struct {
	X1, Y1    float64
	X2, Y2    float64
	Thickness float64
}

var WallComponent = NewComponent[Wall]()
