package component

import "image/color"

// Appearance is what the debug renderer draws for an entity.
type Appearance struct {
	Color  color.Color
	Radius float64
}

var AppearanceComponent = NewComponent[Appearance]()
