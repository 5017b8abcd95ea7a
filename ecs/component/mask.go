package component

// Mask is the player's default avatar. While a host is possessed the mask is
// inactive and takes no input.
type Mask struct {
	Active         bool
	ControlEnabled bool

	MoveSpeed        float64
	InteractionRange float64
	// EjectOffset is how far ahead of the host the mask reappears.
	EjectOffset float64
	// EjectImpulse is the upward speed given on reappearing.
	EjectImpulse float64
	Gravity      float64

	// VZ is the current vertical speed.
	VZ float64
}

var MaskComponent = NewComponent[Mask]()
