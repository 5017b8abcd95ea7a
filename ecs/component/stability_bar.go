package component

// StabilityBar is the on-screen resource bar shown while a host is possessed.
type StabilityBar struct {
	Visible bool
	Host    uint64
	Value   float64
	Max     float64
}

var StabilityBarComponent = NewComponent[StabilityBar]()
