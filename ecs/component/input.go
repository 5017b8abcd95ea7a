package component

// Input stores the intents polled for the current frame.
type Input struct {
	MoveX           float64
	MoveY           float64
	FirePressed     bool
	EjectPressed    bool
	InteractPressed bool
}

var InputComponent = NewComponent[Input]()
