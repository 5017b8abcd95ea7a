package component

const (
	AnimIdle          = "idle"
	AnimWalk          = "walk"
	AnimWalkPossessed = "walk_possessed"
	AnimAttack        = "attack"
)

// Animator receives fire-and-forget animation signals. The only thing read
// back is whether the attack clip is playing.
type Animator struct {
	Bools map[string]bool
	// Fired holds the triggers set since the last Advance.
	Fired []string

	AttackDuration  float64
	AttackRemaining float64
}

func (a *Animator) SetBool(name string, v bool) {
	if a.Bools == nil {
		a.Bools = make(map[string]bool)
	}
	a.Bools[name] = v
}

func (a *Animator) SetTrigger(name string) {
	a.Fired = append(a.Fired, name)
	if name == AnimAttack && a.AttackDuration > 0 {
		a.AttackRemaining = a.AttackDuration
	}
}

func (a *Animator) PlayingAttack() bool {
	return a.AttackRemaining > 0
}

// Advance runs the clip clock and clears fired triggers.
func (a *Animator) Advance(dt float64) {
	a.Fired = a.Fired[:0]
	if a.AttackRemaining > 0 {
		a.AttackRemaining = max(a.AttackRemaining-dt, 0)
	}
}

var AnimatorComponent = NewComponent[Animator]()
