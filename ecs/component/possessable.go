package component

const (
	// DefaultStabilityFloor is the lowest value the stability ceiling can be
	// worn down to.
	DefaultStabilityFloor = 10.0
	// DefaultEnlightenmentThreshold is the fraction of the original maximum
	// at or below which a host counts as enlightened.
	DefaultEnlightenmentThreshold = 0.2

	// stabilityEpsilon absorbs rounding accumulated over many small Decay
	// steps at frame rate.
	stabilityEpsilon = 1e-9
)

// Stability is the depletable resource that bounds a possession.
//
// Current is reset to EffectiveMax when possession begins and to Max after a
// non-lethal release. EffectiveMax is worn down by damage taken while not
// possessed and never recovers; it stops at Floor.
type Stability struct {
	Max          float64
	EffectiveMax float64
	Current      float64
	DecayRate    float64
	Floor        float64
	Threshold    float64
}

func NewStability(maxStability, decayRate float64) Stability {
	return Stability{
		Max:          maxStability,
		EffectiveMax: maxStability,
		Current:      maxStability,
		DecayRate:    decayRate,
		Floor:        DefaultStabilityFloor,
		Threshold:    DefaultEnlightenmentThreshold,
	}
}

// Decay drains DecayRate*dt. Only meaningful while possessed.
func (s *Stability) Decay(dt float64) {
	if dt <= 0 {
		return
	}
	s.Current -= s.DecayRate * dt
}

// ApplyDamage subtracts from Current while possessed. Otherwise it lowers the
// ceiling permanently and reports how far it dropped.
func (s *Stability) ApplyDamage(amount float64, possessed bool) float64 {
	if amount <= 0 {
		return 0
	}
	if possessed {
		s.Current -= amount
		return 0
	}

	before := s.EffectiveMax
	floor := min(s.Floor, before)
	s.EffectiveMax = max(before-amount, floor)
	if s.Current > s.EffectiveMax {
		s.Current = s.EffectiveMax
	}
	return before - s.EffectiveMax
}

// BeginPossession refills to the current ceiling.
func (s *Stability) BeginPossession() {
	s.Current = s.EffectiveMax
}

// Restore grants a fresh full bar against the original maximum.
func (s *Stability) Restore() {
	s.Current = s.Max
}

// Enlightened measures drain against the original Max, ignoring degradation.
func (s *Stability) Enlightened() bool {
	if s.Max <= 0 {
		return false
	}
	return s.Current/s.Max <= s.Threshold+stabilityEpsilon
}

func (s *Stability) Depleted() bool {
	return s.Current <= stabilityEpsilon
}

// Fraction returns Current/Max clamped to [0, 1], for bars.
func (s *Stability) Fraction() float64 {
	if s.Max <= 0 {
		return 0
	}
	return min(max(s.Current/s.Max, 0), 1)
}

// Movement selects how player input drives a possessed body.
type Movement uint8

const (
	// MovementDirect maps the move intent straight to translation.
	MovementDirect Movement = iota
	// MovementResistant adds lateral drift that fights the player.
	MovementResistant
)

func (m Movement) String() string {
	if m == MovementResistant {
		return "resistant"
	}
	return "direct"
}

// Possessable marks an enemy the mask can take over.
type Possessable struct {
	Stability Stability
	Movement  Movement
	// MoveSpeed is the translation speed while possessed.
	MoveSpeed float64
	// Dead is set once when the host is freed; teardown never runs twice.
	Dead bool
}

var PossessableComponent = NewComponent[Possessable]()
