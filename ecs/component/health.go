package component

// Health is the plain hit-point pool of enemies that cannot be possessed.
type Health struct {
	Current float64
	Max     float64
}

// Damage subtracts amount and reports whether the pool is exhausted.
func (h *Health) Damage(amount float64) bool {
	if amount > 0 {
		h.Current -= amount
	}
	return h.Current <= 0
}

var HealthComponent = NewComponent[Health]()
