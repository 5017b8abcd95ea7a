package component

// TTL is a time-to-live in seconds. TTLSystem destroys the entity once it
// runs out.
type TTL struct {
	Seconds float64
}

var TTLComponent = NewComponent[TTL]()
