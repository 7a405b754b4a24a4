package component

// Health is the life counter. Current is kept within [0, Max] by the guards
// in the collision response, never by clamping afterwards.
type Health struct {
	Current int
	Max     int
}

var HealthComponent = NewComponent[Health]()
