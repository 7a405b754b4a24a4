package component

// Invulnerable marks an entity as temporarily immune to harmful hazards.
// The invulnerability system counts RemainingMs down by the frame delta and
// removes the component once it reaches zero. Fresh is set on the frame the
// hit lands so that frame does not count against the window.
type Invulnerable struct {
	RemainingMs float64
	Fresh       bool
}

var InvulnerableComponent = NewComponent[Invulnerable]()
