package component

// Hazard marks a scrolling laser. Good lasers restore a life, bad ones take
// one. Seq is the spawn order; newer lasers are resolved first.
type Hazard struct {
	Good      bool
	BaseSpeed float64
	Seq       uint64
}

var HazardComponent = NewComponent[Hazard]()
