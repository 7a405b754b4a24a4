package component

// Player holds per-frame movement tuning. Speed is applied once per frame,
// not scaled by elapsed time.
type Player struct {
	Speed float64
}

var PlayerComponent = NewComponent[Player]()
