package component

// Session is the singleton score, difficulty and phase record.
type Session struct {
	Phase        Phase
	Score        float64
	Difficulty   float64
	PlaybackRate float64
	// FrameDeltaMs is the elapsed time handed to the current update.
	FrameDeltaMs float64
	// Spawned counts lasers created since the last reset and feeds Hazard.Seq.
	Spawned uint64
	// Retry switches the play control label after the first death.
	Retry bool
}

// Running reports whether gameplay systems should apply their effects.
func (s *Session) Running() bool {
	return s != nil && s.Phase == PhaseRunning
}

var SessionComponent = NewComponent[Session]()
