package component

// Cue identifies a one-shot sound or a music command.
type Cue string

const (
	CueHeal  Cue = "heal"
	CueHit   Cue = "hit"
	CueDeath Cue = "death"

	// Music commands share the cue channel so that audio is driven from
	// one queue in frame order.
	CueMusicPlay  Cue = "music_play"
	CueMusicPause Cue = "music_pause"
	CueMusicStop  Cue = "music_stop"
)

// CueEventType is the ecs.Event type carrying a Cue in Data.
const CueEventType = "cue"
