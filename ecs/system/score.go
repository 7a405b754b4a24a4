package system

import (
	"math"

	"github.com/milk9111/przemekrun/ecs"
)

const (
	scorePerMs       = 0.01
	scorePerLevel    = 500.0
	scorePerRateStep = 1000.0
	maxPlaybackRate  = 1.5
)

// ScoreSystem accrues time-based score and derives difficulty and music
// playback rate from it.
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	sess := currentSession(w)
	if !sess.Running() {
		return
	}

	sess.Score += sess.FrameDeltaMs * scorePerMs
	sess.Difficulty = 1 + sess.Score/scorePerLevel
	sess.PlaybackRate = math.Min(1+sess.Score/scorePerRateStep, maxPlaybackRate)
}
