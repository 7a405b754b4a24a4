package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/entity"
)

// SpawnConfig places new lasers at the right edge of the field.
type SpawnConfig struct {
	FieldWidth  float64
	FieldHeight float64
	IntervalMs  float64
	GoodChance  float64
	Margin      float64
	GoodPrefab  string
	BadPrefab   string
}

// SpawnSystem emits lasers on a fixed wall-clock interval. The clock keeps
// ticking in every phase; spawns only take effect while the run is live.
type SpawnSystem struct {
	cfg     SpawnConfig
	rng     *rand.Rand
	script  *spawnScript
	accumMs float64
}

func NewSpawnSystem(cfg SpawnConfig, rng *rand.Rand) *SpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &SpawnSystem{cfg: cfg, rng: rng}
}

// SetScript installs a tengo placement script. An empty name clears it.
func (s *SpawnSystem) SetScript(name string) error {
	if name == "" {
		s.script = nil
		return nil
	}
	sc, err := loadSpawnScript(name)
	if err != nil {
		return err
	}
	s.script = sc
	return nil
}

// Advance feeds elapsed wall-clock time and fires one spawn per full interval.
func (s *SpawnSystem) Advance(w *ecs.World, elapsedMs float64) int {
	if s.cfg.IntervalMs <= 0 || elapsedMs <= 0 {
		return 0
	}
	s.accumMs += elapsedMs
	fired := 0
	for s.accumMs >= s.cfg.IntervalMs {
		s.accumMs -= s.cfg.IntervalMs
		if s.Spawn(w) {
			fired++
		}
	}
	return fired
}

// Spawn places a single laser. It reports whether one was created.
func (s *SpawnSystem) Spawn(w *ecs.World) bool {
	sess := currentSession(w)
	if !sess.Running() {
		return false
	}

	y := s.rng.Float64() * (s.cfg.FieldHeight - s.cfg.Margin)
	kind := s.rng.Float64()
	good := kind < s.cfg.GoodChance

	if s.script != nil {
		sy, sgood, err := s.script.place(spawnInputs{
			RandY:       y,
			RandKind:    kind,
			Score:       sess.Score,
			FieldHeight: s.cfg.FieldHeight,
			Margin:      s.cfg.Margin,
			GoodChance:  s.cfg.GoodChance,
		})
		if err != nil {
			log.Printf("spawn: script %s: %v", s.script.name, err)
		} else {
			y, good = sy, sgood
		}
	}

	prefab := s.cfg.BadPrefab
	if good {
		prefab = s.cfg.GoodPrefab
	}

	sess.Spawned++
	if _, err := entity.NewLaser(w, prefab, s.cfg.FieldWidth, y, sess.Spawned); err != nil {
		log.Printf("spawn: %v", err)
		return false
	}
	return true
}

// Reset clears the interval accumulator.
func (s *SpawnSystem) Reset() {
	s.accumMs = 0
}
