// Package session owns one run of the game: the ECS world, the per-frame
// system schedule, the spawner and the phase machine. Front-ends drive it
// through Advance and Update and read it back through Snapshot.
package session

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
	"github.com/milk9111/przemekrun/ecs/entity"
	"github.com/milk9111/przemekrun/ecs/system"
	"github.com/milk9111/przemekrun/prefabs"
)

var ErrPauseDisabled = errors.New("session: pause is not available in this variant")

type Options struct {
	Variant *prefabs.VariantSpec
	// Rand drives laser placement. Nil seeds from the clock.
	Rand *rand.Rand
	// SpawnScript overrides Variant.Spawn.Script when set.
	SpawnScript string
	Sink        system.CueSink
}

type Session struct {
	variant *prefabs.VariantSpec
	pending *prefabs.VariantSpec
	script  string

	world   *ecs.World
	sched   *ecs.Scheduler
	spawner *system.SpawnSystem
	audio   *system.AudioSystem
	rng     *rand.Rand

	sessionEntity ecs.Entity
	playerEntity  ecs.Entity
}

func New(opts Options) (*Session, error) {
	if opts.Variant == nil {
		return nil, fmt.Errorf("session: variant is required")
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		script: opts.SpawnScript,
		world:  ecs.NewWorld(),
		audio:  system.NewAudioSystem(opts.Sink),
		rng:    rng,
	}
	if err := s.configure(opts.Variant); err != nil {
		return nil, err
	}

	se, err := entity.NewSession(s.world)
	if err != nil {
		return nil, fmt.Errorf("session: create session entity: %w", err)
	}
	s.sessionEntity = se

	pe, err := entity.NewPlayer(s.world, s.variant.Player, s.variant.Field.Height)
	if err != nil {
		return nil, fmt.Errorf("session: create player: %w", err)
	}
	s.playerEntity = pe

	return s, nil
}

func (s *Session) configure(v *prefabs.VariantSpec) error {
	spawner := system.NewSpawnSystem(system.SpawnConfig{
		FieldWidth:  v.Field.Width,
		FieldHeight: v.Field.Height,
		IntervalMs:  v.Spawn.IntervalMs,
		GoodChance:  v.Spawn.GoodChance,
		Margin:      v.Spawn.Margin,
		GoodPrefab:  v.Lasers.Good,
		BadPrefab:   v.Lasers.Bad,
	}, s.rng)

	script := s.script
	if script == "" {
		script = v.Spawn.Script
	}
	if err := spawner.SetScript(script); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.variant = v
	s.spawner = spawner
	s.sched = ecs.NewScheduler(
		system.NewScoreSystem(),
		system.NewPlayerControllerSystem(v.Field.Height),
		system.NewHazardSystem(),
		system.NewInvulnerableSystem(),
		system.NewLifeSystem(),
	)
	return nil
}

// Variant returns the active variant spec.
func (s *Session) Variant() *prefabs.VariantSpec {
	return s.variant
}

// SetVariant queues a reloaded variant. It takes effect on the next Start or
// Restart so a run in progress keeps its geometry.
func (s *Session) SetVariant(v *prefabs.VariantSpec) {
	if v != nil {
		s.pending = v
	}
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) state() *component.Session {
	st, _ := ecs.Get(s.world, s.sessionEntity, component.SessionComponent.Kind())
	return st
}

func (s *Session) Phase() component.Phase {
	return s.state().Phase
}

// Start begins the first run.
func (s *Session) Start() error {
	return s.transition(component.ActionStart)
}

// Restart begins a fresh run after game over. The touch play control also
// uses it from the not-started screen.
func (s *Session) Restart() error {
	return s.transition(component.ActionRestart)
}

// Activate performs whichever of Start or Restart applies to the current
// phase, which is what the space bar and the play control do.
func (s *Session) Activate() error {
	if s.Phase() == component.PhaseNotStarted {
		return s.Start()
	}
	return s.Restart()
}

func (s *Session) TogglePause() error {
	if !s.variant.Controls.AllowPause {
		return ErrPauseDisabled
	}
	return s.transition(component.ActionTogglePause)
}

func (s *Session) transition(a component.PhaseAction) error {
	st := s.state()
	next, err := component.NextPhase(st.Phase, a)
	if err != nil {
		return err
	}

	switch a {
	case component.ActionStart, component.ActionRestart:
		if err := s.Reset(); err != nil {
			return err
		}
		system.EmitCue(s.world, component.CueMusicPlay)
	case component.ActionTogglePause:
		if next == component.PhasePaused {
			system.EmitCue(s.world, component.CueMusicPause)
		} else {
			system.EmitCue(s.world, component.CueMusicPlay)
		}
	}

	st = s.state()
	st.Phase = next
	return nil
}

// Reset reinitialises every piece of run state: score, difficulty, playback
// rate, lives, player position, invulnerability and lasers. The phase and the
// retry label are left alone. Calling it twice yields the same state.
func (s *Session) Reset() error {
	if s.pending != nil {
		if err := s.configure(s.pending); err != nil {
			log.Printf("session: reloaded variant rejected: %v", err)
		}
		s.pending = nil
	}

	for _, e := range ecs.Query(s.world, component.HazardComponent.Kind()) {
		ecs.DestroyEntity(s.world, e)
	}

	ecs.DestroyEntity(s.world, s.playerEntity)
	pe, err := entity.NewPlayer(s.world, s.variant.Player, s.variant.Field.Height)
	if err != nil {
		return fmt.Errorf("session: reset player: %w", err)
	}
	s.playerEntity = pe

	st := s.state()
	st.Score = 0
	st.Difficulty = 1
	st.PlaybackRate = 1
	st.FrameDeltaMs = 0
	st.Spawned = 0

	s.spawner.Reset()
	system.EmitCue(s.world, component.CueMusicStop)
	return nil
}

// SetInput records the directional intent for the next update.
func (s *Session) SetInput(up, down bool) {
	in, ok := ecs.Get(s.world, s.playerEntity, component.InputComponent.Kind())
	if !ok {
		return
	}
	in.Up = up
	in.Down = down
}

// Advance feeds wall-clock time to the spawner. It returns the number of
// lasers created.
func (s *Session) Advance(elapsedMs float64) int {
	return s.spawner.Advance(s.world, elapsedMs)
}

// Update runs one simulation step of deltaMs and then flushes audio cues.
// Negative deltas are treated as zero.
func (s *Session) Update(deltaMs float64) {
	if deltaMs < 0 {
		deltaMs = 0
	}
	st := s.state()
	st.FrameDeltaMs = deltaMs
	if st.Running() {
		s.sched.Update(s.world)
	}
	s.audio.Update(s.world)
}

// Frame is Advance followed by Update with the same elapsed time, the order a
// loop driver uses.
func (s *Session) Frame(elapsedMs float64) {
	s.Advance(elapsedMs)
	s.Update(elapsedMs)
}
