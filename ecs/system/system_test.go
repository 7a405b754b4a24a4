package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
	"github.com/milk9111/przemekrun/ecs/entity"
)

const testFieldHeight = 540

type fixture struct {
	w     *ecs.World
	sess  *component.Session
	pe    ecs.Entity
	sched *ecs.Scheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	w := ecs.NewWorld()
	se, err := entity.NewSession(w)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	sess, _ := ecs.Get(w, se, component.SessionComponent.Kind())
	sess.Phase = component.PhaseRunning

	pe, err := entity.NewPlayer(w, "player.yaml", testFieldHeight)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	sched := ecs.NewScheduler()
	sched.Add(NewScoreSystem())
	sched.Add(NewPlayerControllerSystem(testFieldHeight))
	sched.Add(NewHazardSystem())
	sched.Add(NewInvulnerableSystem())
	sched.Add(NewLifeSystem())

	return &fixture{w: w, sess: sess, pe: pe, sched: sched}
}

func (f *fixture) step(deltaMs float64) {
	f.sess.FrameDeltaMs = deltaMs
	f.sched.Update(f.w)
}

func (f *fixture) playerTransform(t *testing.T) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(f.w, f.pe, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("player transform missing")
	}
	return tr
}

func (f *fixture) health(t *testing.T) *component.Health {
	t.Helper()
	h, ok := ecs.Get(f.w, f.pe, component.HealthComponent.Kind())
	if !ok {
		t.Fatalf("player health missing")
	}
	return h
}

// injectHazard places a hazard directly over the player with no speed.
func (f *fixture) injectHazard(t *testing.T, good bool, seq uint64) ecs.Entity {
	t.Helper()
	pt := f.playerTransform(t)
	e := ecs.CreateEntity(f.w)
	_ = ecs.Add(f.w, e, component.HazardComponent.Kind(), &component.Hazard{Good: good, Seq: seq})
	_ = ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{X: pt.X, Y: pt.Y})
	_ = ecs.Add(f.w, e, component.ColliderComponent.Kind(), &component.Collider{Width: 48, Height: 48})
	return e
}

func cues(w *ecs.World) []component.Cue {
	var out []component.Cue
	for _, ev := range w.Events().Drain() {
		if c, ok := ev.Data.(component.Cue); ok {
			out = append(out, c)
		}
	}
	return out
}

func TestHarmfulHitScenario(t *testing.T) {
	f := newFixture(t)
	hz := f.injectHazard(t, false, 1)

	f.step(16)

	if got := f.health(t).Current; got != 2 {
		t.Fatalf("expected 2 lives after hit, got %d", got)
	}
	inv, ok := ecs.Get(f.w, f.pe, component.InvulnerableComponent.Kind())
	if !ok {
		t.Fatalf("expected player to be invulnerable")
	}
	if inv.RemainingMs != InvulnerabilityMs {
		t.Fatalf("expected timer %v, got %v", InvulnerabilityMs, inv.RemainingMs)
	}
	if ecs.IsAlive(f.w, hz) {
		t.Fatalf("expected hazard removed")
	}
	if got := cues(f.w); len(got) != 1 || got[0] != component.CueHit {
		t.Fatalf("expected a single hit cue, got %v", got)
	}
}

func TestLongFrameScoresWithoutSideEffects(t *testing.T) {
	f := newFixture(t)
	before := *f.playerTransform(t)

	f.step(100000)

	if f.sess.Score != 1000 {
		t.Fatalf("expected score 1000, got %v", f.sess.Score)
	}
	if f.sess.Difficulty != 3 {
		t.Fatalf("expected difficulty 3, got %v", f.sess.Difficulty)
	}
	if f.sess.PlaybackRate != 1.5 {
		t.Fatalf("expected playback rate capped at 1.5, got %v", f.sess.PlaybackRate)
	}
	if *f.playerTransform(t) != before {
		t.Fatalf("player moved without input")
	}
	if f.sess.Phase != component.PhaseRunning {
		t.Fatalf("expected phase running, got %v", f.sess.Phase)
	}
}

func TestScoreMonotonicAndDifficultyAtLeastOne(t *testing.T) {
	f := newFixture(t)
	prev := f.sess.Score
	for _, d := range []float64{0, 0, 16, 16.7, 33, 0, 250, 1} {
		f.step(d)
		if f.sess.Score < prev {
			t.Fatalf("score decreased from %v to %v", prev, f.sess.Score)
		}
		if f.sess.Difficulty < 1 {
			t.Fatalf("difficulty below 1: %v", f.sess.Difficulty)
		}
		prev = f.sess.Score
	}
}

func TestPlayerStaysInField(t *testing.T) {
	f := newFixture(t)
	in, _ := ecs.Get(f.w, f.pe, component.InputComponent.Kind())

	t.Run("up", func(t *testing.T) {
		in.Up, in.Down = true, false
		for i := 0; i < 200; i++ {
			f.step(16)
			if y := f.playerTransform(t).Y; y < 0 || y > testFieldHeight-64 {
				t.Fatalf("player left the field: y=%v", y)
			}
		}
		if y := f.playerTransform(t).Y; y != 0 {
			t.Fatalf("expected player pinned at top, got %v", y)
		}
	})

	t.Run("down", func(t *testing.T) {
		in.Up, in.Down = false, true
		for i := 0; i < 200; i++ {
			f.step(16)
		}
		if y := f.playerTransform(t).Y; y != testFieldHeight-64 {
			t.Fatalf("expected player pinned at bottom, got %v", y)
		}
	})

	t.Run("both cancel", func(t *testing.T) {
		in.Up, in.Down = true, true
		before := f.playerTransform(t).Y
		f.step(16)
		if y := f.playerTransform(t).Y; y != before {
			t.Fatalf("expected no net movement, got %v -> %v", before, y)
		}
	})
}

func TestGoodHazardAtFullLives(t *testing.T) {
	f := newFixture(t)
	f.health(t).Current = 5
	hz := f.injectHazard(t, true, 1)

	f.step(16)

	if got := f.health(t).Current; got != 5 {
		t.Fatalf("expected lives to stay at max, got %d", got)
	}
	if ecs.IsAlive(f.w, hz) {
		t.Fatalf("expected hazard removed")
	}
	if got := cues(f.w); len(got) != 0 {
		t.Fatalf("expected no heal cue at full lives, got %v", got)
	}
}

func TestGoodHazardHeals(t *testing.T) {
	f := newFixture(t)
	f.injectHazard(t, true, 1)

	f.step(16)

	if got := f.health(t).Current; got != 4 {
		t.Fatalf("expected 4 lives, got %d", got)
	}
	if got := cues(f.w); len(got) != 1 || got[0] != component.CueHeal {
		t.Fatalf("expected heal cue, got %v", got)
	}
}

func TestHarmfulHazardWhileInvulnerable(t *testing.T) {
	f := newFixture(t)
	_ = ecs.Add(f.w, f.pe, component.InvulnerableComponent.Kind(), &component.Invulnerable{RemainingMs: 300})
	hz := f.injectHazard(t, false, 1)

	f.step(16)

	if got := f.health(t).Current; got != 3 {
		t.Fatalf("expected lives unchanged, got %d", got)
	}
	inv, ok := ecs.Get(f.w, f.pe, component.InvulnerableComponent.Kind())
	if !ok || inv.RemainingMs != 284 {
		t.Fatalf("expected timer to keep counting down to 284, got %+v", inv)
	}
	if ecs.IsAlive(f.w, hz) {
		t.Fatalf("expected hazard removed")
	}
}

func TestHarmfulHazardOnExpiringFrame(t *testing.T) {
	f := newFixture(t)
	_ = ecs.Add(f.w, f.pe, component.InvulnerableComponent.Kind(), &component.Invulnerable{RemainingMs: 10})
	hz := f.injectHazard(t, false, 1)

	f.step(16)

	if got := f.health(t).Current; got != 3 {
		t.Fatalf("expected the expiring window to block the hit, lives = %d", got)
	}
	if ecs.IsAlive(f.w, hz) {
		t.Fatalf("expected hazard removed")
	}
	if ecs.Has(f.w, f.pe, component.InvulnerableComponent.Kind()) {
		t.Fatalf("expected invulnerability cleared after the frame")
	}
	if got := cues(f.w); len(got) != 0 {
		t.Fatalf("expected no cues, got %v", got)
	}

	// The next hit lands and opens a full window.
	f.injectHazard(t, false, 2)
	f.step(16)
	if got := f.health(t).Current; got != 2 {
		t.Fatalf("expected lives 2 after the next hit, got %d", got)
	}
	inv, ok := ecs.Get(f.w, f.pe, component.InvulnerableComponent.Kind())
	if !ok || inv.RemainingMs != InvulnerabilityMs {
		t.Fatalf("expected a full window after the hit, got %+v", inv)
	}
	f.step(16)
	if inv, _ := ecs.Get(f.w, f.pe, component.InvulnerableComponent.Kind()); inv == nil || inv.RemainingMs != 484 {
		t.Fatalf("expected the window to count down on the following frame, got %+v", inv)
	}
}

func TestInvulnerabilityExpires(t *testing.T) {
	f := newFixture(t)
	_ = ecs.Add(f.w, f.pe, component.InvulnerableComponent.Kind(), &component.Invulnerable{RemainingMs: 20})

	f.step(16)
	if !ecs.Has(f.w, f.pe, component.InvulnerableComponent.Kind()) {
		t.Fatalf("expected invulnerability after 16ms")
	}
	f.step(4)
	if ecs.Has(f.w, f.pe, component.InvulnerableComponent.Kind()) {
		t.Fatalf("expected invulnerability cleared at 0ms remaining")
	}
}

func TestNewestHazardResolvedFirst(t *testing.T) {
	f := newFixture(t)
	f.health(t).Current = 5
	// The older good laser would be wasted at full lives if it went first.
	f.injectHazard(t, true, 1)
	f.injectHazard(t, false, 2)

	f.step(16)

	if got := f.health(t).Current; got != 5 {
		t.Fatalf("expected hit then heal to leave 5 lives, got %d", got)
	}
	got := cues(f.w)
	if len(got) != 2 || got[0] != component.CueHit || got[1] != component.CueHeal {
		t.Fatalf("expected hit then heal cues, got %v", got)
	}
}

func TestDeathWithinSameUpdate(t *testing.T) {
	f := newFixture(t)
	f.health(t).Current = 1
	f.sess.Score = 600
	f.injectHazard(t, false, 1)

	f.step(16)

	if got := f.health(t).Current; got != 0 {
		t.Fatalf("expected 0 lives, got %d", got)
	}
	if f.sess.Phase != component.PhaseOver {
		t.Fatalf("expected phase over, got %v", f.sess.Phase)
	}
	if f.sess.PlaybackRate != 1 || !f.sess.Retry {
		t.Fatalf("expected rate reset and retry label, got %+v", f.sess)
	}
	got := cues(f.w)
	want := []component.Cue{component.CueHit, component.CueMusicStop, component.CueDeath}
	if len(got) != len(want) {
		t.Fatalf("expected cues %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected cues %v, got %v", want, got)
		}
	}

	scoreAtDeath := f.sess.Score
	f.step(1000)
	if f.sess.Score != scoreAtDeath {
		t.Fatalf("score advanced after game over")
	}
}

func TestLivesStayInRange(t *testing.T) {
	f := newFixture(t)
	rng := rand.New(rand.NewSource(42))
	seq := uint64(0)
	for i := 0; i < 500 && f.sess.Phase == component.PhaseRunning; i++ {
		seq++
		f.injectHazard(t, rng.Intn(2) == 0, seq)
		f.step(float64(rng.Intn(400)))
		if h := f.health(t); h.Current < 0 || h.Current > h.Max {
			t.Fatalf("lives out of range: %+v", h)
		}
	}
}

func TestOffscreenHazardRemoved(t *testing.T) {
	f := newFixture(t)
	e := ecs.CreateEntity(f.w)
	_ = ecs.Add(f.w, e, component.HazardComponent.Kind(), &component.Hazard{BaseSpeed: 4, Seq: 1})
	_ = ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{X: -45, Y: 0})
	_ = ecs.Add(f.w, e, component.ColliderComponent.Kind(), &component.Collider{Width: 48, Height: 48})

	f.step(16)
	if ecs.IsAlive(f.w, e) {
		t.Fatalf("expected hazard past the left edge to be removed")
	}
}

func TestHazardSpeedScalesWithDifficulty(t *testing.T) {
	f := newFixture(t)
	f.sess.Score = 500
	e := ecs.CreateEntity(f.w)
	_ = ecs.Add(f.w, e, component.HazardComponent.Kind(), &component.Hazard{BaseSpeed: 4, Seq: 1})
	_ = ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{X: 900, Y: 500})
	_ = ecs.Add(f.w, e, component.ColliderComponent.Kind(), &component.Collider{Width: 48, Height: 48})

	f.step(0)

	tr, _ := ecs.Get(f.w, e, component.TransformComponent.Kind())
	if tr.X != 892 {
		t.Fatalf("expected x 892 at difficulty 2, got %v", tr.X)
	}
}

func TestSystemsIdleUnlessRunning(t *testing.T) {
	for _, phase := range []component.Phase{component.PhaseNotStarted, component.PhasePaused, component.PhaseOver} {
		t.Run(phase.String(), func(t *testing.T) {
			f := newFixture(t)
			f.sess.Phase = phase
			hz := f.injectHazard(t, false, 1)

			f.step(500)

			if f.sess.Score != 0 || f.health(t).Current != 3 || !ecs.IsAlive(f.w, hz) {
				t.Fatalf("expected no simulation in phase %v", phase)
			}
		})
	}
}

type recordingSink struct {
	cues  []component.Cue
	rates []float64
}

func (r *recordingSink) Cue(c component.Cue)          { r.cues = append(r.cues, c) }
func (r *recordingSink) SetPlaybackRate(rate float64) { r.rates = append(r.rates, rate) }

func TestAudioSystemForwardsCues(t *testing.T) {
	f := newFixture(t)
	sink := &recordingSink{}
	audio := NewAudioSystem(sink)

	EmitCue(f.w, component.CueHeal)
	f.w.Events().Push(ecs.Event{Type: "other", Data: component.CueHit})
	EmitCue(f.w, component.CueDeath)
	f.sess.PlaybackRate = 1.25

	audio.Update(f.w)

	if len(sink.cues) != 2 || sink.cues[0] != component.CueHeal || sink.cues[1] != component.CueDeath {
		t.Fatalf("unexpected cues %v", sink.cues)
	}
	if len(sink.rates) != 1 || sink.rates[0] != 1.25 {
		t.Fatalf("unexpected rates %v", sink.rates)
	}
	if f.w.Events().Len() != 0 {
		t.Fatalf("expected event queue drained")
	}
}
