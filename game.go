package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/przemekrun/assets"
	"github.com/milk9111/przemekrun/ecs/component"
	"github.com/milk9111/przemekrun/input"
	"github.com/milk9111/przemekrun/prefabs"
	"github.com/milk9111/przemekrun/render"
	"github.com/milk9111/przemekrun/render/canvas"
	"github.com/milk9111/przemekrun/session"
)

type Game struct {
	frames int
	debug  bool

	session *session.Session
	poller  Poller
	loader  *assets.Loader
	canvas  *canvas.Canvas
	sound   *Sound
	watcher *prefabs.Watcher

	pauseUI *ebitenui.UI
	menuUI  *MenuUI

	last time.Time
}

func NewGame(sess *session.Session, loader *assets.Loader, sound *Sound, watcher *prefabs.Watcher, debug bool) (*Game, error) {
	cv, err := canvas.New(loader)
	if err != nil {
		return nil, fmt.Errorf("game: load fonts: %w", err)
	}
	g := &Game{
		debug:   debug,
		session: sess,
		loader:  loader,
		canvas:  cv,
		sound:   sound,
		watcher: watcher,
	}
	g.pauseUI = NewPauseUI(g)
	g.menuUI = NewMenuUI(g)
	return g, nil
}

func (g *Game) Update() error {
	// Nothing runs until every sprite is decoded.
	if !g.loader.Ready() {
		return nil
	}
	g.frames++
	g.reloadSpecs()

	now := time.Now()
	var deltaMs float64
	if !g.last.IsZero() {
		deltaMs = float64(now.Sub(g.last)) / float64(time.Millisecond)
	}
	g.last = now

	scheme := input.NewScheme(g.session.Variant())
	intent := scheme.Resolve(g.session.Phase(), g.poller.Keys(), g.poller.Pointers())
	if intent.Activate {
		g.activate()
	}
	if intent.TogglePause {
		g.togglePause()
	}
	g.session.SetInput(intent.Up, intent.Down)

	switch g.session.Phase() {
	case component.PhasePaused:
		g.pauseUI.Update()
	case component.PhaseNotStarted, component.PhaseOver:
		if g.menuUI.Enabled() {
			g.menuUI.Update(g.session.Snapshot().PlayLabel)
		}
	}

	g.session.Frame(deltaMs)
	return nil
}

func (g *Game) activate() {
	if err := g.session.Activate(); err != nil {
		log.Printf("game: %v", err)
	}
}

func (g *Game) togglePause() {
	if err := g.session.TogglePause(); err != nil {
		log.Printf("game: %v", err)
	}
}

func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			current := g.session.Variant().Name
			if variant, isVariant := prefabs.IsVariantFile(name); isVariant && variant != current {
				continue
			}
			v, err := prefabs.LoadVariant(current)
			if err != nil {
				log.Printf("reload %s: %v", name, err)
				continue
			}
			g.session.SetVariant(v)
			log.Printf("reloaded %s, applies on next start", name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.loader.Ready() {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}

	snap := g.session.Snapshot()
	g.canvas.Draw(screen, render.Plan(snap, g.session.Variant(), time.Now().UnixMilli()))

	switch snap.Phase {
	case component.PhasePaused:
		g.pauseUI.Draw(screen)
	case component.PhaseNotStarted, component.PhaseOver:
		if g.menuUI.Enabled() {
			g.menuUI.Draw(screen)
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Lasers: %d    %s", g.frames, ebiten.ActualFPS(), len(snap.Hazards), g.sound.Status()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	v := g.session.Variant()
	return v.Field.Width, v.Field.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
