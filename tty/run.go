// Package tty runs the game in a terminal through tcell, locally or over an
// SSH channel.
package tty

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/przemekrun/input"
	"github.com/milk9111/przemekrun/render"
	"github.com/milk9111/przemekrun/session"
)

const frameInterval = 16 * time.Millisecond

// Run drives sess on screen until ctx ends or the player quits. The caller
// owns the screen and must Init it before and Fini it after.
func Run(ctx context.Context, screen tcell.Screen, sess *session.Session) error {
	screen.EnableMouse()
	screen.HideCursor()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	renderer := NewRenderer(screen)
	var keys KeyTracker
	var last time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			keys.Handle(ev, time.Now())
			if keys.Quit() {
				return nil
			}

		case now := <-ticker.C:
			var deltaMs float64
			if !last.IsZero() {
				deltaMs = float64(now.Sub(last)) / float64(time.Millisecond)
			}
			last = now

			v := sess.Variant()
			vp := renderer.Viewport(v.Field.Width, v.Field.Height)
			k, pointers := keys.Frame(now, vp)
			Apply(sess, input.NewScheme(v).Resolve(sess.Phase(), k, pointers))
			sess.Frame(deltaMs)

			renderer.Draw(vp, render.Plan(sess.Snapshot(), v, now.UnixMilli()))
		}
	}
}

// Apply hands an intent to the session. Rejected transitions are ignored.
func Apply(sess *session.Session, in input.Intent) {
	if in.Activate {
		_ = sess.Activate()
	}
	if in.TogglePause {
		_ = sess.TogglePause()
	}
	sess.SetInput(in.Up, in.Down)
}
