package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/przemekrun/input"
)

// HoldWindow is how long a direction stays held after its last key event.
// Terminals report key repeats but never key releases.
const HoldWindow = 150 * time.Millisecond

// KeyTracker folds terminal key events into per-frame input.
type KeyTracker struct {
	lastUp   time.Time
	lastDown time.Time
	space    bool
	pause    bool
	quit     bool

	mouseHeld bool
	mouseJust bool
	mouseX    int
	mouseY    int
}

// Handle records one tcell event.
func (k *KeyTracker) Handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k.handleKey(ev, now)
	case *tcell.EventMouse:
		x, y := ev.Position()
		held := ev.Buttons()&tcell.Button1 != 0
		if held && !k.mouseHeld {
			k.mouseJust = true
		}
		k.mouseHeld = held
		k.mouseX, k.mouseY = x, y
	}
}

func (k *KeyTracker) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyUp:
		k.lastUp = now
	case tcell.KeyDown:
		k.lastDown = now
	case tcell.KeyCtrlC, tcell.KeyEscape:
		k.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			k.lastUp = now
		case 's', 'S':
			k.lastDown = now
		case ' ':
			k.space = true
		case 'p', 'P':
			k.pause = true
		case 'q', 'Q':
			k.quit = true
		}
	}
}

// Quit reports whether the player asked to leave.
func (k *KeyTracker) Quit() bool {
	return k.quit
}

// Frame returns this frame's keys and pointers and clears one-shot presses.
func (k *KeyTracker) Frame(now time.Time, vp Viewport) (input.Keys, []input.Pointer) {
	keys := input.Keys{
		Up:    !k.lastUp.IsZero() && now.Sub(k.lastUp) <= HoldWindow,
		Down:  !k.lastDown.IsZero() && now.Sub(k.lastDown) <= HoldWindow,
		Space: k.space,
		Pause: k.pause,
	}
	k.space, k.pause = false, false

	var pointers []input.Pointer
	if k.mouseHeld || k.mouseJust {
		x, y := vp.Field(k.mouseX, k.mouseY)
		pointers = append(pointers, input.Pointer{X: x, Y: y, JustPressed: k.mouseJust})
	}
	k.mouseJust = false
	return keys, pointers
}
