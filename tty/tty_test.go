package tty

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/przemekrun/assets"
	"github.com/milk9111/przemekrun/common"
	"github.com/milk9111/przemekrun/render"
)

func TestViewportCell(t *testing.T) {
	vp := Viewport{Cols: 96, Rows: 27, FieldW: 960, FieldH: 540}

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 0},
		{"middle", 480, 270, 48, 13},
		{"far corner", 959.9, 539.9, 95, 26},
		{"past edge clamps", 2000, 2000, 95, 26},
		{"negative clamps", -50, -50, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := vp.Cell(tt.x, tt.y)
			if cx != tt.cx || cy != tt.cy {
				t.Fatalf("Cell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
			}
		})
	}
}

func TestViewportCellRect(t *testing.T) {
	vp := Viewport{Cols: 96, Rows: 27, FieldW: 960, FieldH: 540}

	x0, y0, x1, y1, ok := vp.CellRect(common.Rect{X: 50, Y: 238, W: 64, H: 64})
	if !ok {
		t.Fatalf("expected player rect on grid")
	}
	if x0 != 5 || x1 != 11 || y0 != 11 || y1 != 15 {
		t.Fatalf("span = (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}

	// Exactly one cell wide must not bleed into the next cell.
	x0, _, x1, _, _ = vp.CellRect(common.Rect{X: 0, Y: 0, W: 10, H: 20})
	if x0 != 0 || x1 != 0 {
		t.Fatalf("one-cell rect spans %d..%d", x0, x1)
	}

	if _, _, _, _, ok := vp.CellRect(common.Rect{X: -100, Y: 0, W: 48, H: 48}); ok {
		t.Fatalf("rect left of the field should be off grid")
	}
	if _, _, _, _, ok := vp.CellRect(common.Rect{X: 960, Y: 0, W: 48, H: 48}); ok {
		t.Fatalf("rect at the right edge should be off grid")
	}
}

func TestViewportFieldRoundTrip(t *testing.T) {
	vp := Viewport{Cols: 80, Rows: 24, FieldW: 1920, FieldH: 1080}
	for cx := 0; cx < vp.Cols; cx += 7 {
		for cy := 0; cy < vp.Rows; cy += 5 {
			x, y := vp.Field(cx, cy)
			gx, gy := vp.Cell(x, y)
			if gx != cx || gy != cy {
				t.Fatalf("Field(%d,%d) -> Cell = (%d,%d)", cx, cy, gx, gy)
			}
		}
	}
}

func TestKeyTrackerHold(t *testing.T) {
	var k KeyTracker
	vp := Viewport{Cols: 80, Rows: 24, FieldW: 960, FieldH: 540}
	start := time.Unix(100, 0)

	k.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), start)

	keys, _ := k.Frame(start.Add(100*time.Millisecond), vp)
	if !keys.Up || keys.Down {
		t.Fatalf("keys = %+v, want up held", keys)
	}
	keys, _ = k.Frame(start.Add(HoldWindow), vp)
	if !keys.Up {
		t.Fatalf("up should still be held at the window edge")
	}
	keys, _ = k.Frame(start.Add(HoldWindow+time.Millisecond), vp)
	if keys.Up {
		t.Fatalf("up should be released after the hold window")
	}

	var fresh KeyTracker
	if keys, _ := fresh.Frame(time.Time{}, vp); keys.Up || keys.Down {
		t.Fatalf("fresh tracker reports held keys: %+v", keys)
	}
}

func TestKeyTrackerOneShots(t *testing.T) {
	var k KeyTracker
	vp := Viewport{Cols: 80, Rows: 24, FieldW: 960, FieldH: 540}
	now := time.Unix(100, 0)

	k.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now)
	k.Handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), now)
	k.Handle(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), now)

	keys, _ := k.Frame(now, vp)
	if !keys.Space || !keys.Pause || !keys.Down {
		t.Fatalf("keys = %+v", keys)
	}
	keys, _ = k.Frame(now, vp)
	if keys.Space || keys.Pause {
		t.Fatalf("one-shot keys repeated: %+v", keys)
	}
	if k.Quit() {
		t.Fatalf("unexpected quit")
	}

	k.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), now)
	if !k.Quit() {
		t.Fatalf("ctrl-c should quit")
	}
}

func TestKeyTrackerMouse(t *testing.T) {
	var k KeyTracker
	vp := Viewport{Cols: 96, Rows: 27, FieldW: 960, FieldH: 540}
	now := time.Unix(100, 0)

	k.Handle(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), now)
	_, ptrs := k.Frame(now, vp)
	if len(ptrs) != 1 || !ptrs[0].JustPressed {
		t.Fatalf("pointers = %+v, want one fresh press", ptrs)
	}
	if ptrs[0].X != 105 || ptrs[0].Y != 110 {
		t.Fatalf("pointer at (%v, %v), want (105, 110)", ptrs[0].X, ptrs[0].Y)
	}

	_, ptrs = k.Frame(now, vp)
	if len(ptrs) != 1 || ptrs[0].JustPressed {
		t.Fatalf("held pointer = %+v", ptrs)
	}

	k.Handle(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone), now)
	if _, ptrs = k.Frame(now, vp); len(ptrs) != 0 {
		t.Fatalf("released pointer still reported: %+v", ptrs)
	}
}

func TestRendererDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(96, 27)

	r := NewRenderer(screen)
	vp := r.Viewport(960, 540)
	if vp.Cols != 96 || vp.Rows != 27 {
		t.Fatalf("viewport = %+v", vp)
	}

	r.Draw(vp, []render.Command{
		{Kind: render.KindSprite, Sprite: assets.SpritePlayer, Rect: common.Rect{X: 50, Y: 238, W: 64, H: 64}},
		{Kind: render.KindSprite, Sprite: assets.SpriteHeart, Rect: common.Rect{X: 10, Y: 10, W: 32, H: 32}},
		{Kind: render.KindText, Text: "Score: 12", X: 820, Y: 30},
		{Kind: render.KindText, Text: "GO", X: 480, Y: 270, Align: render.AlignCenter},
	})

	cell := func(x, y int) rune {
		ch, _, _, _ := screen.GetContent(x, y)
		return ch
	}
	if got := cell(5, 11); got != '█' {
		t.Fatalf("player cell = %q", got)
	}
	if got := cell(1, 0); got != '♥' {
		t.Fatalf("heart cell = %q", got)
	}
	if got := cell(82, 1); got != 'S' {
		t.Fatalf("score cell = %q", got)
	}
	if got := cell(47, 13); got != 'G' {
		t.Fatalf("centred text cell = %q", got)
	}
}
