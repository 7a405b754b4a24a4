package tty

import (
	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/przemekrun/assets"
	"github.com/milk9111/przemekrun/render"
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleText       = styleBackground.Bold(true)
	styleButton     = tcell.StyleDefault.Background(tcell.NewRGBColor(0x22, 0x22, 0x22)).Foreground(tcell.ColorWhite)
)

type glyph struct {
	r     rune
	style tcell.Style
}

var spriteGlyphs = map[string]glyph{
	assets.SpritePlayer:    {'█', styleBackground.Foreground(tcell.ColorYellow)},
	assets.SpriteHeart:     {'♥', styleBackground.Foreground(tcell.ColorRed)},
	assets.SpriteLaserGood: {'═', styleBackground.Foreground(tcell.ColorGreen)},
	assets.SpriteLaserBad:  {'═', styleBackground.Foreground(tcell.ColorRed)},
}

// Renderer draws render plans on a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Viewport(fieldW, fieldH float64) Viewport {
	cols, rows := r.screen.Size()
	return Viewport{Cols: cols, Rows: rows, FieldW: fieldW, FieldH: fieldH}
}

func (r *Renderer) Draw(vp Viewport, cmds []render.Command) {
	r.screen.SetStyle(styleBackground)
	r.screen.Clear()

	for _, cmd := range cmds {
		switch cmd.Kind {
		case render.KindSprite:
			r.drawSprite(vp, cmd)
		case render.KindButton:
			r.drawButton(vp, cmd)
		case render.KindText:
			r.drawText(vp, cmd)
		}
	}
	r.screen.Show()
}

func (r *Renderer) drawSprite(vp Viewport, cmd render.Command) {
	g, ok := spriteGlyphs[cmd.Sprite]
	if !ok {
		g = glyph{'?', styleBackground.Foreground(tcell.ColorFuchsia)}
	}
	// Hearts are one glyph each so lives stay countable at any size.
	if cmd.Sprite == assets.SpriteHeart {
		x, y := vp.Cell(cmd.Rect.X, cmd.Rect.Y)
		r.screen.SetContent(x, y, g.r, nil, g.style)
		return
	}
	x0, y0, x1, y1, ok := vp.CellRect(cmd.Rect)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, g.r, nil, g.style)
		}
	}
}

func (r *Renderer) drawButton(vp Viewport, cmd render.Command) {
	x0, y0, x1, y1, ok := vp.CellRect(cmd.Rect)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleButton)
		}
	}
	label := []rune(cmd.Text)
	cx := (x0+x1)/2 - len(label)/2
	r.putString(max(cx, x0), (y0+y1)/2, label, styleButton)
}

func (r *Renderer) drawText(vp Viewport, cmd render.Command) {
	label := []rune(cmd.Text)
	x, y := vp.Cell(cmd.X, cmd.Y)
	if cmd.Align == render.AlignCenter {
		x -= len(label) / 2
	}
	r.putString(max(x, 0), y, label, styleText)
}

func (r *Renderer) putString(x, y int, s []rune, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
