// Package canvas executes render plans on an Ebitengine image.
package canvas

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/przemekrun/render"
)

var (
	Background   = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	buttonFill   = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	buttonStroke = color.White
	textColor    = color.White
)

// ImageSource provides decoded sprites by name.
type ImageSource interface {
	Image(name string) (image.Image, bool)
}

// Canvas caches GPU images and font faces between frames.
type Canvas struct {
	sprites ImageSource
	images  map[string]*ebiten.Image
	source  *text.GoTextFaceSource
	faces   map[float64]*text.GoTextFace
}

func New(sprites ImageSource) (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &Canvas{
		sprites: sprites,
		images:  map[string]*ebiten.Image{},
		source:  src,
		faces:   map[float64]*text.GoTextFace{},
	}, nil
}

// Draw clears screen and executes cmds in order.
func (c *Canvas) Draw(screen *ebiten.Image, cmds []render.Command) {
	screen.Fill(Background)
	for _, cmd := range cmds {
		switch cmd.Kind {
		case render.KindSprite:
			c.drawSprite(screen, cmd)
		case render.KindButton:
			c.drawButton(screen, cmd)
		case render.KindText:
			c.drawText(screen, cmd.Text, cmd.Size, cmd.X, cmd.Y, cmd.Align)
		}
	}
}

func (c *Canvas) image(name string) *ebiten.Image {
	if img, ok := c.images[name]; ok {
		return img
	}
	if c.sprites == nil {
		return nil
	}
	src, ok := c.sprites.Image(name)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.images[name] = img
	return img
}

func (c *Canvas) drawSprite(screen *ebiten.Image, cmd render.Command) {
	img := c.image(cmd.Sprite)
	if img == nil {
		vector.FillRect(screen, float32(cmd.Rect.X), float32(cmd.Rect.Y), float32(cmd.Rect.W), float32(cmd.Rect.H), color.RGBA{R: 0xff, B: 0xff, A: 0xff}, false)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cmd.Rect.W/float64(b.Dx()), cmd.Rect.H/float64(b.Dy()))
	op.GeoM.Translate(cmd.Rect.X, cmd.Rect.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (c *Canvas) drawButton(screen *ebiten.Image, cmd render.Command) {
	r := cmd.Rect
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), buttonFill, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, buttonStroke, false)

	face := c.face(cmd.Size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+r.W/2, r.Y+r.H/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, cmd.Text, face, op)
}

// drawText anchors on the baseline like a canvas fillText.
func (c *Canvas) drawText(screen *ebiten.Image, s string, size, x, y float64, align render.Align) {
	face := c.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	if align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, s, face, op)
}

func (c *Canvas) face(size float64) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.source, Size: size}
	c.faces[size] = f
	return f
}
