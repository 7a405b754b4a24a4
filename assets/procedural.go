package assets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

const proceduralSize = 64

var (
	colorMug      = color.RGBA{R: 0xf2, G: 0xe8, B: 0xd5, A: 0xff}
	colorTea      = color.RGBA{R: 0x8a, G: 0x4b, B: 0x1c, A: 0xff}
	colorSteam    = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xa0}
	colorHeart    = color.RGBA{R: 0xe0, G: 0x24, B: 0x3b, A: 0xff}
	colorGoodCore = color.RGBA{R: 0xc8, G: 0xff, B: 0xc8, A: 0xff}
	colorGoodGlow = color.RGBA{R: 0x20, G: 0xd0, B: 0x40, A: 0xa0}
	colorBadCore  = color.RGBA{R: 0xff, G: 0xd0, B: 0xd0, A: 0xff}
	colorBadGlow  = color.RGBA{R: 0xe0, G: 0x10, B: 0x10, A: 0xa0}
	colorUnknown  = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
)

// Procedural draws a stand-in sprite for name. Unknown names get a magenta
// square so they stand out.
func Procedural(name string) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, proceduralSize, proceduralSize))
	z := vector.NewRasterizer(proceduralSize, proceduralSize)

	switch name {
	case SpritePlayer:
		drawMug(dst, z)
	case SpriteHeart:
		drawHeart(dst, z)
	case SpriteLaserGood:
		drawBeam(dst, z, colorGoodGlow, colorGoodCore)
	case SpriteLaserBad:
		drawBeam(dst, z, colorBadGlow, colorBadCore)
	default:
		rect(z, 8, 8, 56, 56)
		fill(dst, z, colorUnknown)
	}
	return dst
}

func fill(dst *image.RGBA, z *vector.Rasterizer, c color.Color) {
	z.DrawOp = draw.Over
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	z.Reset(proceduralSize, proceduralSize)
}

func rect(z *vector.Rasterizer, x0, y0, x1, y1 float32) {
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
}

func drawMug(dst *image.RGBA, z *vector.Rasterizer) {
	// Steam.
	for _, x := range []float32{22, 34} {
		z.MoveTo(x, 16)
		z.QuadTo(x-4, 10, x, 4)
		z.LineTo(x+3, 4)
		z.QuadTo(x-1, 10, x+3, 16)
		z.ClosePath()
	}
	fill(dst, z, colorSteam)

	// Body with a rounded base.
	z.MoveTo(12, 20)
	z.LineTo(46, 20)
	z.LineTo(46, 50)
	z.QuadTo(46, 58, 38, 58)
	z.LineTo(20, 58)
	z.QuadTo(12, 58, 12, 50)
	z.ClosePath()
	// Handle.
	z.MoveTo(46, 26)
	z.QuadTo(60, 26, 60, 38)
	z.QuadTo(60, 50, 46, 50)
	z.LineTo(46, 44)
	z.QuadTo(54, 44, 54, 38)
	z.QuadTo(54, 32, 46, 32)
	z.ClosePath()
	fill(dst, z, colorMug)

	rect(z, 15, 23, 43, 29)
	fill(dst, z, colorTea)
}

func drawHeart(dst *image.RGBA, z *vector.Rasterizer) {
	z.MoveTo(32, 58)
	z.QuadTo(4, 38, 6, 22)
	z.QuadTo(8, 6, 22, 8)
	z.QuadTo(30, 10, 32, 18)
	z.QuadTo(34, 10, 42, 8)
	z.QuadTo(56, 6, 58, 22)
	z.QuadTo(60, 38, 32, 58)
	z.ClosePath()
	fill(dst, z, colorHeart)
}

func drawBeam(dst *image.RGBA, z *vector.Rasterizer, glow, core color.Color) {
	capsule(z, 2, 22, 62, 42)
	fill(dst, z, glow)
	capsule(z, 8, 28, 56, 36)
	fill(dst, z, core)
}

func capsule(z *vector.Rasterizer, x0, y0, x1, y1 float32) {
	r := (y1 - y0) / 2
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.QuadTo(x1, y0, x1, y0+r)
	z.QuadTo(x1, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.QuadTo(x0, y1, x0, y0+r)
	z.QuadTo(x0, y0, x0+r, y0)
	z.ClosePath()
}
