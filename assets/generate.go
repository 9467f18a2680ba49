package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand/v2"

	cfg "github.com/automoto/starsong/config"
	"golang.org/x/image/vector"
)

const (
	spriteSize     = 64
	backgroundSize = 512
)

// Generate draws a stand-in for an image that has no file.
func Generate(id cfg.ImageID) image.Image {
	switch id {
	case cfg.ImagePlayer:
		return generatePlayer(color.RGBA{R: 120, G: 200, B: 255, A: 255})
	case cfg.ImagePlayerHit:
		return generatePlayer(color.RGBA{R: 255, G: 230, B: 140, A: 255})
	case cfg.ImageStar:
		return generateStar()
	case cfg.ImageBackground:
		return generateBackground()
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

func generatePlayer(body color.RGBA) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, spriteSize, spriteSize))

	z := vector.NewRasterizer(spriteSize, spriteSize)
	roundedRect(z, 6, 10, spriteSize-12, spriteSize-10, 12)
	z.Draw(dst, dst.Bounds(), image.NewUniform(body), image.Point{})

	// Eyes
	eye := image.NewUniform(color.RGBA{R: 20, G: 24, B: 48, A: 255})
	draw.Draw(dst, image.Rect(22, 26, 28, 34), eye, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(38, 26, 44, 34), eye, image.Point{}, draw.Over)
	return dst
}

// roundedRect adds a rounded rectangle path, approximating each corner with
// short segments.
func roundedRect(z *vector.Rasterizer, x, y, w, h, r float32) {
	const steps = 6
	corners := [4][3]float32{
		{x + w - r, y + r, -math.Pi / 2},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, math.Pi / 2},
		{x + r, y + r, math.Pi},
	}
	for i, c := range corners {
		for s := 0; s <= steps; s++ {
			a := float64(c[2]) + float64(s)/steps*math.Pi/2
			px := c[0] + r*float32(math.Cos(a))
			py := c[1] + r*float32(math.Sin(a))
			if i == 0 && s == 0 {
				z.MoveTo(px, py)
				continue
			}
			z.LineTo(px, py)
		}
	}
	z.ClosePath()
}

func generateStar() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, spriteSize, spriteSize))

	z := vector.NewRasterizer(spriteSize, spriteSize)
	c := float64(spriteSize) / 2
	outer, inner := c-2, (c-2)*0.45
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		x := float32(c + r*math.Cos(a))
		y := float32(c + r*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(cfg.Gold), image.Point{})
	return dst
}

// generateBackground draws a tileable night sky.
func generateBackground() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, backgroundSize, backgroundSize))
	top := cfg.NightBlue
	bottom := color.RGBA{R: 60, G: 40, B: 90, A: 255}
	for y := 0; y < backgroundSize; y++ {
		t := float64(y) / float64(backgroundSize-1)
		row := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 255,
		}
		for x := 0; x < backgroundSize; x++ {
			dst.SetRGBA(x, y, row)
		}
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 160; i++ {
		x, y := rng.IntN(backgroundSize), rng.IntN(backgroundSize*2/3)
		v := uint8(150 + rng.IntN(105))
		dst.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
	}
	return dst
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
