package rasterizer

import (
	"image"
	"image/color"
	"math"

	shapeshifter "github.com/alexjlockwood/ShapeShifter-sub004"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Draw fills the path on a new image of the given size. Coordinates are scaled by scale pixels per unit, with the
// y-axis pointing down as in SVG.
func Draw(p *shapeshifter.Path, w, h int, scale float64, fill, background color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	New(img, scale).RenderPath(p, fill, shapeshifter.Identity)
	return img
}

type Renderer struct {
	img   draw.Image
	scale float64
}

// New creates a renderer that draws to a rasterized image.
func New(img draw.Image, scale float64) *Renderer {
	return &Renderer{
		img:   img,
		scale: scale,
	}
}

// Size returns the width and height in path units.
func (r *Renderer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X) / r.scale, float64(size.Y) / r.scale
}

// RenderPath fills the path transformed by m using the nonzero winding rule. Open subpaths are closed implicitly.
func (r *Renderer) RenderPath(p *shapeshifter.Path, fill color.Color, m shapeshifter.Matrix) {
	p = p.Transform(shapeshifter.Identity.Scale(r.scale, r.scale).Mul(m))
	bounds := p.Bounds()
	if bounds.IsNaN() {
		return // nothing is drawn
	}

	size := r.img.Bounds().Size()
	x := int(math.Floor(bounds.X0))
	y := int(math.Floor(bounds.Y0))
	w := int(math.Ceil(bounds.X1)) - x + 1
	h := int(math.Ceil(bounds.Y1)) - y + 1
	if x+w <= 0 || size.X <= x || y+h <= 0 || size.Y <= y {
		return // outside image
	}

	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if size.X <= x+w {
		w = size.X - x
	}
	if size.Y <= y+h {
		h = size.Y - y
	}
	if w <= 0 || h <= 0 {
		return // has no size
	}

	p = p.Transform(shapeshifter.Identity.Translate(-float64(x), -float64(y)))
	ras := vector.NewRasterizer(w, h)
	ToRasterizer(p, ras)
	ras.Draw(r.img, image.Rect(x, y, x+w, y+h), image.NewUniform(fill), image.Point{})
}

// ToRasterizer adds the commands of the path to the rasterizer, in pixel coordinates.
func ToRasterizer(p *shapeshifter.Path, ras *vector.Rasterizer) {
	open := false
	for s := p.Scanner(); s.Scan(); {
		end := s.End()
		switch s.Cmd() {
		case shapeshifter.MoveToCmd:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(float32(end.X), float32(end.Y))
			open = true
		case shapeshifter.LineToCmd:
			ras.LineTo(float32(end.X), float32(end.Y))
		case shapeshifter.QuadToCmd:
			cp := s.CP1()
			ras.QuadTo(float32(cp.X), float32(cp.Y), float32(end.X), float32(end.Y))
		case shapeshifter.CubeToCmd:
			cp1, cp2 := s.CP1(), s.CP2()
			ras.CubeTo(float32(cp1.X), float32(cp1.Y), float32(cp2.X), float32(cp2.Y), float32(end.X), float32(end.Y))
		case shapeshifter.CloseCmd:
			ras.ClosePath()
			open = false
		}
	}
	if open {
		ras.ClosePath()
	}
}
