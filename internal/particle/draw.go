package particle

import (
	"math"

	"github.com/sharmila1320/Kawaiifolio/internal/config"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

// circleSegments is the polygon resolution of a circle.
const circleSegments = 40

// Point is a surface coordinate in pixels.
type Point struct {
	X, Y float64
}

// Surface is a 2D drawing target sized in pixels.
type Surface interface {
	// Resize sets the pixel dimensions of the surface.
	Resize(width, height int)
	// Clear erases the whole surface to transparent.
	Clear()
	// FillGradient fills the rectangle (0,0)-(width,height) with g laid on
	// its top-left to bottom-right diagonal.
	FillGradient(g theme.Gradient, width, height float64)
	// FillPolygon fills the closed polygon pts with c.
	FillPolygon(pts []Point, c theme.Color)
}

// Paint clears the surface and lays down the backdrop gradient.
func Paint(dst Surface, style theme.Style, b Bounds) {
	dst.Clear()
	dst.FillGradient(style.Background, b.Width, b.Height)
}

// Draw fills s onto dst. With a glow it first paints translucent halos in
// the shape's own color, widening by up to style.Glow screen pixels.
func Draw(dst Surface, s Shape, style theme.Style) {
	if style.Glow > 0 {
		for i := config.GlowLayers; i >= 1; i-- {
			spread := style.Glow * float64(i) / config.GlowLayers
			falloff := 1 - float64(i)/float64(config.GlowLayers+1)
			dst.FillPolygon(outline(s, spread), s.Color.WithAlpha(s.Color.A*falloff*0.5))
		}
	}
	dst.FillPolygon(Outline(s), s.Color)
}

// Outline returns the polygon of s on the surface: local geometry rotated
// by Rotation, scaled by 1/Z and moved to (X, Y).
func Outline(s Shape) []Point {
	return outline(s, 0)
}

// outline grows the local geometry so the edge moves out by spread
// pixels after scaling.
func outline(s Shape, spread float64) []Point {
	k := s.Scale()
	grow := 1.0
	if extent := reach(s.Kind, s.Size); spread > 0 && extent > 0 {
		grow = 1 + spread/(extent*k)
	}
	local := localGeometry(s.Kind, s.Size*grow)

	sin, cos := math.Sincos(s.Rotation)
	pts := make([]Point, len(local))
	for i, p := range local {
		pts[i] = Point{
			X: s.X + (p.X*cos-p.Y*sin)*k,
			Y: s.Y + (p.X*sin+p.Y*cos)*k,
		}
	}
	return pts
}

// reach is the half-extent of the local geometry before scaling.
func reach(kind Kind, size float64) float64 {
	if kind == Square {
		return size / 2
	}
	return size
}

func localGeometry(kind Kind, size float64) []Point {
	switch kind {
	case Square:
		h := size / 2
		return []Point{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	case Triangle:
		return []Point{{0, -size}, {size, size}, {-size, size}}
	default:
		pts := make([]Point, circleSegments)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / circleSegments
			pts[i] = Point{X: size * math.Cos(a), Y: size * math.Sin(a)}
		}
		return pts
	}
}
