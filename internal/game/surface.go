package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sharmila1320/Kawaiifolio/internal/particle"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// canvas is the offscreen image the background renders into. The game
// copies it to the screen every Draw.
type canvas struct {
	img      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16

	// stale is set when Resize replaced the image and cleared by the next
	// paint.
	stale bool
}

func newCanvas() *canvas {
	return &canvas{}
}

func (c *canvas) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(width, height)
	c.stale = true
}

func (c *canvas) Clear() {
	if c.img == nil {
		return
	}
	c.img.Clear()
	c.stale = false
}

// FillGradient draws the rectangle as two triangles with per-vertex colors.
// The gradient parameter is linear in x and y, so vertex interpolation is
// exact.
func (c *canvas) FillGradient(g theme.Gradient, width, height float64) {
	if c.img == nil || width <= 0 || height <= 0 {
		return
	}
	diag := width*width + height*height
	corners := [4]particle.Point{{X: 0, Y: 0}, {X: width, Y: 0}, {X: 0, Y: height}, {X: width, Y: height}}

	vs := c.vertices[:0]
	for _, p := range corners {
		col := g.At((p.X*width + p.Y*height) / diag)
		vs = append(vs, vertex(p, col))
	}
	is := append(c.indices[:0], 0, 1, 2, 1, 3, 2)
	c.img.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
	c.vertices, c.indices = vs, is
}

func (c *canvas) FillPolygon(pts []particle.Point, col theme.Color) {
	if c.img == nil || len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r, g, b, a := components(col)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	c.img.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	c.vertices, c.indices = vs, is
}

// snapshot copies the canvas pixels into an RGBA image.
func (c *canvas) snapshot() *image.RGBA {
	if c.img == nil {
		return nil
	}
	b := c.img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	c.img.ReadPixels(out.Pix)
	return out
}

func vertex(p particle.Point, col theme.Color) ebiten.Vertex {
	r, g, b, a := components(col)
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: a,
	}
}

func components(col theme.Color) (r, g, b, a float32) {
	return float32(col.R) / 255, float32(col.G) / 255, float32(col.B) / 255, float32(clamp01(col.A))
}
