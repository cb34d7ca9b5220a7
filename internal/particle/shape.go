// Package particle holds the decorative shape population of the animated
// background: the shape record, its per-frame update with edge wraparound,
// and the geometry used to paint it onto a Surface.
package particle

import (
	"math"
	"math/rand/v2"

	"github.com/sharmila1320/Kawaiifolio/internal/config"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

const (
	// Population is the number of shapes alive in a render session.
	Population = config.ShapeCount
	// Margin is how far past an edge a shape travels before it wraps.
	Margin = config.WrapMargin
)

// Kind selects the outline a shape is drawn with.
type Kind int

const (
	Circle Kind = iota
	Square
	Triangle
)

var kinds = [...]Kind{Circle, Square, Triangle}

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

// Valid reports whether k is one of the three drawable kinds.
func (k Kind) Valid() bool {
	return k >= Circle && k <= Triangle
}

// Bounds are the viewport dimensions used for seeding and wraparound.
type Bounds struct {
	Width, Height float64
}

// Shape is one particle. Color and Kind never change after creation.
type Shape struct {
	X, Y          float64
	Z             float64 // depth; rendered at scale 1/Z
	Size          float64
	Color         theme.Color
	VX, VY        float64
	Rotation      float64
	RotationSpeed float64
	Kind          Kind
}

// Scale is the parallax render scale.
func (s Shape) Scale() float64 {
	return 1 / s.Z
}

// New seeds a shape inside b with a color from the palette of th.
func New(rng *rand.Rand, b Bounds, th theme.Theme) Shape {
	palette := theme.Palette(th)
	return Shape{
		X:             rng.Float64() * b.Width,
		Y:             rng.Float64() * b.Height,
		Z:             config.MinDepth + rng.Float64()*(config.MaxDepth-config.MinDepth),
		Size:          config.MinSize + rng.Float64()*(config.MaxSize-config.MinSize),
		Color:         palette[rng.IntN(len(palette))],
		VX:            (rng.Float64() - 0.5) * 2 * config.MaxSpeed,
		VY:            (rng.Float64() - 0.5) * 2 * config.MaxSpeed,
		Rotation:      rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * 2 * config.MaxRotationSpeed,
		Kind:          kinds[rng.IntN(len(kinds))],
	}
}

// Populate seeds a full population.
func Populate(rng *rand.Rand, b Bounds, th theme.Theme) []Shape {
	shapes := make([]Shape, Population)
	for i := range shapes {
		shapes[i] = New(rng, b, th)
	}
	return shapes
}

// Update advances s by one frame and wraps it to the opposite margin
// once it leaves b by more than Margin.
func Update(s Shape, b Bounds) Shape {
	s.X += s.VX
	s.Y += s.VY
	s.Rotation += s.RotationSpeed

	if s.X < -Margin {
		s.X = b.Width + Margin
	}
	if s.X > b.Width+Margin {
		s.X = -Margin
	}
	if s.Y < -Margin {
		s.Y = b.Height + Margin
	}
	if s.Y > b.Height+Margin {
		s.Y = -Margin
	}
	return s
}

// NewSource returns a random source. A zero seed draws one from the runtime.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
