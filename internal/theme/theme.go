// Package theme defines the light and dark modes, their shape palettes,
// background gradients and glow radius.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrUnknownTheme is returned when a theme or mode name is not recognized.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the effective UI mode handed to the renderer.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Mode is the stored user preference. System defers to the host.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// Parse converts a name into a Theme.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// ParseMode converts a name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLight, ModeDark, ModeSystem:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Mode returns the explicit preference matching t.
func (t Theme) Mode() Mode {
	if t == Dark {
		return ModeDark
	}
	return ModeLight
}

// Resolve maps the preference to an effective theme, using system when
// the preference defers to the host.
func (m Mode) Resolve(system Theme) Theme {
	switch m {
	case ModeLight:
		return Light
	case ModeDark:
		return Dark
	}
	if system == Dark {
		return Dark
	}
	return Light
}

// Color is an 8-bit RGB color with a fractional alpha, the form colors
// take in CSS rgba() notation.
type Color struct {
	R, G, B uint8
	A       float64
}

// String renders the color as rgba(R, G, B, A).
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Hex renders the opaque part of the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to a non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(c.A)*255 + 0.5)}
}

// WithAlpha returns a copy of c with alpha a.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Gradient is a two-stop linear gradient laid along the diagonal from the
// top-left to the bottom-right corner of a surface.
type Gradient struct {
	From Color // stop 0
	To   Color // stop 1
}

// At returns the gradient color at the normalized offset t.
func (g Gradient) At(t float64) Color {
	t = clamp01(t)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{
		R: lerp(g.From.R, g.To.R),
		G: lerp(g.From.G, g.To.G),
		B: lerp(g.From.B, g.To.B),
		A: g.From.A + (g.To.A-g.From.A)*t,
	}
}

// Style bundles everything the renderer derives from a theme.
type Style struct {
	Theme      Theme
	Palette    [4]Color
	Background Gradient
	// Glow is the shadow blur radius in pixels; zero disables the halo.
	Glow float64
}

var (
	lightPalette = [4]Color{
		{R: 255, G: 209, B: 220, A: 0.4}, // soft pink
		{R: 180, G: 228, B: 255, A: 0.4}, // soft blue
		{R: 253, G: 253, B: 150, A: 0.4}, // pale yellow
		{R: 230, G: 206, B: 250, A: 0.4}, // lavender
	}
	darkPalette = [4]Color{
		{R: 255, G: 255, B: 255, A: 0.8}, // stars
		{R: 147, G: 51, B: 234, A: 0.3},  // purple haze
		{R: 79, G: 70, B: 229, A: 0.3},   // indigo haze
		{R: 236, G: 72, B: 153, A: 0.3},  // pink nebula
	}

	lightBackground = Gradient{
		From: Color{R: 0xfb, G: 0xfa, B: 0xf9, A: 1}, // stone-50
		To:   Color{R: 0xf5, G: 0xf5, B: 0xf4, A: 1}, // stone-100
	}
	darkBackground = Gradient{
		From: Color{R: 0x02, G: 0x06, B: 0x17, A: 1}, // slate-950
		To:   Color{R: 0x1e, G: 0x1b, B: 0x4b, A: 1}, // indigo-950
	}
)

const darkGlow = 15

// Palette returns the four shape colors of t.
func Palette(t Theme) [4]Color {
	if t == Dark {
		return darkPalette
	}
	return lightPalette
}

// Background returns the backdrop gradient of t.
func Background(t Theme) Gradient {
	if t == Dark {
		return darkBackground
	}
	return lightBackground
}

// GlowRadius returns the shadow blur radius of t.
func GlowRadius(t Theme) float64 {
	if t == Dark {
		return darkGlow
	}
	return 0
}

// StyleOf assembles the render style of t.
func StyleOf(t Theme) Style {
	return Style{
		Theme:      t,
		Palette:    Palette(t),
		Background: Background(t),
		Glow:       GlowRadius(t),
	}
}

// InPalette reports whether c is one of the colors of t.
func InPalette(t Theme, c Color) bool {
	for _, p := range Palette(t) {
		if p == c {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
