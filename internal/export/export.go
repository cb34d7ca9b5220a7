// Package export renders the animated background headlessly with the
// gogpu/gg software rasterizer and writes frames as PNG files.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"github.com/sharmila1320/Kawaiifolio/internal/particle"
	"github.com/sharmila1320/Kawaiifolio/internal/session"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

// Surface draws onto a gg.Context.
type Surface struct {
	dc  *gg.Context
	err error
}

// NewSurface returns a surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(max(width, 1), max(height, 1))}
}

// Context exposes the underlying drawing context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Err returns the first rasterization error.
func (s *Surface) Err() error { return s.err }

func (s *Surface) Resize(width, height int) {
	s.record(s.dc.Resize(max(width, 1), max(height, 1)))
}

func (s *Surface) Clear() {
	s.dc.Clear()
}

func (s *Surface) FillGradient(g theme.Gradient, width, height float64) {
	brush := gg.NewLinearGradientBrush(0, 0, width, height).
		AddColorStop(0, toRGBA(g.From)).
		AddColorStop(1, toRGBA(g.To))
	s.dc.SetFillBrush(brush)
	s.dc.DrawRectangle(0, 0, width, height)
	s.record(s.dc.Fill())
}

func (s *Surface) FillPolygon(pts []particle.Point, c theme.Color) {
	if len(pts) < 3 {
		return
	}
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.dc.SetFillBrush(gg.Solid(toRGBA(c)))
	s.record(s.dc.Fill())
}

func (s *Surface) record(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func toRGBA(c theme.Color) gg.RGBA {
	return gg.RGBA{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: c.A}
}

// Options configures Render.
type Options struct {
	Dir    string
	Width  int
	Height int
	Theme  theme.Theme
	// Frames is how many animation frames to run.
	Frames int
	// Every writes one PNG per Every frames; the first frame is always written.
	Every  int
	Seed   uint64
	Logger *zap.Logger
}

// Render runs a render session for opts.Frames frames and writes the
// selected frames into opts.Dir. It returns the written paths.
func Render(ctx context.Context, opts Options) ([]string, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Frames <= 0 {
		return nil, errors.New("frames must be positive")
	}
	if opts.Every <= 0 {
		opts.Every = 1
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	surf := NewSurface(opts.Width, opts.Height)
	queue := session.NewFrameQueue()
	vp := session.StaticViewport{Width: opts.Width, Height: opts.Height}
	sess := session.Start(surf, vp, queue, opts.Theme,
		session.WithLogger(log),
		session.WithRand(particle.NewSource(opts.Seed)))
	defer sess.Stop()

	var written []string
	for frame := 1; frame <= opts.Frames; frame++ {
		if frame > 1 {
			if err := ctx.Err(); err != nil {
				return written, err
			}
			queue.Flush()
		}
		if err := surf.Err(); err != nil {
			return written, fmt.Errorf("frame %d: %w", frame, err)
		}
		if (frame-1)%opts.Every != 0 {
			continue
		}
		path := filepath.Join(opts.Dir, fmt.Sprintf("frame-%05d.png", frame))
		if err := surf.Context().SavePNG(path); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", path, err)
		}
		written = append(written, path)
		log.Debug("frame written", zap.String("path", path))
	}
	log.Info("render complete",
		zap.Int("frames", opts.Frames),
		zap.Int("written", len(written)),
		zap.String("theme", string(opts.Theme)))
	return written, nil
}
