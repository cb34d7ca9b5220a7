// Package session runs the animated background: a render Session owns the
// shape population, the surface and the pending frame request from
// activation until Stop, and Background restarts it on theme changes.
package session

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sharmila1320/Kawaiifolio/internal/particle"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

// Option configures a Session or Background.
type Option func(*options)

type options struct {
	logger *zap.Logger
	rng    *rand.Rand
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRand sets the random source used to seed shapes.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = particle.NewSource(0)
	}
	return o
}

// Session is one activation of the background renderer.
type Session struct {
	id      string
	log     *zap.Logger
	surface particle.Surface
	sched   Scheduler
	style   theme.Style

	bounds  particle.Bounds
	shapes  []particle.Shape
	frame   FrameID
	detach  func()
	frames  uint64
	stopped bool
}

// Start measures the viewport, sizes the surface, seeds the population in
// the palette of th and renders the first frame. Each frame requests the
// next one from sched until Stop. A nil surface gives an inert session.
func Start(surface particle.Surface, vp Viewport, sched Scheduler, th theme.Theme, opts ...Option) *Session {
	o := buildOptions(opts)
	s := &Session{
		id:      uuid.NewString(),
		log:     o.logger,
		surface: surface,
		sched:   sched,
		style:   theme.StyleOf(th),
	}
	if surface == nil || vp == nil || sched == nil {
		s.stopped = true
		return s
	}
	s.log = s.log.With(zap.String("session", s.id))

	w, h := vp.Size()
	s.bounds = particle.Bounds{Width: float64(w), Height: float64(h)}
	surface.Resize(w, h)
	s.shapes = particle.Populate(o.rng, s.bounds, th)
	s.detach = vp.OnResize(s.resize)

	s.log.Debug("render session started",
		zap.String("theme", string(th)),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("shapes", len(s.shapes)))

	s.render()
	return s
}

func (s *Session) render() {
	if s.stopped {
		return
	}
	particle.Paint(s.surface, s.style, s.bounds)
	for i := range s.shapes {
		s.shapes[i] = particle.Update(s.shapes[i], s.bounds)
		particle.Draw(s.surface, s.shapes[i], s.style)
	}
	s.frames++
	s.frame = s.sched.RequestFrame(s.render)
}

// Redraw repaints the current population without advancing it or
// requesting a frame. Hosts call it when the surface was invalidated while
// no frames are being flushed.
func (s *Session) Redraw() {
	if s.stopped {
		return
	}
	particle.Paint(s.surface, s.style, s.bounds)
	for _, sh := range s.shapes {
		particle.Draw(s.surface, sh, s.style)
	}
}

// resize tracks the new viewport. Shapes keep their positions.
func (s *Session) resize(width, height int) {
	if s.stopped {
		return
	}
	s.bounds = particle.Bounds{Width: float64(width), Height: float64(height)}
	s.surface.Resize(width, height)
	s.log.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// Stop cancels the pending frame, detaches the resize listener and drops
// the population. It is safe to call more than once.
func (s *Session) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.sched.CancelFrame(s.frame)
	s.frame = 0
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
	s.shapes = nil
	s.log.Debug("render session stopped", zap.Uint64("frames", s.frames))
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Active reports whether the session is rendering.
func (s *Session) Active() bool { return !s.stopped }

// Theme returns the theme the population was seeded with.
func (s *Session) Theme() theme.Theme { return s.style.Theme }

// Bounds returns the viewport bounds used for wraparound.
func (s *Session) Bounds() particle.Bounds { return s.bounds }

// Frames returns the number of frames rendered so far.
func (s *Session) Frames() uint64 { return s.frames }

// Shapes returns a copy of the current population.
func (s *Session) Shapes() []particle.Shape {
	out := make([]particle.Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}
