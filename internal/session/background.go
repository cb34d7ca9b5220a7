package session

import (
	"github.com/sharmila1320/Kawaiifolio/internal/particle"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

// Background hosts at most one Session and replaces it whenever the theme
// changes.
type Background struct {
	surface particle.Surface
	vp      Viewport
	sched   Scheduler
	opts    []Option

	theme   theme.Theme
	current *Session
}

// NewBackground returns an idle background. Nothing renders until SetTheme.
func NewBackground(surface particle.Surface, vp Viewport, sched Scheduler, opts ...Option) *Background {
	return &Background{
		surface: surface,
		vp:      vp,
		sched:   sched,
		opts:    opts,
	}
}

// SetTheme activates the background in th. A theme change tears down the
// running session and seeds a fresh population in the new palette.
func (b *Background) SetTheme(th theme.Theme) {
	if b.current != nil && b.theme == th {
		return
	}
	b.teardown()
	b.theme = th
	b.current = Start(b.surface, b.vp, b.sched, th, b.opts...)
}

// Theme returns the active theme.
func (b *Background) Theme() theme.Theme { return b.theme }

// Session returns the running session, or nil.
func (b *Background) Session() *Session { return b.current }

// Close stops rendering.
func (b *Background) Close() {
	b.teardown()
}

func (b *Background) teardown() {
	if b.current == nil {
		return
	}
	b.current.Stop()
	b.current = nil
}
