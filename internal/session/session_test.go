package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sharmila1320/Kawaiifolio/internal/particle"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

// Sessions run on the caller's goroutine. This keeps it that way.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingSurface struct {
	width, height int
	resizes       int
	clears        int
	gradients     int
	polygons      int
}

func (c *countingSurface) Resize(w, h int) {
	c.width, c.height = w, h
	c.resizes++
}
func (c *countingSurface) Clear()                                        { c.clears++ }
func (c *countingSurface) FillGradient(theme.Gradient, float64, float64) { c.gradients++ }
func (c *countingSurface) FillPolygon([]particle.Point, theme.Color)     { c.polygons++ }

func (c *countingSurface) draws() int { return c.clears + c.gradients + c.polygons }

// countingScheduler wraps a FrameQueue and counts requests.
type countingScheduler struct {
	*FrameQueue
	requests int
	cancels  int
}

func (c *countingScheduler) RequestFrame(fn func()) FrameID {
	c.requests++
	return c.FrameQueue.RequestFrame(fn)
}

func (c *countingScheduler) CancelFrame(id FrameID) {
	c.cancels++
	c.FrameQueue.CancelFrame(id)
}

func newHarness(th theme.Theme) (*Session, *countingSurface, *ResizableViewport, *countingScheduler) {
	surf := &countingSurface{}
	vp := NewResizableViewport(800, 600)
	sched := &countingScheduler{FrameQueue: NewFrameQueue()}
	s := Start(surf, vp, sched, th, WithRand(particle.NewSource(5)))
	return s, surf, vp, sched
}

func TestStartSeedsPopulation(t *testing.T) {
	for _, th := range []theme.Theme{theme.Light, theme.Dark} {
		s, surf, vp, sched := newHarness(th)

		require.True(t, s.Active())
		assert.NotEmpty(t, s.ID())
		assert.Equal(t, th, s.Theme())
		assert.Len(t, s.Shapes(), particle.Population)
		assert.Equal(t, particle.Bounds{Width: 800, Height: 600}, s.Bounds())
		assert.Equal(t, 800, surf.width)
		assert.Equal(t, 600, surf.height)
		assert.Equal(t, 1, vp.Listeners())

		// first frame renders synchronously and schedules exactly one successor
		assert.Equal(t, uint64(1), s.Frames())
		assert.Equal(t, 1, surf.clears)
		assert.Equal(t, 1, sched.Pending())

		for _, sh := range s.Shapes() {
			assert.True(t, theme.InPalette(th, sh.Color))
			assert.True(t, sh.Kind.Valid())
		}
		s.Stop()
	}
}

func TestFramesChain(t *testing.T) {
	s, surf, _, sched := newHarness(theme.Dark)
	defer s.Stop()

	for i := 0; i < 100; i++ {
		require.Equal(t, 1, sched.Flush())
		require.Equal(t, 1, sched.Pending())
	}
	assert.Equal(t, uint64(101), s.Frames())
	assert.Equal(t, 101, surf.clears)
	assert.Equal(t, 101, surf.gradients)
	assert.Equal(t, 101, sched.requests)

	for _, sh := range s.Shapes() {
		assert.GreaterOrEqual(t, sh.X, -50.0)
		assert.LessOrEqual(t, sh.X, 850.0)
		assert.GreaterOrEqual(t, sh.Y, -50.0)
		assert.LessOrEqual(t, sh.Y, 650.0)
	}
}

func TestStopHaltsDrawing(t *testing.T) {
	s, surf, vp, sched := newHarness(theme.Light)
	sched.Flush()
	sched.Flush()

	s.Stop()
	drawn := surf.draws()
	requested := sched.requests

	assert.False(t, s.Active())
	assert.Zero(t, sched.Pending())
	assert.Zero(t, vp.Listeners())
	assert.Empty(t, s.Shapes())

	for i := 0; i < 10; i++ {
		assert.Zero(t, sched.Flush())
	}
	vp.Resize(1024, 768)
	assert.Equal(t, drawn, surf.draws())
	assert.Equal(t, requested, sched.requests)
	assert.Equal(t, 800, surf.width)

	s.Stop()
	assert.Equal(t, 1, sched.cancels)
}

func TestStopWithStaleCallbackStillInert(t *testing.T) {
	surf := &countingSurface{}
	sched := NewFrameQueue()
	s := Start(surf, StaticViewport{Width: 100, Height: 100}, sched, theme.Dark)

	// a scheduler that ignores cancellation must not keep the chain alive
	leaky := &ignoringScheduler{}
	s.sched = leaky
	sched.Flush()
	require.Len(t, leaky.fns, 1)

	s.Stop()
	drawn := surf.draws()
	leaky.fns[0]()
	assert.Equal(t, drawn, surf.draws())
}

type ignoringScheduler struct {
	fns []func()
}

func (i *ignoringScheduler) RequestFrame(fn func()) FrameID {
	i.fns = append(i.fns, fn)
	return FrameID(len(i.fns))
}

func (*ignoringScheduler) CancelFrame(FrameID) {}

func TestResizeKeepsShapes(t *testing.T) {
	s, surf, vp, sched := newHarness(theme.Light)
	defer s.Stop()

	before := s.Shapes()
	vp.Resize(400, 300)

	assert.Equal(t, before, s.Shapes())
	assert.Equal(t, particle.Bounds{Width: 400, Height: 300}, s.Bounds())
	assert.Equal(t, 400, surf.width)
	assert.Equal(t, 300, surf.height)
	assert.Equal(t, 2, surf.resizes)

	// wraparound now uses the new bounds
	for i := 0; i < 3000; i++ {
		sched.Flush()
	}
	for _, sh := range s.Shapes() {
		assert.LessOrEqual(t, sh.X, 450.0)
		assert.LessOrEqual(t, sh.Y, 350.0)
	}
}

func TestRedrawRepaintsWithoutAdvancing(t *testing.T) {
	s, surf, vp, sched := newHarness(theme.Dark)
	defer s.Stop()
	sched.Flush()

	vp.Resize(400, 300)
	before := s.Shapes()
	clears, polygons := surf.clears, surf.polygons
	requested := sched.requests

	s.Redraw()

	assert.Equal(t, clears+1, surf.clears)
	assert.Greater(t, surf.polygons, polygons)
	assert.Equal(t, before, s.Shapes())
	assert.Equal(t, uint64(2), s.Frames())
	assert.Equal(t, requested, sched.requests)
	assert.Equal(t, 1, sched.Pending())

	s.Stop()
	drawn := surf.draws()
	s.Redraw()
	assert.Equal(t, drawn, surf.draws())
}

func TestNilSurfaceIsNoop(t *testing.T) {
	sched := NewFrameQueue()
	vp := NewResizableViewport(800, 600)

	s := Start(nil, vp, sched, theme.Dark)

	assert.False(t, s.Active())
	assert.Zero(t, sched.Pending())
	assert.Zero(t, vp.Listeners())
	assert.Empty(t, s.Shapes())
	assert.Zero(t, s.Frames())
	s.Stop()
}
