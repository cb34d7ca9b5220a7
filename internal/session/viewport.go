package session

// Viewport is the host area the background covers.
type Viewport interface {
	Size() (width, height int)
	// OnResize registers fn for resize notifications and returns a func
	// that detaches it.
	OnResize(fn func(width, height int)) (detach func())
}

// StaticViewport never resizes.
type StaticViewport struct {
	Width, Height int
}

func (v StaticViewport) Size() (int, int) { return v.Width, v.Height }

func (StaticViewport) OnResize(func(int, int)) func() { return func() {} }

// ResizableViewport is a Viewport whose size the host sets explicitly.
type ResizableViewport struct {
	width, height int
	nextID        int
	listeners     map[int]func(int, int)
}

// NewResizableViewport returns a viewport of the given size.
func NewResizableViewport(width, height int) *ResizableViewport {
	return &ResizableViewport{
		width:     width,
		height:    height,
		listeners: map[int]func(int, int){},
	}
}

func (v *ResizableViewport) Size() (int, int) { return v.width, v.height }

func (v *ResizableViewport) OnResize(fn func(int, int)) func() {
	v.nextID++
	id := v.nextID
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

// Resize updates the size and notifies listeners when it changed.
func (v *ResizableViewport) Resize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	for _, fn := range v.listeners {
		fn(width, height)
	}
}

// Listeners reports how many resize listeners are attached.
func (v *ResizableViewport) Listeners() int {
	return len(v.listeners)
}
