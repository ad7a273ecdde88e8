package scroll

type ViewportOptions struct {
	Width, Height int
	Config        Config

	// OnScroll receives an event every time the offsets actually change.
	OnScroll func(ev *Event)
}

// Viewport is a Surface for terminal hosts. It clamps offsets to the content
// and emits one event per effective change.
type Viewport struct {
	container Container
	contentW  int
	contentH  int
	config    Config
	onScroll  func(ev *Event)
}

func NewViewport(opts ViewportOptions) *Viewport {
	v := &Viewport{
		config:   opts.Config,
		onScroll: opts.OnScroll,
	}
	v.container.ClientWidth = opts.Width
	v.container.ClientHeight = opts.Height
	v.SetContentSize(opts.Width, opts.Height)
	return v
}

func (v *Viewport) Container() *Container {
	return &v.container
}

func (v *Viewport) Config() Config {
	return v.config
}

// SetOnScroll replaces the scroll listener.
func (v *Viewport) SetOnScroll(fn func(ev *Event)) {
	v.onScroll = fn
}

// SetContentSize updates the scrollable extent. The content is never
// narrower than the configured minimum width or than the viewport itself.
func (v *Viewport) SetContentSize(w, h int) {
	v.contentW, v.contentH = w, h
	if minWidth, ok := v.config.ContentMinWidth.Cells(); ok {
		w = max(w, minWidth)
	}
	v.container.ScrollWidth = max(w, v.container.ClientWidth)
	v.container.ScrollHeight = max(h, v.container.ClientHeight)
	v.ScrollTo(v.container.ScrollLeft, v.container.ScrollTop)
}

func (v *Viewport) Resize(w, h int) {
	v.container.ClientWidth = w
	v.container.ClientHeight = h
	v.SetContentSize(v.contentW, v.contentH)
}

// ScrollTo moves to the given offsets, clamped to the content. It reports
// whether anything moved.
func (v *Viewport) ScrollTo(left, top int) bool {
	c := &v.container
	if !v.config.XScrollable {
		left = 0
	}
	if !v.config.YScrollable {
		top = 0
	}
	left = min(max(left, 0), c.MaxScrollLeft())
	top = min(max(top, 0), c.MaxScrollTop())
	if left == c.ScrollLeft && top == c.ScrollTop {
		return false
	}
	c.ScrollLeft, c.ScrollTop = left, top
	if v.onScroll != nil {
		v.onScroll(&Event{Target: c, ScrollLeft: left, ScrollTop: top})
	}
	return true
}

func (v *Viewport) ScrollBy(dx, dy int) bool {
	return v.ScrollTo(v.container.ScrollLeft+dx, v.container.ScrollTop+dy)
}
