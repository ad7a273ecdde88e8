package scroll

import "github.com/hnimtadd/datatable/logger"

// Coordinator exposes the body's scroll surface and forwards its events. It
// does no offset math; the handler derives whatever it needs from the event.
type Coordinator struct {
	surface Surface
	handler Handler
	logger  logger.Logger
}

func NewCoordinator(handler Handler, log logger.Logger) *Coordinator {
	return &Coordinator{
		handler: handler,
		logger:  logger.OrDiscard(log),
	}
}

// Attach binds the surface once it exists.
func (c *Coordinator) Attach(s Surface) {
	c.surface = s
}

func (c *Coordinator) Detach() {
	c.surface = nil
}

// Container returns the scroll container, or nil before a surface is
// attached.
func (c *Coordinator) Container() *Container {
	if c.surface == nil {
		return nil
	}
	return c.surface.Container()
}

// HandleScroll passes ev through to the handler unchanged.
func (c *Coordinator) HandleScroll(ev *Event) {
	if c.handler == nil {
		c.logger.Warn("dropping body scroll event: no handler")
		return
	}
	c.handler.HandleTableBodyScroll(ev)
}
