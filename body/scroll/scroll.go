// Package scroll coordinates the body's scroll surface with the table
// controller and the siblings that follow it.
package scroll

import (
	"github.com/hnimtadd/datatable/body/width"
)

// RailZIndex keeps the scroll rails above the pinned-column shadows.
const RailZIndex = 3

// BodyClass is the class of the body's scroll surface.
const BodyClass = "data-table-base-table-body"

// Container is the scrollable element. Siblings read its offsets directly.
type Container struct {
	ScrollLeft, ScrollTop     int
	ClientWidth, ClientHeight int
	ScrollWidth, ScrollHeight int
}

// MaxScrollLeft is the largest horizontal offset the content allows.
func (c *Container) MaxScrollLeft() int {
	return max(c.ScrollWidth-c.ClientWidth, 0)
}

// MaxScrollTop is the largest vertical offset the content allows.
func (c *Container) MaxScrollTop() int {
	return max(c.ScrollHeight-c.ClientHeight, 0)
}

// Event is a raw scroll notification from the surface.
type Event struct {
	Target     *Container
	ScrollLeft int
	ScrollTop  int
}

// Surface is the scrollable widget the body is mounted in.
type Surface interface {
	Container() *Container
}

// Handler receives the body's scroll events.
type Handler interface {
	HandleTableBodyScroll(ev *Event)
}

type HandlerFunc func(ev *Event)

func (f HandlerFunc) HandleTableBodyScroll(ev *Event) {
	f(ev)
}

// Config is how the body configures its scroll surface.
type Config struct {
	Class           string
	ContentMinWidth width.Length
	XScrollable     bool
	YScrollable     bool

	HorizontalRailZIndex int
	VerticalRailZIndex   int
}

// BodyConfig returns the body's surface configuration for a table that is
// scrollX wide.
func BodyConfig(scrollX width.Length) Config {
	return Config{
		Class:                BodyClass,
		ContentMinWidth:      scrollX,
		XScrollable:          true,
		YScrollable:          true,
		HorizontalRailZIndex: RailZIndex,
		VerticalRailZIndex:   RailZIndex,
	}
}
