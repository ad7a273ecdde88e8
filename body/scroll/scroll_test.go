package scroll

import (
	"testing"

	"github.com/hnimtadd/datatable/body/width"
	"github.com/hnimtadd/datatable/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) HandleTableBodyScroll(ev *Event) {
	m.Called(ev)
}

func TestBodyConfig(t *testing.T) {
	cfg := BodyConfig(width.FromCells(120))
	assert.Equal(t, width.Length("120"), cfg.ContentMinWidth)
	assert.True(t, cfg.XScrollable)
	assert.True(t, cfg.YScrollable)
	assert.Equal(t, RailZIndex, cfg.HorizontalRailZIndex)
	assert.Equal(t, RailZIndex, cfg.VerticalRailZIndex)
	assert.Equal(t, BodyClass, cfg.Class)
}

func TestCoordinator_ContainerIsNilBeforeAttach(t *testing.T) {
	c := NewCoordinator(nil, logger.Discard)
	assert.Nil(t, c.Container())

	v := NewViewport(ViewportOptions{Width: 10, Height: 5})
	c.Attach(v)
	assert.Same(t, v.Container(), c.Container())

	c.Detach()
	assert.Nil(t, c.Container())
}

func TestCoordinator_ForwardsEventUnchangedOnce(t *testing.T) {
	target := &Container{ScrollLeft: 4}
	ev := &Event{Target: target, ScrollLeft: 4, ScrollTop: 1}

	h := &mockHandler{}
	h.On("HandleTableBodyScroll", mock.MatchedBy(func(got *Event) bool {
		return got == ev
	})).Once()

	NewCoordinator(h, logger.Discard).HandleScroll(ev)

	h.AssertExpectations(t)
	h.AssertNumberOfCalls(t, "HandleTableBodyScroll", 1)
	assert.Equal(t, &Event{Target: target, ScrollLeft: 4, ScrollTop: 1}, ev, "event must not be modified")
}

func TestCoordinator_WithoutHandlerDrops(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCoordinator(nil, nil).HandleScroll(&Event{})
	})
}

func TestViewport_ClampsAndEmitsOncePerChange(t *testing.T) {
	var events []*Event
	v := NewViewport(ViewportOptions{
		Width:    10,
		Height:   3,
		Config:   BodyConfig(width.FromCells(25)),
		OnScroll: func(ev *Event) { events = append(events, ev) },
	})
	v.SetContentSize(0, 8)

	c := v.Container()
	require.Equal(t, 25, c.ScrollWidth, "content is at least the min width")
	assert.Equal(t, 15, c.MaxScrollLeft())
	assert.Equal(t, 5, c.MaxScrollTop())

	assert.True(t, v.ScrollBy(4, 0))
	assert.False(t, v.ScrollBy(0, 0), "no movement, no event")
	assert.True(t, v.ScrollTo(100, 100))
	assert.False(t, v.ScrollBy(1, 1), "already at the end")
	assert.True(t, v.ScrollTo(-3, 0))

	require.Len(t, events, 3)
	assert.Equal(t, 4, events[0].ScrollLeft)
	assert.Equal(t, 15, events[1].ScrollLeft)
	assert.Equal(t, 5, events[1].ScrollTop)
	assert.Equal(t, 0, events[2].ScrollLeft)
	assert.Same(t, c, events[2].Target)
}

func TestViewport_AxisDisabled(t *testing.T) {
	v := NewViewport(ViewportOptions{Width: 5, Height: 5, Config: Config{YScrollable: true}})
	v.SetContentSize(50, 50)

	assert.True(t, v.ScrollTo(10, 10))
	assert.Equal(t, 0, v.Container().ScrollLeft)
	assert.Equal(t, 10, v.Container().ScrollTop)
}

func TestViewport_ResizeReclamps(t *testing.T) {
	v := NewViewport(ViewportOptions{Width: 10, Height: 1, Config: BodyConfig(width.Auto)})
	v.SetContentSize(30, 1)
	v.ScrollTo(20, 0)

	v.Resize(25, 1)
	assert.Equal(t, 5, v.Container().ScrollLeft)
}
