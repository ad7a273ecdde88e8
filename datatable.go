// Package datatable renders the scrollable body of a data table: rows and
// columns laid out with pinned-column anchoring, a selection checkbox per row
// bridged to a data source, and scroll events forwarded to the table.
package datatable

import (
	"github.com/hnimtadd/datatable/body/checkbox"
	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/compose"
	"github.com/hnimtadd/datatable/body/node"
	"github.com/hnimtadd/datatable/body/scroll"
	"github.com/hnimtadd/datatable/body/selection"
	"github.com/hnimtadd/datatable/logger"
)

type Body struct {
	// The table-wide state: rows, pagination, checked keys and the scroll
	// position. The body reads it once per render and reports back to it.
	controller *Controller

	bridge      *selection.Bridge
	coordinator *scroll.Coordinator
	checkboxes  *checkbox.Host

	// The last render, kept for lookups between renders.
	table *compose.Table

	logger logger.Logger
}

// New creates a controller from opts and a body rendering it.
func New(opts Options) (*Body, error) {
	c, err := NewController(opts)
	if err != nil {
		return nil, err
	}
	return NewBody(c, opts.Logger), nil
}

func NewBody(c *Controller, log logger.Logger) *Body {
	log = logger.OrDiscard(log)
	return &Body{
		controller:  c,
		bridge:      selection.NewBridge(c.Source(), c, log),
		coordinator: scroll.NewCoordinator(c, log),
		checkboxes:  checkbox.NewHost(log),
		logger:      log,
	}
}

func (b *Body) Controller() *Controller {
	return b.controller
}

// HandleCheckboxUpdateChecked is the changed-value handler of row's
// selection checkbox.
func (b *Body) HandleCheckboxUpdateChecked(row *node.Node, checked bool) {
	b.bridge.OnRowCheckChanged(row, checked)
}

// HandleScroll forwards a scroll event of the body surface to the table.
func (b *Body) HandleScroll(ev *scroll.Event) {
	b.coordinator.HandleScroll(ev)
}

// ScrollContainer returns the body's scroll container so siblings can sync
// their horizontal offset to it. It is nil until a surface is attached.
func (b *Body) ScrollContainer() *scroll.Container {
	return b.coordinator.Container()
}

// Attach binds the scroll surface the body is drawn into.
func (b *Body) Attach(s scroll.Surface) {
	b.coordinator.Attach(s)
}

func (b *Body) Detach() {
	b.coordinator.Detach()
}

// Render composes the current page and mounts its checkboxes. Checkboxes of
// rows that left the body are destroyed; those whose page changed are
// remounted.
func (b *Body) Render() *compose.Table {
	state := b.controller.State()
	state.OnCheck = b.HandleCheckboxUpdateChecked
	table := compose.Compose(state)

	live := make(map[checkbox.Slot]struct{})
	for i := range table.Rows {
		row := &table.Rows[i]
		for j := range row.Cells {
			cell := &row.Cells[j]
			if cell.Selection == nil {
				continue
			}
			slot := checkbox.Slot{Row: row.Key, Column: cell.Column}
			b.checkboxes.Mount(slot, *cell.Selection)
			live[slot] = struct{}{}
		}
	}
	b.checkboxes.Retain(live)

	b.table = table
	return table
}

// Table returns the last render, or nil before the first one.
func (b *Body) Table() *compose.Table {
	return b.table
}

// Checkbox returns the mounted checkbox of row in the selection column key.
func (b *Body) Checkbox(row node.Key, key column.Key) (*checkbox.Instance, bool) {
	return b.checkboxes.Get(checkbox.Slot{Row: row, Column: key})
}
