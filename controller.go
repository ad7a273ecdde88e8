package datatable

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hnimtadd/datatable/body/cell"
	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/compose"
	"github.com/hnimtadd/datatable/body/fixed"
	"github.com/hnimtadd/datatable/body/keyset"
	"github.com/hnimtadd/datatable/body/layout"
	"github.com/hnimtadd/datatable/body/node"
	"github.com/hnimtadd/datatable/body/scroll"
	"github.com/hnimtadd/datatable/body/selection"
	"github.com/hnimtadd/datatable/body/shadow"
	"github.com/hnimtadd/datatable/body/width"
	"github.com/hnimtadd/datatable/logger"
)

var ErrPageOutOfRange = errors.New("page out of range")

type Options struct {
	Columns []column.Descriptor
	Data    []*node.Node

	// PageSize of zero puts every row on one page.
	PageSize int

	// Source owns check/uncheck propagation. Defaults to a flat source.
	Source selection.Source

	RowClassName layout.RowClassName
	Cells        cell.Renderer
	Width        width.Formatter

	// ScrollX overrides the table's horizontal extent.
	ScrollX width.Length

	// OnCheckedRowKeysChange is called with every newly published set.
	OnCheckedRowKeysChange func(keys keyset.Set)

	Logger logger.Logger
}

// Controller is the table-wide owner of the state the body renders: the
// rows and their pagination, the checked-key set, the pinned-column offsets
// and the body's scroll position.
type Controller struct {
	mu sync.Mutex

	columns  []column.Descriptor
	data     []*node.Node
	keys     map[node.Key]struct{}
	pageSize int
	page     int

	checked keyset.Set
	offsets fixed.Offsets
	active  shadow.Active

	scrollLeft, scrollTop int
	scrollSyncs           []func(left, top int)

	source       selection.Source
	rowClassName layout.RowClassName
	cells        cell.Renderer
	width        width.Formatter
	scrollX      width.Length
	onChecked    func(keys keyset.Set)

	logger logger.Logger
}

func NewController(opts Options) (*Controller, error) {
	if err := column.Validate(opts.Columns); err != nil {
		return nil, fmt.Errorf("invalid columns: %w", err)
	}
	if opts.PageSize < 0 {
		return nil, fmt.Errorf("page size %d is negative", opts.PageSize)
	}

	c := &Controller{
		columns:      opts.Columns,
		pageSize:     opts.PageSize,
		page:         1,
		source:       opts.Source,
		rowClassName: opts.RowClassName,
		cells:        opts.Cells,
		width:        opts.Width,
		scrollX:      opts.ScrollX,
		onChecked:    opts.OnCheckedRowKeysChange,
		logger:       logger.OrDiscard(opts.Logger),
	}
	if c.source == nil {
		c.source = selection.FlatSource{}
	}
	if c.width == nil {
		c.width = width.Format
	}
	c.offsets = fixed.Compute(c.columns, c.width)
	c.setData(opts.Data)
	return c, nil
}

// SetColumns replaces the column configuration and recomputes the pinned
// offsets.
func (c *Controller) SetColumns(columns []column.Descriptor) error {
	if err := column.Validate(columns); err != nil {
		c.logger.Warn("rejecting column configuration", "error", err)
		return fmt.Errorf("invalid columns: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.columns = columns
	c.offsets = fixed.Compute(columns, c.width)
	return nil
}

// SetData replaces the rows. The page is clamped and checked keys that no
// longer exist are dropped.
func (c *Controller) SetData(data []*node.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setData(data)
}

func (c *Controller) setData(data []*node.Node) {
	c.data = data
	c.keys = hierarchyKeys(data)
	c.page = min(max(c.page, 1), c.pageCount())
	c.checked = c.prune(c.checked)
}

func (c *Controller) Columns() []column.Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.columns
}

// Page is the current 1-based page.
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageCount()
}

func (c *Controller) pageCount() int {
	if c.pageSize == 0 || len(c.data) == 0 {
		return 1
	}
	return (len(c.data) + c.pageSize - 1) / c.pageSize
}

func (c *Controller) SetPage(page int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 1 || page > c.pageCount() {
		return fmt.Errorf("page %d of %d: %w", page, c.pageCount(), ErrPageOutOfRange)
	}
	if page != c.page {
		c.logger.Debug("page changed", "from", c.page, "to", page)
	}
	c.page = page
	return nil
}

// PaginatedData returns the rows of the current page in order.
func (c *Controller) PaginatedData() []*node.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paginated()
}

func (c *Controller) paginated() []*node.Node {
	if c.pageSize == 0 {
		return c.data
	}
	start := min((c.page-1)*c.pageSize, len(c.data))
	end := min(start+c.pageSize, len(c.data))
	return c.data[start:end]
}

// CheckedRowKeys returns the authoritative checked-key set.
func (c *Controller) CheckedRowKeys() keyset.Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checked
}

// UpdateCheckedRowKeys replaces the checked-key set. Keys that name neither a
// row, a descendant reachable through ChildKeys, nor a key the source reports
// as its own are dropped.
func (c *Controller) UpdateCheckedRowKeys(keys keyset.Set) {
	c.mu.Lock()
	c.checked = c.prune(keys)
	next, notify := c.checked, c.onChecked
	c.mu.Unlock()

	if dropped := keys.Len() - next.Len(); dropped > 0 {
		c.logger.Warn("dropping unknown checked keys", "count", dropped)
	}
	if notify != nil {
		notify(next)
	}
}

func (c *Controller) prune(keys keyset.Set) keyset.Set {
	membership, _ := c.source.(selection.Membership)
	return keys.Filter(func(k node.Key) bool {
		if _, ok := c.keys[k]; ok {
			return true
		}
		return membership != nil && membership.Has(k)
	})
}

// hierarchyKeys collects the key of every node in data and of every
// descendant named through ChildKeys, following children that are themselves
// present in data.
func hierarchyKeys(data []*node.Node) map[node.Key]struct{} {
	byKey := make(map[node.Key]*node.Node, len(data))
	pending := make([]node.Key, 0, len(data))
	for _, n := range data {
		byKey[n.Key] = n
		pending = append(pending, n.Key)
	}

	keys := make(map[node.Key]struct{}, len(data))
	for len(pending) > 0 {
		k := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if _, seen := keys[k]; seen {
			continue
		}
		keys[k] = struct{}{}
		if n, ok := byKey[k]; ok && !n.IsLeaf() {
			pending = append(pending, n.ChildKeys...)
		}
	}
	return keys
}

// SetActiveFixedKeys records which pinned columns sit at the scroll boundary.
// Deciding that is up to the caller's scroll tracking.
func (c *Controller) SetActiveFixedKeys(active shadow.Active) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = active
}

func (c *Controller) ActiveFixedKeys() shadow.Active {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Controller) Offsets() fixed.Offsets {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offsets
}

// OnBodyScroll registers a sibling, such as a frozen header, that follows
// the body's scroll position.
func (c *Controller) OnBodyScroll(fn func(left, top int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrollSyncs = append(c.scrollSyncs, fn)
}

// HandleTableBodyScroll records the body's offsets and notifies every synced
// sibling.
func (c *Controller) HandleTableBodyScroll(ev *scroll.Event) {
	c.mu.Lock()
	c.scrollLeft, c.scrollTop = ev.ScrollLeft, ev.ScrollTop
	syncs := append([]func(int, int){}, c.scrollSyncs...)
	c.mu.Unlock()

	c.logger.Debug("body scrolled", "left", ev.ScrollLeft, "top", ev.ScrollTop)
	for _, fn := range syncs {
		fn(ev.ScrollLeft, ev.ScrollTop)
	}
}

// ScrollOffset returns the last reported body scroll position.
func (c *Controller) ScrollOffset() (left, top int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scrollLeft, c.scrollTop
}

// State snapshots everything a body render pass needs.
func (c *Controller) State() compose.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return compose.State{
		Columns:      c.columns,
		Rows:         c.paginated(),
		CheckedKeys:  c.checked,
		Offsets:      c.offsets,
		Active:       c.active,
		Page:         c.page,
		RowClassName: c.rowClassName,
		Cells:        c.cells,
		Width:        c.width,
		ScrollX:      c.scrollX,
	}
}

func (c *Controller) Source() selection.Source {
	return c.source
}
