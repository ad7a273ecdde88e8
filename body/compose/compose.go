// Package compose assembles the table body from its parts.
package compose

import (
	"fmt"

	"github.com/hnimtadd/datatable/body/cell"
	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/fixed"
	"github.com/hnimtadd/datatable/body/keyset"
	"github.com/hnimtadd/datatable/body/layout"
	"github.com/hnimtadd/datatable/body/node"
	"github.com/hnimtadd/datatable/body/scroll"
	"github.com/hnimtadd/datatable/body/shadow"
	"github.com/hnimtadd/datatable/body/style"
	"github.com/hnimtadd/datatable/body/width"
	"github.com/hnimtadd/datatable/internal/assert"
	"github.com/mitchellh/hashstructure/v2"
)

// State is the full input of one render pass.
type State struct {
	Columns     []column.Descriptor
	Rows        []*node.Node // current page only, in display order
	CheckedKeys keyset.Set
	Offsets     fixed.Offsets
	Active      shadow.Active
	Page        int

	RowClassName layout.RowClassName
	Cells        cell.Renderer
	Width        width.Formatter

	// ScrollX is the table's total horizontal extent. Auto falls back to the
	// sum of the column widths.
	ScrollX width.Length

	OnCheck func(row *node.Node, checked bool)
}

// Col is one sizing slot of the column group. Fixed and Style repeat what
// every cell of the column carries, so hosts can place a column without
// looking at its rows.
type Col struct {
	Key   column.Key
	Width width.Length
	Fixed column.Fixed
	Style style.Cell `hash:"string"`
}

type Table struct {
	Scroll   scroll.Config
	ColGroup []Col
	Rows     []layout.Row
}

// Compose renders state into a table. It reads nothing but state.
func Compose(state State) *Table {
	format := state.Width
	if format == nil {
		format = width.Format
	}

	scrollX := state.ScrollX
	if scrollX.IsAuto() {
		scrollX = width.FromCells(width.Total(state.Columns, format))
	}

	cols := make([]Col, len(state.Columns))
	for i := range state.Columns {
		c := &state.Columns[i]
		cols[i] = Col{
			Key:   c.Key,
			Width: format(c, i),
			Fixed: c.Fixed,
			Style: layout.CellStyle(c, state.Offsets),
		}
	}

	ctx := &layout.Context{
		Columns:      state.Columns,
		CheckedKeys:  state.CheckedKeys,
		Offsets:      state.Offsets,
		Active:       state.Active,
		Page:         state.Page,
		RowClassName: state.RowClassName,
		Cells:        state.Cells,
		OnCheck:      state.OnCheck,
	}

	return &Table{
		Scroll:   scroll.BodyConfig(scrollX),
		ColGroup: cols,
		Rows:     layout.Rows(ctx, state.Rows),
	}
}

// Hash fingerprints the rendered output. Event callbacks are not part of it.
func (t *Table) Hash() uint64 {
	hashed, err := hashstructure.Hash(t, hashstructure.FormatV2, nil)
	assert.That(err == nil, fmt.Sprintf("failed to hash table: %v", err))
	return hashed
}

// Cell returns the cell of row in column key.
func (t *Table) Cell(row node.Key, key column.Key) (*layout.Cell, bool) {
	for i := range t.Rows {
		if t.Rows[i].Key != row {
			continue
		}
		for j := range t.Rows[i].Cells {
			if t.Rows[i].Cells[j].Column == key {
				return &t.Rows[i].Cells[j], true
			}
		}
	}
	return nil, false
}
