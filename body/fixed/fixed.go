// Package fixed computes the boundary offsets of pinned columns.
package fixed

import (
	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/width"
)

// Offsets maps pinned column keys to their distance, in cells, from the edge
// they are pinned to.
type Offsets struct {
	Left  map[column.Key]int
	Right map[column.Key]int
}

// LeftOf returns the left offset of key. A nil map yields no offset.
func (o Offsets) LeftOf(key column.Key) (int, bool) {
	v, ok := o.Left[key]
	return v, ok
}

// RightOf returns the right offset of key. A nil map yields no offset.
func (o Offsets) RightOf(key column.Key) (int, bool) {
	v, ok := o.Right[key]
	return v, ok
}

// Compute derives offsets from the column widths. A left-pinned column sits
// after every left-pinned column before it; a right-pinned column sits before
// every right-pinned column after it. Unpinned columns get no entry and
// columns with an Auto width count as zero wide.
func Compute(columns []column.Descriptor, format width.Formatter) Offsets {
	if format == nil {
		format = width.Format
	}
	cells := func(i int) int {
		n, _ := format(&columns[i], i).Cells()
		return n
	}

	out := Offsets{
		Left:  make(map[column.Key]int),
		Right: make(map[column.Key]int),
	}
	left := 0
	for i := range columns {
		if columns[i].Fixed != column.FixedLeft {
			continue
		}
		out.Left[columns[i].Key] = left
		left += cells(i)
	}
	right := 0
	for i := len(columns) - 1; i >= 0; i-- {
		if columns[i].Fixed != column.FixedRight {
			continue
		}
		out.Right[columns[i].Key] = right
		right += cells(i)
	}
	return out
}
