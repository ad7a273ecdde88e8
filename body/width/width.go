// Package width formats column widths for the body's column group.
package width

import (
	"strconv"

	"github.com/hnimtadd/datatable/body/column"
)

// Length is a formatted width. Plain digits are terminal cells; the empty
// Length means the width is left to the content.
type Length string

// Auto is the unset length.
const Auto Length = ""

// Formatter maps a column and its position to the width of its sizing slot.
type Formatter func(c *column.Descriptor, index int) Length

// FromCells formats a cell count. Non-positive counts are Auto.
func FromCells(n int) Length {
	if n <= 0 {
		return Auto
	}
	return Length(strconv.Itoa(n))
}

// Cells parses l back to a cell count.
func (l Length) Cells() (int, bool) {
	if l == Auto {
		return 0, false
	}
	n, err := strconv.Atoi(string(l))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (l Length) IsAuto() bool {
	return l == Auto
}

// Format is the default Formatter: the column width, falling back to its
// minimum width.
func Format(c *column.Descriptor, _ int) Length {
	if c.Width > 0 {
		return FromCells(c.Width)
	}
	return FromCells(c.MinWidth)
}

// Total is the horizontal extent of the columns, summing what Format yields.
// Auto columns contribute their minimum width, which is zero when unset.
func Total(columns []column.Descriptor, format Formatter) int {
	if format == nil {
		format = Format
	}
	total := 0
	for i := range columns {
		if n, ok := format(&columns[i], i).Cells(); ok {
			total += n
		}
	}
	return total
}
