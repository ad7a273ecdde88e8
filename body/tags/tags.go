// Package tags holds the structural class markers attached to body rows and
// cells. The marker vocabulary is closed, so a cell's markers pack into a
// single bit set.
package tags

import (
	"math/bits"

	"github.com/hnimtadd/datatable/body/column"
)

// Set is a bit set of cell markers.
type Set uint16

const (
	Cell Set = 1 << iota
	FixedLeft
	FixedRight
	AlignLeft
	AlignCenter
	AlignRight
	Ellipsis
	ShadowAfter
	ShadowBefore
	Selection

	count = iota
)

const (
	// Row is the class every body row carries.
	Row = "data-table-tr"

	cellPrefix = "data-table-td"
)

// Order in which markers are emitted as class names.
var names = [count]string{
	cellPrefix,
	cellPrefix + "--fixed-left",
	cellPrefix + "--fixed-right",
	cellPrefix + "--left-align",
	cellPrefix + "--center-align",
	cellPrefix + "--right-align",
	cellPrefix + "--ellipsis",
	cellPrefix + "--shadow-after",
	cellPrefix + "--shadow-before",
	cellPrefix + "--selection",
}

func (s Set) Has(t Set) bool {
	return t != 0 && s&t == t
}

func (s Set) With(t Set) Set {
	return s | t
}

func (s Set) Without(t Set) Set {
	return s &^ t
}

// Count returns the number of markers set.
func (s Set) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Names returns the class names of the markers in s in emission order.
func (s Set) Names() []string {
	out := make([]string, 0, s.Count())
	for i := range count {
		if s&(1<<i) != 0 {
			out = append(out, names[i])
		}
	}
	return out
}

// Name returns the class name of a single marker, or "" if t is not exactly
// one marker.
func Name(t Set) string {
	if t.Count() != 1 {
		return ""
	}
	return names[bits.TrailingZeros16(uint16(t))]
}

// ForFixed returns the marker for a pinned side; FixedNone yields none.
func ForFixed(f column.Fixed) Set {
	switch f {
	case column.FixedLeft:
		return FixedLeft
	case column.FixedRight:
		return FixedRight
	default:
		return 0
	}
}

// ForAlign returns the marker for an alignment; AlignNone yields none.
func ForAlign(a column.Align) Set {
	switch a {
	case column.AlignLeft:
		return AlignLeft
	case column.AlignCenter:
		return AlignCenter
	case column.AlignRight:
		return AlignRight
	default:
		return 0
	}
}
