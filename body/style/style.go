package style

import (
	"fmt"

	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/internal/assert"
	"github.com/mitchellh/hashstructure/v2"
)

// Cell is the positional style of a body cell. A nil offset is unset, which
// is different from an offset of zero: the first left-pinned column sits at
// offset zero and must still be anchored.
type Cell struct {
	TextAlign column.Align
	Left      *int
	Right     *int
}

// Offset returns a pointer to v for use as a Cell offset.
func Offset(v int) *int {
	return &v
}

// LeftOffset returns the left offset and whether it is set.
func (s Cell) LeftOffset() (int, bool) {
	if s.Left == nil {
		return 0, false
	}
	return *s.Left, true
}

// RightOffset returns the right offset and whether it is set.
func (s Cell) RightOffset() (int, bool) {
	if s.Right == nil {
		return 0, false
	}
	return *s.Right, true
}

func (s Cell) IsDefault() bool {
	return s.TextAlign == column.AlignNone && s.Left == nil && s.Right == nil
}

// hashed is the by-value form of Cell. hashstructure hashes a nil pointer as
// the zero value, which would make an unset offset collide with offset zero.
type hashed struct {
	TextAlign column.Align
	HasLeft   bool
	Left      int
	HasRight  bool
	Right     int
}

// Hash hashes the style by value, so two styles with equal offsets behind
// different pointers hash the same.
func (s Cell) Hash() uint64 {
	h := hashed{TextAlign: s.TextAlign}
	h.Left, h.HasLeft = s.LeftOffset()
	h.Right, h.HasRight = s.RightOffset()
	sum, err := hashstructure.Hash(h, hashstructure.FormatV2, nil)
	assert.That(err == nil, fmt.Sprintf("failed to hash cell style: %v", err))
	return sum
}

func (s Cell) String() string {
	if s.IsDefault() {
		return "Cell{ }"
	}
	out := "Cell{"
	if s.TextAlign != column.AlignNone {
		out += fmt.Sprintf(" text-align: %s;", s.TextAlign)
	}
	if v, ok := s.LeftOffset(); ok {
		out += fmt.Sprintf(" left: %d;", v)
	}
	if v, ok := s.RightOffset(); ok {
		out += fmt.Sprintf(" right: %d;", v)
	}
	return out + " }"
}
