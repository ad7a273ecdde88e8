// Package shadow applies the scroll-boundary shadow cue to pinned cells.
//
// Which pinned column currently sits at the boundary is decided by the scroll
// tracker that owns the table; this package only consumes its answer.
package shadow

import (
	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/tags"
)

// Active names the pinned columns at the left and right scroll boundary. An
// empty key means no column is active on that side.
type Active struct {
	Left  column.Key
	Right column.Key
}

// Tags returns the shadow markers for the column with the given key. Each
// side is checked on its own, so a column matching both sides carries both
// markers and a column matching neither carries none.
func (a Active) Tags(key column.Key) tags.Set {
	var t tags.Set
	if a.IsZero() {
		return t
	}
	if a.Left != "" && a.Left == key {
		t = t.With(tags.ShadowAfter)
	}
	if a.Right != "" && a.Right == key {
		t = t.With(tags.ShadowBefore)
	}
	return t
}

func (a Active) IsZero() bool {
	return a.Left == "" && a.Right == ""
}
