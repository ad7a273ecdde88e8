package column

import "fmt"

// Key identifies a column. Keys are unique within one render pass.
type Key string

// Kind selects how the cells of a column are rendered.
type Kind int

const (
	// KindGeneric cells are rendered by the pluggable cell renderer.
	KindGeneric Kind = iota
	// KindSelection cells hold the row selection checkbox.
	KindSelection
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindSelection:
		return "selection"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Fixed is the side a column is pinned to during horizontal scroll.
type Fixed int

const (
	FixedNone Fixed = iota
	FixedLeft
	FixedRight
)

func (f Fixed) String() string {
	switch f {
	case FixedNone:
		return ""
	case FixedLeft:
		return "left"
	case FixedRight:
		return "right"
	default:
		return fmt.Sprintf("Fixed(%d)", int(f))
	}
}

type Align string

const (
	AlignNone   Align = ""
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// DisabledFunc reports whether the selection checkbox of a row is disabled.
type DisabledFunc func(raw any) bool

// RenderFunc produces the text of a generic cell from the raw record.
type RenderFunc func(raw any, index int) string

// Descriptor configures one column. It is immutable for the duration of a
// render pass.
type Descriptor struct {
	Key   Key
	Title string
	Kind  Kind

	Fixed     Fixed
	Align     Align
	Disabled  DisabledFunc
	ClassName string
	Ellipsis  bool

	// Width and MinWidth are in terminal cells; zero means unset.
	Width    int
	MinWidth int

	Render RenderFunc
}

// IsDisabled evaluates the disabled predicate. An absent predicate means the
// row is selectable.
func (d *Descriptor) IsDisabled(raw any) bool {
	if d.Disabled == nil {
		return false
	}
	return d.Disabled(raw)
}

func (d *Descriptor) IsFixed() bool {
	return d.Fixed == FixedLeft || d.Fixed == FixedRight
}

// Selection returns a selection column with the given key.
func Selection(key Key) Descriptor {
	return Descriptor{Key: key, Kind: KindSelection, Align: AlignCenter, Width: 3}
}
