package compose

import (
	"testing"

	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/fixed"
	"github.com/hnimtadd/datatable/body/keyset"
	"github.com/hnimtadd/datatable/body/node"
	"github.com/hnimtadd/datatable/body/scroll"
	"github.com/hnimtadd/datatable/body/shadow"
	"github.com/hnimtadd/datatable/body/style"
	"github.com/hnimtadd/datatable/body/tags"
	"github.com/hnimtadd/datatable/body/width"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() State {
	columns := []column.Descriptor{
		{Key: "sel", Kind: column.KindSelection, Fixed: column.FixedLeft, Width: 3},
		{Key: "name", Fixed: column.FixedLeft, Width: 10},
		{Key: "city", Width: 12},
		{Key: "age", Fixed: column.FixedRight, Width: 5, Align: column.AlignRight},
	}
	return State{
		Columns: columns,
		Rows: []*node.Node{
			node.New("1", map[string]any{"name": "Ada", "city": "London", "age": 36}),
			node.New("2", map[string]any{"name": "Linus", "city": "Helsinki", "age": 54}),
		},
		CheckedKeys: keyset.New("2"),
		Offsets:     fixed.Compute(columns, nil),
		Active:      shadow.Active{Left: "name", Right: "age"},
		Page:        1,
	}
}

func TestCompose_Structure(t *testing.T) {
	table := Compose(testState())

	assert.Equal(t, []Col{
		{Key: "sel", Width: "3", Fixed: column.FixedLeft, Style: style.Cell{Left: style.Offset(0)}},
		{Key: "name", Width: "10", Fixed: column.FixedLeft, Style: style.Cell{Left: style.Offset(3)}},
		{Key: "city", Width: "12"},
		{Key: "age", Width: "5", Fixed: column.FixedRight, Style: style.Cell{TextAlign: column.AlignRight, Right: style.Offset(0)}},
	}, table.ColGroup)

	assert.Equal(t, scroll.BodyConfig("30"), table.Scroll, "min width is the total extent")
	require.Len(t, table.Rows, 2)
	assert.Equal(t, node.Key("1"), table.Rows[0].Key)
	assert.Equal(t, node.Key("2"), table.Rows[1].Key)

	name, ok := table.Cell("1", "name")
	require.True(t, ok)
	left, ok := name.Style.LeftOffset()
	assert.True(t, ok)
	assert.Equal(t, 3, left)
	assert.True(t, name.Tags.Has(tags.ShadowAfter))

	age, ok := table.Cell("2", "age")
	require.True(t, ok)
	assert.Equal(t, "54", age.Content)
	assert.True(t, age.Tags.Has(tags.ShadowBefore))

	sel, ok := table.Cell("2", "sel")
	require.True(t, ok)
	assert.True(t, sel.Selection.Checked)

	_, ok = table.Cell("3", "sel")
	assert.False(t, ok)
	_, ok = table.Cell("1", "missing")
	assert.False(t, ok)
}

func TestCompose_ExplicitScrollXAndFormatter(t *testing.T) {
	state := testState()
	state.ScrollX = width.FromCells(200)
	state.Width = func(c *column.Descriptor, index int) width.Length {
		return width.FromCells(index + 1)
	}

	table := Compose(state)

	assert.Equal(t, width.Length("200"), table.Scroll.ContentMinWidth)
	assert.Equal(t, width.Length("4"), table.ColGroup[3].Width)
}

func TestCompose_Idempotent(t *testing.T) {
	state := testState()
	var calls int
	state.OnCheck = func(*node.Node, bool) { calls++ }

	first := Compose(state)
	second := Compose(state)

	assert.Equal(t, first.Hash(), second.Hash())
	assert.Zero(t, calls, "composing never emits events")
}

func TestCompose_HashTracksInputs(t *testing.T) {
	base := Compose(testState()).Hash()

	checked := testState()
	checked.CheckedKeys = keyset.New("1", "2")
	assert.NotEqual(t, base, Compose(checked).Hash())

	paged := testState()
	paged.Page = 2
	assert.NotEqual(t, base, Compose(paged).Hash())

	unshadowed := testState()
	unshadowed.Active = shadow.Active{}
	assert.NotEqual(t, base, Compose(unshadowed).Hash())

	// Dropping the entry of a pinned column at offset zero must change the
	// output even though zero is the default int.
	unpinned := testState()
	unpinned.Offsets = fixed.Offsets{
		Left:  map[column.Key]int{"name": 3},
		Right: map[column.Key]int{"age": 0},
	}
	assert.NotEqual(t, base, Compose(unpinned).Hash())
}

func TestCompose_Empty(t *testing.T) {
	table := Compose(State{})
	assert.Empty(t, table.Rows)
	assert.Empty(t, table.ColGroup)
	assert.True(t, table.Scroll.ContentMinWidth.IsAuto())
}
