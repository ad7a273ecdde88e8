package width

import (
	"testing"

	"github.com/hnimtadd/datatable/body/column"
	"github.com/stretchr/testify/assert"
)

func TestFromCells(t *testing.T) {
	assert.Equal(t, Length("12"), FromCells(12))
	assert.Equal(t, Auto, FromCells(0))
	assert.Equal(t, Auto, FromCells(-3))
}

func TestLength_Cells(t *testing.T) {
	n, ok := Length("8").Cells()
	assert.True(t, ok)
	assert.Equal(t, 8, n)

	_, ok = Auto.Cells()
	assert.False(t, ok)
	_, ok = Length("30%").Cells()
	assert.False(t, ok)
	_, ok = Length("-1").Cells()
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, Length("10"), Format(&column.Descriptor{Width: 10, MinWidth: 4}, 0))
	assert.Equal(t, Length("4"), Format(&column.Descriptor{MinWidth: 4}, 1))
	assert.True(t, Format(&column.Descriptor{}, 2).IsAuto())
}

func TestTotal(t *testing.T) {
	columns := []column.Descriptor{
		column.Selection("sel"),
		{Key: "name", Width: 10},
		{Key: "note"},
		{Key: "age", MinWidth: 5},
	}
	assert.Equal(t, 18, Total(columns, nil))

	double := func(c *column.Descriptor, i int) Length { return FromCells(2 * c.Width) }
	assert.Equal(t, 26, Total(columns, double))
}
