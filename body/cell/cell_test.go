package cell

import (
	"testing"

	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/node"
	"github.com/stretchr/testify/assert"
)

type person struct {
	Name    string
	Age     int
	Email   string `table:"mail"`
	private string
}

func TestField(t *testing.T) {
	p := person{Name: "Ada", Age: 36, Email: "ada@example.com", private: "x"}

	tests := []struct {
		name   string
		raw    any
		key    string
		want   any
		wantOK bool
	}{
		{name: "struct by name", raw: p, key: "Name", want: "Ada", wantOK: true},
		{name: "struct ignores case", raw: p, key: "age", want: 36, wantOK: true},
		{name: "struct by tag", raw: p, key: "mail", want: "ada@example.com", wantOK: true},
		{name: "struct pointer", raw: &p, key: "name", want: "Ada", wantOK: true},
		{name: "struct unexported", raw: p, key: "private"},
		{name: "struct missing", raw: p, key: "city"},
		{name: "map any", raw: map[string]any{"city": "Hue"}, key: "city", want: "Hue", wantOK: true},
		{name: "map string", raw: map[string]string{"city": "Hue"}, key: "city", want: "Hue", wantOK: true},
		{name: "map missing", raw: map[string]any{}, key: "city"},
		{name: "map non-string keys", raw: map[int]string{1: "x"}, key: "1"},
		{name: "nil", raw: nil, key: "a"},
		{name: "nil pointer", raw: (*person)(nil), key: "name"},
		{name: "scalar", raw: 42, key: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Field(tt.raw, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault_RenderCell(t *testing.T) {
	row := node.New("1", map[string]any{"name": "Ada", "age": 36, "note": nil})
	var r Renderer = Default{}

	assert.Equal(t, "Ada", r.RenderCell(row, &column.Descriptor{Key: "name"}, 0))
	assert.Equal(t, "36", r.RenderCell(row, &column.Descriptor{Key: "age"}, 0))
	assert.Equal(t, "", r.RenderCell(row, &column.Descriptor{Key: "note"}, 0))
	assert.Equal(t, "", r.RenderCell(row, &column.Descriptor{Key: "missing"}, 0))

	custom := &column.Descriptor{
		Key: "name",
		Render: func(raw any, index int) string {
			return raw.(map[string]any)["name"].(string) + "#" + string(rune('0'+index))
		},
	}
	assert.Equal(t, "Ada#3", r.RenderCell(row, custom, 3))
}

func TestRendererFunc(t *testing.T) {
	var r Renderer = RendererFunc(func(row *node.Node, c *column.Descriptor, index int) string {
		return string(row.Key) + "/" + string(c.Key)
	})
	assert.Equal(t, "7/name", r.RenderCell(node.New("7", nil), &column.Descriptor{Key: "name"}, 0))
}
