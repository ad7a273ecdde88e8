// Package cell renders the content of generic body cells.
package cell

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/node"
)

// Renderer produces the content of one generic cell. The body never looks
// inside the result.
type Renderer interface {
	RenderCell(row *node.Node, c *column.Descriptor, index int) string
}

type RendererFunc func(row *node.Node, c *column.Descriptor, index int) string

func (f RendererFunc) RenderCell(row *node.Node, c *column.Descriptor, index int) string {
	return f(row, c, index)
}

// Default renders through the column's Render func when it has one, and
// otherwise looks up the column key in the raw record.
type Default struct{}

func (Default) RenderCell(row *node.Node, c *column.Descriptor, index int) string {
	if c.Render != nil {
		return c.Render(row.Raw, index)
	}
	v, ok := Field(row.Raw, string(c.Key))
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Field looks key up in raw. Maps with string keys are indexed directly.
// Structs match a `table:"key"` tag first, then the field name ignoring case.
func Field(raw any, key string) (any, bool) {
	v := reflect.ValueOf(raw)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		item := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !item.IsValid() {
			return nil, false
		}
		return item.Interface(), true
	case reflect.Struct:
		t := v.Type()
		byName := -1
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if tag, _, _ := strings.Cut(f.Tag.Get("table"), ","); tag == key {
				return v.Field(i).Interface(), true
			}
			if byName < 0 && strings.EqualFold(f.Name, key) {
				byName = i
			}
		}
		if byName >= 0 {
			return v.Field(byName).Interface(), true
		}
	}
	return nil, false
}
