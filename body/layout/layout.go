// Package layout computes the rows and cells of the table body: positional
// style, structural markers and the renderer each cell dispatches to.
//
// Layout is a pure function of its Context. The same Context always yields
// the same rows, so a host may re-run it on every input change.
package layout

import (
	"github.com/hnimtadd/datatable/body/cell"
	"github.com/hnimtadd/datatable/body/checkbox"
	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/fixed"
	"github.com/hnimtadd/datatable/body/keyset"
	"github.com/hnimtadd/datatable/body/node"
	"github.com/hnimtadd/datatable/body/shadow"
	"github.com/hnimtadd/datatable/body/style"
	"github.com/hnimtadd/datatable/body/tags"
)

// RowClassName classifies a row for styling.
type RowClassName interface {
	RowClass(raw any, index int) string
}

// StaticRowClass gives every row the same class.
type StaticRowClass string

func (s StaticRowClass) RowClass(any, int) string { return string(s) }

// RowClassFunc classifies rows with a function.
type RowClassFunc func(raw any, index int) string

func (f RowClassFunc) RowClass(raw any, index int) string { return f(raw, index) }

// Context is everything a layout pass reads.
type Context struct {
	Columns     []column.Descriptor
	CheckedKeys keyset.Set
	Offsets     fixed.Offsets
	Active      shadow.Active

	// Page keys every selection checkbox, so that changing pages remounts
	// them.
	Page int

	RowClassName RowClassName
	Cells        cell.Renderer

	// OnCheck receives checkbox toggles.
	OnCheck func(row *node.Node, checked bool)
}

type Row struct {
	Key       node.Key
	Index     int
	ClassName string
	Cells     []Cell
}

// Classes returns the row's class list.
func (r *Row) Classes() []string {
	if r.ClassName == "" {
		return []string{tags.Row}
	}
	return []string{tags.Row, r.ClassName}
}

type Cell struct {
	Column    column.Key
	Kind      column.Kind
	Style     style.Cell `hash:"string"`
	Tags      tags.Set
	ClassName string

	// Exactly one of Content and Selection is meaningful, depending on Kind.
	Content   string
	Selection *checkbox.Props
}

// Classes returns the cell's class list: the base marker, the column class,
// then the remaining markers.
func (c *Cell) Classes() []string {
	out := make([]string, 0, c.Tags.Count()+1)
	if c.Tags.Has(tags.Cell) {
		out = append(out, tags.Name(tags.Cell))
	}
	if c.ClassName != "" {
		out = append(out, c.ClassName)
	}
	return append(out, c.Tags.Without(tags.Cell).Names()...)
}

// Rows lays out the paginated rows in order.
func Rows(ctx *Context, rows []*node.Node) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = LayoutRow(ctx, row, i)
	}
	return out
}

// LayoutRow lays out one row at index within the current page.
func LayoutRow(ctx *Context, row *node.Node, index int) Row {
	r := Row{
		Key:   row.Key,
		Index: index,
		Cells: make([]Cell, len(ctx.Columns)),
	}
	if ctx.RowClassName != nil {
		r.ClassName = ctx.RowClassName.RowClass(row.Raw, index)
	}
	for i := range ctx.Columns {
		r.Cells[i] = LayoutCell(ctx, row, index, &ctx.Columns[i])
	}
	return r
}

// LayoutCell lays out the cell of row in column c.
func LayoutCell(ctx *Context, row *node.Node, index int, c *column.Descriptor) Cell {
	out := Cell{
		Column:    c.Key,
		Kind:      c.Kind,
		Style:     CellStyle(c, ctx.Offsets),
		Tags:      CellTags(c, ctx.Active),
		ClassName: c.ClassName,
	}

	switch c.Kind {
	case column.KindSelection:
		props := checkbox.Props{
			Checked:  ctx.CheckedKeys.Has(row.Key),
			Disabled: c.IsDisabled(row.Raw),
			Key:      checkbox.InstanceKey{Page: ctx.Page},
		}
		if onCheck := ctx.OnCheck; onCheck != nil {
			props.OnUpdateChecked = func(checked bool) {
				onCheck(row, checked)
			}
		}
		out.Selection = &props
	default:
		renderer := ctx.Cells
		if renderer == nil {
			renderer = cell.Default{}
		}
		out.Content = renderer.RenderCell(row, c, index)
	}
	return out
}

// CellStyle is the positional style of c. Offsets apply only on the side the
// column is pinned to; a missing entry leaves the offset unset.
func CellStyle(c *column.Descriptor, offsets fixed.Offsets) style.Cell {
	s := style.Cell{TextAlign: c.Align}
	if !c.IsFixed() {
		return s
	}
	switch c.Fixed {
	case column.FixedLeft:
		if v, ok := offsets.LeftOf(c.Key); ok {
			s.Left = style.Offset(v)
		}
	case column.FixedRight:
		if v, ok := offsets.RightOf(c.Key); ok {
			s.Right = style.Offset(v)
		}
	}
	return s
}

// CellTags is the marker set of c.
func CellTags(c *column.Descriptor, active shadow.Active) tags.Set {
	t := tags.Cell.
		With(tags.ForFixed(c.Fixed)).
		With(tags.ForAlign(c.Align)).
		With(active.Tags(c.Key))
	if c.Ellipsis {
		t = t.With(tags.Ellipsis)
	}
	if c.Kind == column.KindSelection {
		t = t.With(tags.Selection)
	}
	return t
}
