// Package text draws a composed table body into terminal lines.
//
// The renderer plays the part of the scroll surface: it is the only place
// that turns a horizontal scroll offset into positions. Columns whose style
// carries an offset stick to their edge behind the pinned columns drawn
// before them, and the shadow cue is drawn as a separator next to the active
// pinned column.
package text

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/compose"
	"github.com/hnimtadd/datatable/body/layout"
	"github.com/hnimtadd/datatable/body/tags"
	"github.com/hnimtadd/datatable/internal/assert"
	dw "github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultSeparator = "│"
	ellipsis         = "…"
)

type Theme struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
}

// DefaultTheme returns the theme used when none is configured.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Header:   r.NewStyle().Bold(true),
		Row:      r.NewStyle(),
		Selected: r.NewStyle().Reverse(true),
	}
}

type Options struct {
	// Width of the viewport in cells.
	Width int

	// Output is where the lines end up; it decides the color profile. A nil
	// Output renders plain text.
	Output io.Writer

	Theme     *Theme
	Separator string
}

type Renderer struct {
	width     int
	lg        *lipgloss.Renderer
	theme     Theme
	separator string
}

func New(opts Options) *Renderer {
	var lg *lipgloss.Renderer
	if opts.Output == nil {
		lg = lipgloss.NewRenderer(io.Discard)
		lg.SetColorProfile(termenv.Ascii)
	} else {
		lg = lipgloss.NewRenderer(opts.Output)
	}

	r := &Renderer{
		width:     opts.Width,
		lg:        lg,
		separator: opts.Separator,
	}
	if r.separator == "" {
		r.separator = DefaultSeparator
	}
	if opts.Theme != nil {
		r.theme = *opts.Theme
	} else {
		r.theme = DefaultTheme(lg)
	}
	return r
}

func (r *Renderer) Width() int { return r.width }

func (r *Renderer) SetWidth(w int) { r.width = w }

// Widths returns the width of every column: the column group width when it
// is set, otherwise the widest cell content, and at least one cell.
func (r *Renderer) Widths(t *compose.Table) []int {
	widths := make([]int, len(t.ColGroup))
	for i, col := range t.ColGroup {
		if n, ok := col.Width.Cells(); ok && n > 0 {
			widths[i] = n
			continue
		}
		w := 1
		for j := range t.Rows {
			if i < len(t.Rows[j].Cells) {
				w = max(w, dw.StringWidth(cellText(&t.Rows[j].Cells[i])))
			}
		}
		widths[i] = w
	}
	return widths
}

// ContentWidth is the width of the whole table, for sizing the scroll
// surface.
func (r *Renderer) ContentWidth(t *compose.Table) int {
	total := 0
	for _, w := range r.Widths(t) {
		total += w
	}
	return total
}

// Lines draws every body row at the given horizontal offset.
func (r *Renderer) Lines(t *compose.Table, scrollLeft int) []string {
	widths := r.Widths(t)
	out := make([]string, len(t.Rows))
	for i := range t.Rows {
		row := &t.Rows[i]
		assert.That(len(row.Cells) == len(t.ColGroup), "row and column group disagree")

		texts := make([]string, len(row.Cells))
		marks := make([]tags.Set, len(row.Cells))
		aligns := make([]column.Align, len(row.Cells))
		for j := range row.Cells {
			texts[j] = cellText(&row.Cells[j])
			marks[j] = row.Cells[j].Tags
			aligns[j] = row.Cells[j].Style.TextAlign
		}
		line := r.draw(t, widths, texts, marks, aligns, scrollLeft)
		if isSelected(row) {
			line = r.theme.Selected.Render(line)
		} else {
			line = r.theme.Row.Render(line)
		}
		out[i] = line
	}
	return out
}

// Render joins Lines with newlines.
func (r *Renderer) Render(t *compose.Table, scrollLeft int) string {
	return strings.Join(r.Lines(t, scrollLeft), "\n")
}

// Header draws a title line placed exactly like the body at scrollLeft, so a
// header fed the body's scroll offset stays aligned with it.
func (r *Renderer) Header(t *compose.Table, titles map[column.Key]string, scrollLeft int) string {
	widths := r.Widths(t)
	texts := make([]string, len(t.ColGroup))
	marks := make([]tags.Set, len(t.ColGroup))
	aligns := make([]column.Align, len(t.ColGroup))
	for i, col := range t.ColGroup {
		texts[i] = titles[col.Key]
		aligns[i] = col.Style.TextAlign
		marks[i] = tags.Ellipsis
		// Shadow markers are per cell; the first row carries the column's.
		if len(t.Rows) > 0 {
			marks[i] |= t.Rows[0].Cells[i].Tags & (tags.ShadowAfter | tags.ShadowBefore)
		}
	}
	return r.theme.Header.Render(r.draw(t, widths, texts, marks, aligns, scrollLeft))
}

func (r *Renderer) draw(
	t *compose.Table,
	widths []int,
	texts []string,
	marks []tags.Set,
	aligns []column.Align,
	scrollLeft int,
) string {
	buf := newLine(r.width)

	offsets := PinnedOffsets(t, widths)
	xs := make([]int, len(widths))
	natural := 0
	for i, w := range widths {
		xs[i] = r.place(&t.ColGroup[i], natural, w, offsets[i], scrollLeft)
		natural += w
	}

	// Scrolling columns first so pinned ones paint over them.
	for _, pinned := range []bool{false, true} {
		for i := range t.ColGroup {
			if isPinned(&t.ColGroup[i]) != pinned {
				continue
			}
			buf.write(xs[i], r.fit(texts[i], widths[i], aligns[i], marks[i].Has(tags.Ellipsis)))
			if marks[i].Has(tags.ShadowAfter) {
				buf.write(xs[i]+widths[i], r.separator)
			}
			if marks[i].Has(tags.ShadowBefore) {
				buf.write(xs[i]-1, r.separator)
			}
		}
	}
	return buf.String()
}

// place returns the on-screen x of a column whose unscrolled x is natural.
// offset is its distance from the edge it is pinned to, or -1.
func (r *Renderer) place(col *compose.Col, natural, w, offset, scrollLeft int) int {
	x := natural - scrollLeft
	if offset < 0 {
		return x
	}
	switch col.Fixed {
	case column.FixedLeft:
		return max(x, offset)
	case column.FixedRight:
		return min(x, r.width-offset-w)
	}
	return x
}

// PinnedOffsets measures how far each anchored column sits from the edge it
// is pinned to, using the rendered widths: the widths of the anchored
// left-pinned columns before it, or of the anchored right-pinned columns
// after it. Columns that are not anchored get -1. The offsets in the cell
// styles only decide which columns are anchored, since content-sized columns
// count as zero wide there.
func PinnedOffsets(t *compose.Table, widths []int) []int {
	offsets := make([]int, len(t.ColGroup))
	for i := range offsets {
		offsets[i] = -1
	}
	left := 0
	for i := range t.ColGroup {
		if t.ColGroup[i].Fixed == column.FixedLeft && isPinned(&t.ColGroup[i]) {
			offsets[i] = left
			left += widths[i]
		}
	}
	right := 0
	for i := len(t.ColGroup) - 1; i >= 0; i-- {
		if t.ColGroup[i].Fixed == column.FixedRight && isPinned(&t.ColGroup[i]) {
			offsets[i] = right
			right += widths[i]
		}
	}
	return offsets
}

// fit truncates s to w cells and pads it according to align.
func (r *Renderer) fit(s string, w int, align column.Align, withEllipsis bool) string {
	s = norm.NFC.String(s)
	tail := ""
	if withEllipsis {
		tail = ellipsis
	}
	s = dw.Truncate(s, w, tail)

	pos := lipgloss.Left
	switch align {
	case column.AlignCenter:
		pos = lipgloss.Center
	case column.AlignRight:
		pos = lipgloss.Right
	}
	return r.lg.NewStyle().Width(w).Align(pos).Render(s)
}

func cellText(c *layout.Cell) string {
	switch c.Kind {
	case column.KindSelection:
		if c.Selection == nil {
			return ""
		}
		return c.Selection.Glyph()
	default:
		return c.Content
	}
}

func isPinned(col *compose.Col) bool {
	switch col.Fixed {
	case column.FixedLeft:
		_, ok := col.Style.LeftOffset()
		return ok
	case column.FixedRight:
		_, ok := col.Style.RightOffset()
		return ok
	default:
		return false
	}
}

func isSelected(row *layout.Row) bool {
	for i := range row.Cells {
		if s := row.Cells[i].Selection; s != nil && s.Checked {
			return true
		}
	}
	return false
}
