package text

import (
	"strings"

	dw "github.com/mattn/go-runewidth"
)

// glyph is one terminal cell. A wide character occupies its head cell with
// width 2 and a continuation cell with width 0.
type glyph struct {
	s string
	w int
}

var blank = glyph{s: " ", w: 1}

// line is a fixed-width row of cells that clips everything written outside
// of it.
type line []glyph

func newLine(width int) line {
	l := make(line, max(width, 0))
	for i := range l {
		l[i] = blank
	}
	return l
}

// write draws s starting at x.
func (l line) write(x int, s string) {
	for _, r := range s {
		w := dw.RuneWidth(r)
		if w == 0 {
			// Combining marks join whatever sits on the cell before them.
			if p := x - 1; p >= 0 && p < len(l) && l[p].w > 0 {
				l[p].s += string(r)
			}
			continue
		}
		switch {
		case x+w <= 0 || x >= len(l):
		case x < 0 || x+w > len(l):
			// A wide character cut by an edge leaves blanks behind.
			for p := max(x, 0); p < min(x+w, len(l)); p++ {
				l.put(p, blank)
			}
		default:
			l.put(x, glyph{s: string(r), w: w})
			for p := x + 1; p < x+w; p++ {
				l.put(p, glyph{})
			}
		}
		x += w
	}
}

// put replaces cell p, blanking the halves of any wide character it breaks.
func (l line) put(p int, g glyph) {
	old := l[p]
	switch {
	case old.w == 0 && p > 0 && l[p-1].w > 1 && g.w != 0:
		l[p-1] = blank
	case old.w > 1 && p+1 < len(l) && l[p+1].w == 0:
		l[p+1] = blank
	}
	l[p] = g
}

func (l line) String() string {
	var b strings.Builder
	for _, g := range l {
		if g.w == 0 {
			continue
		}
		b.WriteString(g.s)
	}
	return b.String()
}
