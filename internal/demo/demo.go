// Package demo is an interactive terminal host for the table body.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hnimtadd/datatable"
	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/compose"
	"github.com/hnimtadd/datatable/body/scroll"
	"github.com/hnimtadd/datatable/body/shadow"
	"github.com/hnimtadd/datatable/body/text"
	"github.com/hnimtadd/datatable/logger"
)

const DefaultStep = 4

var (
	cursorStyle = lipgloss.NewStyle().Underline(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Options struct {
	Body          *datatable.Body
	Width, Height int

	// Step is how many cells one horizontal key press scrolls.
	Step int

	// Output decides the color profile of the table. Nil renders plain text.
	Output io.Writer

	Logger logger.Logger
}

// header follows the body's horizontal offset through the controller.
type header struct {
	left int
}

type Model struct {
	body     *datatable.Body
	viewport *scroll.Viewport
	renderer *text.Renderer
	header   *header
	table    *compose.Table

	keys   KeyMap
	help   help.Model
	step   int
	cursor int
	status string

	logger logger.Logger
}

func New(opts Options) Model {
	m := Model{
		body:   opts.Body,
		header: &header{},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		step:   opts.Step,
		logger: logger.OrDiscard(opts.Logger),
	}
	if m.step <= 0 {
		m.step = DefaultStep
	}
	m.renderer = text.New(text.Options{Width: opts.Width, Output: opts.Output})

	m.table = m.body.Render()
	m.viewport = scroll.NewViewport(scroll.ViewportOptions{
		Width:    opts.Width,
		Height:   bodyHeight(opts.Height),
		Config:   m.table.Scroll,
		OnScroll: m.body.HandleScroll,
	})
	m.body.Attach(m.viewport)

	h := m.header
	m.body.Controller().OnBodyScroll(func(left, _ int) { h.left = left })

	m.refresh()
	return m
}

// bodyHeight leaves room for the header and the two footer lines.
func bodyHeight(h int) int {
	return max(h-3, 1)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.renderer.SetWidth(msg.Width)
		m.viewport.Resize(msg.Width, bodyHeight(msg.Height))
		m.help.Width = msg.Width
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.viewport.ScrollBy(-m.step, 0)
	case key.Matches(msg, m.keys.Right):
		m.viewport.ScrollBy(m.step, 0)
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, max(len(m.table.Rows)-1, 0))
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.NextPage):
		m.turnPage(1)
	case key.Matches(msg, m.keys.PrevPage):
		m.turnPage(-1)
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m *Model) toggle() {
	if m.cursor >= len(m.table.Rows) {
		return
	}
	row := m.table.Rows[m.cursor].Key
	for _, col := range m.body.Controller().Columns() {
		if col.Kind != column.KindSelection {
			continue
		}
		inst, ok := m.body.Checkbox(row, col.Key)
		if !ok || !inst.Toggle() {
			m.status = fmt.Sprintf("row %s cannot be selected", row)
			return
		}
		m.status = ""
		return
	}
}

func (m *Model) turnPage(delta int) {
	c := m.body.Controller()
	if err := c.SetPage(c.Page() + delta); err != nil {
		m.logger.Debug("page not turned", "error", err)
		return
	}
	m.cursor = 0
	m.viewport.ScrollTo(m.viewport.Container().ScrollLeft, 0)
}

// refresh derives the active pinned columns from the viewport and renders.
func (m *Model) refresh() {
	container := m.viewport.Container()
	widths := m.renderer.Widths(m.table)
	m.body.Controller().SetActiveFixedKeys(
		ActiveFixedKeys(m.table, widths, container.ScrollLeft, container.ClientWidth),
	)
	m.table = m.body.Render()
	m.viewport.SetContentSize(m.renderer.ContentWidth(m.table), len(m.table.Rows))
	m.cursor = min(m.cursor, max(len(m.table.Rows)-1, 0))
}

func (m Model) View() string {
	var b strings.Builder

	titles := make(map[column.Key]string)
	for _, col := range m.body.Controller().Columns() {
		titles[col.Key] = col.Title
	}
	b.WriteString(m.renderer.Header(m.table, titles, m.header.left))
	b.WriteString("\n")

	left := m.viewport.Container().ScrollLeft
	for i, line := range m.renderer.Lines(m.table, left) {
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	c := m.body.Controller()
	status := fmt.Sprintf("page %d/%d · %d selected", c.Page(), c.PageCount(), c.CheckedRowKeys().Len())
	if m.status != "" {
		status += " · " + m.status
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// ActiveFixedKeys picks the pinned columns that currently sit over scrolled
// content: the last left-pinned column held at its offset and the first
// right-pinned column held at its offset. viewport is the visible width.
func ActiveFixedKeys(t *compose.Table, widths []int, scrollLeft, viewport int) shadow.Active {
	var active shadow.Active
	offsets := text.PinnedOffsets(t, widths)
	natural := 0
	for i := range t.ColGroup {
		x := natural - scrollLeft
		natural += widths[i]
		if offsets[i] < 0 {
			continue
		}
		switch t.ColGroup[i].Fixed {
		case column.FixedLeft:
			if x < offsets[i] {
				active.Left = t.ColGroup[i].Key
			}
		case column.FixedRight:
			if active.Right == "" && x > viewport-offsets[i]-widths[i] {
				active.Right = t.ColGroup[i].Key
			}
		}
	}
	return active
}
