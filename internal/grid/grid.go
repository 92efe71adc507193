// Package grid is an interactive viewer for a column set: a bubbletea model
// wrapping the bubbles table, with column selection, sort cycling driven by
// each column's sorting order, and a quick filter over formatted values.
package grid

import (
	"fmt"
	"strings"

	bubtable "charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/gridx/internal/layout"
	"github.com/oakwood-commons/gridx/pkg/column"
)

// Model is the interactive grid over rows of type R.
type Model[R any] struct {
	table bubtable.Model
	set   *column.Set[R]
	rows  []R

	resolved []column.Resolved[R]

	selectedCol int
	sortField   string
	sortDir     column.Direction

	filter string

	width  int
	height int
	title  string
}

// New builds the viewer for set and rows.
func New[R any](set *column.Set[R], rows []R) *Model[R] {
	m := &Model[R]{
		set:    set,
		rows:   rows,
		width:  80,
		height: 16,
	}

	t := bubtable.New(
		bubtable.WithFocused(true),
		bubtable.WithHeight(m.height),
	)
	s := bubtable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Bold(true).
		Align(lipgloss.Left)
	t.SetStyles(s)
	m.table = t

	m.reload()
	return m
}

// SetTitle sets the text shown above the table.
func (m *Model[R]) SetTitle(title string) { m.title = title }

// SetSize updates the viewer dimensions and relayouts the columns.
func (m *Model[R]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(height)
	m.reload()
}

// SetSort applies an explicit sort state.
func (m *Model[R]) SetSort(field string, dir column.Direction) {
	m.sortField = field
	m.sortDir = dir
	m.reload()
}

// SortState returns the current sort field and direction.
func (m *Model[R]) SortState() (string, column.Direction) {
	return m.sortField, m.sortDir
}

// SetFilter narrows visible rows to those whose formatted cells contain the
// given text in any column.
func (m *Model[R]) SetFilter(filter string) {
	m.filter = filter
	m.reload()
}

// Rows returns the rows currently shown, after filter and sort.
func (m *Model[R]) Rows() []R {
	return m.visibleRows()
}

// reload recomputes layout, headers, and row content.
func (m *Model[R]) reload() {
	m.resolved = layout.Hydrate(m.set, m.width-2)

	cols := make([]bubtable.Column, len(m.resolved))
	for i, r := range m.resolved {
		cols[i] = bubtable.Column{
			Title: m.headerTitle(i, r),
			Width: r.ComputedWidth,
		}
	}

	rows := m.visibleRows()
	tableRows := make([]bubtable.Row, len(rows))
	for i, row := range rows {
		cells := make([]string, len(m.resolved))
		for j, r := range m.resolved {
			cells[j] = runewidth.Truncate(m.cell(row, r), r.ComputedWidth, "…")
		}
		tableRows[i] = cells
	}

	// Rows must be cleared before shrinking the column list, and columns
	// set before the new rows.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(tableRows)
	if m.table.Cursor() >= len(tableRows) && len(tableRows) > 0 {
		m.table.SetCursor(0)
	}
}

func (m *Model[R]) headerTitle(i int, r column.Resolved[R]) string {
	label := r.HeaderLabel()
	if i == m.selectedCol {
		label = "▸" + label
	}
	if r.Field == m.sortField && !r.HideSortIcons {
		switch m.sortDir {
		case column.DirectionAsc:
			label += " ↑"
		case column.DirectionDesc:
			label += " ↓"
		}
	}
	return label
}

func (m *Model[R]) cell(row R, r column.Resolved[R]) string {
	if r.RenderCell != nil {
		return r.RenderCell(m.set.CellParams(row, r.Field))
	}
	if r.Type == column.TypeActions {
		actions := m.set.Actions(row, r.Field)
		labels := make([]string, 0, len(actions))
		for _, a := range actions {
			labels = append(labels, "["+a.Label+"]")
		}
		return strings.Join(labels, " ")
	}
	return m.set.FormattedValue(row, r.Field)
}

func (m *Model[R]) visibleRows() []R {
	rows := m.rows
	if m.filter != "" {
		needle := strings.ToLower(m.filter)
		filtered := make([]R, 0, len(rows))
		for _, row := range rows {
			for _, r := range m.resolved {
				if strings.Contains(strings.ToLower(m.set.FormattedValue(row, r.Field)), needle) {
					filtered = append(filtered, row)
					break
				}
			}
		}
		rows = filtered
	}
	return m.set.SortRows(rows, m.sortField, m.sortDir)
}

// cycleSort advances the selected column through its sorting order. A column
// that is not sortable is skipped.
func (m *Model[R]) cycleSort() {
	if m.selectedCol < 0 || m.selectedCol >= len(m.resolved) {
		return
	}
	d := m.resolved[m.selectedCol].Definition
	if !d.IsSortable() {
		return
	}
	if m.sortField != d.Field {
		m.sortField = d.Field
		m.sortDir = m.set.SortingOrder(d.Field).Next(column.DirectionNone)
	} else {
		m.sortDir = m.set.SortingOrder(d.Field).Next(m.sortDir)
	}
	m.reload()
}

func (m *Model[R]) moveSelection(delta int) {
	next := m.selectedCol + delta
	if next < 0 || next >= len(m.resolved) {
		return
	}
	m.selectedCol = next
	m.reload()
}

// Init implements tea.Model.
func (m *Model[R]) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height-3)
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.moveSelection(-1)
			return m, nil
		case "right", "l":
			m.moveSelection(1)
			return m, nil
		case "s":
			m.cycleSort()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model[R]) View() tea.View {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.title) + "\n")
	}
	b.WriteString(m.table.View())
	b.WriteString("\n" + m.footer())
	return tea.NewView(b.String())
}

func (m *Model[R]) footer() string {
	state := "unsorted"
	if m.sortDir != column.DirectionNone {
		state = fmt.Sprintf("sort: %s %s", m.sortField, m.sortDir)
	}
	help := "←/→ column · s sort · q quit"
	return lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("%s · %d rows · %s", state, len(m.Rows()), help))
}
