package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gridx/pkg/column"
)

type row = map[string]any

func fixture(t *testing.T) *Model[row] {
	t.Helper()
	set, err := column.NewSet(
		column.Definition[row]{Field: "name", Width: 20},
		column.Definition[row]{Field: "age", Type: column.TypeNumber, Width: 10},
		column.Definition[row]{Field: "id", Width: 10, Sortable: column.Bool(false)},
	)
	require.NoError(t, err)
	return New(set, []row{
		{"name": "carol", "age": 41, "id": "c"},
		{"name": "alice", "age": 29, "id": "a"},
		{"name": "bob", "age": 35, "id": "b"},
	})
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r["name"].(string)
	}
	return out
}

func TestNew(t *testing.T) {
	m := fixture(t)

	field, dir := m.SortState()
	assert.Empty(t, field)
	assert.Equal(t, column.DirectionNone, dir)
	assert.Equal(t, []string{"carol", "alice", "bob"}, names(m.Rows()))
}

func TestSetSort(t *testing.T) {
	m := fixture(t)

	m.SetSort("age", column.DirectionAsc)
	assert.Equal(t, []string{"alice", "bob", "carol"}, names(m.Rows()))

	m.SetSort("age", column.DirectionDesc)
	assert.Equal(t, []string{"carol", "bob", "alice"}, names(m.Rows()))
}

func TestCycleSort(t *testing.T) {
	m := fixture(t)

	m.cycleSort()
	field, dir := m.SortState()
	assert.Equal(t, "name", field)
	assert.Equal(t, column.DirectionAsc, dir)

	m.cycleSort()
	_, dir = m.SortState()
	assert.Equal(t, column.DirectionDesc, dir)

	m.cycleSort()
	_, dir = m.SortState()
	assert.Equal(t, column.DirectionNone, dir)

	t.Run("switching column restarts the cycle", func(t *testing.T) {
		m := fixture(t)
		m.moveSelection(1)
		m.cycleSort()
		field, dir := m.SortState()
		assert.Equal(t, "age", field)
		assert.Equal(t, column.DirectionAsc, dir)
	})

	t.Run("non-sortable column is a no-op", func(t *testing.T) {
		m := fixture(t)
		m.moveSelection(1)
		m.moveSelection(1)
		m.cycleSort()
		field, dir := m.SortState()
		assert.Empty(t, field)
		assert.Equal(t, column.DirectionNone, dir)
	})
}

func TestCellRenderHook(t *testing.T) {
	set, err := column.NewSet(
		column.Definition[row]{Field: "name", Width: 20},
		column.Definition[row]{
			Field: "badge", Width: 20,
			RenderCell: func(p column.Params[row]) string {
				return "[" + p.API.FormattedValue("name") + "]"
			},
		},
	)
	require.NoError(t, err)
	m := New(set, []row{{"name": "alice", "badge": ""}})

	assert.Equal(t, "[alice]", m.cell(m.Rows()[0], m.resolved[1]))
}

func TestMoveSelection(t *testing.T) {
	m := fixture(t)

	m.moveSelection(-1)
	assert.Equal(t, 0, m.selectedCol)

	m.moveSelection(1)
	m.moveSelection(1)
	assert.Equal(t, 2, m.selectedCol)

	m.moveSelection(1)
	assert.Equal(t, 2, m.selectedCol, "selection stops at the last column")
}

func TestSetFilter(t *testing.T) {
	m := fixture(t)

	m.SetFilter("ali")
	assert.Equal(t, []string{"alice"}, names(m.Rows()))

	t.Run("matches any column", func(t *testing.T) {
		m := fixture(t)
		m.SetFilter("35")
		assert.Equal(t, []string{"bob"}, names(m.Rows()))
	})

	t.Run("case insensitive", func(t *testing.T) {
		m := fixture(t)
		m.SetFilter("CAROL")
		assert.Equal(t, []string{"carol"}, names(m.Rows()))
	})

	t.Run("clearing restores all rows", func(t *testing.T) {
		m := fixture(t)
		m.SetFilter("ali")
		m.SetFilter("")
		assert.Len(t, m.Rows(), 3)
	})
}

func TestHeaderTitle(t *testing.T) {
	m := fixture(t)
	m.SetSort("name", column.DirectionAsc)

	assert.Equal(t, "▸name ↑", m.headerTitle(0, m.resolved[0]))
	assert.Equal(t, "age", m.headerTitle(1, m.resolved[1]))

	m.SetSort("name", column.DirectionDesc)
	assert.Equal(t, "▸name ↓", m.headerTitle(0, m.resolved[0]))

	t.Run("sort icon suppressed", func(t *testing.T) {
		set, err := column.NewSet(
			column.Definition[row]{Field: "name", Width: 20, HideSortIcons: true},
		)
		require.NoError(t, err)
		m := New(set, nil)
		m.SetSort("name", column.DirectionAsc)
		assert.Equal(t, "▸name", m.headerTitle(0, m.resolved[0]))
	})
}
