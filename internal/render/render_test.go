package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gridx/pkg/column"
)

type row = map[string]any

func testSet(t *testing.T, defs ...column.Definition[row]) *column.Set[row] {
	t.Helper()
	set, err := column.NewSet(defs...)
	require.NoError(t, err)
	return set
}

func plain(widthHint int) Options {
	return Options{NoColor: true, TotalWidth: widthHint}
}

func TestTableHeader(t *testing.T) {
	set := testSet(t,
		column.Definition[row]{Field: "name", HeaderName: "Full Name", Width: 20},
		column.Definition[row]{Field: "age", Width: 10},
	)
	out := Table(set, nil, plain(80))
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "Full Name")
	assert.Contains(t, lines[0], "age")
	assert.Contains(t, lines[1], "─")

	t.Run("custom header hook", func(t *testing.T) {
		set := testSet(t, column.Definition[row]{
			Field: "name", Width: 20,
			RenderHeader: func(p column.HeaderParams) string {
				return "<" + p.Field + ">"
			},
		})
		out := Table(set, nil, plain(80))
		assert.Contains(t, out, "<name>")
	})
}

func TestTableRowNumbers(t *testing.T) {
	set := testSet(t, column.Definition[row]{Field: "name", Width: 20})
	rows := []row{{"name": "alice"}, {"name": "bob"}}

	t.Run("numbered", func(t *testing.T) {
		opts := plain(80)
		opts.RowNumberStyle = "numbered"
		lines := strings.Split(Table(set, rows, opts), "\n")
		assert.True(t, strings.HasPrefix(lines[2], "1 "))
		assert.True(t, strings.HasPrefix(lines[3], "2 "))
	})

	t.Run("index", func(t *testing.T) {
		opts := plain(80)
		opts.RowNumberStyle = "index"
		lines := strings.Split(Table(set, rows, opts), "\n")
		assert.True(t, strings.HasPrefix(lines[2], "[0]"))
		assert.True(t, strings.HasPrefix(lines[3], "[1]"))
	})

	t.Run("none", func(t *testing.T) {
		opts := plain(80)
		opts.RowNumberStyle = "none"
		lines := strings.Split(Table(set, rows, opts), "\n")
		assert.True(t, strings.HasPrefix(lines[2], "alice"))
	})
}

func TestTableAlignment(t *testing.T) {
	set := testSet(t,
		column.Definition[row]{Field: "n", Type: column.TypeNumber, Width: 10, MinWidth: 10},
	)
	opts := plain(80)
	opts.RowNumberStyle = "none"
	lines := strings.Split(Table(set, []row{{"n": 7}}, opts), "\n")

	// right-aligned inside a 10-cell column
	assert.Equal(t, strings.Repeat(" ", 9)+"7", lines[2])
}

func TestTableTruncation(t *testing.T) {
	set := testSet(t, column.Definition[row]{Field: "name", Width: 8, MinWidth: 8, MaxWidth: 8})
	opts := plain(80)
	opts.RowNumberStyle = "none"
	out := Table(set, []row{{"name": "a very long value"}}, opts)

	assert.Contains(t, out, "a ver...")
	assert.NotContains(t, out, "a very long value")
}

func TestTableHiddenColumns(t *testing.T) {
	set := testSet(t,
		column.Definition[row]{Field: "name", Width: 20},
		column.Definition[row]{Field: "secret", Width: 20},
		column.Definition[row]{Field: "pinned", Width: 20, Hideable: column.Bool(false)},
	)
	opts := plain(120)
	opts.Hidden = []string{"secret", "pinned"}
	out := Table(set, []row{{"name": "x", "secret": "y", "pinned": "z"}}, opts)

	assert.Contains(t, out, "name")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "pinned", "non-hideable columns stay visible")

	t.Run("hiding everything yields no output", func(t *testing.T) {
		set := testSet(t, column.Definition[row]{Field: "a"})
		opts := plain(120)
		opts.Hidden = []string{"a"}
		assert.Empty(t, Table(set, nil, opts))
	})
}

func TestTableActionsColumn(t *testing.T) {
	set := testSet(t,
		column.Definition[row]{Field: "name", Width: 20},
		column.ActionsColumn("ops", func(p column.Params[row]) []column.Action {
			return []column.Action{{Label: "edit"}, {Label: "delete"}}
		}),
	)
	opts := plain(120)
	out := Table(set, []row{{"name": "alice"}}, opts)

	assert.Contains(t, out, "edit delete")
}

func TestTableRenderCellHook(t *testing.T) {
	set := testSet(t, column.Definition[row]{
		Field: "score", Width: 20,
		RenderCell: func(p column.Params[row]) string {
			return "**" + column.Stringify(p.Value) + "**"
		},
	})
	out := Table(set, []row{{"score": 9}}, plain(80))

	assert.Contains(t, out, "**9**")

	t.Run("hook can read sibling cells through the API", func(t *testing.T) {
		set := testSet(t,
			column.Definition[row]{Field: "name", Width: 20},
			column.Definition[row]{
				Field: "greeting", Width: 30,
				RenderCell: func(p column.Params[row]) string {
					return "hi " + p.API.FormattedValue("name")
				},
			},
		)
		out := Table(set, []row{{"name": "alice"}}, plain(120))
		assert.Contains(t, out, "hi alice")
	})
}

func TestTableHiddenColumnsFreeWidth(t *testing.T) {
	set := testSet(t,
		column.Definition[row]{Field: "wide", Width: 100},
		column.Definition[row]{Field: "flex", Flex: 1, MinWidth: 1},
	)
	opts := plain(200)
	opts.RowNumberStyle = "none"

	both := strings.Split(Table(set, nil, opts), "\n")
	assert.Len(t, []rune(both[1]), 100+100+sepWidth)

	opts.Hidden = []string{"wide"}
	alone := strings.Split(Table(set, nil, opts), "\n")
	assert.Len(t, []rune(alone[1]), 200, "flex column should absorb the hidden column's width")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdefghij", 6))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "abcdef", truncate("abcdef", 0))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", pad("ab", 4, column.AlignLeft))
	assert.Equal(t, "  ab", pad("ab", 4, column.AlignRight))
	assert.Equal(t, " ab ", pad("ab", 4, column.AlignCenter))
	assert.Equal(t, "abcd", pad("abcd", 2, column.AlignLeft))
}
