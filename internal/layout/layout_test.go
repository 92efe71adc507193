package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gridx/pkg/column"
)

type row = map[string]any

func newSet(t *testing.T, defs ...column.Definition[row]) *column.Set[row] {
	t.Helper()
	set, err := column.NewSet(defs...)
	require.NoError(t, err)
	return set
}

func widths[R any](cols []column.Resolved[R]) []int {
	out := make([]int, len(cols))
	for i, c := range cols {
		out[i] = c.ComputedWidth
	}
	return out
}

func TestHydrateFixedWidths(t *testing.T) {
	t.Run("declared width survives when inside bounds", func(t *testing.T) {
		set := newSet(t, column.Definition[row]{Field: "a", Width: 80})
		assert.Equal(t, []int{80}, widths(Hydrate(set, 0)))
	})

	t.Run("defaults apply when nothing is declared", func(t *testing.T) {
		set := newSet(t, column.Definition[row]{Field: "a"})
		assert.Equal(t, []int{column.DefaultWidth}, widths(Hydrate(set, 0)))
	})

	t.Run("width is clamped into min and max", func(t *testing.T) {
		set := newSet(t,
			column.Definition[row]{Field: "lo", Width: 10, MinWidth: 60},
			column.Definition[row]{Field: "hi", Width: 500, MaxWidth: 200},
		)
		assert.Equal(t, []int{60, 200}, widths(Hydrate(set, 0)))
	})
}

func TestHydrateFlex(t *testing.T) {
	t.Run("flex columns split leftover space by weight", func(t *testing.T) {
		set := newSet(t,
			column.Definition[row]{Field: "fixed", Width: 100},
			column.Definition[row]{Field: "one", Flex: 1, MinWidth: 1},
			column.Definition[row]{Field: "two", Flex: 2, MinWidth: 1},
		)
		got := widths(Hydrate(set, 400))
		assert.Equal(t, []int{100, 100, 200}, got)
	})

	t.Run("rounding leftovers keep the total exact", func(t *testing.T) {
		set := newSet(t,
			column.Definition[row]{Field: "a", Flex: 1, MinWidth: 1},
			column.Definition[row]{Field: "b", Flex: 1, MinWidth: 1},
			column.Definition[row]{Field: "c", Flex: 1, MinWidth: 1},
		)
		resolved := Hydrate(set, 100)
		assert.Equal(t, 100, ComputeMeta(resolved).TotalWidth)
	})

	t.Run("bounded flex column freezes and frees space for the rest", func(t *testing.T) {
		set := newSet(t,
			column.Definition[row]{Field: "capped", Flex: 1, MinWidth: 1, MaxWidth: 50},
			column.Definition[row]{Field: "open", Flex: 1, MinWidth: 1},
		)
		got := widths(Hydrate(set, 300))
		assert.Equal(t, []int{50, 250}, got)
	})

	t.Run("min width wins over proportional share", func(t *testing.T) {
		set := newSet(t,
			column.Definition[row]{Field: "wide", Flex: 1, MinWidth: 90},
			column.Definition[row]{Field: "rest", Flex: 9, MinWidth: 1},
		)
		got := widths(Hydrate(set, 100))
		assert.Equal(t, []int{90, 10}, got)
	})

	t.Run("floored shares still honor min width", func(t *testing.T) {
		set := newSet(t,
			column.Definition[row]{Field: "a", Flex: 1, MinWidth: 50},
			column.Definition[row]{Field: "b", Flex: 1, MinWidth: 50},
		)
		got := widths(Hydrate(set, 99))
		for i, w := range got {
			assert.GreaterOrEqual(t, w, 50, "column %d", i)
		}
	})

	t.Run("rounding leftovers skip columns at max width", func(t *testing.T) {
		set := newSet(t,
			column.Definition[row]{Field: "a", Flex: 1, MinWidth: 1, MaxWidth: 33},
			column.Definition[row]{Field: "b", Flex: 1, MinWidth: 1},
			column.Definition[row]{Field: "c", Flex: 1, MinWidth: 1},
		)
		got := widths(Hydrate(set, 100))
		assert.Equal(t, []int{33, 34, 33}, got)
	})

	t.Run("without a target width flex falls back to declared sizing", func(t *testing.T) {
		set := newSet(t, column.Definition[row]{Field: "a", Flex: 1})
		assert.Equal(t, []int{column.DefaultWidth}, widths(Hydrate(set, 0)))
	})
}

func TestComputeMeta(t *testing.T) {
	set := newSet(t,
		column.Definition[row]{Field: "a", Width: 60},
		column.Definition[row]{Field: "b", Width: 90},
		column.Definition[row]{Field: "c", Width: 120},
	)
	resolved := Hydrate(set, 0)
	meta := ComputeMeta(resolved)

	assert.Equal(t, 270, meta.TotalWidth)
	assert.Equal(t, []int{0, 60, 150}, meta.Positions)

	t.Run("total equals the sum of computed widths", func(t *testing.T) {
		sum := 0
		for _, c := range resolved {
			sum += c.ComputedWidth
		}
		assert.Equal(t, sum, meta.TotalWidth)
	})

	t.Run("empty column list", func(t *testing.T) {
		meta := ComputeMeta([]column.Resolved[row]{})
		assert.Zero(t, meta.TotalWidth)
		assert.Empty(t, meta.Positions)
	})
}
