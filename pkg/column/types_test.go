package column

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, defs ...Definition[row]) *Set[row] {
	t.Helper()
	set, err := NewSet(defs...)
	require.NoError(t, err)
	return set
}

func TestNumberBundle(t *testing.T) {
	set := mustSet(t, Definition[row]{Field: "n", Type: TypeNumber})
	d, _ := set.Lookup("n")

	assert.Equal(t, AlignRight, d.Align)
	assert.Equal(t, "3.5", set.FormattedValue(row{"n": 3.5}, "n"))
	assert.Equal(t, "42", set.FormattedValue(row{"n": 42}, "n"))
	assert.Equal(t, "", set.FormattedValue(row{}, "n"))

	t.Run("explicit align wins over bundle", func(t *testing.T) {
		set := mustSet(t, Definition[row]{Field: "n", Type: TypeNumber, Align: AlignLeft})
		d, _ := set.Lookup("n")
		assert.Equal(t, AlignLeft, d.Align)
	})
}

func TestBooleanBundle(t *testing.T) {
	set := mustSet(t, Definition[row]{Field: "b", Type: TypeBoolean})

	assert.Equal(t, "true", set.FormattedValue(row{"b": true}, "b"))
	assert.Equal(t, "false", set.FormattedValue(row{"b": false}, "b"))
	assert.Equal(t, "", set.FormattedValue(row{}, "b"))
}

func TestDateBundles(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	set := mustSet(t,
		Definition[row]{Field: "d", Type: TypeDate},
		Definition[row]{Field: "dt", Type: TypeDateTime},
	)

	assert.Equal(t, "2025-03-14", set.FormattedValue(row{"d": ts}, "d"))
	assert.Equal(t, "2025-03-14 09:26", set.FormattedValue(row{"dt": ts}, "dt"))

	t.Run("RFC3339 strings parse", func(t *testing.T) {
		assert.Equal(t, "2025-03-14", set.FormattedValue(row{"d": "2025-03-14T09:26:53Z"}, "d"))
	})

	t.Run("unparseable values display verbatim", func(t *testing.T) {
		assert.Equal(t, "soon", set.FormattedValue(row{"d": "soon"}, "d"))
	})
}

func TestActionsBundle(t *testing.T) {
	set := mustSet(t, ActionsColumn("ops", func(Params[row]) []Action { return nil }))
	d, _ := set.Lookup("ops")

	assert.Equal(t, AlignCenter, d.Align)
	assert.False(t, d.IsSortable())
	assert.False(t, d.IsFilterable())
	assert.False(t, d.IsGroupable())
	assert.False(t, d.IsResizable())
	assert.True(t, d.DisableColumnMenu)
	assert.True(t, d.DisableExport)

	t.Run("caller can re-enable a behavior", func(t *testing.T) {
		col := ActionsColumn[row]("ops", func(Params[row]) []Action { return nil })
		col.Sortable = Bool(true)
		set := mustSet(t, col)
		d, _ := set.Lookup("ops")
		assert.True(t, d.IsSortable())
	})
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "x", Stringify("x"))
	assert.Equal(t, "1.25", Stringify(1.25))
	assert.Equal(t, "7", Stringify(7))
	assert.Equal(t, "true", Stringify(true))
}
