package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterSet(t *testing.T) *Set[row] {
	t.Helper()
	set, err := NewSet(
		Definition[row]{Field: "name"},
		Definition[row]{Field: "age", Type: TypeNumber},
		Definition[row]{Field: "active", Type: TypeBoolean},
		Definition[row]{Field: "status", Type: TypeSingleSelect,
			ValueOptions: StaticValues[row]("new", "open", "done")},
		Definition[row]{Field: "secret", Filterable: Bool(false)},
	)
	require.NoError(t, err)
	return set
}

var filterRows = []row{
	{"name": "alice", "age": 29, "active": true, "status": "open"},
	{"name": "bob", "age": 35, "active": false, "status": "done"},
	{"name": "carol", "age": 41, "active": true, "status": "open"},
	{"name": "dave", "active": false},
}

func TestFilterRowsString(t *testing.T) {
	set := filterSet(t)

	t.Run("contains", func(t *testing.T) {
		got, err := set.FilterRows(filterRows, "name", "contains", "a")
		require.NoError(t, err)
		assert.Len(t, got, 3) // alice, carol, dave
	})

	t.Run("startsWith", func(t *testing.T) {
		got, err := set.FilterRows(filterRows, "name", "startsWith", "ca")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "carol", got[0]["name"])
	})

	t.Run("empty filter value is inactive", func(t *testing.T) {
		got, err := set.FilterRows(filterRows, "name", "contains", "")
		require.NoError(t, err)
		assert.Len(t, got, len(filterRows))
	})
}

func TestFilterRowsNumber(t *testing.T) {
	set := filterSet(t)

	got, err := set.FilterRows(filterRows, "age", ">=", 35)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	t.Run("missing values never match comparisons", func(t *testing.T) {
		got, err := set.FilterRows(filterRows, "age", "<", 100)
		require.NoError(t, err)
		assert.Len(t, got, 3, "dave has no age")
	})

	t.Run("isEmpty", func(t *testing.T) {
		got, err := set.FilterRows(filterRows, "age", "isEmpty", nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "dave", got[0]["name"])
	})
}

func TestFilterRowsBoolean(t *testing.T) {
	set := filterSet(t)

	got, err := set.FilterRows(filterRows, "active", "is", true)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = set.FilterRows(filterRows, "active", "is", "false")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFilterRowsSelect(t *testing.T) {
	set := filterSet(t)

	t.Run("is", func(t *testing.T) {
		got, err := set.FilterRows(filterRows, "status", "is", "open")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("isAnyOf", func(t *testing.T) {
		got, err := set.FilterRows(filterRows, "status", "isAnyOf", []any{"open", "done"})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestFilterRowsErrors(t *testing.T) {
	set := filterSet(t)

	t.Run("unknown field", func(t *testing.T) {
		_, err := set.FilterRows(filterRows, "nope", "contains", "x")
		assert.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("not filterable", func(t *testing.T) {
		_, err := set.FilterRows(filterRows, "secret", "contains", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not filterable")
	})

	t.Run("unknown operator", func(t *testing.T) {
		_, err := set.FilterRows(filterRows, "name", "soundsLike", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "soundsLike")
	})
}
