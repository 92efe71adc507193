package column

import "context"

// RowAPI is the read-scoped handle passed to hooks. It exposes values of the
// current row only; hooks never receive the grid's mutable state, so they
// cannot trigger reentrant layout changes.
type RowAPI[R any] interface {
	// Value returns the cell value for field on the current row, running
	// the field's ValueGetter when one is configured.
	Value(field string) any

	// FormattedValue returns the display string for field on the current
	// row, running the full getter → formatter pipeline.
	FormattedValue(field string) string
}

// Params carries the inputs common to value and render hooks: the row record,
// the column's field key, the cell value at the current pipeline stage, and a
// row-scoped read API.
type Params[R any] struct {
	Row   R
	Field string
	Value any
	API   RowAPI[R]
}

// ValueGetter computes the cell value for a row. It must be side-effect-free;
// the engine may invoke it more than once per render for the same cell and
// does not guarantee memoization.
type ValueGetter[R any] func(p Params[R]) any

// SetParams carries the inputs to a ValueSetter: the row being edited, the
// column's field key, and the new (already parsed and pre-processed) value.
type SetParams[R any] struct {
	Row   R
	Field string
	Value any
}

// ValueSetter applies an edited value and returns the complete updated row
// record, never a partial patch. When absent, the engine writes the value
// directly into the row's field.
type ValueSetter[R any] func(p SetParams[R]) R

// ValueFormatter turns a cell value into its display string.
type ValueFormatter[R any] func(p Params[R]) string

// ValueParser converts a user-entered value into the stored representation
// before the edit is pre-processed and committed.
type ValueParser[R any] func(value any, p Params[R]) any

// CellRenderer produces custom cell content. The returned string is rendered
// as-is (it may carry styling escape sequences) and is still subject to the
// column's computed width.
type CellRenderer[R any] func(p Params[R]) string

// HeaderParams carries the inputs to a HeaderRenderer.
type HeaderParams struct {
	Field         string
	HeaderName    string
	ComputedWidth int
}

// HeaderRenderer produces custom header content.
type HeaderRenderer func(p HeaderParams) string

// EditPreProcessor validates or transforms an edited value before it is
// committed. Implementations may complete asynchronously; the engine waits on
// the call uniformly and aborts the commit when ctx is cancelled or an error
// is returned.
type EditPreProcessor[R any] func(ctx context.Context, p Params[R]) (any, error)

// Action describes one interactive control rendered in an actions-column
// cell.
type Action struct {
	// Label is the visible text of the control.
	Label string

	// Key is an optional shortcut hint shown next to the label.
	Key string

	// Disabled renders the control inert.
	Disabled bool

	// Do is invoked when the control is activated.
	Do func()
}

// ActionsGetter produces the ordered list of actions for one row. It is
// invoked once per row per render; the returned order is the display order.
type ActionsGetter[R any] func(p Params[R]) []Action
