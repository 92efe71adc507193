package column

import (
	"errors"
	"fmt"
	"reflect"
)

// Validation errors reported by NewSet and the Set helpers.
var (
	ErrEmptyField        = errors.New("column field must not be empty")
	ErrDuplicateField    = errors.New("duplicate column field")
	ErrWidthBounds       = errors.New("column minWidth exceeds maxWidth")
	ErrMissingGetActions = errors.New("actions column requires GetActions")
	ErrUnknownType       = errors.New("unknown column type")
	ErrUnknownField      = errors.New("unknown column field")
	ErrNotEditable       = errors.New("column is not editable")
	ErrNoValueSetter     = errors.New("no value setter and row type does not support direct field writes")
)

// Set is an ordered, validated column list with every default resolved. It is
// the form the layout and rendering layers consume, and it carries the
// engine-side helpers the column contracts require (value pipeline, sorting,
// filtering, edit commits).
type Set[R any] struct {
	cols  []Definition[R]
	index map[string]int
}

// NewSet ingests a column list: it applies the per-field and per-type
// defaults and rejects malformed configurations — empty or duplicate field
// keys, inverted width bounds, unknown type tags, and actions columns
// without GetActions.
func NewSet[R any](defs ...Definition[R]) (*Set[R], error) {
	s := &Set[R]{
		cols:  make([]Definition[R], 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}

	for _, d := range defs {
		if d.Field == "" {
			return nil, ErrEmptyField
		}
		if _, exists := s.index[d.Field]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, d.Field)
		}
		if d.Type != "" && !knownTypes[d.Type] {
			return nil, fmt.Errorf("%w: %q (column %q)", ErrUnknownType, d.Type, d.Field)
		}
		if d.Type == TypeActions && d.GetActions == nil {
			return nil, fmt.Errorf("%w: column %q", ErrMissingGetActions, d.Field)
		}

		resolveSizing(&d)
		if d.MaxWidth > 0 && d.MinWidth > d.MaxWidth {
			return nil, fmt.Errorf("%w: column %q (%d > %d)", ErrWidthBounds, d.Field, d.MinWidth, d.MaxWidth)
		}
		applyTypeDefaults(&d)

		s.index[d.Field] = len(s.cols)
		s.cols = append(s.cols, d)
	}

	return s, nil
}

// resolveSizing fills the sizing defaults: width 100, minWidth 50, maxWidth
// unbounded. MinWidth is lowered to an explicit smaller Width so that a
// plain `Width: 30` column does not trip the bounds check.
func resolveSizing[R any](d *Definition[R]) {
	if d.Width == 0 {
		d.Width = DefaultWidth
	}
	if d.MinWidth == 0 {
		d.MinWidth = DefaultMinWidth
		if d.Width < d.MinWidth {
			d.MinWidth = d.Width
		}
	}
}

// Len returns the number of columns.
func (s *Set[R]) Len() int { return len(s.cols) }

// Columns returns the ordered, defaults-resolved definitions. The slice is
// shared; callers must not mutate it.
func (s *Set[R]) Columns() []Definition[R] { return s.cols }

// Fields returns the ordered field keys.
func (s *Set[R]) Fields() []string {
	fields := make([]string, len(s.cols))
	for i, d := range s.cols {
		fields[i] = d.Field
	}
	return fields
}

// Lookup returns the defaults-resolved definition for field.
func (s *Set[R]) Lookup(field string) (Definition[R], bool) {
	i, ok := s.index[field]
	if !ok {
		return Definition[R]{}, false
	}
	return s.cols[i], true
}

// CellValue returns the cell value of field on row: the ValueGetter's result
// when one is configured, otherwise the row's raw field value.
func (s *Set[R]) CellValue(row R, field string) any {
	d, ok := s.Lookup(field)
	if !ok {
		return nil
	}
	if d.ValueGetter != nil {
		return d.ValueGetter(Params[R]{Row: row, Field: field, API: s.rowAPI(row)})
	}
	return rawFieldValue(row, field)
}

// CellParams builds the hook parameters for field on row: the pipeline
// value plus the row-scoped read API. Renderers invoking CellRenderer or
// HeaderRenderer hooks go through this so the hook can read sibling cells.
func (s *Set[R]) CellParams(row R, field string) Params[R] {
	return Params[R]{Row: row, Field: field, Value: s.CellValue(row, field), API: s.rowAPI(row)}
}

// FormattedValue returns the display string of field on row, running the
// getter → formatter pipeline. Columns without a formatter fall back to
// Stringify.
func (s *Set[R]) FormattedValue(row R, field string) string {
	d, ok := s.Lookup(field)
	if !ok {
		return ""
	}
	value := s.CellValue(row, field)
	if d.ValueFormatter != nil {
		return d.ValueFormatter(Params[R]{Row: row, Field: field, Value: value, API: s.rowAPI(row)})
	}
	return Stringify(value)
}

// GroupingKey returns the grouping key of field on row. The second return is
// false when the column has no GroupingValueGetter or the getter returned
// nil, meaning "no grouping key for this row" — distinct from a present but
// empty key.
func (s *Set[R]) GroupingKey(row R, field string) (any, bool) {
	d, ok := s.Lookup(field)
	if !ok || d.GroupingValueGetter == nil {
		return nil, false
	}
	key := d.GroupingValueGetter(Params[R]{Row: row, Field: field, API: s.rowAPI(row)})
	if key == nil {
		return nil, false
	}
	return key, true
}

// Actions returns the action descriptors for row in the given actions
// column, in display order.
func (s *Set[R]) Actions(row R, field string) []Action {
	d, ok := s.Lookup(field)
	if !ok || d.GetActions == nil {
		return nil
	}
	return d.GetActions(Params[R]{Row: row, Field: field, API: s.rowAPI(row)})
}

// rowAPI builds the read-scoped handle hooks receive.
func (s *Set[R]) rowAPI(row R) RowAPI[R] {
	return rowReader[R]{set: s, row: row}
}

type rowReader[R any] struct {
	set *Set[R]
	row R
}

func (r rowReader[R]) Value(field string) any {
	return r.set.CellValue(r.row, field)
}

func (r rowReader[R]) FormattedValue(field string) string {
	return r.set.FormattedValue(r.row, field)
}

// FieldReader lets a custom row type expose cell values without reflection.
type FieldReader interface {
	GridValue(field string) (any, bool)
}

// rawFieldValue reads a row's field directly: map rows by key, FieldReader
// rows through the interface, struct rows by exported field name.
func rawFieldValue(row any, field string) any {
	switch r := row.(type) {
	case map[string]any:
		return r[field]
	case FieldReader:
		if v, ok := r.GridValue(field); ok {
			return v
		}
		return nil
	}

	rv := reflect.ValueOf(row)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	fv := rv.FieldByName(field)
	if !fv.IsValid() || !fv.CanInterface() {
		return nil
	}
	return fv.Interface()
}
