package column

import (
	"context"
	"fmt"
)

// FieldWriter lets a custom row type accept direct field writes when its
// columns configure no ValueSetter.
type FieldWriter interface {
	SetGridValue(field string, value any)
}

// CommitEdit runs the edit pipeline for one cell and returns the updated row:
//
//  1. ValueParser converts the entered value to its stored representation.
//  2. PreProcessEditCell validates/transforms it; it may complete
//     asynchronously and the commit waits on it. An error or a cancelled ctx
//     aborts the commit and the row is returned unchanged.
//  3. ValueSetter produces the complete updated row. Without a setter the
//     value is written directly into the row's field, which requires the row
//     to be a map or to implement FieldWriter.
func (s *Set[R]) CommitEdit(ctx context.Context, row R, field string, value any) (R, error) {
	d, ok := s.Lookup(field)
	if !ok {
		return row, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if !d.IsEditable() {
		return row, fmt.Errorf("%w: %q", ErrNotEditable, field)
	}

	if d.ValueParser != nil {
		value = d.ValueParser(value, Params[R]{Row: row, Field: field, API: s.rowAPI(row)})
	}

	if d.PreProcessEditCell != nil {
		processed, err := d.PreProcessEditCell(ctx, Params[R]{Row: row, Field: field, Value: value, API: s.rowAPI(row)})
		if err != nil {
			return row, fmt.Errorf("pre-process edit for %q: %w", field, err)
		}
		value = processed
	}
	if err := ctx.Err(); err != nil {
		return row, err
	}

	if d.ValueSetter != nil {
		return d.ValueSetter(SetParams[R]{Row: row, Field: field, Value: value}), nil
	}
	return writeField(row, field, value)
}

func writeField[R any](row R, field string, value any) (R, error) {
	switch r := any(row).(type) {
	case map[string]any:
		r[field] = value
		return row, nil
	case FieldWriter:
		r.SetGridValue(field, value)
		return row, nil
	default:
		return row, fmt.Errorf("%w: field %q", ErrNoValueSetter, field)
	}
}
