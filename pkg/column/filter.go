package column

import (
	"fmt"
	"strings"
)

// Predicate decides whether one cell (value plus its row) passes a filter.
type Predicate[R any] func(value any, row R) bool

// Operator describes one filter operator a column offers. Apply builds the
// predicate for a concrete filter value; returning nil means the filter is
// inactive (for example an empty text input) and every row passes.
type Operator[R any] struct {
	// Value identifies the operator ("contains", ">", "isEmpty", ...).
	Value string

	// Label is the text shown in the filter UI. Empty means Value is shown.
	Label string

	// Apply builds the row predicate for filterValue.
	Apply func(filterValue any) Predicate[R]
}

// StringOperators is the operator bundle for TypeString columns.
func StringOperators[R any]() []Operator[R] {
	return []Operator[R]{
		{Value: "contains", Apply: stringOp[R](strings.Contains)},
		{Value: "equals", Apply: stringOp[R](func(s, q string) bool { return s == q })},
		{Value: "startsWith", Apply: stringOp[R](strings.HasPrefix)},
		{Value: "endsWith", Apply: stringOp[R](strings.HasSuffix)},
		{Value: "isEmpty", Apply: emptyOp[R](true)},
		{Value: "isNotEmpty", Apply: emptyOp[R](false)},
	}
}

// NumberOperators is the operator bundle for TypeNumber columns.
func NumberOperators[R any]() []Operator[R] {
	return []Operator[R]{
		{Value: "=", Apply: numberOp[R](func(c int) bool { return c == 0 })},
		{Value: "!=", Apply: numberOp[R](func(c int) bool { return c != 0 })},
		{Value: ">", Apply: numberOp[R](func(c int) bool { return c > 0 })},
		{Value: ">=", Apply: numberOp[R](func(c int) bool { return c >= 0 })},
		{Value: "<", Apply: numberOp[R](func(c int) bool { return c < 0 })},
		{Value: "<=", Apply: numberOp[R](func(c int) bool { return c <= 0 })},
		{Value: "isEmpty", Apply: emptyOp[R](true)},
		{Value: "isNotEmpty", Apply: emptyOp[R](false)},
	}
}

// BooleanOperators is the operator bundle for TypeBoolean columns.
func BooleanOperators[R any]() []Operator[R] {
	return []Operator[R]{
		{Value: "is", Apply: func(fv any) Predicate[R] {
			if fv == nil {
				return nil
			}
			want := parseBool(fv)
			return func(v any, _ R) bool {
				got, ok := v.(bool)
				return ok && got == want
			}
		}},
	}
}

// DateOperators is the operator bundle for TypeDate and TypeDateTime columns.
func DateOperators[R any]() []Operator[R] {
	return []Operator[R]{
		{Value: "is", Apply: timeOp[R](func(c int) bool { return c == 0 })},
		{Value: "not", Apply: timeOp[R](func(c int) bool { return c != 0 })},
		{Value: "after", Apply: timeOp[R](func(c int) bool { return c > 0 })},
		{Value: "onOrAfter", Apply: timeOp[R](func(c int) bool { return c >= 0 })},
		{Value: "before", Apply: timeOp[R](func(c int) bool { return c < 0 })},
		{Value: "onOrBefore", Apply: timeOp[R](func(c int) bool { return c <= 0 })},
		{Value: "isEmpty", Apply: emptyOp[R](true)},
		{Value: "isNotEmpty", Apply: emptyOp[R](false)},
	}
}

// SelectOperators is the operator bundle for TypeSingleSelect columns.
func SelectOperators[R any]() []Operator[R] {
	return []Operator[R]{
		{Value: "is", Apply: func(fv any) Predicate[R] {
			if fv == nil {
				return nil
			}
			return func(v any, _ R) bool { return Stringify(v) == Stringify(fv) }
		}},
		{Value: "not", Apply: func(fv any) Predicate[R] {
			if fv == nil {
				return nil
			}
			return func(v any, _ R) bool { return Stringify(v) != Stringify(fv) }
		}},
		{Value: "isAnyOf", Apply: func(fv any) Predicate[R] {
			values, ok := fv.([]any)
			if !ok || len(values) == 0 {
				return nil
			}
			want := make(map[string]bool, len(values))
			for _, v := range values {
				want[Stringify(v)] = true
			}
			return func(v any, _ R) bool { return want[Stringify(v)] }
		}},
	}
}

func stringOp[R any](match func(s, q string) bool) func(any) Predicate[R] {
	return func(fv any) Predicate[R] {
		q := strings.ToLower(Stringify(fv))
		if q == "" {
			return nil
		}
		return func(v any, _ R) bool {
			return match(strings.ToLower(Stringify(v)), q)
		}
	}
}

func numberOp[R any](accept func(cmp int) bool) func(any) Predicate[R] {
	return func(fv any) Predicate[R] {
		want, ok := toFloat(fv)
		if !ok {
			return nil
		}
		return func(v any, _ R) bool {
			got, ok := toFloat(v)
			if !ok {
				return false
			}
			switch {
			case got < want:
				return accept(-1)
			case got > want:
				return accept(1)
			default:
				return accept(0)
			}
		}
	}
}

func timeOp[R any](accept func(cmp int) bool) func(any) Predicate[R] {
	return func(fv any) Predicate[R] {
		want, ok := toTime(fv)
		if !ok {
			return nil
		}
		return func(v any, _ R) bool {
			got, ok := toTime(v)
			if !ok {
				return false
			}
			switch {
			case got.Before(want):
				return accept(-1)
			case got.After(want):
				return accept(1)
			default:
				return accept(0)
			}
		}
	}
}

func emptyOp[R any](wantEmpty bool) func(any) Predicate[R] {
	return func(any) Predicate[R] {
		return func(v any, _ R) bool {
			empty := v == nil || Stringify(v) == ""
			return empty == wantEmpty
		}
	}
}

func parseBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true") || t == "1"
	default:
		return false
	}
}

// FilterRows returns the rows whose cell in field passes the named operator
// with filterValue. Unknown fields, non-filterable columns, and operators the
// column does not offer are errors; an inactive predicate passes every row.
func (s *Set[R]) FilterRows(rows []R, field, operator string, filterValue any) ([]R, error) {
	d, ok := s.Lookup(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if !d.IsFilterable() {
		return nil, fmt.Errorf("column %q is not filterable", field)
	}

	var apply func(any) Predicate[R]
	for _, op := range d.FilterOperators {
		if op.Value == operator {
			apply = op.Apply
			break
		}
	}
	if apply == nil {
		return nil, fmt.Errorf("column %q has no filter operator %q", field, operator)
	}

	pred := apply(filterValue)
	if pred == nil {
		out := make([]R, len(rows))
		copy(out, rows)
		return out, nil
	}

	out := make([]R, 0, len(rows))
	for _, row := range rows {
		if pred(s.CellValue(row, field), row) {
			out = append(out, row)
		}
	}
	return out, nil
}
