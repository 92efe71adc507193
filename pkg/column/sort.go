package column

import (
	"sort"
	"strings"
)

// Direction is one sort state of a column.
type Direction int8

const (
	DirectionNone Direction = iota
	DirectionAsc
	DirectionDesc
)

// String returns "asc", "desc" or "" for DirectionNone.
func (d Direction) String() string {
	switch d {
	case DirectionAsc:
		return "asc"
	case DirectionDesc:
		return "desc"
	default:
		return ""
	}
}

// ParseDirection maps "asc"/"desc" (any case) to a Direction; anything else
// is DirectionNone.
func ParseDirection(s string) Direction {
	switch strings.ToLower(s) {
	case "asc":
		return DirectionAsc
	case "desc":
		return DirectionDesc
	default:
		return DirectionNone
	}
}

// Order is the cycle of directions a column steps through on repeated sort
// requests.
type Order []Direction

// DefaultOrder is the cycle used when a Definition sets no SortingOrder.
var DefaultOrder = Order{DirectionAsc, DirectionDesc, DirectionNone}

// Next returns the direction following cur in the cycle. When cur is not in
// the cycle, the first entry is returned. An empty Order always yields
// DirectionNone.
func (o Order) Next(cur Direction) Direction {
	if len(o) == 0 {
		return DirectionNone
	}
	for i, d := range o {
		if d == cur {
			return o[(i+1)%len(o)]
		}
	}
	return o[0]
}

// Comparator orders two cell values: negative when a sorts before b, zero
// when equal, positive when after. Nil values sort first.
type Comparator func(a, b any) int

// comparatorFor resolves the comparator for a definition. An explicit
// SortComparator takes precedence over the type bundle's default.
func comparatorFor[R any](d Definition[R]) Comparator {
	if d.SortComparator != nil {
		return d.SortComparator
	}
	switch d.Type {
	case TypeNumber:
		return CompareNumbers
	case TypeDate, TypeDateTime:
		return CompareTimes
	case TypeBoolean:
		return CompareBooleans
	case TypeSingleSelect:
		return compareSelectLabels(d.Field, d.ValueOptions)
	default:
		return CompareStrings
	}
}

// compareSelectLabels orders singleSelect values by their option label, not
// the stored value. Options are requested without row context; a value with
// no matching option falls back to its own display string.
func compareSelectLabels[R any](field string, vo *ValueOptions[R]) Comparator {
	return func(a, b any) int {
		opts := vo.For(OptionsParams[R]{Field: field})
		return CompareStrings(selectLabel(opts, a), selectLabel(opts, b))
	}
}

func selectLabel(opts []Option, v any) any {
	if v == nil {
		return nil
	}
	for _, opt := range opts {
		if opt.Value == v {
			return opt.Label
		}
	}
	return v
}

// CompareStrings orders values by their display string, case-insensitively.
func CompareStrings(a, b any) int {
	if c, done := compareNils(a, b); done {
		return c
	}
	return strings.Compare(strings.ToLower(Stringify(a)), strings.ToLower(Stringify(b)))
}

// CompareNumbers orders values numerically, coercing the common numeric and
// numeric-string representations. Non-numeric values sort after numeric ones.
func CompareNumbers(a, b any) int {
	if c, done := compareNils(a, b); done {
		return c
	}
	fa, oka := toFloat(a)
	fb, okb := toFloat(b)
	switch {
	case !oka && !okb:
		return 0
	case !oka:
		return 1
	case !okb:
		return -1
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	default:
		return 0
	}
}

// CompareTimes orders values chronologically. Unparseable values sort after
// parseable ones.
func CompareTimes(a, b any) int {
	if c, done := compareNils(a, b); done {
		return c
	}
	ta, oka := toTime(a)
	tb, okb := toTime(b)
	switch {
	case !oka && !okb:
		return 0
	case !oka:
		return 1
	case !okb:
		return -1
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	default:
		return 0
	}
}

// CompareBooleans orders false before true.
func CompareBooleans(a, b any) int {
	if c, done := compareNils(a, b); done {
		return c
	}
	ba, _ := a.(bool)
	bb, _ := b.(bool)
	switch {
	case ba == bb:
		return 0
	case !ba:
		return -1
	default:
		return 1
	}
}

func compareNils(a, b any) (int, bool) {
	switch {
	case a == nil && b == nil:
		return 0, true
	case a == nil:
		return -1, true
	case b == nil:
		return 1, true
	default:
		return 0, false
	}
}

// Comparator returns the effective comparator for field, resolving the
// explicit-comparator-over-type-default precedence. Unknown fields get
// CompareStrings.
func (s *Set[R]) Comparator(field string) Comparator {
	d, ok := s.Lookup(field)
	if !ok {
		return CompareStrings
	}
	return comparatorFor(d)
}

// SortingOrder returns the direction cycle for field, falling back to
// DefaultOrder.
func (s *Set[R]) SortingOrder(field string) Order {
	if d, ok := s.Lookup(field); ok && len(d.SortingOrder) > 0 {
		return d.SortingOrder
	}
	return DefaultOrder
}

// SortRows returns a stably sorted copy of rows ordered by the given field
// and direction. DirectionNone (or a non-sortable field) returns the rows
// unchanged in a fresh slice.
func (s *Set[R]) SortRows(rows []R, field string, dir Direction) []R {
	out := make([]R, len(rows))
	copy(out, rows)

	d, ok := s.Lookup(field)
	if !ok || dir == DirectionNone || !d.IsSortable() {
		return out
	}

	cmp := comparatorFor(d)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(s.CellValue(out[i], field), s.CellValue(out[j], field))
		if dir == DirectionDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}
