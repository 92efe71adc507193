package column

import (
	"fmt"
	"strconv"
	"time"
)

// Type tags select a built-in defaults bundle: alignment, value formatter,
// sort comparator, filter operators, and (for actions) behavior-flag
// overrides. Overriding any of those on the Definition wins over the bundle.
type Type string

const (
	TypeString       Type = "string"
	TypeNumber       Type = "number"
	TypeBoolean      Type = "boolean"
	TypeDate         Type = "date"
	TypeDateTime     Type = "dateTime"
	TypeSingleSelect Type = "singleSelect"
	TypeActions      Type = "actions"
	TypeCustom       Type = "custom"
)

// knownTypes lists every recognized type tag.
var knownTypes = map[Type]bool{
	TypeString:       true,
	TypeNumber:       true,
	TypeBoolean:      true,
	TypeDate:         true,
	TypeDateTime:     true,
	TypeSingleSelect: true,
	TypeActions:      true,
	TypeCustom:       true,
}

// Display formats for the date bundles.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// applyTypeDefaults fills the parts of d that its Type bundle supplies and
// the caller left unset. Explicit settings always win.
func applyTypeDefaults[R any](d *Definition[R]) {
	if d.Type == "" {
		d.Type = TypeString
	}

	switch d.Type {
	case TypeNumber:
		if d.Align == "" {
			d.Align = AlignRight
		}
		if d.ValueFormatter == nil {
			d.ValueFormatter = numberFormatter[R]
		}
		if d.FilterOperators == nil {
			d.FilterOperators = NumberOperators[R]()
		}
	case TypeBoolean:
		if d.ValueFormatter == nil {
			d.ValueFormatter = booleanFormatter[R]
		}
		if d.FilterOperators == nil {
			d.FilterOperators = BooleanOperators[R]()
		}
	case TypeDate:
		if d.ValueFormatter == nil {
			d.ValueFormatter = timeFormatter[R](dateLayout)
		}
		if d.FilterOperators == nil {
			d.FilterOperators = DateOperators[R]()
		}
	case TypeDateTime:
		if d.ValueFormatter == nil {
			d.ValueFormatter = timeFormatter[R](dateTimeLayout)
		}
		if d.FilterOperators == nil {
			d.FilterOperators = DateOperators[R]()
		}
	case TypeSingleSelect:
		if d.ValueFormatter == nil {
			d.ValueFormatter = selectFormatter(d.ValueOptions)
		}
		if d.FilterOperators == nil {
			d.FilterOperators = SelectOperators[R]()
		}
	case TypeActions:
		// Actions columns carry controls, not data: they opt out of the
		// data-driven behaviors unless the caller re-enables them.
		if d.Align == "" {
			d.Align = AlignCenter
		}
		if d.Sortable == nil {
			d.Sortable = Bool(false)
		}
		if d.Filterable == nil {
			d.Filterable = Bool(false)
		}
		if d.Groupable == nil {
			d.Groupable = Bool(false)
		}
		if d.Resizable == nil {
			d.Resizable = Bool(false)
		}
		// Menu and export are forced off: an actions column has no data
		// to export and no menu-driven behavior to configure. This is not
		// overridable.
		d.DisableColumnMenu = true
		d.DisableExport = true
	default:
		// string, custom: plain left-aligned text
		if d.FilterOperators == nil {
			d.FilterOperators = StringOperators[R]()
		}
	}

	if d.Align == "" {
		d.Align = AlignLeft
	}
	if d.HeaderAlign == "" {
		d.HeaderAlign = d.Align
	}
}

// Stringify renders an arbitrary cell value for display. It is the fallback
// used when a column has no formatter of its own.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(dateTimeLayout)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

func numberFormatter[R any](p Params[R]) string {
	if p.Value == nil {
		return ""
	}
	if f, ok := toFloat(p.Value); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return Stringify(p.Value)
}

func booleanFormatter[R any](p Params[R]) string {
	switch v := p.Value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return Stringify(p.Value)
	}
}

func timeFormatter[R any](layout string) ValueFormatter[R] {
	return func(p Params[R]) string {
		t, ok := toTime(p.Value)
		if !ok {
			return Stringify(p.Value)
		}
		return t.Format(layout)
	}
}

// selectFormatter maps a stored value to its option label. Resolver-backed
// options are looked up lazily per row.
func selectFormatter[R any](vo *ValueOptions[R]) ValueFormatter[R] {
	return func(p Params[R]) string {
		if p.Value == nil {
			return ""
		}
		if vo != nil {
			row := p.Row
			for _, opt := range vo.For(OptionsParams[R]{Row: &row, Field: p.Field}) {
				if opt.Value == p.Value {
					return opt.Label
				}
			}
		}
		return Stringify(p.Value)
	}
}

// toFloat coerces the numeric types a row record is likely to carry
// (including values decoded from JSON or YAML) into a float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// toTime coerces time.Time values and the common string encodings.
func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range []string{time.RFC3339, dateTimeLayout, dateLayout} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
