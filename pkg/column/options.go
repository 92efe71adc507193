package column

// Option is one permissible value of a singleSelect column, with the label
// shown for it.
type Option struct {
	Value any
	Label string
}

// OptionsParams carries the row context passed to an options resolver. Row is
// nil when options are requested outside a row context (for example to build
// the filter UI's value list).
type OptionsParams[R any] struct {
	Row   *R
	Field string
}

// ValueOptions is the permissible-value list for a singleSelect column: a
// tagged union of a fixed Static list or a per-row Resolve function. When
// both are set, Resolve wins. The list is read lazily by the consumer; the
// resolver may be called once per row per render.
type ValueOptions[R any] struct {
	Static  []Option
	Resolve func(p OptionsParams[R]) []Option
}

// For returns the option list for the given context.
func (vo *ValueOptions[R]) For(p OptionsParams[R]) []Option {
	if vo == nil {
		return nil
	}
	if vo.Resolve != nil {
		return vo.Resolve(p)
	}
	return vo.Static
}

// StaticOptions builds a fixed ValueOptions list.
func StaticOptions[R any](opts ...Option) *ValueOptions[R] {
	return &ValueOptions[R]{Static: opts}
}

// StaticValues builds a fixed ValueOptions list where each value doubles as
// its own label.
func StaticValues[R any](values ...string) *ValueOptions[R] {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Value: v, Label: v}
	}
	return &ValueOptions[R]{Static: opts}
}
