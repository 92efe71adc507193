package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridx/internal/expr"
	"github.com/oakwood-commons/gridx/pkg/column"
)

// Load reads a grid configuration document from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a grid configuration document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(f.Columns) == 0 {
		return nil, fmt.Errorf("config declares no columns")
	}
	return &f, nil
}

// ColumnSet converts the declared columns into a validated set over generic
// map rows, compiling any hook expressions with compiler. A nil compiler is
// only valid when no column declares an expression.
func (f *File) ColumnSet(compiler *expr.Compiler) (*column.Set[expr.Row], error) {
	defs := make([]column.Definition[expr.Row], 0, len(f.Columns))
	for _, c := range f.Columns {
		d, err := c.definition(compiler)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Field, err)
		}
		defs = append(defs, d)
	}
	return column.NewSet(defs...)
}

func (c Column) definition(compiler *expr.Compiler) (column.Definition[expr.Row], error) {
	d := column.Definition[expr.Row]{
		Field:       c.Field,
		HeaderName:  c.HeaderName,
		Description: c.Description,
		Type:        column.Type(c.Type),

		Width:    c.Width,
		MinWidth: c.MinWidth,
		MaxWidth: c.MaxWidth,
		Flex:     c.Flex,

		Align:       column.Alignment(c.Align),
		HeaderAlign: column.Alignment(c.HeaderAlign),

		Sortable:   c.Sortable,
		Resizable:  c.Resizable,
		Editable:   c.Editable,
		Hideable:   c.Hideable,
		Filterable: c.Filterable,
		Pinnable:   c.Pinnable,
		Groupable:  c.Groupable,

		DisableColumnMenu: c.DisableColumnMenu,
		DisableReorder:    c.DisableReorder,
		DisableExport:     c.DisableExport,
		HideSortIcons:     c.HideSortIcons,
	}

	if c.ValueGetter != "" {
		if compiler == nil {
			return d, fmt.Errorf("valueGetter declared but no expression compiler available")
		}
		getter, err := compiler.Getter(c.ValueGetter)
		if err != nil {
			return d, fmt.Errorf("valueGetter: %w", err)
		}
		d.ValueGetter = getter
	}
	if c.GroupingValueGetter != "" {
		if compiler == nil {
			return d, fmt.Errorf("groupingValueGetter declared but no expression compiler available")
		}
		getter, err := compiler.Getter(c.GroupingValueGetter)
		if err != nil {
			return d, fmt.Errorf("groupingValueGetter: %w", err)
		}
		d.GroupingValueGetter = getter
	}

	if len(c.ValueOptions) > 0 {
		opts := make([]column.Option, len(c.ValueOptions))
		for i, o := range c.ValueOptions {
			opts[i] = column.Option{Value: o.Value, Label: o.Label}
		}
		d.ValueOptions = column.StaticOptions[expr.Row](opts...)
	}

	if len(c.SortingOrder) > 0 {
		order := make(column.Order, len(c.SortingOrder))
		for i, s := range c.SortingOrder {
			order[i] = column.ParseDirection(s)
		}
		d.SortingOrder = order
	}

	return d, nil
}
