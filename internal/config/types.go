// Package config loads declarative grid configuration files: grid-level
// options plus one entry per column, mapped onto the column model. Hook
// expressions in the file are compiled with the expr package.
package config

import "gopkg.in/yaml.v3"

// File is the top-level shape of a grid configuration document.
type File struct {
	Grid    Grid     `yaml:"grid"`
	Columns []Column `yaml:"columns"`
}

// Grid holds grid-level display options.
type Grid struct {
	// Title is shown above the rendered table.
	Title string `yaml:"title"`

	// Width overrides the detected terminal width. 0 = detect.
	Width int `yaml:"width"`

	// RowNumbers selects the row number style: numbered (default), index,
	// or none.
	RowNumbers string `yaml:"rowNumbers"`
}

// Column is one declarative column entry. Field names mirror the column
// model; flags are pointers so an absent key keeps the model's default.
type Column struct {
	Field       string `yaml:"field"`
	HeaderName  string `yaml:"headerName"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`

	Width    int     `yaml:"width"`
	MinWidth int     `yaml:"minWidth"`
	MaxWidth int     `yaml:"maxWidth"`
	Flex     float64 `yaml:"flex"`

	Align       string `yaml:"align"`
	HeaderAlign string `yaml:"headerAlign"`

	Sortable   *bool `yaml:"sortable"`
	Resizable  *bool `yaml:"resizable"`
	Editable   *bool `yaml:"editable"`
	Hideable   *bool `yaml:"hideable"`
	Filterable *bool `yaml:"filterable"`
	Pinnable   *bool `yaml:"pinnable"`
	Groupable  *bool `yaml:"groupable"`

	DisableColumnMenu bool `yaml:"disableColumnMenu"`
	DisableReorder    bool `yaml:"disableReorder"`
	DisableExport     bool `yaml:"disableExport"`
	HideSortIcons     bool `yaml:"hideSortIcons"`

	// ValueGetter and GroupingValueGetter are CEL expressions over `row`.
	ValueGetter         string `yaml:"valueGetter"`
	GroupingValueGetter string `yaml:"groupingValueGetter"`

	// ValueOptions lists the permissible values of a singleSelect column.
	ValueOptions []OptionEntry `yaml:"valueOptions"`

	// SortingOrder is the direction cycle: entries of asc, desc, none.
	SortingOrder []string `yaml:"sortingOrder"`
}

// OptionEntry is one valueOptions item: either a bare scalar (value doubles
// as label) or a {value, label} mapping.
type OptionEntry struct {
	Value any    `yaml:"value"`
	Label string `yaml:"label"`
}

// UnmarshalYAML accepts both forms:
//
//	valueOptions: [low, medium, high]
//	valueOptions:
//	  - {value: 1, label: Low}
func (o *OptionEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		o.Value = s
		o.Label = s
		return nil
	}
	type plain OptionEntry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*o = OptionEntry(p)
	if o.Label == "" {
		o.Label = stringValue(o.Value)
	}
	return nil
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	// yaml.Marshal appends a newline
	return string(b[:len(b)-1])
}
