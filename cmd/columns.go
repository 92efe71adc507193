package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridx/internal/layout"
	"github.com/oakwood-commons/gridx/internal/render"
	"github.com/oakwood-commons/gridx/pkg/column"
)

var columnsOutput string

// columnsCmd inspects a configuration: it prints each column with every
// default resolved, the width the layout pass assigned, and the aggregate
// grid metadata.
var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Show the resolved column definitions and layout metadata",
	RunE:  runColumns,
}

//nolint:gochecknoinits // cobra flag registration
func init() {
	columnsCmd.Flags().StringVarP(&columnsOutput, "output", "o", "table", "output format: table, json, yaml, toml")
}

// columnReport is the serializable view of one resolved column.
type columnReport struct {
	Field         string  `json:"field" yaml:"field" toml:"field"`
	HeaderName    string  `json:"headerName" yaml:"headerName" toml:"headerName"`
	Type          string  `json:"type" yaml:"type" toml:"type"`
	Width         int     `json:"width" yaml:"width" toml:"width"`
	MinWidth      int     `json:"minWidth" yaml:"minWidth" toml:"minWidth"`
	MaxWidth      int     `json:"maxWidth" yaml:"maxWidth" toml:"maxWidth"`
	Flex          float64 `json:"flex" yaml:"flex" toml:"flex"`
	ComputedWidth int     `json:"computedWidth" yaml:"computedWidth" toml:"computedWidth"`
	Position      int     `json:"position" yaml:"position" toml:"position"`
	Sortable      bool    `json:"sortable" yaml:"sortable" toml:"sortable"`
	Editable      bool    `json:"editable" yaml:"editable" toml:"editable"`
	Filterable    bool    `json:"filterable" yaml:"filterable" toml:"filterable"`
	Hideable      bool    `json:"hideable" yaml:"hideable" toml:"hideable"`
	Groupable     bool    `json:"groupable" yaml:"groupable" toml:"groupable"`
	Pinnable      bool    `json:"pinnable" yaml:"pinnable" toml:"pinnable"`
}

type gridReport struct {
	TotalWidth int            `json:"totalWidth" yaml:"totalWidth" toml:"totalWidth"`
	Columns    []columnReport `json:"columns" yaml:"columns" toml:"columns"`
}

func runColumns(cmd *cobra.Command, _ []string) error {
	set, _, err := loadColumnSet()
	if err != nil {
		return err
	}

	resolved := layout.Hydrate(set, detectWidth())
	meta := layout.ComputeMeta(resolved)

	report := gridReport{TotalWidth: meta.TotalWidth}
	for i, r := range resolved {
		report.Columns = append(report.Columns, columnReport{
			Field:         r.Field,
			HeaderName:    r.HeaderLabel(),
			Type:          string(r.Type),
			Width:         r.Width,
			MinWidth:      r.MinWidth,
			MaxWidth:      r.MaxWidth,
			Flex:          r.Flex,
			ComputedWidth: r.ComputedWidth,
			Position:      meta.Positions[i],
			Sortable:      r.IsSortable(),
			Editable:      r.IsEditable(),
			Filterable:    r.IsFilterable(),
			Hideable:      r.IsHideable(),
			Groupable:     r.IsGroupable(),
			Pinnable:      r.IsPinnable(),
		})
	}

	out := cmd.OutOrStdout()
	switch columnsOutput {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	case "toml":
		data, err := toml.Marshal(report)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	case "table":
		table, err := reportTable(report, runParams(cmd).NoColor)
		if err != nil {
			return err
		}
		fmt.Fprint(out, table)
	default:
		return fmt.Errorf("unknown output format %q", columnsOutput)
	}
	return nil
}

// reportTable renders the report through the grid itself: the inspection
// output is just another column set over generic rows.
func reportTable(report gridReport, noColor bool) (string, error) {
	set, err := column.NewSet(
		column.Definition[map[string]any]{Field: "field", HeaderName: "FIELD", Width: 18},
		column.Definition[map[string]any]{Field: "type", HeaderName: "TYPE", Width: 12},
		column.Definition[map[string]any]{Field: "computedWidth", HeaderName: "WIDTH", Type: column.TypeNumber, Width: 8},
		column.Definition[map[string]any]{Field: "position", HeaderName: "POS", Type: column.TypeNumber, Width: 8},
		column.Definition[map[string]any]{Field: "flags", HeaderName: "FLAGS", Width: 30},
	)
	if err != nil {
		return "", err
	}

	rows := make([]map[string]any, 0, len(report.Columns))
	for _, c := range report.Columns {
		rows = append(rows, map[string]any{
			"field":         c.Field,
			"type":          c.Type,
			"computedWidth": c.ComputedWidth,
			"position":      c.Position,
			"flags":         flagSummary(c),
		})
	}

	opts := render.Options{NoColor: noColor, TotalWidth: detectWidth(), RowNumberStyle: "none"}
	table := render.Table(set, rows, opts)
	return fmt.Sprintf("%stotal width: %d\n", table, report.TotalWidth), nil
}

func flagSummary(c columnReport) string {
	flags := ""
	add := func(on bool, tag string) {
		if !on {
			return
		}
		if flags != "" {
			flags += ","
		}
		flags += tag
	}
	add(c.Sortable, "sort")
	add(c.Filterable, "filter")
	add(c.Editable, "edit")
	add(c.Hideable, "hide")
	add(c.Groupable, "group")
	add(c.Pinnable, "pin")
	return flags
}
